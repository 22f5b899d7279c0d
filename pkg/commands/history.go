package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/commands/options"
	"tableflip.dev/moods/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}
	month := false

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "list logged moods, newest first",
		Example: `
moods history
moods history --month --on=2024-2
moods history --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			then, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			s := e.open(cmd.Context(), nil)
			defer s.Close()

			r := history.History{
				Session: s,
				Month:   month || on.OnString != "",
				On:      then,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&month, "month", false, "Show a calendar of the month.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
