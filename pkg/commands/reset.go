package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/prompt"
	"tableflip.dev/moods/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "erase the journal, activity log and saved answers",
		Example: `
moods reset
moods reset --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			r := reset.Reset{
				Store: e.kv,
				Out:   cmd.OutOrStdout(),
			}
			if !yes {
				r.Confirm = func() (bool, error) {
					return prompt.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Erase every logged mood")
				}
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
