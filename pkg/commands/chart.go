package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/commands/options"
	"tableflip.dev/moods/pkg/printers"
	"tableflip.dev/moods/pkg/runner/chart"
)

func addChart(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "draw the mood trend of the most recent entries",
		Example: `
moods chart
moods chart --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			s := e.open(cmd.Context(), nil)
			defer s.Close()

			r := chart.Chart{
				Session: s,
				Surface: printers.NewTerminalSurface(),
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
