package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/runner/ui"
	"tableflip.dev/moods/pkg/session"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen mood widget",
		Example: `
moods ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			i := ui.UI{
				Deps: session.Deps{
					Backend:  e.kv,
					Reminder: e.reminder,
					Period:   e.period,
					Window:   e.settings.Window(),
					Log:      e.log,
				},
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
