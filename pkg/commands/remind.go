package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	dismiss := false

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "stay in the foreground and remind you daily to log your mood",
		Example: `
moods remind
moods remind --dismiss
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

			r := remind.Remind{
				Session: s,
				Dismiss: dismiss,
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "Hide the reminder prompt for 30 days.")

	topLevel.AddCommand(cmd)
}
