package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
moods info
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

			r := info.Info{
				Config:  e.settings,
				Store:   e.kv,
				Session: s,
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
