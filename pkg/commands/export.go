package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/commands/options"
	"tableflip.dev/moods/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the journal and activity log to stdout",
		Example: `
moods export
moods export -o yaml > moods.yaml
`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			s := e.open(cmd.Context(), nil)
			defer s.Close()

			r := export.Export{
				Session: s,
				Format:  fo.Format,
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddFormatArg(cmd, fo)

	topLevel.AddCommand(cmd)
}
