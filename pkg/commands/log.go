package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/commands/options"
	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	io := &options.InteractiveOptions{}
	output := &options.OutputOptions{}

	long := strings.Builder{}
	long.WriteString("Log today's mood. Logging again today replaces the earlier entry.\n\n")
	long.WriteString("Moods:\n")
	for _, g := range mood.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%d %s %s: %s\n", g.Mood.Ordinal()+1, g.Emoji, g.Mood, g.Meaning))
	}

	cmd := &cobra.Command{
		Use:   "log [mood] [note...]",
		Short: "log today's mood",
		Long:  long.String(),
		Example: `
moods log sunny
moods log rainy --note="long day"
moods log 6
moods log -i
`,
		ValidArgs: mood.Names(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && !io.Interactive {
				return fmt.Errorf("a mood is required, one of %s", strings.Join(mood.Names(), ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m := mood.None
			var rest []string
			if len(args) > 0 {
				parsed, err := mood.Parse(args[0])
				if err != nil {
					return output.HandleError(err)
				}
				m, rest = parsed, args[1:]
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()
			s := e.open(cmd.Context(), nil)
			defer s.Close()

			r := log.Log{
				Session:     s,
				Mood:        m,
				Note:        no.Resolve(rest),
				Interactive: io.Interactive,
				JSON:        output.JSON,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddNoteArgs(cmd, no)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
