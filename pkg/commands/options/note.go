package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// NoteOptions
type NoteOptions struct {
	Note string
}

func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		`A note about your day, example: --note="walked by the lake".`)
}

// Resolve prefers the flag, then any words left after the mood argument.
func (o *NoteOptions) Resolve(rest []string) string {
	if o.Note != "" {
		return o.Note
	}
	return strings.Join(rest, " ")
}
