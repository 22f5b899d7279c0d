package prompt

import (
	"io"

	"github.com/manifoldco/promptui"
)

// Note asks for an optional free-text note.
func Note(in io.Reader, out io.Writer) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     "Add a note about your day (optional)",
		Templates: templates,
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}
	return prompt.Run()
}
