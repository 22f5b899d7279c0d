// Package prompt asks for moods, notes and confirmations on a terminal.
package prompt

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/moods/pkg/mood"
	"tableflip.dev/moods/pkg/view"
)

// Mood lets the user pick one of the moods. selected is highlighted first.
func Mood(in io.Reader, out io.Writer, selected mood.Mood) (mood.Mood, error) {
	options := view.Options(selected)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Emoji }} {{ .Title | bold }}",
		Inactive: "   {{ .Emoji }} {{ .Title | faint }}",
		Selected: "{{ .Emoji }} {{ .Title | bold }}",
	}

	searcher := func(input string, index int) bool {
		title := strings.ToLower(options[index].Title)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(title, input)
	}

	cursor := 0
	if i := selected.Ordinal(); i >= 0 {
		cursor = i
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "How is your weather today",
		Items:     options,
		Templates: templates,
		Size:      len(options),
		CursorPos: cursor,
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return mood.None, err
	}
	return options[i].Mood, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
