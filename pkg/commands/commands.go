package commands

import (
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/commands/options"
)

var (
	lo = &options.LoggingOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moods",
		Short: options.Wrap80("Log how your day feels as weather, and watch the trend."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// NO_COLOR and CLICOLOR=0 turn off the cards and alerts too.
			if termenv.EnvNoColor() {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLoggingArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLog(topLevel)
	addHistory(topLevel)
	addChart(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addRemind(topLevel)
	addInfo(topLevel)
	addExport(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
