package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/moods/pkg/runner/serve"
	"tableflip.dev/moods/pkg/web"
)

func addServe(topLevel *cobra.Command) {
	addr := ""

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the mood widget in a browser",
		Long: `Serve the widget page: pick a mood, add a note, save, and see the trend
chart and history. Browser notifications remind you daily once allowed.`,
		Example: `
moods serve
moods serve --listen=0.0.0.0:9000
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			listen := addr
			if listen == "" {
				listen = e.settings.Listen()
			}
			r := serve.Serve{
				Config: web.Config{
					Backend:  e.kv,
					Reminder: e.reminder,
					Period:   e.period,
					Window:   e.settings.Window(),
					Log:      e.log,
				},
				Addr: listen,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Mood widget listening on http://%s/\n", a)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "listen", "", "Address to listen on, defaults to the configured listen address.")

	topLevel.AddCommand(cmd)
}
