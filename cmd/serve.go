package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Snider/rswait/pkg/console"
	"github.com/spf13/cobra"
)

// GetServeCmd returns the serve command.
func GetServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser demo",
		Long: `Starts an HTTP server with a demo page that wraps a simulated slow
generation request in the WASM wait widget.

Build the assets first:
  GOOS=js GOARCH=wasm go build -o web/rswait.wasm ./pkg/wasm/rswait
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/

Examples:
  rswait serve --assets web --open
  rswait serve --assets web --port 3000 --context blog-ideas`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			port := cfg.Port
			if f := cmd.Flags().Lookup("port"); f.Changed {
				port = f.Value.String()
			}
			assets, _ := cmd.Flags().GetString("assets")
			delay, _ := cmd.Flags().GetDuration("delay")
			openBrowser, _ := cmd.Flags().GetBool("open")
			log := loggerFrom(cmd)

			opts := []console.Option{
				console.WithContext(contextKey(cmd, cfg)),
				console.WithLogger(log),
			}
			if delay > 0 {
				opts = append(opts, console.WithDelay(delay))
			}
			server, err := console.NewServer(assets, port, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rswait demo serving at %s\n", server.URL())
			if assets == "" {
				log.Warn("no --assets directory, the page will load without the WASM widget")
			}
			if openBrowser {
				if err := console.OpenBrowser(server.URL()); err != nil {
					log.Warn("could not open browser", "err", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx)
		},
	}
	cmd.Flags().String("port", "8080", "Port to serve on")
	cmd.Flags().String("assets", "", "Directory holding rswait.wasm and wasm_exec.js")
	cmd.Flags().StringP("context", "c", "", "Context catalog the page starts the widget with")
	cmd.Flags().Duration("delay", 0, "Default duration of the simulated generation (default 6s)")
	cmd.Flags().Bool("open", false, "Auto-open browser")
	return cmd
}
