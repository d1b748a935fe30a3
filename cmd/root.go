package cmd

import (
	"context"
	"log/slog"

	"github.com/Snider/rswait/pkg/config"
	"github.com/Snider/rswait/pkg/logger"
	"github.com/Snider/rswait/pkg/quotes"
	"github.com/Snider/rswait/pkg/rotator"
	"github.com/spf13/cobra"
)

type loggerKey struct{}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd creates the root command with its persistent flags.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rswait",
		Short: "Rotating wait messages for slow operations.",
		Long: `rswait shows a shuffled rotation of light-hearted "please wait" messages
while a slow operation runs: in a terminal, in a rendered HTML fragment,
or in the browser through the WASM build.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger.New(true)))
			}
		},
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(log *slog.Logger) error {
	RootCmd.SetContext(context.WithValue(context.Background(), loggerKey{}, log))
	return RootCmd.Execute()
}

// init registers the subcommands.
func init() {
	RootCmd.AddCommand(GetRunCmd())
	RootCmd.AddCommand(GetQuotesCmd())
	RootCmd.AddCommand(GetRenderCmd())
	RootCmd.AddCommand(GetServeCmd())
}

// loggerFrom returns the logger stored in the command context.
func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return logger.New(false)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func loadCatalog(cfg *config.Config) (*quotes.Catalog, error) {
	if cfg.Catalog != "" {
		return quotes.LoadFile(cfg.Catalog)
	}
	return quotes.Default()
}

// contextKey prefers the --context flag over the configured context.
func contextKey(cmd *cobra.Command, cfg *config.Config) string {
	if f := cmd.Flags().Lookup("context"); f != nil && f.Changed {
		return f.Value.String()
	}
	return cfg.Context
}

// rotatorOptions turns config and flags into rotator options. Flags win.
func rotatorOptions(cmd *cobra.Command, cfg *config.Config, catalog *quotes.Catalog) []rotator.Option {
	interval, fade, seed := cfg.Interval, cfg.FadeDelay, cfg.Seed
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		interval, _ = cmd.Flags().GetDuration("interval")
	}
	if f := cmd.Flags().Lookup("fade"); f != nil && f.Changed {
		fade, _ = cmd.Flags().GetDuration("fade")
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	opts := []rotator.Option{
		rotator.WithCatalog(catalog),
		rotator.WithInterval(interval),
		rotator.WithFadeDelay(fade),
		rotator.WithLogger(loggerFrom(cmd)),
	}
	if seed != 0 {
		opts = append(opts, rotator.WithSeed(seed))
	}
	return opts
}
