package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/Snider/rswait/pkg/ui"
	"github.com/spf13/cobra"
)

// execCommand is swapped out in tests.
var execCommand = exec.CommandContext

// GetRunCmd returns the run command.
func GetRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- command [args...]]",
		Short: "Show wait messages while a command runs",
		Long: `Runs a command and shows rotating wait messages on stderr until it exits.
Without a command, the messages rotate for --duration.

Examples:
  rswait run --context product-description -- ./generate.sh
  rswait run --duration 20s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, _ := cmd.Flags().GetDuration("duration")
			if len(args) == 0 && duration <= 0 {
				return errors.New("either a command or --duration is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			log := loggerFrom(cmd)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			prompter := ui.NewPrompter(cmd.ErrOrStderr(), rotatorOptions(cmd, cfg, catalog)...)
			key := contextKey(cmd, cfg)
			log.Debug("run", "context", key, "args", args, "duration", duration)

			return prompter.While(ctx, key, func(ctx context.Context) error {
				if len(args) == 0 {
					return wait(ctx, duration)
				}
				c := execCommand(ctx, args[0], args[1:]...)
				c.Stdin = cmd.InOrStdin()
				c.Stdout = cmd.OutOrStdout()
				c.Stderr = cmd.ErrOrStderr()
				if err := c.Run(); err != nil {
					return fmt.Errorf("running %s: %w", args[0], err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringP("context", "c", "", "Context catalog to add to the generic quotes")
	cmd.Flags().DurationP("duration", "d", 0, "Rotate for this long when no command is given")
	cmd.Flags().Duration("interval", 0, "Time between quotes (default from config, 4s)")
	cmd.Flags().Duration("fade", 0, "Hidden period before a quote is swapped (default from config, 300ms)")
	cmd.Flags().Uint64("seed", 0, "Shuffle seed, 0 for random")
	return cmd
}

// wait blocks for d or until ctx is done. An interrupt is not a failure.
func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
	return nil
}
