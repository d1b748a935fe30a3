package cmd

import (
	"os"

	"github.com/Snider/rswait/pkg/markup"
	"github.com/Snider/rswait/pkg/rotator"
	"github.com/spf13/cobra"
)

// GetRenderCmd returns the render command.
func GetRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wait fragment with a first quote filled in",
		Long: `Renders the shipped wait fragment, or an HTML fragment from --input, with the
container shown and its first quote filled in, so pages can ship a
pre-rendered message. The output goes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			doc := markup.Fragment()
			if input, _ := cmd.Flags().GetString("input"); input != "" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				if doc, err = markup.Parse(f); err != nil {
					return err
				}
			}

			container, _ := cmd.Flags().GetString("container")
			opts := append(rotatorOptions(cmd, cfg, catalog), rotator.WithFadeDelay(0))
			r := rotator.New(doc, opts...)
			if !r.Start(container, contextKey(cmd, cfg)) {
				loggerFrom(cmd).Debug("container not found, rendering unchanged", "container", container)
			}
			r.Stop()

			return doc.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("context", "c", "", "Context catalog to add to the generic quotes")
	cmd.Flags().String("container", "waitBox", "Id of the container to fill")
	cmd.Flags().StringP("input", "i", "", "HTML fragment to render instead of the shipped one")
	cmd.Flags().Uint64("seed", 0, "Shuffle seed, 0 for random")
	return cmd
}
