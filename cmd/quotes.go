package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetQuotesCmd returns the quotes command.
func GetQuotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes [context]",
		Short: "Print a quote catalog",
		Long: `Prints the generic wait messages, or the messages of one context catalog.
Use --contexts to list the known context keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if list, _ := cmd.Flags().GetBool("contexts"); list {
				for _, key := range catalog.Keys() {
					fmt.Fprintf(out, "%s\t%d\n", key, len(catalog.Context(key)))
				}
				return nil
			}

			lines := catalog.Generic()
			if len(args) == 1 {
				lines = catalog.Context(args[0])
				if len(lines) == 0 {
					return fmt.Errorf("unknown context %q", args[0])
				}
			}
			for _, q := range lines {
				fmt.Fprintln(out, q)
			}
			return nil
		},
	}
	cmd.Flags().Bool("contexts", false, "List context keys and their sizes")
	return cmd
}
