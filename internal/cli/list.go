package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lsgrab/internal/localstorage"
	"lsgrab/pkg/log"
)

func NewListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <url>",
		Short: "Print every local-storage entry of a URL's origin, one key/value per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]

			storeDir, err := opts.ResolveStore()
			if err != nil {
				return err
			}
			log.CLI.Debug().Str("store", storeDir).Msg("resolved store directory")

			scan, err := localstorage.ReadAll(storeDir, rawURL)
			if err != nil {
				return fmt.Errorf("list %q: %w", rawURL, err)
			}
			defer scan.Close()

			for scan.Next() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", scan.Key(), scan.Value())
			}
			if err := scan.Err(); err != nil {
				return fmt.Errorf("list %q: %w", rawURL, err)
			}
			return nil
		},
	}
}
