package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lsgrab/internal/localstorage"
	"lsgrab/pkg/log"
)

func NewGetCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url> <key>",
		Short: "Print the local-storage value stored for a key under a URL's origin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL, appKey := args[0], args[1]

			storeDir, err := opts.ResolveStore()
			if err != nil {
				return err
			}
			log.CLI.Debug().Str("store", storeDir).Msg("resolved store directory")

			value, err := localstorage.Read(storeDir, rawURL, appKey)
			if err != nil {
				return fmt.Errorf("read %q of %q: %w", appKey, rawURL, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
