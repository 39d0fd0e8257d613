package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsgrab/internal/cli"
	"lsgrab/pkg/log"
)

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:          "lsgrab",
	Short:        "lsgrab extracts local-storage entries from a browser profile",
	Long:         "lsgrab reads the local-storage database of a Chromium-family browser profile and prints the values stored for a URL's origin.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelStr, format := opts.LoggingDefaults()
		level, err := log.ParseLogLevel(levelStr)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelStr, err)
		}
		loggerType := log.ConsoleLogger
		if format == "json" {
			loggerType = log.JSONLogger
		}
		log.Init(log.Options{LogLevel: level, Type: loggerType})
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file")
	pf.StringVarP(&opts.Browser, "browser", "b", "", "browser to read (chrome, chromium, edge, brave)")
	pf.StringVarP(&opts.Profile, "profile", "p", "", "profile name inside the browser data dir")
	pf.StringVar(&opts.ProfileDir, "profile-dir", "", "explicit browser profile directory")
	pf.StringVar(&opts.StoreDir, "store", "", "explicit local-storage leveldb directory")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json)")

	rootCmd.AddCommand(cli.NewGetCmd(&opts))
	rootCmd.AddCommand(cli.NewListCmd(&opts))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
