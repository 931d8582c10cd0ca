package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/pilot/pkg/pilot"
	"github.com/BrandonKowalski/pilot/pkg/pilot/constants"
)

type rootOptions struct {
	logLevel   string
	configPath string
	lang       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pilot",
		Short: "Replay navigation scripts against a pilot stack",
		Long: "pilot drives a navigation stack from TOML scripts and prints every\n" +
			"top-frame change, empty-stack notification and popped frame.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pilot.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			pilot.Init(cfg.Options())
			// An explicit flag beats both the config file and the environment.
			if cmd.Flags().Changed("log-level") {
				pilot.SetRawLogLevel(opts.logLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", constants.DefaultLogLevel, "Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", defaultLang(), "Output language (en, es)")

	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newReplayCmd(opts))
	return rootCmd
}

func defaultLang() string {
	if lang := os.Getenv(constants.LangEnvVar); lang != "" {
		return lang
	}
	return constants.DefaultLang
}

func main() {
	defer pilot.Close()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
