package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jot"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	// cfg is loaded once in PersistentPreRun.
	cfg jot.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Keep short notes for the length of a session",
	Long: `jot is a small note keeper. Notes have a title of 3 to 50 characters
and a text of up to 150 characters, and live in memory until you quit.

Run without a subcommand to start an interactive session.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			if wd, err := os.Getwd(); err == nil {
				found, err := jot.FindConfig(wd)
				if err == nil {
					path = found
				} else if !errors.Is(err, jot.ErrNoConfig) {
					fatal("Failed to look up config", err)
				}
			}
		}

		loaded, err := jot.LoadConfig(path)
		if err != nil {
			fatal("Failed to load config", err)
		}
		cfg = loaded

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if path != "" {
			logger.Debug("config loaded", "path", path)
		}
	},
	Args: cobra.NoArgs,
	Run:  runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Commands returning errInvalidNote have already explained why.
		if !errors.Is(err, errInvalidNote) {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest .jot.yaml)")
	addSessionFlags(rootCmd)
}
