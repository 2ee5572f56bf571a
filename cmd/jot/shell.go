package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/shell"
	"github.com/spf13/cobra"
)

var (
	demo      bool
	legacyIDs bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive note session",
	Long: `Start an interactive session. Type 'help' at the prompt for the list of
commands. Notes are discarded when the session ends.`,
	Args: cobra.NoArgs,
	Run:  runShell,
}

func runShell(cmd *cobra.Command, args []string) {
	opts := append(cfg.Options(), jot.WithLogger(slog.Default()))
	if demo {
		opts = append(opts, jot.WithSeed(jot.DemoNotes...))
	}
	if cmd.Flags().Changed("legacy-ids") {
		opts = append(opts, jot.WithLegacyIDs(legacyIDs))
	}

	store, err := jot.New(opts...)
	if err != nil {
		fatal("Failed to create note store", err)
	}

	session := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithLogger(slog.Default()),
	)
	if err := session.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		fatal("Session failed", err)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&demo, "demo", false, "Start with four sample notes")
	cmd.Flags().BoolVar(&legacyIDs, "legacy-ids", false, "Assign ids as note count + 1 (may repeat after deletes)")
}

func init() {
	rootCmd.AddCommand(shellCmd)
	addSessionFlags(shellCmd)
}
