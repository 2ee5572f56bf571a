package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/shell"
	"github.com/spf13/cobra"
)

// errInvalidNote makes the process exit with status 1 without printing usage.
var errInvalidNote = errors.New("invalid note")

var (
	checkTitle string
	checkText  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a title and text without storing them",
	Long: `Check applies the note rules to the given title and text and prints the
first rule that is broken. It exits with status 1 when the note is invalid.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := core.Validate(checkTitle, checkText)
		if result == core.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		}

		fmt.Fprintln(cmd.ErrOrStderr(), shell.Message(result.Err()))
		return fmt.Errorf("%w: %w", errInvalidNote, result.Err())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkTitle, "title", "", "Note title")
	checkCmd.Flags().StringVar(&checkText, "text", "", "Note text")
}
