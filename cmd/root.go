package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "taskflow",
		Short:         "Personal task manager",
		Long:          "TaskFlow keeps a personal task list in SQLite and serves it over a small REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dsn, "db", "", "SQLite database path (overrides DATABASE_DSN)")

	rootCmd.AddCommand(
		newServeCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newDeleteCmd(a),
		newEditCmd(a),
		newTodayCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
	)

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportedError is a failure the command has already described to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, color.RedString("Error:"), err)
}
