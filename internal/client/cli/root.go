package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/client/config"
	"github.com/dmitrijs2005/clientdesk/internal/filex"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal is a package-level variable to allow forcing either mode in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runUI is swapped in tests so the root command can be exercised without a
// terminal.
var runUI = func(ctx context.Context, app *App) error {
	return app.Run(ctx)
}

// NewRootCommand builds the clientdesk command tree:
//
//	clientdesk                  interactive UI (falls back to list without a TTY)
//	clientdesk list [-s text]   print the client table once
func NewRootCommand() *cobra.Command {
	cfg := config.Default()
	var configPath string

	root := &cobra.Command{
		Use:   "clientdesk",
		Short: "Manage clients of the clients backend from the terminal",
		Long: `clientdesk lists, searches, creates, edits and deletes client records
kept by a REST backend.

Without a subcommand it opens the interactive UI. When standard output is not
a terminal it prints the client table instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Resolve(cfg, configPath, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return runList(cmd, cfg, "")
			}
			return runInteractive(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (JSON, or YAML for .yaml/.yml)")
	config.BindFlags(root.PersistentFlags(), cfg)

	root.AddCommand(newListCommand(cfg))
	return root
}

func newListCommand(cfg *config.Config) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print clients matching an optional search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, cfg, search)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "search text sent to the backend")
	return cmd
}

func runList(cmd *cobra.Command, cfg *config.Config, search string) error {
	app, err := NewApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return app.List(cmd.Context(), cmd.OutOrStdout(), search)
}

// runInteractive logs to the configured file because the UI owns the
// terminal.
func runInteractive(cmd *cobra.Command, cfg *config.Config) error {
	logFile, err := filex.OpenAppend(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logFile.Close()

	app, err := NewApp(cfg, logFile)
	if err != nil {
		return err
	}
	return runUI(cmd.Context(), app)
}
