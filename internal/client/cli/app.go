package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/config"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/tui"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"golang.org/x/term"
)

// App wires configuration, logging and the directory service for one run
// of the client.
type App struct {
	config    *config.Config
	service   services.DirectoryService
	logger    logging.Logger
	formatter ui.TimeFormatter
}

// NewApp builds the service stack described by c. Logs are written to logOut.
func NewApp(c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:    c,
		service:   services.NewDirectoryService(apiClient, logger),
		logger:    logger,
		formatter: ui.TimeFormatter{Layout: c.TimeLayout, Location: loc},
	}, nil
}

// Run starts the interactive UI and blocks until the user quits or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "starting interactive client", "api_url", a.config.APIURL)

	model := tui.New(ctx, tui.Options{
		Service:   a.service,
		Logger:    a.logger,
		Formatter: a.formatter,
		Debounce:  a.config.SearchDebounce,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// List prints the clients matching search to w once.
func (a *App) List(ctx context.Context, w io.Writer, search string) error {
	records, err := a.service.List(ctx, search)
	if err != nil {
		return err
	}
	return tui.PrintTable(w, ui.RenderTable(records, a.formatter), terminalWidth(w))
}

// terminalWidth is the width of w when it is a terminal, otherwise zero.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
