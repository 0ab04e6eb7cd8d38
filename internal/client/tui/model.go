// Package tui is the interactive terminal front end of clientdesk. It draws
// the state kept by package ui with bubbletea and routes key presses and
// backend responses back into it.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/ui"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeConfirm
)

// Options configures a Model.
type Options struct {
	Service   services.DirectoryService
	Logger    logging.Logger
	Formatter ui.TimeFormatter
	Debounce  time.Duration
}

// pendingDelete is the client a confirmation prompt is about.
type pendingDelete struct {
	id        models.ID
	fromModal bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	svc    services.DirectoryService
	logger logging.Logger
	times  ui.TimeFormatter
	styles Styles

	mode    mode
	width   int
	height  int
	table   table.Model
	rows    []ui.Row
	loaded  bool
	search  *ui.Search
	input   textinput.Model
	listSeq ui.Sequence
	editSeq ui.Sequence

	session ui.Session
	form    formModel
	confirm pendingDelete

	status    string
	statusErr bool
}

// New builds the root model. ctx bounds every backend call issued by the UI.
func New(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	in := newInput("Search clients...", 100)
	in.Prompt = "/ "

	m := &Model{
		ctx:    ctx,
		svc:    opts.Service,
		logger: logger,
		times:  opts.Formatter,
		styles: DefaultStyles(),
		table:  t,
		search: ui.NewSearch(opts.Debounce),
		input:  in,
	}
	m.form = newFormModel(&m.session)
	return m
}

// Init loads the full list.
func (m *Model) Init() tea.Cmd {
	return m.reload()
}

// reload issues a list request for the current search text.
func (m *Model) reload() tea.Cmd {
	return loadClientsCmd(m.ctx, m.svc, m.search.Text(), m.listSeq.Next())
}

func (m *Model) selectedRow() (ui.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return ui.Row{}, false
	}
	return m.rows[i], true
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) setRecords(records []models.ClientRecord) {
	m.rows = ui.RenderTable(records, m.times).Rows
	m.loaded = true
	m.table.SetRows(tableRows(m.rows))
	if m.table.Cursor() >= len(m.rows) {
		m.table.SetCursor(max(len(m.rows)-1, 0))
	}
}
