package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
)

// tick is a package-level variable to allow driving the debounce in tests.
var tick = tea.Tick

func loadClientsCmd(ctx context.Context, svc services.DirectoryService, search string, token uint64) tea.Cmd {
	return func() tea.Msg {
		records, err := svc.List(ctx, search)
		return clientsLoadedMsg{token: token, records: records, err: err}
	}
}

func loadClientCmd(ctx context.Context, svc services.DirectoryService, id models.ID, token uint64) tea.Cmd {
	return func() tea.Msg {
		record, err := svc.Get(ctx, id)
		return clientLoadedMsg{token: token, id: id, record: record, err: err}
	}
}

func saveClientCmd(ctx context.Context, svc services.DirectoryService, id models.ID, create bool, payload models.ClientPayload) tea.Cmd {
	return func() tea.Msg {
		var (
			record *models.ClientRecord
			err    error
		)
		if create {
			record, err = svc.Create(ctx, payload)
		} else {
			record, err = svc.Update(ctx, id, payload)
		}
		return clientSavedMsg{record: record, err: err}
	}
}

func deleteClientCmd(ctx context.Context, svc services.DirectoryService, target pendingDelete) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(ctx, target.id)
		return clientDeletedMsg{id: target.id, fromModal: target.fromModal, err: err}
	}
}

func searchTickCmd(delay time.Duration, tag int) tea.Cmd {
	return tick(delay, func(time.Time) tea.Msg {
		return searchTickMsg{tag: tag}
	})
}
