package tui

import "github.com/dmitrijs2005/clientdesk/internal/client/models"

// clientsLoadedMsg answers a list request issued with token.
type clientsLoadedMsg struct {
	token   uint64
	records []models.ClientRecord
	err     error
}

// clientLoadedMsg answers a detail request for the edit dialog.
type clientLoadedMsg struct {
	token  uint64
	id     models.ID
	record *models.ClientRecord
	err    error
}

type clientSavedMsg struct {
	record *models.ClientRecord
	err    error
}

// clientDeletedMsg answers a confirmed delete. fromModal tells whether it
// was confirmed from the edit dialog of id.
type clientDeletedMsg struct {
	id        models.ID
	fromModal bool
	err       error
}

// searchTickMsg fires when the debounce delay for tag is over.
type searchTickMsg struct {
	tag int
}
