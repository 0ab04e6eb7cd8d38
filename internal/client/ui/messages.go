package ui

import (
	"errors"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
)

// User-visible texts.
const (
	TitleCreate = "Add client"
	TitleEdit   = "Edit client"

	DeleteConfirm = "Are you sure you want to delete this client?"
	NoticeCopied  = "Contact copied to clipboard"
	NoticeDeleted = "Client deleted"
	NoticeSaved   = "Client saved"

	SaveFallback       = "could not save client"
	SaveNetworkFailure = "Error while saving client"
	CopyFailure        = "Could not copy contact"
	LoadFailure        = "Could not load clients"
	DetailFailure      = "Could not load client"
	DeleteFailure      = "Could not delete client"
)

// SaveErrorMessage turns a failed create or update into the alert text.
func SaveErrorMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return "Error: " + verr.Error()
	}

	var rej *client.RejectionError
	if errors.As(err, &rej) {
		if rej.Message == "" {
			return "Error: " + SaveFallback
		}
		return "Error: " + rej.Message
	}
	return SaveNetworkFailure
}
