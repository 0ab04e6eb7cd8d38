package client

import (
	"context"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// Client is the contract of the clients backend.
type Client interface {
	List(ctx context.Context, search string) ([]models.ClientRecord, error)
	Get(ctx context.Context, id models.ID) (*models.ClientRecord, error)
	Create(ctx context.Context, payload models.ClientPayload) (*models.ClientRecord, error)
	Update(ctx context.Context, id models.ID, payload models.ClientPayload) (*models.ClientRecord, error)
	Delete(ctx context.Context, id models.ID) error
}
