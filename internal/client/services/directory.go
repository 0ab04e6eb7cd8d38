// Package services contains application services for the clientdesk client.
// This file defines the directory service: the list, detail and write
// operations on client records that the terminal UI drives.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// DirectoryService defines client-record operations for the UI.
//
// Contract:
//   - List: records matching search (empty search lists everything).
//   - Get: one record by id, for populating the edit form.
//   - Create / Update: write a payload; Update replaces the editable fields.
//   - Delete: remove one record.
//
// Errors wrap the client package sentinels and *client.RejectionError, so
// callers classify them with errors.Is / errors.As.
type DirectoryService interface {
	List(ctx context.Context, search string) ([]models.ClientRecord, error)
	Get(ctx context.Context, id models.ID) (*models.ClientRecord, error)
	Create(ctx context.Context, payload models.ClientPayload) (*models.ClientRecord, error)
	Update(ctx context.Context, id models.ID, payload models.ClientPayload) (*models.ClientRecord, error)
	Delete(ctx context.Context, id models.ID) error
}

type directoryService struct {
	client client.Client
	logger logging.Logger
}

// NewDirectoryService constructs a DirectoryService over the given transport.
func NewDirectoryService(c client.Client, logger logging.Logger) DirectoryService {
	return &directoryService{client: c, logger: logger}
}

func (s *directoryService) List(ctx context.Context, search string) ([]models.ClientRecord, error) {
	records, err := s.client.List(ctx, search)
	if err != nil {
		s.report(ctx, "list clients", err, "search", search)
		return nil, fmt.Errorf("list clients: %w", err)
	}
	s.logger.Debug(ctx, "clients loaded", "search", search, "count", len(records))
	return records, nil
}

func (s *directoryService) Get(ctx context.Context, id models.ID) (*models.ClientRecord, error) {
	record, err := s.client.Get(ctx, id)
	if err != nil {
		s.report(ctx, "get client", err, "id", id)
		return nil, fmt.Errorf("get client %s: %w", id, err)
	}
	return record, nil
}

func (s *directoryService) Create(ctx context.Context, payload models.ClientPayload) (*models.ClientRecord, error) {
	record, err := s.client.Create(ctx, payload)
	if err != nil {
		s.report(ctx, "create client", err)
		return nil, fmt.Errorf("create client: %w", err)
	}
	s.logger.Info(ctx, "client created", "id", record.ID)
	return record, nil
}

func (s *directoryService) Update(ctx context.Context, id models.ID, payload models.ClientPayload) (*models.ClientRecord, error) {
	record, err := s.client.Update(ctx, id, payload)
	if err != nil {
		s.report(ctx, "update client", err, "id", id)
		return nil, fmt.Errorf("update client %s: %w", id, err)
	}
	s.logger.Info(ctx, "client updated", "id", id)
	return record, nil
}

func (s *directoryService) Delete(ctx context.Context, id models.ID) error {
	if err := s.client.Delete(ctx, id); err != nil {
		s.report(ctx, "delete client", err, "id", id)
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	s.logger.Info(ctx, "client deleted", "id", id)
	return nil
}

// report logs a failed operation at a level matching its cause: network
// failures are errors, backend rejections are warnings.
func (s *directoryService) report(ctx context.Context, op string, err error, args ...any) {
	args = append(args, "op", op, "error", err)

	var rej *client.RejectionError
	switch {
	case errors.Is(err, context.Canceled):
		s.logger.Debug(ctx, "operation canceled", args...)
	case errors.As(err, &rej):
		s.logger.Warn(ctx, "backend rejected request", append(args, "status", rej.Status)...)
	default:
		s.logger.Error(ctx, "backend unreachable", args...)
	}
}
