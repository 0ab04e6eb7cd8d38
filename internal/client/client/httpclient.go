package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader correlates client log lines with backend logs.
const RequestIDHeader = "X-Request-ID"

const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  logging.Logger
}

// NewHTTPClient returns a client for the collection at baseURL, e.g.
// http://localhost:3000/api/clients.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (c *HTTPClient) List(ctx context.Context, search string) ([]models.ClientRecord, error) {
	u := *c.baseURL
	u.RawQuery = url.Values{"search": []string{search}}.Encode()

	var records []models.ClientRecord
	if err := c.do(ctx, http.MethodGet, &u, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ClientRecord{}
	}
	return records, nil
}

func (c *HTTPClient) Get(ctx context.Context, id models.ID) (*models.ClientRecord, error) {
	var record models.ClientRecord
	if err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) Create(ctx context.Context, payload models.ClientPayload) (*models.ClientRecord, error) {
	var record models.ClientRecord
	if err := c.do(ctx, http.MethodPost, c.baseURL, payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) Update(ctx context.Context, id models.ID, payload models.ClientPayload) (*models.ClientRecord, error) {
	var record models.ClientRecord
	if err := c.do(ctx, http.MethodPatch, c.itemURL(id), payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *HTTPClient) itemURL(id models.ID) *url.URL {
	return c.baseURL.JoinPath(string(id))
}

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method string, u *url.URL, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With("method", method, "path", u.Path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "duration", time.Since(start))
		return c.mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn(ctx, "read response failed", "error", err, "status", resp.StatusCode)
		return c.mapError(err)
	}
	log.Debug(ctx, "request completed", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectionError{Status: resp.StatusCode, Message: rejectionMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// mapError converts transport errors into sentinel errors, keeping context
// cancellation visible to callers.
func (c *HTTPClient) mapError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// rejectionMessage extracts {message} (or {error}, which some backends use)
// from an error body. Anything else yields an empty message.
func rejectionMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
