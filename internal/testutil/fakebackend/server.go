// Package fakebackend is an in-memory stand-in for the clients REST backend,
// used by tests that need real HTTP round trips.
package fakebackend

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/go-chi/chi/v5"
)

// Backend serves the clients contract under Prefix.
type Backend struct {
	Prefix string

	mu       sync.Mutex
	nextID   int
	clients  map[string]models.ClientRecord
	reject   *rejection
	requests map[string]int
	now      func() time.Time
}

type rejection struct {
	status  int
	message string
}

// New returns an empty backend serving under "/api/clients".
func New() *Backend {
	return &Backend{
		Prefix:   "/api/clients",
		nextID:   1,
		clients:  map[string]models.ClientRecord{},
		requests: map[string]int{},
		now:      time.Now,
	}
}

// Handler builds the chi router.
func (b *Backend) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(b.count)
	r.Route(b.Prefix, func(r chi.Router) {
		r.Get("/", b.list)
		r.Post("/", b.create)
		r.Get("/{id}", b.get)
		r.Patch("/{id}", b.update)
		r.Delete("/{id}", b.delete)
	})
	return r
}

// Seed stores a record as is, assigning an id when it has none.
func (b *Backend) Seed(rec models.ClientRecord) models.ClientRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	if rec.ID == "" {
		rec.ID = models.ID(strconv.Itoa(b.nextID))
		b.nextID++
	}
	b.clients[string(rec.ID)] = rec
	return rec
}

// RejectNextWrite makes the next POST or PATCH fail with status and message.
func (b *Backend) RejectNextWrite(status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reject = &rejection{status: status, message: message}
}

// Requests reports how many requests were received for method.
func (b *Backend) Requests(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[method]
}

// Client returns the stored record.
func (b *Backend) Client(id models.ID) (models.ClientRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.clients[string(id)]
	return rec, ok
}

func (b *Backend) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests[r.Method]++
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) list(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	b.mu.Lock()
	result := make([]models.ClientRecord, 0, len(b.clients))
	for _, c := range b.clients {
		if search == "" || matches(c, search) {
			result = append(result, c)
		}
	}
	b.mu.Unlock()

	sort.Slice(result, func(i, j int) bool {
		a, _ := strconv.Atoi(string(result[i].ID))
		c, _ := strconv.Atoi(string(result[j].ID))
		return a < c
	})
	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) get(w http.ResponseWriter, r *http.Request) {
	rec, ok := b.Client(models.ID(chi.URLParam(r, "id")))
	if !ok {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request) {
	payload, ok := b.decodeWrite(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	now := b.now()
	rec := recordFrom(models.ID(strconv.Itoa(b.nextID)), payload)
	rec.CreatedAt, rec.UpdatedAt = now, now
	b.nextID++
	b.clients[string(rec.ID)] = rec
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec)
}

func (b *Backend) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, ok := b.decodeWrite(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	old, found := b.clients[id]
	if !found {
		b.mu.Unlock()
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	rec := recordFrom(old.ID, payload)
	rec.CreatedAt, rec.UpdatedAt = old.CreatedAt, b.now()
	b.clients[id] = rec
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, rec)
}

func (b *Backend) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b.mu.Lock()
	_, found := b.clients[id]
	delete(b.clients, id)
	b.mu.Unlock()

	if !found {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) decodeWrite(w http.ResponseWriter, r *http.Request) (models.ClientPayload, bool) {
	var payload models.ClientPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return payload, false
	}

	b.mu.Lock()
	rej := b.reject
	b.reject = nil
	b.mu.Unlock()
	if rej != nil {
		writeError(w, rej.status, rej.message)
		return payload, false
	}

	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Surname) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name and surname are required")
		return payload, false
	}
	return payload, true
}

func recordFrom(id models.ID, p models.ClientPayload) models.ClientRecord {
	contacts := p.Contacts
	if contacts == nil {
		contacts = []models.ContactEntry{}
	}
	return models.ClientRecord{ID: id, Name: p.Name, Surname: p.Surname, LastName: p.LastName, Contacts: contacts}
}

func matches(c models.ClientRecord, search string) bool {
	fields := []string{c.Name, c.Surname, c.LastName}
	for _, ct := range c.Contacts {
		fields = append(fields, ct.Value)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
