// Package models defines the client records exchanged with the backend.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MaxContacts is the number of contact rows a user may enter for one client.
const MaxContacts = 10

// ID is the backend-issued identifier of a client. The backend may send it as
// a JSON string or number; both decode into the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("client id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// ContactType classifies a contact entry.
type ContactType string

// The wire values are the ones the clients backend stores.
const (
	ContactPhone ContactType = "телефон"
	ContactEmail ContactType = "email"
	ContactVK    ContactType = "vk"
	ContactOther ContactType = "другое"
)

// ContactTypes lists the selectable types in display order.
var ContactTypes = []ContactType{ContactPhone, ContactEmail, ContactVK, ContactOther}

var contactTypeAliases = map[string]ContactType{
	"телефон": ContactPhone,
	"phone":   ContactPhone,
	"email":   ContactEmail,
	"vk":      ContactVK,
	"другое":  ContactOther,
	"other":   ContactOther,
}

// ParseContactType maps a wire or English name, case-insensitively, onto one
// of ContactTypes.
func ParseContactType(s string) (ContactType, bool) {
	t, ok := contactTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// Label is the human-readable name of a known type; unknown types are
// returned as they are.
func (t ContactType) Label() string {
	known, ok := ParseContactType(string(t))
	if !ok {
		return string(t)
	}
	switch known {
	case ContactPhone:
		return "Phone"
	case ContactEmail:
		return "Email"
	case ContactVK:
		return "VK"
	default:
		return "Other"
	}
}

// ContactEntry is one typed contact owned by a client.
type ContactEntry struct {
	Type  ContactType `json:"type"`
	Value string      `json:"value"`
}

// ClientRecord is a client as returned by the backend.
type ClientRecord struct {
	ID        ID             `json:"id"`
	Name      string         `json:"name"`
	Surname   string         `json:"surname"`
	LastName  string         `json:"lastName,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Contacts  []ContactEntry `json:"contacts"`
}

// ClientPayload is the body of create and update requests.
type ClientPayload struct {
	Name     string         `json:"name"`
	Surname  string         `json:"surname"`
	LastName string         `json:"lastName"`
	Contacts []ContactEntry `json:"contacts"`
}

// Payload returns the editable part of r.
func (r ClientRecord) Payload() ClientPayload {
	contacts := make([]ContactEntry, len(r.Contacts))
	copy(contacts, r.Contacts)
	return ClientPayload{Name: r.Name, Surname: r.Surname, LastName: r.LastName, Contacts: contacts}
}
