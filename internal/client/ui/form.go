package ui

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// ValidationError names the first required field left empty. Contact is the
// 1-based row number when the field is a contact value.
type ValidationError struct {
	Field   string
	Contact int
}

func (e *ValidationError) Error() string {
	if e.Contact > 0 {
		return fmt.Sprintf("contact %d: value is required", e.Contact)
	}
	return e.Field + " is required"
}

// Form is the client form: three scalar fields plus the contact rows.
type Form struct {
	Name     string
	Surname  string
	LastName string
	Contacts ContactRows
}

// Reset clears every field and row.
func (f *Form) Reset() {
	f.Name, f.Surname, f.LastName = "", "", ""
	f.Contacts.Clear()
}

// Load fills the form from rec, rebuilding one contact row per entry.
func (f *Form) Load(rec models.ClientRecord) {
	f.Name = rec.Name
	f.Surname = rec.Surname
	f.LastName = rec.LastName
	f.Contacts.Load(rec.Contacts)
}

// Validate checks the required fields: name, surname and every contact value.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(f.Surname) == "" {
		return &ValidationError{Field: "surname"}
	}
	for i, r := range f.Contacts.Rows() {
		if strings.TrimSpace(r.Value) == "" {
			return &ValidationError{Field: "value", Contact: i + 1}
		}
	}
	return nil
}

// Payload builds the create/update body from the values as entered.
func (f *Form) Payload() models.ClientPayload {
	return models.ClientPayload{
		Name:     f.Name,
		Surname:  f.Surname,
		LastName: f.LastName,
		Contacts: f.Contacts.Entries(),
	}
}
