package ui

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

// Action is what a Binding does when triggered.
type Action int

const (
	ActionEdit Action = iota
	ActionDelete
	ActionCopy
	ActionRemoveContact
)

// Binding attaches an action to a view node. Only the fields relevant to
// Action are set.
type Binding struct {
	Action   Action
	ClientID models.ID
	Value    string
	Row      RowKey
}

// Badge is one contact rendered in the list.
type Badge struct {
	Type    models.ContactType
	Icon    string
	Tooltip string
	Copy    Binding
}

// Row is one client line of the list.
type Row struct {
	ID       models.ID
	FullName string
	Created  string
	Updated  string
	Badges   []Badge
	Edit     Binding
	Delete   Binding
}

// Table is the rendered client list.
type Table struct {
	Columns []string
	Rows    []Row
}

// Columns of the client list, in display order.
var Columns = []string{"ID", "Full name", "Created", "Updated", "Contacts"}

// TimeFormatter renders backend timestamps for display.
type TimeFormatter struct {
	Layout   string
	Location *time.Location
}

// Format renders t, or the empty string for the zero time.
func (f TimeFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if f.Location != nil {
		t = t.In(f.Location)
	}
	layout := f.Layout
	if layout == "" {
		layout = time.DateTime
	}
	return t.Format(layout)
}

// RenderTable builds the list view for records, one row per record in the
// order given.
func RenderTable(records []models.ClientRecord, f TimeFormatter) Table {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			ID:       rec.ID,
			FullName: FullName(rec),
			Created:  f.Format(rec.CreatedAt),
			Updated:  f.Format(rec.UpdatedAt),
			Badges:   Badges(rec.Contacts),
			Edit:     Binding{Action: ActionEdit, ClientID: rec.ID},
			Delete:   Binding{Action: ActionDelete, ClientID: rec.ID},
		})
	}
	return Table{Columns: Columns, Rows: rows}
}

// FullName joins surname, name and last name, skipping empty parts.
func FullName(rec models.ClientRecord) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Surname, rec.Name, rec.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func Badges(contacts []models.ContactEntry) []Badge {
	badges := make([]Badge, 0, len(contacts))
	for _, c := range contacts {
		badges = append(badges, Badge{
			Type:    c.Type,
			Icon:    ContactIcon(c.Type),
			Tooltip: string(c.Type) + ": " + c.Value,
			Copy:    Binding{Action: ActionCopy, Value: c.Value},
		})
	}
	return badges
}

// ContactIcon picks the badge icon for a contact type, ignoring case.
func ContactIcon(t models.ContactType) string {
	known, _ := models.ParseContactType(string(t))
	switch known {
	case models.ContactPhone:
		return "📱"
	case models.ContactEmail:
		return "📥"
	case models.ContactVK:
		return "☢️"
	default:
		return "👤"
	}
}

// FormRow is one contact line of the dialog.
type FormRow struct {
	Key       RowKey
	Type      models.ContactType
	TypeLabel string
	Value     string
	Remove    Binding
}

// ContactFormRows renders the contact sub-form in display order.
func ContactFormRows(c *ContactRows) []FormRow {
	out := make([]FormRow, 0, c.Len())
	for _, r := range c.Rows() {
		out = append(out, FormRow{
			Key:       r.Key,
			Type:      r.Type,
			TypeLabel: r.Type.Label(),
			Value:     r.Value,
			Remove:    Binding{Action: ActionRemoveContact, Row: r.Key},
		})
	}
	return out
}
