package ui

import "github.com/dmitrijs2005/clientdesk/internal/client/models"

// RowKey identifies a contact row for the lifetime of a ContactRows value.
// Keys are never reused, so removing one row cannot affect another.
type RowKey int

// ContactRow is one editable contact line.
type ContactRow struct {
	Key   RowKey
	Type  models.ContactType
	Value string
}

// ContactRows is the repeatable contact sub-form. It holds at most
// models.MaxContacts rows when grown through Add.
type ContactRows struct {
	rows []ContactRow
	next RowKey
}

// Add appends an empty row with the first contact type selected. It is a
// no-op returning false once the form holds models.MaxContacts rows.
func (c *ContactRows) Add() (RowKey, bool) {
	if len(c.rows) >= models.MaxContacts {
		return 0, false
	}
	return c.push(models.ContactTypes[0], ""), true
}

// CanAdd reports whether Add would append a row.
func (c *ContactRows) CanAdd() bool {
	return len(c.rows) < models.MaxContacts
}

// Remove deletes exactly the row with key; the rest keep their order.
func (c *ContactRows) Remove(key RowKey) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return true
}

// Clear drops every row.
func (c *ContactRows) Clear() {
	c.rows = nil
}

// Load replaces the rows with one row per entry. Types that are not in
// models.ContactTypes select the first option. The row limit is not applied.
func (c *ContactRows) Load(entries []models.ContactEntry) {
	c.Clear()
	for _, e := range entries {
		t, ok := models.ParseContactType(string(e.Type))
		if !ok {
			t = models.ContactTypes[0]
		}
		c.push(t, e.Value)
	}
}

func (c *ContactRows) SetValue(key RowKey, value string) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	c.rows[i].Value = value
	return true
}

// CycleType moves the row's type selector by delta positions, wrapping
// around the ends of models.ContactTypes.
func (c *ContactRows) CycleType(key RowKey, delta int) bool {
	i := c.index(key)
	if i < 0 {
		return false
	}
	n := len(models.ContactTypes)
	pos := typeIndex(c.rows[i].Type)
	c.rows[i].Type = models.ContactTypes[((pos+delta)%n+n)%n]
	return true
}

func (c *ContactRows) Len() int { return len(c.rows) }

// Rows returns a copy of the rows in display order.
func (c *ContactRows) Rows() []ContactRow {
	out := make([]ContactRow, len(c.rows))
	copy(out, c.rows)
	return out
}

// Entries returns the rows as payload entries in display order. The result
// is never nil.
func (c *ContactRows) Entries() []models.ContactEntry {
	out := make([]models.ContactEntry, 0, len(c.rows))
	for _, r := range c.rows {
		out = append(out, models.ContactEntry{Type: r.Type, Value: r.Value})
	}
	return out
}

func (c *ContactRows) push(t models.ContactType, value string) RowKey {
	c.next++
	c.rows = append(c.rows, ContactRow{Key: c.next, Type: t, Value: value})
	return c.next
}

func (c *ContactRows) index(key RowKey) int {
	for i, r := range c.rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}

func typeIndex(t models.ContactType) int {
	for i, known := range models.ContactTypes {
		if known == t {
			return i
		}
	}
	return 0
}
