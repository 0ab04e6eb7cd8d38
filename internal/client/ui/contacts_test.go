package ui

import (
	"testing"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRows_AddStopsAtLimit(t *testing.T) {
	var c ContactRows
	for i := 0; i < models.MaxContacts; i++ {
		_, ok := c.Add()
		require.True(t, ok)
	}
	assert.False(t, c.CanAdd())

	_, ok := c.Add()
	assert.False(t, ok)
	assert.Equal(t, models.MaxContacts, c.Len())
}

func TestContactRows_AddDefaultsToFirstType(t *testing.T) {
	var c ContactRows
	c.Add()
	assert.Equal(t, []models.ContactEntry{{Type: models.ContactPhone, Value: ""}}, c.Entries())
}

func TestContactRows_RemoveKeepsOrder(t *testing.T) {
	var c ContactRows
	keys := make([]RowKey, 4)
	for i := range keys {
		keys[i], _ = c.Add()
		c.SetValue(keys[i], string(rune('a'+i)))
	}

	require.True(t, c.Remove(keys[1]))
	assert.False(t, c.Remove(keys[1]), "a key is removed only once")

	var values []string
	for _, e := range c.Entries() {
		values = append(values, e.Value)
	}
	assert.Equal(t, []string{"a", "c", "d"}, values)

	k, ok := c.Add()
	require.True(t, ok)
	assert.NotContains(t, keys, k, "keys are not reused")
}

func TestContactRows_Load(t *testing.T) {
	var c ContactRows
	c.Add()

	c.Load([]models.ContactEntry{
		{Type: models.ContactEmail, Value: "a@b.com"},
		{Type: "Phone", Value: "+7"},
		{Type: "telegram", Value: "@ab"},
	})

	assert.Equal(t, []models.ContactEntry{
		{Type: models.ContactEmail, Value: "a@b.com"},
		{Type: models.ContactPhone, Value: "+7"},
		{Type: models.ContactPhone, Value: "@ab"},
	}, c.Entries())
}

func TestContactRows_LoadIgnoresLimit(t *testing.T) {
	entries := make([]models.ContactEntry, models.MaxContacts+2)
	for i := range entries {
		entries[i] = models.ContactEntry{Type: models.ContactOther, Value: "x"}
	}

	var c ContactRows
	c.Load(entries)
	assert.Equal(t, models.MaxContacts+2, c.Len())
	_, ok := c.Add()
	assert.False(t, ok)
}

func TestContactRows_CycleType(t *testing.T) {
	var c ContactRows
	k, _ := c.Add()

	require.True(t, c.CycleType(k, 1))
	assert.Equal(t, models.ContactEmail, c.Rows()[0].Type)

	c.CycleType(k, -2)
	assert.Equal(t, models.ContactOther, c.Rows()[0].Type)

	c.CycleType(k, 1)
	assert.Equal(t, models.ContactPhone, c.Rows()[0].Type)

	assert.False(t, c.CycleType(RowKey(99), 1))
	assert.False(t, c.SetValue(RowKey(99), "x"))
}

func TestContactRows_EntriesNeverNil(t *testing.T) {
	var c ContactRows
	assert.NotNil(t, c.Entries())
	assert.Empty(t, c.Entries())
}
