package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ID
		wantErr bool
	}{
		{name: "string", in: `"a1b2"`, want: "a1b2"},
		{name: "integer", in: `42`, want: "42"},
		{name: "large integer keeps digits", in: `1712345678901`, want: "1712345678901"},
		{name: "object", in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestClientRecord_Decode(t *testing.T) {
	body := `{
		"id": 7,
		"name": "Ivan",
		"surname": "Petrov",
		"createdAt": "2024-03-01T10:00:00.000Z",
		"updatedAt": "2024-03-02T11:30:00.000Z",
		"contacts": [{"type": "телефон", "value": "+7 900 000-00-00"}, {"type": "email", "value": "ivan@example.com"}]
	}`

	var r ClientRecord
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, ID("7"), r.ID)
	assert.Empty(t, r.LastName)
	assert.Equal(t, time.Date(2024, 3, 2, 11, 30, 0, 0, time.UTC), r.UpdatedAt.UTC())
	require.Len(t, r.Contacts, 2)
	assert.Equal(t, ContactPhone, r.Contacts[0].Type)
}

func TestClientPayload_WireShape(t *testing.T) {
	p := ClientPayload{Name: "A", Surname: "B", Contacts: []ContactEntry{{Type: ContactEmail, Value: "a@b.com"}}}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","surname":"B","lastName":"","contacts":[{"type":"email","value":"a@b.com"}]}`, string(b))
}

func TestParseContactType(t *testing.T) {
	tests := []struct {
		in   string
		want ContactType
		ok   bool
	}{
		{in: "телефон", want: ContactPhone, ok: true},
		{in: "Phone", want: ContactPhone, ok: true},
		{in: "EMAIL", want: ContactEmail, ok: true},
		{in: "vk", want: ContactVK, ok: true},
		{in: "other", want: ContactOther, ok: true},
		{in: "Другое", want: ContactOther, ok: true},
		{in: "telegram", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseContactType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestContactType_Label(t *testing.T) {
	assert.Equal(t, "Phone", ContactPhone.Label())
	assert.Equal(t, "VK", ContactType("VK").Label())
	assert.Equal(t, "telegram", ContactType("telegram").Label())
}

func TestClientRecord_PayloadCopiesContacts(t *testing.T) {
	r := ClientRecord{Name: "A", Contacts: []ContactEntry{{Type: ContactVK, Value: "id1"}}}
	p := r.Payload()
	p.Contacts[0].Value = "changed"
	assert.Equal(t, "id1", r.Contacts[0].Value)
}
