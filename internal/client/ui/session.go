package ui

import "github.com/dmitrijs2005/clientdesk/internal/client/models"

// Session is the add/edit dialog: its visibility, the record it edits and
// the form behind it.
type Session struct {
	Form Form

	open      bool
	currentID models.ID
}

// Submission is a validated form ready to be sent. Create is true when the
// session has no current id.
type Submission struct {
	ID      models.ID
	Create  bool
	Payload models.ClientPayload
}

// OpenCreate shows an empty dialog for a new client.
func (s *Session) OpenCreate() {
	s.open = true
	s.currentID = ""
	s.Form.Reset()
}

// OpenEdit shows the dialog for id with an empty form; Apply fills it once
// the record arrives.
func (s *Session) OpenEdit(id models.ID) {
	s.open = true
	s.currentID = id
	s.Form.Reset()
}

// Apply loads rec into the form if the dialog is still editing rec.ID.
func (s *Session) Apply(rec models.ClientRecord) bool {
	if !s.open || s.currentID == "" || s.currentID != rec.ID {
		return false
	}
	s.Form.Load(rec)
	return true
}

// Close hides the dialog and forgets the current id. Form values are kept.
func (s *Session) Close() {
	s.open = false
	s.currentID = ""
}

func (s *Session) IsOpen() bool { return s.open }

// CurrentID returns the id being edited, if any.
func (s *Session) CurrentID() (models.ID, bool) {
	return s.currentID, s.currentID != ""
}

func (s *Session) Title() string {
	if s.currentID != "" {
		return TitleEdit
	}
	return TitleCreate
}

// ShowDelete reports whether the dialog offers deletion.
func (s *Session) ShowDelete() bool {
	return s.open && s.currentID != ""
}

// Submit validates the form and describes the request to send.
func (s *Session) Submit() (Submission, error) {
	if err := s.Form.Validate(); err != nil {
		return Submission{}, err
	}
	return Submission{
		ID:      s.currentID,
		Create:  s.currentID == "",
		Payload: s.Form.Payload(),
	}, nil
}
