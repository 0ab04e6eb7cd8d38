package ui

import "time"

// DefaultDebounce is the quiet period after the last keystroke before a
// search is issued.
const DefaultDebounce = 300 * time.Millisecond

type SearchState int

const (
	SearchIdle SearchState = iota
	SearchPending
	SearchQuerying
)

func (s SearchState) String() string {
	switch s {
	case SearchPending:
		return "pending"
	case SearchQuerying:
		return "querying"
	default:
		return "idle"
	}
}

// Search debounces keystrokes. Every keystroke gets a tag; when the delay
// for a tag elapses only the latest tag triggers a query.
type Search struct {
	Delay time.Duration

	text  string
	tag   int
	state SearchState
}

func NewSearch(delay time.Duration) *Search {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Search{Delay: delay}
}

// Keystroke records the new input text and restarts the debounce window.
// The returned tag must be handed back to Elapsed when the delay is over.
func (s *Search) Keystroke(text string) int {
	s.text = text
	s.tag++
	s.state = SearchPending
	return s.tag
}

// Elapsed reports whether tag is the latest pending one. If so the search
// moves to querying and the text to query is returned.
func (s *Search) Elapsed(tag int) (string, bool) {
	if tag != s.tag || s.state != SearchPending {
		return "", false
	}
	s.state = SearchQuerying
	return s.text, true
}

// Settled marks the in-flight query as answered. A keystroke typed while the
// query ran keeps the search pending.
func (s *Search) Settled() {
	if s.state == SearchQuerying {
		s.state = SearchIdle
	}
}

func (s *Search) Text() string       { return s.text }
func (s *Search) State() SearchState { return s.state }
