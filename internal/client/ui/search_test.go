package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch_OnlyLatestTagFires(t *testing.T) {
	s := NewSearch(0)
	assert.Equal(t, DefaultDebounce, s.Delay)

	t1 := s.Keystroke("i")
	t2 := s.Keystroke("iv")
	t3 := s.Keystroke("iva")
	assert.Equal(t, SearchPending, s.State())

	var queries []string
	for _, tag := range []int{t1, t2, t3} {
		if text, ok := s.Elapsed(tag); ok {
			queries = append(queries, text)
		}
	}
	assert.Equal(t, []string{"iva"}, queries)
	assert.Equal(t, SearchQuerying, s.State())

	_, ok := s.Elapsed(t3)
	assert.False(t, ok, "a tag fires once")

	s.Settled()
	assert.Equal(t, SearchIdle, s.State())
}

func TestSearch_KeystrokeWhileQuerying(t *testing.T) {
	s := NewSearch(DefaultDebounce)
	tag := s.Keystroke("a")
	s.Elapsed(tag)

	next := s.Keystroke("ab")
	s.Settled()
	assert.Equal(t, SearchPending, s.State())

	text, ok := s.Elapsed(next)
	assert.True(t, ok)
	assert.Equal(t, "ab", text)
	assert.Equal(t, "ab", s.Text())
}

func TestSequence_Latest(t *testing.T) {
	var s Sequence
	assert.False(t, s.Latest(0))

	first := s.Next()
	second := s.Next()
	assert.False(t, s.Latest(first))
	assert.True(t, s.Latest(second))
}
