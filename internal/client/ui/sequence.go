package ui

// Sequence issues increasing tokens for requests of one kind so that only
// the response to the most recent request is applied.
type Sequence struct {
	last uint64
}

func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Latest reports whether token belongs to the newest request issued.
func (s *Sequence) Latest(token uint64) bool {
	return token != 0 && token == s.last
}
