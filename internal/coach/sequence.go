package coach

// Sequencer numbers tip requests so that a late answer to an older
// question never replaces the answer to a newer one. Used from a single
// event loop.
type Sequencer struct {
	latest uint64
}

// Next issues the number for a new request
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// IsLatest reports whether seq belongs to the most recent request
func (s *Sequencer) IsLatest(seq uint64) bool {
	return seq != 0 && seq == s.latest
}
