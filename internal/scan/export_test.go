package scan

import "time"

// SetNow overrides the report timestamp source.
func (s *Scanner) SetNow(now func() time.Time) {
	s.now = now
}
