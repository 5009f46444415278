// Package clock abstracts wall-clock reads so that time-dependent
// queries can be pinned in tests.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reads the same instant.
type Fixed struct {
	t time.Time
}

// At returns a Clock pinned to t.
func At(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}
