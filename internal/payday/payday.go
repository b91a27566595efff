package payday

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidDate = errors.New("invalid payday date")

// Parse reads a YYYY-MM-DD payday date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t, nil
}

// Set is a set of payday dates keyed by calendar day.
type Set map[string]struct{}

func NewSet(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s.Add(d)
	}

	return s
}

func key(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Add is a no-op for a date already in the set.
func (s Set) Add(t time.Time) {
	s[key(t)] = struct{}{}
}

// Remove is a no-op for a date not in the set.
func (s Set) Remove(t time.Time) {
	delete(s, key(t))
}

func (s Set) Contains(t time.Time) bool {
	_, ok := s[key(t)]
	return ok
}

// Dates returns the paydays in ascending order.
func (s Set) Dates() []time.Time {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	// ISO dates sort chronologically as strings.
	slices.Sort(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		t, _ := time.Parse(time.DateOnly, k)
		dates = append(dates, t)
	}

	return dates
}
