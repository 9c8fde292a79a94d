package internal

import (
	"fmt"
	"strings"
	"time"
)

// DateKey is a calendar date in the DD.MM.YYYY form PrivatBank expects.
type DateKey string

const dateKeyLayout = "02.01.2006"

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("date is empty")
	}

	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDateKey(t), nil
}

func (d DateKey) String() string { return string(d) }

// DateRange returns n keys starting at the calendar day of ref and going
// back one day at a time. ref must be read once per run and reused.
func DateRange(ref time.Time, n int) []DateKey {
	if n <= 0 {
		return []DateKey{}
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	out := make([]DateKey, n)
	for i := range out {
		out[i] = NewDateKey(day.AddDate(0, 0, -i))
	}
	return out
}
