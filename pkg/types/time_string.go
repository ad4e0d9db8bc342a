package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day (HH:MM, 24-hour clock).
const timeLayout = "15:04"

// ErrInvalidTimeString is returned for values that do not parse as HH:MM.
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a time of day in "HH:MM" format.
// Used for working-window configuration and slot labels, where only the
// wall-clock time matters and no date or zone is attached.
type TimeString string

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate reports whether the value is a well-formed HH:MM time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the raw HH:MM value.
func (ts TimeString) String() string {
	return string(ts)
}

// minutes returns the value as minutes since midnight.
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore reports whether ts is strictly earlier than other.
// Malformed values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// OnDate combines the time of day with a calendar date in the given location.
func (ts TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := ts.minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc), nil
}
