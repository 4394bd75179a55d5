// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or zone. It is comparable and can be
// used as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day, normalizing overflow the way
// time.Date does (e.g. Jan 32 becomes Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()

	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}

	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Time().Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", a full RFC 3339 timestamp (date part is kept)
// or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	if len(s) > len(DateLayout) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
		*d = DateOf(t)

		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
