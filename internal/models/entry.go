// Package models defines the todo list record types: the calendar Date
// value, the stored Entry, and the NewEntry shape used before an id is
// assigned.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for components that do not form a real
// calendar date (month 13, February 31, ...). Match with errors.Is.
var ErrInvalidDate = errors.New("invalid calendar date")

// ErrDateFormat is returned by ParseDate when the input does not have the
// slash-separated year/month/day shape at all.
var ErrDateFormat = errors.New("date must be year/month/day")

// Date is a calendar date with no time component. The zero value is "no
// date". Date is comparable, so it can be used as a map key and compared
// with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date and validates that the components form a real
// calendar date. Validation round-trips through time.Date, which
// normalizes out-of-range values; any normalization means the input was
// not a real date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%04d/%02d/%02d: %w", year, month, day, ErrInvalidDate)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses the interchange form "YYYY/MM/DD". The field order is
// year/month/day, the order the import file format uses, and is kept
// exactly for compatibility. Each component must be an integer and the
// three together must form a valid calendar date.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%q: %w", s, ErrDateFormat)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%q: non-numeric component %q: %w", s, p, ErrDateFormat)
		}
		nums[i] = n
	}
	return NewDate(nums[0], time.Month(nums[1]), nums[2])
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d is a real calendar date.
func (d Date) Valid() bool {
	_, err := NewDate(d.Year, d.Month, d.Day)
	return err == nil
}

// Time returns the date at midnight UTC, for interop with code that wants
// a time.Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the interchange form "YYYY/MM/DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// NewEntry is the partial record handed to the store before an id exists.
// Both fields are required; the store rejects a zero or invalid Date. An
// empty title is allowed, the import format can legitimately produce one.
type NewEntry struct {
	Date  Date
	Title string
}

// Entry is a stored todo record. ID is assigned by the store and never
// changes afterwards. Equality is structural.
type Entry struct {
	ID    int
	Date  Date
	Title string
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %s %s", e.ID, e.Date, e.Title)
}
