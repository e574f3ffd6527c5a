// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

/*
Package date provides a calendar-day value type with a stable "2006-01-02"
JSON wire format.

The catalog API exchanges release dates and birthdays as plain dates; the
standard [time.Time] RFC 3339 encoding leaks the time-of-day and zone, so
this type overrides the JSON round-trip while keeping the full [time.Time]
method set through embedding.
*/
package date

import (
	"fmt"
	"time"
)

// Layout is the wire format for all calendar-day values.
const Layout = "2006-01-02"

// Date is a calendar day. The embedded time is always midnight UTC.
type Date struct {
	time.Time
}

// New constructs a Date from year, month, and day.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a [time.Time] to its calendar day in UTC.
func FromTime(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return New(year, month, day)
}

// Today returns the current calendar day in UTC.
func Today() Date {
	return FromTime(time.Now())
}

// MarshalJSON encodes the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "2006-01-02" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("date: invalid JSON value %s", raw)
	}

	parsed, err := time.Parse(Layout, raw[1:len(raw)-1])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	d.Time = parsed
	return nil
}

// String returns the "2006-01-02" representation.
func (d Date) String() string {
	return d.Format(Layout)
}
