// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var location = time.UTC

// UseLocation sets the timezone that decides what "today" is for the library.
// Called once at startup; unknown names fall back to UTC.
func UseLocation(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		location = time.UTC
		return
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] unknown LIBRARY_TIMEZONE %q, using UTC: %v", name, err)
		location = time.UTC
		return
	}
	location = loc
}

func Location() *time.Location { return location }

// Today is the current calendar date in the library timezone, as UTC midnight.
// Evaluated on every call.
func Today() time.Time {
	return DateOf(time.Now().In(location))
}

// DateOf drops the clock and zone, keeping the calendar date as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

/* ===== datatypes.Date bridges ===== */

func ToDate(t time.Time) datatypes.Date { return datatypes.Date(DateOf(t)) }

// FromDate returns nil for a nil column.
func FromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := DateOf(time.Time(*d))
	return &t
}

func FormatDatePtr(d *datatypes.Date) *string {
	t := FromDate(d)
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
