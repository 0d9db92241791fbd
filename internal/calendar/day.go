// Package calendar works with timezone-naive calendar days.
//
// A Day carries a year, month and day of month only. Two walks are provided:
// Nights is half-open and matches reservation semantics (check-out day is not
// occupied), Inclusive covers both ends and matches override ranges.
package calendar

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

const (
	hyphenatedLayout = "2006-01-02"
	compactLayout    = "20060102"

	hoursPerDay = 24
)

var ErrMalformedDate = errors.New("malformed date")

// Day is a calendar day without time of day or timezone.
// The zero value is "no day" and reports IsZero.
type Day struct {
	t time.Time
}

func New(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime keeps the calendar fields of t as seen in t's own location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return New(y, m, d)
}

func Today() Day {
	return FromTime(time.Now().UTC())
}

// ParseHyphenated parses YYYY-MM-DD.
func ParseHyphenated(s string) (Day, error) {
	return parse(s, hyphenatedLayout)
}

// ParseCompact parses YYYYMMDD.
func ParseCompact(s string) (Day, error) {
	if len(s) != len(compactLayout) {
		return Day{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return parse(s, compactLayout)
}

func parse(s, layout string) (Day, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return FromTime(t), nil
}

func (d Day) Date() (int, time.Month, int) {
	return d.t.Date()
}

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }
func (d Day) After(o Day) bool  { return d.t.After(o.t) }
func (d Day) Equal(o Day) bool  { return d.t.Equal(o.t) }
func (d Day) IsZero() bool      { return d.t.IsZero() }

// Compare returns -1, 0 or +1.
func (d Day) Compare(o Day) int {
	return d.t.Compare(o.t)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(hyphenatedLayout)
}

func (d Day) Compact() string {
	return d.t.Format(compactLayout)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Day) int {
	return int(b.t.Sub(a.t).Hours() / hoursPerDay)
}

// Nights yields every day in [start, end).
func Nights(start, end Day) iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for d := start; d.Before(end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Inclusive yields every day in [start, end].
func Inclusive(start, end Day) iter.Seq[Day] {
	return Nights(start, end.AddDays(1))
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = Day{}
		return nil
	}
	s = strings.Trim(s, `"`)
	parsed, err := ParseHyphenated(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the day as a DATE-compatible timestamp.
func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Day{}
	case time.Time:
		*d = FromTime(v)
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("calendar: cannot scan %T into Day", src)
	}
	return nil
}

func (d *Day) scanText(s string) error {
	if len(s) > len(hyphenatedLayout) {
		s = s[:len(hyphenatedLayout)]
	}
	parsed, err := ParseHyphenated(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
