// Package types implements special types for the savings backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"time"
)

// Date is a calendar date with day precision, stored in UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time instant occurs in that instant's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the current Date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a string in RFC3339 full-date format ("YYYY-MM-DD") and
// returns the Date it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
// The zero Date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Empty strings and null decode to the zero Date, everything else
// must be in YYYY-MM-DD format.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds the specified amount of days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Weekday returns the day-of-week index of the date, with Sunday = 0
// through Saturday = 6.
func (d Date) Weekday() int {
	return int(time.Time(d).Weekday())
}

// Week is an inclusive range of dates. Weeks computed by WeekOf always
// span Sunday through Saturday, but ranges resolved from user input can
// have arbitrary boundaries.
type Week struct {
	Start Date `json:"start_date" example:"2024-03-10"` // First day of the range
	End   Date `json:"end_date" example:"2024-03-16"`   // Last day of the range
}

// WeekOf returns the Sunday-to-Saturday week that contains the date.
func WeekOf(d Date) Week {
	start := d.AddDays(-d.Weekday())

	return Week{
		Start: start,
		End:   start.AddDays(6),
	}
}

// CurrentWeek returns the week containing the current date.
func CurrentWeek() Week {
	return WeekOf(Today())
}

// Day returns the date of the day with the given Sunday-first index
// within the week.
func (w Week) Day(day int) Date {
	return w.Start.AddDays(day)
}

// Contains reports whether the date lies within the week, inclusive on
// both ends.
func (w Week) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
