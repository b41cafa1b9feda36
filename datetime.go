package vegalite

import (
	json "github.com/goccy/go-json"
)

// DateTime is the grammar's date-time literal. All fields are optional; a
// literal with only year/month describes that month, etc.
type DateTime struct {
	Year         *float64 `json:"year,omitempty"`
	Quarter      *float64 `json:"quarter,omitempty"`
	Month        *Month   `json:"month,omitempty"`
	Date         *float64 `json:"date,omitempty"`
	Day          *Day     `json:"day,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	Minutes      *float64 `json:"minutes,omitempty"`
	Seconds      *float64 `json:"seconds,omitempty"`
	Milliseconds *float64 `json:"milliseconds,omitempty"`
	UTC          *bool    `json:"utc,omitempty"`
}

// Month is a 1-based month number or a month name ("jan", "January", ...).
// Decode order: number, then string.
type Month struct {
	Number *float64
	Name   *string
}

func (m Month) MarshalJSON() ([]byte, error) {
	if m.Number != nil {
		return json.Marshal(*m.Number)
	}
	return json.Marshal(m.Name)
}

// Day is a day-of-week number (1 = Monday in the grammar) or a day name.
// Decode order: number, then string.
type Day struct {
	Number *float64
	Name   *string
}

func (dy Day) MarshalJSON() ([]byte, error) {
	if dy.Number != nil {
		return json.Marshal(*dy.Number)
	}
	return json.Marshal(dy.Name)
}

func (d *decoder) month(v any, path string) *Month {
	if f, ok := numVal(v); ok {
		return &Month{Number: &f}
	}
	if s, ok := strVal(v); ok {
		return &Month{Name: &s}
	}
	d.fail(path, CodeUnionNoMatch, "expected month number or name")
	return nil
}

func (d *decoder) day(v any, path string) *Day {
	if f, ok := numVal(v); ok {
		return &Day{Number: &f}
	}
	if s, ok := strVal(v); ok {
		return &Day{Name: &s}
	}
	d.fail(path, CodeUnionNoMatch, "expected day number or name")
	return nil
}

func (d *decoder) dateTime(v any, path string) *DateTime {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	dt := &DateTime{}
	if x, ok := m["year"]; ok {
		dt.Year = d.num(x, childPath(path, "year"))
	}
	if x, ok := m["quarter"]; ok {
		dt.Quarter = d.num(x, childPath(path, "quarter"))
	}
	if x, ok := m["month"]; ok {
		dt.Month = d.month(x, childPath(path, "month"))
	}
	if x, ok := m["date"]; ok {
		dt.Date = d.num(x, childPath(path, "date"))
	}
	if x, ok := m["day"]; ok {
		dt.Day = d.day(x, childPath(path, "day"))
	}
	if x, ok := m["hours"]; ok {
		dt.Hours = d.num(x, childPath(path, "hours"))
	}
	if x, ok := m["minutes"]; ok {
		dt.Minutes = d.num(x, childPath(path, "minutes"))
	}
	if x, ok := m["seconds"]; ok {
		dt.Seconds = d.num(x, childPath(path, "seconds"))
	}
	if x, ok := m["milliseconds"]; ok {
		dt.Milliseconds = d.num(x, childPath(path, "milliseconds"))
	}
	if x, ok := m["utc"]; ok {
		dt.UTC = d.boolean(x, childPath(path, "utc"))
	}
	return dt
}

// dateTimeLike reports whether an object plausibly is a DateTime literal
// (union trials only; the committed decode still validates field types).
func dateTimeLike(m map[string]any) bool {
	return hasKey(m, "year", "quarter", "month", "date", "day", "hours", "minutes", "seconds", "milliseconds", "utc")
}
