package vegalite

import (
	json "github.com/goccy/go-json"
)

// StringList is the recurring "string or array of strings" wire shape (mark
// style, transform output fields, ...). Decode order: string, then array.
type StringList struct {
	One  *string
	Many []string
}

// Strings builds a StringList, collapsing a single element to the scalar form.
func Strings(ss ...string) *StringList {
	if len(ss) == 1 {
		return &StringList{One: &ss[0]}
	}
	return &StringList{Many: ss}
}

func (s StringList) MarshalJSON() ([]byte, error) {
	if s.One != nil {
		return json.Marshal(*s.One)
	}
	return json.Marshal(s.Many)
}

func (d *decoder) stringList(v any, path string) *StringList {
	if s, ok := strVal(v); ok {
		return &StringList{One: &s}
	}
	if _, ok := arrVal(v); ok {
		return &StringList{Many: d.strSlice(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected string or array of strings")
	return nil
}
