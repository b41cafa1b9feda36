package vegalite

import (
	json "github.com/goccy/go-json"
)

// Value is a constant visual value for a channel: a number, a string (a color
// name, a shape, ...) or a boolean. Exactly one field is set. The three JSON
// scalar kinds are disjoint, so decode order carries no ambiguity; it is fixed
// as number, string, boolean anyway.
type Value struct {
	Number *float64
	String *string
	Bool   *bool
}

// NumberValue wraps a numeric constant.
func NumberValue(f float64) *Value { return &Value{Number: &f} }

// StringValue wraps a string constant.
func StringValue(s string) *Value { return &Value{String: &s} }

// BoolValue wraps a boolean constant.
func BoolValue(b bool) *Value { return &Value{Bool: &b} }

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.Number != nil:
		return json.Marshal(*v.Number)
	case v.String != nil:
		return json.Marshal(*v.String)
	case v.Bool != nil:
		return json.Marshal(*v.Bool)
	}
	return []byte("null"), nil
}

func (d *decoder) value(v any, path string) *Value {
	if f, ok := numVal(v); ok {
		return &Value{Number: &f}
	}
	if s, ok := strVal(v); ok {
		return &Value{String: &s}
	}
	if b, ok := boolVal(v); ok {
		return &Value{Bool: &b}
	}
	d.fail(path, CodeUnionNoMatch, "expected number, string, or boolean")
	return nil
}
