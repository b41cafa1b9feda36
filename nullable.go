package vegalite

import (
	json "github.com/goccy/go-json"
)

// Nullable wraps an object slot that also accepts an explicit JSON null on
// the wire (axis: null hides the axis entirely). An absent field stays a nil
// *Nullable in the parent; Null marshals as the null literal.
type Nullable[T any] struct {
	Null  bool
	Value *T
}

// NullOf is the explicit-null slot.
func NullOf[T any]() *Nullable[T] { return &Nullable[T]{Null: true} }

// Some wraps a present value.
func Some[T any](v T) *Nullable[T] { return &Nullable[T]{Value: &v} }

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func nullableOf[T any](d *decoder, v any, path string, decode func(any, string) *T) *Nullable[T] {
	if v == nil {
		return &Nullable[T]{Null: true}
	}
	return &Nullable[T]{Value: decode(v, path)}
}

// NullableString is a string slot that accepts explicit null (title: null
// removes the default title).
type NullableString struct {
	Null  bool
	Value *string
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (d *decoder) nullableString(v any, path string) *NullableString {
	if v == nil {
		return &NullableString{Null: true}
	}
	return &NullableString{Value: d.str(v, path)}
}
