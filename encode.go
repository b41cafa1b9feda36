package vegalite

import (
	json "github.com/goccy/go-json"
)

// Marshal renders a document as compact JSON. Absent optional fields are
// omitted entirely; an explicit null is emitted only where the model records
// one (Nullable values, ParseSpec.Null, and friends).
func Marshal(spec *TopLevelSpec) ([]byte, error) {
	return json.Marshal(spec)
}

// MarshalIndent renders a document as indented JSON.
func MarshalIndent(spec *TopLevelSpec, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(spec, prefix, indent)
}

// Clone deep-copies a document by round-tripping it through the wire form.
// The two values share no mutable state.
func Clone(spec *TopLevelSpec) (*TopLevelSpec, error) {
	raw, err := Marshal(spec)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// marshalMerged marshals inner to an object, applies mutate, and re-marshals.
// Used where a wire object mixes struct-tagged fields with keys Go cannot
// express through tags alone.
func marshalMerged(inner any, mutate func(map[string]any)) ([]byte, error) {
	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	mutate(m)
	return json.Marshal(m)
}

func marshalTagged(tag string, inner any) ([]byte, error) {
	return marshalMerged(inner, func(m map[string]any) { m["type"] = tag })
}
