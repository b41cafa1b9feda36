package vegalite

import (
	"io"

	json "github.com/goccy/go-json"
)

// Parse decodes a complete JSON document. Decoding is all-or-nothing: on any
// issue the document is rejected and the returned error is an Issues value
// listing every problem found, each with a JSON Pointer path. Unknown object
// keys are ignored.
func Parse(data []byte) (*TopLevelSpec, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		iss := Issues{{Path: "", Code: CodeParseError, Message: "malformed JSON", Cause: err}}
		return nil, iss
	}
	return ParseAny(tree)
}

// ParseReader decodes a document from r.
func ParseReader(r io.Reader) (*TopLevelSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseAny decodes a document from an already-unmarshaled JSON value tree
// (maps, slices, float64, string, bool, nil).
func ParseAny(tree any) (*TopLevelSpec, error) {
	d := &decoder{}
	spec := d.topLevelSpec(tree, "")
	if err := d.err(); err != nil {
		return nil, err
	}
	return spec, nil
}
