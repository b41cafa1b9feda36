package vegalite_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	vl "github.com/reoring/vegalite"
)

func TestParseYAML(t *testing.T) {
	spec, err := vl.ParseYAML([]byte(`
mark: point
data:
  url: cars.json
encoding:
  x:
    field: Horsepower
    type: quantitative
    scale:
      domain: [0, 250]
  y:
    field: Miles_per_Gallon
    type: quantitative
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	dom := spec.Unit.Encoding.X.Def.Scale.Value.Domain
	if len(dom.Values) != 2 || *dom.Values[1].Number != 250 {
		t.Fatalf("domain = %+v", dom)
	}
}

func TestYAMLMatchesJSON(t *testing.T) {
	fromYAML, err := vl.ParseYAML([]byte(`
mark:
  type: line
  point: true
width: 400
encoding:
  x: {field: t, type: temporal}
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	fromJSON, err := vl.Parse([]byte(`{
		"mark": {"type": "line", "point": true},
		"width": 400,
		"encoding": {"x": {"field": "t", "type": "temporal"}}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := vl.Marshal(fromYAML)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := vl.Marshal(fromJSON)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var at, bt any
	if err := json.Unmarshal(a, &at); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := json.Unmarshal(b, &bt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(bt, at); diff != "" {
		t.Fatalf("YAML and JSON parses disagree (-json +yaml):\n%s", diff)
	}
}

func TestYAMLIssuesSharePaths(t *testing.T) {
	_, err := vl.ParseYAML([]byte(`
mark: sparkle
`))
	iss, ok := vl.AsIssues(err)
	if !ok || iss[0].Path != "/mark" || iss[0].Code != vl.CodeInvalidEnum {
		t.Fatalf("issue = %v", err)
	}
}

func TestYAMLMalformed(t *testing.T) {
	_, err := vl.ParseYAML([]byte("mark: [unclosed"))
	iss, ok := vl.AsIssues(err)
	if !ok || iss[0].Code != vl.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}
