package vegalite_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	vl "github.com/reoring/vegalite"
)

// roundTrip parses src, marshals the result, and compares both as generic
// trees so key order never matters.
func roundTrip(t *testing.T, src string) {
	t.Helper()
	spec, err := vl.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := vl.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var want, got any
	if err := json.Unmarshal([]byte(src), &want); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("bad output: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripScatter(t *testing.T) {
	roundTrip(t, `{
		"$schema": "https://vega.github.io/schema/vega-lite/v3.json",
		"description": "Horsepower vs. mileage",
		"data": {"url": "data/cars.json"},
		"mark": "point",
		"encoding": {
			"x": {"field": "Horsepower", "type": "quantitative"},
			"y": {"field": "Miles_per_Gallon", "type": "quantitative"},
			"color": {"field": "Origin", "type": "nominal"}
		}
	}`)
}

func TestRoundTripStackedBarWithConfig(t *testing.T) {
	roundTrip(t, `{
		"data": {"values": [
			{"category": "A", "amount": 28},
			{"category": "B", "amount": 55}
		]},
		"mark": {"type": "bar", "tooltip": {"content": "data"}},
		"encoding": {
			"x": {"field": "category", "type": "ordinal", "sort": "descending"},
			"y": {"aggregate": "sum", "field": "amount", "type": "quantitative", "stack": "normalize"},
			"color": {"field": "category", "type": "nominal", "legend": null},
			"tooltip": [
				{"field": "category", "type": "nominal"},
				{"field": "amount", "type": "quantitative", "format": ".2f"}
			]
		},
		"config": {
			"axis": {"grid": false, "labelFontSize": 11},
			"bar": {"binSpacing": 1},
			"view": {"stroke": "transparent"},
			"scale": {"rangeStep": null}
		}
	}`)
}

func TestRoundTripLayered(t *testing.T) {
	roundTrip(t, `{
		"data": {"url": "data/stocks.csv", "format": {"type": "csv", "parse": {"date": "date", "price": "number"}}},
		"transform": [{"filter": "datum.symbol === 'GOOG'"}],
		"layer": [
			{
				"mark": "line",
				"encoding": {
					"x": {"field": "date", "type": "temporal", "timeUnit": "yearmonth"},
					"y": {"field": "price", "type": "quantitative"}
				}
			},
			{
				"mark": {"type": "rule", "color": "firebrick"},
				"encoding": {"y": {"aggregate": "mean", "field": "price", "type": "quantitative"}}
			}
		],
		"resolve": {"scale": {"y": "shared"}}
	}`)
}

func TestRoundTripVConcatWithDatasets(t *testing.T) {
	roundTrip(t, `{
		"data": {"name": "source"},
		"vconcat": [
			{
				"mark": "area",
				"width": 480,
				"encoding": {
					"x": {"field": "date", "type": "temporal", "scale": {"domain": {"selection": "brush"}}},
					"y": {"field": "price", "type": "quantitative"}
				}
			},
			{
				"mark": "area",
				"selection": {"brush": {"type": "interval", "encodings": ["x"]}},
				"encoding": {
					"x": {"field": "date", "type": "temporal"},
					"y": {"field": "price", "type": "quantitative", "axis": {"tickCount": 3, "grid": false}}
				}
			}
		],
		"datasets": {"source": [{"date": "2020-01-01", "price": 100}]}
	}`)
}

func TestRoundTripRepeatSpec(t *testing.T) {
	roundTrip(t, `{
		"repeat": {"row": ["Horsepower", "Acceleration"], "column": ["Miles_per_Gallon"]},
		"spec": {
			"data": {"url": "data/cars.json"},
			"mark": "point",
			"encoding": {
				"x": {"field": {"repeat": "column"}, "type": "quantitative"},
				"y": {"field": {"repeat": "row"}, "type": "quantitative", "bin": true}
			}
		}
	}`)
}

func TestRoundTripConcatGrid(t *testing.T) {
	roundTrip(t, `{
		"data": {"url": "data/cars.json"},
		"concat": [
			{"mark": "bar", "encoding": {"x": {"field": "Origin", "type": "nominal"}}},
			{"mark": "line", "encoding": {"x": {"field": "Year", "type": "temporal"}}},
			{"mark": "point"}
		],
		"columns": 2,
		"align": "each",
		"spacing": 20,
		"bounds": "flush"
	}`)
}

func TestRoundTripRepeatFieldArray(t *testing.T) {
	roundTrip(t, `{
		"repeat": ["Horsepower", "Acceleration", "Displacement"],
		"columns": 2,
		"spec": {
			"data": {"url": "data/cars.json"},
			"mark": "bar",
			"encoding": {"x": {"field": {"repeat": "repeat"}, "type": "quantitative", "bin": true}}
		}
	}`)
}

func TestRoundTripConditionalEncoding(t *testing.T) {
	roundTrip(t, `{
		"mark": "point",
		"selection": {"paintbrush": {"type": "multi", "on": "mouseover", "nearest": true}},
		"encoding": {
			"x": {"field": "a", "type": "quantitative"},
			"size": {
				"condition": {"selection": "paintbrush", "value": 300},
				"value": 50
			},
			"color": {
				"condition": {"test": {"field": "b", "gt": 10}, "field": "c", "type": "nominal"},
				"value": "grey"
			}
		}
	}`)
}

func TestUsermetaPassthrough(t *testing.T) {
	roundTrip(t, `{
		"mark": "point",
		"usermeta": {"owner": "analytics", "nested": {"tags": ["a", "b"], "rev": 3}}
	}`)
}

func TestParseReader(t *testing.T) {
	spec, err := vl.ParseReader(strings.NewReader(`{"mark": "tick"}`))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if spec.Unit == nil || *spec.Unit.Mark.Type != vl.MarkTick {
		t.Fatalf("spec = %+v", spec)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := vl.Parse([]byte(`{"mark": `))
	iss, ok := vl.AsIssues(err)
	if !ok || iss[0].Code != vl.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseReportsEveryIssue(t *testing.T) {
	_, err := vl.Parse([]byte(`{
		"mark": "sparkle",
		"encoding": {
			"x": {"field": "a", "type": "quantitativ"},
			"y": {"field": "b", "aggregate": "meen"}
		}
	}`))
	iss, ok := vl.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(iss), iss)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		paths[it.Path] = true
		if it.Code != vl.CodeInvalidEnum {
			t.Fatalf("issue code = %s", it.Code)
		}
	}
	for _, p := range []string{"/mark", "/encoding/x/type", "/encoding/y/aggregate"} {
		if !paths[p] {
			t.Fatalf("missing issue for %s (got %v)", p, iss)
		}
	}
}

func TestCloneSharesNothing(t *testing.T) {
	orig := parseDoc(t, `{"mark": "bar", "encoding": {"x": {"field": "a", "type": "ordinal"}}}`)
	dup, err := vl.Clone(orig)
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	*dup.Unit.Encoding.X.Def.Field.Name = "b"
	if *orig.Unit.Encoding.X.Def.Field.Name != "a" {
		t.Fatalf("clone aliased the original")
	}
}
