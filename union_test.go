package vegalite_test

import (
	"strings"
	"testing"

	vl "github.com/reoring/vegalite"
)

func parseDoc(t *testing.T, src string) *vl.TopLevelSpec {
	t.Helper()
	spec, err := vl.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return spec
}

func xDef(t *testing.T, spec *vl.TopLevelSpec) *vl.PositionDef {
	t.Helper()
	if spec.Unit == nil || spec.Unit.Encoding == nil || spec.Unit.Encoding.X == nil || spec.Unit.Encoding.X.Def == nil {
		t.Fatalf("expected a unit spec with an x field definition")
	}
	return spec.Unit.Encoding.X.Def
}

func TestScaleDomainLiteral(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "point",
		"encoding": {"x": {"field": "a", "type": "quantitative",
			"scale": {"domain": "unaggregated"}}}
	}`)
	sc := xDef(t, spec).Scale
	if sc == nil || sc.Value == nil || sc.Value.Domain == nil {
		t.Fatalf("missing scale domain")
	}
	if !sc.Value.Domain.Unaggregated {
		t.Fatalf("expected the unaggregated literal, got %+v", sc.Value.Domain)
	}
}

func TestScaleDomainArray(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "point",
		"encoding": {"x": {"field": "a", "type": "quantitative",
			"scale": {"domain": [1, 100]}}}
	}`)
	dom := xDef(t, spec).Scale.Value.Domain
	if dom.Unaggregated || dom.Selection != nil {
		t.Fatalf("expected the array variant, got %+v", dom)
	}
	if len(dom.Values) != 2 || dom.Values[0].Number == nil || *dom.Values[0].Number != 1 {
		t.Fatalf("domain values: %+v", dom.Values)
	}
}

func TestScaleDomainSelection(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "point",
		"encoding": {"x": {"field": "a", "type": "quantitative",
			"scale": {"domain": {"selection": "brush"}}}}
	}`)
	dom := xDef(t, spec).Scale.Value.Domain
	if dom.Selection == nil || dom.Selection.Selection != "brush" {
		t.Fatalf("expected the selection variant, got %+v", dom)
	}
}

func TestBinVariants(t *testing.T) {
	for _, tc := range []struct {
		name string
		bin  string
		want func(*vl.Bin) bool
	}{
		{"flag", `true`, func(b *vl.Bin) bool { return b.Flag != nil && *b.Flag }},
		{"prebinned", `"binned"`, func(b *vl.Bin) bool { return b.Binned }},
		{"params", `{"maxbins": 10}`, func(b *vl.Bin) bool {
			return b.Params != nil && b.Params.MaxBins != nil && *b.Params.MaxBins == 10
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			spec := parseDoc(t, `{
				"mark": "bar",
				"encoding": {"x": {"field": "a", "type": "quantitative", "bin": `+tc.bin+`}}
			}`)
			b := xDef(t, spec).Bin
			if b == nil || !tc.want(b) {
				t.Fatalf("bin %s decoded as %+v", tc.bin, b)
			}
		})
	}
}

func TestBinUnknownKeywordRejected(t *testing.T) {
	_, err := vl.Parse([]byte(`{
		"mark": "bar",
		"encoding": {"x": {"field": "a", "bin": "maybe"}}
	}`))
	if err == nil {
		t.Fatalf("expected an error for bin keyword 'maybe'")
	}
	iss, ok := vl.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != vl.CodeInvalidEnum {
		t.Fatalf("code = %s, want %s", iss[0].Code, vl.CodeInvalidEnum)
	}
	if iss[0].Path != "/encoding/x/bin" {
		t.Fatalf("path = %s", iss[0].Path)
	}
}

func TestSortVariants(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		spec := parseDoc(t, `{"mark": "bar", "encoding": {"x": {"field": "a", "type": "ordinal", "sort": null}}}`)
		if s := xDef(t, spec).Sort; s == nil || !s.Null {
			t.Fatalf("expected explicit-null sort, got %+v", s)
		}
	})
	t.Run("order", func(t *testing.T) {
		spec := parseDoc(t, `{"mark": "bar", "encoding": {"x": {"field": "a", "type": "ordinal", "sort": "descending"}}}`)
		if s := xDef(t, spec).Sort; s == nil || s.Order == nil || *s.Order != vl.Descending {
			t.Fatalf("expected descending, got %+v", s)
		}
	})
	t.Run("values", func(t *testing.T) {
		spec := parseDoc(t, `{"mark": "bar", "encoding": {"x": {"field": "a", "type": "ordinal", "sort": ["b", "a"]}}}`)
		if s := xDef(t, spec).Sort; s == nil || len(s.Values) != 2 {
			t.Fatalf("expected value list, got %+v", s)
		}
	})
	t.Run("field", func(t *testing.T) {
		spec := parseDoc(t, `{"mark": "bar", "encoding": {"x": {"field": "a", "type": "ordinal",
			"sort": {"field": "b", "op": "mean", "order": "ascending"}}}}`)
		s := xDef(t, spec).Sort
		if s == nil || s.Field == nil || s.Field.Op == nil || *s.Field.Op != vl.AggMean {
			t.Fatalf("expected sort-by-field, got %+v", s)
		}
	})
}

func TestMarkUnion(t *testing.T) {
	spec := parseDoc(t, `{"mark": "line", "encoding": {}}`)
	if spec.Unit.Mark.Type == nil || *spec.Unit.Mark.Type != vl.MarkLine {
		t.Fatalf("mark = %+v", spec.Unit.Mark)
	}

	spec = parseDoc(t, `{"mark": {"type": "line", "interpolate": "monotone", "point": true}, "encoding": {}}`)
	def := spec.Unit.Mark.Def
	if def == nil || def.Type == nil || *def.Type != vl.MarkLine {
		t.Fatalf("mark def = %+v", def)
	}
	if def.Interpolate == nil || *def.Interpolate != vl.InterpolateMonotone {
		t.Fatalf("interpolate = %+v", def.Interpolate)
	}
	if def.Point == nil || def.Point.Flag == nil || !*def.Point.Flag {
		t.Fatalf("point overlay = %+v", def.Point)
	}
}

func TestUnknownMarkRejected(t *testing.T) {
	_, err := vl.Parse([]byte(`{"mark": "sparkle"}`))
	iss, ok := vl.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != vl.CodeInvalidEnum || iss[0].Path != "/mark" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestAxisNullDistinctFromAbsent(t *testing.T) {
	withNull := parseDoc(t, `{"mark": "point", "encoding": {"x": {"field": "a", "type": "quantitative", "axis": null}}}`)
	ax := xDef(t, withNull).Axis
	if ax == nil || !ax.Null {
		t.Fatalf("expected explicit-null axis, got %+v", ax)
	}
	out, err := vl.Marshal(withNull)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !containsKey(out, `"axis":null`) {
		t.Fatalf("explicit null axis lost on the wire: %s", out)
	}

	absent := parseDoc(t, `{"mark": "point", "encoding": {"x": {"field": "a", "type": "quantitative"}}}`)
	if xDef(t, absent).Axis != nil {
		t.Fatalf("absent axis decoded as non-nil")
	}
	out, err = vl.Marshal(absent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if containsKey(out, `"axis"`) {
		t.Fatalf("absent axis emitted: %s", out)
	}
}

func TestPredicateUnion(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "point",
		"transform": [
			{"filter": "datum.x > 5"},
			{"filter": {"not": {"field": "y", "equal": "a"}}},
			{"filter": {"selection": "pts"}},
			{"filter": {"field": "z", "range": [0, null]}}
		],
		"encoding": {}
	}`)
	ts := spec.Unit.Transform
	if len(ts) != 4 {
		t.Fatalf("transforms = %d", len(ts))
	}
	if ts[0].Filter == nil || ts[0].Filter.Expr == nil {
		t.Fatalf("expected expression predicate, got %+v", ts[0].Filter)
	}
	if ts[1].Filter == nil || ts[1].Filter.Not == nil || ts[1].Filter.Not.Field == nil {
		t.Fatalf("expected negated field predicate, got %+v", ts[1].Filter)
	}
	if ts[2].Filter == nil || ts[2].Filter.Selection == nil || ts[2].Filter.Selection.Name == nil {
		t.Fatalf("expected selection predicate, got %+v", ts[2].Filter)
	}
	fr := ts[3].Filter.Field.Range
	if len(fr) != 2 || fr[0] == nil || fr[1] != nil {
		t.Fatalf("expected open-ended range, got %+v", fr)
	}
}

func TestSelectionDiscriminant(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "point",
		"selection": {
			"pts": {"type": "multi", "toggle": "event.shiftKey"},
			"brush": {"type": "interval", "bind": "scales"}
		},
		"encoding": {}
	}`)
	sel := spec.Unit.Selection
	if sel["pts"].Multi == nil || sel["pts"].Multi.Toggle == nil {
		t.Fatalf("multi selection = %+v", sel["pts"])
	}
	iv := sel["brush"].Interval
	if iv == nil || iv.Bind == nil || !iv.Bind.Scales {
		t.Fatalf("interval selection = %+v", sel["brush"])
	}

	_, err := vl.Parse([]byte(`{"mark": "point", "selection": {"s": {"on": "click"}}}`))
	iss, ok := vl.AsIssues(err)
	if !ok || iss[0].Code != vl.CodeRequired {
		t.Fatalf("expected required 'type' issue, got %v", err)
	}
}

func containsKey(b []byte, sub string) bool {
	return strings.Contains(string(b), sub)
}
