package vegalite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	vl "github.com/reoring/vegalite"
)

func TestKindDetection(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		kind func(*vl.Spec) bool
	}{
		{"unit", `{"mark": "point"}`, func(s *vl.Spec) bool { return s.Unit != nil }},
		{"layer", `{"layer": [{"mark": "line"}]}`, func(s *vl.Spec) bool { return s.Layer != nil }},
		{"facet", `{"facet": {"row": {"field": "a", "type": "nominal"}}, "spec": {"mark": "bar"}}`,
			func(s *vl.Spec) bool { return s.Facet != nil }},
		{"repeat", `{"repeat": {"row": ["a"]}, "spec": {"mark": "bar"}}`,
			func(s *vl.Spec) bool { return s.Repeat != nil }},
		{"repeat array", `{"repeat": ["a", "b"], "spec": {"mark": "bar"}}`,
			func(s *vl.Spec) bool { return s.Repeat != nil }},
		{"concat", `{"concat": [{"mark": "bar"}]}`, func(s *vl.Spec) bool { return s.Concat != nil }},
		{"vconcat", `{"vconcat": [{"mark": "bar"}]}`, func(s *vl.Spec) bool { return s.VConcat != nil }},
		{"hconcat", `{"hconcat": [{"mark": "bar"}]}`, func(s *vl.Spec) bool { return s.HConcat != nil }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := vl.Parse([]byte(tc.src))
			require.NoError(t, err)
			require.True(t, tc.kind(&spec.Spec), "wrong kind for %s", tc.src)
		})
	}
}

func TestKindlessDocumentRejected(t *testing.T) {
	_, err := vl.Parse([]byte(`{"data": {"url": "cars.json"}}`))
	iss, ok := vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeUnionNoMatch, iss[0].Code)
}

func TestDeepNesting(t *testing.T) {
	spec, err := vl.Parse([]byte(`{
		"vconcat": [{
			"hconcat": [{
				"repeat": {"column": ["a", "b"]},
				"spec": {
					"layer": [
						{"mark": "line"},
						{"mark": "point"}
					]
				}
			}]
		}]
	}`))
	require.NoError(t, err)
	require.Len(t, spec.VConcat.Specs, 1)
	h := spec.VConcat.Specs[0].HConcat
	require.NotNil(t, h)
	r := h.Specs[0].Repeat
	require.NotNil(t, r)
	require.Equal(t, []string{"a", "b"}, r.Repeat.Column)
	l := r.Spec.Layer
	require.NotNil(t, l)
	require.Len(t, l.Layer, 2)
}

func TestConcatGrid(t *testing.T) {
	spec, err := vl.Parse([]byte(`{
		"concat": [{"mark": "bar"}, {"mark": "line"}],
		"columns": 2,
		"align": "each"
	}`))
	require.NoError(t, err)
	c := spec.Concat
	require.NotNil(t, c)
	require.Len(t, c.Specs, 2)
	require.Equal(t, float64(2), *c.Columns)
	require.Equal(t, vl.AlignEach, *c.Align.Keyword)
}

func TestRepeatFieldArray(t *testing.T) {
	spec, err := vl.Parse([]byte(`{
		"repeat": ["Horsepower", "Acceleration"],
		"columns": 2,
		"spec": {"mark": "point"}
	}`))
	require.NoError(t, err)
	r := spec.Repeat
	require.NotNil(t, r)
	require.Equal(t, []string{"Horsepower", "Acceleration"}, r.Repeat.Fields)
	require.Equal(t, float64(2), *r.Columns)
	require.NoError(t, vl.Validate(spec))
}

func TestAlignKeywordClosed(t *testing.T) {
	_, err := vl.Parse([]byte(`{
		"facet": {"row": {"field": "a", "type": "nominal"}},
		"spec": {"mark": "bar"},
		"align": "diagonal"
	}`))
	iss, ok := vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeInvalidEnum, iss[0].Code)
	require.Equal(t, "/align", iss[0].Path)

	spec := parseDoc(t, `{
		"facet": {"row": {"field": "a", "type": "nominal"}},
		"spec": {"mark": "bar"},
		"align": {"row": "all", "column": "none"}
	}`)
	a := spec.Facet.Align
	require.NotNil(t, a.RowCol)
	require.Equal(t, vl.AlignAll, *a.RowCol.Row)
	require.Equal(t, vl.AlignNone, *a.RowCol.Column)
}

func TestLayerRejectsCompositeSubviews(t *testing.T) {
	_, err := vl.Parse([]byte(`{
		"layer": [{"facet": {"row": {"field": "a"}}, "spec": {"mark": "bar"}}]
	}`))
	iss, ok := vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeConflict, iss[0].Code)
	require.Equal(t, "/layer/0", iss[0].Path)
}

func TestValidateCatchesHandBuiltConflicts(t *testing.T) {
	mark := vl.MarkPoint
	bad := &vl.TopLevelSpec{}
	bad.Unit = &vl.UnitSpec{Mark: vl.AnyMark{Type: &mark}}
	bad.Layer = &vl.LayerSpec{}
	err := vl.Validate(bad)
	iss, ok := vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeConflict, iss[0].Code)

	empty := &vl.TopLevelSpec{}
	err = vl.Validate(empty)
	iss, ok = vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeRequired, iss[0].Code)
}

func TestValidateAcceptsParsedDocuments(t *testing.T) {
	spec := parseDoc(t, `{
		"layer": [
			{"mark": "line", "encoding": {"x": {"field": "t", "type": "temporal"}}},
			{"mark": "rule"}
		],
		"data": {"url": "data/stocks.csv"}
	}`)
	require.NoError(t, vl.Validate(spec))
}

func TestValidateDataConflict(t *testing.T) {
	url := "cars.json"
	spec := vl.NewSpec().Mark(vl.MarkPoint).
		Data(&vl.Data{URL: &url, Values: &vl.InlineDataset{Rows: []any{}}}).
		Build()
	err := vl.Validate(spec)
	iss, ok := vl.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vl.CodeConflict, iss[0].Code)
	require.Equal(t, "/data", iss[0].Path)
}

func TestTitleForms(t *testing.T) {
	spec := parseDoc(t, `{"mark": "point", "title": "Plain"}`)
	require.NotNil(t, spec.Unit.Title.Text)
	require.Equal(t, "Plain", *spec.Unit.Title.Text)

	spec = parseDoc(t, `{"mark": "point", "title": {"text": "Fancy", "anchor": "start", "fontSize": 20}}`)
	p := spec.Unit.Title.Params
	require.NotNil(t, p)
	require.Equal(t, "Fancy", p.Text)
	require.Equal(t, vl.AnchorStart, *p.Anchor)
}
