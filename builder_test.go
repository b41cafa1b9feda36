package vegalite_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	vl "github.com/reoring/vegalite"
)

func marshalTree(t *testing.T, spec *vl.TopLevelSpec) map[string]any {
	t.Helper()
	raw, err := vl.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return m
}

func TestBuilderDefaultSchema(t *testing.T) {
	spec := vl.NewSpec().Mark(vl.MarkPoint).Build()
	if spec.Schema == nil || *spec.Schema != vl.DefaultSchemaURL {
		t.Fatalf("schema = %v", spec.Schema)
	}
	spec = vl.NewSpec().Schema("custom").Mark(vl.MarkPoint).Build()
	if *spec.Schema != "custom" {
		t.Fatalf("schema override lost: %v", *spec.Schema)
	}
}

func TestBuilderOmission(t *testing.T) {
	m := marshalTree(t, vl.NewSpec().Mark(vl.MarkPoint).Build())
	want := map[string]any{
		"$schema": vl.DefaultSchemaURL,
		"mark":    "point",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("unset fields leaked onto the wire (-want +got):\n%s", diff)
	}
}

func TestBuilderScatter(t *testing.T) {
	built := vl.NewSpec().
		Data(vl.NewData().URL("cars.json").Build()).
		Mark(vl.MarkPoint).
		Encoding(vl.NewEncoding().
			X(vl.NewField("Horsepower").Quantitative().Position()).
			Y(vl.NewField("Miles_per_Gallon").Quantitative().Position()).
			Color(vl.NewField("Origin").Nominal().Prop()).
			Build()).
		Build()

	m := marshalTree(t, built)
	want := map[string]any{
		"$schema": vl.DefaultSchemaURL,
		"data":    map[string]any{"url": "cars.json"},
		"mark":    "point",
		"encoding": map[string]any{
			"x":     map[string]any{"field": "Horsepower", "type": "quantitative"},
			"y":     map[string]any{"field": "Miles_per_Gallon", "type": "quantitative"},
			"color": map[string]any{"field": "Origin", "type": "nominal"},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestBuilderExplicitNulls(t *testing.T) {
	built := vl.NewSpec().
		Mark(vl.MarkBar).
		Encoding(vl.NewEncoding().
			X(vl.NewField("a").Ordinal().NoAxis().NoSort().Position()).
			Y(vl.NewField("b").Quantitative().NoTitle().Position()).
			NoTooltip().
			Build()).
		Build()

	m := marshalTree(t, built)
	enc := m["encoding"].(map[string]any)
	x := enc["x"].(map[string]any)
	if v, ok := x["axis"]; !ok || v != nil {
		t.Fatalf("axis = %v (present %v)", v, ok)
	}
	if v, ok := x["sort"]; !ok || v != nil {
		t.Fatalf("sort = %v (present %v)", v, ok)
	}
	y := enc["y"].(map[string]any)
	if v, ok := y["title"]; !ok || v != nil {
		t.Fatalf("title = %v (present %v)", v, ok)
	}
	if v, ok := enc["tooltip"]; !ok || v != nil {
		t.Fatalf("tooltip = %v (present %v)", v, ok)
	}
}

func TestBuilderLayerKind(t *testing.T) {
	line := vl.NewSpec().Mark(vl.MarkLine).View()
	rule := vl.NewSpec().Mark(vl.MarkRule).View()
	built := vl.NewSpec().
		Data(vl.NewData().URL("stocks.csv").Build()).
		Layer(line, rule).
		Build()
	if built.Layer == nil || len(built.Layer.Layer) != 2 {
		t.Fatalf("layer = %+v", built.Spec)
	}
	if built.Layer.Data == nil {
		t.Fatalf("shared data lost")
	}
	if err := vl.Validate(built); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuilderRepeat(t *testing.T) {
	sub := vl.NewSpec().
		Mark(vl.MarkPoint).
		Encoding(vl.NewEncoding().
			X(vl.NewRepeatField("column").Quantitative().Position()).
			Build()).
		View()
	built := vl.NewSpec().
		Repeat(&vl.RepeatMapping{Column: []string{"a", "b"}}, &sub).
		Build()
	m := marshalTree(t, built)
	rep := m["repeat"].(map[string]any)
	if diff := cmp.Diff([]any{"a", "b"}, rep["column"]); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	x := m["spec"].(map[string]any)["encoding"].(map[string]any)["x"].(map[string]any)
	if diff := cmp.Diff(map[string]any{"repeat": "column"}, x["field"]); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestBuilderConcatGrid(t *testing.T) {
	bar := vl.NewSpec().Mark(vl.MarkBar).View()
	line := vl.NewSpec().Mark(vl.MarkLine).View()
	point := vl.NewSpec().Mark(vl.MarkPoint).View()
	built := vl.NewSpec().
		Concat(bar, line, point).
		Columns(2).
		Align(vl.AlignEach).
		Spacing(15).
		Bounds(vl.BoundsFlush).
		Center(true).
		Build()

	m := marshalTree(t, built)
	want := map[string]any{
		"$schema": vl.DefaultSchemaURL,
		"concat": []any{
			map[string]any{"mark": "bar"},
			map[string]any{"mark": "line"},
			map[string]any{"mark": "point"},
		},
		"columns": float64(2),
		"align":   "each",
		"spacing": float64(15),
		"bounds":  "flush",
		"center":  true,
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if err := vl.Validate(built); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuilderRepeatOver(t *testing.T) {
	sub := vl.NewSpec().
		Mark(vl.MarkPoint).
		Encoding(vl.NewEncoding().
			X(vl.NewRepeatField("repeat").Quantitative().Position()).
			Build()).
		View()
	built := vl.NewSpec().
		Repeat(vl.RepeatOver("Horsepower", "Acceleration"), &sub).
		Columns(2).
		Build()
	m := marshalTree(t, built)
	if diff := cmp.Diff([]any{"Horsepower", "Acceleration"}, m["repeat"]); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if m["columns"] != float64(2) {
		t.Fatalf("columns = %v", m["columns"])
	}
	if err := vl.Validate(built); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuiltDocumentReparses(t *testing.T) {
	built := vl.NewSpec().
		Title("Weather").
		Data(vl.NewData().URL("seattle-weather.csv").Build()).
		Mark(vl.MarkBar).
		Transform(vl.FilterTransform(vl.Expr("datum.precipitation > 0"))).
		Encoding(vl.NewEncoding().
			X(vl.NewField("date").Temporal().TimeUnit(vl.TUMonth).Position()).
			Y(vl.CountField().Quantitative().Position()).
			Build()).
		Build()

	raw, err := vl.Marshal(built)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := vl.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Unit.Transform[0].Filter.Expr == nil {
		t.Fatalf("filter lost: %+v", back.Unit.Transform[0])
	}
	if *back.Unit.Encoding.X.Def.TimeUnit != vl.TUMonth {
		t.Fatalf("timeUnit lost")
	}
}
