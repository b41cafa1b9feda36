package vegalite_test

import (
	"strings"
	"testing"

	vl "github.com/reoring/vegalite"
)

func TestRecordsOf(t *testing.T) {
	type row struct {
		City string  `json:"city"`
		Temp float64 `json:"temp"`
	}
	data, err := vl.RecordsOf([]row{{"Oslo", -3}, {"Lisbon", 17}})
	if err != nil {
		t.Fatalf("RecordsOf: %v", err)
	}
	rows := data.Values.Rows
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["city"] != "Oslo" || first["temp"] != float64(-3) {
		t.Fatalf("row = %v", first)
	}
}

func TestRecordsOfScalars(t *testing.T) {
	data, err := vl.RecordsOf([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("RecordsOf: %v", err)
	}
	first := data.Values.Rows[0].(map[string]any)
	if first["data"] != float64(1) {
		t.Fatalf("row = %v", first)
	}
}

func TestRecordsOfRejectsNonSlice(t *testing.T) {
	if _, err := vl.RecordsOf(42); err == nil {
		t.Fatalf("expected an error for a non-slice")
	}
}

func TestFromCSV(t *testing.T) {
	data, err := vl.FromCSV(strings.NewReader("name,score\nada,90\ngrace,95.5\n"))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	rows := data.Values.Rows
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	second := rows[1].(map[string]any)
	if second["name"] != "grace" || second["score"] != 95.5 {
		t.Fatalf("row = %v", second)
	}
}

func TestFromTSV(t *testing.T) {
	data, err := vl.FromTSV(strings.NewReader("a\tb\n1\tx\n"))
	if err != nil {
		t.Fatalf("FromTSV: %v", err)
	}
	row := data.Values.Rows[0].(map[string]any)
	if row["a"] != float64(1) || row["b"] != "x" {
		t.Fatalf("row = %v", row)
	}
}

func TestFromCSVEmptyInput(t *testing.T) {
	if _, err := vl.FromCSV(strings.NewReader("")); err == nil {
		t.Fatalf("expected an error for missing header")
	}
}

func TestIngestedDataMarshals(t *testing.T) {
	data, err := vl.FromCSV(strings.NewReader("x,y\n1,2\n"))
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	spec := vl.NewSpec().Data(data).Mark(vl.MarkPoint).Build()
	out, err := vl.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), `"values":[{"x":1,"y":2}]`) {
		t.Fatalf("wire = %s", out)
	}
}
