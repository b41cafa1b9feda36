package vegalite_test

import (
	"testing"

	vl "github.com/reoring/vegalite"
)

func TestTransformStepDetection(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "bar",
		"transform": [
			{"calculate": "datum.a * 2", "as": "a2"},
			{"aggregate": [{"op": "mean", "field": "a2", "as": "avg"}], "groupby": ["g"]},
			{"bin": {"maxbins": 20}, "field": "avg", "as": "avg_bin"},
			{"fold": ["gold", "silver"], "as": ["medal", "count"]},
			{"flatten": ["tags"]},
			{"impute": "v", "key": "k", "method": "mean"},
			{"joinaggregate": [{"op": "max", "field": "v", "as": "vmax"}]},
			{"lookup": "id", "from": {"data": {"url": "people.csv"}, "key": "pid", "fields": ["age"]}},
			{"sample": 500},
			{"stack": "v", "groupby": ["g"], "offset": "center", "as": ["v0", "v1"]},
			{"timeUnit": "yearmonth", "field": "date", "as": "ym"},
			{"window": [{"op": "rank", "as": "rk"}], "sort": [{"field": "v", "order": "descending"}], "frame": [null, 0]}
		]
	}`)
	ts := spec.Unit.Transform
	if len(ts) != 12 {
		t.Fatalf("steps = %d", len(ts))
	}
	if ts[0].Calculate == nil || ts[0].Calculate.As != "a2" {
		t.Fatalf("calculate = %+v", ts[0])
	}
	agg := ts[1].Aggregate
	if agg == nil || len(agg.Aggregate) != 1 || agg.Aggregate[0].Op != vl.AggMean {
		t.Fatalf("aggregate = %+v", ts[1])
	}
	if ts[2].Bin == nil || ts[2].Bin.Bin.Params.MaxBins == nil {
		t.Fatalf("bin = %+v", ts[2])
	}
	if ts[3].Fold == nil || len(ts[3].Fold.As) != 2 {
		t.Fatalf("fold = %+v", ts[3])
	}
	if ts[4].Flatten == nil {
		t.Fatalf("flatten = %+v", ts[4])
	}
	if ts[5].Impute == nil || *ts[5].Impute.Method != vl.ImputeMean {
		t.Fatalf("impute = %+v", ts[5])
	}
	if ts[6].JoinAggregate == nil {
		t.Fatalf("joinaggregate = %+v", ts[6])
	}
	lk := ts[7].Lookup
	if lk == nil || lk.From == nil || lk.From.Data.URL == nil || *lk.From.Data.URL != "people.csv" {
		t.Fatalf("lookup = %+v", ts[7])
	}
	if ts[8].Sample == nil || ts[8].Sample.Sample != 500 {
		t.Fatalf("sample = %+v", ts[8])
	}
	if ts[9].Stack == nil || *ts[9].Stack.Offset != vl.StackCenter {
		t.Fatalf("stack = %+v", ts[9])
	}
	if ts[10].TimeUnit == nil || ts[10].TimeUnit.TimeUnit != vl.TUYearMonth {
		t.Fatalf("timeUnit = %+v", ts[10])
	}
	win := ts[11].Window
	if win == nil || win.Window[0].Op != vl.WinRank {
		t.Fatalf("window = %+v", ts[11])
	}
	if len(win.Frame) != 2 || win.Frame[0] != nil || win.Frame[1] == nil || *win.Frame[1] != 0 {
		t.Fatalf("frame = %+v", win.Frame)
	}
}

func TestWindowAcceptsAggregateOps(t *testing.T) {
	spec := parseDoc(t, `{
		"mark": "line",
		"transform": [{"window": [{"op": "sum", "field": "v", "as": "total"}]}]
	}`)
	if op := spec.Unit.Transform[0].Window.Window[0].Op; op != vl.WindowOp(vl.AggSum) {
		t.Fatalf("op = %s", op)
	}
}

func TestUnknownTransformStepRejected(t *testing.T) {
	_, err := vl.Parse([]byte(`{"mark": "bar", "transform": [{"pivot": "x"}]}`))
	iss, ok := vl.AsIssues(err)
	if !ok || iss[0].Code != vl.CodeUnionNoMatch || iss[0].Path != "/transform/0" {
		t.Fatalf("issue = %v", err)
	}
}

func TestTransformRoundTripPreservesOrder(t *testing.T) {
	roundTrip(t, `{
		"mark": "bar",
		"transform": [
			{"filter": {"field": "v", "gte": 0}},
			{"calculate": "datum.v + 1", "as": "w"},
			{"filter": "datum.w < 100"}
		]
	}`)
}
