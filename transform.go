package vegalite

import (
	json "github.com/goccy/go-json"
)

// WindowOp is a window operation: any aggregate op or a window-only op.
type WindowOp string

const (
	WinRowNumber   WindowOp = "row_number"
	WinRank        WindowOp = "rank"
	WinDenseRank   WindowOp = "dense_rank"
	WinPercentRank WindowOp = "percent_rank"
	WinCumeDist    WindowOp = "cume_dist"
	WinNtile       WindowOp = "ntile"
	WinLag         WindowOp = "lag"
	WinLead        WindowOp = "lead"
	WinFirstValue  WindowOp = "first_value"
	WinLastValue   WindowOp = "last_value"
	WinNthValue    WindowOp = "nth_value"
)

var windowOps = func() map[WindowOp]bool {
	m := enumSet(
		WinRowNumber, WinRank, WinDenseRank, WinPercentRank, WinCumeDist,
		WinNtile, WinLag, WinLead, WinFirstValue, WinLastValue, WinNthValue,
	)
	for agg := range aggregates {
		m[WindowOp(agg)] = true
	}
	return m
}()

// SortField orders rows inside a window or stack transform.
type SortField struct {
	Field string     `json:"field"`
	Order *SortOrder `json:"order,omitempty"`
}

func (d *decoder) sortFields(v any, path string) []SortField {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]SortField, 0, len(a))
	for i, e := range a {
		p := indexPath(path, i)
		m := d.obj(e, p)
		if m == nil {
			continue
		}
		sf := SortField{}
		if s := d.str(m["field"], childPath(p, "field")); s != nil {
			sf.Field = *s
		}
		if x, ok := m["order"]; ok {
			sf.Order = enumOf(d, x, childPath(p, "order"), "sort order", sortOrders)
		}
		out = append(out, sf)
	}
	return out
}

// AggregatedField is one output column of an aggregate or join-aggregate.
type AggregatedField struct {
	Op    Aggregate `json:"op"`
	Field *string   `json:"field,omitempty"`
	As    string    `json:"as"`
}

func (d *decoder) aggregatedFields(v any, path string) []AggregatedField {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]AggregatedField, 0, len(a))
	for i, e := range a {
		p := indexPath(path, i)
		m := d.obj(e, p)
		if m == nil {
			continue
		}
		af := AggregatedField{}
		if op := enumOf(d, m["op"], childPath(p, "op"), "aggregate op", aggregates); op != nil {
			af.Op = *op
		}
		if x, ok := m["field"]; ok {
			af.Field = d.str(x, childPath(p, "field"))
		}
		if s := d.str(m["as"], childPath(p, "as")); s != nil {
			af.As = *s
		}
		out = append(out, af)
	}
	return out
}

// WindowFieldDef is one output column of a window transform.
type WindowFieldDef struct {
	Op    WindowOp `json:"op"`
	Field *string  `json:"field,omitempty"`
	Param *float64 `json:"param,omitempty"`
	As    string   `json:"as"`
}

// CalculateTransform derives a field from an expression.
type CalculateTransform struct {
	Calculate string `json:"calculate"`
	As        string `json:"as"`
}

// AggregateTransform groups and aggregates rows.
type AggregateTransform struct {
	Aggregate []AggregatedField `json:"aggregate"`
	GroupBy   []string          `json:"groupby,omitempty"`
}

// BinTransform bins a quantitative field.
type BinTransform struct {
	Bin   *Bin        `json:"bin"`
	Field string      `json:"field"`
	As    *StringList `json:"as"`
}

// FoldTransform gathers columns into key/value rows.
type FoldTransform struct {
	Fold []string `json:"fold"`
	As   []string `json:"as,omitempty"`
}

// FlattenTransform expands array-valued fields into rows.
type FlattenTransform struct {
	Flatten []string `json:"flatten"`
	As      []string `json:"as,omitempty"`
}

// ImputeTransform fills missing combinations of key and groupby values.
type ImputeTransform struct {
	Impute  string        `json:"impute"`
	Key     string        `json:"key"`
	Frame   []*float64    `json:"frame,omitempty"`
	GroupBy []string      `json:"groupby,omitempty"`
	Keyvals *Keyvals      `json:"keyvals,omitempty"`
	Method  *ImputeMethod `json:"method,omitempty"`
	Value   any           `json:"value,omitempty"`
}

// JoinAggregateTransform joins aggregate values back onto each row.
type JoinAggregateTransform struct {
	JoinAggregate []AggregatedField `json:"joinaggregate"`
	GroupBy       []string          `json:"groupby,omitempty"`
}

// LookupData names the secondary data source of a lookup.
type LookupData struct {
	Data   *Data    `json:"data"`
	Key    string   `json:"key"`
	Fields []string `json:"fields,omitempty"`
}

// LookupTransform joins fields from a secondary source.
type LookupTransform struct {
	Lookup  string      `json:"lookup"`
	From    *LookupData `json:"from"`
	As      *StringList `json:"as,omitempty"`
	Default *string     `json:"default,omitempty"`
}

// SampleTransform keeps a random subset of rows.
type SampleTransform struct {
	Sample float64 `json:"sample"`
}

// StackTransform computes stacked positions.
type StackTransform struct {
	Stack   string       `json:"stack"`
	GroupBy []string     `json:"groupby"`
	Offset  *StackOffset `json:"offset,omitempty"`
	Sort    []SortField  `json:"sort,omitempty"`
	As      *StringList  `json:"as"`
}

// TimeUnitTransform truncates a temporal field to a unit.
type TimeUnitTransform struct {
	TimeUnit TimeUnit `json:"timeUnit"`
	Field    string   `json:"field"`
	As       string   `json:"as"`
}

// WindowTransform computes running/window operations.
type WindowTransform struct {
	Window      []WindowFieldDef `json:"window"`
	Frame       []*float64       `json:"frame,omitempty"`
	GroupBy     []string         `json:"groupby,omitempty"`
	IgnorePeers *bool            `json:"ignorePeers,omitempty"`
	Sort        []SortField      `json:"sort,omitempty"`
}

// Transform is one step of the data pipeline. Steps are heterogeneous; the
// step kind is detected by its signature property ("filter", "calculate",
// "aggregate", ...). Exactly one field is set, and []Transform preserves
// pipeline order.
type Transform struct {
	Filter        *Predicate
	Calculate     *CalculateTransform
	Aggregate     *AggregateTransform
	Bin           *BinTransform
	Fold          *FoldTransform
	Flatten       *FlattenTransform
	Impute        *ImputeTransform
	JoinAggregate *JoinAggregateTransform
	Lookup        *LookupTransform
	Sample        *SampleTransform
	Stack         *StackTransform
	TimeUnit      *TimeUnitTransform
	Window        *WindowTransform
}

// FilterTransform wraps a predicate as a pipeline step.
func FilterTransform(p *Predicate) Transform { return Transform{Filter: p} }

func (t Transform) MarshalJSON() ([]byte, error) {
	switch {
	case t.Filter != nil:
		return json.Marshal(map[string]*Predicate{"filter": t.Filter})
	case t.Calculate != nil:
		return json.Marshal(t.Calculate)
	case t.Aggregate != nil:
		return json.Marshal(t.Aggregate)
	case t.Bin != nil:
		return json.Marshal(t.Bin)
	case t.Fold != nil:
		return json.Marshal(t.Fold)
	case t.Flatten != nil:
		return json.Marshal(t.Flatten)
	case t.Impute != nil:
		return json.Marshal(t.Impute)
	case t.JoinAggregate != nil:
		return json.Marshal(t.JoinAggregate)
	case t.Lookup != nil:
		return json.Marshal(t.Lookup)
	case t.Sample != nil:
		return json.Marshal(t.Sample)
	case t.Stack != nil:
		return json.Marshal(t.Stack)
	case t.TimeUnit != nil:
		return json.Marshal(t.TimeUnit)
	case t.Window != nil:
		return json.Marshal(t.Window)
	}
	return []byte("{}"), nil
}

func (d *decoder) transforms(v any, path string) []Transform {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]Transform, 0, len(a))
	for i, e := range a {
		if t := d.transform(e, indexPath(path, i)); t != nil {
			out = append(out, *t)
		}
	}
	return out
}

func (d *decoder) transform(v any, path string) *Transform {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	switch {
	case hasKey(m, "filter"):
		return &Transform{Filter: d.predicate(m["filter"], childPath(path, "filter"))}
	case hasKey(m, "calculate"):
		t := &CalculateTransform{}
		if s := d.str(m["calculate"], childPath(path, "calculate")); s != nil {
			t.Calculate = *s
		}
		if s := d.str(m["as"], childPath(path, "as")); s != nil {
			t.As = *s
		}
		return &Transform{Calculate: t}
	case hasKey(m, "aggregate"):
		t := &AggregateTransform{Aggregate: d.aggregatedFields(m["aggregate"], childPath(path, "aggregate"))}
		if x, ok := m["groupby"]; ok {
			t.GroupBy = d.strSlice(x, childPath(path, "groupby"))
		}
		return &Transform{Aggregate: t}
	case hasKey(m, "bin"):
		t := &BinTransform{Bin: d.bin(m["bin"], childPath(path, "bin"))}
		if s := d.str(m["field"], childPath(path, "field")); s != nil {
			t.Field = *s
		}
		t.As = d.stringList(m["as"], childPath(path, "as"))
		return &Transform{Bin: t}
	case hasKey(m, "fold"):
		t := &FoldTransform{Fold: d.strSlice(m["fold"], childPath(path, "fold"))}
		if x, ok := m["as"]; ok {
			t.As = d.strSlice(x, childPath(path, "as"))
		}
		return &Transform{Fold: t}
	case hasKey(m, "flatten"):
		t := &FlattenTransform{Flatten: d.strSlice(m["flatten"], childPath(path, "flatten"))}
		if x, ok := m["as"]; ok {
			t.As = d.strSlice(x, childPath(path, "as"))
		}
		return &Transform{Flatten: t}
	case hasKey(m, "impute"):
		t := &ImputeTransform{}
		if s := d.str(m["impute"], childPath(path, "impute")); s != nil {
			t.Impute = *s
		}
		if s := d.str(m["key"], childPath(path, "key")); s != nil {
			t.Key = *s
		}
		if x, ok := m["frame"]; ok {
			t.Frame = d.frame(x, childPath(path, "frame"))
		}
		if x, ok := m["groupby"]; ok {
			t.GroupBy = d.strSlice(x, childPath(path, "groupby"))
		}
		if x, ok := m["keyvals"]; ok {
			t.Keyvals = d.keyvals(x, childPath(path, "keyvals"))
		}
		if x, ok := m["method"]; ok {
			t.Method = enumOf(d, x, childPath(path, "method"), "impute method", imputeMethods)
		}
		if x, ok := m["value"]; ok {
			t.Value = x
		}
		return &Transform{Impute: t}
	case hasKey(m, "joinaggregate"):
		t := &JoinAggregateTransform{JoinAggregate: d.aggregatedFields(m["joinaggregate"], childPath(path, "joinaggregate"))}
		if x, ok := m["groupby"]; ok {
			t.GroupBy = d.strSlice(x, childPath(path, "groupby"))
		}
		return &Transform{JoinAggregate: t}
	case hasKey(m, "lookup"):
		t := &LookupTransform{}
		if s := d.str(m["lookup"], childPath(path, "lookup")); s != nil {
			t.Lookup = *s
		}
		if x, ok := m["from"]; ok {
			p := childPath(path, "from")
			fm := d.obj(x, p)
			if fm != nil {
				ld := &LookupData{}
				if dv, ok := fm["data"]; ok {
					ld.Data = d.data(dv, childPath(p, "data"))
				} else {
					d.fail(childPath(p, "data"), CodeRequired, "lookup source needs 'data'")
				}
				if s := d.str(fm["key"], childPath(p, "key")); s != nil {
					ld.Key = *s
				}
				if fv, ok := fm["fields"]; ok {
					ld.Fields = d.strSlice(fv, childPath(p, "fields"))
				}
				t.From = ld
			}
		}
		if x, ok := m["as"]; ok {
			t.As = d.stringList(x, childPath(path, "as"))
		}
		if x, ok := m["default"]; ok {
			t.Default = d.str(x, childPath(path, "default"))
		}
		return &Transform{Lookup: t}
	case hasKey(m, "sample"):
		t := &SampleTransform{}
		if f := d.num(m["sample"], childPath(path, "sample")); f != nil {
			t.Sample = *f
		}
		return &Transform{Sample: t}
	case hasKey(m, "stack"):
		t := &StackTransform{}
		if s := d.str(m["stack"], childPath(path, "stack")); s != nil {
			t.Stack = *s
		}
		if x, ok := m["groupby"]; ok {
			t.GroupBy = d.strSlice(x, childPath(path, "groupby"))
		}
		if x, ok := m["offset"]; ok {
			t.Offset = enumOf(d, x, childPath(path, "offset"), "stack offset", stackOffsets)
		}
		if x, ok := m["sort"]; ok {
			t.Sort = d.sortFields(x, childPath(path, "sort"))
		}
		t.As = d.stringList(m["as"], childPath(path, "as"))
		return &Transform{Stack: t}
	case hasKey(m, "timeUnit"):
		t := &TimeUnitTransform{}
		if tu := enumOf(d, m["timeUnit"], childPath(path, "timeUnit"), "time unit", timeUnits); tu != nil {
			t.TimeUnit = *tu
		}
		if s := d.str(m["field"], childPath(path, "field")); s != nil {
			t.Field = *s
		}
		if s := d.str(m["as"], childPath(path, "as")); s != nil {
			t.As = *s
		}
		return &Transform{TimeUnit: t}
	case hasKey(m, "window"):
		t := &WindowTransform{}
		p := childPath(path, "window")
		a := d.arr(m["window"], p)
		for i, e := range a {
			wp := indexPath(p, i)
			wm := d.obj(e, wp)
			if wm == nil {
				continue
			}
			wf := WindowFieldDef{}
			if op := enumOf(d, wm["op"], childPath(wp, "op"), "window op", windowOps); op != nil {
				wf.Op = *op
			}
			if x, ok := wm["field"]; ok {
				wf.Field = d.str(x, childPath(wp, "field"))
			}
			if x, ok := wm["param"]; ok {
				wf.Param = d.num(x, childPath(wp, "param"))
			}
			if s := d.str(wm["as"], childPath(wp, "as")); s != nil {
				wf.As = *s
			}
			t.Window = append(t.Window, wf)
		}
		if x, ok := m["frame"]; ok {
			t.Frame = d.frame(x, childPath(path, "frame"))
		}
		if x, ok := m["groupby"]; ok {
			t.GroupBy = d.strSlice(x, childPath(path, "groupby"))
		}
		if x, ok := m["ignorePeers"]; ok {
			t.IgnorePeers = d.boolean(x, childPath(path, "ignorePeers"))
		}
		if x, ok := m["sort"]; ok {
			t.Sort = d.sortFields(x, childPath(path, "sort"))
		}
		return &Transform{Window: t}
	}
	d.fail(path, CodeUnionNoMatch, "unrecognized transform step")
	return nil
}
