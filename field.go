package vegalite

import (
	json "github.com/goccy/go-json"
)

// StandardType is the measurement type of a field.
type StandardType string

const (
	Quantitative StandardType = "quantitative"
	Ordinal      StandardType = "ordinal"
	Temporal     StandardType = "temporal"
	Nominal      StandardType = "nominal"
	GeoJSON      StandardType = "geojson"
)

var standardTypes = enumSet(Quantitative, Ordinal, Temporal, Nominal, GeoJSON)

// Aggregate is an aggregation operation applied to a field.
type Aggregate string

const (
	AggArgmax    Aggregate = "argmax"
	AggArgmin    Aggregate = "argmin"
	AggAverage   Aggregate = "average"
	AggCount     Aggregate = "count"
	AggCI0       Aggregate = "ci0"
	AggCI1       Aggregate = "ci1"
	AggDistinct  Aggregate = "distinct"
	AggMax       Aggregate = "max"
	AggMean      Aggregate = "mean"
	AggMedian    Aggregate = "median"
	AggMin       Aggregate = "min"
	AggMissing   Aggregate = "missing"
	AggQ1        Aggregate = "q1"
	AggQ3        Aggregate = "q3"
	AggStderr    Aggregate = "stderr"
	AggStdev     Aggregate = "stdev"
	AggStdevp    Aggregate = "stdevp"
	AggSum       Aggregate = "sum"
	AggValid     Aggregate = "valid"
	AggValues    Aggregate = "values"
	AggVariance  Aggregate = "variance"
	AggVariancep Aggregate = "variancep"
)

var aggregates = enumSet(
	AggArgmax, AggArgmin, AggAverage, AggCount, AggCI0, AggCI1, AggDistinct,
	AggMax, AggMean, AggMedian, AggMin, AggMissing, AggQ1, AggQ3, AggStderr,
	AggStdev, AggStdevp, AggSum, AggValid, AggValues, AggVariance, AggVariancep,
)

// TimeUnit names a (possibly composite) temporal binning unit.
type TimeUnit string

const (
	TUYear                TimeUnit = "year"
	TUQuarter             TimeUnit = "quarter"
	TUMonth               TimeUnit = "month"
	TUDay                 TimeUnit = "day"
	TUDate                TimeUnit = "date"
	TUHours               TimeUnit = "hours"
	TUMinutes             TimeUnit = "minutes"
	TUSeconds             TimeUnit = "seconds"
	TUMilliseconds        TimeUnit = "milliseconds"
	TUYearQuarter         TimeUnit = "yearquarter"
	TUYearQuarterMonth    TimeUnit = "yearquartermonth"
	TUYearMonth           TimeUnit = "yearmonth"
	TUYearMonthDate       TimeUnit = "yearmonthdate"
	TUYearMonthDateHours  TimeUnit = "yearmonthdatehours"
	TUQuarterMonth        TimeUnit = "quartermonth"
	TUMonthDate           TimeUnit = "monthdate"
	TUHoursMinutes        TimeUnit = "hoursminutes"
	TUHoursMinutesSeconds TimeUnit = "hoursminutesseconds"
	TUMinutesSeconds      TimeUnit = "minutesseconds"
	TUSecondsMilliseconds TimeUnit = "secondsmilliseconds"

	TUUTCYear         TimeUnit = "utcyear"
	TUUTCQuarter      TimeUnit = "utcquarter"
	TUUTCMonth        TimeUnit = "utcmonth"
	TUUTCDay          TimeUnit = "utcday"
	TUUTCDate         TimeUnit = "utcdate"
	TUUTCHours        TimeUnit = "utchours"
	TUUTCMinutes      TimeUnit = "utcminutes"
	TUUTCSeconds      TimeUnit = "utcseconds"
	TUUTCMilliseconds TimeUnit = "utcmilliseconds"
	TUUTCYearMonth    TimeUnit = "utcyearmonth"
)

var timeUnits = enumSet(
	TUYear, TUQuarter, TUMonth, TUDay, TUDate, TUHours, TUMinutes, TUSeconds,
	TUMilliseconds, TUYearQuarter, TUYearQuarterMonth, TUYearMonth,
	TUYearMonthDate, TUYearMonthDateHours, TUQuarterMonth, TUMonthDate,
	TUHoursMinutes, TUHoursMinutesSeconds, TUMinutesSeconds,
	TUSecondsMilliseconds, TUUTCYear, TUUTCQuarter, TUUTCMonth, TUUTCDay,
	TUUTCDate, TUUTCHours, TUUTCMinutes, TUUTCSeconds, TUUTCMilliseconds,
	TUUTCYearMonth,
)

// SortOrder is the direction form of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

var sortOrders = enumSet(Ascending, Descending)

// RepeatRef points a field at the operand of an enclosing repeat spec.
type RepeatRef struct {
	Repeat string `json:"repeat"`
}

// Field names a data field, either directly or through a repeat reference.
// Decode order: string, then object with a required "repeat" key.
type Field struct {
	Name   *string
	Repeat *RepeatRef
}

// FieldName builds the plain-string form.
func FieldName(name string) *Field { return &Field{Name: &name} }

func (f Field) MarshalJSON() ([]byte, error) {
	if f.Name != nil {
		return json.Marshal(*f.Name)
	}
	return json.Marshal(f.Repeat)
}

func (d *decoder) fieldRef(v any, path string) *Field {
	if s, ok := strVal(v); ok {
		return &Field{Name: &s}
	}
	if m, ok := objVal(v); ok {
		if r, ok := m["repeat"]; ok {
			s := d.str(r, childPath(path, "repeat"))
			if s == nil {
				return nil
			}
			return &Field{Repeat: &RepeatRef{Repeat: *s}}
		}
		d.fail(childPath(path, "repeat"), CodeRequired, "repeat reference needs a 'repeat' key")
		return nil
	}
	d.fail(path, CodeUnionNoMatch, "expected field name or {repeat}")
	return nil
}

// BinParams tunes binning of a quantitative field.
type BinParams struct {
	Anchor  *float64  `json:"anchor,omitempty"`
	Base    *float64  `json:"base,omitempty"`
	Divide  []float64 `json:"divide,omitempty"`
	Extent  []float64 `json:"extent,omitempty"`
	MaxBins *float64  `json:"maxbins,omitempty"`
	MinStep *float64  `json:"minstep,omitempty"`
	Nice    *bool     `json:"nice,omitempty"`
	Step    *float64  `json:"step,omitempty"`
	Steps   []float64 `json:"steps,omitempty"`
}

// Bin is the binning flag union: the literal "binned" (data is pre-binned),
// a boolean switch, or a parameter object. Decode order: literal "binned"
// first, then boolean, then the parameter object.
type Bin struct {
	Binned bool
	Flag   *bool
	Params *BinParams
}

// Binned marks the field as already binned in the data.
func Binned() *Bin { return &Bin{Binned: true} }

// BinFlag switches default binning on or off.
func BinFlag(on bool) *Bin { return &Bin{Flag: &on} }

func (b Bin) MarshalJSON() ([]byte, error) {
	switch {
	case b.Binned:
		return json.Marshal("binned")
	case b.Flag != nil:
		return json.Marshal(*b.Flag)
	}
	return json.Marshal(b.Params)
}

func (d *decoder) bin(v any, path string) *Bin {
	if s, ok := strVal(v); ok {
		if s == "binned" {
			return &Bin{Binned: true}
		}
		d.fail(path, CodeInvalidEnum, "bin: '"+s+"'")
		return nil
	}
	if b, ok := boolVal(v); ok {
		return &Bin{Flag: &b}
	}
	if m, ok := objVal(v); ok {
		return &Bin{Params: d.binParams(m, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected 'binned', boolean, or bin parameters")
	return nil
}

func (d *decoder) binParams(m map[string]any, path string) *BinParams {
	bp := &BinParams{}
	if x, ok := m["anchor"]; ok {
		bp.Anchor = d.num(x, childPath(path, "anchor"))
	}
	if x, ok := m["base"]; ok {
		bp.Base = d.num(x, childPath(path, "base"))
	}
	if x, ok := m["divide"]; ok {
		bp.Divide = d.numSlice(x, childPath(path, "divide"))
	}
	if x, ok := m["extent"]; ok {
		bp.Extent = d.numSlice(x, childPath(path, "extent"))
	}
	if x, ok := m["maxbins"]; ok {
		bp.MaxBins = d.num(x, childPath(path, "maxbins"))
	}
	if x, ok := m["minstep"]; ok {
		bp.MinStep = d.num(x, childPath(path, "minstep"))
	}
	if x, ok := m["nice"]; ok {
		bp.Nice = d.boolean(x, childPath(path, "nice"))
	}
	if x, ok := m["step"]; ok {
		bp.Step = d.num(x, childPath(path, "step"))
	}
	if x, ok := m["steps"]; ok {
		bp.Steps = d.numSlice(x, childPath(path, "steps"))
	}
	return bp
}

// EncodingSortField sorts a channel by another (possibly aggregated) field.
type EncodingSortField struct {
	Field *Field     `json:"field,omitempty"`
	Op    *Aggregate `json:"op,omitempty"`
	Order *SortOrder `json:"order,omitempty"`
}

// Sort is the channel sort union: explicit null (no sort), a direction
// string, an array of values in preferred order, or a sort-by-field object.
// Decode order: null, direction enum, array, object.
type Sort struct {
	Null   bool
	Order  *SortOrder
	Values []any
	Field  *EncodingSortField
}

// SortBy sorts by direction.
func SortBy(o SortOrder) *Sort { return &Sort{Order: &o} }

// NoSort is the explicit-null sort.
func NoSort() *Sort { return &Sort{Null: true} }

func (s Sort) MarshalJSON() ([]byte, error) {
	switch {
	case s.Null:
		return []byte("null"), nil
	case s.Order != nil:
		return json.Marshal(*s.Order)
	case s.Values != nil:
		return json.Marshal(s.Values)
	}
	return json.Marshal(s.Field)
}

func (d *decoder) sort(v any, path string) *Sort {
	if v == nil {
		return &Sort{Null: true}
	}
	if s, ok := strVal(v); ok {
		o, ok := enumMember(s, sortOrders)
		if !ok {
			d.fail(path, CodeInvalidEnum, "sort order: '"+s+"'")
			return nil
		}
		return &Sort{Order: &o}
	}
	if a, ok := arrVal(v); ok {
		return &Sort{Values: a}
	}
	if m, ok := objVal(v); ok {
		sf := &EncodingSortField{}
		if x, ok := m["field"]; ok {
			sf.Field = d.fieldRef(x, childPath(path, "field"))
		}
		if x, ok := m["op"]; ok {
			sf.Op = enumOf(d, x, childPath(path, "op"), "aggregate op", aggregates)
		}
		if x, ok := m["order"]; ok {
			sf.Order = enumOf(d, x, childPath(path, "order"), "sort order", sortOrders)
		}
		return &Sort{Field: sf}
	}
	d.fail(path, CodeUnionNoMatch, "expected null, sort order, value array, or sort field")
	return nil
}
