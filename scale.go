package vegalite

import (
	json "github.com/goccy/go-json"
)

// ScaleType names the scale function mapping data to visual values.
type ScaleType string

const (
	ScaleLinear     ScaleType = "linear"
	ScaleLog        ScaleType = "log"
	ScalePow        ScaleType = "pow"
	ScaleSqrt       ScaleType = "sqrt"
	ScaleSymlog     ScaleType = "symlog"
	ScaleTime       ScaleType = "time"
	ScaleUTC        ScaleType = "utc"
	ScaleSequential ScaleType = "sequential"
	ScaleOrdinal    ScaleType = "ordinal"
	ScaleBand       ScaleType = "band"
	ScalePoint      ScaleType = "point"
	ScaleBinLinear  ScaleType = "bin-linear"
	ScaleBinOrdinal ScaleType = "bin-ordinal"
	ScaleQuantile   ScaleType = "quantile"
	ScaleQuantize   ScaleType = "quantize"
	ScaleThreshold  ScaleType = "threshold"
)

var scaleTypes = enumSet(
	ScaleLinear, ScaleLog, ScalePow, ScaleSqrt, ScaleSymlog, ScaleTime,
	ScaleUTC, ScaleSequential, ScaleOrdinal, ScaleBand, ScalePoint,
	ScaleBinLinear, ScaleBinOrdinal, ScaleQuantile, ScaleQuantize,
	ScaleThreshold,
)

// DomainElement is one entry of an explicit scale domain: a number, a string,
// a boolean, or a date-time literal.
type DomainElement struct {
	Number   *float64
	String   *string
	Bool     *bool
	DateTime *DateTime
}

func (e DomainElement) MarshalJSON() ([]byte, error) {
	switch {
	case e.Number != nil:
		return json.Marshal(*e.Number)
	case e.String != nil:
		return json.Marshal(*e.String)
	case e.Bool != nil:
		return json.Marshal(*e.Bool)
	}
	return json.Marshal(e.DateTime)
}

func (d *decoder) domainElement(v any, path string) *DomainElement {
	if f, ok := numVal(v); ok {
		return &DomainElement{Number: &f}
	}
	if s, ok := strVal(v); ok {
		return &DomainElement{String: &s}
	}
	if b, ok := boolVal(v); ok {
		return &DomainElement{Bool: &b}
	}
	if _, ok := objVal(v); ok {
		return &DomainElement{DateTime: d.dateTime(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected number, string, boolean, or date-time")
	return nil
}

func (d *decoder) domainElements(v any, path string) []DomainElement {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]DomainElement, 0, len(a))
	for i, e := range a {
		if el := d.domainElement(e, indexPath(path, i)); el != nil {
			out = append(out, *el)
		}
	}
	return out
}

// SelectionDomain ties a scale domain to a selection, optionally narrowed to
// one encoding channel or field.
type SelectionDomain struct {
	Selection string  `json:"selection"`
	Encoding  *string `json:"encoding,omitempty"`
	Field     *string `json:"field,omitempty"`
}

// Domain is the scale domain union: the literal "unaggregated", an explicit
// array of domain values, or a selection reference object. Decode order:
// literal first, then the selection object (required "selection" key), then
// the array.
type Domain struct {
	Unaggregated bool
	Values       []DomainElement
	Selection    *SelectionDomain
}

// UnaggregatedDomain is the literal "unaggregated" domain.
func UnaggregatedDomain() *Domain { return &Domain{Unaggregated: true} }

// DomainNumbers builds an explicit numeric domain.
func DomainNumbers(ns ...float64) *Domain {
	vals := make([]DomainElement, len(ns))
	for i := range ns {
		vals[i] = DomainElement{Number: &ns[i]}
	}
	return &Domain{Values: vals}
}

// DomainStrings builds an explicit categorical domain.
func DomainStrings(ss ...string) *Domain {
	vals := make([]DomainElement, len(ss))
	for i := range ss {
		vals[i] = DomainElement{String: &ss[i]}
	}
	return &Domain{Values: vals}
}

func (dom Domain) MarshalJSON() ([]byte, error) {
	switch {
	case dom.Unaggregated:
		return json.Marshal("unaggregated")
	case dom.Selection != nil:
		return json.Marshal(dom.Selection)
	}
	return json.Marshal(dom.Values)
}

func (d *decoder) domain(v any, path string) *Domain {
	if s, ok := strVal(v); ok {
		if s == "unaggregated" {
			return &Domain{Unaggregated: true}
		}
		d.fail(path, CodeInvalidEnum, "domain: '"+s+"'")
		return nil
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "selection") {
			d.fail(path, CodeUnionNoMatch, "expected 'unaggregated', value array, or {selection}")
			return nil
		}
		sd := &SelectionDomain{}
		if s := d.str(m["selection"], childPath(path, "selection")); s != nil {
			sd.Selection = *s
		}
		if x, ok := m["encoding"]; ok {
			sd.Encoding = d.str(x, childPath(path, "encoding"))
		}
		if x, ok := m["field"]; ok {
			sd.Field = d.str(x, childPath(path, "field"))
		}
		return &Domain{Selection: sd}
	}
	if _, ok := arrVal(v); ok {
		return &Domain{Values: d.domainElements(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected 'unaggregated', value array, or {selection}")
	return nil
}

// RangeElement is one entry of an explicit scale range.
type RangeElement struct {
	Number *float64
	String *string
}

func (e RangeElement) MarshalJSON() ([]byte, error) {
	if e.Number != nil {
		return json.Marshal(*e.Number)
	}
	return json.Marshal(e.String)
}

// Range is the scale range union: a range name (for example "category") or
// an explicit array of numbers/strings. Decode order: string, then array.
type Range struct {
	Name   *string
	Values []RangeElement
}

// RangeName references a named range.
func RangeName(name string) *Range { return &Range{Name: &name} }

// RangeNumbers builds an explicit numeric range.
func RangeNumbers(ns ...float64) *Range {
	vals := make([]RangeElement, len(ns))
	for i := range ns {
		vals[i] = RangeElement{Number: &ns[i]}
	}
	return &Range{Values: vals}
}

func (r Range) MarshalJSON() ([]byte, error) {
	if r.Name != nil {
		return json.Marshal(*r.Name)
	}
	return json.Marshal(r.Values)
}

func (d *decoder) scaleRange(v any, path string) *Range {
	if s, ok := strVal(v); ok {
		return &Range{Name: &s}
	}
	a, ok := arrVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected range name or value array")
		return nil
	}
	out := make([]RangeElement, 0, len(a))
	for i, e := range a {
		p := indexPath(path, i)
		if f, ok := numVal(e); ok {
			out = append(out, RangeElement{Number: &f})
			continue
		}
		if s, ok := strVal(e); ok {
			out = append(out, RangeElement{String: &s})
			continue
		}
		d.fail(p, CodeUnionNoMatch, "expected number or string")
	}
	return &Range{Values: out}
}

// SchemeParams selects a named color scheme with optional sizing.
type SchemeParams struct {
	Name   string    `json:"name"`
	Count  *float64  `json:"count,omitempty"`
	Extent []float64 `json:"extent,omitempty"`
}

// Scheme is a color scheme name or a parameter object. Decode order: string,
// then object with a required "name" key.
type Scheme struct {
	Name   *string
	Params *SchemeParams
}

func (s Scheme) MarshalJSON() ([]byte, error) {
	if s.Name != nil {
		return json.Marshal(*s.Name)
	}
	return json.Marshal(s.Params)
}

func (d *decoder) scheme(v any, path string) *Scheme {
	if s, ok := strVal(v); ok {
		return &Scheme{Name: &s}
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "name") {
			d.fail(childPath(path, "name"), CodeRequired, "scheme params need a 'name' key")
			return nil
		}
		sp := &SchemeParams{}
		if s := d.str(m["name"], childPath(path, "name")); s != nil {
			sp.Name = *s
		}
		if x, ok := m["count"]; ok {
			sp.Count = d.num(x, childPath(path, "count"))
		}
		if x, ok := m["extent"]; ok {
			sp.Extent = d.numSlice(x, childPath(path, "extent"))
		}
		return &Scheme{Params: sp}
	}
	d.fail(path, CodeUnionNoMatch, "expected scheme name or scheme params")
	return nil
}

// NiceTime is the time-interval keyword form of nice.
type NiceTime string

const (
	NiceMillisecond NiceTime = "millisecond"
	NiceSecond      NiceTime = "second"
	NiceMinute      NiceTime = "minute"
	NiceHour        NiceTime = "hour"
	NiceDay         NiceTime = "day"
	NiceWeek        NiceTime = "week"
	NiceMonth       NiceTime = "month"
	NiceYear        NiceTime = "year"
)

var niceTimes = enumSet(
	NiceMillisecond, NiceSecond, NiceMinute, NiceHour, NiceDay, NiceWeek,
	NiceMonth, NiceYear,
)

// NiceParams is the interval-with-step form of nice.
type NiceParams struct {
	Interval NiceTime `json:"interval"`
	Step     float64  `json:"step"`
}

// Nice controls domain rounding: a boolean, a tick count, a time-interval
// keyword, or an interval/step object. Decode order: keyword enum, boolean,
// number, object.
type Nice struct {
	Bool   *bool
	Number *float64
	Time   *NiceTime
	Params *NiceParams
}

func (n Nice) MarshalJSON() ([]byte, error) {
	switch {
	case n.Time != nil:
		return json.Marshal(*n.Time)
	case n.Bool != nil:
		return json.Marshal(*n.Bool)
	case n.Number != nil:
		return json.Marshal(*n.Number)
	}
	return json.Marshal(n.Params)
}

func (d *decoder) nice(v any, path string) *Nice {
	if s, ok := strVal(v); ok {
		nt, ok := enumMember(s, niceTimes)
		if !ok {
			d.fail(path, CodeInvalidEnum, "nice interval: '"+s+"'")
			return nil
		}
		return &Nice{Time: &nt}
	}
	if b, ok := boolVal(v); ok {
		return &Nice{Bool: &b}
	}
	if f, ok := numVal(v); ok {
		return &Nice{Number: &f}
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "interval") || !hasKey(m, "step") {
			d.fail(path, CodeRequired, "nice params need 'interval' and 'step'")
			return nil
		}
		np := &NiceParams{}
		if nt := enumOf(d, m["interval"], childPath(path, "interval"), "nice interval", niceTimes); nt != nil {
			np.Interval = *nt
		}
		if f := d.num(m["step"], childPath(path, "step")); f != nil {
			np.Step = *f
		}
		return &Nice{Params: np}
	}
	d.fail(path, CodeUnionNoMatch, "expected boolean, number, interval keyword, or params")
	return nil
}

// ScaleInterpolateType names a color space interpolation.
type ScaleInterpolateType string

const (
	SIRGB           ScaleInterpolateType = "rgb"
	SILab           ScaleInterpolateType = "lab"
	SIHCL           ScaleInterpolateType = "hcl"
	SIHSL           ScaleInterpolateType = "hsl"
	SIHSLLong       ScaleInterpolateType = "hsl-long"
	SIHCLLong       ScaleInterpolateType = "hcl-long"
	SICubehelix     ScaleInterpolateType = "cubehelix"
	SICubehelixLong ScaleInterpolateType = "cubehelix-long"
)

var scaleInterpolateTypes = enumSet(
	SIRGB, SILab, SIHCL, SIHSL, SIHSLLong, SIHCLLong, SICubehelix,
	SICubehelixLong,
)

// ScaleInterpolateParams is the parameterized interpolation form.
type ScaleInterpolateParams struct {
	Type  ScaleInterpolateType `json:"type"`
	Gamma *float64             `json:"gamma,omitempty"`
}

// ScaleInterpolate is an interpolation keyword or a parameter object.
// Decode order: keyword enum, then object with a required "type" key.
type ScaleInterpolate struct {
	Type   *ScaleInterpolateType
	Params *ScaleInterpolateParams
}

func (si ScaleInterpolate) MarshalJSON() ([]byte, error) {
	if si.Type != nil {
		return json.Marshal(*si.Type)
	}
	return json.Marshal(si.Params)
}

func (d *decoder) scaleInterpolate(v any, path string) *ScaleInterpolate {
	if s, ok := strVal(v); ok {
		t, ok := enumMember(s, scaleInterpolateTypes)
		if !ok {
			d.fail(path, CodeInvalidEnum, "scale interpolate: '"+s+"'")
			return nil
		}
		return &ScaleInterpolate{Type: &t}
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "type") {
			d.fail(childPath(path, "type"), CodeRequired, "interpolate params need a 'type' key")
			return nil
		}
		sp := &ScaleInterpolateParams{}
		if t := enumOf(d, m["type"], childPath(path, "type"), "scale interpolate", scaleInterpolateTypes); t != nil {
			sp.Type = *t
		}
		if x, ok := m["gamma"]; ok {
			sp.Gamma = d.num(x, childPath(path, "gamma"))
		}
		return &ScaleInterpolate{Params: sp}
	}
	d.fail(path, CodeUnionNoMatch, "expected interpolate keyword or params")
	return nil
}

// Scale maps data values to visual values for a channel.
type Scale struct {
	Base         *float64          `json:"base,omitempty"`
	Bins         []float64         `json:"bins,omitempty"`
	Clamp        *bool             `json:"clamp,omitempty"`
	Constant     *float64          `json:"constant,omitempty"`
	Domain       *Domain           `json:"domain,omitempty"`
	Exponent     *float64          `json:"exponent,omitempty"`
	Interpolate  *ScaleInterpolate `json:"interpolate,omitempty"`
	Nice         *Nice             `json:"nice,omitempty"`
	Padding      *float64          `json:"padding,omitempty"`
	PaddingInner *float64          `json:"paddingInner,omitempty"`
	PaddingOuter *float64          `json:"paddingOuter,omitempty"`
	Range        *Range            `json:"range,omitempty"`
	RangeStep    *float64          `json:"rangeStep,omitempty"`
	Round        *bool             `json:"round,omitempty"`
	Scheme       *Scheme           `json:"scheme,omitempty"`
	Type         *ScaleType        `json:"type,omitempty"`
	Zero         *bool             `json:"zero,omitempty"`
}

func (d *decoder) scale(v any, path string) *Scale {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	sc := &Scale{}
	if x, ok := m["base"]; ok {
		sc.Base = d.num(x, childPath(path, "base"))
	}
	if x, ok := m["bins"]; ok {
		sc.Bins = d.numSlice(x, childPath(path, "bins"))
	}
	if x, ok := m["clamp"]; ok {
		sc.Clamp = d.boolean(x, childPath(path, "clamp"))
	}
	if x, ok := m["constant"]; ok {
		sc.Constant = d.num(x, childPath(path, "constant"))
	}
	if x, ok := m["domain"]; ok {
		sc.Domain = d.domain(x, childPath(path, "domain"))
	}
	if x, ok := m["exponent"]; ok {
		sc.Exponent = d.num(x, childPath(path, "exponent"))
	}
	if x, ok := m["interpolate"]; ok {
		sc.Interpolate = d.scaleInterpolate(x, childPath(path, "interpolate"))
	}
	if x, ok := m["nice"]; ok {
		sc.Nice = d.nice(x, childPath(path, "nice"))
	}
	if x, ok := m["padding"]; ok {
		sc.Padding = d.num(x, childPath(path, "padding"))
	}
	if x, ok := m["paddingInner"]; ok {
		sc.PaddingInner = d.num(x, childPath(path, "paddingInner"))
	}
	if x, ok := m["paddingOuter"]; ok {
		sc.PaddingOuter = d.num(x, childPath(path, "paddingOuter"))
	}
	if x, ok := m["range"]; ok {
		sc.Range = d.scaleRange(x, childPath(path, "range"))
	}
	if x, ok := m["rangeStep"]; ok {
		if x != nil {
			sc.RangeStep = d.num(x, childPath(path, "rangeStep"))
		}
	}
	if x, ok := m["round"]; ok {
		sc.Round = d.boolean(x, childPath(path, "round"))
	}
	if x, ok := m["scheme"]; ok {
		sc.Scheme = d.scheme(x, childPath(path, "scheme"))
	}
	if x, ok := m["type"]; ok {
		sc.Type = enumOf(d, x, childPath(path, "type"), "scale type", scaleTypes)
	}
	if x, ok := m["zero"]; ok {
		sc.Zero = d.boolean(x, childPath(path, "zero"))
	}
	return sc
}
