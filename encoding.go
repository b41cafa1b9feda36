package vegalite

import (
	json "github.com/goccy/go-json"
)

// StackOffset is the stacking mode of a position channel.
type StackOffset string

const (
	StackZero      StackOffset = "zero"
	StackNormalize StackOffset = "normalize"
	StackCenter    StackOffset = "center"
)

var stackOffsets = enumSet(StackZero, StackNormalize, StackCenter)

// Stack is the stack union: an offset keyword or explicit null (stacking
// disabled). Decode order: null, then keyword enum.
type Stack struct {
	Null   bool
	Offset *StackOffset
}

func (s Stack) MarshalJSON() ([]byte, error) {
	if s.Null {
		return []byte("null"), nil
	}
	return json.Marshal(s.Offset)
}

func (d *decoder) stack(v any, path string) *Stack {
	if v == nil {
		return &Stack{Null: true}
	}
	o := enumOf(d, v, path, "stack offset", stackOffsets)
	if o == nil {
		return nil
	}
	return &Stack{Offset: o}
}

// ImputeMethod fills gaps in imputed data.
type ImputeMethod string

const (
	ImputeValue  ImputeMethod = "value"
	ImputeMean   ImputeMethod = "mean"
	ImputeMedian ImputeMethod = "median"
	ImputeMax    ImputeMethod = "max"
	ImputeMin    ImputeMethod = "min"
)

var imputeMethods = enumSet(ImputeValue, ImputeMean, ImputeMedian, ImputeMax, ImputeMin)

// ImputeSequence generates key values start/stop/step.
type ImputeSequence struct {
	Start *float64 `json:"start,omitempty"`
	Stop  float64  `json:"stop"`
	Step  *float64 `json:"step,omitempty"`
}

// Keyvals enumerates impute key values: an explicit array or a generated
// sequence. Decode order: array, then object with a required "stop" key.
type Keyvals struct {
	Values   []any
	Sequence *ImputeSequence
}

func (k Keyvals) MarshalJSON() ([]byte, error) {
	if k.Values != nil {
		return json.Marshal(k.Values)
	}
	return json.Marshal(k.Sequence)
}

func (d *decoder) keyvals(v any, path string) *Keyvals {
	if a, ok := arrVal(v); ok {
		return &Keyvals{Values: a}
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "stop") {
			d.fail(childPath(path, "stop"), CodeRequired, "impute sequence needs a 'stop' key")
			return nil
		}
		seq := &ImputeSequence{}
		if x, ok := m["start"]; ok {
			seq.Start = d.num(x, childPath(path, "start"))
		}
		if f := d.num(m["stop"], childPath(path, "stop")); f != nil {
			seq.Stop = *f
		}
		if x, ok := m["step"]; ok {
			seq.Step = d.num(x, childPath(path, "step"))
		}
		return &Keyvals{Sequence: seq}
	}
	d.fail(path, CodeUnionNoMatch, "expected value array or sequence")
	return nil
}

// ImputeParams configures value imputation on a position channel.
type ImputeParams struct {
	Frame   []*float64    `json:"frame,omitempty"`
	Keyvals *Keyvals      `json:"keyvals,omitempty"`
	Method  *ImputeMethod `json:"method,omitempty"`
	Value   any           `json:"value,omitempty"`
}

func (d *decoder) imputeParams(v any, path string) *ImputeParams {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	ip := &ImputeParams{}
	if x, ok := m["frame"]; ok {
		ip.Frame = d.frame(x, childPath(path, "frame"))
	}
	if x, ok := m["keyvals"]; ok {
		ip.Keyvals = d.keyvals(x, childPath(path, "keyvals"))
	}
	if x, ok := m["method"]; ok {
		ip.Method = enumOf(d, x, childPath(path, "method"), "impute method", imputeMethods)
	}
	if x, ok := m["value"]; ok {
		ip.Value = x
	}
	return ip
}

// frame decodes a two-element window frame whose bounds may be null
// (unbounded).
func (d *decoder) frame(v any, path string) []*float64 {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]*float64, 0, len(a))
	for i, e := range a {
		if e == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, d.num(e, indexPath(path, i)))
	}
	return out
}

// FieldDef is the core of every field channel definition.
type FieldDef struct {
	Aggregate *Aggregate      `json:"aggregate,omitempty"`
	Bin       *Bin            `json:"bin,omitempty"`
	Field     *Field          `json:"field,omitempty"`
	TimeUnit  *TimeUnit       `json:"timeUnit,omitempty"`
	Title     *NullableString `json:"title,omitempty"`
	Type      *StandardType   `json:"type,omitempty"`
}

func (d *decoder) fieldDefInto(fd *FieldDef, m map[string]any, path string) {
	if x, ok := m["aggregate"]; ok {
		fd.Aggregate = enumOf(d, x, childPath(path, "aggregate"), "aggregate op", aggregates)
	}
	if x, ok := m["bin"]; ok {
		fd.Bin = d.bin(x, childPath(path, "bin"))
	}
	if x, ok := m["field"]; ok {
		fd.Field = d.fieldRef(x, childPath(path, "field"))
	}
	if x, ok := m["timeUnit"]; ok {
		fd.TimeUnit = enumOf(d, x, childPath(path, "timeUnit"), "time unit", timeUnits)
	}
	if x, ok := m["title"]; ok {
		fd.Title = d.nullableString(x, childPath(path, "title"))
	}
	if x, ok := m["type"]; ok {
		fd.Type = enumOf(d, x, childPath(path, "type"), "measurement type", standardTypes)
	}
}

func (d *decoder) fieldDef(v any, path string) *FieldDef {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	fd := &FieldDef{}
	d.fieldDefInto(fd, m, path)
	return fd
}

// PositionDef is a field definition for the x/y channels.
type PositionDef struct {
	FieldDef
	Axis   *Nullable[Axis]  `json:"axis,omitempty"`
	Impute *ImputeParams    `json:"impute,omitempty"`
	Scale  *Nullable[Scale] `json:"scale,omitempty"`
	Sort   *Sort            `json:"sort,omitempty"`
	Stack  *Stack           `json:"stack,omitempty"`
}

func (d *decoder) positionDef(m map[string]any, path string) *PositionDef {
	pd := &PositionDef{}
	d.fieldDefInto(&pd.FieldDef, m, path)
	if x, ok := m["axis"]; ok {
		pd.Axis = nullableOf(d, x, childPath(path, "axis"), d.axis)
	}
	if x, ok := m["impute"]; ok {
		pd.Impute = d.imputeParams(x, childPath(path, "impute"))
	}
	if x, ok := m["scale"]; ok {
		pd.Scale = nullableOf(d, x, childPath(path, "scale"), d.scale)
	}
	if x, ok := m["sort"]; ok {
		pd.Sort = d.sort(x, childPath(path, "sort"))
	}
	if x, ok := m["stack"]; ok {
		pd.Stack = d.stack(x, childPath(path, "stack"))
	}
	return pd
}

// MarkPropDef is a field definition for mark property channels (color, size,
// shape, opacity, ...).
type MarkPropDef struct {
	FieldDef
	Condition *Conditionals     `json:"condition,omitempty"`
	Legend    *Nullable[Legend] `json:"legend,omitempty"`
	Scale     *Nullable[Scale]  `json:"scale,omitempty"`
	Sort      *Sort             `json:"sort,omitempty"`
}

func (d *decoder) markPropDef(m map[string]any, path string) *MarkPropDef {
	md := &MarkPropDef{}
	d.fieldDefInto(&md.FieldDef, m, path)
	if x, ok := m["condition"]; ok {
		md.Condition = d.conditionals(x, childPath(path, "condition"))
	}
	if x, ok := m["legend"]; ok {
		md.Legend = nullableOf(d, x, childPath(path, "legend"), d.legend)
	}
	if x, ok := m["scale"]; ok {
		md.Scale = nullableOf(d, x, childPath(path, "scale"), d.scale)
	}
	if x, ok := m["sort"]; ok {
		md.Sort = d.sort(x, childPath(path, "sort"))
	}
	return md
}

// TextDef is a field definition for the text/tooltip/href channels.
type TextDef struct {
	FieldDef
	Condition *Conditionals `json:"condition,omitempty"`
	Format    *string       `json:"format,omitempty"`
}

func (d *decoder) textDef(m map[string]any, path string) *TextDef {
	td := &TextDef{}
	d.fieldDefInto(&td.FieldDef, m, path)
	if x, ok := m["condition"]; ok {
		td.Condition = d.conditionals(x, childPath(path, "condition"))
	}
	if x, ok := m["format"]; ok {
		td.Format = d.str(x, childPath(path, "format"))
	}
	return td
}

// OrderDef is a field definition for the order channel.
type OrderDef struct {
	FieldDef
	Sort *SortOrder `json:"sort,omitempty"`
}

func (d *decoder) orderDef(v any, path string) *OrderDef {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	od := &OrderDef{}
	d.fieldDefInto(&od.FieldDef, m, path)
	if x, ok := m["sort"]; ok {
		od.Sort = enumOf(d, x, childPath(path, "sort"), "sort order", sortOrders)
	}
	return od
}

// FacetFieldDef is a field definition for the row/column channels.
type FacetFieldDef struct {
	FieldDef
	Header *Header `json:"header,omitempty"`
	Sort   *Sort   `json:"sort,omitempty"`
}

func (d *decoder) facetFieldDef(v any, path string) *FacetFieldDef {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	fd := &FacetFieldDef{}
	d.fieldDefInto(&fd.FieldDef, m, path)
	if x, ok := m["header"]; ok {
		fd.Header = d.header(x, childPath(path, "header"))
	}
	if x, ok := m["sort"]; ok {
		fd.Sort = d.sort(x, childPath(path, "sort"))
	}
	return fd
}

// Conditional pairs a test (predicate or selection) with the value or field
// definition that applies when it holds.
type Conditional struct {
	Test      *Predicate        `json:"test,omitempty"`
	Selection *SelectionOperand `json:"selection,omitempty"`
	Value     *Value            `json:"value,omitempty"`
	Field     *MarkPropDef      `json:"-"`
}

func (c Conditional) MarshalJSON() ([]byte, error) {
	if c.Field != nil {
		return marshalMerged(c.Field, func(m map[string]any) {
			if c.Test != nil {
				m["test"] = c.Test
			}
			if c.Selection != nil {
				m["selection"] = c.Selection
			}
		})
	}
	type alias Conditional
	return json.Marshal(alias(c))
}

func (d *decoder) conditional(v any, path string) *Conditional {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &Conditional{}
	if x, ok := m["test"]; ok {
		c.Test = d.predicate(x, childPath(path, "test"))
	}
	if x, ok := m["selection"]; ok {
		c.Selection = d.selectionOperand(x, childPath(path, "selection"))
	}
	if x, ok := m["value"]; ok {
		c.Value = d.value(x, childPath(path, "value"))
	} else {
		c.Field = d.markPropDef(m, path)
	}
	return c
}

// Conditionals is one conditional or a list of them. Decode order: object,
// then array.
type Conditionals struct {
	One  *Conditional
	Many []Conditional
}

func (c Conditionals) MarshalJSON() ([]byte, error) {
	if c.One != nil {
		return json.Marshal(c.One)
	}
	return json.Marshal(c.Many)
}

func (d *decoder) conditionals(v any, path string) *Conditionals {
	if _, ok := objVal(v); ok {
		return &Conditionals{One: d.conditional(v, path)}
	}
	if a, ok := arrVal(v); ok {
		out := make([]Conditional, 0, len(a))
		for i, e := range a {
			if c := d.conditional(e, indexPath(path, i)); c != nil {
				out = append(out, *c)
			}
		}
		return &Conditionals{Many: out}
	}
	d.fail(path, CodeUnionNoMatch, "expected conditional or array of conditionals")
	return nil
}

// ValueDef is a constant channel definition, optionally conditional.
type ValueDef struct {
	Condition *Conditionals `json:"condition,omitempty"`
	Value     *Value        `json:"value,omitempty"`
}

func (d *decoder) valueDef(m map[string]any, path string) *ValueDef {
	vd := &ValueDef{}
	if x, ok := m["condition"]; ok {
		vd.Condition = d.conditionals(x, childPath(path, "condition"))
	}
	if x, ok := m["value"]; ok {
		vd.Value = d.value(x, childPath(path, "value"))
	}
	return vd
}

// fieldDefKeys are the properties whose presence selects the field-reference
// variant of a channel union. The field variant is tried before the value
// variant, so an object carrying both decodes as a field definition.
func fieldDefLike(m map[string]any) bool {
	return hasKey(m, "field", "aggregate", "bin", "timeUnit", "type", "scale", "axis", "legend", "sort", "stack", "header")
}

// PositionChannel is the x/y union: a field definition or a constant value.
// Decode order: field definition (field-signature keys), then value.
type PositionChannel struct {
	Def   *PositionDef
	Value *ValueDef
}

func (c PositionChannel) MarshalJSON() ([]byte, error) {
	if c.Def != nil {
		return json.Marshal(c.Def)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) positionChannel(v any, path string) *PositionChannel {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value", "condition") {
		return &PositionChannel{Def: d.positionDef(m, path)}
	}
	return &PositionChannel{Value: d.valueDef(m, path)}
}

// MarkPropChannel is the union for mark property channels. Decode order:
// field definition, then value.
type MarkPropChannel struct {
	Def   *MarkPropDef
	Value *ValueDef
}

func (c MarkPropChannel) MarshalJSON() ([]byte, error) {
	if c.Def != nil {
		return json.Marshal(c.Def)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) markPropChannel(v any, path string) *MarkPropChannel {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value", "condition") {
		return &MarkPropChannel{Def: d.markPropDef(m, path)}
	}
	return &MarkPropChannel{Value: d.valueDef(m, path)}
}

// TextChannel is the union for text/href channels. Decode order: field
// definition, then value.
type TextChannel struct {
	Def   *TextDef
	Value *ValueDef
}

func (c TextChannel) MarshalJSON() ([]byte, error) {
	if c.Def != nil {
		return json.Marshal(c.Def)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) textChannel(v any, path string) *TextChannel {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value", "condition") {
		return &TextChannel{Def: d.textDef(m, path)}
	}
	return &TextChannel{Value: d.valueDef(m, path)}
}

// SecondaryChannel is the union for x2/y2/error channels and geo positions,
// which take a bare field definition or a constant value.
type SecondaryChannel struct {
	Def   *FieldDef
	Value *ValueDef
}

func (c SecondaryChannel) MarshalJSON() ([]byte, error) {
	if c.Def != nil {
		return json.Marshal(c.Def)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) secondaryChannel(v any, path string) *SecondaryChannel {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value") {
		fd := &FieldDef{}
		d.fieldDefInto(fd, m, path)
		return &SecondaryChannel{Def: fd}
	}
	return &SecondaryChannel{Value: d.valueDef(m, path)}
}

// DetailChannel is one field definition or a list of them. Decode order:
// object, then array.
type DetailChannel struct {
	One  *FieldDef
	Many []FieldDef
}

func (c DetailChannel) MarshalJSON() ([]byte, error) {
	if c.One != nil {
		return json.Marshal(c.One)
	}
	return json.Marshal(c.Many)
}

func (d *decoder) detailChannel(v any, path string) *DetailChannel {
	if _, ok := objVal(v); ok {
		return &DetailChannel{One: d.fieldDef(v, path)}
	}
	if a, ok := arrVal(v); ok {
		out := make([]FieldDef, 0, len(a))
		for i, e := range a {
			if fd := d.fieldDef(e, indexPath(path, i)); fd != nil {
				out = append(out, *fd)
			}
		}
		return &DetailChannel{Many: out}
	}
	d.fail(path, CodeUnionNoMatch, "expected field definition or array")
	return nil
}

// OrderChannel is one order definition, a list of them, or a constant value.
// Decode order: array, then field definition, then value.
type OrderChannel struct {
	One   *OrderDef
	Many  []OrderDef
	Value *ValueDef
}

func (c OrderChannel) MarshalJSON() ([]byte, error) {
	switch {
	case c.One != nil:
		return json.Marshal(c.One)
	case c.Many != nil:
		return json.Marshal(c.Many)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) orderChannel(v any, path string) *OrderChannel {
	if a, ok := arrVal(v); ok {
		out := make([]OrderDef, 0, len(a))
		for i, e := range a {
			if od := d.orderDef(e, indexPath(path, i)); od != nil {
				out = append(out, *od)
			}
		}
		return &OrderChannel{Many: out}
	}
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value") {
		return &OrderChannel{One: d.orderDef(v, path)}
	}
	return &OrderChannel{Value: d.valueDef(m, path)}
}

// TooltipChannel is a text definition, a list of them, a constant value, or
// explicit null (tooltip disabled). Decode order: null, array, field
// definition, value.
type TooltipChannel struct {
	Null  bool
	Def   *TextDef
	Many  []TextDef
	Value *ValueDef
}

func (c TooltipChannel) MarshalJSON() ([]byte, error) {
	switch {
	case c.Null:
		return []byte("null"), nil
	case c.Def != nil:
		return json.Marshal(c.Def)
	case c.Many != nil:
		return json.Marshal(c.Many)
	}
	return json.Marshal(c.Value)
}

func (d *decoder) tooltipChannel(v any, path string) *TooltipChannel {
	if v == nil {
		return &TooltipChannel{Null: true}
	}
	if a, ok := arrVal(v); ok {
		out := make([]TextDef, 0, len(a))
		for i, e := range a {
			p := indexPath(path, i)
			if em, ok := objVal(e); ok {
				if td := d.textDef(em, p); td != nil {
					out = append(out, *td)
				}
			} else {
				d.fail(p, CodeInvalidType, "expected field definition")
			}
		}
		return &TooltipChannel{Many: out}
	}
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	if fieldDefLike(m) || !hasKey(m, "value", "condition") {
		return &TooltipChannel{Def: d.textDef(m, path)}
	}
	return &TooltipChannel{Value: d.valueDef(m, path)}
}

// Encoding maps channels to field or value definitions. Keys are unique and
// order is not significant on the wire.
type Encoding struct {
	Color         *MarkPropChannel  `json:"color,omitempty"`
	Column        *FacetFieldDef    `json:"column,omitempty"`
	Detail        *DetailChannel    `json:"detail,omitempty"`
	Fill          *MarkPropChannel  `json:"fill,omitempty"`
	FillOpacity   *MarkPropChannel  `json:"fillOpacity,omitempty"`
	Href          *TextChannel      `json:"href,omitempty"`
	Key           *FieldDef         `json:"key,omitempty"`
	Latitude      *SecondaryChannel `json:"latitude,omitempty"`
	Latitude2     *SecondaryChannel `json:"latitude2,omitempty"`
	Longitude     *SecondaryChannel `json:"longitude,omitempty"`
	Longitude2    *SecondaryChannel `json:"longitude2,omitempty"`
	Opacity       *MarkPropChannel  `json:"opacity,omitempty"`
	Order         *OrderChannel     `json:"order,omitempty"`
	Row           *FacetFieldDef    `json:"row,omitempty"`
	Shape         *MarkPropChannel  `json:"shape,omitempty"`
	Size          *MarkPropChannel  `json:"size,omitempty"`
	Stroke        *MarkPropChannel  `json:"stroke,omitempty"`
	StrokeOpacity *MarkPropChannel  `json:"strokeOpacity,omitempty"`
	StrokeWidth   *MarkPropChannel  `json:"strokeWidth,omitempty"`
	Text          *TextChannel      `json:"text,omitempty"`
	Tooltip       *TooltipChannel   `json:"tooltip,omitempty"`
	X             *PositionChannel  `json:"x,omitempty"`
	X2            *SecondaryChannel `json:"x2,omitempty"`
	XError        *SecondaryChannel `json:"xError,omitempty"`
	XError2       *SecondaryChannel `json:"xError2,omitempty"`
	Y             *PositionChannel  `json:"y,omitempty"`
	Y2            *SecondaryChannel `json:"y2,omitempty"`
	YError        *SecondaryChannel `json:"yError,omitempty"`
	YError2       *SecondaryChannel `json:"yError2,omitempty"`
}

func (d *decoder) encoding(v any, path string) *Encoding {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	e := &Encoding{}
	if x, ok := m["color"]; ok {
		e.Color = d.markPropChannel(x, childPath(path, "color"))
	}
	if x, ok := m["column"]; ok {
		e.Column = d.facetFieldDef(x, childPath(path, "column"))
	}
	if x, ok := m["detail"]; ok {
		e.Detail = d.detailChannel(x, childPath(path, "detail"))
	}
	if x, ok := m["fill"]; ok {
		e.Fill = d.markPropChannel(x, childPath(path, "fill"))
	}
	if x, ok := m["fillOpacity"]; ok {
		e.FillOpacity = d.markPropChannel(x, childPath(path, "fillOpacity"))
	}
	if x, ok := m["href"]; ok {
		e.Href = d.textChannel(x, childPath(path, "href"))
	}
	if x, ok := m["key"]; ok {
		e.Key = d.fieldDef(x, childPath(path, "key"))
	}
	if x, ok := m["latitude"]; ok {
		e.Latitude = d.secondaryChannel(x, childPath(path, "latitude"))
	}
	if x, ok := m["latitude2"]; ok {
		e.Latitude2 = d.secondaryChannel(x, childPath(path, "latitude2"))
	}
	if x, ok := m["longitude"]; ok {
		e.Longitude = d.secondaryChannel(x, childPath(path, "longitude"))
	}
	if x, ok := m["longitude2"]; ok {
		e.Longitude2 = d.secondaryChannel(x, childPath(path, "longitude2"))
	}
	if x, ok := m["opacity"]; ok {
		e.Opacity = d.markPropChannel(x, childPath(path, "opacity"))
	}
	if x, ok := m["order"]; ok {
		e.Order = d.orderChannel(x, childPath(path, "order"))
	}
	if x, ok := m["row"]; ok {
		e.Row = d.facetFieldDef(x, childPath(path, "row"))
	}
	if x, ok := m["shape"]; ok {
		e.Shape = d.markPropChannel(x, childPath(path, "shape"))
	}
	if x, ok := m["size"]; ok {
		e.Size = d.markPropChannel(x, childPath(path, "size"))
	}
	if x, ok := m["stroke"]; ok {
		e.Stroke = d.markPropChannel(x, childPath(path, "stroke"))
	}
	if x, ok := m["strokeOpacity"]; ok {
		e.StrokeOpacity = d.markPropChannel(x, childPath(path, "strokeOpacity"))
	}
	if x, ok := m["strokeWidth"]; ok {
		e.StrokeWidth = d.markPropChannel(x, childPath(path, "strokeWidth"))
	}
	if x, ok := m["text"]; ok {
		e.Text = d.textChannel(x, childPath(path, "text"))
	}
	if x, ok := m["tooltip"]; ok {
		e.Tooltip = d.tooltipChannel(x, childPath(path, "tooltip"))
	}
	if x, ok := m["x"]; ok {
		e.X = d.positionChannel(x, childPath(path, "x"))
	}
	if x, ok := m["x2"]; ok {
		e.X2 = d.secondaryChannel(x, childPath(path, "x2"))
	}
	if x, ok := m["xError"]; ok {
		e.XError = d.secondaryChannel(x, childPath(path, "xError"))
	}
	if x, ok := m["xError2"]; ok {
		e.XError2 = d.secondaryChannel(x, childPath(path, "xError2"))
	}
	if x, ok := m["y"]; ok {
		e.Y = d.positionChannel(x, childPath(path, "y"))
	}
	if x, ok := m["y2"]; ok {
		e.Y2 = d.secondaryChannel(x, childPath(path, "y2"))
	}
	if x, ok := m["yError"]; ok {
		e.YError = d.secondaryChannel(x, childPath(path, "yError"))
	}
	if x, ok := m["yError2"]; ok {
		e.YError2 = d.secondaryChannel(x, childPath(path, "yError2"))
	}
	return e
}
