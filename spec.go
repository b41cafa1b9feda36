package vegalite

import (
	json "github.com/goccy/go-json"
)

// DefaultSchemaURL is the $schema injected by NewSpec.
const DefaultSchemaURL = "https://vega.github.io/schema/vega-lite/v3.json"

// TitleAnchor positions a title along its axis.
type TitleAnchor string

const (
	AnchorStart  TitleAnchor = "start"
	AnchorMiddle TitleAnchor = "middle"
	AnchorEnd    TitleAnchor = "end"
)

var titleAnchors = enumSet(AnchorStart, AnchorMiddle, AnchorEnd)

// TitleFrame anchors a title to the full view or the data rect.
type TitleFrame string

const (
	FrameBounds TitleFrame = "bounds"
	FrameGroup  TitleFrame = "group"
)

var titleFrames = enumSet(FrameBounds, FrameGroup)

// TitleOrient places a title on a side of the chart.
type TitleOrient string

const (
	TitleTop    TitleOrient = "top"
	TitleBottom TitleOrient = "bottom"
	TitleLeft   TitleOrient = "left"
	TitleRight  TitleOrient = "right"
	TitleNone   TitleOrient = "none"
)

var titleOrients = enumSet(TitleTop, TitleBottom, TitleLeft, TitleRight, TitleNone)

// TitleParams is the object form of a chart title.
type TitleParams struct {
	Text       string        `json:"text"`
	Anchor     *TitleAnchor  `json:"anchor,omitempty"`
	Angle      *float64      `json:"angle,omitempty"`
	Baseline   *TextBaseline `json:"baseline,omitempty"`
	Color      *string       `json:"color,omitempty"`
	Font       *string       `json:"font,omitempty"`
	FontSize   *float64      `json:"fontSize,omitempty"`
	FontWeight *FontWeight   `json:"fontWeight,omitempty"`
	Frame      *TitleFrame   `json:"frame,omitempty"`
	Limit      *float64      `json:"limit,omitempty"`
	Offset     *float64      `json:"offset,omitempty"`
	Orient     *TitleOrient  `json:"orient,omitempty"`
	Style      *StringList   `json:"style,omitempty"`
	ZIndex     *float64      `json:"zindex,omitempty"`
}

// Title is a plain string or a TitleParams object. Decode order: string,
// then object.
type Title struct {
	Text   *string
	Params *TitleParams
}

func (t Title) MarshalJSON() ([]byte, error) {
	if t.Text != nil {
		return json.Marshal(*t.Text)
	}
	return json.Marshal(t.Params)
}

func (d *decoder) title(v any, path string) *Title {
	if s, ok := strVal(v); ok {
		return &Title{Text: &s}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected title string or object")
		return nil
	}
	tp := &TitleParams{}
	if s := d.str(m["text"], childPath(path, "text")); s != nil {
		tp.Text = *s
	}
	if x, ok := m["anchor"]; ok {
		tp.Anchor = enumOf(d, x, childPath(path, "anchor"), "title anchor", titleAnchors)
	}
	if x, ok := m["angle"]; ok {
		tp.Angle = d.num(x, childPath(path, "angle"))
	}
	if x, ok := m["baseline"]; ok {
		tp.Baseline = enumOf(d, x, childPath(path, "baseline"), "baseline", textBaselines)
	}
	if x, ok := m["color"]; ok {
		tp.Color = d.str(x, childPath(path, "color"))
	}
	if x, ok := m["font"]; ok {
		tp.Font = d.str(x, childPath(path, "font"))
	}
	if x, ok := m["fontSize"]; ok {
		tp.FontSize = d.num(x, childPath(path, "fontSize"))
	}
	if x, ok := m["fontWeight"]; ok {
		tp.FontWeight = d.fontWeight(x, childPath(path, "fontWeight"))
	}
	if x, ok := m["frame"]; ok {
		tp.Frame = enumOf(d, x, childPath(path, "frame"), "title frame", titleFrames)
	}
	if x, ok := m["limit"]; ok {
		tp.Limit = d.num(x, childPath(path, "limit"))
	}
	if x, ok := m["offset"]; ok {
		tp.Offset = d.num(x, childPath(path, "offset"))
	}
	if x, ok := m["orient"]; ok {
		tp.Orient = enumOf(d, x, childPath(path, "orient"), "title orient", titleOrients)
	}
	if x, ok := m["style"]; ok {
		tp.Style = d.stringList(x, childPath(path, "style"))
	}
	if x, ok := m["zindex"]; ok {
		tp.ZIndex = d.num(x, childPath(path, "zindex"))
	}
	return &Title{Params: tp}
}

// ResolveMode decides whether a channel shares or splits scales, axes, or
// legends across composed views.
type ResolveMode string

const (
	ResolveIndependent ResolveMode = "independent"
	ResolveShared      ResolveMode = "shared"
)

var resolveModes = enumSet(ResolveIndependent, ResolveShared)

// Resolve maps channels to resolution modes per concern.
type Resolve struct {
	Axis   map[string]ResolveMode `json:"axis,omitempty"`
	Legend map[string]ResolveMode `json:"legend,omitempty"`
	Scale  map[string]ResolveMode `json:"scale,omitempty"`
}

func (d *decoder) resolveMap(v any, path string) map[string]ResolveMode {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	out := make(map[string]ResolveMode, len(m))
	for k, e := range m {
		if rm := enumOf(d, e, childPath(path, k), "resolve mode", resolveModes); rm != nil {
			out[k] = *rm
		}
	}
	return out
}

func (d *decoder) resolve(v any, path string) *Resolve {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	r := &Resolve{}
	if x, ok := m["axis"]; ok {
		r.Axis = d.resolveMap(x, childPath(path, "axis"))
	}
	if x, ok := m["legend"]; ok {
		r.Legend = d.resolveMap(x, childPath(path, "legend"))
	}
	if x, ok := m["scale"]; ok {
		r.Scale = d.resolveMap(x, childPath(path, "scale"))
	}
	return r
}

// Bounds selects how composed subview extents are computed.
type Bounds string

const (
	BoundsFull  Bounds = "full"
	BoundsFlush Bounds = "flush"
)

var boundsKinds = enumSet(BoundsFull, BoundsFlush)

// LayoutAlign places composed subviews on a shared or independent grid.
type LayoutAlign string

const (
	AlignAll  LayoutAlign = "all"
	AlignEach LayoutAlign = "each"
	AlignNone LayoutAlign = "none"
)

var layoutAligns = enumSet(AlignAll, AlignEach, AlignNone)

// RowColAlign carries independent row/column alignments.
type RowColAlign struct {
	Row    *LayoutAlign `json:"row,omitempty"`
	Column *LayoutAlign `json:"column,omitempty"`
}

// Alignment of composed subviews: uniform keyword or per-direction object.
// Decode order: keyword, then object.
type Alignment struct {
	Keyword *LayoutAlign
	RowCol  *RowColAlign
}

func (a Alignment) MarshalJSON() ([]byte, error) {
	if a.Keyword != nil {
		return json.Marshal(*a.Keyword)
	}
	return json.Marshal(a.RowCol)
}

func (d *decoder) alignment(v any, path string) *Alignment {
	if s, ok := strVal(v); ok {
		t, ok := enumMember(s, layoutAligns)
		if !ok {
			d.fail(path, CodeInvalidEnum, "align: '"+s+"'")
			return nil
		}
		return &Alignment{Keyword: &t}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected align keyword or {row, column}")
		return nil
	}
	rc := &RowColAlign{}
	if x, ok := m["row"]; ok {
		rc.Row = enumOf(d, x, childPath(path, "row"), "align", layoutAligns)
	}
	if x, ok := m["column"]; ok {
		rc.Column = enumOf(d, x, childPath(path, "column"), "align", layoutAligns)
	}
	return &Alignment{RowCol: rc}
}

// RowColNumber carries independent row/column values.
type RowColNumber struct {
	Row    *float64 `json:"row,omitempty"`
	Column *float64 `json:"column,omitempty"`
}

// Spacing between composed subviews: uniform number or per-direction object.
// Decode order: number, then object.
type Spacing struct {
	Number *float64
	RowCol *RowColNumber
}

func (s Spacing) MarshalJSON() ([]byte, error) {
	if s.Number != nil {
		return json.Marshal(*s.Number)
	}
	return json.Marshal(s.RowCol)
}

func (d *decoder) spacing(v any, path string) *Spacing {
	if f, ok := numVal(v); ok {
		return &Spacing{Number: &f}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected number or {row, column}")
		return nil
	}
	rc := &RowColNumber{}
	if x, ok := m["row"]; ok {
		rc.Row = d.num(x, childPath(path, "row"))
	}
	if x, ok := m["column"]; ok {
		rc.Column = d.num(x, childPath(path, "column"))
	}
	return &Spacing{RowCol: rc}
}

// RowColBool carries independent row/column flags.
type RowColBool struct {
	Row    *bool `json:"row,omitempty"`
	Column *bool `json:"column,omitempty"`
}

// Centering of composed subviews: uniform flag or per-direction object.
// Decode order: boolean, then object.
type Centering struct {
	Bool   *bool
	RowCol *RowColBool
}

func (c Centering) MarshalJSON() ([]byte, error) {
	if c.Bool != nil {
		return json.Marshal(*c.Bool)
	}
	return json.Marshal(c.RowCol)
}

func (d *decoder) centering(v any, path string) *Centering {
	if b, ok := boolVal(v); ok {
		return &Centering{Bool: &b}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected boolean or {row, column}")
		return nil
	}
	rc := &RowColBool{}
	if x, ok := m["row"]; ok {
		rc.Row = d.boolean(x, childPath(path, "row"))
	}
	if x, ok := m["column"]; ok {
		rc.Column = d.boolean(x, childPath(path, "column"))
	}
	return &Centering{RowCol: rc}
}

// FacetMapping splits a view into a trellis by row and/or column fields.
type FacetMapping struct {
	Row    *FacetFieldDef `json:"row,omitempty"`
	Column *FacetFieldDef `json:"column,omitempty"`
}

func (d *decoder) facetMapping(v any, path string) *FacetMapping {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	fm := &FacetMapping{}
	if x, ok := m["row"]; ok {
		fm.Row = d.facetFieldDef(x, childPath(path, "row"))
	}
	if x, ok := m["column"]; ok {
		fm.Column = d.facetFieldDef(x, childPath(path, "column"))
	}
	return fm
}

// RepeatMapping lists the field names a repeated view iterates over: a flat
// array of names, or row/column field lists. Decode order: array, then
// object.
type RepeatMapping struct {
	Fields []string
	Row    []string
	Column []string
}

// RepeatOver builds the flat-array form.
func RepeatOver(fields ...string) *RepeatMapping { return &RepeatMapping{Fields: fields} }

func (rm RepeatMapping) MarshalJSON() ([]byte, error) {
	if rm.Fields != nil {
		return json.Marshal(rm.Fields)
	}
	out := map[string]any{}
	if rm.Row != nil {
		out["row"] = rm.Row
	}
	if rm.Column != nil {
		out["column"] = rm.Column
	}
	return json.Marshal(out)
}

func (d *decoder) repeatMapping(v any, path string) *RepeatMapping {
	if _, ok := arrVal(v); ok {
		return &RepeatMapping{Fields: d.strSlice(v, path)}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected field name array or {row, column}")
		return nil
	}
	rm := &RepeatMapping{}
	if x, ok := m["row"]; ok {
		rm.Row = d.strSlice(x, childPath(path, "row"))
	}
	if x, ok := m["column"]; ok {
		rm.Column = d.strSlice(x, childPath(path, "column"))
	}
	return rm
}

// UnitSpec is a single-view specification: a mark with encodings.
type UnitSpec struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Title       *Title                  `json:"title,omitempty"`
	Data        *Data                   `json:"data,omitempty"`
	Transform   []Transform             `json:"transform,omitempty"`
	Mark        AnyMark                 `json:"mark"`
	Encoding    *Encoding               `json:"encoding,omitempty"`
	Projection  *Projection             `json:"projection,omitempty"`
	Selection   map[string]SelectionDef `json:"selection,omitempty"`
	Width       *float64                `json:"width,omitempty"`
	Height      *float64                `json:"height,omitempty"`
}

// LayerSpec overlays subviews on a shared coordinate frame. Subviews may be
// unit or layer specs only.
type LayerSpec struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Title       *Title      `json:"title,omitempty"`
	Data        *Data       `json:"data,omitempty"`
	Transform   []Transform `json:"transform,omitempty"`
	Layer       []Spec      `json:"layer"`
	Encoding    *Encoding   `json:"encoding,omitempty"`
	Projection  *Projection `json:"projection,omitempty"`
	Resolve     *Resolve    `json:"resolve,omitempty"`
	Width       *float64    `json:"width,omitempty"`
	Height      *float64    `json:"height,omitempty"`
}

// FacetSpec trellises a subview by data fields.
type FacetSpec struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Title       *Title        `json:"title,omitempty"`
	Data        *Data         `json:"data,omitempty"`
	Transform   []Transform   `json:"transform,omitempty"`
	Facet       *FacetMapping `json:"facet"`
	Spec        *Spec         `json:"spec"`
	Align       *Alignment    `json:"align,omitempty"`
	Bounds      *Bounds       `json:"bounds,omitempty"`
	Center      *Centering    `json:"center,omitempty"`
	Spacing     *Spacing      `json:"spacing,omitempty"`
	Resolve     *Resolve      `json:"resolve,omitempty"`
}

// RepeatSpec instantiates a subview once per listed field.
type RepeatSpec struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Title       *Title         `json:"title,omitempty"`
	Data        *Data          `json:"data,omitempty"`
	Transform   []Transform    `json:"transform,omitempty"`
	Repeat      *RepeatMapping `json:"repeat"`
	Spec        *Spec          `json:"spec"`
	Align       *Alignment     `json:"align,omitempty"`
	Bounds      *Bounds        `json:"bounds,omitempty"`
	Center      *Centering     `json:"center,omitempty"`
	Columns     *float64       `json:"columns,omitempty"`
	Spacing     *Spacing       `json:"spacing,omitempty"`
	Resolve     *Resolve       `json:"resolve,omitempty"`
}

// ConcatSpec lays subviews out in sequence. Direction is carried by the
// owning Spec field (Concat, VConcat, or HConcat); Columns wraps the general
// form into a grid.
type ConcatSpec struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Title       *Title      `json:"title,omitempty"`
	Data        *Data       `json:"data,omitempty"`
	Transform   []Transform `json:"transform,omitempty"`
	Specs       []Spec      `json:"-"`
	Align       *Alignment  `json:"align,omitempty"`
	Bounds      *Bounds     `json:"bounds,omitempty"`
	Center      *Centering  `json:"center,omitempty"`
	Columns     *float64    `json:"columns,omitempty"`
	Spacing     *Spacing    `json:"spacing,omitempty"`
	Resolve     *Resolve    `json:"resolve,omitempty"`
}

// Spec is a view specification of exactly one kind: unit, layer, facet,
// repeat, or concatenation (wrappable grid, vertical, or horizontal). Kind is
// detected by the structural key, checked in order: "layer", "facet",
// "repeat", "concat", "vconcat", "hconcat"; anything else must be a unit spec
// with a "mark".
type Spec struct {
	Unit    *UnitSpec
	Layer   *LayerSpec
	Facet   *FacetSpec
	Repeat  *RepeatSpec
	Concat  *ConcatSpec
	VConcat *ConcatSpec
	HConcat *ConcatSpec
}

func (s Spec) MarshalJSON() ([]byte, error) {
	switch {
	case s.Unit != nil:
		return json.Marshal(s.Unit)
	case s.Layer != nil:
		return json.Marshal(s.Layer)
	case s.Facet != nil:
		return json.Marshal(s.Facet)
	case s.Repeat != nil:
		return json.Marshal(s.Repeat)
	case s.Concat != nil:
		return marshalConcat("concat", s.Concat)
	case s.VConcat != nil:
		return marshalConcat("vconcat", s.VConcat)
	case s.HConcat != nil:
		return marshalConcat("hconcat", s.HConcat)
	}
	return []byte("{}"), nil
}

func marshalConcat(key string, c *ConcatSpec) ([]byte, error) {
	return marshalMerged(c, func(m map[string]any) {
		m[key] = c.Specs
	})
}

func (d *decoder) spec(v any, path string) *Spec {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	switch {
	case hasKey(m, "layer"):
		return &Spec{Layer: d.layerSpec(m, path)}
	case hasKey(m, "facet"):
		return &Spec{Facet: d.facetSpec(m, path)}
	case hasKey(m, "repeat"):
		return &Spec{Repeat: d.repeatSpec(m, path)}
	case hasKey(m, "concat"):
		return &Spec{Concat: d.concatSpec(m, path, "concat")}
	case hasKey(m, "vconcat"):
		return &Spec{VConcat: d.concatSpec(m, path, "vconcat")}
	case hasKey(m, "hconcat"):
		return &Spec{HConcat: d.concatSpec(m, path, "hconcat")}
	case hasKey(m, "mark"):
		return &Spec{Unit: d.unitSpec(m, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected one of 'mark', 'layer', 'facet', 'repeat', 'concat', 'vconcat', 'hconcat'")
	return nil
}

func (d *decoder) specCommon(m map[string]any, path string) (name, desc *string, title *Title, data *Data, transform []Transform) {
	if x, ok := m["name"]; ok {
		name = d.str(x, childPath(path, "name"))
	}
	if x, ok := m["description"]; ok {
		desc = d.str(x, childPath(path, "description"))
	}
	if x, ok := m["title"]; ok {
		title = d.title(x, childPath(path, "title"))
	}
	if x, ok := m["data"]; ok {
		data = d.data(x, childPath(path, "data"))
	}
	if x, ok := m["transform"]; ok {
		transform = d.transforms(x, childPath(path, "transform"))
	}
	return
}

func (d *decoder) unitSpec(m map[string]any, path string) *UnitSpec {
	u := &UnitSpec{}
	u.Name, u.Description, u.Title, u.Data, u.Transform = d.specCommon(m, path)
	if mk := d.anyMark(m["mark"], childPath(path, "mark")); mk != nil {
		u.Mark = *mk
	}
	if x, ok := m["encoding"]; ok {
		u.Encoding = d.encoding(x, childPath(path, "encoding"))
	}
	if x, ok := m["projection"]; ok {
		u.Projection = d.projection(x, childPath(path, "projection"))
	}
	if x, ok := m["selection"]; ok {
		p := childPath(path, "selection")
		sm := d.obj(x, p)
		if sm != nil {
			u.Selection = make(map[string]SelectionDef, len(sm))
			for k, e := range sm {
				if sd := d.selectionDef(e, childPath(p, k)); sd != nil {
					u.Selection[k] = *sd
				}
			}
		}
	}
	if x, ok := m["width"]; ok {
		u.Width = d.num(x, childPath(path, "width"))
	}
	if x, ok := m["height"]; ok {
		u.Height = d.num(x, childPath(path, "height"))
	}
	return u
}

func (d *decoder) layerSpec(m map[string]any, path string) *LayerSpec {
	l := &LayerSpec{}
	l.Name, l.Description, l.Title, l.Data, l.Transform = d.specCommon(m, path)
	p := childPath(path, "layer")
	a := d.arr(m["layer"], p)
	for i, e := range a {
		sub := d.spec(e, indexPath(p, i))
		if sub == nil {
			continue
		}
		if sub.Unit == nil && sub.Layer == nil {
			d.fail(indexPath(p, i), CodeConflict, "layer subviews must be unit or layer specs")
			continue
		}
		l.Layer = append(l.Layer, *sub)
	}
	if x, ok := m["encoding"]; ok {
		l.Encoding = d.encoding(x, childPath(path, "encoding"))
	}
	if x, ok := m["projection"]; ok {
		l.Projection = d.projection(x, childPath(path, "projection"))
	}
	if x, ok := m["resolve"]; ok {
		l.Resolve = d.resolve(x, childPath(path, "resolve"))
	}
	if x, ok := m["width"]; ok {
		l.Width = d.num(x, childPath(path, "width"))
	}
	if x, ok := m["height"]; ok {
		l.Height = d.num(x, childPath(path, "height"))
	}
	return l
}

func (d *decoder) compositeCommon(m map[string]any, path string) (bounds *Bounds, center *Centering, spacing *Spacing, resolve *Resolve) {
	if x, ok := m["bounds"]; ok {
		bounds = enumOf(d, x, childPath(path, "bounds"), "bounds", boundsKinds)
	}
	if x, ok := m["center"]; ok {
		center = d.centering(x, childPath(path, "center"))
	}
	if x, ok := m["spacing"]; ok {
		spacing = d.spacing(x, childPath(path, "spacing"))
	}
	if x, ok := m["resolve"]; ok {
		resolve = d.resolve(x, childPath(path, "resolve"))
	}
	return
}

func (d *decoder) facetSpec(m map[string]any, path string) *FacetSpec {
	f := &FacetSpec{}
	f.Name, f.Description, f.Title, f.Data, f.Transform = d.specCommon(m, path)
	f.Facet = d.facetMapping(m["facet"], childPath(path, "facet"))
	if x, ok := m["spec"]; ok {
		f.Spec = d.spec(x, childPath(path, "spec"))
	} else {
		d.fail(childPath(path, "spec"), CodeRequired, "facet needs a 'spec' subview")
	}
	if x, ok := m["align"]; ok {
		f.Align = d.alignment(x, childPath(path, "align"))
	}
	f.Bounds, f.Center, f.Spacing, f.Resolve = d.compositeCommon(m, path)
	return f
}

func (d *decoder) repeatSpec(m map[string]any, path string) *RepeatSpec {
	r := &RepeatSpec{}
	r.Name, r.Description, r.Title, r.Data, r.Transform = d.specCommon(m, path)
	r.Repeat = d.repeatMapping(m["repeat"], childPath(path, "repeat"))
	if x, ok := m["spec"]; ok {
		r.Spec = d.spec(x, childPath(path, "spec"))
	} else {
		d.fail(childPath(path, "spec"), CodeRequired, "repeat needs a 'spec' subview")
	}
	if x, ok := m["align"]; ok {
		r.Align = d.alignment(x, childPath(path, "align"))
	}
	if x, ok := m["columns"]; ok {
		r.Columns = d.num(x, childPath(path, "columns"))
	}
	r.Bounds, r.Center, r.Spacing, r.Resolve = d.compositeCommon(m, path)
	return r
}

func (d *decoder) concatSpec(m map[string]any, path string, key string) *ConcatSpec {
	c := &ConcatSpec{}
	c.Name, c.Description, c.Title, c.Data, c.Transform = d.specCommon(m, path)
	p := childPath(path, key)
	a := d.arr(m[key], p)
	for i, e := range a {
		if sub := d.spec(e, indexPath(p, i)); sub != nil {
			c.Specs = append(c.Specs, *sub)
		}
	}
	if x, ok := m["align"]; ok {
		c.Align = d.alignment(x, childPath(path, "align"))
	}
	if x, ok := m["columns"]; ok {
		c.Columns = d.num(x, childPath(path, "columns"))
	}
	c.Bounds, c.Center, c.Spacing, c.Resolve = d.compositeCommon(m, path)
	return c
}

// AutosizeType selects the sizing strategy of the rendered chart.
type AutosizeType string

const (
	AutosizePad  AutosizeType = "pad"
	AutosizeFit  AutosizeType = "fit"
	AutosizeNone AutosizeType = "none"
)

var autosizeTypes = enumSet(AutosizePad, AutosizeFit, AutosizeNone)

// AutoSizeParams is the object form of autosize.
type AutoSizeParams struct {
	Type     *AutosizeType `json:"type,omitempty"`
	Contains *string       `json:"contains,omitempty"`
	Resize   *bool         `json:"resize,omitempty"`
}

// Autosize is an AutosizeType keyword or an AutoSizeParams object. Decode
// order: keyword, then object.
type Autosize struct {
	Type   *AutosizeType
	Params *AutoSizeParams
}

func (a Autosize) MarshalJSON() ([]byte, error) {
	if a.Type != nil {
		return json.Marshal(*a.Type)
	}
	return json.Marshal(a.Params)
}

func (d *decoder) autosize(v any, path string) *Autosize {
	if s, ok := strVal(v); ok {
		t := AutosizeType(s)
		if !autosizeTypes[t] {
			d.fail(path, CodeInvalidEnum, "autosize: '"+s+"'")
			return nil
		}
		return &Autosize{Type: &t}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected autosize keyword or object")
		return nil
	}
	p := &AutoSizeParams{}
	if x, ok := m["type"]; ok {
		p.Type = enumOf(d, x, childPath(path, "type"), "autosize", autosizeTypes)
	}
	if x, ok := m["contains"]; ok {
		p.Contains = d.str(x, childPath(path, "contains"))
	}
	if x, ok := m["resize"]; ok {
		p.Resize = d.boolean(x, childPath(path, "resize"))
	}
	return &Autosize{Params: p}
}

// PaddingObject gives per-side padding in pixels.
type PaddingObject struct {
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
}

// Padding is a uniform number or a per-side object. Decode order: number,
// then object.
type Padding struct {
	Number *float64
	Object *PaddingObject
}

func (p Padding) MarshalJSON() ([]byte, error) {
	if p.Number != nil {
		return json.Marshal(*p.Number)
	}
	return json.Marshal(p.Object)
}

func (d *decoder) padding(v any, path string) *Padding {
	if f, ok := numVal(v); ok {
		return &Padding{Number: &f}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected number or {top, right, bottom, left}")
		return nil
	}
	po := &PaddingObject{}
	if x, ok := m["top"]; ok {
		po.Top = d.num(x, childPath(path, "top"))
	}
	if x, ok := m["right"]; ok {
		po.Right = d.num(x, childPath(path, "right"))
	}
	if x, ok := m["bottom"]; ok {
		po.Bottom = d.num(x, childPath(path, "bottom"))
	}
	if x, ok := m["left"]; ok {
		po.Left = d.num(x, childPath(path, "left"))
	}
	return &Padding{Object: po}
}

// TopLevelSpec is a complete document: a view of any kind plus the
// document-level properties that only appear at the root.
type TopLevelSpec struct {
	Spec

	Schema     *string                  `json:"$schema,omitempty"`
	Autosize   *Autosize                `json:"autosize,omitempty"`
	Background *string                  `json:"background,omitempty"`
	Config     *Config                  `json:"config,omitempty"`
	Datasets   map[string]InlineDataset `json:"datasets,omitempty"`
	Padding    *Padding                 `json:"padding,omitempty"`
	Usermeta   any                      `json:"usermeta,omitempty"`
}

func (t TopLevelSpec) MarshalJSON() ([]byte, error) {
	return marshalMerged(t.Spec, func(m map[string]any) {
		if t.Schema != nil {
			m["$schema"] = *t.Schema
		}
		if t.Autosize != nil {
			m["autosize"] = t.Autosize
		}
		if t.Background != nil {
			m["background"] = *t.Background
		}
		if t.Config != nil {
			m["config"] = t.Config
		}
		if t.Datasets != nil {
			m["datasets"] = t.Datasets
		}
		if t.Padding != nil {
			m["padding"] = t.Padding
		}
		if t.Usermeta != nil {
			m["usermeta"] = t.Usermeta
		}
	})
}

func (d *decoder) topLevelSpec(v any, path string) *TopLevelSpec {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	t := &TopLevelSpec{}
	if sp := d.spec(v, path); sp != nil {
		t.Spec = *sp
	}
	if x, ok := m["$schema"]; ok {
		t.Schema = d.str(x, childPath(path, "$schema"))
	}
	if x, ok := m["autosize"]; ok {
		t.Autosize = d.autosize(x, childPath(path, "autosize"))
	}
	if x, ok := m["background"]; ok {
		t.Background = d.str(x, childPath(path, "background"))
	}
	if x, ok := m["config"]; ok {
		t.Config = d.config(x, childPath(path, "config"))
	}
	if x, ok := m["datasets"]; ok {
		t.Datasets = d.datasets(x, childPath(path, "datasets"))
	}
	if x, ok := m["padding"]; ok {
		t.Padding = d.padding(x, childPath(path, "padding"))
	}
	if x, ok := m["usermeta"]; ok {
		t.Usermeta = x
	}
	return t
}
