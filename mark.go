package vegalite

import (
	json "github.com/goccy/go-json"
)

// Mark is the geometric primitive drawn for each record.
type Mark string

const (
	MarkArea      Mark = "area"
	MarkBar       Mark = "bar"
	MarkLine      Mark = "line"
	MarkTrail     Mark = "trail"
	MarkPoint     Mark = "point"
	MarkText      Mark = "text"
	MarkTick      Mark = "tick"
	MarkRect      Mark = "rect"
	MarkRule      Mark = "rule"
	MarkCircle    Mark = "circle"
	MarkSquare    Mark = "square"
	MarkGeoshape  Mark = "geoshape"
	MarkBoxplot   Mark = "boxplot"
	MarkErrorbar  Mark = "errorbar"
	MarkErrorband Mark = "errorband"
)

var marks = enumSet(
	MarkArea, MarkBar, MarkLine, MarkTrail, MarkPoint, MarkText, MarkTick,
	MarkRect, MarkRule, MarkCircle, MarkSquare, MarkGeoshape, MarkBoxplot,
	MarkErrorbar, MarkErrorband,
)

// Align is horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

var aligns = enumSet(AlignLeft, AlignCenter, AlignRight)

// TextBaseline is vertical text alignment.
type TextBaseline string

const (
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineTop        TextBaseline = "top"
	BaselineMiddle     TextBaseline = "middle"
	BaselineBottom     TextBaseline = "bottom"
)

var textBaselines = enumSet(BaselineAlphabetic, BaselineTop, BaselineMiddle, BaselineBottom)

// Orientation picks the major direction of a mark.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

var orientations = enumSet(Horizontal, Vertical)

// Interpolate is the line/area interpolation method.
type Interpolate string

const (
	InterpolateBasis          Interpolate = "basis"
	InterpolateBasisOpen      Interpolate = "basis-open"
	InterpolateBasisClosed    Interpolate = "basis-closed"
	InterpolateBundle         Interpolate = "bundle"
	InterpolateCardinal       Interpolate = "cardinal"
	InterpolateCardinalOpen   Interpolate = "cardinal-open"
	InterpolateCardinalClosed Interpolate = "cardinal-closed"
	InterpolateLinear         Interpolate = "linear"
	InterpolateLinearClosed   Interpolate = "linear-closed"
	InterpolateMonotone       Interpolate = "monotone"
	InterpolateNatural        Interpolate = "natural"
	InterpolateStep           Interpolate = "step"
	InterpolateStepAfter      Interpolate = "step-after"
	InterpolateStepBefore     Interpolate = "step-before"
)

var interpolates = enumSet(
	InterpolateBasis, InterpolateBasisOpen, InterpolateBasisClosed,
	InterpolateBundle, InterpolateCardinal, InterpolateCardinalOpen,
	InterpolateCardinalClosed, InterpolateLinear, InterpolateLinearClosed,
	InterpolateMonotone, InterpolateNatural, InterpolateStep,
	InterpolateStepAfter, InterpolateStepBefore,
)

// StrokeCap is the stroke end style.
type StrokeCap string

const (
	CapButt   StrokeCap = "butt"
	CapRound  StrokeCap = "round"
	CapSquare StrokeCap = "square"
)

var strokeCaps = enumSet(CapButt, CapRound, CapSquare)

// StrokeJoin is the stroke corner style.
type StrokeJoin string

const (
	JoinMiter StrokeJoin = "miter"
	JoinRound StrokeJoin = "round"
	JoinBevel StrokeJoin = "bevel"
)

var strokeJoins = enumSet(JoinMiter, JoinRound, JoinBevel)

// FontWeightName is the keyword form of a font weight.
type FontWeightName string

const (
	WeightNormal  FontWeightName = "normal"
	WeightBold    FontWeightName = "bold"
	WeightLighter FontWeightName = "lighter"
	WeightBolder  FontWeightName = "bolder"
)

var fontWeightNames = enumSet(WeightNormal, WeightBold, WeightLighter, WeightBolder)

// FontWeight is a numeric weight (100-900) or a keyword. Decode order:
// number, then keyword enum.
type FontWeight struct {
	Number *float64
	Name   *FontWeightName
}

func (w FontWeight) MarshalJSON() ([]byte, error) {
	if w.Number != nil {
		return json.Marshal(*w.Number)
	}
	return json.Marshal(w.Name)
}

func (d *decoder) fontWeight(v any, path string) *FontWeight {
	if f, ok := numVal(v); ok {
		return &FontWeight{Number: &f}
	}
	if s, ok := strVal(v); ok {
		n, ok := enumMember(s, fontWeightNames)
		if !ok {
			d.fail(path, CodeInvalidEnum, "font weight: '"+s+"'")
			return nil
		}
		return &FontWeight{Name: &n}
	}
	d.fail(path, CodeUnionNoMatch, "expected font weight number or keyword")
	return nil
}

// TooltipContent selects what the default tooltip shows.
type TooltipContent struct {
	Content string `json:"content"`
}

// MarkTooltip configures a mark's tooltip: explicit null disables it, a
// constant value sets the text, a content object selects data- or
// encoding-driven tooltips. Decode order: null, content object, value.
type MarkTooltip struct {
	Null    bool
	Content *TooltipContent
	Value   *Value
}

func (t MarkTooltip) MarshalJSON() ([]byte, error) {
	switch {
	case t.Null:
		return []byte("null"), nil
	case t.Content != nil:
		return json.Marshal(t.Content)
	}
	return json.Marshal(t.Value)
}

func (d *decoder) markTooltip(v any, path string) *MarkTooltip {
	if v == nil {
		return &MarkTooltip{Null: true}
	}
	if m, ok := objVal(v); ok {
		if !hasKey(m, "content") {
			d.fail(path, CodeUnionNoMatch, "expected {content}, value, or null")
			return nil
		}
		s := d.str(m["content"], childPath(path, "content"))
		if s == nil {
			return nil
		}
		return &MarkTooltip{Content: &TooltipContent{Content: *s}}
	}
	if val := d.value(v, path); val != nil {
		return &MarkTooltip{Value: val}
	}
	return nil
}

// PointOverlay is the point-overlay union for line/area marks: a boolean
// switch, the literal "transparent", or an overlay mark definition.
// Decode order: literal "transparent", boolean, object.
type PointOverlay struct {
	Transparent bool
	Flag        *bool
	Mark        *MarkDef
}

func (p PointOverlay) MarshalJSON() ([]byte, error) {
	switch {
	case p.Transparent:
		return json.Marshal("transparent")
	case p.Flag != nil:
		return json.Marshal(*p.Flag)
	}
	return json.Marshal(p.Mark)
}

func (d *decoder) pointOverlay(v any, path string) *PointOverlay {
	if s, ok := strVal(v); ok {
		if s == "transparent" {
			return &PointOverlay{Transparent: true}
		}
		d.fail(path, CodeInvalidEnum, "point overlay: '"+s+"'")
		return nil
	}
	if b, ok := boolVal(v); ok {
		return &PointOverlay{Flag: &b}
	}
	if _, ok := objVal(v); ok {
		return &PointOverlay{Mark: d.markDef(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected 'transparent', boolean, or overlay mark")
	return nil
}

// LineOverlay is the line-overlay union for area marks: a boolean switch or
// an overlay mark definition. Decode order: boolean, then object.
type LineOverlay struct {
	Flag *bool
	Mark *MarkDef
}

func (l LineOverlay) MarshalJSON() ([]byte, error) {
	if l.Flag != nil {
		return json.Marshal(*l.Flag)
	}
	return json.Marshal(l.Mark)
}

func (d *decoder) lineOverlay(v any, path string) *LineOverlay {
	if b, ok := boolVal(v); ok {
		return &LineOverlay{Flag: &b}
	}
	if _, ok := objVal(v); ok {
		return &LineOverlay{Mark: d.markDef(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected boolean or overlay mark")
	return nil
}

// MarkDef is the full mark definition object.
type MarkDef struct {
	Type             *Mark         `json:"type,omitempty"`
	Align            *Align        `json:"align,omitempty"`
	Angle            *float64      `json:"angle,omitempty"`
	Baseline         *TextBaseline `json:"baseline,omitempty"`
	BinSpacing       *float64      `json:"binSpacing,omitempty"`
	Clip             *bool         `json:"clip,omitempty"`
	Color            *string       `json:"color,omitempty"`
	CornerRadius     *float64      `json:"cornerRadius,omitempty"`
	DX               *float64      `json:"dx,omitempty"`
	DY               *float64      `json:"dy,omitempty"`
	Extent           *float64      `json:"extent,omitempty"`
	Fill             *string       `json:"fill,omitempty"`
	Filled           *bool         `json:"filled,omitempty"`
	FillOpacity      *float64      `json:"fillOpacity,omitempty"`
	Font             *string       `json:"font,omitempty"`
	FontSize         *float64      `json:"fontSize,omitempty"`
	FontStyle        *string       `json:"fontStyle,omitempty"`
	FontWeight       *FontWeight   `json:"fontWeight,omitempty"`
	Href             *string       `json:"href,omitempty"`
	Interpolate      *Interpolate  `json:"interpolate,omitempty"`
	Limit            *float64      `json:"limit,omitempty"`
	Line             *LineOverlay  `json:"line,omitempty"`
	Opacity          *float64      `json:"opacity,omitempty"`
	Orient           *Orientation  `json:"orient,omitempty"`
	Point            *PointOverlay `json:"point,omitempty"`
	Radius           *float64      `json:"radius,omitempty"`
	Shape            *string       `json:"shape,omitempty"`
	Size             *float64      `json:"size,omitempty"`
	Stroke           *string       `json:"stroke,omitempty"`
	StrokeCap        *StrokeCap    `json:"strokeCap,omitempty"`
	StrokeDash       []float64     `json:"strokeDash,omitempty"`
	StrokeDashOffset *float64      `json:"strokeDashOffset,omitempty"`
	StrokeJoin       *StrokeJoin   `json:"strokeJoin,omitempty"`
	StrokeMiterLimit *float64      `json:"strokeMiterLimit,omitempty"`
	StrokeOpacity    *float64      `json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64      `json:"strokeWidth,omitempty"`
	Style            *StringList   `json:"style,omitempty"`
	Tension          *float64      `json:"tension,omitempty"`
	Text             *string       `json:"text,omitempty"`
	Theta            *float64      `json:"theta,omitempty"`
	Thickness        *float64      `json:"thickness,omitempty"`
	Tooltip          *MarkTooltip  `json:"tooltip,omitempty"`
	X2Offset         *float64      `json:"x2Offset,omitempty"`
	XOffset          *float64      `json:"xOffset,omitempty"`
	Y2Offset         *float64      `json:"y2Offset,omitempty"`
	YOffset          *float64      `json:"yOffset,omitempty"`
}

func (d *decoder) markDef(v any, path string) *MarkDef {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	md := &MarkDef{}
	if x, ok := m["type"]; ok {
		md.Type = enumOf(d, x, childPath(path, "type"), "mark", marks)
	}
	if x, ok := m["align"]; ok {
		md.Align = enumOf(d, x, childPath(path, "align"), "align", aligns)
	}
	if x, ok := m["angle"]; ok {
		md.Angle = d.num(x, childPath(path, "angle"))
	}
	if x, ok := m["baseline"]; ok {
		md.Baseline = enumOf(d, x, childPath(path, "baseline"), "baseline", textBaselines)
	}
	if x, ok := m["binSpacing"]; ok {
		md.BinSpacing = d.num(x, childPath(path, "binSpacing"))
	}
	if x, ok := m["clip"]; ok {
		md.Clip = d.boolean(x, childPath(path, "clip"))
	}
	if x, ok := m["color"]; ok {
		md.Color = d.str(x, childPath(path, "color"))
	}
	if x, ok := m["cornerRadius"]; ok {
		md.CornerRadius = d.num(x, childPath(path, "cornerRadius"))
	}
	if x, ok := m["dx"]; ok {
		md.DX = d.num(x, childPath(path, "dx"))
	}
	if x, ok := m["dy"]; ok {
		md.DY = d.num(x, childPath(path, "dy"))
	}
	if x, ok := m["extent"]; ok {
		md.Extent = d.num(x, childPath(path, "extent"))
	}
	if x, ok := m["fill"]; ok {
		md.Fill = d.str(x, childPath(path, "fill"))
	}
	if x, ok := m["filled"]; ok {
		md.Filled = d.boolean(x, childPath(path, "filled"))
	}
	if x, ok := m["fillOpacity"]; ok {
		md.FillOpacity = d.num(x, childPath(path, "fillOpacity"))
	}
	if x, ok := m["font"]; ok {
		md.Font = d.str(x, childPath(path, "font"))
	}
	if x, ok := m["fontSize"]; ok {
		md.FontSize = d.num(x, childPath(path, "fontSize"))
	}
	if x, ok := m["fontStyle"]; ok {
		md.FontStyle = d.str(x, childPath(path, "fontStyle"))
	}
	if x, ok := m["fontWeight"]; ok {
		md.FontWeight = d.fontWeight(x, childPath(path, "fontWeight"))
	}
	if x, ok := m["href"]; ok {
		md.Href = d.str(x, childPath(path, "href"))
	}
	if x, ok := m["interpolate"]; ok {
		md.Interpolate = enumOf(d, x, childPath(path, "interpolate"), "interpolate", interpolates)
	}
	if x, ok := m["limit"]; ok {
		md.Limit = d.num(x, childPath(path, "limit"))
	}
	if x, ok := m["line"]; ok {
		md.Line = d.lineOverlay(x, childPath(path, "line"))
	}
	if x, ok := m["opacity"]; ok {
		md.Opacity = d.num(x, childPath(path, "opacity"))
	}
	if x, ok := m["orient"]; ok {
		md.Orient = enumOf(d, x, childPath(path, "orient"), "orient", orientations)
	}
	if x, ok := m["point"]; ok {
		md.Point = d.pointOverlay(x, childPath(path, "point"))
	}
	if x, ok := m["radius"]; ok {
		md.Radius = d.num(x, childPath(path, "radius"))
	}
	if x, ok := m["shape"]; ok {
		md.Shape = d.str(x, childPath(path, "shape"))
	}
	if x, ok := m["size"]; ok {
		md.Size = d.num(x, childPath(path, "size"))
	}
	if x, ok := m["stroke"]; ok {
		md.Stroke = d.str(x, childPath(path, "stroke"))
	}
	if x, ok := m["strokeCap"]; ok {
		md.StrokeCap = enumOf(d, x, childPath(path, "strokeCap"), "stroke cap", strokeCaps)
	}
	if x, ok := m["strokeDash"]; ok {
		md.StrokeDash = d.numSlice(x, childPath(path, "strokeDash"))
	}
	if x, ok := m["strokeDashOffset"]; ok {
		md.StrokeDashOffset = d.num(x, childPath(path, "strokeDashOffset"))
	}
	if x, ok := m["strokeJoin"]; ok {
		md.StrokeJoin = enumOf(d, x, childPath(path, "strokeJoin"), "stroke join", strokeJoins)
	}
	if x, ok := m["strokeMiterLimit"]; ok {
		md.StrokeMiterLimit = d.num(x, childPath(path, "strokeMiterLimit"))
	}
	if x, ok := m["strokeOpacity"]; ok {
		md.StrokeOpacity = d.num(x, childPath(path, "strokeOpacity"))
	}
	if x, ok := m["strokeWidth"]; ok {
		md.StrokeWidth = d.num(x, childPath(path, "strokeWidth"))
	}
	if x, ok := m["style"]; ok {
		md.Style = d.stringList(x, childPath(path, "style"))
	}
	if x, ok := m["tension"]; ok {
		md.Tension = d.num(x, childPath(path, "tension"))
	}
	if x, ok := m["text"]; ok {
		md.Text = d.str(x, childPath(path, "text"))
	}
	if x, ok := m["theta"]; ok {
		md.Theta = d.num(x, childPath(path, "theta"))
	}
	if x, ok := m["thickness"]; ok {
		md.Thickness = d.num(x, childPath(path, "thickness"))
	}
	if x, ok := m["tooltip"]; ok {
		md.Tooltip = d.markTooltip(x, childPath(path, "tooltip"))
	}
	if x, ok := m["x2Offset"]; ok {
		md.X2Offset = d.num(x, childPath(path, "x2Offset"))
	}
	if x, ok := m["xOffset"]; ok {
		md.XOffset = d.num(x, childPath(path, "xOffset"))
	}
	if x, ok := m["y2Offset"]; ok {
		md.Y2Offset = d.num(x, childPath(path, "y2Offset"))
	}
	if x, ok := m["yOffset"]; ok {
		md.YOffset = d.num(x, childPath(path, "yOffset"))
	}
	return md
}

// AnyMark is a mark type string or a full mark definition. Decode order:
// mark enum string, then object.
type AnyMark struct {
	Type *Mark
	Def  *MarkDef
}

// MarkOf wraps a bare mark type.
func MarkOf(m Mark) *AnyMark { return &AnyMark{Type: &m} }

func (am AnyMark) MarshalJSON() ([]byte, error) {
	if am.Type != nil {
		return json.Marshal(*am.Type)
	}
	return json.Marshal(am.Def)
}

func (d *decoder) anyMark(v any, path string) *AnyMark {
	if s, ok := strVal(v); ok {
		mk, ok := enumMember(s, marks)
		if !ok {
			d.fail(path, CodeInvalidEnum, "mark: '"+s+"'")
			return nil
		}
		return &AnyMark{Type: &mk}
	}
	if _, ok := objVal(v); ok {
		return &AnyMark{Def: d.markDef(v, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected mark name or mark definition")
	return nil
}
