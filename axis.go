package vegalite

import (
	json "github.com/goccy/go-json"
)

// AxisOrient places an axis on one side of the plot.
type AxisOrient string

const (
	OrientTop    AxisOrient = "top"
	OrientBottom AxisOrient = "bottom"
	OrientLeft   AxisOrient = "left"
	OrientRight  AxisOrient = "right"
)

var axisOrients = enumSet(OrientTop, OrientBottom, OrientLeft, OrientRight)

// LabelOverlapStrategy is the keyword form of label overlap resolution.
type LabelOverlapStrategy string

const (
	OverlapParallel LabelOverlapStrategy = "parallel"
	OverlapGreedy   LabelOverlapStrategy = "greedy"
)

var labelOverlapStrategies = enumSet(OverlapParallel, OverlapGreedy)

// LabelOverlap controls overlapping label resolution: a boolean switch or a
// strategy keyword. Decode order: keyword enum, then boolean.
type LabelOverlap struct {
	Flag     *bool
	Strategy *LabelOverlapStrategy
}

func (lo LabelOverlap) MarshalJSON() ([]byte, error) {
	if lo.Strategy != nil {
		return json.Marshal(*lo.Strategy)
	}
	return json.Marshal(lo.Flag)
}

func (d *decoder) labelOverlap(v any, path string) *LabelOverlap {
	if s, ok := strVal(v); ok {
		st, ok := enumMember(s, labelOverlapStrategies)
		if !ok {
			d.fail(path, CodeInvalidEnum, "label overlap: '"+s+"'")
			return nil
		}
		return &LabelOverlap{Strategy: &st}
	}
	if b, ok := boolVal(v); ok {
		return &LabelOverlap{Flag: &b}
	}
	d.fail(path, CodeUnionNoMatch, "expected boolean or overlap strategy")
	return nil
}

// LabelFlush aligns the first/last labels flush with the scale: a boolean or
// a pixel adjustment. Decode order: boolean, then number.
type LabelFlush struct {
	Flag   *bool
	Offset *float64
}

func (lf LabelFlush) MarshalJSON() ([]byte, error) {
	if lf.Flag != nil {
		return json.Marshal(*lf.Flag)
	}
	return json.Marshal(lf.Offset)
}

func (d *decoder) labelFlush(v any, path string) *LabelFlush {
	if b, ok := boolVal(v); ok {
		return &LabelFlush{Flag: &b}
	}
	if f, ok := numVal(v); ok {
		return &LabelFlush{Offset: &f}
	}
	d.fail(path, CodeUnionNoMatch, "expected boolean or number")
	return nil
}

// Axis is the per-channel axis definition.
type Axis struct {
	BandPosition *float64        `json:"bandPosition,omitempty"`
	Domain       *bool           `json:"domain,omitempty"`
	Format       *string         `json:"format,omitempty"`
	Grid         *bool           `json:"grid,omitempty"`
	LabelAngle   *float64        `json:"labelAngle,omitempty"`
	LabelBound   *LabelFlush     `json:"labelBound,omitempty"`
	LabelFlush   *LabelFlush     `json:"labelFlush,omitempty"`
	LabelOverlap *LabelOverlap   `json:"labelOverlap,omitempty"`
	LabelPadding *float64        `json:"labelPadding,omitempty"`
	Labels       *bool           `json:"labels,omitempty"`
	MaxExtent    *float64        `json:"maxExtent,omitempty"`
	MinExtent    *float64        `json:"minExtent,omitempty"`
	Offset       *float64        `json:"offset,omitempty"`
	Orient       *AxisOrient     `json:"orient,omitempty"`
	Position     *float64        `json:"position,omitempty"`
	TickCount    *float64        `json:"tickCount,omitempty"`
	TickMinStep  *float64        `json:"tickMinStep,omitempty"`
	TickSize     *float64        `json:"tickSize,omitempty"`
	Ticks        *bool           `json:"ticks,omitempty"`
	Title        *NullableString `json:"title,omitempty"`
	TitleAlign   *Align          `json:"titleAlign,omitempty"`
	TitleAngle   *float64        `json:"titleAngle,omitempty"`
	TitlePadding *float64        `json:"titlePadding,omitempty"`
	Values       []DomainElement `json:"values,omitempty"`
	ZIndex       *float64        `json:"zindex,omitempty"`
}

func (d *decoder) axis(v any, path string) *Axis {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	ax := &Axis{}
	if x, ok := m["bandPosition"]; ok {
		ax.BandPosition = d.num(x, childPath(path, "bandPosition"))
	}
	if x, ok := m["domain"]; ok {
		ax.Domain = d.boolean(x, childPath(path, "domain"))
	}
	if x, ok := m["format"]; ok {
		ax.Format = d.str(x, childPath(path, "format"))
	}
	if x, ok := m["grid"]; ok {
		ax.Grid = d.boolean(x, childPath(path, "grid"))
	}
	if x, ok := m["labelAngle"]; ok {
		ax.LabelAngle = d.num(x, childPath(path, "labelAngle"))
	}
	if x, ok := m["labelBound"]; ok {
		ax.LabelBound = d.labelFlush(x, childPath(path, "labelBound"))
	}
	if x, ok := m["labelFlush"]; ok {
		ax.LabelFlush = d.labelFlush(x, childPath(path, "labelFlush"))
	}
	if x, ok := m["labelOverlap"]; ok {
		ax.LabelOverlap = d.labelOverlap(x, childPath(path, "labelOverlap"))
	}
	if x, ok := m["labelPadding"]; ok {
		ax.LabelPadding = d.num(x, childPath(path, "labelPadding"))
	}
	if x, ok := m["labels"]; ok {
		ax.Labels = d.boolean(x, childPath(path, "labels"))
	}
	if x, ok := m["maxExtent"]; ok {
		ax.MaxExtent = d.num(x, childPath(path, "maxExtent"))
	}
	if x, ok := m["minExtent"]; ok {
		ax.MinExtent = d.num(x, childPath(path, "minExtent"))
	}
	if x, ok := m["offset"]; ok {
		ax.Offset = d.num(x, childPath(path, "offset"))
	}
	if x, ok := m["orient"]; ok {
		ax.Orient = enumOf(d, x, childPath(path, "orient"), "axis orient", axisOrients)
	}
	if x, ok := m["position"]; ok {
		ax.Position = d.num(x, childPath(path, "position"))
	}
	if x, ok := m["tickCount"]; ok {
		ax.TickCount = d.num(x, childPath(path, "tickCount"))
	}
	if x, ok := m["tickMinStep"]; ok {
		ax.TickMinStep = d.num(x, childPath(path, "tickMinStep"))
	}
	if x, ok := m["tickSize"]; ok {
		ax.TickSize = d.num(x, childPath(path, "tickSize"))
	}
	if x, ok := m["ticks"]; ok {
		ax.Ticks = d.boolean(x, childPath(path, "ticks"))
	}
	if x, ok := m["title"]; ok {
		ax.Title = d.nullableString(x, childPath(path, "title"))
	}
	if x, ok := m["titleAlign"]; ok {
		ax.TitleAlign = enumOf(d, x, childPath(path, "titleAlign"), "align", aligns)
	}
	if x, ok := m["titleAngle"]; ok {
		ax.TitleAngle = d.num(x, childPath(path, "titleAngle"))
	}
	if x, ok := m["titlePadding"]; ok {
		ax.TitlePadding = d.num(x, childPath(path, "titlePadding"))
	}
	if x, ok := m["values"]; ok {
		ax.Values = d.domainElements(x, childPath(path, "values"))
	}
	if x, ok := m["zindex"]; ok {
		ax.ZIndex = d.num(x, childPath(path, "zindex"))
	}
	return ax
}
