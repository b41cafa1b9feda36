package vegalite

// LegendOrient places a legend relative to the chart body.
type LegendOrient string

const (
	LegendLeft        LegendOrient = "left"
	LegendRight       LegendOrient = "right"
	LegendTop         LegendOrient = "top"
	LegendBottom      LegendOrient = "bottom"
	LegendTopLeft     LegendOrient = "top-left"
	LegendTopRight    LegendOrient = "top-right"
	LegendBottomLeft  LegendOrient = "bottom-left"
	LegendBottomRight LegendOrient = "bottom-right"
	LegendNone        LegendOrient = "none"
)

var legendOrients = enumSet(
	LegendLeft, LegendRight, LegendTop, LegendBottom, LegendTopLeft,
	LegendTopRight, LegendBottomLeft, LegendBottomRight, LegendNone,
)

// LegendType selects the legend flavor.
type LegendType string

const (
	LegendSymbol   LegendType = "symbol"
	LegendGradient LegendType = "gradient"
)

var legendTypes = enumSet(LegendSymbol, LegendGradient)

// Legend is the per-channel legend definition.
type Legend struct {
	Direction  *Orientation    `json:"direction,omitempty"`
	Format     *string         `json:"format,omitempty"`
	Offset     *float64        `json:"offset,omitempty"`
	Orient     *LegendOrient   `json:"orient,omitempty"`
	Padding    *float64        `json:"padding,omitempty"`
	TickCount  *float64        `json:"tickCount,omitempty"`
	Title      *NullableString `json:"title,omitempty"`
	Type       *LegendType     `json:"type,omitempty"`
	Values     []DomainElement `json:"values,omitempty"`
	ZIndex     *float64        `json:"zindex,omitempty"`
	TitleAlign *Align          `json:"titleAlign,omitempty"`
}

func (d *decoder) legend(v any, path string) *Legend {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	lg := &Legend{}
	if x, ok := m["direction"]; ok {
		lg.Direction = enumOf(d, x, childPath(path, "direction"), "direction", orientations)
	}
	if x, ok := m["format"]; ok {
		lg.Format = d.str(x, childPath(path, "format"))
	}
	if x, ok := m["offset"]; ok {
		lg.Offset = d.num(x, childPath(path, "offset"))
	}
	if x, ok := m["orient"]; ok {
		lg.Orient = enumOf(d, x, childPath(path, "orient"), "legend orient", legendOrients)
	}
	if x, ok := m["padding"]; ok {
		lg.Padding = d.num(x, childPath(path, "padding"))
	}
	if x, ok := m["tickCount"]; ok {
		lg.TickCount = d.num(x, childPath(path, "tickCount"))
	}
	if x, ok := m["title"]; ok {
		lg.Title = d.nullableString(x, childPath(path, "title"))
	}
	if x, ok := m["type"]; ok {
		lg.Type = enumOf(d, x, childPath(path, "type"), "legend type", legendTypes)
	}
	if x, ok := m["values"]; ok {
		lg.Values = d.domainElements(x, childPath(path, "values"))
	}
	if x, ok := m["zindex"]; ok {
		lg.ZIndex = d.num(x, childPath(path, "zindex"))
	}
	if x, ok := m["titleAlign"]; ok {
		lg.TitleAlign = enumOf(d, x, childPath(path, "titleAlign"), "align", aligns)
	}
	return lg
}
