package vegalite

// MarkConfig sets default visual properties for marks. Mark-specific
// settings (bar band sizes, tick thickness) live here too so every per-mark
// config entry shares one shape.
type MarkConfig struct {
	Align              *Align        `json:"align,omitempty"`
	Angle              *float64      `json:"angle,omitempty"`
	BandSize           *float64      `json:"bandSize,omitempty"`
	Baseline           *TextBaseline `json:"baseline,omitempty"`
	BinSpacing         *float64      `json:"binSpacing,omitempty"`
	Color              *string       `json:"color,omitempty"`
	ContinuousBandSize *float64      `json:"continuousBandSize,omitempty"`
	CornerRadius       *float64      `json:"cornerRadius,omitempty"`
	Cursor             *string       `json:"cursor,omitempty"`
	DiscreteBandSize   *float64      `json:"discreteBandSize,omitempty"`
	Dir                *string       `json:"dir,omitempty"`
	DX                 *float64      `json:"dx,omitempty"`
	DY                 *float64      `json:"dy,omitempty"`
	Ellipsis           *string       `json:"ellipsis,omitempty"`
	Fill               *string       `json:"fill,omitempty"`
	FillOpacity        *float64      `json:"fillOpacity,omitempty"`
	Filled             *bool         `json:"filled,omitempty"`
	Font               *string       `json:"font,omitempty"`
	FontSize           *float64      `json:"fontSize,omitempty"`
	FontStyle          *string       `json:"fontStyle,omitempty"`
	FontWeight         *FontWeight   `json:"fontWeight,omitempty"`
	Href               *string       `json:"href,omitempty"`
	Interpolate        *Interpolate  `json:"interpolate,omitempty"`
	Limit              *float64      `json:"limit,omitempty"`
	Opacity            *float64      `json:"opacity,omitempty"`
	Orient             *Orientation  `json:"orient,omitempty"`
	Radius             *float64      `json:"radius,omitempty"`
	Shape              *string       `json:"shape,omitempty"`
	Size               *float64      `json:"size,omitempty"`
	Stroke             *string       `json:"stroke,omitempty"`
	StrokeCap          *StrokeCap    `json:"strokeCap,omitempty"`
	StrokeDash         []float64     `json:"strokeDash,omitempty"`
	StrokeDashOffset   *float64      `json:"strokeDashOffset,omitempty"`
	StrokeJoin         *StrokeJoin   `json:"strokeJoin,omitempty"`
	StrokeMiterLimit   *float64      `json:"strokeMiterLimit,omitempty"`
	StrokeOpacity      *float64      `json:"strokeOpacity,omitempty"`
	StrokeWidth        *float64      `json:"strokeWidth,omitempty"`
	Tension            *float64      `json:"tension,omitempty"`
	Text               *string       `json:"text,omitempty"`
	Theta              *float64      `json:"theta,omitempty"`
	Thickness          *float64      `json:"thickness,omitempty"`
	Tooltip            *MarkTooltip  `json:"tooltip,omitempty"`
}

func (d *decoder) markConfig(v any, path string) *MarkConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &MarkConfig{}
	if x, ok := m["align"]; ok {
		c.Align = enumOf(d, x, childPath(path, "align"), "align", aligns)
	}
	if x, ok := m["angle"]; ok {
		c.Angle = d.num(x, childPath(path, "angle"))
	}
	if x, ok := m["bandSize"]; ok {
		c.BandSize = d.num(x, childPath(path, "bandSize"))
	}
	if x, ok := m["baseline"]; ok {
		c.Baseline = enumOf(d, x, childPath(path, "baseline"), "baseline", textBaselines)
	}
	if x, ok := m["binSpacing"]; ok {
		c.BinSpacing = d.num(x, childPath(path, "binSpacing"))
	}
	if x, ok := m["color"]; ok {
		c.Color = d.str(x, childPath(path, "color"))
	}
	if x, ok := m["continuousBandSize"]; ok {
		c.ContinuousBandSize = d.num(x, childPath(path, "continuousBandSize"))
	}
	if x, ok := m["cornerRadius"]; ok {
		c.CornerRadius = d.num(x, childPath(path, "cornerRadius"))
	}
	if x, ok := m["cursor"]; ok {
		c.Cursor = d.str(x, childPath(path, "cursor"))
	}
	if x, ok := m["discreteBandSize"]; ok {
		c.DiscreteBandSize = d.num(x, childPath(path, "discreteBandSize"))
	}
	if x, ok := m["dir"]; ok {
		c.Dir = d.str(x, childPath(path, "dir"))
	}
	if x, ok := m["dx"]; ok {
		c.DX = d.num(x, childPath(path, "dx"))
	}
	if x, ok := m["dy"]; ok {
		c.DY = d.num(x, childPath(path, "dy"))
	}
	if x, ok := m["ellipsis"]; ok {
		c.Ellipsis = d.str(x, childPath(path, "ellipsis"))
	}
	if x, ok := m["fill"]; ok {
		c.Fill = d.str(x, childPath(path, "fill"))
	}
	if x, ok := m["fillOpacity"]; ok {
		c.FillOpacity = d.num(x, childPath(path, "fillOpacity"))
	}
	if x, ok := m["filled"]; ok {
		c.Filled = d.boolean(x, childPath(path, "filled"))
	}
	if x, ok := m["font"]; ok {
		c.Font = d.str(x, childPath(path, "font"))
	}
	if x, ok := m["fontSize"]; ok {
		c.FontSize = d.num(x, childPath(path, "fontSize"))
	}
	if x, ok := m["fontStyle"]; ok {
		c.FontStyle = d.str(x, childPath(path, "fontStyle"))
	}
	if x, ok := m["fontWeight"]; ok {
		c.FontWeight = d.fontWeight(x, childPath(path, "fontWeight"))
	}
	if x, ok := m["href"]; ok {
		c.Href = d.str(x, childPath(path, "href"))
	}
	if x, ok := m["interpolate"]; ok {
		c.Interpolate = enumOf(d, x, childPath(path, "interpolate"), "interpolate", interpolates)
	}
	if x, ok := m["limit"]; ok {
		c.Limit = d.num(x, childPath(path, "limit"))
	}
	if x, ok := m["opacity"]; ok {
		c.Opacity = d.num(x, childPath(path, "opacity"))
	}
	if x, ok := m["orient"]; ok {
		c.Orient = enumOf(d, x, childPath(path, "orient"), "orientation", orientations)
	}
	if x, ok := m["radius"]; ok {
		c.Radius = d.num(x, childPath(path, "radius"))
	}
	if x, ok := m["shape"]; ok {
		c.Shape = d.str(x, childPath(path, "shape"))
	}
	if x, ok := m["size"]; ok {
		c.Size = d.num(x, childPath(path, "size"))
	}
	if x, ok := m["stroke"]; ok {
		c.Stroke = d.str(x, childPath(path, "stroke"))
	}
	if x, ok := m["strokeCap"]; ok {
		c.StrokeCap = enumOf(d, x, childPath(path, "strokeCap"), "stroke cap", strokeCaps)
	}
	if x, ok := m["strokeDash"]; ok {
		c.StrokeDash = d.numSlice(x, childPath(path, "strokeDash"))
	}
	if x, ok := m["strokeDashOffset"]; ok {
		c.StrokeDashOffset = d.num(x, childPath(path, "strokeDashOffset"))
	}
	if x, ok := m["strokeJoin"]; ok {
		c.StrokeJoin = enumOf(d, x, childPath(path, "strokeJoin"), "stroke join", strokeJoins)
	}
	if x, ok := m["strokeMiterLimit"]; ok {
		c.StrokeMiterLimit = d.num(x, childPath(path, "strokeMiterLimit"))
	}
	if x, ok := m["strokeOpacity"]; ok {
		c.StrokeOpacity = d.num(x, childPath(path, "strokeOpacity"))
	}
	if x, ok := m["strokeWidth"]; ok {
		c.StrokeWidth = d.num(x, childPath(path, "strokeWidth"))
	}
	if x, ok := m["tension"]; ok {
		c.Tension = d.num(x, childPath(path, "tension"))
	}
	if x, ok := m["text"]; ok {
		c.Text = d.str(x, childPath(path, "text"))
	}
	if x, ok := m["theta"]; ok {
		c.Theta = d.num(x, childPath(path, "theta"))
	}
	if x, ok := m["thickness"]; ok {
		c.Thickness = d.num(x, childPath(path, "thickness"))
	}
	if x, ok := m["tooltip"]; ok {
		c.Tooltip = d.markTooltip(x, childPath(path, "tooltip"))
	}
	return c
}

// AxisConfig sets default axis styling.
type AxisConfig struct {
	BandPosition    *float64    `json:"bandPosition,omitempty"`
	Domain          *bool       `json:"domain,omitempty"`
	DomainColor     *string     `json:"domainColor,omitempty"`
	DomainWidth     *float64    `json:"domainWidth,omitempty"`
	Grid            *bool       `json:"grid,omitempty"`
	GridColor       *string     `json:"gridColor,omitempty"`
	GridDash        []float64   `json:"gridDash,omitempty"`
	GridOpacity     *float64    `json:"gridOpacity,omitempty"`
	GridWidth       *float64    `json:"gridWidth,omitempty"`
	LabelAngle      *float64    `json:"labelAngle,omitempty"`
	LabelColor      *string     `json:"labelColor,omitempty"`
	LabelFont       *string     `json:"labelFont,omitempty"`
	LabelFontSize   *float64    `json:"labelFontSize,omitempty"`
	LabelLimit      *float64    `json:"labelLimit,omitempty"`
	LabelPadding    *float64    `json:"labelPadding,omitempty"`
	Labels          *bool       `json:"labels,omitempty"`
	MaxExtent       *float64    `json:"maxExtent,omitempty"`
	MinExtent       *float64    `json:"minExtent,omitempty"`
	TickColor       *string     `json:"tickColor,omitempty"`
	TickSize        *float64    `json:"tickSize,omitempty"`
	TickWidth       *float64    `json:"tickWidth,omitempty"`
	Ticks           *bool       `json:"ticks,omitempty"`
	TitleColor      *string     `json:"titleColor,omitempty"`
	TitleFont       *string     `json:"titleFont,omitempty"`
	TitleFontSize   *float64    `json:"titleFontSize,omitempty"`
	TitleFontWeight *FontWeight `json:"titleFontWeight,omitempty"`
	TitlePadding    *float64    `json:"titlePadding,omitempty"`
}

func (d *decoder) axisConfig(v any, path string) *AxisConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &AxisConfig{}
	if x, ok := m["bandPosition"]; ok {
		c.BandPosition = d.num(x, childPath(path, "bandPosition"))
	}
	if x, ok := m["domain"]; ok {
		c.Domain = d.boolean(x, childPath(path, "domain"))
	}
	if x, ok := m["domainColor"]; ok {
		c.DomainColor = d.str(x, childPath(path, "domainColor"))
	}
	if x, ok := m["domainWidth"]; ok {
		c.DomainWidth = d.num(x, childPath(path, "domainWidth"))
	}
	if x, ok := m["grid"]; ok {
		c.Grid = d.boolean(x, childPath(path, "grid"))
	}
	if x, ok := m["gridColor"]; ok {
		c.GridColor = d.str(x, childPath(path, "gridColor"))
	}
	if x, ok := m["gridDash"]; ok {
		c.GridDash = d.numSlice(x, childPath(path, "gridDash"))
	}
	if x, ok := m["gridOpacity"]; ok {
		c.GridOpacity = d.num(x, childPath(path, "gridOpacity"))
	}
	if x, ok := m["gridWidth"]; ok {
		c.GridWidth = d.num(x, childPath(path, "gridWidth"))
	}
	if x, ok := m["labelAngle"]; ok {
		c.LabelAngle = d.num(x, childPath(path, "labelAngle"))
	}
	if x, ok := m["labelColor"]; ok {
		c.LabelColor = d.str(x, childPath(path, "labelColor"))
	}
	if x, ok := m["labelFont"]; ok {
		c.LabelFont = d.str(x, childPath(path, "labelFont"))
	}
	if x, ok := m["labelFontSize"]; ok {
		c.LabelFontSize = d.num(x, childPath(path, "labelFontSize"))
	}
	if x, ok := m["labelLimit"]; ok {
		c.LabelLimit = d.num(x, childPath(path, "labelLimit"))
	}
	if x, ok := m["labelPadding"]; ok {
		c.LabelPadding = d.num(x, childPath(path, "labelPadding"))
	}
	if x, ok := m["labels"]; ok {
		c.Labels = d.boolean(x, childPath(path, "labels"))
	}
	if x, ok := m["maxExtent"]; ok {
		c.MaxExtent = d.num(x, childPath(path, "maxExtent"))
	}
	if x, ok := m["minExtent"]; ok {
		c.MinExtent = d.num(x, childPath(path, "minExtent"))
	}
	if x, ok := m["tickColor"]; ok {
		c.TickColor = d.str(x, childPath(path, "tickColor"))
	}
	if x, ok := m["tickSize"]; ok {
		c.TickSize = d.num(x, childPath(path, "tickSize"))
	}
	if x, ok := m["tickWidth"]; ok {
		c.TickWidth = d.num(x, childPath(path, "tickWidth"))
	}
	if x, ok := m["ticks"]; ok {
		c.Ticks = d.boolean(x, childPath(path, "ticks"))
	}
	if x, ok := m["titleColor"]; ok {
		c.TitleColor = d.str(x, childPath(path, "titleColor"))
	}
	if x, ok := m["titleFont"]; ok {
		c.TitleFont = d.str(x, childPath(path, "titleFont"))
	}
	if x, ok := m["titleFontSize"]; ok {
		c.TitleFontSize = d.num(x, childPath(path, "titleFontSize"))
	}
	if x, ok := m["titleFontWeight"]; ok {
		c.TitleFontWeight = d.fontWeight(x, childPath(path, "titleFontWeight"))
	}
	if x, ok := m["titlePadding"]; ok {
		c.TitlePadding = d.num(x, childPath(path, "titlePadding"))
	}
	return c
}

// LegendConfig sets default legend styling.
type LegendConfig struct {
	CornerRadius    *float64      `json:"cornerRadius,omitempty"`
	FillColor       *string       `json:"fillColor,omitempty"`
	GradientLength  *float64      `json:"gradientLength,omitempty"`
	LabelColor      *string       `json:"labelColor,omitempty"`
	LabelFont       *string       `json:"labelFont,omitempty"`
	LabelFontSize   *float64      `json:"labelFontSize,omitempty"`
	LabelLimit      *float64      `json:"labelLimit,omitempty"`
	Orient          *LegendOrient `json:"orient,omitempty"`
	Padding         *float64      `json:"padding,omitempty"`
	StrokeColor     *string       `json:"strokeColor,omitempty"`
	SymbolSize      *float64      `json:"symbolSize,omitempty"`
	SymbolType      *string       `json:"symbolType,omitempty"`
	TitleColor      *string       `json:"titleColor,omitempty"`
	TitleFont       *string       `json:"titleFont,omitempty"`
	TitleFontSize   *float64      `json:"titleFontSize,omitempty"`
	TitleFontWeight *FontWeight   `json:"titleFontWeight,omitempty"`
	TitlePadding    *float64      `json:"titlePadding,omitempty"`
}

func (d *decoder) legendConfig(v any, path string) *LegendConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &LegendConfig{}
	if x, ok := m["cornerRadius"]; ok {
		c.CornerRadius = d.num(x, childPath(path, "cornerRadius"))
	}
	if x, ok := m["fillColor"]; ok {
		c.FillColor = d.str(x, childPath(path, "fillColor"))
	}
	if x, ok := m["gradientLength"]; ok {
		c.GradientLength = d.num(x, childPath(path, "gradientLength"))
	}
	if x, ok := m["labelColor"]; ok {
		c.LabelColor = d.str(x, childPath(path, "labelColor"))
	}
	if x, ok := m["labelFont"]; ok {
		c.LabelFont = d.str(x, childPath(path, "labelFont"))
	}
	if x, ok := m["labelFontSize"]; ok {
		c.LabelFontSize = d.num(x, childPath(path, "labelFontSize"))
	}
	if x, ok := m["labelLimit"]; ok {
		c.LabelLimit = d.num(x, childPath(path, "labelLimit"))
	}
	if x, ok := m["orient"]; ok {
		c.Orient = enumOf(d, x, childPath(path, "orient"), "legend orient", legendOrients)
	}
	if x, ok := m["padding"]; ok {
		c.Padding = d.num(x, childPath(path, "padding"))
	}
	if x, ok := m["strokeColor"]; ok {
		c.StrokeColor = d.str(x, childPath(path, "strokeColor"))
	}
	if x, ok := m["symbolSize"]; ok {
		c.SymbolSize = d.num(x, childPath(path, "symbolSize"))
	}
	if x, ok := m["symbolType"]; ok {
		c.SymbolType = d.str(x, childPath(path, "symbolType"))
	}
	if x, ok := m["titleColor"]; ok {
		c.TitleColor = d.str(x, childPath(path, "titleColor"))
	}
	if x, ok := m["titleFont"]; ok {
		c.TitleFont = d.str(x, childPath(path, "titleFont"))
	}
	if x, ok := m["titleFontSize"]; ok {
		c.TitleFontSize = d.num(x, childPath(path, "titleFontSize"))
	}
	if x, ok := m["titleFontWeight"]; ok {
		c.TitleFontWeight = d.fontWeight(x, childPath(path, "titleFontWeight"))
	}
	if x, ok := m["titlePadding"]; ok {
		c.TitlePadding = d.num(x, childPath(path, "titlePadding"))
	}
	return c
}

// ScaleConfig sets default scale ranges and paddings.
type ScaleConfig struct {
	BandPaddingInner      *float64           `json:"bandPaddingInner,omitempty"`
	BandPaddingOuter      *float64           `json:"bandPaddingOuter,omitempty"`
	BarBandPaddingInner   *float64           `json:"barBandPaddingInner,omitempty"`
	Clamp                 *bool              `json:"clamp,omitempty"`
	ContinuousPadding     *float64           `json:"continuousPadding,omitempty"`
	MaxBandSize           *float64           `json:"maxBandSize,omitempty"`
	MaxFontSize           *float64           `json:"maxFontSize,omitempty"`
	MaxOpacity            *float64           `json:"maxOpacity,omitempty"`
	MaxSize               *float64           `json:"maxSize,omitempty"`
	MaxStrokeWidth        *float64           `json:"maxStrokeWidth,omitempty"`
	MinBandSize           *float64           `json:"minBandSize,omitempty"`
	MinFontSize           *float64           `json:"minFontSize,omitempty"`
	MinOpacity            *float64           `json:"minOpacity,omitempty"`
	MinSize               *float64           `json:"minSize,omitempty"`
	MinStrokeWidth        *float64           `json:"minStrokeWidth,omitempty"`
	PointPadding          *float64           `json:"pointPadding,omitempty"`
	RangeStep             *Nullable[float64] `json:"rangeStep,omitempty"`
	Round                 *bool              `json:"round,omitempty"`
	TextXRangeStep        *float64           `json:"textXRangeStep,omitempty"`
	UseUnaggregatedDomain *bool              `json:"useUnaggregatedDomain,omitempty"`
}

func (d *decoder) scaleConfig(v any, path string) *ScaleConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &ScaleConfig{}
	if x, ok := m["bandPaddingInner"]; ok {
		c.BandPaddingInner = d.num(x, childPath(path, "bandPaddingInner"))
	}
	if x, ok := m["bandPaddingOuter"]; ok {
		c.BandPaddingOuter = d.num(x, childPath(path, "bandPaddingOuter"))
	}
	if x, ok := m["barBandPaddingInner"]; ok {
		c.BarBandPaddingInner = d.num(x, childPath(path, "barBandPaddingInner"))
	}
	if x, ok := m["clamp"]; ok {
		c.Clamp = d.boolean(x, childPath(path, "clamp"))
	}
	if x, ok := m["continuousPadding"]; ok {
		c.ContinuousPadding = d.num(x, childPath(path, "continuousPadding"))
	}
	if x, ok := m["maxBandSize"]; ok {
		c.MaxBandSize = d.num(x, childPath(path, "maxBandSize"))
	}
	if x, ok := m["maxFontSize"]; ok {
		c.MaxFontSize = d.num(x, childPath(path, "maxFontSize"))
	}
	if x, ok := m["maxOpacity"]; ok {
		c.MaxOpacity = d.num(x, childPath(path, "maxOpacity"))
	}
	if x, ok := m["maxSize"]; ok {
		c.MaxSize = d.num(x, childPath(path, "maxSize"))
	}
	if x, ok := m["maxStrokeWidth"]; ok {
		c.MaxStrokeWidth = d.num(x, childPath(path, "maxStrokeWidth"))
	}
	if x, ok := m["minBandSize"]; ok {
		c.MinBandSize = d.num(x, childPath(path, "minBandSize"))
	}
	if x, ok := m["minFontSize"]; ok {
		c.MinFontSize = d.num(x, childPath(path, "minFontSize"))
	}
	if x, ok := m["minOpacity"]; ok {
		c.MinOpacity = d.num(x, childPath(path, "minOpacity"))
	}
	if x, ok := m["minSize"]; ok {
		c.MinSize = d.num(x, childPath(path, "minSize"))
	}
	if x, ok := m["minStrokeWidth"]; ok {
		c.MinStrokeWidth = d.num(x, childPath(path, "minStrokeWidth"))
	}
	if x, ok := m["pointPadding"]; ok {
		c.PointPadding = d.num(x, childPath(path, "pointPadding"))
	}
	if x, ok := m["rangeStep"]; ok {
		c.RangeStep = nullableOf(d, x, childPath(path, "rangeStep"), d.num)
	}
	if x, ok := m["round"]; ok {
		c.Round = d.boolean(x, childPath(path, "round"))
	}
	if x, ok := m["textXRangeStep"]; ok {
		c.TextXRangeStep = d.num(x, childPath(path, "textXRangeStep"))
	}
	if x, ok := m["useUnaggregatedDomain"]; ok {
		c.UseUnaggregatedDomain = d.boolean(x, childPath(path, "useUnaggregatedDomain"))
	}
	return c
}

// SelectionConfig sets per-kind selection defaults.
type SelectionConfig struct {
	Single   *SingleSelection   `json:"single,omitempty"`
	Multi    *MultiSelection    `json:"multi,omitempty"`
	Interval *IntervalSelection `json:"interval,omitempty"`
}

func (d *decoder) selectionConfig(v any, path string) *SelectionConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &SelectionConfig{}
	if x, ok := m["single"]; ok {
		p := childPath(path, "single")
		if sm := d.obj(x, p); sm != nil {
			c.Single = d.singleSelection(sm, p)
		}
	}
	if x, ok := m["multi"]; ok {
		p := childPath(path, "multi")
		if sm := d.obj(x, p); sm != nil {
			c.Multi = d.multiSelection(sm, p)
		}
	}
	if x, ok := m["interval"]; ok {
		p := childPath(path, "interval")
		if sm := d.obj(x, p); sm != nil {
			c.Interval = d.intervalSelection(sm, p)
		}
	}
	return c
}

// ViewConfig sets the default single-view frame.
type ViewConfig struct {
	Clip             *bool      `json:"clip,omitempty"`
	CornerRadius     *float64   `json:"cornerRadius,omitempty"`
	Fill             *string    `json:"fill,omitempty"`
	FillOpacity      *float64   `json:"fillOpacity,omitempty"`
	Height           *float64   `json:"height,omitempty"`
	Stroke           *string    `json:"stroke,omitempty"`
	StrokeCap        *StrokeCap `json:"strokeCap,omitempty"`
	StrokeDash       []float64  `json:"strokeDash,omitempty"`
	StrokeDashOffset *float64   `json:"strokeDashOffset,omitempty"`
	StrokeOpacity    *float64   `json:"strokeOpacity,omitempty"`
	StrokeWidth      *float64   `json:"strokeWidth,omitempty"`
	Width            *float64   `json:"width,omitempty"`
}

func (d *decoder) viewConfig(v any, path string) *ViewConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &ViewConfig{}
	if x, ok := m["clip"]; ok {
		c.Clip = d.boolean(x, childPath(path, "clip"))
	}
	if x, ok := m["cornerRadius"]; ok {
		c.CornerRadius = d.num(x, childPath(path, "cornerRadius"))
	}
	if x, ok := m["fill"]; ok {
		c.Fill = d.str(x, childPath(path, "fill"))
	}
	if x, ok := m["fillOpacity"]; ok {
		c.FillOpacity = d.num(x, childPath(path, "fillOpacity"))
	}
	if x, ok := m["height"]; ok {
		c.Height = d.num(x, childPath(path, "height"))
	}
	if x, ok := m["stroke"]; ok {
		c.Stroke = d.str(x, childPath(path, "stroke"))
	}
	if x, ok := m["strokeCap"]; ok {
		c.StrokeCap = enumOf(d, x, childPath(path, "strokeCap"), "stroke cap", strokeCaps)
	}
	if x, ok := m["strokeDash"]; ok {
		c.StrokeDash = d.numSlice(x, childPath(path, "strokeDash"))
	}
	if x, ok := m["strokeDashOffset"]; ok {
		c.StrokeDashOffset = d.num(x, childPath(path, "strokeDashOffset"))
	}
	if x, ok := m["strokeOpacity"]; ok {
		c.StrokeOpacity = d.num(x, childPath(path, "strokeOpacity"))
	}
	if x, ok := m["strokeWidth"]; ok {
		c.StrokeWidth = d.num(x, childPath(path, "strokeWidth"))
	}
	if x, ok := m["width"]; ok {
		c.Width = d.num(x, childPath(path, "width"))
	}
	return c
}

// Config is the document-level configuration. The "range" entry round-trips
// as an opaque map; its value shapes are a renderer concern.
type Config struct {
	Autosize      *Autosize             `json:"autosize,omitempty"`
	Background    *string               `json:"background,omitempty"`
	CountTitle    *string               `json:"countTitle,omitempty"`
	FieldTitle    *string               `json:"fieldTitle,omitempty"`
	InvalidValues *NullableString       `json:"invalidValues,omitempty"`
	NumberFormat  *string               `json:"numberFormat,omitempty"`
	Padding       *Padding              `json:"padding,omitempty"`
	TimeFormat    *string               `json:"timeFormat,omitempty"`
	Axis          *AxisConfig           `json:"axis,omitempty"`
	AxisBand      *AxisConfig           `json:"axisBand,omitempty"`
	AxisBottom    *AxisConfig           `json:"axisBottom,omitempty"`
	AxisLeft      *AxisConfig           `json:"axisLeft,omitempty"`
	AxisRight     *AxisConfig           `json:"axisRight,omitempty"`
	AxisTop       *AxisConfig           `json:"axisTop,omitempty"`
	AxisX         *AxisConfig           `json:"axisX,omitempty"`
	AxisY         *AxisConfig           `json:"axisY,omitempty"`
	Legend        *LegendConfig         `json:"legend,omitempty"`
	Mark          *MarkConfig           `json:"mark,omitempty"`
	Area          *MarkConfig           `json:"area,omitempty"`
	Bar           *MarkConfig           `json:"bar,omitempty"`
	Circle        *MarkConfig           `json:"circle,omitempty"`
	Geoshape      *MarkConfig           `json:"geoshape,omitempty"`
	Line          *MarkConfig           `json:"line,omitempty"`
	Point         *MarkConfig           `json:"point,omitempty"`
	Rect          *MarkConfig           `json:"rect,omitempty"`
	Rule          *MarkConfig           `json:"rule,omitempty"`
	Square        *MarkConfig           `json:"square,omitempty"`
	Text          *MarkConfig           `json:"text,omitempty"`
	Tick          *MarkConfig           `json:"tick,omitempty"`
	Trail         *MarkConfig           `json:"trail,omitempty"`
	Header        *Header               `json:"header,omitempty"`
	Projection    *Projection           `json:"projection,omitempty"`
	Range         map[string]any        `json:"range,omitempty"`
	Scale         *ScaleConfig          `json:"scale,omitempty"`
	Selection     *SelectionConfig      `json:"selection,omitempty"`
	Stack         *Stack                `json:"stack,omitempty"`
	Style         map[string]MarkConfig `json:"style,omitempty"`
	Title         *TitleParams          `json:"title,omitempty"`
	View          *ViewConfig           `json:"view,omitempty"`
}

func (d *decoder) config(v any, path string) *Config {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	c := &Config{}
	if x, ok := m["autosize"]; ok {
		c.Autosize = d.autosize(x, childPath(path, "autosize"))
	}
	if x, ok := m["background"]; ok {
		c.Background = d.str(x, childPath(path, "background"))
	}
	if x, ok := m["countTitle"]; ok {
		c.CountTitle = d.str(x, childPath(path, "countTitle"))
	}
	if x, ok := m["fieldTitle"]; ok {
		c.FieldTitle = d.str(x, childPath(path, "fieldTitle"))
	}
	if x, ok := m["invalidValues"]; ok {
		c.InvalidValues = d.nullableString(x, childPath(path, "invalidValues"))
	}
	if x, ok := m["numberFormat"]; ok {
		c.NumberFormat = d.str(x, childPath(path, "numberFormat"))
	}
	if x, ok := m["padding"]; ok {
		c.Padding = d.padding(x, childPath(path, "padding"))
	}
	if x, ok := m["timeFormat"]; ok {
		c.TimeFormat = d.str(x, childPath(path, "timeFormat"))
	}
	for key, dst := range map[string]**AxisConfig{
		"axis": &c.Axis, "axisBand": &c.AxisBand, "axisBottom": &c.AxisBottom,
		"axisLeft": &c.AxisLeft, "axisRight": &c.AxisRight, "axisTop": &c.AxisTop,
		"axisX": &c.AxisX, "axisY": &c.AxisY,
	} {
		if x, ok := m[key]; ok {
			*dst = d.axisConfig(x, childPath(path, key))
		}
	}
	if x, ok := m["legend"]; ok {
		c.Legend = d.legendConfig(x, childPath(path, "legend"))
	}
	for key, dst := range map[string]**MarkConfig{
		"mark": &c.Mark, "area": &c.Area, "bar": &c.Bar, "circle": &c.Circle,
		"geoshape": &c.Geoshape, "line": &c.Line, "point": &c.Point,
		"rect": &c.Rect, "rule": &c.Rule, "square": &c.Square,
		"text": &c.Text, "tick": &c.Tick, "trail": &c.Trail,
	} {
		if x, ok := m[key]; ok {
			*dst = d.markConfig(x, childPath(path, key))
		}
	}
	if x, ok := m["header"]; ok {
		c.Header = d.header(x, childPath(path, "header"))
	}
	if x, ok := m["projection"]; ok {
		c.Projection = d.projection(x, childPath(path, "projection"))
	}
	if x, ok := m["range"]; ok {
		c.Range, _ = objVal(x)
	}
	if x, ok := m["scale"]; ok {
		c.Scale = d.scaleConfig(x, childPath(path, "scale"))
	}
	if x, ok := m["selection"]; ok {
		c.Selection = d.selectionConfig(x, childPath(path, "selection"))
	}
	if x, ok := m["stack"]; ok {
		c.Stack = d.stack(x, childPath(path, "stack"))
	}
	if x, ok := m["style"]; ok {
		p := childPath(path, "style")
		if sm := d.obj(x, p); sm != nil {
			c.Style = make(map[string]MarkConfig, len(sm))
			for k, e := range sm {
				if mc := d.markConfig(e, childPath(p, k)); mc != nil {
					c.Style[k] = *mc
				}
			}
		}
	}
	if x, ok := m["title"]; ok {
		if t := d.title(x, childPath(path, "title")); t != nil && t.Params != nil {
			c.Title = t.Params
		}
	}
	if x, ok := m["view"]; ok {
		c.View = d.viewConfig(x, childPath(path, "view"))
	}
	return c
}
