package vegalite

// EncodingBuilder assembles an Encoding channel by channel.
type EncodingBuilder struct {
	e Encoding
}

func NewEncoding() *EncodingBuilder { return &EncodingBuilder{} }

func (b *EncodingBuilder) X(c *PositionChannel) *EncodingBuilder { b.e.X = c; return b }

func (b *EncodingBuilder) Y(c *PositionChannel) *EncodingBuilder { b.e.Y = c; return b }

func (b *EncodingBuilder) X2(c *SecondaryChannel) *EncodingBuilder { b.e.X2 = c; return b }

func (b *EncodingBuilder) Y2(c *SecondaryChannel) *EncodingBuilder { b.e.Y2 = c; return b }

func (b *EncodingBuilder) XError(c *SecondaryChannel) *EncodingBuilder { b.e.XError = c; return b }

func (b *EncodingBuilder) XError2(c *SecondaryChannel) *EncodingBuilder { b.e.XError2 = c; return b }

func (b *EncodingBuilder) YError(c *SecondaryChannel) *EncodingBuilder { b.e.YError = c; return b }

func (b *EncodingBuilder) YError2(c *SecondaryChannel) *EncodingBuilder { b.e.YError2 = c; return b }

func (b *EncodingBuilder) Longitude(c *SecondaryChannel) *EncodingBuilder {
	b.e.Longitude = c
	return b
}

func (b *EncodingBuilder) Longitude2(c *SecondaryChannel) *EncodingBuilder {
	b.e.Longitude2 = c
	return b
}

func (b *EncodingBuilder) Latitude(c *SecondaryChannel) *EncodingBuilder {
	b.e.Latitude = c
	return b
}

func (b *EncodingBuilder) Latitude2(c *SecondaryChannel) *EncodingBuilder {
	b.e.Latitude2 = c
	return b
}

func (b *EncodingBuilder) Color(c *MarkPropChannel) *EncodingBuilder { b.e.Color = c; return b }

func (b *EncodingBuilder) Fill(c *MarkPropChannel) *EncodingBuilder { b.e.Fill = c; return b }

func (b *EncodingBuilder) Stroke(c *MarkPropChannel) *EncodingBuilder { b.e.Stroke = c; return b }

func (b *EncodingBuilder) Opacity(c *MarkPropChannel) *EncodingBuilder { b.e.Opacity = c; return b }

func (b *EncodingBuilder) FillOpacity(c *MarkPropChannel) *EncodingBuilder {
	b.e.FillOpacity = c
	return b
}

func (b *EncodingBuilder) StrokeOpacity(c *MarkPropChannel) *EncodingBuilder {
	b.e.StrokeOpacity = c
	return b
}

func (b *EncodingBuilder) StrokeWidth(c *MarkPropChannel) *EncodingBuilder {
	b.e.StrokeWidth = c
	return b
}

func (b *EncodingBuilder) Size(c *MarkPropChannel) *EncodingBuilder { b.e.Size = c; return b }

func (b *EncodingBuilder) Shape(c *MarkPropChannel) *EncodingBuilder { b.e.Shape = c; return b }

func (b *EncodingBuilder) Detail(c *DetailChannel) *EncodingBuilder { b.e.Detail = c; return b }

func (b *EncodingBuilder) Key(fd *FieldDef) *EncodingBuilder { b.e.Key = fd; return b }

func (b *EncodingBuilder) Text(c *TextChannel) *EncodingBuilder { b.e.Text = c; return b }

func (b *EncodingBuilder) Tooltip(c *TooltipChannel) *EncodingBuilder { b.e.Tooltip = c; return b }

// NoTooltip disables the tooltip with an explicit null on the wire.
func (b *EncodingBuilder) NoTooltip() *EncodingBuilder {
	b.e.Tooltip = &TooltipChannel{Null: true}
	return b
}

func (b *EncodingBuilder) Href(c *TextChannel) *EncodingBuilder { b.e.Href = c; return b }

func (b *EncodingBuilder) Order(c *OrderChannel) *EncodingBuilder { b.e.Order = c; return b }

func (b *EncodingBuilder) Row(fd *FacetFieldDef) *EncodingBuilder { b.e.Row = fd; return b }

func (b *EncodingBuilder) Column(fd *FacetFieldDef) *EncodingBuilder { b.e.Column = fd; return b }

func (b *EncodingBuilder) Build() *Encoding {
	e := b.e
	return &e
}
