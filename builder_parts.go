package vegalite

// FieldBuilder assembles a field reference for any channel. Chain the
// measurement type and modifiers, then finish with the terminal matching the
// target channel (Position, Prop, Text, Order, Detail, Secondary, Facet).
type FieldBuilder struct {
	fd     FieldDef
	axis   *Nullable[Axis]
	legend *Nullable[Legend]
	scale  *Nullable[Scale]
	sort   *Sort
	stack  *Stack
	impute *ImputeParams
	format *string
	header *Header
	order  *SortOrder
}

// NewField starts a builder for a named data field.
func NewField(name string) *FieldBuilder {
	return &FieldBuilder{fd: FieldDef{Field: FieldName(name)}}
}

// NewRepeatField starts a builder whose field resolves through the enclosing
// repeat ("row" or "column").
func NewRepeatField(ref string) *FieldBuilder {
	return &FieldBuilder{fd: FieldDef{Field: &Field{Repeat: &RepeatRef{Repeat: ref}}}}
}

// CountField starts a builder for the count aggregate, which needs no field.
func CountField() *FieldBuilder {
	op := AggCount
	return &FieldBuilder{fd: FieldDef{Aggregate: &op}}
}

func (b *FieldBuilder) withType(t StandardType) *FieldBuilder {
	b.fd.Type = &t
	return b
}

func (b *FieldBuilder) Quantitative() *FieldBuilder { return b.withType(Quantitative) }

func (b *FieldBuilder) Ordinal() *FieldBuilder { return b.withType(Ordinal) }

func (b *FieldBuilder) Temporal() *FieldBuilder { return b.withType(Temporal) }

func (b *FieldBuilder) Nominal() *FieldBuilder { return b.withType(Nominal) }

func (b *FieldBuilder) GeoJSON() *FieldBuilder { return b.withType(GeoJSON) }

func (b *FieldBuilder) Aggregate(op Aggregate) *FieldBuilder {
	b.fd.Aggregate = &op
	return b
}

// Bin enables default binning. BinParams and PreBinned cover the other wire
// forms.
func (b *FieldBuilder) Bin() *FieldBuilder {
	b.fd.Bin = BinFlag(true)
	return b
}

func (b *FieldBuilder) BinParams(p *BinParams) *FieldBuilder {
	b.fd.Bin = &Bin{Params: p}
	return b
}

func (b *FieldBuilder) PreBinned() *FieldBuilder {
	b.fd.Bin = Binned()
	return b
}

func (b *FieldBuilder) TimeUnit(tu TimeUnit) *FieldBuilder {
	b.fd.TimeUnit = &tu
	return b
}

func (b *FieldBuilder) Title(title string) *FieldBuilder {
	b.fd.Title = &NullableString{Value: &title}
	return b
}

// NoTitle writes an explicit null title, suppressing the derived one.
func (b *FieldBuilder) NoTitle() *FieldBuilder {
	b.fd.Title = &NullableString{Null: true}
	return b
}

func (b *FieldBuilder) Axis(a *Axis) *FieldBuilder {
	b.axis = Some(*a)
	return b
}

// NoAxis writes axis: null.
func (b *FieldBuilder) NoAxis() *FieldBuilder {
	b.axis = NullOf[Axis]()
	return b
}

func (b *FieldBuilder) Legend(l *Legend) *FieldBuilder {
	b.legend = Some(*l)
	return b
}

// NoLegend writes legend: null.
func (b *FieldBuilder) NoLegend() *FieldBuilder {
	b.legend = NullOf[Legend]()
	return b
}

func (b *FieldBuilder) Scale(s *Scale) *FieldBuilder {
	b.scale = Some(*s)
	return b
}

// NoScale writes scale: null (disables scale application for the channel).
func (b *FieldBuilder) NoScale() *FieldBuilder {
	b.scale = NullOf[Scale]()
	return b
}

func (b *FieldBuilder) Sort(s *Sort) *FieldBuilder {
	b.sort = s
	return b
}

// NoSort writes sort: null.
func (b *FieldBuilder) NoSort() *FieldBuilder { return b.Sort(&Sort{Null: true}) }

func (b *FieldBuilder) Ascending() *FieldBuilder { return b.Sort(SortBy(Ascending)) }

func (b *FieldBuilder) Descending() *FieldBuilder { return b.Sort(SortBy(Descending)) }

func (b *FieldBuilder) Stack(s *Stack) *FieldBuilder {
	b.stack = s
	return b
}

func (b *FieldBuilder) Impute(p *ImputeParams) *FieldBuilder {
	b.impute = p
	return b
}

func (b *FieldBuilder) Format(f string) *FieldBuilder {
	b.format = &f
	return b
}

func (b *FieldBuilder) Header(h *Header) *FieldBuilder {
	b.header = h
	return b
}

// Order sets the sort direction used by the Order terminal.
func (b *FieldBuilder) OrderBy(o SortOrder) *FieldBuilder {
	b.order = &o
	return b
}

// Def returns the bare field definition (x2/y2, key, detail entries).
func (b *FieldBuilder) Def() *FieldDef {
	fd := b.fd
	return &fd
}

// Position finishes the builder for the x/y channels.
func (b *FieldBuilder) Position() *PositionChannel {
	return &PositionChannel{Def: &PositionDef{
		FieldDef: b.fd,
		Axis:     b.axis,
		Impute:   b.impute,
		Scale:    b.scale,
		Sort:     b.sort,
		Stack:    b.stack,
	}}
}

// Prop finishes the builder for mark property channels (color, size, ...).
func (b *FieldBuilder) Prop() *MarkPropChannel {
	return &MarkPropChannel{Def: &MarkPropDef{
		FieldDef: b.fd,
		Legend:   b.legend,
		Scale:    b.scale,
		Sort:     b.sort,
	}}
}

// Text finishes the builder for the text/tooltip/href channels.
func (b *FieldBuilder) Text() *TextChannel {
	return &TextChannel{Def: &TextDef{
		FieldDef: b.fd,
		Format:   b.format,
	}}
}

// Tooltip finishes the builder for the tooltip channel.
func (b *FieldBuilder) Tooltip() *TooltipChannel {
	return &TooltipChannel{Def: &TextDef{
		FieldDef: b.fd,
		Format:   b.format,
	}}
}

// Order finishes the builder for the order channel.
func (b *FieldBuilder) Order() *OrderChannel {
	return &OrderChannel{One: &OrderDef{
		FieldDef: b.fd,
		Sort:     b.order,
	}}
}

// Detail finishes the builder for the detail channel.
func (b *FieldBuilder) Detail() *DetailChannel {
	fd := b.fd
	return &DetailChannel{One: &fd}
}

// Secondary finishes the builder for x2/y2/error/geo channels.
func (b *FieldBuilder) Secondary() *SecondaryChannel {
	fd := b.fd
	return &SecondaryChannel{Def: &fd}
}

// Facet finishes the builder for the row/column channels.
func (b *FieldBuilder) Facet() *FacetFieldDef {
	return &FacetFieldDef{
		FieldDef: b.fd,
		Header:   b.header,
		Sort:     b.sort,
	}
}

// ---- constant value channels ----

// PositionValue pins x/y to a constant.
func PositionValue(v Value) *PositionChannel {
	return &PositionChannel{Value: &ValueDef{Value: &v}}
}

// PropValue pins a mark property channel to a constant.
func PropValue(v Value) *MarkPropChannel {
	return &MarkPropChannel{Value: &ValueDef{Value: &v}}
}

// TextValue pins a text channel to a constant.
func TextValue(v Value) *TextChannel {
	return &TextChannel{Value: &ValueDef{Value: &v}}
}

// SecondaryValue pins a secondary channel to a constant.
func SecondaryValue(v Value) *SecondaryChannel {
	return &SecondaryChannel{Value: &ValueDef{Value: &v}}
}
