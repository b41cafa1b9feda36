package vegalite

// SpecBuilder assembles a TopLevelSpec through chained calls. Every field is
// absent until set, so the built document marshals with wire-exact omission.
// The kind defaults to a unit view; calling Layer, Facet, Repeat, Concat,
// VConcat, or HConcat switches it, last call wins.
type SpecBuilder struct {
	schema      *string
	name        *string
	description *string
	title       *Title
	data        *Data
	transform   []Transform
	width       *float64
	height      *float64

	mark       *AnyMark
	encoding   *Encoding
	projection *Projection
	selection  map[string]SelectionDef

	kind    string
	layer   []Spec
	facet   *FacetMapping
	repeat  *RepeatMapping
	sub     *Spec
	concats []Spec
	resolve *Resolve

	align   *Alignment
	bounds  *Bounds
	center  *Centering
	columns *float64
	spacing *Spacing

	autosize   *Autosize
	background *string
	config     *Config
	datasets   map[string]InlineDataset
	padding    *Padding
	usermeta   any
}

// NewSpec starts a builder. Build injects the v3 $schema URL unless Schema
// overrides it.
func NewSpec() *SpecBuilder { return &SpecBuilder{} }

func (b *SpecBuilder) Schema(url string) *SpecBuilder { b.schema = &url; return b }

func (b *SpecBuilder) Name(name string) *SpecBuilder { b.name = &name; return b }

func (b *SpecBuilder) Description(desc string) *SpecBuilder { b.description = &desc; return b }

// Title sets a plain string title. TitleParams sets the object form.
func (b *SpecBuilder) Title(text string) *SpecBuilder {
	b.title = &Title{Text: &text}
	return b
}

func (b *SpecBuilder) TitleParams(p *TitleParams) *SpecBuilder {
	b.title = &Title{Params: p}
	return b
}

func (b *SpecBuilder) Data(d *Data) *SpecBuilder { b.data = d; return b }

// Transform appends pipeline steps in order.
func (b *SpecBuilder) Transform(steps ...Transform) *SpecBuilder {
	b.transform = append(b.transform, steps...)
	return b
}

func (b *SpecBuilder) Width(w float64) *SpecBuilder { b.width = &w; return b }

func (b *SpecBuilder) Height(h float64) *SpecBuilder { b.height = &h; return b }

func (b *SpecBuilder) Mark(m Mark) *SpecBuilder {
	b.mark = &AnyMark{Type: &m}
	return b
}

func (b *SpecBuilder) MarkDef(def *MarkDef) *SpecBuilder {
	b.mark = &AnyMark{Def: def}
	return b
}

func (b *SpecBuilder) Encoding(e *Encoding) *SpecBuilder { b.encoding = e; return b }

func (b *SpecBuilder) Projection(p *Projection) *SpecBuilder { b.projection = p; return b }

func (b *SpecBuilder) Selection(name string, def SelectionDef) *SpecBuilder {
	if b.selection == nil {
		b.selection = map[string]SelectionDef{}
	}
	b.selection[name] = def
	return b
}

func (b *SpecBuilder) Layer(subviews ...Spec) *SpecBuilder {
	b.kind = "layer"
	b.layer = subviews
	return b
}

func (b *SpecBuilder) Facet(mapping *FacetMapping, subview *Spec) *SpecBuilder {
	b.kind = "facet"
	b.facet = mapping
	b.sub = subview
	return b
}

func (b *SpecBuilder) Repeat(mapping *RepeatMapping, subview *Spec) *SpecBuilder {
	b.kind = "repeat"
	b.repeat = mapping
	b.sub = subview
	return b
}

// Concat lays subviews out in a wrappable grid; Columns sets the wrap width.
func (b *SpecBuilder) Concat(subviews ...Spec) *SpecBuilder {
	b.kind = "concat"
	b.concats = subviews
	return b
}

func (b *SpecBuilder) VConcat(subviews ...Spec) *SpecBuilder {
	b.kind = "vconcat"
	b.concats = subviews
	return b
}

func (b *SpecBuilder) HConcat(subviews ...Spec) *SpecBuilder {
	b.kind = "hconcat"
	b.concats = subviews
	return b
}

func (b *SpecBuilder) Resolve(r *Resolve) *SpecBuilder { b.resolve = r; return b }

// Layout knobs for the composite kinds (facet, repeat, concat). Ignored when
// the built view is a unit or layer.

func (b *SpecBuilder) Align(a LayoutAlign) *SpecBuilder {
	b.align = &Alignment{Keyword: &a}
	return b
}

func (b *SpecBuilder) Bounds(bounds Bounds) *SpecBuilder { b.bounds = &bounds; return b }

func (b *SpecBuilder) Center(center bool) *SpecBuilder {
	b.center = &Centering{Bool: &center}
	return b
}

func (b *SpecBuilder) Columns(n float64) *SpecBuilder { b.columns = &n; return b }

func (b *SpecBuilder) Spacing(px float64) *SpecBuilder {
	b.spacing = &Spacing{Number: &px}
	return b
}

func (b *SpecBuilder) Autosize(a *Autosize) *SpecBuilder { b.autosize = a; return b }

func (b *SpecBuilder) Background(color string) *SpecBuilder { b.background = &color; return b }

func (b *SpecBuilder) Config(c *Config) *SpecBuilder { b.config = c; return b }

func (b *SpecBuilder) Dataset(name string, ds InlineDataset) *SpecBuilder {
	if b.datasets == nil {
		b.datasets = map[string]InlineDataset{}
	}
	b.datasets[name] = ds
	return b
}

func (b *SpecBuilder) Padding(px float64) *SpecBuilder {
	b.padding = &Padding{Number: &px}
	return b
}

func (b *SpecBuilder) PaddingSides(p *PaddingObject) *SpecBuilder {
	b.padding = &Padding{Object: p}
	return b
}

func (b *SpecBuilder) Usermeta(meta any) *SpecBuilder { b.usermeta = meta; return b }

// View builds the spec as an embeddable subview, without top-level fields.
func (b *SpecBuilder) View() Spec { return b.buildSpec() }

// Build assembles the document.
func (b *SpecBuilder) Build() *TopLevelSpec {
	t := &TopLevelSpec{
		Spec:       b.buildSpec(),
		Autosize:   b.autosize,
		Background: b.background,
		Config:     b.config,
		Datasets:   b.datasets,
		Padding:    b.padding,
		Usermeta:   b.usermeta,
	}
	if b.schema != nil {
		t.Schema = b.schema
	} else {
		url := DefaultSchemaURL
		t.Schema = &url
	}
	return t
}

func (b *SpecBuilder) buildSpec() Spec {
	switch b.kind {
	case "layer":
		return Spec{Layer: &LayerSpec{
			Name: b.name, Description: b.description, Title: b.title,
			Data: b.data, Transform: b.transform,
			Layer: b.layer, Encoding: b.encoding, Projection: b.projection,
			Resolve: b.resolve, Width: b.width, Height: b.height,
		}}
	case "facet":
		return Spec{Facet: &FacetSpec{
			Name: b.name, Description: b.description, Title: b.title,
			Data: b.data, Transform: b.transform,
			Facet: b.facet, Spec: b.sub,
			Align: b.align, Bounds: b.bounds, Center: b.center,
			Spacing: b.spacing, Resolve: b.resolve,
		}}
	case "repeat":
		return Spec{Repeat: &RepeatSpec{
			Name: b.name, Description: b.description, Title: b.title,
			Data: b.data, Transform: b.transform,
			Repeat: b.repeat, Spec: b.sub,
			Align: b.align, Bounds: b.bounds, Center: b.center,
			Columns: b.columns, Spacing: b.spacing, Resolve: b.resolve,
		}}
	case "concat", "vconcat", "hconcat":
		c := &ConcatSpec{
			Name: b.name, Description: b.description, Title: b.title,
			Data: b.data, Transform: b.transform,
			Specs: b.concats,
			Align: b.align, Bounds: b.bounds, Center: b.center,
			Columns: b.columns, Spacing: b.spacing, Resolve: b.resolve,
		}
		switch b.kind {
		case "concat":
			return Spec{Concat: c}
		case "vconcat":
			return Spec{VConcat: c}
		}
		return Spec{HConcat: c}
	}
	u := &UnitSpec{
		Name: b.name, Description: b.description, Title: b.title,
		Data: b.data, Transform: b.transform,
		Encoding: b.encoding, Projection: b.projection,
		Selection: b.selection, Width: b.width, Height: b.height,
	}
	if b.mark != nil {
		u.Mark = *b.mark
	}
	return Spec{Unit: u}
}

// DataBuilder assembles a Data source.
type DataBuilder struct {
	d Data
}

func NewData() *DataBuilder { return &DataBuilder{} }

func (b *DataBuilder) URL(url string) *DataBuilder { b.d.URL = &url; return b }

func (b *DataBuilder) Name(name string) *DataBuilder { b.d.Name = &name; return b }

// Values sets inline rows.
func (b *DataBuilder) Values(rows ...any) *DataBuilder {
	b.d.Values = &InlineDataset{Rows: rows}
	return b
}

// ValuesString sets a raw inline string to be parsed per Format.
func (b *DataBuilder) ValuesString(s string) *DataBuilder {
	b.d.Values = &InlineDataset{String: &s}
	return b
}

func (b *DataBuilder) Format(f *DataFormat) *DataBuilder { b.d.Format = f; return b }

func (b *DataBuilder) Build() *Data {
	d := b.d
	return &d
}
