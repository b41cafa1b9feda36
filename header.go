package vegalite

// Header labels the rows/columns of a facet.
type Header struct {
	Format          *string         `json:"format,omitempty"`
	LabelAngle      *float64        `json:"labelAngle,omitempty"`
	LabelColor      *string         `json:"labelColor,omitempty"`
	LabelFont       *string         `json:"labelFont,omitempty"`
	LabelFontSize   *float64        `json:"labelFontSize,omitempty"`
	LabelLimit      *float64        `json:"labelLimit,omitempty"`
	LabelPadding    *float64        `json:"labelPadding,omitempty"`
	Title           *NullableString `json:"title,omitempty"`
	TitleAngle      *float64        `json:"titleAngle,omitempty"`
	TitleColor      *string         `json:"titleColor,omitempty"`
	TitleFont       *string         `json:"titleFont,omitempty"`
	TitleFontSize   *float64        `json:"titleFontSize,omitempty"`
	TitleFontWeight *FontWeight     `json:"titleFontWeight,omitempty"`
	TitleLimit      *float64        `json:"titleLimit,omitempty"`
	TitlePadding    *float64        `json:"titlePadding,omitempty"`
}

func (d *decoder) header(v any, path string) *Header {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	h := &Header{}
	if x, ok := m["format"]; ok {
		h.Format = d.str(x, childPath(path, "format"))
	}
	if x, ok := m["labelAngle"]; ok {
		h.LabelAngle = d.num(x, childPath(path, "labelAngle"))
	}
	if x, ok := m["labelColor"]; ok {
		h.LabelColor = d.str(x, childPath(path, "labelColor"))
	}
	if x, ok := m["labelFont"]; ok {
		h.LabelFont = d.str(x, childPath(path, "labelFont"))
	}
	if x, ok := m["labelFontSize"]; ok {
		h.LabelFontSize = d.num(x, childPath(path, "labelFontSize"))
	}
	if x, ok := m["labelLimit"]; ok {
		h.LabelLimit = d.num(x, childPath(path, "labelLimit"))
	}
	if x, ok := m["labelPadding"]; ok {
		h.LabelPadding = d.num(x, childPath(path, "labelPadding"))
	}
	if x, ok := m["title"]; ok {
		h.Title = d.nullableString(x, childPath(path, "title"))
	}
	if x, ok := m["titleAngle"]; ok {
		h.TitleAngle = d.num(x, childPath(path, "titleAngle"))
	}
	if x, ok := m["titleColor"]; ok {
		h.TitleColor = d.str(x, childPath(path, "titleColor"))
	}
	if x, ok := m["titleFont"]; ok {
		h.TitleFont = d.str(x, childPath(path, "titleFont"))
	}
	if x, ok := m["titleFontSize"]; ok {
		h.TitleFontSize = d.num(x, childPath(path, "titleFontSize"))
	}
	if x, ok := m["titleFontWeight"]; ok {
		h.TitleFontWeight = d.fontWeight(x, childPath(path, "titleFontWeight"))
	}
	if x, ok := m["titleLimit"]; ok {
		h.TitleLimit = d.num(x, childPath(path, "titleLimit"))
	}
	if x, ok := m["titlePadding"]; ok {
		h.TitlePadding = d.num(x, childPath(path, "titlePadding"))
	}
	return h
}
