package vegalite

import (
	json "github.com/goccy/go-json"
)

// DataFormatType names the parser applied to a loaded data file.
type DataFormatType string

const (
	FormatJSON     DataFormatType = "json"
	FormatCSV      DataFormatType = "csv"
	FormatTSV      DataFormatType = "tsv"
	FormatDSV      DataFormatType = "dsv"
	FormatTopoJSON DataFormatType = "topojson"
)

var dataFormatTypes = enumSet(FormatJSON, FormatCSV, FormatTSV, FormatDSV, FormatTopoJSON)

// ParseSpec controls per-field parsing of loaded data: the "auto" keyword,
// explicit null, or a field-to-datatype mapping where a datatype may itself
// be null. Decode order: null, "auto", then object.
type ParseSpec struct {
	Null   bool
	Auto   bool
	Fields map[string]*string
}

func (p ParseSpec) MarshalJSON() ([]byte, error) {
	switch {
	case p.Null:
		return []byte("null"), nil
	case p.Auto:
		return json.Marshal("auto")
	}
	return json.Marshal(p.Fields)
}

func (d *decoder) parseSpec(v any, path string) *ParseSpec {
	if v == nil {
		return &ParseSpec{Null: true}
	}
	if s, ok := strVal(v); ok {
		if s == "auto" {
			return &ParseSpec{Auto: true}
		}
		d.fail(path, CodeInvalidEnum, "parse: '"+s+"'")
		return nil
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected 'auto', null, or parse mapping")
		return nil
	}
	ps := &ParseSpec{Fields: make(map[string]*string, len(m))}
	for k, e := range m {
		if e == nil {
			ps.Fields[k] = nil
			continue
		}
		ps.Fields[k] = d.str(e, childPath(path, k))
	}
	return ps
}

// DataFormat describes how to interpret a data source.
type DataFormat struct {
	Type      *DataFormatType `json:"type,omitempty"`
	Parse     *ParseSpec      `json:"parse,omitempty"`
	Property  *string         `json:"property,omitempty"`
	Feature   *string         `json:"feature,omitempty"`
	Mesh      *string         `json:"mesh,omitempty"`
	Delimiter *string         `json:"delimiter,omitempty"`
}

func (d *decoder) dataFormat(v any, path string) *DataFormat {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	f := &DataFormat{}
	if x, ok := m["type"]; ok {
		f.Type = enumOf(d, x, childPath(path, "type"), "data format type", dataFormatTypes)
	}
	if x, ok := m["parse"]; ok {
		f.Parse = d.parseSpec(x, childPath(path, "parse"))
	}
	if x, ok := m["property"]; ok {
		f.Property = d.str(x, childPath(path, "property"))
	}
	if x, ok := m["feature"]; ok {
		f.Feature = d.str(x, childPath(path, "feature"))
	}
	if x, ok := m["mesh"]; ok {
		f.Mesh = d.str(x, childPath(path, "mesh"))
	}
	if x, ok := m["delimiter"]; ok {
		f.Delimiter = d.str(x, childPath(path, "delimiter"))
	}
	return f
}

// Data is a data source: inline values, a URL, or a reference to a named
// dataset. Exactly one of Values, URL, Name identifies the source; a named
// inline/url source may additionally carry Name.
type Data struct {
	Values *InlineDataset `json:"values,omitempty"`
	URL    *string        `json:"url,omitempty"`
	Name   *string        `json:"name,omitempty"`
	Format *DataFormat    `json:"format,omitempty"`
}

// URLData references a remote data file.
func URLData(url string) *Data { return &Data{URL: &url} }

// NamedData references a dataset registered under Datasets.
func NamedData(name string) *Data { return &Data{Name: &name} }

func (d *decoder) data(v any, path string) *Data {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	dt := &Data{}
	if x, ok := m["values"]; ok {
		dt.Values = d.inlineDataset(x, childPath(path, "values"))
	}
	if x, ok := m["url"]; ok {
		dt.URL = d.str(x, childPath(path, "url"))
	}
	if x, ok := m["name"]; ok {
		dt.Name = d.str(x, childPath(path, "name"))
	}
	if x, ok := m["format"]; ok {
		dt.Format = d.dataFormat(x, childPath(path, "format"))
	}
	if dt.Values == nil && dt.URL == nil && dt.Name == nil {
		d.fail(path, CodeRequired, "data needs one of 'values', 'url', 'name'")
		return nil
	}
	return dt
}

// InlineDataset holds inline data values: an array of rows, a single object,
// or a raw string parsed per the accompanying format. Decode order: array,
// object, string.
type InlineDataset struct {
	Rows   []any
	Object map[string]any
	String *string
}

func (i InlineDataset) MarshalJSON() ([]byte, error) {
	switch {
	case i.Rows != nil:
		return json.Marshal(i.Rows)
	case i.Object != nil:
		return json.Marshal(i.Object)
	case i.String != nil:
		return json.Marshal(*i.String)
	}
	return []byte("[]"), nil
}

func (d *decoder) inlineDataset(v any, path string) *InlineDataset {
	if a, ok := arrVal(v); ok {
		return &InlineDataset{Rows: a}
	}
	if m, ok := objVal(v); ok {
		return &InlineDataset{Object: m}
	}
	if s, ok := strVal(v); ok {
		return &InlineDataset{String: &s}
	}
	d.fail(path, CodeUnionNoMatch, "expected array, object, or string of values")
	return nil
}

func (d *decoder) datasets(v any, path string) map[string]InlineDataset {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	out := make(map[string]InlineDataset, len(m))
	for k, e := range m {
		if ds := d.inlineDataset(e, childPath(path, k)); ds != nil {
			out[k] = *ds
		}
	}
	return out
}
