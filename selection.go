package vegalite

import (
	json "github.com/goccy/go-json"
)

// SelectionResolution resolves a selection across faceted/repeated views.
type SelectionResolution string

const (
	ResolutionGlobal    SelectionResolution = "global"
	ResolutionUnion     SelectionResolution = "union"
	ResolutionIntersect SelectionResolution = "intersect"
)

var selectionResolutions = enumSet(ResolutionGlobal, ResolutionUnion, ResolutionIntersect)

// SelectionEmpty decides what an empty selection matches.
type SelectionEmpty string

const (
	EmptyAll  SelectionEmpty = "all"
	EmptyNone SelectionEmpty = "none"
)

var selectionEmpties = enumSet(EmptyAll, EmptyNone)

// SwitchValue is an event-stream string or a boolean switch (toggle,
// translate, zoom, clear). Decode order: boolean, then string.
type SwitchValue struct {
	Bool   *bool
	Stream *string
}

func (s SwitchValue) MarshalJSON() ([]byte, error) {
	if s.Bool != nil {
		return json.Marshal(*s.Bool)
	}
	return json.Marshal(s.Stream)
}

func (d *decoder) switchValue(v any, path string) *SwitchValue {
	if b, ok := boolVal(v); ok {
		return &SwitchValue{Bool: &b}
	}
	if s, ok := strVal(v); ok {
		return &SwitchValue{Stream: &s}
	}
	d.fail(path, CodeUnionNoMatch, "expected boolean or event stream string")
	return nil
}

// SelectionBind is the literal "scales" or an opaque input-binding object
// (HTML widget descriptions are a renderer concern and round-trip verbatim).
// Decode order: literal "scales", then object passthrough.
type SelectionBind struct {
	Scales bool
	Raw    map[string]any
}

func (b SelectionBind) MarshalJSON() ([]byte, error) {
	if b.Scales {
		return json.Marshal("scales")
	}
	return json.Marshal(b.Raw)
}

func (d *decoder) selectionBind(v any, path string) *SelectionBind {
	if s, ok := strVal(v); ok {
		if s == "scales" {
			return &SelectionBind{Scales: true}
		}
		d.fail(path, CodeInvalidEnum, "bind: '"+s+"'")
		return nil
	}
	if m, ok := objVal(v); ok {
		return &SelectionBind{Raw: m}
	}
	d.fail(path, CodeUnionNoMatch, "expected 'scales' or binding object")
	return nil
}

// BrushConfig styles an interval selection's brush rectangle.
type BrushConfig struct {
	Fill          *string   `json:"fill,omitempty"`
	FillOpacity   *float64  `json:"fillOpacity,omitempty"`
	Stroke        *string   `json:"stroke,omitempty"`
	StrokeDash    []float64 `json:"strokeDash,omitempty"`
	StrokeOpacity *float64  `json:"strokeOpacity,omitempty"`
	StrokeWidth   *float64  `json:"strokeWidth,omitempty"`
}

func (d *decoder) brushConfig(v any, path string) *BrushConfig {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	bc := &BrushConfig{}
	if x, ok := m["fill"]; ok {
		bc.Fill = d.str(x, childPath(path, "fill"))
	}
	if x, ok := m["fillOpacity"]; ok {
		bc.FillOpacity = d.num(x, childPath(path, "fillOpacity"))
	}
	if x, ok := m["stroke"]; ok {
		bc.Stroke = d.str(x, childPath(path, "stroke"))
	}
	if x, ok := m["strokeDash"]; ok {
		bc.StrokeDash = d.numSlice(x, childPath(path, "strokeDash"))
	}
	if x, ok := m["strokeOpacity"]; ok {
		bc.StrokeOpacity = d.num(x, childPath(path, "strokeOpacity"))
	}
	if x, ok := m["strokeWidth"]; ok {
		bc.StrokeWidth = d.num(x, childPath(path, "strokeWidth"))
	}
	return bc
}

// SingleSelection picks one datum.
type SingleSelection struct {
	Bind      *SelectionBind           `json:"bind,omitempty"`
	Clear     *SwitchValue             `json:"clear,omitempty"`
	Empty     *SelectionEmpty          `json:"empty,omitempty"`
	Encodings []string                 `json:"encodings,omitempty"`
	Fields    []string                 `json:"fields,omitempty"`
	Init      map[string]DomainElement `json:"init,omitempty"`
	Nearest   *bool                    `json:"nearest,omitempty"`
	On        *string                  `json:"on,omitempty"`
	Resolve   *SelectionResolution     `json:"resolve,omitempty"`
}

// MultiSelection picks a set of data.
type MultiSelection struct {
	Clear     *SwitchValue               `json:"clear,omitempty"`
	Empty     *SelectionEmpty            `json:"empty,omitempty"`
	Encodings []string                   `json:"encodings,omitempty"`
	Fields    []string                   `json:"fields,omitempty"`
	Init      []map[string]DomainElement `json:"init,omitempty"`
	Nearest   *bool                      `json:"nearest,omitempty"`
	On        *string                    `json:"on,omitempty"`
	Resolve   *SelectionResolution       `json:"resolve,omitempty"`
	Toggle    *SwitchValue               `json:"toggle,omitempty"`
}

// IntervalSelection brushes a region of the plot.
type IntervalSelection struct {
	Bind      *SelectionBind             `json:"bind,omitempty"`
	Clear     *SwitchValue               `json:"clear,omitempty"`
	Empty     *SelectionEmpty            `json:"empty,omitempty"`
	Encodings []string                   `json:"encodings,omitempty"`
	Fields    []string                   `json:"fields,omitempty"`
	Init      map[string][]DomainElement `json:"init,omitempty"`
	Mark      *BrushConfig               `json:"mark,omitempty"`
	On        *string                    `json:"on,omitempty"`
	Resolve   *SelectionResolution       `json:"resolve,omitempty"`
	Translate *SwitchValue               `json:"translate,omitempty"`
	Zoom      *SwitchValue               `json:"zoom,omitempty"`
}

// SelectionDef is the selection definition. Unlike the rest of the grammar's
// unions this one carries a discriminant: the required "type" property picks
// single, multi, or interval directly, with no trial decoding.
type SelectionDef struct {
	Single   *SingleSelection
	Multi    *MultiSelection
	Interval *IntervalSelection
}

func (s SelectionDef) MarshalJSON() ([]byte, error) {
	switch {
	case s.Single != nil:
		return marshalTagged("single", s.Single)
	case s.Multi != nil:
		return marshalTagged("multi", s.Multi)
	case s.Interval != nil:
		return marshalTagged("interval", s.Interval)
	}
	return []byte("null"), nil
}

func (d *decoder) selectionDef(v any, path string) *SelectionDef {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	tv, ok := m["type"]
	if !ok {
		d.fail(childPath(path, "type"), CodeRequired, "selection needs a 'type' discriminant")
		return nil
	}
	tag, _ := strVal(tv)
	switch tag {
	case "single":
		return &SelectionDef{Single: d.singleSelection(m, path)}
	case "multi":
		return &SelectionDef{Multi: d.multiSelection(m, path)}
	case "interval":
		return &SelectionDef{Interval: d.intervalSelection(m, path)}
	}
	d.fail(childPath(path, "type"), CodeInvalidEnum, "selection type: '"+tag+"'")
	return nil
}

func (d *decoder) selectionCommon(m map[string]any, path string) (clear *SwitchValue, empty *SelectionEmpty, encodings, fields []string, on *string, resolve *SelectionResolution) {
	if x, ok := m["clear"]; ok {
		clear = d.switchValue(x, childPath(path, "clear"))
	}
	if x, ok := m["empty"]; ok {
		empty = enumOf(d, x, childPath(path, "empty"), "selection empty", selectionEmpties)
	}
	if x, ok := m["encodings"]; ok {
		encodings = d.strSlice(x, childPath(path, "encodings"))
	}
	if x, ok := m["fields"]; ok {
		fields = d.strSlice(x, childPath(path, "fields"))
	}
	if x, ok := m["on"]; ok {
		on = d.str(x, childPath(path, "on"))
	}
	if x, ok := m["resolve"]; ok {
		resolve = enumOf(d, x, childPath(path, "resolve"), "selection resolution", selectionResolutions)
	}
	return
}

func (d *decoder) initMapping(v any, path string) map[string]DomainElement {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	out := make(map[string]DomainElement, len(m))
	for k, e := range m {
		if el := d.domainElement(e, childPath(path, k)); el != nil {
			out[k] = *el
		}
	}
	return out
}

func (d *decoder) singleSelection(m map[string]any, path string) *SingleSelection {
	s := &SingleSelection{}
	s.Clear, s.Empty, s.Encodings, s.Fields, s.On, s.Resolve = d.selectionCommon(m, path)
	if x, ok := m["bind"]; ok {
		s.Bind = d.selectionBind(x, childPath(path, "bind"))
	}
	if x, ok := m["init"]; ok {
		s.Init = d.initMapping(x, childPath(path, "init"))
	}
	if x, ok := m["nearest"]; ok {
		s.Nearest = d.boolean(x, childPath(path, "nearest"))
	}
	return s
}

func (d *decoder) multiSelection(m map[string]any, path string) *MultiSelection {
	s := &MultiSelection{}
	s.Clear, s.Empty, s.Encodings, s.Fields, s.On, s.Resolve = d.selectionCommon(m, path)
	if x, ok := m["init"]; ok {
		p := childPath(path, "init")
		a := d.arr(x, p)
		for i, e := range a {
			if im := d.initMapping(e, indexPath(p, i)); im != nil {
				s.Init = append(s.Init, im)
			}
		}
	}
	if x, ok := m["nearest"]; ok {
		s.Nearest = d.boolean(x, childPath(path, "nearest"))
	}
	if x, ok := m["toggle"]; ok {
		s.Toggle = d.switchValue(x, childPath(path, "toggle"))
	}
	return s
}

func (d *decoder) intervalSelection(m map[string]any, path string) *IntervalSelection {
	s := &IntervalSelection{}
	s.Clear, s.Empty, s.Encodings, s.Fields, s.On, s.Resolve = d.selectionCommon(m, path)
	if x, ok := m["bind"]; ok {
		s.Bind = d.selectionBind(x, childPath(path, "bind"))
	}
	if x, ok := m["init"]; ok {
		p := childPath(path, "init")
		im := d.obj(x, p)
		if im != nil {
			s.Init = make(map[string][]DomainElement, len(im))
			for k, e := range im {
				s.Init[k] = d.domainElements(e, childPath(p, k))
			}
		}
	}
	if x, ok := m["mark"]; ok {
		s.Mark = d.brushConfig(x, childPath(path, "mark"))
	}
	if x, ok := m["translate"]; ok {
		s.Translate = d.switchValue(x, childPath(path, "translate"))
	}
	if x, ok := m["zoom"]; ok {
		s.Zoom = d.switchValue(x, childPath(path, "zoom"))
	}
	return s
}
