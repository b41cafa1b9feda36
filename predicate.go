package vegalite

import (
	json "github.com/goccy/go-json"
)

// SelectionOperand composes selection names with and/or/not. Decode order:
// string name, then the logical object keyed by "not"/"and"/"or".
type SelectionOperand struct {
	Name *string
	Not  *SelectionOperand
	And  []SelectionOperand
	Or   []SelectionOperand
}

// SelectionName references a named selection.
func SelectionName(name string) *SelectionOperand { return &SelectionOperand{Name: &name} }

func (o SelectionOperand) MarshalJSON() ([]byte, error) {
	switch {
	case o.Name != nil:
		return json.Marshal(*o.Name)
	case o.Not != nil:
		return json.Marshal(map[string]*SelectionOperand{"not": o.Not})
	case o.And != nil:
		return json.Marshal(map[string][]SelectionOperand{"and": o.And})
	}
	return json.Marshal(map[string][]SelectionOperand{"or": o.Or})
}

func (d *decoder) selectionOperand(v any, path string) *SelectionOperand {
	if s, ok := strVal(v); ok {
		return &SelectionOperand{Name: &s}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected selection name or logical composition")
		return nil
	}
	if x, ok := m["not"]; ok {
		return &SelectionOperand{Not: d.selectionOperand(x, childPath(path, "not"))}
	}
	if x, ok := m["and"]; ok {
		return &SelectionOperand{And: d.selectionOperands(x, childPath(path, "and"))}
	}
	if x, ok := m["or"]; ok {
		return &SelectionOperand{Or: d.selectionOperands(x, childPath(path, "or"))}
	}
	d.fail(path, CodeUnionNoMatch, "expected one of 'not', 'and', 'or'")
	return nil
}

func (d *decoder) selectionOperands(v any, path string) []SelectionOperand {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]SelectionOperand, 0, len(a))
	for i, e := range a {
		if o := d.selectionOperand(e, indexPath(path, i)); o != nil {
			out = append(out, *o)
		}
	}
	return out
}

// FieldPredicate tests one field against a comparison. Exactly one of the
// comparison fields is set.
type FieldPredicate struct {
	Field    string           `json:"field"`
	TimeUnit *TimeUnit        `json:"timeUnit,omitempty"`
	Equal    *DomainElement   `json:"equal,omitempty"`
	GT       *DomainElement   `json:"gt,omitempty"`
	GTE      *DomainElement   `json:"gte,omitempty"`
	LT       *DomainElement   `json:"lt,omitempty"`
	LTE      *DomainElement   `json:"lte,omitempty"`
	OneOf    []DomainElement  `json:"oneOf,omitempty"`
	Range    []*DomainElement `json:"range,omitempty"`
	Valid    *bool            `json:"valid,omitempty"`
}

// Predicate is the filter test union: an opaque expression string (this
// module never evaluates expressions), a logical composition, a selection
// reference, or a field comparison. Decode order: string, "not"/"and"/"or"
// object, {selection}, {field}.
type Predicate struct {
	Expr      *string
	Not       *Predicate
	And       []Predicate
	Or        []Predicate
	Selection *SelectionOperand
	Field     *FieldPredicate
}

// Expr wraps an expression-string predicate.
func Expr(expr string) *Predicate { return &Predicate{Expr: &expr} }

func (p Predicate) MarshalJSON() ([]byte, error) {
	switch {
	case p.Expr != nil:
		return json.Marshal(*p.Expr)
	case p.Not != nil:
		return json.Marshal(map[string]*Predicate{"not": p.Not})
	case p.And != nil:
		return json.Marshal(map[string][]Predicate{"and": p.And})
	case p.Or != nil:
		return json.Marshal(map[string][]Predicate{"or": p.Or})
	case p.Selection != nil:
		return json.Marshal(map[string]*SelectionOperand{"selection": p.Selection})
	}
	return json.Marshal(p.Field)
}

func (d *decoder) predicate(v any, path string) *Predicate {
	if s, ok := strVal(v); ok {
		return &Predicate{Expr: &s}
	}
	m, ok := objVal(v)
	if !ok {
		d.fail(path, CodeUnionNoMatch, "expected expression, logical composition, selection, or field predicate")
		return nil
	}
	if x, ok := m["not"]; ok {
		return &Predicate{Not: d.predicate(x, childPath(path, "not"))}
	}
	if x, ok := m["and"]; ok {
		return &Predicate{And: d.predicates(x, childPath(path, "and"))}
	}
	if x, ok := m["or"]; ok {
		return &Predicate{Or: d.predicates(x, childPath(path, "or"))}
	}
	if x, ok := m["selection"]; ok {
		return &Predicate{Selection: d.selectionOperand(x, childPath(path, "selection"))}
	}
	if hasKey(m, "field") {
		return &Predicate{Field: d.fieldPredicate(m, path)}
	}
	d.fail(path, CodeUnionNoMatch, "expected one of 'not', 'and', 'or', 'selection', 'field'")
	return nil
}

func (d *decoder) predicates(v any, path string) []Predicate {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]Predicate, 0, len(a))
	for i, e := range a {
		if p := d.predicate(e, indexPath(path, i)); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (d *decoder) fieldPredicate(m map[string]any, path string) *FieldPredicate {
	fp := &FieldPredicate{}
	if s := d.str(m["field"], childPath(path, "field")); s != nil {
		fp.Field = *s
	}
	if x, ok := m["timeUnit"]; ok {
		fp.TimeUnit = enumOf(d, x, childPath(path, "timeUnit"), "time unit", timeUnits)
	}
	if x, ok := m["equal"]; ok {
		fp.Equal = d.domainElement(x, childPath(path, "equal"))
	}
	if x, ok := m["gt"]; ok {
		fp.GT = d.domainElement(x, childPath(path, "gt"))
	}
	if x, ok := m["gte"]; ok {
		fp.GTE = d.domainElement(x, childPath(path, "gte"))
	}
	if x, ok := m["lt"]; ok {
		fp.LT = d.domainElement(x, childPath(path, "lt"))
	}
	if x, ok := m["lte"]; ok {
		fp.LTE = d.domainElement(x, childPath(path, "lte"))
	}
	if x, ok := m["oneOf"]; ok {
		fp.OneOf = d.domainElements(x, childPath(path, "oneOf"))
	}
	if x, ok := m["range"]; ok {
		p := childPath(path, "range")
		a := d.arr(x, p)
		fp.Range = make([]*DomainElement, 0, len(a))
		for i, e := range a {
			if e == nil {
				fp.Range = append(fp.Range, nil) // open-ended bound
				continue
			}
			fp.Range = append(fp.Range, d.domainElement(e, indexPath(p, i)))
		}
	}
	if x, ok := m["valid"]; ok {
		fp.Valid = d.boolean(x, childPath(path, "valid"))
	}
	return fp
}
