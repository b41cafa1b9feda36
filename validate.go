package vegalite

// Validate checks the structural invariants a hand-built document can
// violate: every view holds exactly one kind, every data source names
// exactly one origin, every transform step and field predicate carries
// exactly one operation. Parse output always validates; this exists for
// documents assembled directly or through builders.
func Validate(spec *TopLevelSpec) error {
	v := &validator{}
	if spec == nil {
		v.conflict("", "nil document")
		return v.iss
	}
	v.spec(&spec.Spec, "")
	if len(v.iss) > 0 {
		return v.iss
	}
	return nil
}

type validator struct {
	iss Issues
}

func (v *validator) conflict(path, hint string) {
	v.iss = AppendIssues(v.iss, Issue{Path: path, Code: CodeConflict, Message: "conflicting definition", Hint: hint})
}

func (v *validator) required(path, hint string) {
	v.iss = AppendIssues(v.iss, Issue{Path: path, Code: CodeRequired, Message: "missing definition", Hint: hint})
}

func (v *validator) spec(s *Spec, path string) {
	n := 0
	if s.Unit != nil {
		n++
	}
	if s.Layer != nil {
		n++
	}
	if s.Facet != nil {
		n++
	}
	if s.Repeat != nil {
		n++
	}
	if s.Concat != nil {
		n++
	}
	if s.VConcat != nil {
		n++
	}
	if s.HConcat != nil {
		n++
	}
	if n != 1 {
		if n == 0 {
			v.required(path, "view has no kind")
		} else {
			v.conflict(path, "view sets more than one kind")
		}
		return
	}
	switch {
	case s.Unit != nil:
		v.unit(s.Unit, path)
	case s.Layer != nil:
		for i := range s.Layer.Layer {
			sub := &s.Layer.Layer[i]
			p := indexPath(childPath(path, "layer"), i)
			if sub.Facet != nil || sub.Repeat != nil || sub.Concat != nil || sub.VConcat != nil || sub.HConcat != nil {
				v.conflict(p, "layer subviews must be unit or layer specs")
				continue
			}
			v.spec(sub, p)
		}
		v.data(s.Layer.Data, childPath(path, "data"))
		v.transforms(s.Layer.Transform, path)
	case s.Facet != nil:
		if s.Facet.Spec == nil {
			v.required(childPath(path, "spec"), "facet needs a subview")
		} else {
			v.spec(s.Facet.Spec, childPath(path, "spec"))
		}
		if s.Facet.Facet == nil || (s.Facet.Facet.Row == nil && s.Facet.Facet.Column == nil) {
			v.required(childPath(path, "facet"), "facet needs a row or column field")
		}
		v.data(s.Facet.Data, childPath(path, "data"))
		v.transforms(s.Facet.Transform, path)
	case s.Repeat != nil:
		if s.Repeat.Spec == nil {
			v.required(childPath(path, "spec"), "repeat needs a subview")
		} else {
			v.spec(s.Repeat.Spec, childPath(path, "spec"))
		}
		rm := s.Repeat.Repeat
		if rm == nil || (len(rm.Fields) == 0 && len(rm.Row) == 0 && len(rm.Column) == 0) {
			v.required(childPath(path, "repeat"), "repeat needs fields to iterate over")
		}
		v.data(s.Repeat.Data, childPath(path, "data"))
		v.transforms(s.Repeat.Transform, path)
	case s.Concat != nil:
		v.concat(s.Concat, path, "concat")
	case s.VConcat != nil:
		v.concat(s.VConcat, path, "vconcat")
	case s.HConcat != nil:
		v.concat(s.HConcat, path, "hconcat")
	}
}

func (v *validator) concat(c *ConcatSpec, path, key string) {
	for i := range c.Specs {
		v.spec(&c.Specs[i], indexPath(childPath(path, key), i))
	}
	v.data(c.Data, childPath(path, "data"))
	v.transforms(c.Transform, path)
}

func (v *validator) unit(u *UnitSpec, path string) {
	if u.Mark.Type == nil && u.Mark.Def == nil {
		v.required(childPath(path, "mark"), "unit view needs a mark")
	}
	v.data(u.Data, childPath(path, "data"))
	v.transforms(u.Transform, path)
}

func (v *validator) data(d *Data, path string) {
	if d == nil {
		return
	}
	n := 0
	if d.Values != nil {
		n++
	}
	if d.URL != nil {
		n++
	}
	// A name alone is a named-data reference; alongside values or a URL it
	// just labels the source.
	if n == 0 && d.Name == nil {
		v.required(path, "data needs one of 'values', 'url', 'name'")
	}
	if n > 1 {
		v.conflict(path, "data sets both 'values' and 'url'")
	}
}

func (v *validator) transforms(ts []Transform, path string) {
	for i, t := range ts {
		p := indexPath(childPath(path, "transform"), i)
		n := 0
		if t.Filter != nil {
			n++
			v.predicate(t.Filter, childPath(p, "filter"))
		}
		for _, set := range []bool{
			t.Calculate != nil, t.Aggregate != nil, t.Bin != nil, t.Fold != nil,
			t.Flatten != nil, t.Impute != nil, t.JoinAggregate != nil,
			t.Lookup != nil, t.Sample != nil, t.Stack != nil,
			t.TimeUnit != nil, t.Window != nil,
		} {
			if set {
				n++
			}
		}
		if n == 0 {
			v.required(p, "transform step has no operation")
		} else if n > 1 {
			v.conflict(p, "transform step sets more than one operation")
		}
	}
}

func (v *validator) predicate(p *Predicate, path string) {
	if p == nil {
		return
	}
	n := 0
	if p.Expr != nil {
		n++
	}
	if p.Not != nil {
		n++
		v.predicate(p.Not, childPath(path, "not"))
	}
	if p.And != nil {
		n++
		for i := range p.And {
			v.predicate(&p.And[i], indexPath(childPath(path, "and"), i))
		}
	}
	if p.Or != nil {
		n++
		for i := range p.Or {
			v.predicate(&p.Or[i], indexPath(childPath(path, "or"), i))
		}
	}
	if p.Selection != nil {
		n++
	}
	if p.Field != nil {
		n++
		v.fieldPredicate(p.Field, path)
	}
	if n == 0 {
		v.required(path, "predicate has no test")
	} else if n > 1 {
		v.conflict(path, "predicate sets more than one test")
	}
}

func (v *validator) fieldPredicate(fp *FieldPredicate, path string) {
	n := 0
	for _, set := range []bool{
		fp.Equal != nil, fp.GT != nil, fp.GTE != nil, fp.LT != nil,
		fp.LTE != nil, fp.OneOf != nil, fp.Range != nil, fp.Valid != nil,
	} {
		if set {
			n++
		}
	}
	if n == 0 {
		v.required(path, "field predicate has no comparison")
	} else if n > 1 {
		v.conflict(path, "field predicate sets more than one comparison")
	}
}
