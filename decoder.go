package vegalite

import (
	"strconv"

	"github.com/reoring/vegalite/i18n"
)

// decoder accumulates Issues while walking a decoded any tree (the output of
// go-json or yaml.v3 after normalization). Helpers record an issue and return
// the zero value so a single pass can report every problem in the document;
// callers never see a partial result because parse entry points check err()
// before returning.
type decoder struct {
	iss Issues
}

func (d *decoder) fail(path, code, hint string) {
	d.iss = AppendIssues(d.iss, Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint})
}

func (d *decoder) err() error {
	if len(d.iss) > 0 {
		return d.iss
	}
	return nil
}

func childPath(p, key string) string { return p + "/" + key }

func indexPath(p string, i int) string { return p + "/" + strconv.Itoa(i) }

// ---- failing extractors ----

func (d *decoder) obj(v any, path string) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(path, CodeInvalidType, "expected object")
		return nil
	}
	return m
}

func (d *decoder) arr(v any, path string) []any {
	a, ok := v.([]any)
	if !ok {
		d.fail(path, CodeInvalidType, "expected array")
		return nil
	}
	return a
}

func (d *decoder) str(v any, path string) *string {
	s, ok := v.(string)
	if !ok {
		d.fail(path, CodeInvalidType, "expected string")
		return nil
	}
	return &s
}

func (d *decoder) num(v any, path string) *float64 {
	f, ok := v.(float64)
	if !ok {
		d.fail(path, CodeInvalidType, "expected number")
		return nil
	}
	return &f
}

func (d *decoder) boolean(v any, path string) *bool {
	b, ok := v.(bool)
	if !ok {
		d.fail(path, CodeInvalidType, "expected boolean")
		return nil
	}
	return &b
}

func (d *decoder) strSlice(v any, path string) []string {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a))
	for i, e := range a {
		if s := d.str(e, indexPath(path, i)); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func (d *decoder) numSlice(v any, path string) []float64 {
	a := d.arr(v, path)
	if a == nil {
		return nil
	}
	out := make([]float64, 0, len(a))
	for i, e := range a {
		if f := d.num(e, indexPath(path, i)); f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// ---- non-failing peeks used by union trial decoding ----

func strVal(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func numVal(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func boolVal(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func objVal(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func arrVal(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

func hasKey(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// ---- enums ----

func enumSet[T ~string](vals ...T) map[T]bool {
	m := make(map[T]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

// enumOf decodes a closed string enumeration. Unknown members fail the whole
// document; closed vocabularies are part of the wire contract.
func enumOf[T ~string](d *decoder, v any, path, name string, valid map[T]bool) *T {
	s, ok := v.(string)
	if !ok {
		d.fail(path, CodeInvalidType, "expected string ("+name+")")
		return nil
	}
	t := T(s)
	if !valid[t] {
		d.fail(path, CodeInvalidEnum, name+": '"+s+"'")
		return nil
	}
	return &t
}

// enumMember reports whether s names a member of the set without recording an
// issue; union trials use it before committing to the enum variant.
func enumMember[T ~string](s string, valid map[T]bool) (T, bool) {
	t := T(s)
	return t, valid[t]
}
