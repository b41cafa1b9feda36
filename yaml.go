package vegalite

import (
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a document written in YAML. The YAML tree is normalized
// to JSON value shapes first (integers widen to float64) so both formats
// share one decode path and report the same issue paths.
func ParseYAML(data []byte) (*TopLevelSpec, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		iss := Issues{{Path: "", Code: CodeParseError, Message: "malformed YAML", Cause: err}}
		return nil, iss
	}
	return ParseAny(normalizeYAML(tree))
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeYAML(e)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
