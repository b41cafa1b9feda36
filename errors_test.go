package vegalite_test

import (
	"strings"
	"testing"

	vl "github.com/reoring/vegalite"
)

func TestIssuePathsAreJSONPointers(t *testing.T) {
	_, err := vl.Parse([]byte(`{
		"layer": [
			{"mark": "point"},
			{"mark": "line", "encoding": {"y": {"field": "v", "type": "numeric"}}}
		]
	}`))
	iss, ok := vl.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("issues = %v", err)
	}
	if iss[0].Path != "/layer/1/encoding/y/type" {
		t.Fatalf("path = %s", iss[0].Path)
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	iss := vl.Issues{
		{Path: "/a", Code: vl.CodeRequired},
		{Path: "/b", Code: vl.CodeInvalidType},
		{Path: "/c", Code: vl.CodeInvalidEnum},
		{Path: "/d", Code: vl.CodeConflict},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "required at /a") {
		t.Fatalf("summary = %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary should count the overflow: %q", msg)
	}
	if strings.Contains(msg, "/d") {
		t.Fatalf("summary should cap at three entries: %q", msg)
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := vl.AsIssues(nil); ok {
		t.Fatalf("nil error should not carry issues")
	}
	_, err := vl.Parse([]byte(`{"mark": 7}`))
	iss, ok := vl.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != vl.CodeUnionNoMatch && iss[0].Code != vl.CodeInvalidType {
		t.Fatalf("code = %s", iss[0].Code)
	}
}

func TestHintsNameExpectedShapes(t *testing.T) {
	_, err := vl.Parse([]byte(`{"mark": "point", "encoding": {"x": {"field": "a", "scale": {"domain": {"bad": 1}}}}}`))
	iss, ok := vl.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if !strings.Contains(iss[0].Hint, "unaggregated") {
		t.Fatalf("hint = %q", iss[0].Hint)
	}
}
