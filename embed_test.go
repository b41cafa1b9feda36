package vegalite_test

import (
	"bytes"
	"strings"
	"testing"

	vl "github.com/reoring/vegalite"
)

func TestHTMLEmbedsSpec(t *testing.T) {
	spec := vl.NewSpec().
		Title("Fuel economy").
		Mark(vl.MarkPoint).
		Build()
	page, err := vl.HTML(spec)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "<title>Fuel economy</title>") {
		t.Fatalf("missing title: %s", html)
	}
	if !strings.Contains(html, "vega-embed@4") || !strings.Contains(html, "vega-lite@3") {
		t.Fatalf("missing runtime scripts: %s", html)
	}
	if !strings.Contains(html, `"mark":"point"`) {
		t.Fatalf("spec not inlined: %s", html)
	}
}

func TestHTMLDefaultTitle(t *testing.T) {
	page, err := vl.HTML(vl.NewSpec().Mark(vl.MarkBar).Build())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(string(page), "<title>Visualization</title>") {
		t.Fatalf("missing fallback title: %s", page)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := vl.WriteHTML(&buf, vl.NewSpec().Mark(vl.MarkLine).Build()); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Fatalf("not a page: %s", buf.String())
	}
}
