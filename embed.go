package vegalite

import (
	"bytes"
	"html/template"
	"io"
)

// embedPage wraps a document in a self-contained page that renders it with
// vega-embed from the CDN.
var embedPage = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@3"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@4"></script>
</head>
<body>
  <div id="vis"></div>
  <script type="text/javascript">
    vegaEmbed('#vis', {{.Spec}}).catch(console.error);
  </script>
</body>
</html>
`))

type embedData struct {
	Title string
	Spec  template.JS
}

// WriteHTML renders the document into a standalone HTML page on w. The page
// loads the Vega runtime from the CDN; the document itself is embedded
// inline.
func WriteHTML(w io.Writer, spec *TopLevelSpec) error {
	raw, err := Marshal(spec)
	if err != nil {
		return err
	}
	title := "Visualization"
	if t := specTitle(&spec.Spec); t != "" {
		title = t
	}
	return embedPage.Execute(w, embedData{Title: title, Spec: template.JS(raw)})
}

// HTML renders the document into a standalone HTML page.
func HTML(spec *TopLevelSpec) ([]byte, error) {
	var b bytes.Buffer
	if err := WriteHTML(&b, spec); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func specTitle(s *Spec) string {
	var t *Title
	switch {
	case s.Unit != nil:
		t = s.Unit.Title
	case s.Layer != nil:
		t = s.Layer.Title
	case s.Facet != nil:
		t = s.Facet.Title
	case s.Repeat != nil:
		t = s.Repeat.Title
	case s.Concat != nil:
		t = s.Concat.Title
	case s.VConcat != nil:
		t = s.VConcat.Title
	case s.HConcat != nil:
		t = s.HConcat.Title
	}
	if t == nil {
		return ""
	}
	if t.Text != nil {
		return *t.Text
	}
	if t.Params != nil {
		return t.Params.Text
	}
	return ""
}
