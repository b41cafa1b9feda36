// Package vegalite is the in-memory model and wire contract for Vega-Lite v3
// specifications:
//
// - A tagged model for the recursive spec family (unit/layer/facet/repeat/concat)
// - Ordered structural decoding of the grammar's untagged JSON unions
// - A stable error model via Issues (JSON Pointer, code, message)
// - Chainable builders with absent-by-default fields and wire-exact omission
//
// Design policy:
// - Keep the whole public surface in the root package; i18n messages live in i18n/.
// - The decoder works over a plain any tree so JSON and YAML inputs share one path.
// - Decoding is all-or-nothing: a document either becomes a *TopLevelSpec or Issues.
// - The module never renders, loads data, or evaluates expressions; it only
//   carries the description (data URLs, filter expressions) for collaborators.
//
// Typical usage:
//
//	spec, err := vegalite.Parse(data)
//	out, err := vegalite.Marshal(spec)
//
//	built := vegalite.NewSpec().
//		Data(vegalite.NewData().URL("cars.json").Build()).
//		Mark(vegalite.MarkPoint).
//		Encoding(vegalite.NewEncoding().
//			X(vegalite.NewField("Horsepower").Quantitative().Position()).
//			Y(vegalite.NewField("Miles_per_Gallon").Quantitative().Position()).
//			Build()).
//		Build()
package vegalite
