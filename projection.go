package vegalite

// ProjectionType names a cartographic projection.
type ProjectionType string

const (
	ProjAlbers               ProjectionType = "albers"
	ProjAlbersUsa            ProjectionType = "albersUsa"
	ProjAzimuthalEqualArea   ProjectionType = "azimuthalEqualArea"
	ProjAzimuthalEquidistant ProjectionType = "azimuthalEquidistant"
	ProjConicConformal       ProjectionType = "conicConformal"
	ProjConicEqualArea       ProjectionType = "conicEqualArea"
	ProjConicEquidistant     ProjectionType = "conicEquidistant"
	ProjEquirectangular      ProjectionType = "equirectangular"
	ProjGnomonic             ProjectionType = "gnomonic"
	ProjMercator             ProjectionType = "mercator"
	ProjOrthographic         ProjectionType = "orthographic"
	ProjStereographic        ProjectionType = "stereographic"
	ProjTransverseMercator   ProjectionType = "transverseMercator"
)

var projectionTypes = enumSet(
	ProjAlbers, ProjAlbersUsa, ProjAzimuthalEqualArea,
	ProjAzimuthalEquidistant, ProjConicConformal, ProjConicEqualArea,
	ProjConicEquidistant, ProjEquirectangular, ProjGnomonic, ProjMercator,
	ProjOrthographic, ProjStereographic, ProjTransverseMercator,
)

// Projection maps longitude/latitude to x/y.
type Projection struct {
	Center    []float64       `json:"center,omitempty"`
	ClipAngle *float64        `json:"clipAngle,omitempty"`
	Distance  *float64        `json:"distance,omitempty"`
	Fraction  *float64        `json:"fraction,omitempty"`
	Lobes     *float64        `json:"lobes,omitempty"`
	Parallel  *float64        `json:"parallel,omitempty"`
	Precision *float64        `json:"precision,omitempty"`
	Radius    *float64        `json:"radius,omitempty"`
	Ratio     *float64        `json:"ratio,omitempty"`
	Rotate    []float64       `json:"rotate,omitempty"`
	Scale     *float64        `json:"scale,omitempty"`
	Spacing   *float64        `json:"spacing,omitempty"`
	Tilt      *float64        `json:"tilt,omitempty"`
	Translate []float64       `json:"translate,omitempty"`
	Type      *ProjectionType `json:"type,omitempty"`
}

func (d *decoder) projection(v any, path string) *Projection {
	m := d.obj(v, path)
	if m == nil {
		return nil
	}
	pr := &Projection{}
	if x, ok := m["center"]; ok {
		pr.Center = d.numSlice(x, childPath(path, "center"))
	}
	if x, ok := m["clipAngle"]; ok {
		pr.ClipAngle = d.num(x, childPath(path, "clipAngle"))
	}
	if x, ok := m["distance"]; ok {
		pr.Distance = d.num(x, childPath(path, "distance"))
	}
	if x, ok := m["fraction"]; ok {
		pr.Fraction = d.num(x, childPath(path, "fraction"))
	}
	if x, ok := m["lobes"]; ok {
		pr.Lobes = d.num(x, childPath(path, "lobes"))
	}
	if x, ok := m["parallel"]; ok {
		pr.Parallel = d.num(x, childPath(path, "parallel"))
	}
	if x, ok := m["precision"]; ok {
		pr.Precision = d.num(x, childPath(path, "precision"))
	}
	if x, ok := m["radius"]; ok {
		pr.Radius = d.num(x, childPath(path, "radius"))
	}
	if x, ok := m["ratio"]; ok {
		pr.Ratio = d.num(x, childPath(path, "ratio"))
	}
	if x, ok := m["rotate"]; ok {
		pr.Rotate = d.numSlice(x, childPath(path, "rotate"))
	}
	if x, ok := m["scale"]; ok {
		pr.Scale = d.num(x, childPath(path, "scale"))
	}
	if x, ok := m["spacing"]; ok {
		pr.Spacing = d.num(x, childPath(path, "spacing"))
	}
	if x, ok := m["tilt"]; ok {
		pr.Tilt = d.num(x, childPath(path, "tilt"))
	}
	if x, ok := m["translate"]; ok {
		pr.Translate = d.numSlice(x, childPath(path, "translate"))
	}
	if x, ok := m["type"]; ok {
		pr.Type = enumOf(d, x, childPath(path, "type"), "projection type", projectionTypes)
	}
	return pr
}
