package primitives

// DefaultPlaneDefPath is where the viewer looks for the plane definition,
// relative to the working directory.
const DefaultPlaneDefPath = "assets/primitives/plane.yaml"

// TypePlane is the only primitive type with a generated mesh.
const TypePlane = "plane"

// PrimitiveDef is the YAML definition for a primitive (e.g. assets/primitives/plane.yaml).
// Unset plane fields keep the geometry defaults.
type PrimitiveDef struct {
	Type  string   `yaml:"type"`
	Color string   `yaml:"color,omitempty"`
	Plane PlaneDef `yaml:",inline"`
}

// PlaneDef holds the plane fields of a definition. Field names match
// geometry.PlaneConfig so the definition can be copied onto it.
type PlaneDef struct {
	Origin    []float32 `yaml:"center,flow,omitempty" copier:"-"`
	XSize     *float32  `yaml:"x_size,omitempty"`
	ZSize     *float32  `yaml:"z_size,omitempty"`
	XSegments *float32  `yaml:"x_segments,omitempty"`
	ZSegments *float32  `yaml:"z_segments,omitempty"`
}
