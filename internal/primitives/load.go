package primitives

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"plane-geometry/internal/geometry"
)

// defaultColor is the albedo tint when a definition has no color.
var defaultColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// DefaultPlaneDef returns a plane definition with every geometry field unset.
func DefaultPlaneDef() PrimitiveDef {
	return PrimitiveDef{Type: TypePlane}
}

// LoadDef reads a primitive definition from path. A missing file is not an
// error: DefaultPlaneDef is returned with found set to false.
func LoadDef(path string) (def PrimitiveDef, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPlaneDef(), false, nil
		}
		return PrimitiveDef{}, false, err
	}
	def, err = ParseDef(data)
	if err != nil {
		return PrimitiveDef{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return def, true, nil
}

// ParseDef decodes a YAML primitive definition. An empty type means plane.
func ParseDef(data []byte) (PrimitiveDef, error) {
	var def PrimitiveDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return PrimitiveDef{}, fmt.Errorf("parse primitive: %w", err)
	}
	if def.Type == "" {
		def.Type = TypePlane
	}
	if def.Type != TypePlane {
		return PrimitiveDef{}, fmt.Errorf("unsupported primitive type %q", def.Type)
	}
	if n := len(def.Plane.Origin); n != 0 && n != 3 {
		return PrimitiveDef{}, fmt.Errorf("center needs 3 components, got %d", n)
	}
	return def, nil
}

// PlaneConfig copies the definition onto a geometry.PlaneConfig. The
// returned config does not share memory with d.
func (d PrimitiveDef) PlaneConfig() (geometry.PlaneConfig, error) {
	var cfg geometry.PlaneConfig
	if err := copier.CopyWithOption(&cfg, &d.Plane, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return geometry.PlaneConfig{}, fmt.Errorf("copy plane def: %w", err)
	}
	if o := d.Plane.Origin; len(o) == 3 {
		cfg.Center = &geometry.Vec3{X: o[0], Y: o[1], Z: o[2]}
	}
	return cfg, nil
}

// RGBA parses Color as "#rrggbb" or "#rrggbbaa". Empty means mid grey.
func (d PrimitiveDef) RGBA() (color.RGBA, error) {
	if d.Color == "" {
		return defaultColor, nil
	}
	c := color.RGBA{A: 255}
	var n int
	var err error
	switch len(d.Color) {
	case 7:
		n, err = fmt.Sscanf(d.Color, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 9:
		n, err = fmt.Sscanf(d.Color, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", d.Color)
	}
	if err != nil || n < 3 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", d.Color)
	}
	return c, nil
}
