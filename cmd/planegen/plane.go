package main

import (
	"flag"
	"fmt"
	"strconv"

	"plane-geometry/internal/geometry"
	"plane-geometry/internal/primitives"
)

// optFloat is a float flag that records whether it was set.
type optFloat struct{ v *float32 }

func (f *optFloat) String() string {
	if f.v == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*f.v), 'g', -1, 32)
}

func (f *optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	x := float32(v)
	f.v = &x
	return nil
}

// planeFlags are shared by every subcommand that builds a plane.
type planeFlags struct {
	def          string
	xSize        optFloat
	zSize        optFloat
	xSegments    optFloat
	zSegments    optFloat
	independentZ bool
	strict       bool
}

func (p *planeFlags) register(fs *flag.FlagSet, defPath string) {
	fs.StringVar(&p.def, "def", defPath, "plane definition YAML")
	fs.Var(&p.xSize, "xsize", "extent along X")
	fs.Var(&p.zSize, "zsize", "extent along Z")
	fs.Var(&p.xSegments, "xsegs", "segments along X")
	fs.Var(&p.zSegments, "zsegs", "segments along Z (used with -independent-z)")
	fs.BoolVar(&p.independentZ, "independent-z", false, "take Z segments from -zsegs instead of -xsegs")
	fs.BoolVar(&p.strict, "strict", false, "reject negative input instead of inverting it")
}

func (p *planeFlags) builder() geometry.PlaneBuilder {
	return geometry.PlaneBuilder{Strict: p.strict, IndependentZ: p.independentZ}
}

// load reads the definition (if any) and applies flag overrides.
// requireDef makes a missing definition file an error.
func (p *planeFlags) load(requireDef bool) (primitives.PrimitiveDef, geometry.PlaneConfig, error) {
	def := primitives.DefaultPlaneDef()
	if p.def != "" {
		d, found, err := primitives.LoadDef(p.def)
		if err != nil {
			return def, geometry.PlaneConfig{}, err
		}
		if !found && requireDef {
			return def, geometry.PlaneConfig{}, fmt.Errorf("plane definition %s not found", p.def)
		}
		def = d
	}
	cfg, err := def.PlaneConfig()
	if err != nil {
		return def, geometry.PlaneConfig{}, err
	}
	if p.xSize.v != nil {
		cfg.XSize = p.xSize.v
	}
	if p.zSize.v != nil {
		cfg.ZSize = p.zSize.v
	}
	if p.xSegments.v != nil {
		cfg.XSegments = p.xSegments.v
	}
	if p.zSegments.v != nil {
		cfg.ZSegments = p.zSegments.v
	}
	return def, cfg, nil
}
