package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-component point.
type Vec3 struct {
	X, Y, Z float32
}

// PlaneConfig describes a plane to build. Every field is optional; a nil field
// takes its default when the config is sanitized:
// Center (0,0,0), XSize 1, ZSize 1, XSegments 1, ZSegments 1.
//
// Center is all-or-nothing: a non-nil Center is used as given.
type PlaneConfig struct {
	Center    *Vec3
	XSize     *float32
	ZSize     *float32
	XSegments *float32
	ZSegments *float32
}

// PlaneParams is a sanitized PlaneConfig: sizes are non-negative and segment
// counts are integers >= 1.
type PlaneParams struct {
	Center    Vec3
	XSize     float32
	ZSize     float32
	XSegments int
	ZSegments int
}

// VertexCount returns the number of grid vertices the params produce.
func (p PlaneParams) VertexCount() int {
	return (p.XSegments + 1) * (p.ZSegments + 1)
}

// TriangleCount returns the number of triangles the params produce.
func (p PlaneParams) TriangleCount() int {
	return 2 * p.XSegments * p.ZSegments
}

// Diagnostic records one input value that was corrected during sanitization.
type Diagnostic struct {
	Field string
	Value float32
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s is negative (%g); it was inverted", d.Field, d.Value)
}

const (
	defaultSize     = float32(1)
	defaultSegments = float32(1)
)

// Sanitize applies defaults and corrects invalid input using the default
// builder. See PlaneBuilder.Sanitize.
func Sanitize(cfg PlaneConfig) (PlaneParams, []Diagnostic) {
	return PlaneBuilder{}.Sanitize(cfg)
}

// Sanitize turns cfg into PlaneParams without modifying cfg. Negative sizes
// and segment counts are inverted and reported in the returned diagnostics.
//
// Unless b.IndependentZ is set, the Z segment count is taken from
// cfg.XSegments and cfg.ZSegments is ignored.
func (b PlaneBuilder) Sanitize(cfg PlaneConfig) (PlaneParams, []Diagnostic) {
	var diags []Diagnostic
	p := PlaneParams{}
	if cfg.Center != nil {
		p.Center = *cfg.Center
	}

	p.XSize = sanitizeSize("xSize", cfg.XSize, &diags)
	p.ZSize = sanitizeSize("zSize", cfg.ZSize, &diags)
	p.XSegments = sanitizeSegments("xSegments", cfg.XSegments, &diags)
	if b.IndependentZ {
		p.ZSegments = sanitizeSegments("zSegments", cfg.ZSegments, &diags)
	} else {
		// Derived from xSegments; its correction was already reported.
		p.ZSegments = sanitizeSegments("xSegments", cfg.XSegments, nil)
	}
	return p, diags
}

func sanitizeSize(field string, v *float32, diags *[]Diagnostic) float32 {
	if v == nil {
		return defaultSize
	}
	size := *v
	if size < 0 {
		*diags = append(*diags, Diagnostic{Field: field, Value: size})
		size = math32.Abs(size)
	}
	return size
}

// sanitizeSegments reports into diags when diags is non-nil.
func sanitizeSegments(field string, v *float32, diags *[]Diagnostic) int {
	segs := defaultSegments
	if v != nil && !math32.IsNaN(*v) {
		segs = *v
	}
	if segs < 0 {
		if diags != nil {
			*diags = append(*diags, Diagnostic{Field: field, Value: segs})
		}
		segs = math32.Abs(segs)
	}
	if segs < 1 {
		segs = 1
	}
	n := int(math32.Floor(segs))
	if n == 0 {
		n = 1
	}
	return n
}
