package geometry

// PlaneBuilder builds tessellated X-Z planes. The zero value corrects
// negative input and reproduces the xSegments-for-both-axes grid.
type PlaneBuilder struct {
	// Strict rejects negative sizes or segment counts with an *InputError
	// instead of inverting them.
	Strict bool
	// IndependentZ reads the Z segment count from ZSegments. When false the
	// Z axis uses the XSegments value.
	IndependentZ bool
}

// Plane builds cfg with the zero PlaneBuilder. It never fails.
func Plane(cfg PlaneConfig) *Geometry {
	g, _ := PlaneBuilder{}.Build(cfg)
	return g
}

// Build sanitizes cfg and generates the plane. Corrections are logged at warn
// level through Logger. Only a strict builder returns an error.
func (b PlaneBuilder) Build(cfg PlaneConfig) (*Geometry, error) {
	p, diags := b.Sanitize(cfg)
	if b.Strict && len(diags) > 0 {
		return nil, &InputError{Field: diags[0].Field, Value: diags[0].Value}
	}
	log := Logger()
	for _, d := range diags {
		log.Warn("plane input corrected", "field", d.Field, "value", d.Value, "detail", d.String())
	}
	return BuildParams(p), nil
}

// BuildParams generates the plane for already sanitized params.
//
// The grid lies at height Center.Y with (xs+1) columns and (zs+1) rows.
// Local Z is negated so row 0 is the +Z edge. Every normal is (0,0,-1).
func BuildParams(p PlaneParams) *Geometry {
	xs, zs := p.XSegments, p.ZSegments
	n := p.VertexCount()
	g := &Geometry{
		PrimitiveType: Triangles,
		Positions:     make([]float32, 0, 3*n),
		Normals:       make([]float32, 0, 3*n),
		UVs:           make([]float32, 0, 2*n),
	}

	segW := p.XSize / float32(xs)
	segH := p.ZSize / float32(zs)
	halfX := p.XSize / 2
	halfZ := p.ZSize / 2

	for iz := 0; iz <= zs; iz++ {
		z := float32(iz)*segH - halfZ
		for ix := 0; ix <= xs; ix++ {
			x := float32(ix)*segW - halfX
			g.Positions = append(g.Positions, x+p.Center.X, p.Center.Y, -z+p.Center.Z)
			g.Normals = append(g.Normals, 0, 0, -1)
			g.UVs = append(g.UVs, float32(ix)/float32(xs), float32(zs-iz)/float32(zs))
		}
	}

	g.Indices = gridIndices(xs, zs)
	return g
}
