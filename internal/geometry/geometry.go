package geometry

// PrimitiveType is the rendering topology of a Geometry.
type PrimitiveType string

// Triangles means Indices (or, when there are none, consecutive vertices)
// form triangles three at a time.
const Triangles PrimitiveType = "triangles"

// Geometry holds flat vertex attribute arrays ready for upload.
//
// Positions and Normals carry 3 floats per vertex, UVs 2 floats per vertex.
type Geometry struct {
	PrimitiveType PrimitiveType
	Positions     []float32
	Normals       []float32
	UVs           []float32
	Indices       Indices
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles, counting consecutive
// vertex triples when the geometry has no indices.
func (g *Geometry) TriangleCount() int {
	if n := g.Indices.Len(); n > 0 {
		return n / 3
	}
	return g.VertexCount() / 3
}

// Triangle returns the vertex indices of the i-th triangle.
func (g *Geometry) Triangle(i int) [3]uint32 {
	if g.Indices.Len() == 0 {
		base := uint32(3 * i)
		return [3]uint32{base, base + 1, base + 2}
	}
	return [3]uint32{g.Indices.At(3 * i), g.Indices.At(3*i + 1), g.Indices.At(3*i + 2)}
}

// Unindexed returns a copy of g with every indexed triangle expanded into
// three consecutive vertices and no indices. Used for consumers limited to
// 16-bit indices.
func (g *Geometry) Unindexed() *Geometry {
	n := g.Indices.Len()
	if n == 0 {
		out := &Geometry{PrimitiveType: g.PrimitiveType}
		out.Positions = append([]float32(nil), g.Positions...)
		out.Normals = append([]float32(nil), g.Normals...)
		out.UVs = append([]float32(nil), g.UVs...)
		return out
	}
	out := &Geometry{
		PrimitiveType: g.PrimitiveType,
		Positions:     make([]float32, 0, 3*n),
		Normals:       make([]float32, 0, 3*n),
		UVs:           make([]float32, 0, 2*n),
	}
	for i := 0; i < n; i++ {
		v := int(g.Indices.At(i))
		out.Positions = append(out.Positions, g.Positions[3*v:3*v+3]...)
		out.Normals = append(out.Normals, g.Normals[3*v:3*v+3]...)
		out.UVs = append(out.UVs, g.UVs[2*v:2*v+2]...)
	}
	return out
}
