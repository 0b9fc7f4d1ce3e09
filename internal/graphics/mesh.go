package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"plane-geometry/internal/geometry"
)

// Mesh is an rl.Mesh whose vertex arrays live in Go memory. The slices are
// kept here so they stay reachable while raylib holds pointers to them.
type Mesh struct {
	rl.Mesh
	positions []float32
	normals   []float32
	texcoords []float32
	indices   []uint16
	uploaded  bool
}

// NewMesh wraps g for raylib. raylib indexes with uint16, so geometry with
// wide indices is expanded to unindexed triangles first.
func NewMesh(g *geometry.Geometry) *Mesh {
	if g.Indices.Wide() {
		g = g.Unindexed()
	}
	m := &Mesh{
		positions: g.Positions,
		normals:   g.Normals,
		texcoords: g.UVs,
	}
	m.VertexCount = int32(g.VertexCount())
	m.TriangleCount = int32(g.TriangleCount())
	if len(m.positions) > 0 {
		m.Vertices = &m.positions[0]
		m.Normals = &m.normals[0]
		m.Texcoords = &m.texcoords[0]
	}
	if idx, ok := g.Indices.Uint16(); ok && len(idx) > 0 {
		m.indices = idx
		m.Indices = &m.indices[0]
	}
	return m
}

// Indexed reports whether the mesh draws through an index buffer.
func (m *Mesh) Indexed() bool { return m.indices != nil }

// Upload sends the vertex arrays to the GPU. Needs a window/GL context.
func (m *Mesh) Upload() {
	if m.uploaded || m.VertexCount == 0 {
		return
	}
	rl.UploadMesh(&m.Mesh, false)
	m.uploaded = true
}

// Unload releases GPU buffers. The CPU pointers are cleared first because
// raylib would otherwise free Go-owned memory.
func (m *Mesh) Unload() {
	if !m.uploaded {
		return
	}
	m.Vertices = nil
	m.Normals = nil
	m.Texcoords = nil
	m.Indices = nil
	rl.UnloadMesh(&m.Mesh)
	m.uploaded = false
}
