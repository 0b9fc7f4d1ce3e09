package graphics

import (
	"testing"

	"plane-geometry/internal/geometry"
)

func segs(v float32) *float32 { return &v }

func TestNewMeshIndexed(t *testing.T) {
	g := geometry.Plane(geometry.PlaneConfig{XSegments: segs(3)})
	m := NewMesh(g)

	if !m.Indexed() {
		t.Fatal("16-bit geometry should stay indexed")
	}
	if m.VertexCount != 16 || m.TriangleCount != 18 {
		t.Errorf("counts = %d/%d, want 16/18", m.VertexCount, m.TriangleCount)
	}
	if m.Vertices != &g.Positions[0] {
		t.Error("Vertices should point at the geometry positions")
	}
	if *m.Indices != 1 {
		t.Errorf("first index = %d, want 1", *m.Indices)
	}
}

func TestNewMeshWideIsUnindexed(t *testing.T) {
	g := geometry.Plane(geometry.PlaneConfig{XSegments: segs(256)})
	m := NewMesh(g)

	if m.Indexed() {
		t.Fatal("wide geometry should be drawn unindexed")
	}
	if got, want := int(m.VertexCount), 3*g.TriangleCount(); got != want {
		t.Errorf("VertexCount = %d, want %d", got, want)
	}
	if int(m.TriangleCount) != g.TriangleCount() {
		t.Errorf("TriangleCount = %d, want %d", m.TriangleCount, g.TriangleCount())
	}
}

func TestUnloadWithoutUploadIsNoop(t *testing.T) {
	m := NewMesh(geometry.Plane(geometry.PlaneConfig{}))
	m.Unload()
	if m.Vertices == nil {
		t.Error("Unload before Upload should keep CPU pointers")
	}
}
