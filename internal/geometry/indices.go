package geometry

import "golang.org/x/exp/constraints"

// MaxNarrowVertices is the largest vertex count that still uses 16-bit index storage.
const MaxNarrowVertices = 65535

// Indices is a sequence of triangle vertex indices, three per triangle.
// Storage is 16-bit when the mesh has at most MaxNarrowVertices vertices and
// 32-bit otherwise; the values are the same either way.
type Indices struct {
	narrow []uint16
	wide   []uint32
}

// Len returns the number of indices.
func (ix Indices) Len() int {
	if ix.wide != nil {
		return len(ix.wide)
	}
	return len(ix.narrow)
}

// At returns the i-th index.
func (ix Indices) At(i int) uint32 {
	if ix.wide != nil {
		return ix.wide[i]
	}
	return uint32(ix.narrow[i])
}

// Wide reports whether the indices are stored as uint32.
func (ix Indices) Wide() bool { return ix.wide != nil }

// Uint16 returns the 16-bit backing slice. ok is false for wide storage.
// The slice is shared with ix.
func (ix Indices) Uint16() (s []uint16, ok bool) {
	if ix.wide != nil {
		return nil, false
	}
	return ix.narrow, true
}

// Uint32 returns a copy of the indices widened to uint32.
func (ix Indices) Uint32() []uint32 {
	out := make([]uint32, ix.Len())
	if ix.wide != nil {
		copy(out, ix.wide)
		return out
	}
	for i, v := range ix.narrow {
		out[i] = uint32(v)
	}
	return out
}

// gridIndices triangulates an xs by zs segment grid, choosing storage width
// from the vertex count.
func gridIndices(xs, zs int) Indices {
	if (xs+1)*(zs+1) > MaxNarrowVertices {
		return Indices{wide: triangulate[uint32](xs, zs)}
	}
	return Indices{narrow: triangulate[uint16](xs, zs)}
}

// triangulate emits two triangles per cell, row by row:
// (d, b, a) and (d, c, b) where a and d lie on row iz and b and c on row iz+1.
func triangulate[T constraints.Unsigned](xs, zs int) []T {
	row := xs + 1
	out := make([]T, 0, 6*xs*zs)
	for iz := 0; iz < zs; iz++ {
		for ix := 0; ix < xs; ix++ {
			a := T(ix + row*iz)
			b := T(ix + row*(iz+1))
			c := T((ix + 1) + row*(iz+1))
			d := T((ix + 1) + row*iz)
			out = append(out, d, b, a, d, c, b)
		}
	}
	return out
}
