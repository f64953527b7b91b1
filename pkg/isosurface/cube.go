// Package isosurface extracts triangle meshes from the sparse voxel
// tree's signed scalar field: marching cubes (via a tetrahedral
// decomposition of each voxel cube using the Freudenthal/Kuhn
// triangulation rather than a hand-rolled 256-entry case table, since a
// 4-corner tetrahedron's sixteen cases are small enough to reason about
// exhaustively by corner count) and dual contouring (one QEF-solved
// vertex per sign-changing cube, stitched into quads across shared
// lattice edges).
package isosurface

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/voxel"
)

// cubeCorners are the 8 unit-cube corner offsets, ordered so that bit 0
// of the index selects x, bit 1 selects y, bit 2 selects z.
var cubeCorners = [8]voxel.Coord{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}

// cubeTetrahedra is the Freudenthal/Kuhn decomposition of the unit cube
// into 6 tetrahedra, every one sharing the main diagonal from corner 0
// to corner 7.
var cubeTetrahedra = [6][4]int{
	{0, 1, 3, 7},
	{0, 1, 5, 7},
	{0, 2, 3, 7},
	{0, 2, 6, 7},
	{0, 4, 5, 7},
	{0, 4, 6, 7},
}

// cornerSample holds a voxel corner's world position and scalar value.
type cornerSample struct {
	pos   geom.Vec3
	value float64
	ok    bool
}

func sampleCorner(t *voxel.Tree, base voxel.Coord, cornerIdx int) cornerSample {
	off := cubeCorners[cornerIdx]
	c := voxel.Coord{X: base.X + off.X, Y: base.Y + off.Y, Z: base.Z + off.Z}
	v, ok := t.At(c)
	return cornerSample{
		pos:   geom.NewVec3(float64(c.X)*t.VoxelSize, float64(c.Y)*t.VoxelSize, float64(c.Z)*t.VoxelSize),
		value: v,
		ok:    ok,
	}
}

// edgeCrossing linearly interpolates the zero-crossing position between
// two corner samples of opposite sign.
func edgeCrossing(a, b cornerSample) geom.Vec3 {
	denom := a.value - b.value
	if denom == 0 {
		return geom.Scale(geom.Add(a.pos, b.pos), 0.5)
	}
	t := a.value / denom
	return geom.Add(a.pos, geom.Scale(geom.Sub(b.pos, a.pos), t))
}

func inside(v float64) bool { return v < 0 }
