package isosurface

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/voxel"
)

// farEdgeAxis names the single axis two cube corners differ on, for the
// 3 edges emanating from the cube's maximal corner (index 7): toggling x
// (corners 6,7), toggling y (corners 5,7), toggling z (corners 3,7).
type farEdgeAxis struct {
	a, b     int            // corner indices of the edge
	neighbor [3]voxel.Coord // the 3 other cubes sharing this lattice edge
}

var dualFarEdges = [3]farEdgeAxis{
	{a: 6, b: 7, neighbor: [3]voxel.Coord{{Y: 1}, {Z: 1}, {Y: 1, Z: 1}}},
	{a: 5, b: 7, neighbor: [3]voxel.Coord{{X: 1}, {Z: 1}, {X: 1, Z: 1}}},
	{a: 3, b: 7, neighbor: [3]voxel.Coord{{X: 1}, {Y: 1}, {X: 1, Y: 1}}},
}

// cubeEdges lists all 12 edges of the cube as corner-index pairs.
var cubeEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// CenterPush is the weak regularization weight pulling an ill-conditioned
// QEF solve toward the cube center.
const CenterPush = 0.05

// DualContouring extracts a triangle mesh from t's zero level set via
// one interior vertex per sign-changing cube, connected into quads
// across shared lattice edges.
func DualContouring(t *voxel.Tree) (*mesh.Mesh, error) {
	origins := voxel.ForEachLeafOrigin(t)
	span := voxel.LeafSpan()

	dual := make(map[voxel.Coord]geom.Vec3)
	for _, origin := range origins {
		for x := int32(0); x < span; x++ {
			for y := int32(0); y < span; y++ {
				for z := int32(0); z < span; z++ {
					base := voxel.Coord{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z}
					if v, ok := placeDualVertex(t, base); ok {
						dual[base] = v
					}
				}
			}
		}
	}

	var soup []geom.Vec3
	for base := range dual {
		samples := cornersOf(t, base)
		if samples == nil {
			continue
		}
		for _, fe := range dualFarEdges {
			if inside(samples[fe.a].value) == inside(samples[fe.b].value) {
				continue // not crossing
			}
			n0, ok0 := dual[base.Add(fe.neighbor[0])]
			n1, ok1 := dual[base.Add(fe.neighbor[1])]
			n2, ok2 := dual[base.Add(fe.neighbor[2])]
			if !ok0 || !ok1 || !ok2 {
				continue
			}
			k0 := dual[base]
			dirToOutside := geom.Sub(samples[fe.b].pos, samples[fe.a].pos)
			if inside(samples[fe.b].value) {
				dirToOutside = geom.Scale(dirToOutside, -1)
			}
			soup = append(soup, orientTriangle(k0, n0, n2, dirToOutside)...)
			soup = append(soup, orientTriangle(k0, n2, n1, dirToOutside)...)
		}
	}

	return mesh.FromVertices(soup)
}

func cornersOf(t *voxel.Tree, base voxel.Coord) []cornerSample {
	samples := make([]cornerSample, 8)
	for i := 0; i < 8; i++ {
		samples[i] = sampleCorner(t, base, i)
		if !samples[i].ok {
			return nil
		}
	}
	return samples
}

// placeDualVertex solves the QEF for base's cube if any of its 12 edges
// cross the zero level, returning ok=false otherwise.
func placeDualVertex(t *voxel.Tree, base voxel.Coord) (geom.Vec3, bool) {
	samples := cornersOf(t, base)
	if samples == nil {
		return geom.Vec3{}, false
	}

	crossing := false
	for _, e := range cubeEdges {
		if inside(samples[e[0]].value) != inside(samples[e[1]].value) {
			crossing = true
			break
		}
	}
	if !crossing {
		return geom.Vec3{}, false
	}

	var normals []geom.Vec3
	var planeD []float64
	for _, e := range cubeEdges {
		a, b := samples[e[0]], samples[e[1]]
		if inside(a.value) == inside(b.value) {
			continue
		}
		p := edgeCrossing(a, b)
		n := gradientAt(t, p, t.VoxelSize)
		if n == (geom.Vec3{}) {
			continue
		}
		normals = append(normals, n)
		planeD = append(planeD, geom.Dot(n, p))
	}

	center := geom.Scale(geom.Add(samples[0].pos, samples[7].pos), 0.5)
	for _, axis := range []geom.Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		n := geom.Scale(axis, CenterPush)
		normals = append(normals, n)
		planeD = append(planeD, geom.Dot(n, center))
	}

	v, ok := solveQEF(normals, planeD)
	if !ok {
		return center, true
	}
	return v, true
}

// gradientAt estimates the scalar field gradient near p via central
// differences of the tree's lattice values, falling back to the zero
// vector where neighbours are outside the narrow band.
func gradientAt(t *voxel.Tree, p geom.Vec3, h float64) geom.Vec3 {
	x := int32(p.X/h + 0.5)
	y := int32(p.Y/h + 0.5)
	z := int32(p.Z/h + 0.5)
	c := voxel.Coord{X: x, Y: y, Z: z}

	gx, okx := centralDiff(t, c, voxel.Coord{X: 1})
	gy, oky := centralDiff(t, c, voxel.Coord{Y: 1})
	gz, okz := centralDiff(t, c, voxel.Coord{Z: 1})
	if !okx || !oky || !okz {
		return geom.Vec3{}
	}
	n := geom.NewVec3(gx, gy, gz)
	if geom.Length(n) == 0 {
		return geom.Vec3{}
	}
	return geom.Normalize(n)
}

func centralDiff(t *voxel.Tree, c, axis voxel.Coord) (float64, bool) {
	plus := voxel.Coord{X: c.X + axis.X, Y: c.Y + axis.Y, Z: c.Z + axis.Z}
	minus := voxel.Coord{X: c.X - axis.X, Y: c.Y - axis.Y, Z: c.Z - axis.Z}
	vp, okp := t.At(plus)
	vm, okm := t.At(minus)
	if !okp || !okm {
		return 0, false
	}
	return (vp - vm) / 2, true
}

// solveQEF minimizes sum((n_i . x - d_i)^2) via the normal equations,
// solved with Cramer's rule on the resulting 3x3 system.
func solveQEF(normals []geom.Vec3, d []float64) (geom.Vec3, bool) {
	var ata [3][3]float64
	var atb [3]float64
	for i, n := range normals {
		row := [3]float64{n.X, n.Y, n.Z}
		for r := 0; r < 3; r++ {
			atb[r] += row[r] * d[i]
			for c := 0; c < 3; c++ {
				ata[r][c] += row[r] * row[c]
			}
		}
	}

	det := det3(ata)
	if det == 0 {
		return geom.Vec3{}, false
	}
	var x [3]float64
	for col := 0; col < 3; col++ {
		m := ata
		for r := 0; r < 3; r++ {
			m[r][col] = atb[r]
		}
		x[col] = det3(m) / det
	}
	return geom.NewVec3(x[0], x[1], x[2]), true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
