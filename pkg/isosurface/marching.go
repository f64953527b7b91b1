package isosurface

import (
	"github.com/chazu/lignin-geo/internal/xlog"
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/voxel"
)

// MarchingCubes extracts a triangle-soup mesh from t's zero level set,
// sequentially over every lattice cube with a fully-sampled corner set.
// Each cube is classified by corner sign and triangulated; the
// classification is done per tetrahedron of the cube's Freudenthal
// decomposition rather than via a 256-case cube table.
func MarchingCubes(t *voxel.Tree) (*mesh.Mesh, error) {
	tris := marchingCubesSoup(t, voxel.ForEachLeafOrigin(t))
	m, err := mesh.FromVertices(tris)
	if err == nil {
		xlog.Printf("isosurface: marching cubes emitted %d triangle(s), merged into %d vertex(es)", len(tris)/3, m.VertexCount())
	}
	return m, err
}

// MarchingCubesPar extracts the same surface, partitioning work across
// leaf nodes and merging the resulting triangle soups. Coincident vertex
// welding happens once, after all workers finish, inside
// mesh.FromVertices.
func MarchingCubesPar(t *voxel.Tree, workers int) (*mesh.Mesh, error) {
	origins := voxel.ForEachLeafOrigin(t)
	if workers < 1 {
		workers = 1
	}

	type job struct {
		origins []voxel.Coord
	}
	results := make([][]geom.Vec3, workers)
	jobs := make([]job, workers)
	for i, o := range origins {
		jobs[i%workers].origins = append(jobs[i%workers].origins, o)
	}

	done := make(chan int, workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			results[w] = marchingCubesSoup(t, jobs[w].origins)
			done <- w
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	var all []geom.Vec3
	leaves := 0
	for _, r := range results {
		all = append(all, r...)
	}
	for _, j := range jobs {
		leaves += len(j.origins)
	}
	m, err := mesh.FromVertices(all)
	if err == nil {
		xlog.Printf("isosurface: parallel marching cubes merged %d leaf(es) across %d worker(s) into %d vertex(es)", leaves, workers, m.VertexCount())
	}
	return m, err
}

// marchingCubesSoup walks every unit cube whose base corner lies in
// origins' leaves (span leafSpan per leaf) and emits a triangle soup.
func marchingCubesSoup(t *voxel.Tree, origins []voxel.Coord) []geom.Vec3 {
	var soup []geom.Vec3
	span := voxel.LeafSpan()
	for _, origin := range origins {
		for x := int32(0); x < span; x++ {
			for y := int32(0); y < span; y++ {
				for z := int32(0); z < span; z++ {
					base := voxel.Coord{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z}
					soup = append(soup, marchCube(t, base)...)
				}
			}
		}
	}
	return soup
}

// marchCube triangulates a single unit cube via its 6-tetrahedron
// Freudenthal decomposition.
func marchCube(t *voxel.Tree, base voxel.Coord) []geom.Vec3 {
	var samples [8]cornerSample
	for i := 0; i < 8; i++ {
		samples[i] = sampleCorner(t, base, i)
		if !samples[i].ok {
			return nil
		}
	}

	var tris []geom.Vec3
	for _, tet := range cubeTetrahedra {
		tris = append(tris, marchTetrahedron(samples[tet[0]], samples[tet[1]], samples[tet[2]], samples[tet[3]])...)
	}
	return tris
}

// marchTetrahedron classifies a, b, c, d by inside/outside and emits
// the separating triangle(s), oriented so each triangle's normal points
// toward increasing scalar value (outside).
func marchTetrahedron(a, b, c, d cornerSample) []geom.Vec3 {
	s := [4]cornerSample{a, b, c, d}
	var insideIdx, outsideIdx []int
	for i, v := range s {
		if inside(v.value) {
			insideIdx = append(insideIdx, i)
		} else {
			outsideIdx = append(outsideIdx, i)
		}
	}

	switch len(insideIdx) {
	case 0, 4:
		return nil
	case 1, 3:
		var lone int
		var rest []int
		if len(insideIdx) == 1 {
			lone, rest = insideIdx[0], outsideIdx
		} else {
			lone, rest = outsideIdx[0], insideIdx
		}
		p0 := edgeCrossing(s[lone], s[rest[0]])
		p1 := edgeCrossing(s[lone], s[rest[1]])
		p2 := edgeCrossing(s[lone], s[rest[2]])
		restCentroid := geom.Scale(geom.Add(geom.Add(s[rest[0]].pos, s[rest[1]].pos), s[rest[2]].pos), 1.0/3.0)
		var dirToOutside geom.Vec3
		if inside(s[lone].value) {
			dirToOutside = geom.Sub(restCentroid, s[lone].pos)
		} else {
			dirToOutside = geom.Sub(s[lone].pos, restCentroid)
		}
		return orientTriangle(p0, p1, p2, dirToOutside)
	case 2:
		i0, i1 := insideIdx[0], insideIdx[1]
		o0, o1 := outsideIdx[0], outsideIdx[1]
		q00 := edgeCrossing(s[i0], s[o0])
		q01 := edgeCrossing(s[i0], s[o1])
		q10 := edgeCrossing(s[i1], s[o0])
		q11 := edgeCrossing(s[i1], s[o1])
		insideCentroid := geom.Scale(geom.Add(s[i0].pos, s[i1].pos), 0.5)
		outsideCentroid := geom.Scale(geom.Add(s[o0].pos, s[o1].pos), 0.5)
		dirToOutside := geom.Sub(outsideCentroid, insideCentroid)
		tris := orientTriangle(q00, q01, q11, dirToOutside)
		tris = append(tris, orientTriangle(q00, q11, q10, dirToOutside)...)
		return tris
	}
	return nil
}

// orientTriangle returns p0,p1,p2 in an order whose normal points along
// dirToOutside, flipping winding if the natural cross product faces the
// other way.
func orientTriangle(p0, p1, p2 geom.Vec3, dirToOutside geom.Vec3) []geom.Vec3 {
	n := geom.Cross(geom.Sub(p1, p0), geom.Sub(p2, p0))
	if geom.Dot(n, dirToOutside) < 0 {
		p1, p2 = p2, p1
	}
	return []geom.Vec3{p0, p1, p2}
}
