package remesh

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// TangentialRelax moves every interior vertex to the projection of its
// 1-ring centroid onto the vertex's tangent plane, bounded to a
// displacement of at most maxStep. The vertex normal is the
// umbrella-operator normal (sum of cross products of consecutive
// 1-ring edge vectors), not a face-attribute lookup, since the corner
// table carries no persistent per-vertex normal.
func TangentialRelax(m *mesh.Mesh, maxStep float64) int {
	moved := 0
	n := m.RawVertexCount()
	// Snapshot target positions before mutating any of them: relaxing
	// one vertex must not perturb the 1-ring centroid seen by its
	// neighbours within the same pass.
	targets := make([]geom.Vec3, n)
	apply := make([]bool, n)

	for i := 0; i < n; i++ {
		v := mesh.VertexId(i)
		if m.VertexDeleted(v) || isBoundaryVertex(m, v) {
			continue
		}
		c := m.VertexCorner(v)
		if c == mesh.NilCorner {
			continue
		}
		ring := mesh.OneRing(m, c)
		if len(ring) < 3 {
			continue
		}

		pv := m.Position(v)
		var centroid geom.Vec3
		var normal geom.Vec3
		for ri, rv := range ring {
			p := m.Position(rv)
			centroid = geom.Add(centroid, p)
			next := m.Position(ring[(ri+1)%len(ring)])
			normal = geom.Add(normal, geom.Cross(geom.Sub(p, pv), geom.Sub(next, pv)))
		}
		centroid = geom.Scale(centroid, 1.0/float64(len(ring)))

		nl := geom.Length(normal)
		if nl < 1e-12 {
			continue
		}
		normal = geom.Scale(normal, 1.0/nl)

		toCentroid := geom.Sub(centroid, pv)
		tangential := geom.Sub(toCentroid, geom.Scale(normal, geom.Dot(toCentroid, normal)))

		if geom.Length(tangential) > maxStep {
			tangential = geom.Scale(geom.Normalize(tangential), maxStep)
		}

		targets[i] = geom.Add(pv, tangential)
		apply[i] = true
	}

	for i := 0; i < n; i++ {
		if !apply[i] {
			continue
		}
		m.SetPosition(mesh.VertexId(i), targets[i])
		moved++
	}
	return moved
}
