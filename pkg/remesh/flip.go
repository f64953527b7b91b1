package remesh

import "github.com/chazu/lignin-geo/pkg/mesh"

const idealValence = 6

func deviation(v int) int {
	d := v - idealValence
	if d < 0 {
		return -d
	}
	return d
}

// flipPass flips every interior edge whose flip would strictly
// decrease the sum of |valence-6| across the 4 vertices bounding its
// two incident triangles.
func flipPass(m *mesh.Mesh) int {
	candidates := allEdges(m)
	flips := 0
	for _, e := range candidates {
		if !edgeAlive(m, e) {
			continue
		}
		c := e.Corner()
		o := m.CornerOpposite(c)
		if o == mesh.NilCorner {
			continue // boundary edge, no second triangle to flip against
		}

		u, v := edgeEndpoints(m, e)
		apexA := m.CornerVertex(c)
		apexC := m.CornerVertex(o)

		before := deviation(valence(m, u)) + deviation(valence(m, v)) +
			deviation(valence(m, apexA)) + deviation(valence(m, apexC))
		after := deviation(valence(m, u)-1) + deviation(valence(m, v)-1) +
			deviation(valence(m, apexA)+1) + deviation(valence(m, apexC)+1)

		if after < before && m.FlipEdge(e) {
			flips++
		}
	}
	return flips
}
