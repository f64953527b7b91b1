package remesh

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// splitPass splits every edge longer than 4/3*targetLength at its
// midpoint. Operates over a snapshot of the edges present at the
// start of the pass: edges created by a split are left for the next
// pass rather than recursively subdivided in this one.
func splitPass(m *mesh.Mesh, targetLength float64) int {
	const longFactor = 4.0 / 3.0
	threshold := longFactor * targetLength

	candidates := allEdges(m)
	splits := 0
	for _, e := range candidates {
		if !edgeAlive(m, e) {
			continue
		}
		u, v := edgeEndpoints(m, e)
		pu, pv := m.Position(u), m.Position(v)
		if geom.Length(geom.Sub(pv, pu)) <= threshold {
			continue
		}
		mid := geom.Scale(geom.Add(pu, pv), 0.5)
		m.SplitEdge(e, mid)
		splits++
	}
	return splits
}
