package remesh

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// collapsePass collapses every edge shorter than 4/5*targetLength to
// its midpoint, when safe.
func collapsePass(m *mesh.Mesh, targetLength, minQuality float64, preserveBoundary bool) int {
	const shortFactor = 4.0 / 5.0
	threshold := shortFactor * targetLength

	candidates := allEdges(m)
	collapses := 0
	for _, e := range candidates {
		if !edgeAlive(m, e) {
			continue
		}
		u, v := edgeEndpoints(m, e)
		pu, pv := m.Position(u), m.Position(v)
		if geom.Length(geom.Sub(pv, pu)) >= threshold {
			continue
		}
		mid := geom.Scale(geom.Add(pu, pv), 0.5)
		if !mesh.IsSafe(m, e, mid, minQuality, preserveBoundary) {
			continue
		}
		m.CollapseEdge(e, mid)
		collapses++
	}
	return collapses
}
