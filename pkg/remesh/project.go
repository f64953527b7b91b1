package remesh

import (
	"github.com/chazu/lignin-geo/pkg/mesh"
	"github.com/chazu/lignin-geo/pkg/spatial"
)

// projectPass re-projects every vertex onto the nearest point of idx
// (built from the pre-remesh mesh).
func projectPass(m *mesh.Mesh, idx spatial.NearestPointIndex) int {
	projected := 0
	for i := 0; i < m.RawVertexCount(); i++ {
		v := mesh.VertexId(i)
		if m.VertexDeleted(v) {
			continue
		}
		if p, ok := idx.Nearest(m.Position(v)); ok {
			m.SetPosition(v, p)
			projected++
		}
	}
	return projected
}

// BuildProjectionIndex snapshots m's current vertex positions into a
// NearestPointIndex suitable for a later projectPass, before any
// remeshing pass has moved them.
func BuildProjectionIndex(m *mesh.Mesh, cellSize float64) spatial.NearestPointIndex {
	grid := spatial.NewUniformGrid(cellSize)
	for i := 0; i < m.RawVertexCount(); i++ {
		v := mesh.VertexId(i)
		if m.VertexDeleted(v) {
			continue
		}
		grid.Insert(m.Position(v))
	}
	return grid
}
