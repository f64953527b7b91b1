package decimate

import (
	"container/heap"

	"github.com/chazu/lignin-geo/internal/xlog"
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// Options configures a decimation pass.
type Options struct {
	MinQuality       float64
	PreserveBoundary bool
	Stop             StopCriterion
}

// Stats summarizes a completed decimation pass.
type Stats struct {
	Collapses int
	// StoppedEarly is true if the loop halted because the stop
	// criterion rejected a candidate, false if the queue simply ran dry.
	StoppedEarly bool
}

// Run executes the incremental edge-decimation loop over m in place:
// per-vertex quadric accumulation, a priority queue of candidate
// collapses keyed by error, popped lowest-error-first, each checked
// for topological/geometric safety and the stop criterion before
// being executed, with every edge newly incident to the merged vertex
// recomputed and requeued under an incremented version. m must not be
// shared with any other in-progress operation for the duration of the
// call.
func Run(m *mesh.Mesh, opts Options) Stats {
	quadrics := make(map[mesh.VertexId]Quadric)
	versions := make(map[mesh.EdgeId]int)
	pq := &edgeQueue{}
	heap.Init(pq)

	for v := mesh.VertexId(0); int(v) < m.RawVertexCount(); v++ {
		if m.VertexDeleted(v) {
			continue
		}
		var q Quadric
		for _, f := range facesAroundVertex(m, v) {
			if m.FaceDeleted(f) {
				continue
			}
			q = q.Add(NewQuadricFromTriangle(m.FaceTriangle(f)))
		}
		quadrics[v] = q
	}

	seenEdge := make(map[mesh.EdgeId]bool)
	for f := mesh.FaceId(0); int(f) < m.RawFaceCount(); f++ {
		if m.FaceDeleted(f) {
			continue
		}
		for local := 0; local < 3; local++ {
			c := m.FaceCorner(f, local)
			e := mesh.NewEdgeId(c, m.CornerOpposite(c))
			if seenEdge[e] {
				continue
			}
			seenEdge[e] = true
			enqueueEdge(m, e, quadrics, versions, pq)
		}
	}

	var stats Stats
	for pq.Len() > 0 {
		it := heap.Pop(pq).(*edgeItem)
		if !edgeAlive(m, it.edge) || versions[it.edge] != it.version {
			continue
		}

		if !mesh.IsSafe(m, it.edge, it.point, opts.MinQuality, opts.PreserveBoundary) {
			continue
		}

		u, v := edgeEndpoints(m, it.edge)
		mid := geom.Scale(geom.Add(m.Position(u), m.Position(v)), 0.5)
		if opts.Stop != nil && !opts.Stop.Accept(mid, it.err) {
			stats.StoppedEarly = true
			break
		}

		merged := m.CollapseEdge(it.edge, it.point)
		quadrics[merged] = quadrics[u].Add(quadrics[v])
		stats.Collapses++

		for _, e := range edgesAroundVertex(m, merged) {
			enqueueEdge(m, e, quadrics, versions, pq)
		}
	}

	xlog.Printf("decimate: %d collapse(s), stopped_early=%v, queue_remaining=%d", stats.Collapses, stats.StoppedEarly, pq.Len())
	return stats
}

// enqueueEdge computes edge's current optimal collapse point and
// error from its endpoints' quadrics and pushes a fresh candidate
// under an incremented version.
func enqueueEdge(m *mesh.Mesh, edge mesh.EdgeId, quadrics map[mesh.VertexId]Quadric, versions map[mesh.EdgeId]int, pq *edgeQueue) {
	u, v := edgeEndpoints(m, edge)
	if u == v || u == mesh.NilVertex || v == mesh.NilVertex {
		return
	}

	sum := quadrics[u].Add(quadrics[v])
	mid := geom.Scale(geom.Add(m.Position(u), m.Position(v)), 0.5)
	p := sum.OptimalPoint(mid)
	errVal := sum.Error(p)

	versions[edge]++
	heap.Push(pq, &edgeItem{edge: edge, point: p, err: errVal, version: versions[edge]})
}
