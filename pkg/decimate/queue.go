package decimate

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/chazu/lignin-geo/pkg/mesh"
)

// edgeItem is one candidate collapse in the decimator's priority
// queue: an edge, its cached optimal point/error, and the version it
// was enqueued at. This is a lazy decrease-key queue: superseded
// candidates for the same edge are never removed from the heap, only
// outrun by a newer version and discarded on pop.
type edgeItem struct {
	edge    mesh.EdgeId
	point   geom.Vec3
	err     float64
	version int
}

// edgeQueue is a min-heap of *edgeItem ordered by err ascending.
type edgeQueue []*edgeItem

func (q edgeQueue) Len() int            { return len(q) }
func (q edgeQueue) Less(i, j int) bool  { return q[i].err < q[j].err }
func (q edgeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *edgeQueue) Push(x interface{}) { *q = append(*q, x.(*edgeItem)) }
func (q *edgeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
