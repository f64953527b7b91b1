package mesh

import (
	"fmt"

	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/pkg/errors"
)

// mergeQuantum is the grid size used by the quantised-hash coincident
// point merge (MergePoints). Points whose coordinates truncate to the same
// multiple of it on every axis are folded into a single vertex; two close
// points on either side of a cell boundary stay apart.
const mergeQuantum = 1e-7

type quantKey [3]int64

func quantize(p geom.Vec3) quantKey {
	return quantKey{
		int64(p.X / mergeQuantum),
		int64(p.Y / mergeQuantum),
		int64(p.Z / mergeQuantum),
	}
}

// MergePoints deduplicates points that fall in the same mergeQuantum grid
// cell. It
// returns the deduplicated point set and, for every input point, the
// index into that set its coincidence class was assigned.
func MergePoints(points []geom.Vec3) (merged []geom.Vec3, indexOf []int) {
	seen := make(map[quantKey]int, len(points))
	indexOf = make([]int, len(points))
	for i, p := range points {
		k := quantize(p)
		if idx, ok := seen[k]; ok {
			indexOf[i] = idx
			continue
		}
		idx := len(merged)
		seen[k] = idx
		merged = append(merged, p)
		indexOf[i] = idx
	}
	return merged, indexOf
}

type vertexPair struct {
	a, b VertexId
}

func orderedPair(a, b VertexId) vertexPair {
	if a <= b {
		return vertexPair{a, b}
	}
	return vertexPair{b, a}
}

// FromVerticesAndFaces builds a mesh from an indexed triangle list: one
// vertex per entry in points, and three consecutive entries of indices
// per triangle. Opposite corners are linked by matching each directed
// edge (tail->head) with the reverse-directed edge (head->tail) found
// on another face; an edge shared by more than two faces, or traversed
// twice in the same direction, is a non-manifold input and reported as
// an error (the one I/O-shaped boundary in this package — see
// SPEC_FULL.md's AMBIENT STACK / error handling section).
func FromVerticesAndFaces(points []geom.Vec3, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, errors.Errorf("mesh: index count %d is not a multiple of 3", len(indices))
	}

	m := New()
	verts := make([]VertexId, len(points))
	for i, p := range points {
		verts[i] = m.addVertex(p, NilCorner)
	}

	type directedEdge struct {
		from, to VertexId
	}
	halfEdgeOwner := make(map[directedEdge]CornerId, len(indices))

	numFaces := len(indices) / 3
	for f := 0; f < numFaces; f++ {
		ia, ib, ic := indices[3*f], indices[3*f+1], indices[3*f+2]
		for _, idx := range [3]int{ia, ib, ic} {
			if idx < 0 || idx >= len(points) {
				return nil, errors.Errorf("mesh: face %d references out-of-range point index %d", f, idx)
			}
		}
		va, vb, vc := verts[ia], verts[ib], verts[ic]
		m.addFace(va, vb, vc)
	}

	for f := 0; f < numFaces; f++ {
		for local := 0; local < 3; local++ {
			c := m.FaceCorner(FaceId(f), local)
			// The directed edge "opposite" to corner c runs from the
			// next corner's vertex to the previous corner's vertex.
			from := m.CornerVertex(c.Next())
			to := m.CornerVertex(c.Previous())
			de := directedEdge{from: from, to: to}
			rev := directedEdge{from: to, to: from}
			if owner, ok := halfEdgeOwner[rev]; ok {
				if m.CornerOpposite(owner) != NilCorner {
					return nil, errors.Errorf("mesh: edge (%d,%d) shared by more than two faces", from, to)
				}
				m.linkOpposite(c, owner)
				delete(halfEdgeOwner, rev)
				continue
			}
			if _, ok := halfEdgeOwner[de]; ok {
				return nil, errors.Errorf("mesh: directed edge (%d,%d) duplicated; input is not consistently wound", from, to)
			}
			halfEdgeOwner[de] = c
		}
	}

	return m, nil
}

// FromVertices builds a mesh from triangle soup: every consecutive
// triple of points forms one triangle, and coincident points are
// merged via MergePoints before the corner table (and its opposite
// links) is built.
func FromVertices(points []geom.Vec3) (*Mesh, error) {
	if len(points)%3 != 0 {
		return nil, errors.Errorf("mesh: point count %d is not a multiple of 3", len(points))
	}
	merged, indexOf := MergePoints(points)
	indices := make([]int, len(indexOf))
	copy(indices, indexOf)
	m, err := FromVerticesAndFaces(merged, indices)
	if err != nil {
		return nil, errors.Wrap(err, "mesh.FromVertices")
	}
	return m, nil
}

// String implements fmt.Stringer for debug logging.
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{id=%s verts=%d faces=%d}", m.id, m.VertexCount(), m.FaceCount())
}
