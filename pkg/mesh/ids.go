// Package mesh implements a half-edge-equivalent triangle mesh stored as
// a corner table: three parallel arrays (vertices, corners, and the
// implicit face-per-corner-triple grouping) plus the traversal and edit
// primitives built on top of them. Cyclic back-references are indices
// into slices rather than shared pointers.
package mesh

// VertexId, CornerId, FaceId and EdgeId are opaque integer handles into
// a Mesh's parallel arrays. They are deliberately distinct types so the
// compiler rejects mixing a vertex index with a corner index.
type VertexId int32

// FaceId is the triangle index; corners 3*k, 3*k+1, 3*k+2 belong to
// face k.
type FaceId int32

// NilVertex is the sentinel "no vertex" id.
const NilVertex VertexId = -1

// NilFace is the sentinel "no face" id.
const NilFace FaceId = -1

// CornerId indexes a single corner of a triangle. Corner k's next is
// k+1 within its triple (wrapping), its previous is k-1, and its owning
// face is k/3.
type CornerId int32

// NilCorner is the sentinel "no corner" id, used for boundary opposite
// pointers and other "absent" references.
const NilCorner CornerId = -1

// Next returns the next corner within c's triangle (wrapping mod 3).
func (c CornerId) Next() CornerId {
	k := int32(c)
	face := k / 3
	local := k % 3
	return CornerId(face*3 + (local+1)%3)
}

// Previous returns the previous corner within c's triangle (wrapping mod 3).
func (c CornerId) Previous() CornerId {
	k := int32(c)
	face := k / 3
	local := k % 3
	return CornerId(face*3 + (local+2)%3)
}

// Face returns the id of the triangle c belongs to.
func (c CornerId) Face() FaceId {
	return FaceId(int32(c) / 3)
}

// EdgeId is the canonical representative corner for an edge: the
// smaller of a corner and its opposite (or the corner itself on a
// boundary edge, where opposite is NilCorner).
type EdgeId CornerId

// NewEdgeId canonicalizes corner c (with opposite o, NilCorner if
// boundary) into its edge id.
func NewEdgeId(c, o CornerId) EdgeId {
	if o == NilCorner || c < o {
		return EdgeId(c)
	}
	return EdgeId(o)
}

// Corner returns the underlying corner id the edge id was derived from.
func (e EdgeId) Corner() CornerId {
	return CornerId(e)
}
