package voxel

import (
	"github.com/chazu/lignin-geo/pkg/numeric"
	"github.com/google/uuid"
)

// Tree is a sparse signed-scalar voxel tree: a root map from internal-node
// origins to InternalNode, each holding either leaf children or tile
// values. VoxelSize is the edge length, in world units, of one leaf voxel.
type Tree struct {
	id        uuid.UUID
	root      map[Coord]*InternalNode
	VoxelSize float64
}

// New returns an empty tree with the given voxel size.
func New(voxelSize float64) *Tree {
	return &Tree{id: uuid.New(), root: make(map[Coord]*InternalNode), VoxelSize: voxelSize}
}

// ID returns the tree's instance identifier, used for log correlation
// in the Prune/PruneEmptyNodes log lines.
func (t *Tree) ID() uuid.UUID { return t.id }

// Far is the magnitude written into background tiles by flood fill:
// interior voxels are -|Far|, exterior +|Far|.
const Far = numeric.Far

// At walks root -> internal -> leaf, returning (value, true) iff the path
// is present all the way down to a voxel-value slot. A tile slot returns
// (0, false): tile values are bulk state, not individually addressable,
// and are read with TileAt.
func (t *Tree) At(idx Coord) (float64, bool) {
	n, ok := t.root[internalKey(idx)]
	if !ok {
		return 0, false
	}
	slot := localOffset(Coord{idx.X >> BLeaf, idx.Y >> BLeaf, idx.Z >> BLeaf}, BInternal)
	switch {
	case n.hasChild(slot):
		return n.children[slot].at(idx)
	case n.hasTile(slot):
		return 0, false
	default:
		return 0, false
	}
}

// TileAt returns the tile value covering idx, if idx's slot is a tile.
func (t *Tree) TileAt(idx Coord) (float64, bool) {
	n, ok := t.root[internalKey(idx)]
	if !ok {
		return 0, false
	}
	slot := localOffset(Coord{idx.X >> BLeaf, idx.Y >> BLeaf, idx.Z >> BLeaf}, BInternal)
	if n.hasTile(slot) {
		return n.tileValues[slot], true
	}
	return 0, false
}

// Insert walks down, creating internal/leaf nodes as needed, and sets idx's
// value. If idx's slot currently holds a tile, the tile is replaced by a
// freshly created (uniformly-valued) leaf before the single voxel is set,
// since a slot must be exclusively a child or a tile.
func (t *Tree) Insert(idx Coord, v float64) {
	leaf := t.TouchLeafAt(idx)
	leaf.set(idx, v)
}

// Remove clears idx's bit. If idx's slot is a tile (bulk state, not
// individually addressable) this is a no-op; callers must subdivide first
// via TouchLeafAt if they need to remove a single voxel from a tile region.
func (t *Tree) Remove(idx Coord) {
	n, ok := t.root[internalKey(idx)]
	if !ok {
		return
	}
	slot := localOffset(Coord{idx.X >> BLeaf, idx.Y >> BLeaf, idx.Z >> BLeaf}, BInternal)
	if n.hasChild(slot) {
		n.children[slot].clear(idx)
	}
}

// TouchLeafAt returns the leaf already covering idx, or creates (and, if
// idx's slot was a tile, subdivides) one.
func (t *Tree) TouchLeafAt(idx Coord) *LeafNode {
	ikey := internalKey(idx)
	n, ok := t.root[ikey]
	if !ok {
		n = newInternalNode(ikey)
		t.root[ikey] = n
	}
	slot := localOffset(Coord{idx.X >> BLeaf, idx.Y >> BLeaf, idx.Z >> BLeaf}, BInternal)
	if n.hasChild(slot) {
		return n.children[slot]
	}
	origin := n.leafOrigin(slot)
	wasTile, tileVal := n.hasTile(slot), n.tileValues[slot]
	leaf := n.setChild(slot, origin)
	if wasTile {
		fillLeafUniform(leaf, origin, tileVal)
	}
	return leaf
}

// fillLeafUniform populates every slot of a freshly subdivided leaf with
// the tile value it replaced, so subdividing a tile never changes the
// tree's represented values.
func fillLeafUniform(l *LeafNode, origin Coord, v float64) {
	for x := int32(0); x < leafSpan; x++ {
		for y := int32(0); y < leafSpan; y++ {
			for z := int32(0); z < leafSpan; z++ {
				l.set(origin.Add(Coord{x, y, z}), v)
			}
		}
	}
}

// IsConstant reports whether every voxel reachable from a leaf equals the
// first, within tolerance — the promotion test pruning uses to fold a leaf
// back into a tile.
func (l *LeafNode) IsConstant(tolerance float64) (float64, bool) {
	first, ok := l.firstValueSignedValue()
	if !ok {
		return 0, false
	}
	if l.occupancy.PopCount() != leafSlots {
		return 0, false
	}
	for _, v := range l.values {
		if abs(v-first) > tolerance {
			return 0, false
		}
	}
	return first, true
}

func (l *LeafNode) firstValueSignedValue() (float64, bool) {
	idx, ok := l.occupancy.NextSet(0)
	if !ok {
		return 0, false
	}
	return l.values[idx], true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
