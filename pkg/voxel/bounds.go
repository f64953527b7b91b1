package voxel

import (
	"sync"

	"github.com/chazu/lignin-geo/pkg/geom"
)

// BoundsVisitor accumulates the world-space bounding box of every occupied
// or tiled voxel it visits. Use with VisitLeafs / VisitLeafsPar.
type BoundsVisitor struct {
	VoxelSize float64
	mu        sync.Mutex
	box       geom.Box3
}

// NewBoundsVisitor returns a visitor ready to accumulate bounds for a tree
// with the given voxel size.
func NewBoundsVisitor(voxelSize float64) *BoundsVisitor {
	return &BoundsVisitor{VoxelSize: voxelSize, box: geom.EmptyBox3()}
}

func (v *BoundsVisitor) Dense(leaf *LeafNode) {
	v.expand(leaf.Origin, leafSpan)
}

func (v *BoundsVisitor) Tile(origin Coord, span int32, value float64) {
	v.expand(origin, span)
}

func (v *BoundsVisitor) expand(origin Coord, span int32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	lo := geom.NewVec3(float64(origin.X)*v.VoxelSize, float64(origin.Y)*v.VoxelSize, float64(origin.Z)*v.VoxelSize)
	hi := geom.NewVec3(float64(origin.X+span)*v.VoxelSize, float64(origin.Y+span)*v.VoxelSize, float64(origin.Z+span)*v.VoxelSize)
	v.box = v.box.Expand(lo)
	v.box = v.box.Expand(hi)
}

// Bounds returns the accumulated bounding box.
func (v *BoundsVisitor) Bounds() geom.Box3 { return v.box }
