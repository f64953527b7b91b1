package spatial

import (
	"github.com/chazu/lignin-geo/pkg/geom"
	"github.com/dhconnelly/rtreego"
)

// rtreePoint adapts a single geom.Vec3 into rtreego.Spatial via a tiny
// bounding box with sides of length pointEpsilon.
type rtreePoint struct {
	pos geom.Vec3
}

const pointEpsilon = 1e-9

func (p *rtreePoint) Bounds() rtreego.Rect {
	r, err := rtreego.NewRect(
		rtreego.Point{p.pos.X, p.pos.Y, p.pos.Z},
		[]float64{pointEpsilon, pointEpsilon, pointEpsilon},
	)
	if err != nil {
		// NewRect only fails on non-positive lengths, which
		// pointEpsilon never is.
		panic(err)
	}
	return r
}

// RTreeIndex is a NearestPointIndex backed by github.com/dhconnelly/rtreego,
// offering logarithmic nearest-neighbour queries over the same point
// set a UniformGrid would index.
type RTreeIndex struct {
	tree *rtreego.Rtree
}

// NewRTreeIndex builds an empty 3-dimensional R-tree with the
// branching factors rtreego recommends for general use.
func NewRTreeIndex() *RTreeIndex {
	return &RTreeIndex{tree: rtreego.NewTree(3, 25, 50)}
}

func (r *RTreeIndex) Insert(p geom.Vec3) {
	r.tree.Insert(&rtreePoint{pos: p})
}

func (r *RTreeIndex) Nearest(query geom.Vec3) (geom.Vec3, bool) {
	obj := r.tree.NearestNeighbor(rtreego.Point{query.X, query.Y, query.Z})
	if obj == nil {
		return geom.Vec3{}, false
	}
	return obj.(*rtreePoint).pos, true
}
