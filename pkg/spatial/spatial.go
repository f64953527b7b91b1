// Package spatial provides closest-point index structures for the
// remesher's optional projection pass. It exposes both a uniform
// hash-grid and an R-tree alternative wrapping
// github.com/dhconnelly/rtreego, behind a single NearestPointIndex
// interface so callers can pick either backend.
package spatial

import "github.com/chazu/lignin-geo/pkg/geom"

// NearestPointIndex answers closest-point queries over a fixed set of
// points, built once via Insert calls before the first Nearest query.
type NearestPointIndex interface {
	Insert(p geom.Vec3)
	Nearest(query geom.Vec3) (geom.Vec3, bool)
}
