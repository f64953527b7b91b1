package spatial

import (
	"math"

	"github.com/chazu/lignin-geo/pkg/geom"
)

type cellKey struct{ x, y, z int64 }

func cellOf(p geom.Vec3, size float64) cellKey {
	return cellKey{
		x: int64(math.Floor(p.X / size)),
		y: int64(math.Floor(p.Y / size)),
		z: int64(math.Floor(p.Z / size)),
	}
}

// UniformGrid buckets points into fixed-size cells, expanding outward
// ring by ring from the query cell until a candidate is found and no
// closer point could exist in an unexamined ring.
type UniformGrid struct {
	cellSize float64
	cells    map[cellKey][]geom.Vec3
}

// NewUniformGrid builds an empty grid with the given cell size (should
// be on the order of the expected nearest-neighbour distance).
func NewUniformGrid(cellSize float64) *UniformGrid {
	return &UniformGrid{cellSize: cellSize, cells: make(map[cellKey][]geom.Vec3)}
}

func (g *UniformGrid) Insert(p geom.Vec3) {
	k := cellOf(p, g.cellSize)
	g.cells[k] = append(g.cells[k], p)
}

// Nearest returns the closest inserted point to query, expanding the
// search ring until the best candidate found is provably no farther
// than any point outside the searched rings.
func (g *UniformGrid) Nearest(query geom.Vec3) (geom.Vec3, bool) {
	if len(g.cells) == 0 {
		return geom.Vec3{}, false
	}
	center := cellOf(query, g.cellSize)

	var best geom.Vec3
	bestDistSq := math.Inf(1)
	found := false

	for ring := int64(0); ; ring++ {
		g.scanRing(center, ring, func(p geom.Vec3) {
			d := geom.LengthSq(geom.Sub(p, query))
			if d < bestDistSq {
				bestDistSq = d
				best = p
				found = true
			}
		})

		// Any point outside the rings searched so far is at least
		// ring*cellSize away (conservative, since the query may sit
		// anywhere within its own cell).
		safeRadius := float64(ring) * g.cellSize
		if found && safeRadius*safeRadius >= bestDistSq {
			return best, true
		}
		if ring > 0 && len(g.cells) > 0 && ring > 2_000_000 {
			// Pathological: no points anywhere near the query and the
			// grid is effectively empty in this region.
			return best, found
		}
		if !found && ring > 4 && g.allCellsWithin(center, ring) {
			return best, found
		}
	}
}

func (g *UniformGrid) scanRing(center cellKey, ring int64, visit func(geom.Vec3)) {
	if ring == 0 {
		for _, p := range g.cells[center] {
			visit(p)
		}
		return
	}
	for dx := -ring; dx <= ring; dx++ {
		for dy := -ring; dy <= ring; dy++ {
			for dz := -ring; dz <= ring; dz++ {
				if abs64(dx) != ring && abs64(dy) != ring && abs64(dz) != ring {
					continue // interior of the cube, already visited at a smaller ring
				}
				k := cellKey{center.x + dx, center.y + dy, center.z + dz}
				for _, p := range g.cells[k] {
					visit(p)
				}
			}
		}
	}
}

// allCellsWithin reports whether every occupied cell lies within ring
// of center, used to terminate the search over a sparse grid where no
// point will ever be found no matter how far the ring expands.
func (g *UniformGrid) allCellsWithin(center cellKey, ring int64) bool {
	for k := range g.cells {
		if abs64(k.x-center.x) > ring || abs64(k.y-center.y) > ring || abs64(k.z-center.z) > ring {
			return false
		}
	}
	return true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
