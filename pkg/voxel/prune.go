package voxel

import "github.com/chazu/lignin-geo/internal/xlog"

// Prune collapses every leaf whose values are constant within
// tolerance into a tile at its parent internal node.
func Prune(t *Tree, tolerance float64) {
	collapsed := 0
	for _, n := range t.root {
		for slot := 0; slot < internalSlots; slot++ {
			if !n.hasChild(slot) {
				continue
			}
			if v, ok := n.children[slot].IsConstant(tolerance); ok {
				n.setTile(slot, v)
				collapsed++
			}
		}
	}
	xlog.Printf("voxel: tree %s pruned %d leaf(s) into tiles (tolerance=%v)", t.ID(), collapsed, tolerance)
}

// PruneEmptyNodes removes empty leaf children and empty internal nodes
// bottom-up.
func PruneEmptyNodes(t *Tree) {
	removedLeaves, removedInternal := 0, 0
	for key, n := range t.root {
		for slot := 0; slot < internalSlots; slot++ {
			if n.hasChild(slot) && n.children[slot].isEmpty() {
				n.clearSlot(slot)
				removedLeaves++
			}
		}
		if n.isEmpty() {
			delete(t.root, key)
			removedInternal++
		}
	}
	xlog.Printf("voxel: tree %s removed %d empty leaf(s), %d empty internal node(s)", t.ID(), removedLeaves, removedInternal)
}
