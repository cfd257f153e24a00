package game

import "math"

// spatialHash is a uniform-grid index over agent positions used for
// neighbor queries during the avoidance pass. Rebuilt from scratch each tick.
type spatialHash struct {
	cell  float64
	cells map[[2]int][]int
}

func newSpatialHash(cell float64) *spatialHash {
	return &spatialHash{cell: cell, cells: make(map[[2]int][]int)}
}

func (h *spatialHash) key(p Vec2) [2]int {
	return [2]int{int(math.Floor(p.X / h.cell)), int(math.Floor(p.Y / h.cell))}
}

func (h *spatialHash) insert(idx int, pos Vec2) {
	k := h.key(pos)
	h.cells[k] = append(h.cells[k], idx)
}

// query appends to out the indices of all agents whose cell overlaps the
// circle at pos with the given radius. Callers filter exact distance.
func (h *spatialHash) query(pos Vec2, radius float64, out []int) []int {
	min := h.key(Vec2{pos.X - radius, pos.Y - radius})
	max := h.key(Vec2{pos.X + radius, pos.Y + radius})
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			out = append(out, h.cells[[2]int{cx, cy}]...)
		}
	}
	return out
}

func (h *spatialHash) reset() {
	for k := range h.cells {
		delete(h.cells, k)
	}
}
