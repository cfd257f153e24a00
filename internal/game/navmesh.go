package game

import (
	"container/heap"
	"math"
)

// Obstacle is a static blocking rect in world pixels. Fortresses and player
// buildings become obstacles; mobile units never do.
type Obstacle struct {
	X, Y, W, H float64
}

// NavGrid is a 2D walkability grid over the battlefield where true = blocked.
// A built grid is immutable; obstacle changes produce a fresh grid via the
// NavManager rather than mutating one in place.
type NavGrid struct {
	cols    int
	rows    int
	blocked []bool
}

// buildNavGrid blocks every cell that overlaps an obstacle, with padding so
// soldier paths keep clearance around corners.
func buildNavGrid(obstacles []Obstacle) *NavGrid {
	ng := &NavGrid{
		cols:    gridCols,
		rows:    gridRows,
		blocked: make([]bool, gridCols*gridRows),
	}

	const pad = soldierRadius
	for _, o := range obstacles {
		x0 := o.X - pad
		y0 := o.Y - pad
		x1 := o.X + o.W + pad
		y1 := o.Y + o.H + pad

		cMinX := max(0, int(x0/cellSize))
		cMinY := max(0, int(y0/cellSize))
		cMaxX := min(ng.cols-1, int((x1-1)/cellSize))
		cMaxY := min(ng.rows-1, int((y1-1)/cellSize))

		for cy := cMinY; cy <= cMaxY; cy++ {
			for cx := cMinX; cx <= cMaxX; cx++ {
				ng.blocked[cy*ng.cols+cx] = true
			}
		}
	}
	return ng
}

// IsBlocked returns true if the cell at (cx, cy) is not walkable.
// Out-of-bounds cells are blocked.
func (ng *NavGrid) IsBlocked(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= ng.cols || cy >= ng.rows {
		return true
	}
	return ng.blocked[cy*ng.cols+cx]
}

// Navigable reports whether a world point lies on a walkable cell.
func (ng *NavGrid) Navigable(p Vec2) bool {
	return !ng.IsBlocked(worldToCol(p.X), worldToRow(p.Y))
}

// --- A* pathfinding ---

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var dirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindPath returns world-coordinate waypoints from start to goal, or nil when
// no path exists. Blocked endpoints are clamped to the nearest open cell so a
// unit shoved into obstacle padding, or aiming at a fortress interior, still
// paths to the closest reachable point.
func (ng *NavGrid) FindPath(start, goal Vec2) []Vec2 {
	scx, scy, ok := ng.nearestOpenCell(worldToCol(start.X), worldToRow(start.Y))
	if !ok {
		return nil
	}
	gcx, gcy, ok := ng.nearestOpenCell(worldToCol(goal.X), worldToRow(goal.Y))
	if !ok {
		return nil
	}

	key := func(cx, cy int) int { return cy*ng.cols + cx }
	heuristic := func(ax, ay, bx, by int) float64 {
		dx := math.Abs(float64(ax - bx))
		dy := math.Abs(float64(ay - by))
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	}

	startNode := &pathNode{cx: scx, cy: scy, g: 0, h: heuristic(scx, scy, gcx, gcy)}
	ol := &openList{startNode}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := make(map[int]*pathNode)
	best[key(scx, scy)] = startNode

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == gcx && cur.cy == gcy {
			return ng.buildPath(cur)
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range dirs {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if ng.IsBlocked(nx, ny) {
				continue
			}
			// Prevent diagonal corner-cutting through blocked cells.
			if d[0] != 0 && d[1] != 0 {
				if ng.IsBlocked(cur.cx+d[0], cur.cy) || ng.IsBlocked(cur.cx, cur.cy+d[1]) {
					continue
				}
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			cost := 1.0
			if d[0] != 0 && d[1] != 0 {
				cost = math.Sqrt2
			}
			g := cur.g + cost
			if prev, ok := best[nk]; ok && g >= prev.g {
				continue
			}
			node := &pathNode{cx: nx, cy: ny, g: g, h: heuristic(nx, ny, gcx, gcy), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

// nearestOpenCell returns the closest walkable cell to (cx, cy), searching
// outward in square rings. Gives up after a few rings.
func (ng *NavGrid) nearestOpenCell(cx, cy int) (int, int, bool) {
	if !ng.IsBlocked(cx, cy) {
		return cx, cy, true
	}
	const maxRing = 4
	for r := 1; r <= maxRing; r++ {
		bestD := math.MaxFloat64
		bx, by := 0, 0
		found := false
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if ng.IsBlocked(nx, ny) {
					continue
				}
				d := float64(dx*dx + dy*dy)
				if d < bestD {
					bestD, bx, by, found = d, nx, ny, true
				}
			}
		}
		if found {
			return bx, by, true
		}
	}
	return 0, 0, false
}

func (ng *NavGrid) buildPath(end *pathNode) []Vec2 {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	path := make([]Vec2, len(cells))
	for i, c := range cells {
		path[i] = Vec2{colToWorldX(c[0]), rowToWorldY(c[1])}
	}
	return path
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
