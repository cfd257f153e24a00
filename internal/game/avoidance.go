package game

import "sort"

// velocitySmoothing is how much of the freshly solved velocity replaces the
// previous tick's velocity. Below 1.0 it damps the flip-flopping the solver
// can produce in dense crowds.
const velocitySmoothing = 0.85

// Avoidance runs the per-tick collision avoidance and integration for mobile
// units. It works in three phases on immutable snapshots so that no unit's
// solve observes another unit's same-tick write: snapshot all agents, solve
// all new velocities, then write velocities and integrate positions.
// Stationary combatants take no part; static obstacles are the navmesh's
// job, not this pass's.
type Avoidance struct {
	hash *spatialHash

	agents  []orcaAgent
	ids     []UnitID
	newVels []Vec2
	scratch []int
}

func NewAvoidance() *Avoidance {
	return &Avoidance{hash: newSpatialHash(orcaNeighborDist)}
}

// Step solves avoidance for every mobile unit, integrates positions by dt
// and resolves any residual overlap.
func (a *Avoidance) Step(w *World, dt float64) {
	a.snapshot(w)
	a.solve()
	a.apply(w, dt)
	a.separate(w)
}

func (a *Avoidance) snapshot(w *World) {
	a.agents = a.agents[:0]
	a.ids = a.ids[:0]
	a.hash.reset()
	for _, u := range w.Units() {
		if u.Dead || !u.Mobile() {
			continue
		}
		a.hash.insert(len(a.agents), u.Pos)
		a.agents = append(a.agents, orcaAgent{
			pos:      u.Pos,
			vel:      u.Vel,
			prefVel:  u.PrefVel,
			radius:   u.Footprint.Radius,
			maxSpeed: u.Speed,
		})
		a.ids = append(a.ids, u.ID)
	}
}

func (a *Avoidance) solve() {
	a.newVels = a.newVels[:0]
	for i, ag := range a.agents {
		if ag.prefVel == (Vec2{}) {
			// Holding position: do not let neighbors push the unit around.
			a.newVels = append(a.newVels, Vec2{})
			continue
		}
		neighbors := a.nearestNeighbors(i)
		a.newVels = append(a.newVels, orcaVelocity(ag, neighbors))
	}
}

// nearestNeighbors returns up to orcaMaxNeighbors agent snapshots nearest to
// agent i within the neighbor search radius.
func (a *Avoidance) nearestNeighbors(i int) []orcaAgent {
	ag := a.agents[i]
	a.scratch = a.hash.query(ag.pos, orcaNeighborDist, a.scratch[:0])

	type cand struct {
		idx    int
		distSq float64
	}
	cands := make([]cand, 0, len(a.scratch))
	for _, j := range a.scratch {
		if j == i {
			continue
		}
		d := ag.pos.DistSq(a.agents[j].pos)
		if d <= orcaNeighborDist*orcaNeighborDist {
			cands = append(cands, cand{j, d})
		}
	}
	sort.Slice(cands, func(x, y int) bool { return cands[x].distSq < cands[y].distSq })
	if len(cands) > orcaMaxNeighbors {
		cands = cands[:orcaMaxNeighbors]
	}

	out := make([]orcaAgent, len(cands))
	for k, c := range cands {
		out[k] = a.agents[c.idx]
	}
	return out
}

func (a *Avoidance) apply(w *World, dt float64) {
	for i, id := range a.ids {
		u := w.Get(id)
		if u == nil {
			continue
		}
		u.Vel = u.Vel.Lerp(a.newVels[i], velocitySmoothing)
		u.Pos = u.Pos.Add(u.Vel.Scale(dt))
	}
}

// separate pushes overlapping mobile pairs apart, half the penetration each.
// The solver produces no constraint for pairs already in contact, so spawn
// stacks and corner squeezes are resolved positionally here.
func (a *Avoidance) separate(w *World) {
	for i, id := range a.ids {
		u := w.Get(id)
		if u == nil {
			continue
		}
		a.scratch = a.hash.query(u.Pos, orcaNeighborDist, a.scratch[:0])
		for _, j := range a.scratch {
			if j <= i {
				continue
			}
			v := w.Get(a.ids[j])
			if v == nil {
				continue
			}
			delta := v.Pos.Sub(u.Pos)
			minDist := u.Footprint.Radius + v.Footprint.Radius
			dist := delta.Len()
			if dist >= minDist {
				continue
			}
			axis := Vec2{1, 0} // coincident centers: arbitrary fixed axis
			if dist > 0 {
				axis = delta.Scale(1 / dist)
			}
			push := (minDist - dist) / 2
			u.Pos = u.Pos.Sub(axis.Scale(push))
			v.Pos = v.Pos.Add(axis.Scale(push))
		}
	}
	for _, id := range a.ids {
		u := w.Get(id)
		if u == nil {
			continue
		}
		u.Pos.X = clamp(u.Pos.X, u.Footprint.Radius, fieldWidth-u.Footprint.Radius)
		u.Pos.Y = clamp(u.Pos.Y, u.Footprint.Radius, fieldHeight-u.Footprint.Radius)
	}
}
