package game

const (
	// pathRefreshInterval is the periodic recompute cadence for cached paths.
	pathRefreshInterval = 0.5 // s
	// pathTargetDriftThreshold is how far a target must move from the
	// position its path was computed for before the path is considered
	// stale ahead of schedule. One battlefield cell.
	pathTargetDriftThreshold = 64.0 // px
)

// NavPath is a unit's cached route to its target. An empty waypoint list
// after a compute is a valid terminal state meaning "no path available",
// distinct from "not yet computed."
type NavPath struct {
	waypoints []Vec2
	cursor    int
	lastGoal  Vec2    // target position the path was computed for
	refresh   float64 // seconds since last compute
	computed  bool
}

// Set installs a freshly computed waypoint list. A nil/empty list records the
// goal anyway so a later environment change is still detected.
func (p *NavPath) Set(waypoints []Vec2, goal Vec2) {
	p.waypoints = waypoints
	p.cursor = 0
	p.lastGoal = goal
	p.refresh = 0
	p.computed = true
}

// Clear returns the path to the not-computed state, indistinguishable from a
// freshly created one.
func (p *NavPath) Clear() {
	*p = NavPath{}
}

// CurrentWaypoint returns the waypoint under the cursor, or false when the
// path is empty or fully consumed.
func (p *NavPath) CurrentWaypoint() (Vec2, bool) {
	if p.cursor >= len(p.waypoints) {
		return Vec2{}, false
	}
	return p.waypoints[p.cursor], true
}

// Advance moves the cursor to the next waypoint. Advancing past the end is a
// no-op; cursor stays in [0, len].
func (p *NavPath) Advance() {
	if p.cursor < len(p.waypoints) {
		p.cursor++
	}
}

// AdvancePassed consumes leading waypoints the unit has already effectively
// passed: while pos is at least as close to the following waypoint as the
// current one is, steering to the current waypoint would move the unit
// backward along its own route. Grid paths start at the unit's cell center,
// which can sit well behind the unit itself, so every fresh install runs
// this before the path is followed.
func (p *NavPath) AdvancePassed(pos Vec2) {
	for p.cursor+1 < len(p.waypoints) {
		cur := p.waypoints[p.cursor]
		next := p.waypoints[p.cursor+1]
		if pos.Dist(next) > cur.Dist(next) {
			return
		}
		p.cursor++
	}
}

// AdvanceIfReached advances the cursor when pos is within threshold of the
// current waypoint. Returns true if an advance happened.
func (p *NavPath) AdvanceIfReached(pos Vec2, threshold float64) bool {
	wp, ok := p.CurrentWaypoint()
	if !ok {
		return false
	}
	if pos.Dist(wp) < threshold {
		p.Advance()
		return true
	}
	return false
}

// Consumed reports whether every waypoint has been passed. True for empty
// computed paths as well.
func (p *NavPath) Consumed() bool { return p.cursor >= len(p.waypoints) }

func (p *NavPath) Len() int { return len(p.waypoints) }

// NeedsRecompute ticks the refresh timer by dt and reports whether the path
// should be recomputed for a target now at goal: never computed, the periodic
// interval elapsed, or the target drifted materially since last compute.
func (p *NavPath) NeedsRecompute(goal Vec2, dt float64) bool {
	if !p.computed {
		return true
	}
	p.refresh += dt
	if p.refresh >= pathRefreshInterval {
		return true
	}
	return goal.Dist(p.lastGoal) > pathTargetDriftThreshold
}

// Planner recomputes unit paths on a schedule instead of every tick.
type Planner struct{}

// Step refreshes the cached path of every mobile unit with a live target.
// Paths refresh when stale (see NavPath.NeedsRecompute) or when fully
// consumed while the unit is still outside attack range, which forces an
// immediate recompute rather than waiting out the periodic interval. With no
// ready navmesh snapshot, cached paths are left alone.
func (pl *Planner) Step(w *World, nav *NavManager, dt float64) {
	grid, ok := nav.Ready()
	if !ok {
		return
	}
	for _, u := range w.Units() {
		if u.Dead || !u.Mobile() {
			continue
		}
		target := w.Get(u.Target)
		if target == nil || target.Dead {
			continue
		}

		needs := u.Path.NeedsRecompute(target.Pos, dt)
		if !needs && u.Path.Consumed() {
			dist := SurfaceDistance(u.Pos, u.Footprint, target.Pos, target.Footprint)
			needs = dist > u.Combat.Range
		}
		if !needs {
			continue
		}

		wps := grid.FindPath(u.Pos, target.Pos)
		u.Path.Set(wps, target.Pos)
		u.Path.AdvancePassed(u.Pos)
	}
}
