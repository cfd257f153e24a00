package game

// waypointReachedThreshold is the arrive distance for waypoint consumption.
// Kept well under the clearance the navgrid pads around obstacle corners so
// units do not cut back into blocked cells.
const waypointReachedThreshold = 8.0 // px

// Steering converts each mobile unit's cached path into a preferred velocity
// for the avoidance pass. A unit with no current waypoint holds position:
// steering straight at a raw target position could cut through obstacles, so
// there is no direct-line fallback.
type Steering struct{}

// Step writes every mobile unit's PrefVel for this tick.
func (s *Steering) Step(w *World) {
	for _, u := range w.Units() {
		if u.Dead || !u.Mobile() {
			continue
		}
		u.PrefVel = s.preferredVelocity(w, u)
	}
}

func (s *Steering) preferredVelocity(w *World, u *Unit) Vec2 {
	target := w.Get(u.Target)
	if target == nil || target.Dead {
		return Vec2{}
	}

	// Already in attack range: stop and let combat take over.
	dist := SurfaceDistance(u.Pos, u.Footprint, target.Pos, target.Footprint)
	if dist <= u.Combat.Range {
		return Vec2{}
	}

	u.Path.AdvanceIfReached(u.Pos, waypointReachedThreshold)
	wp, ok := u.Path.CurrentWaypoint()
	if !ok {
		// Empty or consumed path. The planner recomputes next pass;
		// until then the unit holds position.
		return Vec2{}
	}
	return wp.Sub(u.Pos).Norm().Scale(u.Speed)
}
