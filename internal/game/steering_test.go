package game

import (
	"math"
	"testing"
)

func TestSteeringEmptyPathYieldsZeroVelocity(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320})) // 500 away
	u.Target = e.ID
	u.Path.Set(nil, e.Pos) // computed, no path available

	var st Steering
	st.Step(w)

	// No direct-line fallback: the unit holds position.
	if u.PrefVel != (Vec2{}) {
		t.Errorf("expected zero preferred velocity, got %v", u.PrefVel)
	}
}

func TestSteeringFollowsCurrentWaypoint(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320}))
	u.Target = e.ID
	u.Path.Set([]Vec2{{700, 320}, {800, 320}}, e.Pos)

	var st Steering
	st.Step(w)

	if !almostEqual(u.PrefVel.X, u.Speed) || !almostEqual(u.PrefVel.Y, 0) {
		t.Errorf("expected full-speed +x velocity, got %v", u.PrefVel)
	}
	if u.PrefVel.Len() > u.Speed+1e-9 {
		t.Errorf("preferred speed exceeds movement speed: %f", u.PrefVel.Len())
	}
}

func TestSteeringAdvancesReachedWaypoint(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320}))
	u.Target = e.ID
	// First waypoint within the arrive threshold, second further on.
	u.Path.Set([]Vec2{{604, 320}, {700, 320}}, e.Pos)

	var st Steering
	st.Step(w)

	wp, ok := u.Path.CurrentWaypoint()
	if !ok || wp != (Vec2{700, 320}) {
		t.Errorf("expected cursor on the second waypoint, got %v ok=%v", wp, ok)
	}
	if u.PrefVel.X <= 0 {
		t.Errorf("should steer toward the next waypoint, got %v", u.PrefVel)
	}
}

func TestSteeringStopsInsideAttackRange(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{600 + 2*soldierRadius + soldierRange - 1, 320}))
	u.Target = e.ID
	u.Path.Set([]Vec2{{700, 320}}, e.Pos)

	var st Steering
	st.Step(w)

	if u.PrefVel != (Vec2{}) {
		t.Errorf("unit in range should stop, got %v", u.PrefVel)
	}
}

func TestSteeringNoTargetYieldsZeroVelocity(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	u.Path.Set([]Vec2{{700, 320}}, Vec2{700, 320})

	var st Steering
	st.Step(w)
	if u.PrefVel != (Vec2{}) {
		t.Errorf("no target, expected zero velocity, got %v", u.PrefVel)
	}

	// A dead target is the same as none.
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{800, 320}))
	e.Dead = true
	u.Target = e.ID
	st.Step(w)
	if u.PrefVel != (Vec2{}) {
		t.Errorf("dead target, expected zero velocity, got %v", u.PrefVel)
	}
}

func TestSteeringDiagonalWaypointNormalized(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 520}))
	u.Target = e.ID
	u.Path.Set([]Vec2{{700, 420}}, e.Pos)

	var st Steering
	st.Step(w)

	if math.Abs(u.PrefVel.Len()-u.Speed) > 1e-9 {
		t.Errorf("diagonal steering should still move at full speed, got %f", u.PrefVel.Len())
	}
	if u.PrefVel.X <= 0 || u.PrefVel.Y <= 0 {
		t.Errorf("expected +x +y direction, got %v", u.PrefVel)
	}
}
