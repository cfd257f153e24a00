package game

import "testing"

// stepAll runs the targeter long enough for every slot to come due once.
func stepAll(t *Targeter, w *World) {
	full := int(retargetSlotInterval*float64(t.slots)/tickDt) + 2
	for i := 0; i < full; i++ {
		t.Step(w, tickDt)
	}
}

func TestTargeterPicksNearestBySurfaceDistance(t *testing.T) {
	w := NewWorld()
	near := w.Spawn(NewSoldier(TeamEnemy, Vec2{700, 320}))
	w.Spawn(NewSoldier(TeamEnemy, Vec2{900, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))

	tg := NewTargeter()
	tg.Step(w, tickDt) // no target yet: immediate evaluation

	if u.Target != near.ID {
		t.Errorf("expected nearest enemy U%d, got U%d", near.ID, u.Target)
	}
}

func TestTargeterNeverPicksOwnTeam(t *testing.T) {
	w := NewWorld()
	w.Spawn(NewSoldier(TeamPlayer, Vec2{610, 320})) // right next to u
	e := w.Spawn(NewSoldier(TeamEnemy, Vec2{900, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))

	tg := NewTargeter()
	stepAll(tg, w)

	if u.Target != e.ID {
		t.Errorf("expected the distant enemy, got U%d", u.Target)
	}
	for _, unit := range w.Units() {
		if unit.Target == NoUnit {
			continue
		}
		if w.Get(unit.Target).Team == unit.Team {
			t.Errorf("U%d targets its own team", unit.ID)
		}
	}
}

func TestTargeterNoOpponentsLeavesTargetNone(t *testing.T) {
	w := NewWorld()
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))

	tg := NewTargeter()
	stepAll(tg, w)

	if u.Target != NoUnit {
		t.Errorf("no opponents exist, target should stay none, got U%d", u.Target)
	}
}

func TestBacktrackFilterSkipsTargetsBehindMobileUnits(t *testing.T) {
	w := NewWorld()
	behind := w.Spawn(NewSoldier(TeamEnemy, Vec2{150, 320})) // 450 behind a rightward advancer
	ahead := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))

	tg := NewTargeter()
	tg.Step(w, tickDt)

	if u.Target == behind.ID {
		t.Error("mobile unit reversed course past the backtrack limit")
	}
	if u.Target != ahead.ID {
		t.Errorf("expected the forward target U%d, got U%d", ahead.ID, u.Target)
	}
}

func TestBacktrackFilterAllowsSlightlyBehind(t *testing.T) {
	w := NewWorld()
	// 100 behind: within the two-cell tolerance.
	slightly := w.Spawn(NewSoldier(TeamEnemy, Vec2{500, 320}))
	w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))

	tg := NewTargeter()
	tg.Step(w, tickDt)

	if u.Target != slightly.ID {
		t.Errorf("target 100px behind is within tolerance and nearest, got U%d", u.Target)
	}
}

func TestBacktrackFilterMirroredForEnemyTeam(t *testing.T) {
	w := NewWorld()
	behind := w.Spawn(NewSoldier(TeamPlayer, Vec2{1000, 320})) // behind a leftward advancer
	ahead := w.Spawn(NewSoldier(TeamPlayer, Vec2{100, 320}))
	u := w.Spawn(NewSoldier(TeamEnemy, Vec2{600, 320}))

	tg := NewTargeter()
	tg.Step(w, tickDt)

	if u.Target == behind.ID {
		t.Error("enemy advances -x; +x targets beyond the limit are behind it")
	}
	if u.Target != ahead.ID {
		t.Errorf("expected U%d, got U%d", ahead.ID, u.Target)
	}
}

func TestStationaryUnitsIgnoreBacktrackFilter(t *testing.T) {
	w := NewWorld()
	behind := w.Spawn(NewSoldier(TeamEnemy, Vec2{100, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{500, 320}))
	u.Speed = 0 // stationary combatant

	tg := NewTargeter()
	tg.Step(w, tickDt)

	if u.Target != behind.ID {
		t.Errorf("stationary combatants engage any direction, got U%d", u.Target)
	}
}

func TestDeadTargetTriggersImmediateReevaluation(t *testing.T) {
	w := NewWorld()
	first := w.Spawn(NewSoldier(TeamEnemy, Vec2{700, 320}))
	second := w.Spawn(NewSoldier(TeamEnemy, Vec2{800, 320}))
	u := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))
	u.Target = first.ID

	first.Dead = true
	tg := NewTargeter()
	tg.Step(w, tickDt) // slot irrelevant: invalid target evaluates now

	if u.Target != second.ID {
		t.Errorf("dead target should be replaced immediately, got U%d", u.Target)
	}
}

func TestStaggeredSlotsOnlyDueUnitReevaluates(t *testing.T) {
	w := NewWorld()
	far := w.Spawn(NewSoldier(TeamEnemy, Vec2{1100, 320}))  // U1
	near := w.Spawn(NewSoldier(TeamEnemy, Vec2{700, 320}))  // U2
	a := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 320}))    // U3, slot 3 of 4
	b := w.Spawn(NewSoldier(TeamPlayer, Vec2{600, 256}))    // U4, slot 0 of 4

	// Both hold a valid but suboptimal target.
	a.Target = far.ID
	b.Target = far.ID

	tg := newTargeterWithSlots(4)

	// One slot advance: active slot becomes 1. Neither player unit is due,
	// so both keep the stale target even though a nearer enemy exists.
	tg.Step(w, retargetSlotInterval)
	if a.Target != far.ID || b.Target != far.ID {
		t.Fatalf("undue units re-evaluated: a=U%d b=U%d", a.Target, b.Target)
	}

	// Two more advances reach slot 3: only a (ID 3) re-evaluates.
	tg.Step(w, retargetSlotInterval)
	tg.Step(w, retargetSlotInterval)
	if a.Target != near.ID {
		t.Errorf("slot 3 was due, a should retarget to U%d, got U%d", near.ID, a.Target)
	}
	if b.Target != far.ID {
		t.Errorf("slot 0 not yet due, b should keep U%d, got U%d", far.ID, b.Target)
	}

	// The fourth advance wraps to slot 0: b's turn.
	tg.Step(w, retargetSlotInterval)
	if b.Target != near.ID {
		t.Errorf("slot 0 was due, b should retarget to U%d, got U%d", near.ID, b.Target)
	}
}
