package game

import (
	"math"
	"testing"
)

func TestProductionPlaceValidation(t *testing.T) {
	p := NewProduction()
	if p.Place(buildZoneMinCol-1, 4) {
		t.Error("placement left of the build zone should fail")
	}
	if p.Place(buildZoneMaxCol+1, 4) {
		t.Error("placement in the combat zone should fail")
	}
	if p.Place(buildZoneMinCol, -1) {
		t.Error("placement off the field should fail")
	}
	if !p.Place(buildZoneMinCol, 4) {
		t.Fatal("valid placement rejected")
	}
	if p.Place(buildZoneMinCol, 4) {
		t.Error("occupied cell should reject a second building")
	}
	if len(p.Obstacles()) != 1 {
		t.Errorf("expected one obstacle, got %d", len(p.Obstacles()))
	}
}

func TestProductionSpawnsOnInterval(t *testing.T) {
	w := NewWorld()
	w.Spawn(NewFortress(TeamPlayer))
	p := NewProduction()
	p.Place(4, 4)

	log := NewEventLog(false)
	ticks := int(productionInterval/tickDt) + 1
	for i := 0; i < ticks; i++ {
		p.Step(w, tickDt, i+1, log)
	}

	spawned := log.Filter("SPAWN", "produced")
	if len(spawned) != 1 {
		t.Fatalf("expected one soldier after %.0fs, got %d", productionInterval, len(spawned))
	}
	u := w.Get(spawned[0].Unit)
	if u == nil {
		t.Fatal("spawned soldier missing from the world")
	}
	// One cell to the right of the building, fully configured at creation.
	if u.Pos.X != colToWorldX(5) || u.Pos.Y != rowToWorldY(4) {
		t.Errorf("spawn position (%f,%f), expected cell right of the building", u.Pos.X, u.Pos.Y)
	}
	if u.Team != TeamPlayer || u.Speed != soldierSpeed || u.Combat.Damage != soldierDamage ||
		u.Health.Max != soldierHealth || u.Footprint.Radius != soldierRadius {
		t.Errorf("soldier spawned partially configured: %+v", u)
	}
}

func TestProductionHaltsWithoutFortress(t *testing.T) {
	w := NewWorld() // no player fortress
	p := NewProduction()
	p.Place(4, 4)

	log := NewEventLog(false)
	for i := 0; i < 4*int(productionInterval/tickDt); i++ {
		p.Step(w, tickDt, i+1, log)
	}
	if n := log.CountCategory("SPAWN"); n != 0 {
		t.Errorf("production without a fortress spawned %d soldiers", n)
	}
}

func TestWaveIntervalRampsDown(t *testing.T) {
	ws := NewWaveSpawner(1)
	if !almostEqual(ws.interval(), waveStartInterval) {
		t.Errorf("interval at t=0 should be %f, got %f", waveStartInterval, ws.interval())
	}

	ws.elapsed = waveRampDuration / 2
	mid := ws.interval()
	want := (waveStartInterval + waveMinInterval) / 2
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("halfway interval %f, expected %f", mid, want)
	}

	ws.elapsed = waveRampDuration * 2
	if !almostEqual(ws.interval(), waveMinInterval) {
		t.Errorf("interval past ramp end should floor at %f, got %f", waveMinInterval, ws.interval())
	}
}

func TestWaveSpawnerFirstWaveAfterInitialDelay(t *testing.T) {
	w := NewWorld()
	w.Spawn(NewFortress(TeamEnemy))
	ws := NewWaveSpawner(42)
	log := NewEventLog(false)

	almostThere := int(waveInitialDelay/tickDt) - 2
	for i := 0; i < almostThere; i++ {
		ws.Step(w, tickDt, i+1, log)
	}
	if n := log.CountCategory("SPAWN"); n != 0 {
		t.Fatalf("%d enemies spawned before the initial delay", n)
	}

	for i := 0; i < 4; i++ {
		ws.Step(w, tickDt, almostThere+i+1, log)
	}
	if n := log.CountCategory("SPAWN"); n != 1 {
		t.Errorf("expected the first wave right after %.0fs, got %d spawns", waveInitialDelay, n)
	}

	// Wave soldiers appear at the enemy fortress column.
	for _, u := range w.Units() {
		if u.Fortress {
			continue
		}
		if u.Team != TeamEnemy {
			t.Error("wave spawner only produces enemies")
		}
		if worldToCol(u.Pos.X) != enemyFortressCol {
			t.Errorf("wave spawn at col %d, expected %d", worldToCol(u.Pos.X), enemyFortressCol)
		}
	}
}

func TestWaveSpawnerHaltsWithoutFortress(t *testing.T) {
	w := NewWorld() // enemy fortress already destroyed
	ws := NewWaveSpawner(42)
	log := NewEventLog(false)
	for i := 0; i < 2*int(waveInitialDelay/tickDt); i++ {
		ws.Step(w, tickDt, i+1, log)
	}
	if n := log.CountCategory("SPAWN"); n != 0 {
		t.Errorf("destroyed fortress still spawned %d enemies", n)
	}
}

func TestWaveSpawnerDeterministicPerSeed(t *testing.T) {
	rows := func(seed int64) []int {
		w := NewWorld()
		w.Spawn(NewFortress(TeamEnemy))
		ws := NewWaveSpawner(seed)
		for i := 0; i < 30*tickRate; i++ {
			ws.Step(w, tickDt, i+1, nil)
		}
		var out []int
		for _, u := range w.Units() {
			if !u.Fortress {
				out = append(out, worldToRow(u.Pos.Y))
			}
		}
		return out
	}

	a, b := rows(7), rows(7)
	if len(a) != len(b) {
		t.Fatalf("same seed spawned %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at spawn %d: row %d vs %d", i, a[i], b[i])
		}
	}
}
