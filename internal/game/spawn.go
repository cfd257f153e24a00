package game

import "math/rand"

// Production timing.
const (
	productionInterval = 3.0  // s between soldiers from one building
	buildingSize       = 48.0 // px, building footprint inside its cell
)

// Building is a player production structure occupying one build-zone cell.
// It blocks the navmesh and emits a soldier on a repeating timer.
type Building struct {
	Col, Row int
	Pos      Vec2
	timer    float64
}

// Production owns the player's buildings and their spawn timers.
type Production struct {
	buildings []*Building
}

func NewProduction() *Production {
	return &Production{}
}

// Place adds a building at the given cell. Fails outside the build zone or
// on an occupied cell. The caller schedules a navmesh rebuild on success.
func (p *Production) Place(col, row int) bool {
	if !inBuildZone(col, row) {
		return false
	}
	for _, b := range p.buildings {
		if b.Col == col && b.Row == row {
			return false
		}
	}
	p.buildings = append(p.buildings, &Building{
		Col: col, Row: row,
		Pos: Vec2{colToWorldX(col), rowToWorldY(row)},
	})
	return true
}

func (p *Production) Buildings() []*Building { return p.buildings }

// Obstacles returns the buildings' blocking rects for the navmesh.
func (p *Production) Obstacles() []Obstacle {
	out := make([]Obstacle, len(p.buildings))
	for i, b := range p.buildings {
		out[i] = Obstacle{
			X: b.Pos.X - buildingSize/2,
			Y: b.Pos.Y - buildingSize/2,
			W: buildingSize,
			H: buildingSize,
		}
	}
	return out
}

// Step runs production timers. Each expiry spawns one player soldier a cell
// to the right of its building, fully configured at creation. Production
// halts for good once the player fortress is gone.
func (p *Production) Step(w *World, dt float64, tick int, log *EventLog) {
	if w.Fortress(TeamPlayer) == nil {
		return
	}
	for _, b := range p.buildings {
		b.timer += dt
		if b.timer < productionInterval {
			continue
		}
		b.timer -= productionInterval
		pos := Vec2{b.Pos.X + cellSize, b.Pos.Y}
		u := w.Spawn(NewSoldier(TeamPlayer, pos))
		log.Add(EventLogEntry{
			Tick: tick, Unit: u.ID, Team: TeamPlayer,
			Category: "SPAWN", Key: "produced",
			Value: "soldier",
		})
	}
}

// Wave spawner timing. Enemy pressure ramps from a gentle trickle to a
// flood over the first ten minutes.
const (
	waveInitialDelay  = 5.0   // s before the first enemy
	waveStartInterval = 3.0   // s between enemies at match start
	waveMinInterval   = 0.5   // s between enemies at full ramp
	waveRampDuration  = 600.0 // s to reach the minimum interval
)

// WaveSpawner emits enemy soldiers at the enemy fortress column on a
// shrinking interval. The fortress cell is navmesh-blocked, so a fresh
// spawn's first path is clamped to the nearest open cell and it marches out
// of the footprint from there.
type WaveSpawner struct {
	rng     *rand.Rand
	elapsed float64
	next    float64
}

func NewWaveSpawner(seed int64) *WaveSpawner {
	return &WaveSpawner{
		rng:  rand.New(rand.NewSource(seed)),
		next: waveInitialDelay,
	}
}

// interval returns the current gap between spawns, linearly ramped.
func (ws *WaveSpawner) interval() float64 {
	t := ws.elapsed / waveRampDuration
	if t > 1 {
		t = 1
	}
	return waveStartInterval - (waveStartInterval-waveMinInterval)*t
}

// Step advances the wave clock, spawning when due. Waves stop once the
// enemy fortress is destroyed.
func (ws *WaveSpawner) Step(w *World, dt float64, tick int, log *EventLog) {
	if w.Fortress(TeamEnemy) == nil {
		return
	}
	ws.elapsed += dt
	ws.next -= dt
	for ws.next <= 0 {
		ws.next += ws.interval()
		row := ws.rng.Intn(gridRows)
		pos := Vec2{colToWorldX(enemyFortressCol), rowToWorldY(row)}
		u := w.Spawn(NewSoldier(TeamEnemy, pos))
		log.Add(EventLogEntry{
			Tick: tick, Unit: u.ID, Team: TeamEnemy,
			Category: "SPAWN", Key: "wave",
			Value: "soldier",
		})
	}
}
