package game

// Sim is the headless simulation core. One Step is one fixed tick; the
// windowed frontend and the headless reporter both drive it the same way.
type Sim struct {
	world      *World
	nav        *NavManager
	targeter   *Targeter
	planner    Planner
	steering   Steering
	avoidance  *Avoidance
	combat     *CombatManager
	death      DeathSystem
	production *Production
	waves      *WaveSpawner
	log        *EventLog

	tick       int
	outcome    Outcome
	noSpawning bool
	lastDeaths []UnitID
	lastDamage []DamageEvent
}

// NewSim builds a fresh match: both fortresses standing, navmesh built
// synchronously so the first tick can already path.
func NewSim(seed int64, verbose bool) *Sim {
	s := &Sim{
		world:      NewWorld(),
		nav:        NewNavManager(),
		targeter:   NewTargeter(),
		avoidance:  NewAvoidance(),
		combat:     NewCombatManager(),
		production: NewProduction(),
		waves:      NewWaveSpawner(seed),
		log:        NewEventLog(verbose),
	}
	s.world.Spawn(NewFortress(TeamPlayer))
	s.world.Spawn(NewFortress(TeamEnemy))
	s.nav.RebuildSync(s.obstacles())
	return s
}

// Step advances the sim by one fixed tick. Phase order is the correctness
// contract: targeting before steering so movement chases this tick's
// target, movement before combat so range checks see current positions,
// combat before death so damage observers see the dying unit once.
func (s *Sim) Step() {
	if s.outcome != OutcomeOngoing {
		return
	}
	s.tick++

	// 1. SPAWN: production buildings and enemy waves.
	if !s.noSpawning {
		s.production.Step(s.world, tickDt, s.tick, s.log)
		s.waves.Step(s.world, tickDt, s.tick, s.log)
	}

	// 2. TARGET: staggered nearest-opponent selection.
	s.targeter.Step(s.world, tickDt)

	// 3. PATH: scheduled recompute of cached routes.
	s.planner.Step(s.world, s.nav, tickDt)

	// 4. STEER: path following into preferred velocities.
	s.steering.Step(s.world)

	// 5. MOVE: collision avoidance and integration.
	s.avoidance.Step(s.world, tickDt)

	// 6. COMBAT: fire, fly projectiles, land hits.
	s.lastDamage = s.combat.Step(s.world, tickDt, s.tick, s.log)

	// 7. DEATH: remove the dead, detect the end of the match.
	var outcome Outcome
	s.lastDeaths, outcome = s.death.Step(s.world, s.tick, s.log)
	if outcome != OutcomeOngoing {
		s.outcome = outcome
	}
}

// obstacles is the full static blocker set: standing fortresses plus player
// buildings.
func (s *Sim) obstacles() []Obstacle {
	var out []Obstacle
	for _, team := range []Team{TeamPlayer, TeamEnemy} {
		f := s.world.Fortress(team)
		if f == nil {
			continue
		}
		out = append(out, Obstacle{
			X: f.Pos.X - f.Footprint.HalfW,
			Y: f.Pos.Y - f.Footprint.HalfH,
			W: f.Footprint.HalfW * 2,
			H: f.Footprint.HalfH * 2,
		})
	}
	return append(out, s.production.Obstacles()...)
}

// DisableSpawning turns off production and wave spawning so tests control
// the population exactly.
func (s *Sim) DisableSpawning() { s.noSpawning = true }

// RebuildNavSync rebuilds the navmesh on the caller's goroutine. The test
// harness uses it after editing the world so the next tick paths
// deterministically.
func (s *Sim) RebuildNavSync() {
	s.nav.RebuildSync(s.obstacles())
}

// PlaceBuilding adds a production building and schedules a navmesh rebuild.
func (s *Sim) PlaceBuilding(col, row int) bool {
	if !s.production.Place(col, row) {
		return false
	}
	s.nav.Rebuild(s.obstacles())
	return true
}

func (s *Sim) World() *World             { return s.world }
func (s *Sim) Tick() int                 { return s.tick }
func (s *Sim) Elapsed() float64          { return float64(s.tick) * tickDt }
func (s *Sim) Outcome() Outcome          { return s.outcome }
func (s *Sim) Log() *EventLog            { return s.log }
func (s *Sim) Projectiles() []Projectile { return s.combat.Projectiles() }
func (s *Sim) Production() *Production   { return s.production }
func (s *Sim) LastDeaths() []UnitID      { return s.lastDeaths }
func (s *Sim) LastDamage() []DamageEvent { return s.lastDamage }
