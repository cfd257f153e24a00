package game

// TestSim is a headless harness used exclusively by tests. It wraps Sim with
// deterministic seeding, explicit population control and structured logging.
type TestSim struct {
	Sim     *Sim
	Players []UnitID
	Enemies []UnitID

	seed    int64
	verbose bool
	spawn   bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, verbose, spawning; applied first
	simOptUnit                       // add units; applied once the sim exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-event stdout logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithSpawning re-enables production and wave spawning, which the harness
// turns off by default so tests own the population.
func WithSpawning() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.spawn = true
	}}
}

// WithBuilding places a production building at a build-zone cell.
func WithBuilding(col, row int) SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		ts.Sim.PlaceBuilding(col, row)
	}}
}

// WithPlayerSoldier adds a player soldier at a world position.
func WithPlayerSoldier(x, y float64) SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		u := ts.Sim.World().Spawn(NewSoldier(TeamPlayer, Vec2{x, y}))
		ts.Players = append(ts.Players, u.ID)
	}}
}

// WithEnemySoldier adds an enemy soldier at a world position.
func WithEnemySoldier(x, y float64) SimOption {
	return SimOption{simOptUnit, func(ts *TestSim) {
		u := ts.Sim.World().Spawn(NewSoldier(TeamEnemy, Vec2{x, y}))
		ts.Enemies = append(ts.Enemies, u.ID)
	}}
}

// NewTestSim constructs a harness in two ordered passes:
//  1. Infrastructure (seed, verbose, spawning)
//  2. Units and buildings
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Sim = NewSim(ts.seed, ts.verbose)
	if !ts.spawn {
		ts.Sim.DisableSpawning()
	}
	for _, o := range opts {
		if o.kind == simOptUnit {
			o.fn(ts)
		}
	}
	ts.Sim.RebuildNavSync()
	return ts
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Step()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick the predicate was satisfied at, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Sim.Step()
		if predicate(ts) {
			return ts.Sim.Tick()
		}
	}
	return -1
}

// Unit is shorthand for looking a unit up by ID; nil once removed.
func (ts *TestSim) Unit(id UnitID) *Unit {
	return ts.Sim.World().Get(id)
}

// Log is shorthand for the sim's event log.
func (ts *TestSim) Log() *EventLog {
	return ts.Sim.Log()
}

// UnitSnapshot is a lightweight copy of one unit's state at a tick.
type UnitSnapshot struct {
	ID     UnitID
	Team   Team
	X, Y   float64
	Health float64
	Target UnitID
}

// Snapshot returns the current state of all live units.
func (ts *TestSim) Snapshot() []UnitSnapshot {
	var out []UnitSnapshot
	for _, u := range ts.Sim.World().Units() {
		out = append(out, UnitSnapshot{
			ID:     u.ID,
			Team:   u.Team,
			X:      u.Pos.X,
			Y:      u.Pos.Y,
			Health: u.Health.Current,
			Target: u.Target,
		})
	}
	return out
}
