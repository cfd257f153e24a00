package game

const (
	// retargetSlots splits the population into rotating evaluation groups so
	// per-tick targeting cost is bounded at population/retargetSlots.
	retargetSlots = 10
	// retargetSlotInterval is the sim time between active-slot advances. A
	// full rotation across all slots takes 0.15s.
	retargetSlotInterval = 0.015 // s

	// backtrackLimit is how far behind its advance direction a mobile unit
	// will still accept a target. Two battlefield cells.
	backtrackLimit = 128.0 // px
)

// Targeter assigns each combatant its nearest live opponent. Evaluation is
// frame-staggered: a unit's slot is its ID mod the slot count, and only the
// slots whose turn arrived this tick re-evaluate. Units whose target is
// missing or dead re-evaluate immediately regardless of slot.
type Targeter struct {
	slots     int
	active    int
	slotTimer float64
}

func NewTargeter() *Targeter {
	return &Targeter{slots: retargetSlots}
}

func newTargeterWithSlots(n int) *Targeter {
	return &Targeter{slots: n}
}

// Step advances the stagger clock and re-evaluates targets for due units.
func (t *Targeter) Step(w *World, dt float64) {
	due := t.advanceSlots(dt)

	units := w.Units()
	for _, u := range units {
		if u.Dead {
			continue
		}
		if w.Alive(u.Target) && !due[int(u.ID)%t.slots] {
			continue
		}
		u.Target = t.findTarget(u, units)
	}
}

// advanceSlots consumes dt from the slot timer and returns the set of slots
// that became active this tick. Usually zero or one slot; more after a stall.
func (t *Targeter) advanceSlots(dt float64) map[int]bool {
	due := make(map[int]bool)
	t.slotTimer += dt
	for t.slotTimer >= retargetSlotInterval {
		t.slotTimer -= retargetSlotInterval
		t.active = (t.active + 1) % t.slots
		due[t.active] = true
	}
	return due
}

// findTarget picks the nearest live opponent by surface distance. Mobile
// seekers skip candidates too far behind their team's advance direction;
// stationary combatants engage in any direction. Ties keep the first
// candidate iterated.
func (t *Targeter) findTarget(u *Unit, units []*Unit) UnitID {
	best := NoUnit
	bestDist := 0.0
	for _, cand := range units {
		if cand.Dead || cand.Team == u.Team {
			continue
		}
		if u.Mobile() {
			ahead := u.Team.AdvanceSign() * (cand.Pos.X - u.Pos.X)
			if ahead < -backtrackLimit {
				continue
			}
		}
		d := SurfaceDistance(u.Pos, u.Footprint, cand.Pos, cand.Footprint)
		if best == NoUnit || d < bestDist {
			best = cand.ID
			bestDist = d
		}
	}
	return best
}
