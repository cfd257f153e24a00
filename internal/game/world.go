package game

// World owns the unit population. Units are addressed by stable IDs so that
// cross-unit references can be validated on use instead of being cleared
// eagerly when a referent dies.
type World struct {
	units  []*Unit
	byID   map[UnitID]*Unit
	nextID UnitID
}

func NewWorld() *World {
	return &World{
		byID:   make(map[UnitID]*Unit),
		nextID: 1,
	}
}

// Spawn assigns the unit an ID and adds it to the population.
func (w *World) Spawn(u *Unit) *Unit {
	u.ID = w.nextID
	w.nextID++
	w.units = append(w.units, u)
	w.byID[u.ID] = u
	return u
}

// Get returns the unit with the given ID, or nil if it no longer exists.
func (w *World) Get(id UnitID) *Unit {
	return w.byID[id]
}

// Alive reports whether id refers to a live unit. This is the liveness check
// every holder of a weak target reference runs before dereferencing.
func (w *World) Alive(id UnitID) bool {
	u := w.byID[id]
	return u != nil && !u.Dead
}

// Units returns the live population slice. Callers must not retain it across
// a Remove.
func (w *World) Units() []*Unit {
	return w.units
}

// Remove deletes a unit from the population.
func (w *World) Remove(id UnitID) {
	u := w.byID[id]
	if u == nil {
		return
	}
	delete(w.byID, id)
	for i, v := range w.units {
		if v == u {
			w.units = append(w.units[:i], w.units[i+1:]...)
			break
		}
	}
}

// Fortress returns a team's fortress, or nil once it has been destroyed and
// removed. Endgame detection and the wave spawner observe absence through
// this lookup.
func (w *World) Fortress(team Team) *Unit {
	for _, u := range w.units {
		if u.Fortress && u.Team == team {
			return u
		}
	}
	return nil
}

// CountTeam returns the number of live units on a team, fortresses included.
func (w *World) CountTeam(team Team) int {
	n := 0
	for _, u := range w.units {
		if u.Team == team && !u.Dead {
			n++
		}
	}
	return n
}
