package game

// Outcome is the match result observed after the death pass.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeVictory         // enemy fortress destroyed
	OutcomeDefeat          // player fortress destroyed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "VICTORY"
	case OutcomeDefeat:
		return "DEFEAT"
	default:
		return "ONGOING"
	}
}

// DeathSystem removes units whose health reached zero. It runs after combat
// so damage observers saw the zero-health unit present exactly once, and
// before the next tick's targeting so dangling references last at most one
// validate-on-use cycle.
type DeathSystem struct{}

// Step removes this tick's dead and reports the match outcome. When both
// fortresses fall on the same tick, defeat wins: the player's loss is
// checked first.
func (d *DeathSystem) Step(w *World, tick int, log *EventLog) ([]UnitID, Outcome) {
	var deaths []UnitID
	playerFortressFell := false
	enemyFortressFell := false

	for _, u := range w.Units() {
		if u.Dead || !u.Health.Dead() {
			continue
		}
		u.Dead = true
		deaths = append(deaths, u.ID)
		if u.Fortress {
			if u.Team == TeamPlayer {
				playerFortressFell = true
			} else {
				enemyFortressFell = true
			}
		}
		log.Add(EventLogEntry{
			Tick: tick, Unit: u.ID, Team: u.Team,
			Category: "DEATH", Key: "died",
			Value: u.kindLabel(),
		})
	}
	for _, id := range deaths {
		w.Remove(id)
	}

	outcome := OutcomeOngoing
	if playerFortressFell {
		outcome = OutcomeDefeat
	} else if enemyFortressFell {
		outcome = OutcomeVictory
	}
	if outcome != OutcomeOngoing {
		log.Add(EventLogEntry{
			Tick: tick, Category: "MATCH", Key: "ended", Value: outcome.String(),
		})
	}
	return deaths, outcome
}

func (u *Unit) kindLabel() string {
	if u.Fortress {
		return "fortress"
	}
	return "soldier"
}
