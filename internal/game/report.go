package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the sliding history window for trend reporting (~10s).
const reportWindowTicks = 600

// TeamSnapshot is one team's state at a point in time.
type TeamSnapshot struct {
	Soldiers   int
	FortressHP float64
}

// SimReport is a whole-match snapshot at one tick.
type SimReport struct {
	Tick                int
	Player, Enemy       TeamSnapshot
	ProjectilesInFlight int
	Outcome             Outcome
}

// CaptureReport reads the sim's current state into a report.
func CaptureReport(s *Sim) SimReport {
	r := SimReport{
		Tick:                s.Tick(),
		ProjectilesInFlight: len(s.Projectiles()),
		Outcome:             s.Outcome(),
	}
	for _, u := range s.World().Units() {
		snap := &r.Player
		if u.Team == TeamEnemy {
			snap = &r.Enemy
		}
		if u.Fortress {
			snap.FortressHP = u.Health.Current
		} else {
			snap.Soldiers++
		}
	}
	return r
}

// SimReporter keeps a rolling history of reports for trend summaries.
type SimReporter struct {
	history     []SimReport
	windowTicks int
}

func NewSimReporter() *SimReporter {
	return &SimReporter{windowTicks: reportWindowTicks}
}

func (r *SimReporter) Capture(s *Sim) {
	r.history = append(r.history, CaptureReport(s))
	cutoff := 0
	latest := r.history[len(r.history)-1].Tick
	for cutoff < len(r.history) && r.history[cutoff].Tick < latest-r.windowTicks {
		cutoff++
	}
	r.history = r.history[cutoff:]
}

func (r *SimReporter) Latest() (SimReport, bool) {
	if len(r.history) == 0 {
		return SimReport{}, false
	}
	return r.history[len(r.history)-1], true
}

// BattleReport renders a human-readable match summary, combining a live
// snapshot with lifetime counts from the event log. This is what the
// frontend copies to the clipboard.
func BattleReport(s *Sim) string {
	rep := CaptureReport(s)
	log := s.Log()

	spawnsByTeam := map[Team]int{}
	deathsByTeam := map[Team]int{}
	for _, e := range log.Filter("SPAWN", "") {
		spawnsByTeam[e.Team]++
	}
	for _, e := range log.Filter("DEATH", "died") {
		deathsByTeam[e.Team]++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== BATTLE REPORT @ tick %d (%.1fs) ===\n", rep.Tick, s.Elapsed())
	fmt.Fprintf(&sb, "outcome: %s\n", rep.Outcome)
	fmt.Fprintf(&sb, "shots fired: %d, projectiles in flight: %d\n",
		len(log.Filter("COMBAT", "fired")), rep.ProjectilesInFlight)
	for _, team := range []Team{TeamPlayer, TeamEnemy} {
		snap := rep.Player
		if team == TeamEnemy {
			snap = rep.Enemy
		}
		fmt.Fprintf(&sb, "%-7s soldiers=%d spawned=%d deaths=%d fortress=%.0fhp\n",
			team, snap.Soldiers, spawnsByTeam[team], deathsByTeam[team], snap.FortressHP)
	}
	return sb.String()
}
