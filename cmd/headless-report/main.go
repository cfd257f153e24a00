package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"siegeline/internal/game"
)

type runStats struct {
	runIndex int
	runID    string
	seed     int64

	outcome game.Outcome
	endTick int

	playerSpawns int
	enemySpawns  int
	playerDeaths int
	enemyDeaths  int
	shotsFired   int

	firstDeathTick int
	finalReport    game.SimReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 36000, "tick cap per run (36000 = 10min)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "standard", "scenario name (standard, turtle)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "standard" && scenario != "turtle" {
		fmt.Printf("error: unsupported scenario %q (supported: standard, turtle)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, runs)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			seed := seedBase + int64(i)*seedStep
			all[i] = runScenario(scenario, i+1, seed, ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

// buildingLayout returns the player's opening build order for a scenario.
// "standard" spreads production across the zone; "turtle" stacks it against
// the fortress.
func buildingLayout(scenario string) [][2]int {
	if scenario == "turtle" {
		return [][2]int{{2, 3}, {2, 4}, {2, 5}, {2, 6}, {3, 4}, {3, 5}}
	}
	return [][2]int{{2, 2}, {2, 7}, {4, 4}, {4, 5}, {6, 2}, {6, 7}}
}

func runScenario(scenario string, runIndex int, seed int64, ticks int) runStats {
	sim := game.NewSim(seed, false)
	for _, cell := range buildingLayout(scenario) {
		sim.PlaceBuilding(cell[0], cell[1])
	}
	sim.RebuildNavSync()

	for i := 0; i < ticks && sim.Outcome() == game.OutcomeOngoing; i++ {
		sim.Step()
	}

	log := sim.Log()
	rs := runStats{
		runIndex:       runIndex,
		runID:          uuid.NewString(),
		seed:           seed,
		outcome:        sim.Outcome(),
		endTick:        sim.Tick(),
		shotsFired:     len(log.Filter("COMBAT", "fired")),
		firstDeathTick: -1,
		finalReport:    game.CaptureReport(sim),
	}
	for _, e := range log.Filter("SPAWN", "") {
		if e.Team == game.TeamPlayer {
			rs.playerSpawns++
		} else {
			rs.enemySpawns++
		}
	}
	for _, e := range log.Filter("DEATH", "died") {
		if rs.firstDeathTick < 0 {
			rs.firstDeathTick = e.Tick
		}
		if e.Team == game.TeamPlayer {
			rs.playerDeaths++
		} else {
			rs.enemyDeaths++
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	fmt.Printf("outcome=%s end_tick=%d (%.0fs) first_death=%d\n",
		rs.outcome, rs.endTick, float64(rs.endTick)/60, rs.firstDeathTick)
	fmt.Printf("spawns: player=%d enemy=%d  deaths: player=%d enemy=%d  shots=%d\n",
		rs.playerSpawns, rs.enemySpawns, rs.playerDeaths, rs.enemyDeaths, rs.shotsFired)
	fmt.Printf("final: player_fortress=%.0fhp enemy_fortress=%.0fhp player_soldiers=%d enemy_soldiers=%d\n\n",
		rs.finalReport.Player.FortressHP, rs.finalReport.Enemy.FortressHP,
		rs.finalReport.Player.Soldiers, rs.finalReport.Enemy.Soldiers)
}

func printAggregate(all []runStats) {
	victories, defeats, timeouts := 0, 0, 0
	endSum, deathSum, shotSum := 0, 0, 0
	for _, rs := range all {
		switch rs.outcome {
		case game.OutcomeVictory:
			victories++
		case game.OutcomeDefeat:
			defeats++
		default:
			timeouts++
		}
		endSum += rs.endTick
		deathSum += rs.playerDeaths + rs.enemyDeaths
		shotSum += rs.shotsFired
	}
	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victories=%d defeats=%d timeouts=%d\n", n, victories, defeats, timeouts)
	fmt.Printf("avg_end_tick=%.1f avg_deaths=%.1f avg_shots=%.1f\n",
		avg(endSum, n), avg(deathSum, n), avg(shotSum, n))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
