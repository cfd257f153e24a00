package game

import "sync"

// NavState distinguishes "navmesh not yet built" from "built but a given
// path may still not exist."
type NavState int

const (
	NavPending NavState = iota
	NavBuilding
	NavReady
)

// NavManager rebuilds the walkability grid off the sim goroutine whenever
// the obstacle set changes and publishes each finished grid as an immutable
// snapshot. Path planning only ever reads the latest ready snapshot;
// unreadiness is a normal condition handled as "no path available."
//
// Every rebuild request is tagged with a generation; a finished build only
// publishes if no newer request superseded it, so snapshots never move
// backward.
type NavManager struct {
	mu   sync.Mutex
	grid *NavGrid // latest published snapshot, never mutated after publish
	gen  int      // newest requested generation
	done int      // generation of the published grid
}

func NewNavManager() *NavManager {
	return &NavManager{}
}

// Rebuild schedules an async rebuild for the given obstacle set.
func (m *NavManager) Rebuild(obstacles []Obstacle) {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.mu.Unlock()
	go m.build(obstacles, gen)
}

// RebuildSync builds and publishes immediately on the caller's goroutine.
// Used at sim start and in headless runs where determinism matters.
func (m *NavManager) RebuildSync(obstacles []Obstacle) {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.mu.Unlock()
	g := buildNavGrid(obstacles)
	m.publish(g, gen)
}

func (m *NavManager) build(obstacles []Obstacle, gen int) {
	g := buildNavGrid(obstacles)
	m.publish(g, gen)
}

func (m *NavManager) publish(g *NavGrid, gen int) {
	m.mu.Lock()
	if gen > m.done {
		m.grid = g
		m.done = gen
	}
	m.mu.Unlock()
}

// Ready returns the latest published grid. ok is false until the first build
// completes.
func (m *NavManager) Ready() (*NavGrid, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grid, m.grid != nil
}

// State reports whether the manager is idle, mid-build, or has a current
// snapshot published.
func (m *NavManager) State() NavState {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.done == m.gen && m.grid != nil:
		return NavReady
	case m.gen > m.done:
		return NavBuilding
	default:
		return NavPending
	}
}
