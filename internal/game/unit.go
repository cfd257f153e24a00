package game

// Team identifies which side a unit fights for. The player advances toward
// +x, the enemy toward -x.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "PLAYER"
	}
	return "ENEMY"
}

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// AdvanceSign is the sign of the team's canonical advance direction along x.
func (t Team) AdvanceSign() float64 {
	if t == TeamPlayer {
		return 1
	}
	return -1
}

// Soldier stats.
const (
	soldierHealth     = 100.0 // hp
	soldierDamage     = 10.0  // hp per hit
	soldierAttackRate = 1.0   // attacks/s
	soldierRange      = 30.0  // px, surface to surface
	soldierSpeed      = 50.0  // px/s
	soldierRadius     = 12.0  // px
)

// Fortress stats. Fortresses never move but target and attack like any
// other combatant.
const (
	fortressHealth     = 2000.0 // hp
	fortressDamage     = 50.0   // hp per hit
	fortressAttackRate = 0.5    // attacks/s
	fortressRange      = 200.0  // px, surface to surface
	fortressWidth      = 128.0  // px
	fortressHeight     = 640.0  // px
)

// UnitID is a stable per-entity identifier. References held across ticks are
// weak: look the ID up and check liveness before every use.
type UnitID int

// NoUnit is the zero target.
const NoUnit UnitID = 0

// Health is current/max hit points. Current never goes below zero.
type Health struct {
	Current float64
	Max     float64
}

// Damage subtracts hp, clamping at zero.
func (h *Health) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h Health) Dead() bool { return h.Current <= 0 }

// CombatStats describes a unit's attack.
type CombatStats struct {
	Damage     float64 // hp per hit
	AttackRate float64 // attacks/s
	Range      float64 // px, surface to surface
}

// Unit is any combatant: soldiers and fortresses share one attack and
// targeting pipeline. Movement is optional; Speed == 0 means stationary.
type Unit struct {
	ID        UnitID
	Team      Team
	Pos       Vec2
	Vel       Vec2
	Footprint Footprint
	Health    Health
	Combat    CombatStats
	Cooldown  float64 // seconds until the next shot may fire
	Target    UnitID  // weak reference, NoUnit when none

	Speed   float64 // px/s, 0 for stationary combatants
	Path    NavPath // only meaningful when Speed > 0
	PrefVel Vec2    // steering output consumed by the avoidance pass

	Fortress bool
	Dead     bool
}

// Mobile reports whether the unit has movement capability.
func (u *Unit) Mobile() bool { return u.Speed > 0 }

// NewSoldier builds a fully-populated soldier at pos. Spawning attaches the
// whole component set atomically; there is no spawn-then-configure phase.
func NewSoldier(team Team, pos Vec2) *Unit {
	return &Unit{
		Team:      team,
		Pos:       pos,
		Footprint: CircleFootprint(soldierRadius),
		Health:    Health{Current: soldierHealth, Max: soldierHealth},
		Combat: CombatStats{
			Damage:     soldierDamage,
			AttackRate: soldierAttackRate,
			Range:      soldierRange,
		},
		Speed: soldierSpeed,
	}
}

// NewFortress builds a team's fortress at its fixed battlefield position.
func NewFortress(team Team) *Unit {
	return &Unit{
		Team:      team,
		Pos:       fortressCenter(team),
		Footprint: RectFootprint(fortressWidth, fortressHeight),
		Health:    Health{Current: fortressHealth, Max: fortressHealth},
		Combat: CombatStats{
			Damage:     fortressDamage,
			AttackRate: fortressAttackRate,
			Range:      fortressRange,
		},
		Fortress: true,
	}
}
