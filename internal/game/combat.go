package game

import "fmt"

// CombatManager runs the shared attack pipeline. Anything with combat stats
// and a target may fire: mobile units and fortresses go through the exact
// same checks.
type CombatManager struct {
	projectiles []Projectile
}

func NewCombatManager() *CombatManager {
	return &CombatManager{}
}

// Step advances cooldowns, fires at valid in-range targets, flies
// projectiles and applies their hits. Returns the damage events produced
// this tick, in application order.
func (cm *CombatManager) Step(w *World, dt float64, tick int, log *EventLog) []DamageEvent {
	cm.attack(w, dt, tick, log)
	cm.moveProjectiles(w, dt)
	return cm.applyHits(w, tick, log)
}

// attack ticks every unit's cooldown and fires where possible. The cooldown
// is only reset on an actual shot: an invalid or out-of-range target never
// consumes it.
func (cm *CombatManager) attack(w *World, dt float64, tick int, log *EventLog) {
	for _, u := range w.Units() {
		if u.Dead {
			continue
		}
		if u.Cooldown > 0 {
			u.Cooldown -= dt
			if u.Cooldown < 0 {
				u.Cooldown = 0
			}
		}
		if u.Cooldown > 0 {
			continue
		}

		target := w.Get(u.Target)
		if target == nil || target.Dead {
			continue
		}
		dist := SurfaceDistance(u.Pos, u.Footprint, target.Pos, target.Footprint)
		if dist > u.Combat.Range {
			continue
		}

		cm.projectiles = append(cm.projectiles, Projectile{
			Pos:      u.Pos,
			Attacker: u.ID,
			Target:   target.ID,
			Damage:   u.Combat.Damage,
			Speed:    projectileSpeed,
		})
		u.Cooldown = 1 / u.Combat.AttackRate
		log.Add(EventLogEntry{
			Tick: tick, Unit: u.ID, Team: u.Team,
			Category: "COMBAT", Key: "fired",
			Value:  fmt.Sprintf("at U%d", target.ID),
			NumVal: u.Combat.Damage,
		})
	}
}

// Projectiles returns the in-flight projectiles, for rendering.
func (cm *CombatManager) Projectiles() []Projectile {
	return cm.projectiles
}
