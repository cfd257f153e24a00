package game

import "fmt"

// projectileSpeed is the default flight speed of a shot.
const projectileSpeed = 200.0 // px/s

// Projectile is a shot in flight. It homes on its target's current position
// and carries the attacker's damage; the target reference is weak and is
// re-validated every tick of flight. A non-positive Speed is an instant hit.
type Projectile struct {
	Pos      Vec2
	Attacker UnitID
	Target   UnitID
	Damage   float64
	Speed    float64 // px/s
	hit      bool
}

// DamageEvent records one application of damage, emitted the tick it lands.
type DamageEvent struct {
	Attacker UnitID
	Target   UnitID
	Amount   float64
	Killed   bool
}

// moveProjectiles flies each projectile toward its target. A projectile
// whose step would overshoot snaps onto the target and is marked hit; one
// whose target no longer exists is dropped without effect. A non-positive
// flight speed degenerates to an instant hit.
func (cm *CombatManager) moveProjectiles(w *World, dt float64) {
	kept := cm.projectiles[:0]
	for _, p := range cm.projectiles {
		target := w.Get(p.Target)
		if target == nil || target.Dead {
			continue
		}
		delta := target.Pos.Sub(p.Pos)
		step := p.Speed * dt
		if p.Speed <= 0 || delta.Len() <= step {
			p.Pos = target.Pos
			p.hit = true
		} else {
			p.Pos = p.Pos.Add(delta.Norm().Scale(step))
		}
		kept = append(kept, p)
	}
	cm.projectiles = kept
}

// applyHits lands every projectile marked hit this tick. Each projectile
// damages its target exactly once and is then removed. Health clamps at
// zero; the death pass runs afterward and observes the zero-health unit
// still present.
func (cm *CombatManager) applyHits(w *World, tick int, log *EventLog) []DamageEvent {
	var events []DamageEvent
	kept := cm.projectiles[:0]
	for _, p := range cm.projectiles {
		if !p.hit {
			kept = append(kept, p)
			continue
		}
		target := w.Get(p.Target)
		if target == nil || target.Dead {
			continue
		}
		target.Health.Damage(p.Damage)
		events = append(events, DamageEvent{
			Attacker: p.Attacker,
			Target:   p.Target,
			Amount:   p.Damage,
			Killed:   target.Health.Dead(),
		})
		log.Add(EventLogEntry{
			Tick: tick, Unit: p.Target, Team: target.Team,
			Category: "COMBAT", Key: "damaged",
			Value:  fmt.Sprintf("by U%d", p.Attacker),
			NumVal: p.Damage,
		})
	}
	cm.projectiles = kept
	return events
}
