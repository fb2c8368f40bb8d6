package arena

import (
	"github.com/milk9111/cannonball/actor"
	combat "github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/system"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
)

// Journal accumulates everything observable that happened in an arena.
type Journal struct {
	Spawned         int
	Exits           map[projectile.ExitReason]int
	Explosions      []impact.Explosion
	Areas           []impact.AreaEffect
	AreasExpired    int
	Pulses          int
	Particles       map[impact.ParticleKind]int
	Sounds          []impact.Sound
	Spawns          []impact.SpawnRequest
	VoxelsDestroyed int
	Damage          map[actor.ID]float64
	Deaths          []actor.ID
	Stress          float64
}

func newJournal() *Journal {
	return &Journal{
		Exits:     make(map[projectile.ExitReason]int),
		Particles: make(map[impact.ParticleKind]int),
		Damage:    make(map[actor.ID]float64),
	}
}

func (j *Journal) record(evt ecs.Event) {
	switch evt.Type {
	case system.EventProjectileSpawned:
		j.Spawned++
	case system.EventProjectileRemoved:
		if p, ok := evt.Data.(*projectile.Instance); ok {
			j.Exits[p.Exit]++
		}
	case system.EventAreaPulse:
		j.Pulses++
	case system.EventAreaExpired:
		j.AreasExpired++
	}
}

func (j *Journal) combat(evt combat.CombatEvent) {
	switch evt.Type {
	case combat.EventDamageApplied:
		j.Damage[evt.TargetID] += evt.Damage
	case combat.EventDeath:
		j.Deaths = append(j.Deaths, evt.TargetID)
	}
}

// TotalDamage sums the damage dealt to every actor.
func (j *Journal) TotalDamage() float64 {
	total := 0.0
	for _, d := range j.Damage {
		total += d
	}
	return total
}
