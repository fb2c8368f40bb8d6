package arena

import (
	"github.com/milk9111/cannonball/actor"
	combat "github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/voxel"
)

var (
	_ impact.Effects = (*Arena)(nil)
	_ impact.Spawner = (*Arena)(nil)
)

// Explode breaks soft voxels inside the blast and hurts actors within twice
// its radius, scaled down with distance.
func (a *Arena) Explode(e impact.Explosion) {
	a.journal.Explosions = append(a.journal.Explosions, e)
	if e.Radius <= 0 {
		return
	}

	if !a.cfg.ProtectTerrain {
		limit := e.Radius * a.cfg.BlastPower
		a.grid.Within(e.Position, e.Radius, func(c voxel.Coord, m voxel.Material) {
			if !m.Solid() || m.Indestructible() || m.Hardness() > limit {
				return
			}
			if a.grid.DestroyVoxel(c) {
				a.journal.VoxelsDestroyed++
			}
		})
	}

	reach := e.Radius * 2
	a.actors.Within(e.Position, reach, func(act *actor.Actor, dist float64) {
		exposure := 1 - dist/reach
		dmg := (exposure*exposure+exposure)/2*7*reach + 1
		a.actors.Damage(act, dmg, e.Source, combat.CauseExplosion, e.Position)
	})
}

func (a *Arena) SpawnParticles(b impact.ParticleBurst) {
	a.journal.Particles[b.Kind] += b.Count
}

func (a *Arena) PlaySound(s impact.Sound) {
	a.journal.Sounds = append(a.journal.Sounds, s)
}

// SpawnAreaEffect adds a timed area entity. It is aged by the area effect
// system and removed by the TTL system.
func (a *Arena) SpawnAreaEffect(fx impact.AreaEffect) {
	a.journal.Areas = append(a.journal.Areas, fx)
	a.addArea(fx, 0, fx.Duration)
}

func (a *Arena) addArea(fx impact.AreaEffect, age, remaining int) {
	if remaining <= 0 {
		return
	}
	e := ecs.CreateEntity(a.world)
	if err := ecs.Add(a.world, e, component.AreaEffectComponent.Kind(), &component.AreaEffect{Effect: fx, Age: age}); err != nil {
		a.logger.Error("area effect dropped", "kind", fx.Kind, "err", err)
		ecs.DestroyEntity(a.world, e)
		return
	}
	_ = ecs.Add(a.world, e, component.TTLComponent.Kind(), &component.TTL{Ticks: remaining})
}

// QueueSpawn defers a child projectile until the spawn system runs.
func (a *Arena) QueueSpawn(req impact.SpawnRequest) {
	a.journal.Spawns = append(a.journal.Spawns, req)
	e := ecs.CreateEntity(a.world)
	if err := ecs.Add(a.world, e, component.SpawnRequestComponent.Kind(), &component.SpawnRequest{Request: req}); err != nil {
		a.logger.Error("spawn request dropped", "parent", req.Parent, "err", err)
		ecs.DestroyEntity(a.world, e)
	}
}
