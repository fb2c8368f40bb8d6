package system

import (
	"cmp"
	"slices"

	"github.com/milk9111/cannonball/ballistics"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
	"github.com/milk9111/cannonball/projectile"
)

// Projectiles inserts projectile entities with a monotonically increasing
// sequence number.
type Projectiles struct {
	seq uint64
}

// Insert adds p to w as a new entity.
func (ps *Projectiles) Insert(w *ecs.World, p *projectile.Instance) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	ps.seq++
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Instance: p, Seq: ps.seq}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	w.Events().Push(ecs.Event{Type: EventProjectileSpawned, Data: p})
	return e, nil
}

// Live returns the projectiles of w in insertion order.
func (ps *Projectiles) Live(w *ecs.World) []*projectile.Instance {
	batch := collect(w)
	out := make([]*projectile.Instance, 0, len(batch))
	for _, it := range batch {
		out = append(out, it.proj.Instance)
	}
	return out
}

type liveProjectile struct {
	e    ecs.Entity
	proj *component.Projectile
}

func collect(w *ecs.World) []liveProjectile {
	var batch []liveProjectile
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if p.Instance != nil {
			batch = append(batch, liveProjectile{e: e, proj: p})
		}
	})
	slices.SortFunc(batch, func(a, b liveProjectile) int { return cmp.Compare(a.proj.Seq, b.proj.Seq) })
	return batch
}

// ProjectileSystem ticks every live projectile once and removes the ones
// that terminated.
type ProjectileSystem struct {
	stepper *ballistics.Stepper
}

func NewProjectileSystem(stepper *ballistics.Stepper) *ProjectileSystem {
	return &ProjectileSystem{stepper: stepper}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || s.stepper == nil || w == nil {
		return
	}
	for _, it := range collect(w) {
		p := it.proj.Instance
		s.stepper.Tick(p)
		if !p.Terminated() {
			continue
		}
		w.Events().Push(ecs.Event{Type: EventProjectileRemoved, Data: p})
		ecs.DestroyEntity(w, it.e)
	}
}
