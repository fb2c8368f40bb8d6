package system

import (
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
)

// TTLSystem decrements tick-based TTL components and destroys entities when
// the TTL reaches zero. Expiring area effects are announced first.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Ticks > 0 {
			ttl.Ticks--
			if ttl.Ticks > 0 {
				return
			}
		}

		if area, ok := ecs.Get(w, e, component.AreaEffectComponent.Kind()); ok {
			w.Events().Push(ecs.Event{Type: EventAreaExpired, Data: area.Effect})
		}
		ecs.DestroyEntity(w, e)
	})
}
