package system

import (
	"github.com/milk9111/cannonball/actor"
	combat "github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
)

// AreaPulse records one damage pulse of an area effect.
type AreaPulse struct {
	Effect component.AreaEffect
	Hits   int
}

// AreaEffectSystem ages area effects and applies their damage pulses to
// actors inside them. Smoke has no pulse.
type AreaEffectSystem struct {
	actors *actor.Registry
}

func NewAreaEffectSystem(actors *actor.Registry) *AreaEffectSystem {
	return &AreaEffectSystem{actors: actors}
}

func (s *AreaEffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AreaEffectComponent.Kind(), func(e ecs.Entity, area *component.AreaEffect) {
		area.Age++
		if !area.Pulse() {
			return
		}
		fx := area.Effect
		hits := 0
		s.actors.Within(fx.Position, fx.Radius, func(a *actor.Actor, _ float64) {
			if s.actors.Damage(a, fx.Effects.DamagePerPulse, fx.Source, combat.CauseLingering, fx.Position) {
				hits++
			}
		})
		w.Events().Push(ecs.Event{Type: EventAreaPulse, Data: AreaPulse{Effect: *area, Hits: hits}})
	})
}
