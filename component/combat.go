package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
)

// DamageCause says how an actor was hurt.
type DamageCause string

const (
	CauseImpact    DamageCause = "impact"
	CauseExplosion DamageCause = "explosion"
	CauseLingering DamageCause = "lingering"
)

// CombatEvent is emitted when damage is resolved against an actor.
type CombatEvent struct {
	Type     CombatEventType
	SourceID uuid.UUID
	TargetID uuid.UUID
	Damage   float64
	Cause    DamageCause
	Tick     int
	Pos      mgl64.Vec3
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to registered handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe registers a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
