package actor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/component"
)

var (
	ErrDuplicateActor = errors.New("actor: duplicate id")
	ErrNilActor       = errors.New("actor: actor is nil")
)

// HitMargin pads actor boxes for the exact swept test.
const HitMargin = 0.3

// Actor is a damageable body in the world.
type Actor struct {
	ID     ID
	Name   string
	Box    Box
	Health *component.Health
}

func (a *Actor) Alive() bool {
	return a != nil && a.Health.IsAlive()
}

// Registry owns the actor set of one world.
type Registry struct {
	actors  []*Actor
	byID    map[ID]*Actor
	events  component.CombatEventEmitter
	iframes int
	tick    int
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[ID]*Actor)}
}

// Add registers a. A missing id is generated, missing health defaults to 20.
func (r *Registry) Add(a *Actor) error {
	if a == nil {
		return ErrNilActor
	}
	if a.ID == Nil {
		a.ID = NewID()
	}
	if r.byID == nil {
		r.byID = make(map[ID]*Actor)
	}
	if _, ok := r.byID[a.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateActor, a.ID)
	}
	if a.Health == nil {
		a.Health = component.NewHealth(20)
	}
	r.actors = append(r.actors, a)
	r.byID[a.ID] = a
	return nil
}

func (r *Registry) Get(id ID) (*Actor, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.byID[id]
	return a, ok
}

func (r *Registry) Remove(id ID) bool {
	if r == nil {
		return false
	}
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	r.actors = slices.DeleteFunc(r.actors, func(a *Actor) bool { return a.ID == id })
	return true
}

// All returns actors in insertion order.
func (r *Registry) All() []*Actor {
	if r == nil {
		return nil
	}
	return slices.Clone(r.actors)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.actors)
}

// Events exposes the combat event emitter.
func (r *Registry) Events() *component.CombatEventEmitter {
	if r == nil {
		return nil
	}
	return &r.events
}

// SetIFrames sets how many ticks an actor ignores damage after being hurt.
func (r *Registry) SetIFrames(ticks int) {
	if r == nil {
		return
	}
	r.iframes = max(ticks, 0)
}

// Tick advances per-actor timers and records the current world tick.
func (r *Registry) Tick(tick int) {
	if r == nil {
		return
	}
	r.tick = tick
	for _, a := range r.actors {
		a.Health.Tick()
	}
}

// SweepTest returns the live actor whose padded box the segment from -> to
// enters first. Only actors overlapping the swept box are considered.
func (r *Registry) SweepTest(swept Box, from, to mgl64.Vec3, exclude []ID) (ID, mgl64.Vec3, bool) {
	if r == nil {
		return Nil, mgl64.Vec3{}, false
	}
	sweptBB := swept.BB()
	best := 2.0
	var hit *Actor
	for _, a := range r.actors {
		if !a.Alive() || slices.Contains(exclude, a.ID) {
			continue
		}
		// Footprint early-out only; SegmentEntry makes the call.
		if !sweptBB.Intersects(a.Box.BB()) {
			continue
		}
		if swept.Min.Y() > a.Box.Max.Y() || swept.Max.Y() < a.Box.Min.Y() {
			continue
		}
		t, ok := a.Box.Inflate(HitMargin).SegmentEntry(from, to)
		if !ok || t >= best {
			continue
		}
		best = t
		hit = a
	}
	if hit == nil {
		return Nil, mgl64.Vec3{}, false
	}
	return hit.ID, from.Add(to.Sub(from).Mul(best)), true
}

// ApplyDamage hurts id by amount on behalf of source as a direct impact.
func (r *Registry) ApplyDamage(id ID, amount float64, source uuid.UUID) bool {
	a, ok := r.Get(id)
	if !ok {
		return false
	}
	return r.Damage(a, amount, source, component.CauseImpact, a.Box.Center())
}

// Damage applies amount to a and emits the resulting combat events.
func (r *Registry) Damage(a *Actor, amount float64, source uuid.UUID, cause component.DamageCause, pos mgl64.Vec3) bool {
	if r == nil || !a.Alive() {
		return false
	}
	evt := component.CombatEvent{
		Type:     component.EventDamageApplied,
		SourceID: source,
		TargetID: a.ID,
		Damage:   amount,
		Cause:    cause,
		Tick:     r.tick,
		Pos:      pos,
	}
	if !a.Health.Absorb(amount) {
		return false
	}
	r.events.Emit(evt)
	if !a.Health.IsAlive() {
		death := evt
		death.Type = component.EventDeath
		r.events.Emit(death)
		return true
	}
	a.Health.Guard(r.iframes)
	return true
}

// Within calls fn for each live actor whose box lies within radius of center,
// passing the distance to the closest point of the box.
func (r *Registry) Within(center mgl64.Vec3, radius float64, fn func(a *Actor, dist float64)) {
	if r == nil || fn == nil {
		return
	}
	for _, a := range r.actors {
		if !a.Alive() {
			continue
		}
		d := a.Box.Distance(center)
		if d <= radius {
			fn(a, d)
		}
	}
}
