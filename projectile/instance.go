package projectile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/actor"
)

// HalfExtent is half the edge length of a projectile's bounding cube.
const HalfExtent = 0.25

// Phase is the impact state of an instance.
type Phase uint8

const (
	Flying Phase = iota
	Exploding
	Penetrating
	Splitting
	Settling
	Terminated
)

var phaseNames = [...]string{"flying", "exploding", "penetrating", "splitting", "settling", "terminated"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// ExitReason records why an instance left the simulation.
type ExitReason uint8

const (
	ExitNone ExitReason = iota
	ExitExpired
	ExitExploded
	ExitSplit
	ExitAbsorbed
	ExitDissipated
	ExitSpent
)

var exitNames = [...]string{"none", "expired", "exploded", "split", "absorbed", "dissipated", "spent"}

func (r ExitReason) String() string {
	if int(r) < len(exitNames) {
		return exitNames[r]
	}
	return "unknown"
}

// Instance is the mutable state of one projectile in flight.
type Instance struct {
	ID    uuid.UUID
	Owner actor.ID
	Type  *Type

	Position mgl64.Vec3
	Velocity mgl64.Vec3

	TicksAlive       int
	HasExploded      bool
	BlocksPenetrated int

	Damage          float64
	ExplosionRadius float64

	Phase Phase
	Exit  ExitReason
}

// New creates a flying instance. A nil type is replaced by the default
// standard type.
func New(t *Type, pos, vel mgl64.Vec3, damage, radius float64, owner actor.ID) *Instance {
	if t == nil {
		t = DefaultTable().Standard()
	}
	return &Instance{
		ID:              uuid.New(),
		Owner:           owner,
		Type:            t,
		Position:        pos,
		Velocity:        vel,
		Damage:          damage,
		ExplosionRadius: radius,
	}
}

func (p *Instance) Speed() float64 {
	if p == nil {
		return 0
	}
	return p.Velocity.Len()
}

func (p *Instance) Terminated() bool {
	return p == nil || p.Phase == Terminated
}

// Terminate removes the instance from further processing.
func (p *Instance) Terminate(reason ExitReason) {
	if p == nil || p.Phase == Terminated {
		return
	}
	p.Phase = Terminated
	p.Exit = reason
}

// Latch sets HasExploded and reports whether this call was the one that set
// it. Every terminal effect goes through here first.
func (p *Instance) Latch() bool {
	if p == nil || p.HasExploded {
		return false
	}
	p.HasExploded = true
	return true
}

// Box is the projectile's bounding cube at its current position.
func (p *Instance) Box() actor.Box {
	return actor.BoxAround(p.Position, HalfExtent, HalfExtent)
}
