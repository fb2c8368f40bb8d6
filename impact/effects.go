package impact

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

//go:generate go tool mockgen -destination=./mocks/impact_mock.go -package=mocks . Terrain,Actors,Effects,Spawner

// Terrain is the mutable side of the voxel world.
type Terrain interface {
	Hardness(c voxel.Coord) float64
	DestroyVoxel(c voxel.Coord) bool
	SetVoxel(c voxel.Coord, m voxel.Material)
	IsSolid(c voxel.Coord) bool
}

// Actors receives direct impact damage.
type Actors interface {
	ApplyDamage(id actor.ID, amount float64, source uuid.UUID) bool
}

// Effects is a fire-and-forget sink for the side effects of an impact.
type Effects interface {
	Explode(e Explosion)
	SpawnParticles(b ParticleBurst)
	PlaySound(s Sound)
	SpawnAreaEffect(a AreaEffect)
}

// Spawner queues child projectiles. Requests are applied by the host after
// the current tick's projectile pass.
type Spawner interface {
	QueueSpawn(req SpawnRequest)
}

// Explosion is an area blast centered on Position.
type Explosion struct {
	Source   uuid.UUID
	Owner    actor.ID
	Kind     projectile.Kind
	Position mgl64.Vec3
	Radius   float64
	Fire     bool
}

type ParticleKind string

const (
	ParticleSmoke     ParticleKind = "smoke"
	ParticleFlame     ParticleKind = "flame"
	ParticleExplosion ParticleKind = "explosion"
	ParticleDebris    ParticleKind = "debris"
	ParticleCloud     ParticleKind = "cloud"
	ParticlePoof      ParticleKind = "poof"
)

// ParticleBurst asks the client to emit Count particles around Position.
type ParticleBurst struct {
	Kind     ParticleKind
	Position mgl64.Vec3
	Count    int
	Spread   float64
	Speed    float64
}

type SoundKind string

const (
	SoundExplode SoundKind = "explode"
	SoundImpact  SoundKind = "impact"
	SoundSplit   SoundKind = "split"
	SoundFizz    SoundKind = "fizz"
)

type Sound struct {
	Kind     SoundKind
	Position mgl64.Vec3
	Volume   float64
	Pitch    float64
}

type AreaKind string

const (
	AreaSmoke     AreaKind = "smoke"
	AreaLingering AreaKind = "lingering"
)

// TickEffects is what an area effect does to actors inside it.
type TickEffects struct {
	DamagePerPulse float64
	PulseInterval  int
	Obscures       bool
}

// AreaEffect is a lingering region that outlives the projectile.
type AreaEffect struct {
	Kind     AreaKind
	Source   uuid.UUID
	Owner    actor.ID
	Position mgl64.Vec3
	Radius   float64
	Duration int
	Effects  TickEffects
}

// SpawnRequest describes a child projectile to insert next tick.
type SpawnRequest struct {
	Parent          uuid.UUID
	Type            *projectile.Type
	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	Damage          float64
	ExplosionRadius float64
	Owner           actor.ID
}

// Instance builds the child described by r.
func (r SpawnRequest) Instance() *projectile.Instance {
	return projectile.New(r.Type, r.Position, r.Velocity, r.Damage, r.ExplosionRadius, r.Owner)
}
