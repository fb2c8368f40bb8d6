package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

//go:generate go tool mockgen -destination=./mocks/collision_mock.go -package=mocks . Terrain,Actors

// SweepInflate pads the swept projectile box used to gather actor candidates.
const SweepInflate = 0.5

// Terrain is the read side of the voxel world used for ray casts.
type Terrain interface {
	RaycastSolid(from, to mgl64.Vec3) (voxel.Hit, bool)
}

// Actors finds the first actor crossed by a swept projectile box. Projectiles
// are never registered as actors, so they cannot hit each other.
type Actors interface {
	SweepTest(swept actor.Box, from, to mgl64.Vec3, exclude []actor.ID) (actor.ID, mgl64.Vec3, bool)
}

// HitKind tags which variant of Hit is populated.
type HitKind uint8

const (
	HitTerrain HitKind = iota + 1
	HitActor
)

func (k HitKind) String() string {
	switch k {
	case HitTerrain:
		return "terrain"
	case HitActor:
		return "actor"
	}
	return "none"
}

// Hit is the result of one resolve pass: either a voxel (Coord, Material) or
// an actor (Actor). Point is where the swept segment meets the target.
type Hit struct {
	Kind     HitKind
	Coord    voxel.Coord
	Material voxel.Material
	Actor    actor.ID
	Point    mgl64.Vec3
}

func TerrainHit(h voxel.Hit) Hit {
	return Hit{Kind: HitTerrain, Coord: h.Coord, Material: h.Material, Point: h.Point}
}

func ActorHit(id actor.ID, point mgl64.Vec3) Hit {
	return Hit{Kind: HitActor, Actor: id, Point: point}
}

// Resolver finds what a projectile strikes during one tick.
type Resolver struct {
	terrain Terrain
	actors  Actors
}

func NewResolver(terrain Terrain, actors Actors) *Resolver {
	return &Resolver{terrain: terrain, actors: actors}
}

// Resolve sweeps p from its position along velocity*dt. An actor hit always
// wins over a terrain hit, even when the voxel is closer.
func (r *Resolver) Resolve(p *projectile.Instance, dt float64) (Hit, bool) {
	if r == nil || p.Terminated() {
		return Hit{}, false
	}
	from := p.Position
	move := p.Velocity.Mul(dt)
	to := from.Add(move)

	var terrainHit voxel.Hit
	terrainOK := false
	if r.terrain != nil {
		terrainHit, terrainOK = r.terrain.RaycastSolid(from, to)
	}

	if r.actors != nil {
		swept := p.Box().ExpandTowards(move).Inflate(SweepInflate)
		var exclude []actor.ID
		if p.Owner != actor.Nil {
			exclude = []actor.ID{p.Owner}
		}
		if id, point, ok := r.actors.SweepTest(swept, from, to, exclude); ok {
			return ActorHit(id, point), true
		}
	}

	if terrainOK {
		return TerrainHit(terrainHit), true
	}
	return Hit{}, false
}
