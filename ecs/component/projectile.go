package component

import "github.com/milk9111/cannonball/projectile"

// Projectile attaches a live projectile instance to an entity.
type Projectile struct {
	Instance *projectile.Instance
	// Seq orders projectiles by insertion so ticking is independent of
	// storage layout.
	Seq uint64
}

var ProjectileComponent = NewComponent[Projectile]()
