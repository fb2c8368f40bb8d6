package system

// Event types pushed onto the world queue by the simulation systems.
const (
	EventProjectileSpawned = "projectile_spawned"
	EventProjectileRemoved = "projectile_removed"
	EventAreaPulse         = "area_pulse"
	EventAreaExpired       = "area_expired"
)
