package system

import (
	"log/slog"

	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
)

// SpawnSystem turns queued spawn requests into projectile entities. It runs
// after ProjectileSystem so children first move on the following tick.
type SpawnSystem struct {
	projectiles *Projectiles
	logger      *slog.Logger
}

func NewSpawnSystem(projectiles *Projectiles, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpawnSystem{projectiles: projectiles, logger: logger}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.SpawnRequestComponent.Kind(), func(e ecs.Entity, req *component.SpawnRequest) {
		ecs.DestroyEntity(w, e)
		if _, err := s.projectiles.Insert(w, req.Request.Instance()); err != nil {
			s.logger.Warn("spawn request dropped", "parent", req.Request.Parent, "err", err)
		}
	})
}
