package ballistics

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/collision"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

// groundProbe is how far below the projectile's box the settle check looks.
const groundProbe = 0.01

// Ground answers whether a cell can support a resting projectile.
type Ground interface {
	IsSolid(c voxel.Coord) bool
}

// Stepper advances one projectile by one tick: lifetime, forces, collision,
// impact, movement and settling, in that order.
type Stepper struct {
	Integrator  *Integrator
	Resolver    *collision.Resolver
	Impact      *impact.Controller
	Ground      Ground
	MaxLifetime int

	logger *slog.Logger
}

func NewStepper(in *Integrator, res *collision.Resolver, ctrl *impact.Controller, ground Ground, logger *slog.Logger) *Stepper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stepper{
		Integrator:  in,
		Resolver:    res,
		Impact:      ctrl,
		Ground:      ground,
		MaxLifetime: projectile.MaxLifetimeTicks,
		logger:      logger,
	}
}

// Tick runs one simulation step for p. Terminated instances are left alone.
func (s *Stepper) Tick(p *projectile.Instance) {
	if p.Terminated() {
		return
	}
	// A restored instance that already went off has nothing left to do.
	if p.HasExploded {
		p.Terminate(projectile.ExitSpent)
		return
	}

	p.TicksAlive++
	if p.TicksAlive > s.MaxLifetime {
		s.logger.Debug("projectile expired", "projectile", p.ID, "ticks", p.TicksAlive, "position", p.Position)
		p.Terminate(projectile.ExitExpired)
		return
	}

	s.Integrator.ApplyForces(p)

	if s.Resolver != nil {
		if hit, ok := s.Resolver.Resolve(p, 1); ok {
			if s.Impact.HandleHit(p, hit) {
				s.Impact.Trail(p)
			}
			return
		}
	}

	p.Position = p.Position.Add(p.Velocity)

	if p.Speed() < s.minVelocity() && s.onGround(p) {
		s.Impact.Settle(p)
		return
	}
	if s.Impact.Apex(p) {
		return
	}
	s.Impact.Trail(p)
}

func (s *Stepper) minVelocity() float64 {
	if s.Impact == nil {
		return impact.DefaultConfig().MinVelocity
	}
	return s.Impact.Config().MinVelocity
}

func (s *Stepper) onGround(p *projectile.Instance) bool {
	if s.Ground == nil {
		return false
	}
	probe := p.Position.Sub(mgl64.Vec3{0, projectile.HalfExtent + groundProbe, 0})
	return s.Ground.IsSolid(voxel.CoordOf(probe))
}
