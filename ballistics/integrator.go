package ballistics

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/projectile"
)

const (
	// BaseGravity is the downward acceleration in blocks per tick squared.
	BaseGravity = 0.05
	// WindChance is the per-tick probability of a lateral gust.
	WindChance = 0.3
	// DefaultWindStrength bounds each horizontal gust component before mass
	// scaling.
	DefaultWindStrength = 0.02
)

// Integrator applies gravity, drag, wind and thrust to a projectile's
// velocity. The wind stream is shared by every projectile of a world.
type Integrator struct {
	Gravity      float64
	WindStrength float64
	wind         *rand.Rand
}

// NewIntegrator returns an integrator drawing wind from rng. A nil rng
// disables wind.
func NewIntegrator(rng *rand.Rand) *Integrator {
	return &Integrator{Gravity: BaseGravity, WindStrength: DefaultWindStrength, wind: rng}
}

// ApplyForces advances p's velocity by one tick. Position is untouched. A
// projectile at rest only falls: drag, wind and thrust need a direction.
func (in *Integrator) ApplyForces(p *projectile.Instance) {
	if in == nil || p == nil || p.Type == nil {
		return
	}
	t := p.Type
	v := p.Velocity
	resting := v.Len() < common.Epsilon

	v[1] -= t.EffectiveGravity(in.Gravity)
	if resting {
		p.Velocity = v
		return
	}

	v = v.Mul(t.DragFactor())
	v = v.Add(in.gust(t.Mass))

	if thrust := t.Thrust(p.TicksAlive); thrust > 0 {
		if dir, ok := common.SafeNormalize(v); ok {
			v = v.Add(dir.Mul(thrust))
		}
	}

	p.Velocity = v
}

func (in *Integrator) gust(mass float64) mgl64.Vec3 {
	if in.wind == nil || in.WindStrength <= 0 {
		return mgl64.Vec3{}
	}
	if in.wind.Float64() >= WindChance {
		return mgl64.Vec3{}
	}
	scale := in.WindStrength / math.Sqrt(max(mass, 1e-6))
	return mgl64.Vec3{
		common.RandomRange(in.wind, -scale, scale),
		0,
		common.RandomRange(in.wind, -scale, scale),
	}
}
