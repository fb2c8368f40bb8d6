package component

import "github.com/milk9111/cannonball/impact"

// AreaEffect is a smoke cloud or lingering blast zone. Age counts ticks since
// the effect appeared and drives its damage pulses.
type AreaEffect struct {
	Effect impact.AreaEffect
	Age    int
}

// Pulse reports whether this tick deals damage.
func (a *AreaEffect) Pulse() bool {
	fx := a.Effect.Effects
	return fx.DamagePerPulse > 0 && fx.PulseInterval > 0 && a.Age%fx.PulseInterval == 0
}

var AreaEffectComponent = NewComponent[AreaEffect]()
