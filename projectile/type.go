package projectile

import "math"

// Kind is the stable id of a projectile type.
type Kind string

const (
	KindStandard       Kind = "standard"
	KindHeavy          Kind = "heavy"
	KindRocket         Kind = "rocket"
	KindArmorPiercing  Kind = "armor_piercing"
	KindIncendiary     Kind = "incendiary"
	KindSmoke          Kind = "smoke"
	KindGrapeshot      Kind = "grapeshot"
	KindCluster        Kind = "cluster"
	KindHighYield      Kind = "high_yield"
	KindRocketAssisted Kind = "rocket_assisted"
	KindFragmentation  Kind = "fragmentation"
	KindNova           Kind = "nova"
)

const (
	// MaxPenetration caps how many voxels a single projectile may bore through.
	MaxPenetration = 3
	// MaxLifetimeTicks is the age at which an airborne projectile despawns.
	MaxLifetimeTicks = 600
	// ThrustTicks is the length of the rocket burn.
	ThrustTicks = 60
	// RocketThrust and AssistedThrust are the per-tick burn accelerations.
	RocketThrust   = 0.025
	AssistedThrust = 0.015

	ApexSplitCount     = 8
	FragmentSplitCount = 12
)

// Type is an immutable bundle of physics and behaviour coefficients.
type Type struct {
	ID                      Kind
	DisplayName             string
	GravityMultiplier       float64
	AirResistanceMultiplier float64
	Mass                    float64
	StressCostMultiplier    float64
	Caps                    Capability
}

func (t *Type) Has(c Capability) bool {
	return t != nil && t.Caps.Has(c)
}

func (t *Type) CanPenetrate() bool   { return t.Has(CapPenetrate) }
func (t *Type) CausesFire() bool     { return t.Has(CapFire) }
func (t *Type) HasRocketTrail() bool { return t.Has(CapRocketTrail) }
func (t *Type) IsHighYield() bool    { return t.Has(CapHighYield) }
func (t *Type) HasThrust() bool      { return t.Has(CapThrust) }
func (t *Type) IsFragmentation() bool {
	return t.Has(CapFragmentation)
}

// EffectiveGravity is the downward acceleration applied each tick.
func (t *Type) EffectiveGravity(base float64) float64 {
	return base * t.GravityMultiplier * (1 + t.Mass*0.005)
}

// DragFactor is the per-tick speed retention, always in (0, 1].
func (t *Type) DragFactor() float64 {
	if t.Mass <= 0 {
		return 1
	}
	f := 1 - 0.01*t.AirResistanceMultiplier/math.Sqrt(t.Mass)
	return max(f, 0)
}

// Thrust returns the forward acceleration for a projectile of the given age.
func (t *Type) Thrust(ticksAlive int) float64 {
	if !t.HasThrust() && !t.HasRocketTrail() {
		return 0
	}
	if ticksAlive > ThrustTicks {
		return 0
	}
	if t.HasThrust() {
		return AssistedThrust
	}
	return RocketThrust
}

// FragmentCount is how many children a split spawns.
func (t *Type) FragmentCount() int {
	switch {
	case t.Has(CapApexSplit):
		return ApexSplitCount
	case t.IsFragmentation():
		return FragmentSplitCount
	}
	return 0
}

// ExplosionMultiplier scales the payload radius of a standard explosion.
func (t *Type) ExplosionMultiplier() float64 {
	switch {
	case t.Has(CapTopTier):
		return 2.5
	case t.IsHighYield():
		return 1.5
	}
	return 1.0
}

// CanRicochet reports whether the round is dense enough to skip off armour.
func (t *Type) CanRicochet() bool {
	return t.CanPenetrate() && t.Mass >= 10
}

// StressCost is the launcher stress consumed per shot.
func (t *Type) StressCost(base float64) float64 {
	return base * t.StressCostMultiplier
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return string(t.ID)
}
