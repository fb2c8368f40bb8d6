package common

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSeed is used when a scenario does not name one.
const DefaultSeed = "cannonball"

// DeterministicSeedValue derives a stable stream seed from a root seed and a
// subsystem label.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}

func RandomFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.New(rand.NewSource(DeterministicSeedValue(DefaultSeed, "world"))).Float64()
	}
	return rng.Float64()
}

func RandomAngle(rng *rand.Rand) float64 {
	return RandomFloat(rng) * 2 * math.Pi
}

// RandomRange returns a value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + RandomFloat(rng)*(max-min)
}

// RandomUnitVector samples a direction uniformly on the unit sphere.
func RandomUnitVector(rng *rand.Rand) mgl64.Vec3 {
	z := RandomRange(rng, -1, 1)
	theta := RandomAngle(rng)
	r := math.Sqrt(1 - z*z)
	return mgl64.Vec3{r * math.Cos(theta), z, r * math.Sin(theta)}
}
