package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Box is an axis aligned bounding box in world space.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxAround builds a box centered on c with the given half extents.
func BoxAround(c mgl64.Vec3, halfWidth, halfHeight float64) Box {
	half := mgl64.Vec3{halfWidth, halfHeight, halfWidth}
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// BoxOnFeet builds an upright box standing on feet, the way actors are placed.
func BoxOnFeet(feet mgl64.Vec3, width, height float64) Box {
	hw := width / 2
	return Box{
		Min: mgl64.Vec3{feet.X() - hw, feet.Y(), feet.Z() - hw},
		Max: mgl64.Vec3{feet.X() + hw, feet.Y() + height, feet.Z() + hw},
	}
}

func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// ExpandTowards stretches the box along d so it covers a whole swept move.
func (b Box) ExpandTowards(d mgl64.Vec3) Box {
	out := b
	for i := 0; i < 3; i++ {
		if d[i] < 0 {
			out.Min[i] += d[i]
		} else {
			out.Max[i] += d[i]
		}
	}
	return out
}

// Inflate grows the box by r on every side.
func (b Box) Inflate(r float64) Box {
	pad := mgl64.Vec3{r, r, r}
	return Box{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

func (b Box) Intersects(o Box) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Distance returns the distance from p to the closest point of the box.
func (b Box) Distance(p mgl64.Vec3) float64 {
	var sq float64
	for i := 0; i < 3; i++ {
		v := p[i]
		if v < b.Min[i] {
			sq += (b.Min[i] - v) * (b.Min[i] - v)
		} else if v > b.Max[i] {
			sq += (v - b.Max[i]) * (v - b.Max[i])
		}
	}
	return math.Sqrt(sq)
}

// BB projects the box onto the horizontal plane for the broadphase.
func (b Box) BB() cp.BB {
	return cp.BB{L: b.Min.X(), B: b.Min.Z(), R: b.Max.X(), T: b.Max.Z()}
}

// SegmentEntry returns the fraction of from -> to at which the segment enters
// the box. The horizontal slabs come from the box footprint, queried from
// both ends for the entry and exit fractions; the vertical slab clips those.
func (b Box) SegmentEntry(from, to mgl64.Vec3) (float64, bool) {
	bb := b.BB()
	a, c := footprint(from), footprint(to)
	tmin := bb.SegmentQuery(a, c)
	if tmin == cp.INFINITY {
		return 0, false
	}
	back := bb.SegmentQuery(c, a)
	if back == cp.INFINITY {
		return 0, false
	}
	tmax := 1 - back

	dy := to.Y() - from.Y()
	if dy == 0 {
		if from.Y() < b.Min.Y() || from.Y() > b.Max.Y() {
			return 0, false
		}
	} else {
		t1 := (b.Min.Y() - from.Y()) / dy
		t2 := (b.Max.Y() - from.Y()) / dy
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax >= tmin {
		return tmin, true
	}
	return 0, false
}

func footprint(p mgl64.Vec3) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Z()}
}
