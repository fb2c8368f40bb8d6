package voxel

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/common"
)

// Coord addresses one unit cell of the grid.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// CoordOf returns the cell containing p.
func CoordOf(p mgl64.Vec3) Coord {
	return Coord{X: common.Floor(p.X()), Y: common.Floor(p.Y()), Z: common.Floor(p.Z())}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c Coord) Below() Coord {
	return Coord{X: c.X, Y: c.Y - 1, Z: c.Z}
}

// Center is the world position of the middle of the cell.
func (c Coord) Center() mgl64.Vec3 {
	return mgl64.Vec3{float64(c.X) + 0.5, float64(c.Y) + 0.5, float64(c.Z) + 0.5}
}

func (c Coord) axis(i int) int {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

func (c *Coord) shift(i, step int) {
	switch i {
	case 0:
		c.X += step
	case 1:
		c.Y += step
	default:
		c.Z += step
	}
}

// Cell pairs a coordinate with its material.
type Cell struct {
	Coord    Coord    `yaml:"coord"`
	Material Material `yaml:"material"`
}

// Grid is a sparse voxel volume. Missing cells are air.
type Grid struct {
	cells map[Coord]Material
}

func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]Material)}
}

// Get returns the material at c.
func (g *Grid) Get(c Coord) Material {
	if g == nil {
		return Air
	}
	return g.cells[c]
}

// SetVoxel stores m at c. Setting air clears the cell.
func (g *Grid) SetVoxel(c Coord, m Material) {
	if g == nil {
		return
	}
	if g.cells == nil {
		g.cells = make(map[Coord]Material)
	}
	if m == Air {
		delete(g.cells, c)
		return
	}
	g.cells[c] = m
}

func (g *Grid) IsSolid(c Coord) bool {
	return g.Get(c).Solid()
}

func (g *Grid) Hardness(c Coord) float64 {
	return g.Get(c).Hardness()
}

// DestroyVoxel clears a solid, destructible cell and reports whether it did.
func (g *Grid) DestroyVoxel(c Coord) bool {
	m := g.Get(c)
	if !m.Solid() || m.Indestructible() {
		return false
	}
	delete(g.cells, c)
	return true
}

// Fill sets every cell of the inclusive box spanned by a and b to m and returns the
// number of cells written.
func (g *Grid) Fill(a, b Coord, m Material) int {
	if g == nil {
		return 0
	}
	lo := Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
	hi := Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
	n := 0
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				g.SetVoxel(Coord{X: x, Y: y, Z: z}, m)
				n++
			}
		}
	}
	return n
}

// Len returns the number of non-air cells.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Count returns the number of cells holding m.
func (g *Grid) Count(m Material) int {
	if g == nil {
		return 0
	}
	n := 0
	for _, v := range g.cells {
		if v == m {
			n++
		}
	}
	return n
}

// Cells returns every non-air cell in a stable order.
func (g *Grid) Cells() []Cell {
	if g == nil {
		return nil
	}
	out := make([]Cell, 0, len(g.cells))
	for c, m := range g.cells {
		out = append(out, Cell{Coord: c, Material: m})
	}
	slices.SortFunc(out, func(a, b Cell) int {
		return cmp.Or(cmp.Compare(a.Coord.X, b.Coord.X), cmp.Compare(a.Coord.Y, b.Coord.Y), cmp.Compare(a.Coord.Z, b.Coord.Z))
	})
	return out
}

// Within calls fn for every cell whose center lies within radius of center.
func (g *Grid) Within(center mgl64.Vec3, radius float64, fn func(c Coord, m Material)) {
	if g == nil || radius <= 0 || fn == nil {
		return
	}
	lo := CoordOf(center.Sub(mgl64.Vec3{radius, radius, radius}))
	hi := CoordOf(center.Add(mgl64.Vec3{radius, radius, radius}))
	r2 := radius * radius
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				c := Coord{X: x, Y: y, Z: z}
				if c.Center().Sub(center).LenSqr() > r2 {
					continue
				}
				fn(c, g.Get(c))
			}
		}
	}
}

// Hit describes the first solid cell struck by a ray.
type Hit struct {
	Coord    Coord
	Material Material
	// Point is where the ray enters the cell.
	Point mgl64.Vec3
	// Normal is the face crossed to enter the cell; zero when the ray started
	// inside it.
	Normal Coord
	// T is the fraction of the segment travelled before the hit.
	T float64
}

// RaycastSolid walks the cells crossed by the segment from -> to and returns the
// first solid one.
func (g *Grid) RaycastSolid(from, to mgl64.Vec3) (Hit, bool) {
	cell := CoordOf(from)
	if m := g.Get(cell); m.Solid() {
		return Hit{Coord: cell, Material: m, Point: from}, true
	}

	d := to.Sub(from)
	if d.LenSqr() < 1e-18 {
		return Hit{}, false
	}

	var step [3]int
	var tMax, tDelta [3]float64
	for i := 0; i < 3; i++ {
		switch {
		case d[i] > 0:
			step[i] = 1
			tMax[i] = (float64(cell.axis(i)+1) - from[i]) / d[i]
			tDelta[i] = 1 / d[i]
		case d[i] < 0:
			step[i] = -1
			tMax[i] = (float64(cell.axis(i)) - from[i]) / d[i]
			tDelta[i] = -1 / d[i]
		default:
			tMax[i] = math.Inf(1)
			tDelta[i] = math.Inf(1)
		}
	}

	limit := int(math.Abs(d[0])+math.Abs(d[1])+math.Abs(d[2])) + 4
	for n := 0; n < limit; n++ {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t := tMax[axis]
		if t > 1 {
			return Hit{}, false
		}
		cell.shift(axis, step[axis])
		tMax[axis] += tDelta[axis]

		m := g.Get(cell)
		if !m.Solid() {
			continue
		}
		var normal Coord
		normal.shift(axis, -step[axis])
		return Hit{
			Coord:    cell,
			Material: m,
			Point:    from.Add(d.Mul(t)),
			Normal:   normal,
			T:        t,
		}, true
	}
	return Hit{}, false
}
