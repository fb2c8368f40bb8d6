package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRaycastSolid(t *testing.T) {
	cases := []struct {
		name      string
		solid     []Coord
		from, to  mgl64.Vec3
		wantHit   bool
		wantCoord Coord
		wantPoint mgl64.Vec3
	}{
		{
			name:      "straight_x",
			solid:     []Coord{{X: 5, Y: 0, Z: 0}},
			from:      mgl64.Vec3{0.5, 0.5, 0.5},
			to:        mgl64.Vec3{9.5, 0.5, 0.5},
			wantHit:   true,
			wantCoord: Coord{X: 5},
			wantPoint: mgl64.Vec3{5, 0.5, 0.5},
		},
		{
			name:      "falling_onto_floor",
			solid:     []Coord{{X: 2, Y: -1, Z: 2}},
			from:      mgl64.Vec3{2.5, 1.2, 2.5},
			to:        mgl64.Vec3{2.5, -0.8, 2.5},
			wantHit:   true,
			wantCoord: Coord{X: 2, Y: -1, Z: 2},
			wantPoint: mgl64.Vec3{2.5, 0, 2.5},
		},
		{
			name:    "stops_short",
			solid:   []Coord{{X: 5}},
			from:    mgl64.Vec3{0.5, 0.5, 0.5},
			to:      mgl64.Vec3{4.9, 0.5, 0.5},
			wantHit: false,
		},
		{
			name:      "first_of_two",
			solid:     []Coord{{X: 3}, {X: 2}},
			from:      mgl64.Vec3{0.5, 0.5, 0.5},
			to:        mgl64.Vec3{6.5, 0.5, 0.5},
			wantHit:   true,
			wantCoord: Coord{X: 2},
			wantPoint: mgl64.Vec3{2, 0.5, 0.5},
		},
		{
			name:      "negative_direction",
			solid:     []Coord{{X: -3}},
			from:      mgl64.Vec3{0.5, 0.5, 0.5},
			to:        mgl64.Vec3{-5, 0.5, 0.5},
			wantHit:   true,
			wantCoord: Coord{X: -3},
			wantPoint: mgl64.Vec3{-2, 0.5, 0.5},
		},
		{
			name:      "starts_inside",
			solid:     []Coord{{}},
			from:      mgl64.Vec3{0.5, 0.5, 0.5},
			to:        mgl64.Vec3{0.5, 0.5, 0.5},
			wantHit:   true,
			wantCoord: Coord{},
			wantPoint: mgl64.Vec3{0.5, 0.5, 0.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()
			for _, c := range tc.solid {
				g.SetVoxel(c, Stone)
			}
			hit, ok := g.RaycastSolid(tc.from, tc.to)
			if ok != tc.wantHit {
				t.Fatalf("expected hit=%v, got %v (%+v)", tc.wantHit, ok, hit)
			}
			if !ok {
				return
			}
			if hit.Coord != tc.wantCoord {
				t.Fatalf("expected coord %+v, got %+v", tc.wantCoord, hit.Coord)
			}
			if !hit.Point.ApproxEqualThreshold(tc.wantPoint, 1e-9) {
				t.Fatalf("expected point %v, got %v", tc.wantPoint, hit.Point)
			}
		})
	}
}

func TestRaycastSolidIgnoresNonSolid(t *testing.T) {
	g := NewGrid()
	g.SetVoxel(Coord{X: 1}, Fire)
	g.SetVoxel(Coord{X: 2}, Dirt)

	hit, ok := g.RaycastSolid(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{4, 0.5, 0.5})
	if !ok || hit.Coord != (Coord{X: 2}) {
		t.Fatalf("expected dirt at x=2, got ok=%v %+v", ok, hit)
	}
	if hit.Normal != (Coord{X: -1}) {
		t.Fatalf("expected -x face, got %+v", hit.Normal)
	}
}

func TestDestroyVoxel(t *testing.T) {
	cases := []struct {
		name string
		mat  Material
		want bool
	}{
		{"stone", Stone, true},
		{"bedrock_rejected", Bedrock, false},
		{"air_rejected", Air, false},
		{"fire_rejected", Fire, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()
			c := Coord{X: 1, Y: 2, Z: 3}
			g.SetVoxel(c, tc.mat)
			if got := g.DestroyVoxel(c); got != tc.want {
				t.Fatalf("DestroyVoxel() = %v, want %v", got, tc.want)
			}
			if tc.want && g.Get(c) != Air {
				t.Fatalf("expected cell cleared")
			}
			if !tc.want && g.Get(c) != tc.mat {
				t.Fatalf("expected cell untouched")
			}
		})
	}
}

func TestFillAndCells(t *testing.T) {
	g := NewGrid()
	if n := g.Fill(Coord{X: 2, Y: 0, Z: 2}, Coord{X: 0, Y: 0, Z: 0}, Grass); n != 9 {
		t.Fatalf("expected 9 cells, got %d", n)
	}
	cells := g.Cells()
	if len(cells) != 9 || g.Count(Grass) != 9 {
		t.Fatalf("expected 9 grass cells, got %d", len(cells))
	}
	if cells[0].Coord != (Coord{}) || cells[8].Coord != (Coord{X: 2, Z: 2}) {
		t.Fatalf("cells not sorted: %+v", cells)
	}
}

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		got, err := ParseMaterial(m.String())
		if err != nil || got != m {
			t.Fatalf("round trip %s: got %v err=%v", m, got, err)
		}
	}
	if _, err := ParseMaterial("lava"); err == nil {
		t.Fatalf("expected error for unknown material")
	}
}
