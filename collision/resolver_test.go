package collision_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/collision"
	"github.com/milk9111/cannonball/collision/mocks"
	"github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func newProjectile(owner actor.ID) *projectile.Instance {
	return projectile.New(nil, mgl64.Vec3{0.5, 1.5, 0.5}, mgl64.Vec3{4, 0, 0}, 20, 2, owner)
}

func covers(b actor.Box, p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func TestResolveActorBeatsCloserTerrain(t *testing.T) {
	ctrl := gomock.NewController(t)

	terrain := mocks.NewMockTerrain(ctrl)
	actors := mocks.NewMockActors(ctrl)
	owner := actor.NamedID("gunner")
	target := actor.NamedID("target")
	p := newProjectile(owner)

	terrain.EXPECT().
		RaycastSolid(p.Position, mgl64.Vec3{4.5, 1.5, 0.5}).
		Return(voxel.Hit{Coord: voxel.Coord{X: 1, Y: 1}, Material: voxel.Stone, Point: mgl64.Vec3{1, 1.5, 0.5}}, true)
	actors.EXPECT().
		SweepTest(gomock.Any(), p.Position, mgl64.Vec3{4.5, 1.5, 0.5}, []actor.ID{owner}).
		Return(target, mgl64.Vec3{3.7, 1.5, 0.5}, true)

	hit, ok := collision.NewResolver(terrain, actors).Resolve(p, 1)
	if !ok || hit.Kind != collision.HitActor || hit.Actor != target {
		t.Fatalf("expected actor hit on target, got ok=%v %+v", ok, hit)
	}
	if hit.Point != (mgl64.Vec3{3.7, 1.5, 0.5}) {
		t.Fatalf("unexpected hit point %v", hit.Point)
	}
}

func TestResolveTerrainWhenNoActor(t *testing.T) {
	ctrl := gomock.NewController(t)

	terrain := mocks.NewMockTerrain(ctrl)
	actors := mocks.NewMockActors(ctrl)
	p := newProjectile(actor.Nil)

	terrain.EXPECT().
		RaycastSolid(gomock.Any(), gomock.Any()).
		Return(voxel.Hit{Coord: voxel.Coord{X: 3, Y: 1}, Material: voxel.Dirt, Point: mgl64.Vec3{3, 1.5, 0.5}}, true)
	actors.EXPECT().
		SweepTest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(actor.Nil, mgl64.Vec3{}, false)

	hit, ok := collision.NewResolver(terrain, actors).Resolve(p, 1)
	if !ok || hit.Kind != collision.HitTerrain {
		t.Fatalf("expected terrain hit, got ok=%v %+v", ok, hit)
	}
	if hit.Coord != (voxel.Coord{X: 3, Y: 1}) || hit.Material != voxel.Dirt {
		t.Fatalf("unexpected terrain hit %+v", hit)
	}
}

func TestResolveSweptBoxCoversMove(t *testing.T) {
	ctrl := gomock.NewController(t)

	terrain := mocks.NewMockTerrain(ctrl)
	actors := mocks.NewMockActors(ctrl)
	p := newProjectile(actor.Nil)

	terrain.EXPECT().RaycastSolid(gomock.Any(), gomock.Any()).Return(voxel.Hit{}, false)
	actors.EXPECT().
		SweepTest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(swept actor.Box, from, to mgl64.Vec3, _ []actor.ID) (actor.ID, mgl64.Vec3, bool) {
			if !covers(swept, from) || !covers(swept, to) {
				t.Fatalf("swept box %+v does not cover %v -> %v", swept, from, to)
			}
			return actor.Nil, mgl64.Vec3{}, false
		})

	if _, ok := collision.NewResolver(terrain, actors).Resolve(p, 1); ok {
		t.Fatalf("expected no hit")
	}
}

func TestResolveTerminatedIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)

	terrain := mocks.NewMockTerrain(ctrl)
	actors := mocks.NewMockActors(ctrl)
	p := newProjectile(actor.Nil)
	p.Terminate(projectile.ExitExploded)

	if _, ok := collision.NewResolver(terrain, actors).Resolve(p, 1); ok {
		t.Fatalf("terminated projectile must not collide")
	}
}

func TestResolveAgainstGrid(t *testing.T) {
	grid := voxel.NewGrid()
	grid.Fill(voxel.Coord{X: 2, Y: 0, Z: -1}, voxel.Coord{X: 2, Y: 3, Z: 1}, voxel.Stone)
	registry := actor.NewRegistry()

	p := newProjectile(actor.Nil)
	hit, ok := collision.NewResolver(grid, registry).Resolve(p, 1)
	if !ok || hit.Kind != collision.HitTerrain || hit.Coord != (voxel.Coord{X: 2, Y: 1}) {
		t.Fatalf("expected wall hit at x=2, got ok=%v %+v", ok, hit)
	}
	if !hit.Point.ApproxEqual(mgl64.Vec3{2, 1.5, 0.5}) {
		t.Fatalf("unexpected entry point %v", hit.Point)
	}
}

func TestResolveActorBehindWallStillWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		wall := rapid.IntRange(2, 6).Draw(t, "wall")
		behind := rapid.Float64Range(1, 4).Draw(t, "behind")
		ax := float64(wall) + behind
		vx := rapid.Float64Range(ax, 14).Draw(t, "vx")

		grid := voxel.NewGrid()
		grid.Fill(voxel.Coord{X: wall, Y: 0, Z: -1}, voxel.Coord{X: wall, Y: 3, Z: 1}, voxel.Stone)
		registry := actor.NewRegistry()
		target := &actor.Actor{
			ID:     actor.NamedID("target"),
			Name:   "target",
			Box:    actor.BoxOnFeet(mgl64.Vec3{ax, 1, 0.5}, 0.6, 1.8),
			Health: component.NewHealth(20),
		}
		if err := registry.Add(target); err != nil {
			t.Fatalf("add: %v", err)
		}

		p := projectile.New(nil, mgl64.Vec3{0.5, 1.5, 0.5}, mgl64.Vec3{vx, 0, 0}, 20, 2, actor.Nil)
		hit, ok := collision.NewResolver(grid, registry).Resolve(p, 1)
		if !ok || hit.Kind != collision.HitActor || hit.Actor != target.ID {
			t.Fatalf("wall=%d actor=%.2f vx=%.2f: got ok=%v %+v", wall, ax, vx, ok, hit)
		}
	})
}
