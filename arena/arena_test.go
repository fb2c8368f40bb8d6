package arena_test

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/arena"
	combat "github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

// still keeps projectiles level for the duration of a short test.
const still = 1e-9

func floor() *voxel.Grid {
	grid := voxel.NewGrid()
	grid.Fill(voxel.Coord{X: -8, Y: 0, Z: -8}, voxel.Coord{X: 64, Y: 0, Z: 8}, voxel.Stone)
	return grid
}

func run(t *testing.T, a *arena.Arena, ticks int) int {
	t.Helper()
	n, err := a.Run(context.Background(), ticks)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return n
}

func TestStandardArcExplodesOnce(t *testing.T) {
	a := arena.New(arena.Config{Seed: "arc"}, floor(), arena.Options{})
	a.Fire("iron_cannonball", mgl64.Vec3{0.5, 4, 0.5}, mgl64.Vec3{0.6, 0.6, 0}, actor.Nil)

	run(t, a, projectile.MaxLifetimeTicks)

	j := a.Journal()
	if len(j.Explosions) != 1 || j.Exits[projectile.ExitExploded] != 1 {
		t.Fatalf("explosions=%d exits=%v", len(j.Explosions), j.Exits)
	}
	if j.Explosions[0].Radius != 2 {
		t.Fatalf("radius = %v, want 2", j.Explosions[0].Radius)
	}
	if j.VoxelsDestroyed == 0 {
		t.Fatalf("a radius 2 blast should break stone")
	}
	if j.Stress != 256 {
		t.Fatalf("stress = %v, want 256", j.Stress)
	}
}

func TestArmorPiercingStopsAtFourthVoxel(t *testing.T) {
	grid := voxel.NewGrid()
	grid.Fill(voxel.Coord{X: 1, Y: 1}, voxel.Coord{X: 4, Y: 1}, voxel.Stone)
	a := arena.New(arena.Config{Seed: "ap", Gravity: still, Calm: true}, grid, arena.Options{})
	a.Fire("armor_piercing_round", mgl64.Vec3{0.5, 1.5, 0.5}, mgl64.Vec3{1, 0, 0}, actor.Nil)

	maxBlocks := 0
	for i := 0; i < 20 && !a.Idle(); i++ {
		a.Step()
		for _, p := range a.Projectiles() {
			maxBlocks = max(maxBlocks, p.BlocksPenetrated)
		}
	}

	if maxBlocks != projectile.MaxPenetration {
		t.Fatalf("penetrated %d blocks, want %d", maxBlocks, projectile.MaxPenetration)
	}
	for x := 1; x <= 3; x++ {
		if grid.IsSolid(voxel.Coord{X: x, Y: 1}) {
			t.Fatalf("voxel x=%d should be destroyed", x)
		}
	}
	if grid.Get(voxel.Coord{X: 4, Y: 1}) != voxel.Stone {
		t.Fatalf("fourth voxel must remain")
	}
	j := a.Journal()
	if len(j.Explosions) != 1 || !mgl64.FloatEqual(j.Explosions[0].Position.X(), 4) {
		t.Fatalf("expected one explosion at the fourth voxel, got %+v", j.Explosions)
	}
}

func TestSmokeShellMakesCloudOnly(t *testing.T) {
	a := arena.New(arena.Config{Seed: "smoke"}, floor(), arena.Options{})
	bystander := &actor.Actor{Name: "bystander", Box: actor.BoxOnFeet(mgl64.Vec3{-4, 1, 0.5}, 0.6, 1.8)}
	if err := a.AddActor(bystander); err != nil {
		t.Fatal(err)
	}
	a.Fire("smoke_shell", mgl64.Vec3{0.5, 3, 0.5}, mgl64.Vec3{0.2, 0, 0}, actor.Nil)

	run(t, a, 1000)

	j := a.Journal()
	if len(j.Areas) != 1 || j.Areas[0].Kind != impact.AreaSmoke {
		t.Fatalf("areas = %+v", j.Areas)
	}
	if len(j.Explosions) != 0 || j.TotalDamage() != 0 {
		t.Fatalf("smoke must not explode or hurt: explosions=%d damage=%v", len(j.Explosions), j.TotalDamage())
	}
	if j.Exits[projectile.ExitDissipated] != 1 || j.AreasExpired != 1 {
		t.Fatalf("exits=%v expired=%d", j.Exits, j.AreasExpired)
	}
}

func TestLifetimeExpiry(t *testing.T) {
	a := arena.New(arena.Config{Seed: "drift", Gravity: still, Calm: true}, nil, arena.Options{})
	a.Spawn(projectile.KindStandard, mgl64.Vec3{}, mgl64.Vec3{0.5, 0, 0}, 20, 2, actor.Nil)

	n := run(t, a, 10_000)

	if n != projectile.MaxLifetimeTicks+1 {
		t.Fatalf("ran %d ticks, want %d", n, projectile.MaxLifetimeTicks+1)
	}
	j := a.Journal()
	if j.Exits[projectile.ExitExpired] != 1 || len(j.Explosions) != 0 {
		t.Fatalf("exits=%v explosions=%d", j.Exits, len(j.Explosions))
	}
}

func TestChildrenSpawnAfterProjectilePass(t *testing.T) {
	a := arena.New(arena.Config{Seed: "frag", Calm: true}, floor(), arena.Options{})
	a.Fire("fragmentation_shell", mgl64.Vec3{0.5, 1.3, 0.5}, mgl64.Vec3{0, -0.5, 0}, actor.Nil)

	a.Step()

	live := a.Projectiles()
	if len(live) != projectile.FragmentSplitCount {
		t.Fatalf("live = %d, want %d children", len(live), projectile.FragmentSplitCount)
	}
	for _, p := range live {
		if p.TicksAlive != 0 {
			t.Fatalf("child ticked in its spawn tick: %d", p.TicksAlive)
		}
		if p.Type.ID != projectile.KindStandard {
			t.Fatalf("child type = %v", p.Type)
		}
	}

	a.Step()
	for _, p := range a.Projectiles() {
		if p.TicksAlive != 1 {
			t.Fatalf("child should have ticked once, got %d", p.TicksAlive)
		}
	}
	if a.Journal().Exits[projectile.ExitSplit] != 1 {
		t.Fatalf("parent exit not recorded: %v", a.Journal().Exits)
	}
}

func TestDirectHitDamagesActor(t *testing.T) {
	a := arena.New(arena.Config{Seed: "hit", Gravity: still, Calm: true}, nil, arena.Options{})
	target := &actor.Actor{ID: actor.NamedID("target"), Name: "target", Box: actor.BoxOnFeet(mgl64.Vec3{5, 0, 0.5}, 0.6, 1.8)}
	if err := a.AddActor(target); err != nil {
		t.Fatal(err)
	}
	gunner := actor.NamedID("gunner")
	a.Fire("grapeshot", mgl64.Vec3{0.5, 1, 0.5}, mgl64.Vec3{1, 0, 0}, gunner)

	run(t, a, 50)

	j := a.Journal()
	if j.Damage[target.ID] < 5 {
		t.Fatalf("target took %v damage", j.Damage[target.ID])
	}
	if j.Exits[projectile.ExitSpent] != 1 || len(j.Explosions) != 0 {
		t.Fatalf("grapeshot should be spent without blast: exits=%v", j.Exits)
	}
}

func TestHighYieldLingersAndPulses(t *testing.T) {
	a := arena.New(arena.Config{Seed: "linger", ProtectTerrain: true}, floor(), arena.Options{})
	victim := &actor.Actor{Name: "victim", Box: actor.BoxOnFeet(mgl64.Vec3{10, 1, 0.5}, 0.6, 1.8), Health: combat.NewHealth(1e6)}
	if err := a.AddActor(victim); err != nil {
		t.Fatal(err)
	}
	a.Fire("high_yield_shell", mgl64.Vec3{0.5, 1.3, 0.5}, mgl64.Vec3{0, -0.5, 0}, actor.Nil)

	run(t, a, 1000)

	j := a.Journal()
	if len(j.Areas) != 1 || j.Areas[0].Kind != impact.AreaLingering {
		t.Fatalf("areas = %+v", j.Areas)
	}
	if j.Pulses != 5 {
		t.Fatalf("pulses = %d, want 5", j.Pulses)
	}
	if j.VoxelsDestroyed != 0 {
		t.Fatalf("protected terrain lost %d voxels", j.VoxelsDestroyed)
	}
	if j.Damage[victim.ID] <= 0 {
		t.Fatalf("victim inside the blast took no damage")
	}
}

func TestSameSeedSameOutcome(t *testing.T) {
	play := func() []impact.Explosion {
		a := arena.New(arena.Config{Seed: "replay"}, floor(), arena.Options{})
		a.Fire("cluster_bomb", mgl64.Vec3{0.5, 2, 0.5}, mgl64.Vec3{0.4, 1.4, 0.1}, actor.Nil)
		a.Fire("fragmentation_shell", mgl64.Vec3{-3.5, 2, 0.5}, mgl64.Vec3{0.3, 0.9, -0.2}, actor.Nil)
		run(t, a, 2000)
		return a.Journal().Explosions
	}

	first, second := play(), play()
	if len(first) != len(second) || len(first) == 0 {
		t.Fatalf("explosion counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Position != second[i].Position || first[i].Radius != second[i].Radius {
			t.Fatalf("explosion %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a := arena.New(arena.Config{}, nil, arena.Options{})
	a.Spawn(projectile.KindStandard, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 20, 2, actor.Nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := a.Run(ctx, 100)
	if err == nil || n != 0 {
		t.Fatalf("expected immediate cancellation, got n=%d err=%v", n, err)
	}
}
