// Package arena hosts a projectile simulation: a voxel grid, a set of actors
// and the ECS world that ticks projectiles and area effects through them.
package arena

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/ballistics"
	"github.com/milk9111/cannonball/collision"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
	"github.com/milk9111/cannonball/ecs/system"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

// Options carries the optional collaborators of an arena.
type Options struct {
	Table  *projectile.Table
	Armory *projectile.Armory
	Logger *slog.Logger
}

// Arena is a single-threaded simulation world. Separate arenas share nothing
// and may run on separate goroutines.
type Arena struct {
	cfg    Config
	logger *slog.Logger
	table  *projectile.Table
	armory *projectile.Armory

	grid    *voxel.Grid
	actors  *actor.Registry
	world   *ecs.World
	journal *Journal

	projectiles *system.Projectiles
	controller  *impact.Controller
	stepper     *ballistics.Stepper
	scheduler   *ecs.Scheduler

	tick int
}

// New builds an arena over grid. A nil grid starts empty.
func New(cfg Config, grid *voxel.Grid, opts Options) *Arena {
	cfg = cfg.withDefaults()
	if grid == nil {
		grid = voxel.NewGrid()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	table := opts.Table
	if table == nil {
		table = projectile.DefaultTable()
	}
	armory := opts.Armory
	if armory == nil {
		armory, _ = projectile.NewArmory(projectile.BuiltinAmmo()...)
	}

	a := &Arena{
		cfg:         cfg,
		logger:      logger.With("seed", cfg.Seed),
		table:       table,
		armory:      armory,
		grid:        grid,
		world:       ecs.NewWorld(),
		journal:     newJournal(),
		projectiles: &system.Projectiles{},
	}
	a.setActors(actor.NewRegistry())
	a.wire("")
	return a
}

func (a *Arena) setActors(r *actor.Registry) {
	r.SetIFrames(a.cfg.IFrames)
	r.Events().Subscribe(a.journal.combat)
	a.actors = r
}

// wire builds the per-tick machinery. The RNG streams are derived from the
// seed and epoch, so a restored arena gets fresh but reproducible streams.
func (a *Arena) wire(epoch string) {
	wind := common.NewDeterministicRNG(a.cfg.Seed, "wind"+epoch)
	if a.cfg.Calm {
		wind = nil
	}
	integrator := ballistics.NewIntegrator(wind)
	integrator.Gravity = a.cfg.Gravity
	integrator.WindStrength = a.cfg.WindStrength

	a.controller = impact.NewController(impact.Deps{
		Terrain: a.grid,
		Actors:  a.actors,
		Effects: a,
		Spawner: a,
		Table:   a.table,
		RNG:     common.NewDeterministicRNG(a.cfg.Seed, "impact"+epoch),
		Logger:  a.logger,
	}, a.cfg.impactConfig())

	a.stepper = ballistics.NewStepper(integrator, collision.NewResolver(a.grid, a.actors), a.controller, a.grid, a.logger)
	a.stepper.MaxLifetime = a.cfg.MaxLifetime

	a.scheduler = ecs.NewScheduler(
		system.NewProjectileSystem(a.stepper),
		system.NewSpawnSystem(a.projectiles, a.logger),
		system.NewAreaEffectSystem(a.actors),
		system.NewTTLSystem(),
	)
}

func (a *Arena) Config() Config { return a.cfg }
func (a *Arena) Tick() int { return a.tick }
func (a *Arena) Grid() *voxel.Grid { return a.grid }
func (a *Arena) Actors() *actor.Registry { return a.actors }
func (a *Arena) Journal() *Journal { return a.journal }
func (a *Arena) Table() *projectile.Table { return a.table }
func (a *Arena) Armory() *projectile.Armory { return a.armory }
func (a *Arena) Controller() *impact.Controller { return a.controller }

// AddActor places a damageable actor in the arena.
func (a *Arena) AddActor(act *actor.Actor) error {
	if err := a.actors.Add(act); err != nil {
		return fmt.Errorf("arena: add actor %q: %w", act.Name, err)
	}
	return nil
}

// Spawn launches a projectile of the given kind and returns its id. Unknown
// kinds fly as standard rounds.
func (a *Arena) Spawn(kind projectile.Kind, pos, vel mgl64.Vec3, damage, radius float64, owner actor.ID) uuid.UUID {
	p := projectile.New(a.table.Resolve(kind), pos, vel, damage, radius, owner)
	if _, err := a.projectiles.Insert(a.world, p); err != nil {
		a.logger.Error("spawn failed", "kind", kind, "err", err)
		return uuid.Nil
	}
	a.logger.Debug("projectile launched", "projectile", p.ID, "type", p.Type, "position", pos, "velocity", vel)
	return p.ID
}

// Fire launches a round of the named ammunition, charging its stress cost.
func (a *Arena) Fire(ammoID string, pos, vel mgl64.Vec3, owner actor.ID) uuid.UUID {
	am := a.armory.Resolve(ammoID)
	a.journal.Stress += a.table.Resolve(am.Type).StressCost(projectile.BaseStress)
	return a.Spawn(am.Type, pos, vel, am.Damage, am.ExplosionRadius, owner)
}

// Projectiles returns the live projectiles in launch order.
func (a *Arena) Projectiles() []*projectile.Instance {
	return a.projectiles.Live(a.world)
}

// Step advances the arena by one tick.
func (a *Arena) Step() {
	a.tick++
	a.actors.Tick(a.tick)
	a.scheduler.Update(a.world)
	for _, evt := range a.world.Events().Drain() {
		a.journal.record(evt)
	}
}

// Idle reports whether nothing is left to simulate.
func (a *Arena) Idle() bool {
	return ecs.Count(a.world, component.ProjectileComponent.Kind()) == 0 &&
		ecs.Count(a.world, component.SpawnRequestComponent.Kind()) == 0 &&
		ecs.Count(a.world, component.AreaEffectComponent.Kind()) == 0
}

// Run steps until the arena is idle, maxTicks have elapsed or ctx is done. It
// returns the number of ticks stepped.
func (a *Arena) Run(ctx context.Context, maxTicks int) (int, error) {
	n := 0
	for n < maxTicks {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		a.Step()
		n++
		if a.Idle() {
			break
		}
	}
	return n, nil
}
