package arena

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/actor"
	combat "github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/ecs"
	"github.com/milk9111/cannonball/ecs/component"
	"github.com/milk9111/cannonball/ecs/system"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
	"gopkg.in/yaml.v3"
)

var ErrSeedMismatch = errors.New("arena: snapshot seed mismatch")

// Snapshot is the persisted state of an arena between ticks.
type Snapshot struct {
	Seed        string              `yaml:"seed"`
	Tick        int                 `yaml:"tick"`
	Terrain     []voxel.Cell        `yaml:"terrain"`
	Actors      []ActorRecord       `yaml:"actors"`
	Projectiles []projectile.Record `yaml:"projectiles"`
	Areas       []AreaRecord        `yaml:"areas,omitempty"`
}

type ActorRecord struct {
	ID        uuid.UUID  `yaml:"id"`
	Name      string     `yaml:"name"`
	Min       [3]float64 `yaml:"min"`
	Max       [3]float64 `yaml:"max"`
	Health    float64    `yaml:"health"`
	MaxHealth float64    `yaml:"max_health"`
}

type AreaRecord struct {
	Kind           impact.AreaKind `yaml:"kind"`
	Source         uuid.UUID       `yaml:"source"`
	Owner          uuid.UUID       `yaml:"owner"`
	Position       [3]float64      `yaml:"position"`
	Radius         float64         `yaml:"radius"`
	Duration       int             `yaml:"duration"`
	Age            int             `yaml:"age"`
	Remaining      int             `yaml:"remaining"`
	DamagePerPulse float64         `yaml:"damage_per_pulse,omitempty"`
	PulseInterval  int             `yaml:"pulse_interval,omitempty"`
	Obscures       bool            `yaml:"obscures,omitempty"`
}

// Snapshot captures the current state. Spawn requests never survive a
// completed tick, so none are recorded.
func (a *Arena) Snapshot() Snapshot {
	s := Snapshot{
		Seed:    a.cfg.Seed,
		Tick:    a.tick,
		Terrain: a.grid.Cells(),
	}
	for _, act := range a.actors.All() {
		s.Actors = append(s.Actors, ActorRecord{
			ID:        act.ID,
			Name:      act.Name,
			Min:       act.Box.Min,
			Max:       act.Box.Max,
			Health:    act.Health.CurrentHP(),
			MaxHealth: act.Health.MaxHP(),
		})
	}
	for _, p := range a.Projectiles() {
		s.Projectiles = append(s.Projectiles, p.ToRecord())
	}
	ecs.ForEach2(a.world, component.AreaEffectComponent.Kind(), component.TTLComponent.Kind(),
		func(_ ecs.Entity, area *component.AreaEffect, ttl *component.TTL) {
			fx := area.Effect
			s.Areas = append(s.Areas, AreaRecord{
				Kind:           fx.Kind,
				Source:         fx.Source,
				Owner:          fx.Owner,
				Position:       fx.Position,
				Radius:         fx.Radius,
				Duration:       fx.Duration,
				Age:            area.Age,
				Remaining:      ttl.Ticks,
				DamagePerPulse: fx.Effects.DamagePerPulse,
				PulseInterval:  fx.Effects.PulseInterval,
				Obscures:       fx.Effects.Obscures,
			})
		})
	return s
}

// Restore replaces the arena state with s. The journal keeps accumulating.
// RNG streams are re-derived from the seed and the restored tick, since the
// generator state itself is not persisted.
func (a *Arena) Restore(s Snapshot) error {
	if s.Seed != "" && s.Seed != a.cfg.Seed {
		return fmt.Errorf("%w: have %q, snapshot %q", ErrSeedMismatch, a.cfg.Seed, s.Seed)
	}

	grid := voxel.NewGrid()
	for _, c := range s.Terrain {
		grid.SetVoxel(c.Coord, c.Material)
	}

	actors := actor.NewRegistry()
	for _, rec := range s.Actors {
		h := combat.NewHealth(rec.MaxHealth)
		h.SetCurrentHP(rec.Health)
		act := &actor.Actor{
			ID:     rec.ID,
			Name:   rec.Name,
			Box:    actor.Box{Min: mgl64.Vec3(rec.Min), Max: mgl64.Vec3(rec.Max)},
			Health: h,
		}
		if err := actors.Add(act); err != nil {
			return fmt.Errorf("arena: restore actor %q: %w", rec.Name, err)
		}
	}

	a.grid = grid
	a.setActors(actors)
	a.world = ecs.NewWorld()
	a.projectiles = &system.Projectiles{}
	a.tick = s.Tick

	for _, rec := range s.Projectiles {
		if _, err := a.projectiles.Insert(a.world, projectile.FromRecord(a.table, rec)); err != nil {
			return fmt.Errorf("arena: restore projectile %s: %w", rec.ID, err)
		}
	}
	// Restored projectiles are not new launches.
	a.world.Events().Drain()

	for _, rec := range s.Areas {
		a.addArea(impact.AreaEffect{
			Kind:     rec.Kind,
			Source:   rec.Source,
			Owner:    rec.Owner,
			Position: rec.Position,
			Radius:   rec.Radius,
			Duration: rec.Duration,
			Effects: impact.TickEffects{
				DamagePerPulse: rec.DamagePerPulse,
				PulseInterval:  rec.PulseInterval,
				Obscures:       rec.Obscures,
			},
		}, rec.Age, rec.Remaining)
	}

	a.wire("@" + strconv.Itoa(s.Tick))
	a.logger.Info("arena restored", "tick", s.Tick, "projectiles", len(s.Projectiles), "actors", len(s.Actors))
	return nil
}

func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("arena: marshal snapshot: %w", err)
	}
	return data, nil
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("arena: unmarshal snapshot: %w", err)
	}
	return s, nil
}
