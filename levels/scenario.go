package levels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/arena"
	"github.com/milk9111/cannonball/component"
	"github.com/milk9111/cannonball/script"
	"github.com/milk9111/cannonball/voxel"
)

var ErrInvalidScenario = errors.New("levels: invalid scenario")

// DefaultTicks is the tick budget when a scenario names none.
const DefaultTicks = 2000

type Scenario struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description,omitempty"`
	Arena       arena.Config `yaml:"arena" json:"arena"`
	Terrain     []TerrainBox `yaml:"terrain" json:"terrain,omitempty"`
	Actors      []ActorSpec  `yaml:"actors" json:"actors,omitempty"`
	Launches    []LaunchSpec `yaml:"launches" json:"launches,omitempty"`
	Scripts     []ScriptSpec `yaml:"scripts" json:"scripts,omitempty"`
	Ticks       int          `yaml:"ticks" json:"ticks,omitempty"`
}

// TerrainBox fills every cell from Min to Max inclusive. Later boxes
// overwrite earlier ones, so air boxes carve holes.
type TerrainBox struct {
	Min      [3]int         `yaml:"min" json:"min"`
	Max      [3]int         `yaml:"max" json:"max"`
	Material voxel.Material `yaml:"material" json:"material"`
}

// ActorSpec places an upright actor with its feet at Position.
type ActorSpec struct {
	Name     string     `yaml:"name" json:"name"`
	Position [3]float64 `yaml:"position" json:"position"`
	Width    float64    `yaml:"width" json:"width,omitempty"`
	Height   float64    `yaml:"height" json:"height,omitempty"`
	Health   float64    `yaml:"health" json:"health,omitempty"`
}

// LaunchSpec fires one round at the start of Tick.
type LaunchSpec struct {
	Tick     int        `yaml:"tick" json:"tick"`
	Ammo     string     `yaml:"ammo" json:"ammo"`
	Owner    string     `yaml:"owner" json:"owner,omitempty"`
	Position [3]float64 `yaml:"position" json:"position"`
	Velocity [3]float64 `yaml:"velocity" json:"velocity"`
}

// ScriptSpec runs a launch plan from prefabs/scripts on behalf of Owner.
type ScriptSpec struct {
	Name  string `yaml:"name" json:"name"`
	Owner string `yaml:"owner" json:"owner,omitempty"`
}

func (s *Scenario) Validate() error {
	seen := make(map[string]bool, len(s.Actors))
	for i, a := range s.Actors {
		if a.Name == "" {
			return fmt.Errorf("%w: actor %d has no name", ErrInvalidScenario, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate actor %q", ErrInvalidScenario, a.Name)
		}
		seen[a.Name] = true
	}
	for i, l := range s.Launches {
		if l.Tick < 1 {
			return fmt.Errorf("%w: launch %d fires before tick 1", ErrInvalidScenario, i)
		}
		if l.Ammo == "" {
			return fmt.Errorf("%w: launch %d has no ammo", ErrInvalidScenario, i)
		}
	}
	for i, sc := range s.Scripts {
		if sc.Name == "" {
			return fmt.Errorf("%w: script %d has no name", ErrInvalidScenario, i)
		}
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: negative tick budget", ErrInvalidScenario)
	}
	return nil
}

// Grid builds the scenario terrain.
func (s *Scenario) Grid() *voxel.Grid {
	grid := voxel.NewGrid()
	for _, b := range s.Terrain {
		grid.Fill(
			voxel.Coord{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
			voxel.Coord{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
			b.Material,
		)
	}
	return grid
}

// Build creates the arena with the terrain and actors in place. The seed
// argument overrides the scenario's own when not empty.
func (s *Scenario) Build(seed string, opts arena.Options) (*arena.Arena, error) {
	cfg := s.Arena
	if seed != "" {
		cfg.Seed = seed
	}
	a := arena.New(cfg, s.Grid(), opts)
	for _, spec := range s.Actors {
		width, height := spec.Width, spec.Height
		if width <= 0 {
			width = 0.6
		}
		if height <= 0 {
			height = 1.8
		}
		act := &actor.Actor{
			ID:   actor.NamedID(spec.Name),
			Name: spec.Name,
			Box:  actor.BoxOnFeet(mgl64.Vec3(spec.Position), width, height),
		}
		if spec.Health > 0 {
			act.Health = component.NewHealth(spec.Health)
		}
		if err := a.AddActor(act); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Session drives one arena through a scenario: timed launches, launch plans
// and the tick budget.
type Session struct {
	scenario *Scenario
	arena    *arena.Arena
	plans    []*script.Plan
	logger   *slog.Logger
}

// Start builds the arena and compiles the scenario scripts.
func (s *Scenario) Start(seed string, opts arena.Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a, err := s.Build(seed, opts)
	if err != nil {
		return nil, err
	}
	sess := &Session{scenario: s, arena: a, logger: logger.With("scenario", s.Name)}
	for _, spec := range s.Scripts {
		plan, err := script.Load(spec.Name, logger)
		if err != nil {
			return nil, err
		}
		if spec.Owner != "" {
			plan.Owner = actor.NamedID(spec.Owner)
		}
		sess.plans = append(sess.plans, plan)
	}
	return sess, nil
}

func (s *Session) Arena() *arena.Arena { return s.arena }

// Pending reports whether launches or plans still have rounds to fire.
func (s *Session) Pending() bool {
	for _, l := range s.scenario.Launches {
		if l.Tick > s.arena.Tick() {
			return true
		}
	}
	for _, p := range s.plans {
		if !p.Done() {
			return true
		}
	}
	return false
}

// Step fires whatever is due for the next tick and advances the arena.
func (s *Session) Step() error {
	next := s.arena.Tick() + 1
	for _, l := range s.scenario.Launches {
		if l.Tick != next {
			continue
		}
		owner := actor.Nil
		if l.Owner != "" {
			owner = actor.NamedID(l.Owner)
		}
		s.arena.Fire(l.Ammo, mgl64.Vec3(l.Position), mgl64.Vec3(l.Velocity), owner)
	}
	for _, p := range s.plans {
		if _, err := p.Step(next, s.arena); err != nil {
			return err
		}
	}
	s.arena.Step()
	return nil
}

// Run steps until nothing is pending and the arena is idle, the tick budget
// is spent or ctx is done. It returns the number of ticks stepped.
func (s *Session) Run(ctx context.Context) (int, error) {
	budget := s.scenario.Ticks
	if budget == 0 {
		budget = DefaultTicks
	}
	n := 0
	for s.arena.Tick() < budget {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := s.Step(); err != nil {
			return n, err
		}
		n++
		if !s.Pending() && s.arena.Idle() {
			break
		}
	}
	s.logger.Info("scenario finished", "ticks", n, "tick", s.arena.Tick())
	return n, nil
}
