// Package script runs tengo launch plans. A plan defines
//
//	update := func(engine, state, tick) { ... }
//
// and is called once per tick before the arena steps. engine exposes fire,
// stop and log; state is a map that persists between calls.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/prefabs"
)

var ErrNoUpdate = errors.New("script: plan has no update function")

// Launcher is what a plan fires through. *arena.Arena satisfies it.
type Launcher interface {
	Fire(ammoID string, pos, vel mgl64.Vec3, owner actor.ID) uuid.UUID
}

const dispatchScript = `
update(__engine, __state, __tick)
`

// Plan is a compiled launch plan. A Plan is not safe for concurrent use;
// Clone it per arena.
type Plan struct {
	Name  string
	Owner actor.ID

	compiled *tengo.Compiled
	state    *tengo.Map
	stopped  bool
	fired    int
	logger   *slog.Logger
}

// Load compiles the named script from the prefabs scripts directory.
func Load(name string, logger *slog.Logger) (*Plan, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src, logger)
}

func Compile(name string, src []byte, logger *slog.Logger) (*Plan, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__tick", 0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		if strings.Contains(err.Error(), "unresolved reference 'update'") {
			return nil, fmt.Errorf("%w: %s", ErrNoUpdate, name)
		}
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Plan{
		Name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		logger:   logger.With("script", name),
	}, nil
}

// Clone returns an independent copy with fresh state.
func (p *Plan) Clone() *Plan {
	return &Plan{
		Name:     p.Name,
		Owner:    p.Owner,
		compiled: p.compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		logger:   p.logger,
	}
}

// Done reports whether the plan called stop.
func (p *Plan) Done() bool { return p == nil || p.stopped }

// Fired is the number of rounds launched so far.
func (p *Plan) Fired() int { return p.fired }

// Step runs update for tick and returns how many rounds it fired.
func (p *Plan) Step(tick int, l Launcher) (int, error) {
	if p.Done() {
		return 0, nil
	}
	before := p.fired
	if err := p.compiled.Set("__engine", p.engine(tick, l)); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("__state", p.state); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("__tick", tick); err != nil {
		return 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return p.fired - before, fmt.Errorf("script: %s tick %d: %w", p.Name, tick, err)
	}
	return p.fired - before, nil
}

func (p *Plan) engine(tick int, l Launcher) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["tick"] = &tengo.Int{Value: int64(tick)}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 7 {
			return nil, tengo.ErrWrongNumArguments
		}
		ammo, ok := tengo.ToString(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "ammo", Expected: "string", Found: args[0].TypeName()}
		}
		var n [6]float64
		for i, arg := range args[1:] {
			v, ok := tengo.ToFloat64(arg)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("arg%d", i+1), Expected: "float", Found: arg.TypeName()}
			}
			n[i] = v
		}
		if l == nil {
			return tengo.UndefinedValue, nil
		}
		id := l.Fire(ammo, mgl64.Vec3{n[0], n[1], n[2]}, mgl64.Vec3{n[3], n[4], n[5]}, p.Owner)
		p.fired++
		return &tengo.String{Value: id.String()}, nil
	}}

	values["stop"] = &tengo.UserFunction{Name: "stop", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p.stopped = true
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		p.logger.Info(strings.Join(parts, " "), "tick", tick)
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
