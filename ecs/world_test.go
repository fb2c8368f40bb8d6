package ecs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/actor"
	"github.com/milk9111/cannonball/ecs/component"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
)

func shell(seq uint64) *component.Projectile {
	p := projectile.New(nil, mgl64.Vec3{float64(seq), 2, 0}, mgl64.Vec3{0.5, 0.5, 0}, 20, 2, actor.Nil)
	return &component.Projectile{Instance: p, Seq: seq}
}

func lingering(interval int) *component.AreaEffect {
	return &component.AreaEffect{Effect: impact.AreaEffect{
		Kind:     impact.AreaLingering,
		Radius:   4,
		Duration: 100,
		Effects:  impact.TickEffects{DamagePerPulse: 1, PulseInterval: interval},
	}}
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroy < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroy]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroy]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestSimulationComponents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name   string
		add    func() error
		check  func(t *testing.T)
		remove func() bool
	}{
		{
			name: "projectile",
			add:  func() error { return Add(w, e, component.ProjectileComponent.Kind(), shell(7)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e, component.ProjectileComponent.Kind())
				if !ok || v.Seq != 7 || v.Instance.Type.ID != projectile.KindStandard {
					t.Fatalf("unexpected projectile %+v ok=%v", v, ok)
				}
			},
			remove: func() bool { return Remove(w, e, component.ProjectileComponent.Kind()) },
		},
		{
			name: "ttl",
			add:  func() error { return Add(w, e, component.TTLComponent.Kind(), &component.TTL{Ticks: 200}) },
			check: func(t *testing.T) {
				v, ok := Get(w, e, component.TTLComponent.Kind())
				if !ok || v.Ticks != 200 {
					t.Fatalf("unexpected ttl %+v ok=%v", v, ok)
				}
			},
			remove: func() bool { return Remove(w, e, component.TTLComponent.Kind()) },
		},
		{
			name: "area_effect",
			add:  func() error { return Add(w, e, component.AreaEffectComponent.Kind(), lingering(20)) },
			check: func(t *testing.T) {
				if !Has(w, e, component.AreaEffectComponent.Kind()) {
					t.Fatalf("expected area effect present")
				}
			},
			remove: func() bool { return Remove(w, e, component.AreaEffectComponent.Kind()) },
		},
		{
			name: "spawn_request",
			add: func() error {
				req := &component.SpawnRequest{Request: impact.SpawnRequest{Position: mgl64.Vec3{1, 2, 3}, Damage: 6}}
				return Add(w, e, component.SpawnRequestComponent.Kind(), req)
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e, component.SpawnRequestComponent.Kind())
				if !ok || v.Request.Damage != 6 {
					t.Fatalf("unexpected spawn request %+v ok=%v", v, ok)
				}
			},
			remove: func() bool { return Remove(w, e, component.SpawnRequestComponent.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); err != nil {
				t.Fatalf("add failed: %v", err)
			}
			tc.check(t)
			if !tc.remove() {
				t.Fatalf("remove failed")
			}
			if tc.remove() {
				t.Fatalf("second remove must report false")
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	k := component.TTLComponent.Kind()

	old := CreateEntity(w)
	if err := Add(w, old, k, &component.TTL{Ticks: 1}); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	if DestroyEntity(w, old) {
		t.Fatal("second destroy must report false")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled entity must carry a new generation")
	}
	if Has(w, fresh, k) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, k, &component.TTL{Ticks: 2}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected not-alive error, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{name: "nil_value", run: func() error { return Add(w, e, component.TTLComponent.Kind(), nil) }, want: component.ErrNilComponent},
		{name: "zero_kind", run: func() error { return Add(w, e, component.ComponentKind[component.TTL]{}, &component.TTL{}) }, want: component.ErrInvalidComponentKind},
		{name: "dead_entity", run: func() error { return Add(w, Entity(0), component.TTLComponent.Kind(), &component.TTL{}) }, want: component.ErrEntityNotAlive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	k := component.ProjectileComponent.Kind()

	var ents []Entity
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, k, shell(uint64(i))); err != nil {
			t.Fatal(err)
		}
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, k, func(e Entity, p *component.Projectile) {
		visited++
		if p.Seq == 0 {
			DestroyEntity(w, ents[4])
		}
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits after mid-iteration destroy, got %d", visited)
	}
	if Count(w, k) != 4 {
		t.Fatalf("expected 4 stored projectiles, got %d", Count(w, k))
	}
}

func TestForEach2PairsAreasWithTTL(t *testing.T) {
	w := NewWorld()
	areas := component.AreaEffectComponent.Kind()
	ttls := component.TTLComponent.Kind()

	timed := CreateEntity(w)
	untimed := CreateEntity(w)
	bare := CreateEntity(w)
	for _, e := range []Entity{timed, untimed} {
		if err := Add(w, e, areas, lingering(20)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, timed, ttls, &component.TTL{Ticks: 40}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, bare, ttls, &component.TTL{Ticks: 5}); err != nil {
		t.Fatal(err)
	}

	var got []Entity
	ForEach2(w, areas, ttls, func(e Entity, _ *component.AreaEffect, ttl *component.TTL) {
		if ttl.Ticks != 40 {
			t.Fatalf("paired with the wrong ttl: %d", ttl.Ticks)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != timed {
		t.Fatalf("expected only the timed area, got %v", got)
	}
}

func TestAreaEffectPulse(t *testing.T) {
	tests := []struct {
		name  string
		area  *component.AreaEffect
		age   int
		pulse bool
	}{
		{"first_tick", lingering(20), 0, true},
		{"between_pulses", lingering(20), 7, false},
		{"on_interval", lingering(20), 40, true},
		{"smoke_never_pulses", &component.AreaEffect{Effect: impact.AreaEffect{Kind: impact.AreaSmoke}}, 0, false},
		{"zero_interval", lingering(0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.area.Age = tt.age
			if got := tt.area.Pulse(); got != tt.pulse {
				t.Fatalf("Pulse() at age %d = %v, want %v", tt.age, got, tt.pulse)
			}
		})
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b", Data: 2})

	got := w.Events().Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Data != 2 {
		t.Fatalf("unexpected drain %+v", got)
	}
	if w.Events().Len() != 0 || w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}
