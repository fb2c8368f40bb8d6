package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/milk9111/cannonball/arena"
	"github.com/milk9111/cannonball/projectile"
)

type actorResult struct {
	name   string
	damage float64
	alive  bool
}

type summary struct {
	scenario   string
	seed       string
	ticks      int
	spawned    int
	exits      map[projectile.ExitReason]int
	explosions int
	areas      int
	pulses     int
	voxels     int
	stress     float64
	actors     []actorResult
}

func summarize(scenario, seed string, ticks int, a *arena.Arena) summary {
	j := a.Journal()
	s := summary{
		scenario:   scenario,
		seed:       seed,
		ticks:      ticks,
		spawned:    j.Spawned,
		exits:      j.Exits,
		explosions: len(j.Explosions),
		areas:      len(j.Areas),
		pulses:     j.Pulses,
		voxels:     j.VoxelsDestroyed,
		stress:     j.Stress,
	}
	for _, act := range a.Actors().All() {
		s.actors = append(s.actors, actorResult{
			name:   act.Name,
			damage: j.Damage[act.ID],
			alive:  act.Alive(),
		})
	}
	slices.SortFunc(s.actors, func(x, y actorResult) int { return strings.Compare(x.name, y.name) })
	return s
}

func (s summary) write(w io.Writer) {
	fmt.Fprintf(w, "%s seed=%s ticks=%d\n", s.scenario, s.seed, s.ticks)
	fmt.Fprintf(w, "  projectiles %d, explosions %d, areas %d, pulses %d\n", s.spawned, s.explosions, s.areas, s.pulses)
	fmt.Fprintf(w, "  voxels destroyed %d, stress %.0f\n", s.voxels, s.stress)

	var exits []string
	for reason := projectile.ExitExpired; reason <= projectile.ExitSpent; reason++ {
		if n := s.exits[reason]; n > 0 {
			exits = append(exits, fmt.Sprintf("%s=%d", reason, n))
		}
	}
	if len(exits) > 0 {
		fmt.Fprintf(w, "  exits %s\n", strings.Join(exits, " "))
	}
	for _, a := range s.actors {
		state := "alive"
		if !a.alive {
			state = "dead"
		}
		fmt.Fprintf(w, "  %-12s %6.1f damage, %s\n", a.name, a.damage, state)
	}
}
