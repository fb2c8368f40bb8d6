package projectile

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCapability = errors.New("projectile: unknown capability")

// Capability is a bitset of behaviour flags carried by a Type.
type Capability uint16

const (
	CapPenetrate Capability = 1 << iota
	CapFire
	CapRocketTrail
	CapHighYield
	CapThrust
	CapFragmentation
	CapSmoke
	CapNoBlast
	CapApexSplit
	CapTopTier
)

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapPenetrate, "penetrate"},
	{CapFire, "fire"},
	{CapRocketTrail, "rocket_trail"},
	{CapHighYield, "high_yield"},
	{CapThrust, "thrust"},
	{CapFragmentation, "fragmentation"},
	{CapSmoke, "smoke"},
	{CapNoBlast, "no_blast"},
	{CapApexSplit, "apex_split"},
	{CapTopTier, "top_tier"},
}

// Has reports whether every bit of f is set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// Names lists the set flags in declaration order.
func (c Capability) Names() []string {
	var out []string
	for _, n := range capabilityNames {
		if c.Has(n.cap) {
			out = append(out, n.name)
		}
	}
	return out
}

func (c Capability) String() string {
	names := c.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseCapability resolves a single flag by name.
func ParseCapability(name string) (Capability, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for _, n := range capabilityNames {
		if n.name == clean {
			return n.cap, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
}

// ParseCapabilities folds a list of flag names into a bitset.
func ParseCapabilities(names []string) (Capability, error) {
	var c Capability
	for _, name := range names {
		f, err := ParseCapability(name)
		if err != nil {
			return 0, err
		}
		c |= f
	}
	return c, nil
}
