package voxel

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMaterial = errors.New("voxel: unknown material")

// Material identifies the contents of a single voxel cell.
type Material uint8

const (
	Air Material = iota
	Stone
	Dirt
	Grass
	Sand
	Wood
	Planks
	Leaves
	Glass
	Iron
	Obsidian
	Bedrock
	Fire
)

// MaterialInfo holds the static properties of a material. A negative
// hardness marks the material as indestructible.
type MaterialInfo struct {
	Name      string
	Hardness  float64
	Solid     bool
	Flammable bool
}

var materials = [...]MaterialInfo{
	Air:      {Name: "air"},
	Stone:    {Name: "stone", Hardness: 1.5, Solid: true},
	Dirt:     {Name: "dirt", Hardness: 0.5, Solid: true},
	Grass:    {Name: "grass", Hardness: 0.6, Solid: true},
	Sand:     {Name: "sand", Hardness: 0.5, Solid: true},
	Wood:     {Name: "wood", Hardness: 2.0, Solid: true, Flammable: true},
	Planks:   {Name: "planks", Hardness: 2.0, Solid: true, Flammable: true},
	Leaves:   {Name: "leaves", Hardness: 0.2, Solid: true, Flammable: true},
	Glass:    {Name: "glass", Hardness: 0.3, Solid: true},
	Iron:     {Name: "iron", Hardness: 5.0, Solid: true},
	Obsidian: {Name: "obsidian", Hardness: 50, Solid: true},
	Bedrock:  {Name: "bedrock", Hardness: -1, Solid: true},
	Fire:     {Name: "fire"},
}

func (m Material) Info() MaterialInfo {
	if int(m) >= len(materials) {
		return materials[Air]
	}
	return materials[m]
}

func (m Material) String() string {
	return m.Info().Name
}

func (m Material) Solid() bool {
	return m.Info().Solid
}

func (m Material) Hardness() float64 {
	return m.Info().Hardness
}

func (m Material) Flammable() bool {
	return m.Info().Flammable
}

// Indestructible reports whether explosions and penetration must leave the
// cell in place.
func (m Material) Indestructible() bool {
	return m.Info().Hardness < 0
}

// ParseMaterial resolves a material by its lowercase name.
func ParseMaterial(name string) (Material, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for i, info := range materials {
		if info.Name == clean {
			return Material(i), nil
		}
	}
	return Air, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Materials lists every known material in declaration order.
func Materials() []Material {
	out := make([]Material, len(materials))
	for i := range materials {
		out[i] = Material(i)
	}
	return out
}

func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
