package prefabs

import (
	"fmt"

	"github.com/milk9111/cannonball/projectile"
	"gopkg.in/yaml.v3"
)

const (
	CatalogFile = "projectiles.yaml"
	AmmoFile    = "ammo.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ProjectileTypeSpec is one entry of projectiles.yaml. The multipliers scale
// the arena's base gravity, drag and stress cost.
type ProjectileTypeSpec struct {
	ID            string   `yaml:"id" json:"id"`
	DisplayName   string   `yaml:"display_name" json:"display_name,omitempty"`
	Gravity       float64  `yaml:"gravity" json:"gravity"`
	AirResistance float64  `yaml:"air_resistance" json:"air_resistance"`
	Mass          float64  `yaml:"mass" json:"mass"`
	StressCost    float64  `yaml:"stress_cost" json:"stress_cost"`
	Capabilities  []string `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
}

func (s ProjectileTypeSpec) Type() (projectile.Type, error) {
	caps, err := projectile.ParseCapabilities(s.Capabilities)
	if err != nil {
		return projectile.Type{}, fmt.Errorf("prefabs: type %s: %w", s.ID, err)
	}
	return projectile.Type{
		ID:                      projectile.Kind(s.ID),
		DisplayName:             s.DisplayName,
		GravityMultiplier:       s.Gravity,
		AirResistanceMultiplier: s.AirResistance,
		Mass:                    s.Mass,
		StressCostMultiplier:    s.StressCost,
		Caps:                    caps,
	}, nil
}

type CatalogSpec struct {
	Types []ProjectileTypeSpec `yaml:"types" json:"types"`
}

// Table builds and validates the projectile table described by the catalog.
func (s CatalogSpec) Table() (*projectile.Table, error) {
	types := make([]projectile.Type, 0, len(s.Types))
	for _, ts := range s.Types {
		t, err := ts.Type()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	table, err := projectile.NewTable(types...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build table: %w", err)
	}
	return table, nil
}

type AmmoSpec struct {
	ID              string  `yaml:"id" json:"id"`
	DisplayName     string  `yaml:"display_name" json:"display_name,omitempty"`
	Type            string  `yaml:"type" json:"type"`
	Damage          float64 `yaml:"damage" json:"damage"`
	ExplosionRadius float64 `yaml:"explosion_radius" json:"explosion_radius"`
}

type AmmoCatalogSpec struct {
	Ammo []AmmoSpec `yaml:"ammo" json:"ammo"`
}

// Armory builds the ammunition index. Every entry must name a type known to
// table.
func (s AmmoCatalogSpec) Armory(table *projectile.Table) (*projectile.Armory, error) {
	ammo := make([]projectile.Ammo, 0, len(s.Ammo))
	for _, as := range s.Ammo {
		kind := projectile.Kind(as.Type)
		if _, ok := table.Lookup(kind); !ok {
			return nil, fmt.Errorf("prefabs: ammo %s: %w: %q", as.ID, projectile.ErrUnknownType, as.Type)
		}
		ammo = append(ammo, projectile.Ammo{
			ID:              as.ID,
			DisplayName:     as.DisplayName,
			Type:            kind,
			Damage:          as.Damage,
			ExplosionRadius: as.ExplosionRadius,
		})
	}
	armory, err := projectile.NewArmory(ammo...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build armory: %w", err)
	}
	return armory, nil
}

func LoadTable() (*projectile.Table, error) {
	spec, err := LoadSpec[CatalogSpec](CatalogFile)
	if err != nil {
		return nil, err
	}
	return spec.Table()
}

func LoadArmory(table *projectile.Table) (*projectile.Armory, error) {
	spec, err := LoadSpec[AmmoCatalogSpec](AmmoFile)
	if err != nil {
		return nil, err
	}
	return spec.Armory(table)
}

// LoadCatalog loads both catalog files.
func LoadCatalog() (*projectile.Table, *projectile.Armory, error) {
	table, err := LoadTable()
	if err != nil {
		return nil, nil, err
	}
	armory, err := LoadArmory(table)
	if err != nil {
		return nil, nil, err
	}
	return table, armory, nil
}
