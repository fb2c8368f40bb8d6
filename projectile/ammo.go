package projectile

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateAmmo = errors.New("projectile: duplicate ammunition")
	ErrInvalidAmmo   = errors.New("projectile: invalid ammunition")
)

// Payload used when a launcher fires something the armory does not know.
const (
	DefaultDamage          = 20.0
	DefaultExplosionRadius = 2.0
	// BaseStress is the launcher stress a multiplier of 1.0 costs per shot.
	BaseStress = 256.0
)

// Ammo is a loadable round: a projectile type plus its payload.
type Ammo struct {
	ID              string
	DisplayName     string
	Type            Kind
	Damage          float64
	ExplosionRadius float64
}

// DefaultAmmo is the fallback round.
func DefaultAmmo() Ammo {
	return Ammo{ID: "default", DisplayName: "Cannonball", Type: KindStandard, Damage: DefaultDamage, ExplosionRadius: DefaultExplosionRadius}
}

// Armory indexes ammunition by id.
type Armory struct {
	byID  map[string]Ammo
	order []string
}

func NewArmory(ammo ...Ammo) (*Armory, error) {
	a := &Armory{byID: make(map[string]Ammo, len(ammo))}
	for _, am := range ammo {
		switch {
		case am.ID == "":
			return nil, fmt.Errorf("%w: empty id", ErrInvalidAmmo)
		case am.Damage < 0 || am.ExplosionRadius < 0:
			return nil, fmt.Errorf("%w: %s: negative payload", ErrInvalidAmmo, am.ID)
		}
		if _, ok := a.byID[am.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAmmo, am.ID)
		}
		a.byID[am.ID] = am
		a.order = append(a.order, am.ID)
	}
	return a, nil
}

func (a *Armory) Lookup(id string) (Ammo, bool) {
	if a == nil {
		return Ammo{}, false
	}
	am, ok := a.byID[id]
	return am, ok
}

// Resolve returns the ammunition for id or DefaultAmmo.
func (a *Armory) Resolve(id string) Ammo {
	if am, ok := a.Lookup(id); ok {
		return am
	}
	return DefaultAmmo()
}

func (a *Armory) IDs() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.order)
}

// BuiltinAmmo is the stock ammunition list.
func BuiltinAmmo() []Ammo {
	return []Ammo{
		{ID: "iron_cannonball", DisplayName: "Iron Cannonball", Type: KindStandard, Damage: 20, ExplosionRadius: 2},
		{ID: "steel_cannonball", DisplayName: "Steel Cannonball", Type: KindHeavy, Damage: 35, ExplosionRadius: 3.5},
		{ID: "explosive_shell", DisplayName: "Explosive Shell", Type: KindStandard, Damage: 15, ExplosionRadius: 5},
		{ID: "nuclear_shell", DisplayName: "Nuclear Shell", Type: KindStandard, Damage: 100, ExplosionRadius: 15},
		{ID: "rocket_ammo", DisplayName: "Rocket", Type: KindRocket, Damage: 30, ExplosionRadius: 3},
		{ID: "incendiary_shell", DisplayName: "Incendiary Shell", Type: KindIncendiary, Damage: 15, ExplosionRadius: 4},
		{ID: "armor_piercing_round", DisplayName: "Armor Piercing Round", Type: KindArmorPiercing, Damage: 80, ExplosionRadius: 0.5},
		{ID: "cluster_bomb", DisplayName: "Cluster Bomb", Type: KindCluster, Damage: 10, ExplosionRadius: 1.5},
		{ID: "smoke_shell", DisplayName: "Smoke Shell", Type: KindSmoke, Damage: 0, ExplosionRadius: 0},
		{ID: "grapeshot", DisplayName: "Grapeshot", Type: KindGrapeshot, Damage: 5, ExplosionRadius: 0},
		{ID: "high_yield_shell", DisplayName: "High-Yield Shell", Type: KindHighYield, Damage: 120, ExplosionRadius: 18},
		{ID: "rocket_assisted_shell", DisplayName: "Rocket-Assisted Shell", Type: KindRocketAssisted, Damage: 45, ExplosionRadius: 5},
		{ID: "fragmentation_shell", DisplayName: "Fragmentation Shell", Type: KindFragmentation, Damage: 15, ExplosionRadius: 1},
		{ID: "nova_shell", DisplayName: "NOVA Shell", Type: KindNova, Damage: 200, ExplosionRadius: 25},
	}
}
