package projectile

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
)

var (
	ErrUnknownType   = errors.New("projectile: unknown type")
	ErrDuplicateType = errors.New("projectile: duplicate type")
	ErrInvalidType   = errors.New("projectile: invalid type")
	ErrNoStandard    = errors.New("projectile: table has no standard type")
)

// Table is an immutable catalog of projectile types keyed by Kind. It always
// contains the standard type, which doubles as the fallback for unknown ids.
type Table struct {
	types    map[Kind]*Type
	order    []Kind
	standard *Type
}

// NewTable validates and freezes the given types.
func NewTable(types ...Type) (*Table, error) {
	t := &Table{types: make(map[Kind]*Type, len(types))}
	for i := range types {
		typ := types[i]
		if err := validate(typ); err != nil {
			return nil, err
		}
		if _, ok := t.types[typ.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, typ.ID)
		}
		if typ.DisplayName == "" {
			typ.DisplayName = string(typ.ID)
		}
		t.types[typ.ID] = &typ
		t.order = append(t.order, typ.ID)
	}
	std, ok := t.types[KindStandard]
	if !ok {
		return nil, ErrNoStandard
	}
	t.standard = std
	return t, nil
}

func validate(t Type) error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidType)
	case !(t.Mass > 0) || math.IsInf(t.Mass, 0):
		return fmt.Errorf("%w: %s: mass must be positive", ErrInvalidType, t.ID)
	case t.GravityMultiplier < 0 || math.IsNaN(t.GravityMultiplier):
		return fmt.Errorf("%w: %s: negative gravity multiplier", ErrInvalidType, t.ID)
	case t.AirResistanceMultiplier < 0 || math.IsNaN(t.AirResistanceMultiplier):
		return fmt.Errorf("%w: %s: negative air resistance", ErrInvalidType, t.ID)
	case t.StressCostMultiplier < 0:
		return fmt.Errorf("%w: %s: negative stress multiplier", ErrInvalidType, t.ID)
	}
	return nil
}

// Lookup returns the type registered under id. A nil table reads the
// default table.
func (t *Table) Lookup(id Kind) (*Type, bool) {
	if t == nil {
		t = DefaultTable()
	}
	typ, ok := t.types[id]
	return typ, ok
}

// Resolve returns the type for id, falling back to the standard type.
func (t *Table) Resolve(id Kind) *Type {
	if typ, ok := t.Lookup(id); ok {
		return typ
	}
	return t.Standard()
}

// Standard returns the baseline type used for fallbacks and split children.
func (t *Table) Standard() *Type {
	if t == nil {
		return DefaultTable().standard
	}
	return t.standard
}

// Kinds returns the registered ids in declaration order.
func (t *Table) Kinds() []Kind {
	if t == nil {
		return nil
	}
	return slices.Clone(t.order)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Builtin returns the stock projectile types.
func Builtin() []Type {
	return []Type{
		{ID: KindStandard, DisplayName: "Standard", GravityMultiplier: 1.0, AirResistanceMultiplier: 1.0, Mass: 5, StressCostMultiplier: 1.0},
		{ID: KindHeavy, DisplayName: "Heavy", GravityMultiplier: 1.3, AirResistanceMultiplier: 0.7, Mass: 12, StressCostMultiplier: 1.2},
		{ID: KindRocket, DisplayName: "Rocket", GravityMultiplier: 0.3, AirResistanceMultiplier: 0.5, Mass: 4, StressCostMultiplier: 1.5, Caps: CapRocketTrail},
		{ID: KindArmorPiercing, DisplayName: "Armor Piercing", GravityMultiplier: 1.0, AirResistanceMultiplier: 0.8, Mass: 15, StressCostMultiplier: 1.3, Caps: CapPenetrate},
		{ID: KindIncendiary, DisplayName: "Incendiary", GravityMultiplier: 1.0, AirResistanceMultiplier: 1.0, Mass: 6, StressCostMultiplier: 1.2, Caps: CapFire},
		{ID: KindSmoke, DisplayName: "Smoke", GravityMultiplier: 0.8, AirResistanceMultiplier: 1.2, Mass: 2, StressCostMultiplier: 0.5, Caps: CapSmoke},
		{ID: KindGrapeshot, DisplayName: "Grapeshot", GravityMultiplier: 1.2, AirResistanceMultiplier: 1.5, Mass: 0.5, StressCostMultiplier: 0.8, Caps: CapNoBlast},
		{ID: KindCluster, DisplayName: "Cluster", GravityMultiplier: 0.9, AirResistanceMultiplier: 1.1, Mass: 8, StressCostMultiplier: 1.8, Caps: CapApexSplit},
		{ID: KindHighYield, DisplayName: "High-Yield", GravityMultiplier: 1.1, AirResistanceMultiplier: 0.9, Mass: 20, StressCostMultiplier: 3.0, Caps: CapHighYield},
		{ID: KindRocketAssisted, DisplayName: "Rocket-Assisted", GravityMultiplier: 0.4, AirResistanceMultiplier: 0.4, Mass: 10, StressCostMultiplier: 2.5, Caps: CapRocketTrail | CapThrust},
		{ID: KindFragmentation, DisplayName: "Fragmentation", GravityMultiplier: 0.95, AirResistanceMultiplier: 1.0, Mass: 12, StressCostMultiplier: 2.2, Caps: CapFragmentation},
		{ID: KindNova, DisplayName: "NOVA", GravityMultiplier: 1.4, AirResistanceMultiplier: 0.6, Mass: 50, StressCostMultiplier: 5.0, Caps: CapHighYield | CapTopTier},
	}
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(Builtin()...)
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTable returns the shared table built from Builtin.
func DefaultTable() *Table {
	return defaultTable()
}
