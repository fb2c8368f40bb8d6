package projectile

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Record is the flat persisted form of an Instance.
type Record struct {
	ID               uuid.UUID  `yaml:"id" json:"id"`
	Owner            uuid.UUID  `yaml:"owner" json:"owner"`
	Position         [3]float64 `yaml:"position" json:"position"`
	Velocity         [3]float64 `yaml:"velocity" json:"velocity"`
	TypeID           Kind       `yaml:"type" json:"type"`
	TicksAlive       int        `yaml:"ticks_alive" json:"ticks_alive"`
	HasExploded      bool       `yaml:"has_exploded" json:"has_exploded"`
	BlocksPenetrated int        `yaml:"blocks_penetrated" json:"blocks_penetrated"`
	Damage           float64    `yaml:"damage" json:"damage"`
	ExplosionRadius  float64    `yaml:"explosion_radius" json:"explosion_radius"`
}

// ToRecord captures the persisted fields of p.
func (p *Instance) ToRecord() Record {
	var typeID Kind
	if p.Type != nil {
		typeID = p.Type.ID
	}
	return Record{
		ID:               p.ID,
		Owner:            p.Owner,
		Position:         p.Position,
		Velocity:         p.Velocity,
		TypeID:           typeID,
		TicksAlive:       p.TicksAlive,
		HasExploded:      p.HasExploded,
		BlocksPenetrated: p.BlocksPenetrated,
		Damage:           p.Damage,
		ExplosionRadius:  p.ExplosionRadius,
	}
}

// FromRecord rebuilds an instance. Unknown type ids resolve to the standard
// type; nothing else is derived.
func FromRecord(table *Table, rec Record) *Instance {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Instance{
		ID:               id,
		Owner:            rec.Owner,
		Type:             table.Resolve(rec.TypeID),
		Position:         mgl64.Vec3(rec.Position),
		Velocity:         mgl64.Vec3(rec.Velocity),
		TicksAlive:       rec.TicksAlive,
		HasExploded:      rec.HasExploded,
		BlocksPenetrated: rec.BlocksPenetrated,
		Damage:           rec.Damage,
		ExplosionRadius:  rec.ExplosionRadius,
	}
}
