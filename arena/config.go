package arena

import (
	"github.com/milk9111/cannonball/ballistics"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/impact"
	"github.com/milk9111/cannonball/projectile"
)

// Config tunes one arena. Zero fields take their defaults.
type Config struct {
	Seed         string  `yaml:"seed" json:"seed,omitempty"`
	Gravity      float64 `yaml:"gravity" json:"gravity,omitempty"`
	WindStrength float64 `yaml:"wind_strength" json:"wind_strength,omitempty"`
	// Calm disables wind entirely.
	Calm        bool `yaml:"calm" json:"calm,omitempty"`
	MaxLifetime int  `yaml:"max_lifetime" json:"max_lifetime,omitempty"`
	// ProtectTerrain stops explosions from breaking voxels. Penetration still
	// bores through.
	ProtectTerrain bool `yaml:"protect_terrain" json:"protect_terrain,omitempty"`
	// BlastPower is the hardness a blast breaks per block of radius.
	BlastPower float64 `yaml:"blast_power" json:"blast_power,omitempty"`
	FireChance float64 `yaml:"fire_chance" json:"fire_chance,omitempty"`
	IFrames    int     `yaml:"iframes" json:"iframes,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Seed:         common.DefaultSeed,
		Gravity:      ballistics.BaseGravity,
		WindStrength: ballistics.DefaultWindStrength,
		MaxLifetime:  projectile.MaxLifetimeTicks,
		BlastPower:   1.0,
		FireChance:   impact.DefaultConfig().FireChance,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Seed == "" {
		c.Seed = d.Seed
	}
	if c.Gravity == 0 {
		c.Gravity = d.Gravity
	}
	if c.WindStrength == 0 {
		c.WindStrength = d.WindStrength
	}
	if c.MaxLifetime <= 0 {
		c.MaxLifetime = d.MaxLifetime
	}
	if c.BlastPower == 0 {
		c.BlastPower = d.BlastPower
	}
	if c.FireChance == 0 {
		c.FireChance = d.FireChance
	}
	return c
}

func (c Config) impactConfig() impact.Config {
	ic := impact.DefaultConfig()
	ic.FireChance = c.FireChance
	return ic
}
