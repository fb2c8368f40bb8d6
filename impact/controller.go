package impact

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/cannonball/collision"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/projectile"
	"github.com/milk9111/cannonball/voxel"
)

// Config holds the tunables of impact handling.
type Config struct {
	// PenetrationHardness is the exclusive upper hardness a penetrating round
	// can bore through.
	PenetrationHardness float64
	PenetrationSlowdown float64
	// ImpactDamagePerSpeed is the bonus damage per block/tick of speed on a
	// direct actor hit.
	ImpactDamagePerSpeed float64
	MinVelocity          float64

	ApexMinTicks int
	ApexBand     float64

	RingSpeed           float64
	FragmentSpeedMin    float64
	FragmentSpeedMax    float64
	FragmentDamageScale float64
	FragmentRadiusScale float64

	FireChance float64

	SmokeRadius    float64
	SmokeDuration  int
	LingerDuration int
	LingerDamage   float64
	LingerInterval int

	ExplosionVolume float64
}

func DefaultConfig() Config {
	return Config{
		PenetrationHardness:  3.0,
		PenetrationSlowdown:  0.8,
		ImpactDamagePerSpeed: 5,
		MinVelocity:          0.1,
		ApexMinTicks:         20,
		ApexBand:             0.1,
		RingSpeed:            0.5,
		FragmentSpeedMin:     0.5,
		FragmentSpeedMax:     0.8,
		FragmentDamageScale:  0.3,
		FragmentRadiusScale:  0.4,
		FireChance:           1.0 / 3.0,
		SmokeRadius:          3.0,
		SmokeDuration:        200,
		LingerDuration:       100,
		LingerDamage:         1.0,
		LingerInterval:       20,
		ExplosionVolume:      2.0,
	}
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Terrain Terrain
	Actors  Actors
	Effects Effects
	Spawner Spawner
	Table   *projectile.Table
	// RNG feeds fragment directions, fire placement and sound pitch.
	RNG    *rand.Rand
	Logger *slog.Logger
}

// Controller runs the impact state machine for projectiles.
type Controller struct {
	cfg     Config
	terrain Terrain
	actors  Actors
	effects Effects
	spawner Spawner
	table   *projectile.Table
	rng     *rand.Rand
	logger  *slog.Logger
}

func NewController(deps Deps, cfg Config) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	table := deps.Table
	if table == nil {
		table = projectile.DefaultTable()
	}
	rng := deps.RNG
	if rng == nil {
		rng = common.NewDeterministicRNG(common.DefaultSeed, "impact")
	}
	return &Controller{
		cfg:     cfg,
		terrain: deps.Terrain,
		actors:  deps.Actors,
		effects: deps.Effects,
		spawner: deps.Spawner,
		table:   table,
		rng:     rng,
		logger:  logger,
	}
}

func (c *Controller) Config() Config {
	return c.cfg
}

// HandleHit reacts to a collision. It reports true only when the projectile
// penetrated and keeps flying.
func (c *Controller) HandleHit(p *projectile.Instance, hit collision.Hit) bool {
	if c == nil || p.Terminated() || p.HasExploded {
		return false
	}

	switch hit.Kind {
	case collision.HitActor:
		total := p.Damage + p.Speed()*c.cfg.ImpactDamagePerSpeed
		if c.actors != nil {
			c.actors.ApplyDamage(hit.Actor, total, p.ID)
		}
		c.logger.Debug("projectile hit actor", "projectile", p.ID, "actor", hit.Actor, "damage", total)
		p.Position = hit.Point
		c.Explode(p)
		return false

	case collision.HitTerrain:
		if c.canPenetrate(p, hit.Coord) {
			return c.penetrate(p, hit)
		}
		c.logger.Debug("projectile hit terrain", "projectile", p.ID, "material", hit.Material, "coord", hit.Coord)
		p.Position = hit.Point
		c.Explode(p)
		return false
	}
	return false
}

func (c *Controller) canPenetrate(p *projectile.Instance, coord voxel.Coord) bool {
	if !p.Type.CanPenetrate() || p.BlocksPenetrated >= projectile.MaxPenetration || c.terrain == nil {
		return false
	}
	h := c.terrain.Hardness(coord)
	return h >= 0 && h < c.cfg.PenetrationHardness
}

func (c *Controller) penetrate(p *projectile.Instance, hit collision.Hit) bool {
	p.Phase = projectile.Penetrating
	if !c.terrain.DestroyVoxel(hit.Coord) {
		c.logger.Debug("voxel destroy rejected", "coord", hit.Coord)
	}
	p.BlocksPenetrated++
	p.Velocity = p.Velocity.Mul(c.cfg.PenetrationSlowdown)
	p.Position = hit.Point

	c.particles(ParticleDebris, hit.Coord.Center(), 8, 0.3, 0.1)
	c.sound(SoundImpact, hit.Point, 1.0)
	c.logger.Debug("projectile penetrated",
		"projectile", p.ID, "coord", hit.Coord, "blocks", p.BlocksPenetrated, "speed", p.Speed())

	if p.Speed() < c.cfg.MinVelocity {
		p.Terminate(projectile.ExitAbsorbed)
		return false
	}
	p.Phase = projectile.Flying
	return true
}

// Settle handles a projectile that came to rest on solid ground.
func (c *Controller) Settle(p *projectile.Instance) {
	if c == nil || p.Terminated() || p.HasExploded {
		return
	}
	p.Phase = projectile.Settling
	c.logger.Debug("projectile settled", "projectile", p.ID, "position", p.Position)
	c.Explode(p)
}

// Explode runs the terminal dispatch for p. Only the first call per instance
// has any effect.
func (c *Controller) Explode(p *projectile.Instance) {
	if c == nil || p.Terminated() || !p.Latch() {
		return
	}
	p.Phase = projectile.Exploding
	t := p.Type

	switch {
	case t.Has(projectile.CapSmoke):
		c.emitArea(AreaEffect{
			Kind:     AreaSmoke,
			Source:   p.ID,
			Owner:    p.Owner,
			Position: p.Position,
			Radius:   max(c.cfg.SmokeRadius, p.ExplosionRadius),
			Duration: c.cfg.SmokeDuration,
			Effects:  TickEffects{Obscures: true},
		})
		c.particles(ParticleCloud, p.Position, 30, 1.5, 0.02)
		c.sound(SoundFizz, p.Position, 1.0)
		p.Terminate(projectile.ExitDissipated)

	case t.Has(projectile.CapNoBlast):
		c.particles(ParticlePoof, p.Position, 4, 0.1, 0.02)
		p.Terminate(projectile.ExitSpent)

	case t.IsFragmentation():
		c.blast(p, p.ExplosionRadius*t.ExplosionMultiplier(), false)
		c.split(p, c.sphere)

	default:
		radius := p.ExplosionRadius * t.ExplosionMultiplier()
		c.blast(p, radius, t.CausesFire())
		if t.CausesFire() {
			c.ignite(p.Position, max(radius, 1))
		}
		if t.IsHighYield() {
			c.linger(p, radius)
		}
		p.Terminate(projectile.ExitExploded)
	}
}

// Apex splits an apex-split projectile at the top of its arc and reports
// whether it did.
func (c *Controller) Apex(p *projectile.Instance) bool {
	if c == nil || p.Terminated() || p.HasExploded || !p.Type.Has(projectile.CapApexSplit) {
		return false
	}
	if p.TicksAlive <= c.cfg.ApexMinTicks || math.Abs(p.Velocity.Y()) > c.cfg.ApexBand {
		return false
	}
	if !p.Latch() {
		return false
	}
	c.logger.Debug("projectile reached apex", "projectile", p.ID, "ticks", p.TicksAlive)
	c.split(p, c.ring)
	return true
}

func (c *Controller) blast(p *projectile.Instance, radius float64, fire bool) {
	if c.effects != nil {
		c.effects.Explode(Explosion{
			Source:   p.ID,
			Owner:    p.Owner,
			Kind:     p.Type.ID,
			Position: p.Position,
			Radius:   radius,
			Fire:     fire,
		})
	}
	c.particles(ParticleExplosion, p.Position, 1, 0, 0)
	c.sound(SoundExplode, p.Position, c.cfg.ExplosionVolume)
	c.logger.Debug("projectile exploded", "projectile", p.ID, "position", p.Position, "radius", radius)
}

func (c *Controller) linger(p *projectile.Instance, radius float64) {
	duration := c.cfg.LingerDuration
	if p.Type.Has(projectile.CapTopTier) {
		radius *= 2
		duration *= 2
	}
	c.emitArea(AreaEffect{
		Kind:     AreaLingering,
		Source:   p.ID,
		Owner:    p.Owner,
		Position: p.Position,
		Radius:   radius,
		Duration: duration,
		Effects: TickEffects{
			DamagePerPulse: c.cfg.LingerDamage,
			PulseInterval:  c.cfg.LingerInterval,
		},
	})
}

// ignite places fire on open cells resting on solid ground within radius.
func (c *Controller) ignite(center mgl64.Vec3, radius float64) {
	if c.terrain == nil {
		return
	}
	lo := voxel.CoordOf(center.Sub(mgl64.Vec3{radius, radius, radius}))
	hi := voxel.CoordOf(center.Add(mgl64.Vec3{radius, radius, radius}))
	r2 := radius * radius
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				cell := voxel.Coord{X: x, Y: y, Z: z}
				if cell.Center().Sub(center).LenSqr() > r2 {
					continue
				}
				if c.terrain.IsSolid(cell) || !c.terrain.IsSolid(cell.Below()) {
					continue
				}
				if c.rng.Float64() < c.cfg.FireChance {
					c.terrain.SetVoxel(cell, voxel.Fire)
				}
			}
		}
	}
}

type pattern func(i, n int) mgl64.Vec3

func (c *Controller) ring(i, n int) mgl64.Vec3 {
	angle := 2 * math.Pi * float64(i) / float64(n)
	return mgl64.Vec3{math.Cos(angle), 0, math.Sin(angle)}.Mul(c.cfg.RingSpeed)
}

func (c *Controller) sphere(_, _ int) mgl64.Vec3 {
	speed := common.RandomRange(c.rng, c.cfg.FragmentSpeedMin, c.cfg.FragmentSpeedMax)
	return common.RandomUnitVector(c.rng).Mul(speed)
}

// split queues the children of p and terminates it. Children always use the
// standard type so they cannot split again.
func (c *Controller) split(p *projectile.Instance, dir pattern) {
	p.Phase = projectile.Splitting
	n := p.Type.FragmentCount()
	child := c.table.Standard()
	for i := 0; i < n; i++ {
		if c.spawner == nil {
			break
		}
		c.spawner.QueueSpawn(SpawnRequest{
			Parent:          p.ID,
			Type:            child,
			Position:        p.Position,
			Velocity:        dir(i, n),
			Damage:          p.Damage * c.cfg.FragmentDamageScale,
			ExplosionRadius: p.ExplosionRadius * c.cfg.FragmentRadiusScale,
			Owner:           p.Owner,
		})
	}
	c.sound(SoundSplit, p.Position, 1.0)
	c.logger.Debug("projectile split", "projectile", p.ID, "children", n)
	p.Terminate(projectile.ExitSplit)
}

// Trail emits the in-flight particle trail for p.
func (c *Controller) Trail(p *projectile.Instance) {
	if c == nil || p.Terminated() {
		return
	}
	c.particles(ParticleSmoke, p.Position, 1, 0.05, 0.01)
	burning := p.Type.Thrust(p.TicksAlive) > 0
	if burning || p.TicksAlive%3 == 0 {
		c.particles(ParticleFlame, p.Position, 1, 0.02, 0.005)
	}
}

func (c *Controller) emitArea(a AreaEffect) {
	if c.effects == nil {
		return
	}
	c.effects.SpawnAreaEffect(a)
}

func (c *Controller) particles(kind ParticleKind, pos mgl64.Vec3, count int, spread, speed float64) {
	if c.effects == nil {
		return
	}
	c.effects.SpawnParticles(ParticleBurst{Kind: kind, Position: pos, Count: count, Spread: spread, Speed: speed})
}

func (c *Controller) sound(kind SoundKind, pos mgl64.Vec3, volume float64) {
	if c.effects == nil {
		return
	}
	c.effects.PlaySound(Sound{Kind: kind, Position: pos, Volume: volume, Pitch: 0.9 + c.rng.Float64()*0.2})
}
