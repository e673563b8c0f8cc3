package sim

import (
	"math"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

const placementRetries = 16

// spawner paces enemy entry during a wave. The accumulator saturates at one
// interval, so a stalled frame releases at most one catch-up spawn instead
// of a burst.
type spawner struct {
	s          *run.Session
	intervalMs float64
	accumMs    float64
}

func newSpawner(s *run.Session) *spawner {
	return &spawner{s: s}
}

// Arm resets pacing for a new wave. The accumulator starts full so the first
// enemy appears immediately at wave start.
func (sp *spawner) Arm(intervalMs float64) {
	sp.intervalMs = intervalMs
	sp.accumMs = intervalMs
}

// Due advances the pacing clock and reports whether one spawn is owed.
func (sp *spawner) Due(dtMs float64) bool {
	sp.accumMs += dtMs
	if sp.accumMs > sp.intervalMs {
		sp.accumMs = sp.intervalMs
	}
	if sp.accumMs >= sp.intervalMs {
		sp.accumMs = 0
		return true
	}
	return false
}

// pickBehavior samples a variant from the tier's percentage weights.
func (sp *spawner) pickBehavior(tier *Tier) component.Behavior {
	roll := sp.s.Rng.Float64() * 100
	for _, b := range []component.Behavior{component.BehaviorBasic, component.BehaviorRanged, component.BehaviorCharger} {
		roll -= tier.Distribution[b]
		if roll < 0 {
			return b
		}
	}
	return component.BehaviorBasic
}

// pickSpawnPoint finds a position inside the arena spawn margins and outside
// the player's safe radius. After a bounded number of attempts the last
// candidate is accepted so spawning cannot stall.
func (sp *spawner) pickSpawnPoint() (float64, float64) {
	arena := sp.s.Cfg.Arena
	_, playerTf, _ := sp.s.Player()

	var x, y float64
	for i := 0; i < placementRetries; i++ {
		x = arena.SpawnMargin + sp.s.Rng.Float64()*(arena.Width-2*arena.SpawnMargin)
		y = arena.SpawnMargin + sp.s.Rng.Float64()*(arena.Height-2*arena.SpawnMargin)
		if playerTf == nil {
			break
		}
		if math.Hypot(x-playerTf.X, y-playerTf.Y) >= arena.SafeRadius {
			break
		}
	}
	return x, y
}

// spawn stamps one enemy from the tier, pre-multiplying every scaled
// attribute so the entity never consults the tier again. On boss spawns the
// boss multipliers stack on top of the wave multipliers.
func (sp *spawner) spawn(tier *Tier, isBoss bool) ecs.EntityID {
	s := sp.s
	behavior := sp.pickBehavior(tier)
	if isBoss {
		behavior = component.BehaviorBasic
	}
	tmpl := s.Tables.Enemies.ByBehavior(behavior)

	health := tmpl.Health * tier.HealthMult
	damage := tmpl.Damage * tier.DamageMult
	speed := tmpl.Speed * tier.SpeedMult
	w, h := tmpl.Width, tmpl.Height
	if isBoss {
		waves := s.Cfg.Waves
		health *= waves.BossHealthMultiplier
		damage *= waves.BossDamageMultiplier
		w *= waves.BossSizeFactor
		h *= waves.BossSizeFactor
	}

	x, y := sp.pickSpawnPoint()
	id := s.World.Create(ecs.KindEnemy)
	s.Transforms.Set(id, &component.Transform{X: x, Y: y, W: w, H: h})
	s.Velocities.Set(id, &component.Velocity{})
	s.Healths.Set(id, &component.Health{Current: health, Max: health})
	s.Enemies.Set(id, &component.Enemy{
		TemplateID:  tmpl.ID,
		Behavior:    behavior,
		Wave:        tier.Wave,
		IsBoss:      isBoss,
		Damage:      damage,
		Speed:       speed,
		ScalingMult: tier.HealthMult,

		PreferredRange:  tmpl.PreferredRange,
		FireIntervalMs:  tmpl.FireIntervalMs,
		ProjectileSpeed: tmpl.ProjectileSpeed,
		ProjectileRange: tmpl.ProjectileRange,

		TriggerRange:     tmpl.TriggerRange,
		WindupMs:         tmpl.WindupMs,
		DashDurationMs:   tmpl.DashDurationMs,
		RecoverMs:        tmpl.RecoverMs,
		DashMultiplier:   tmpl.DashMultiplier,
		ChargeCooldownMs: tmpl.ChargeCooldownMs,
	})
	s.Renderables.Set(id, &component.Renderable{
		R: tmpl.Color[0], G: tmpl.Color[1], B: tmpl.Color[2], A: tmpl.Color[3],
	})
	return id
}
