package sim

import (
	"math"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/config"
)

// Tier is the fully resolved difficulty for one wave. It is computed once at
// wave start and stamped onto every enemy the wave spawns, so mid-wave config
// reloads can never split a wave's scaling.
type Tier struct {
	Wave   int
	IsBoss bool

	HealthMult float64
	DamageMult float64
	SpeedMult  float64

	EnemyCount      int
	SpawnIntervalMs float64

	// Percentage weight per variant, renormalized to sum to 100.
	Distribution map[component.Behavior]float64
}

// ScaleWave derives the tier for wave n (1-based). Multipliers compound per
// wave; count and pacing ramp linearly to their caps. Boss waves change what
// spawns, never how much: the enemy count formula is the same.
func ScaleWave(cfg *config.WavesConfig, n int) Tier {
	if n < 1 {
		n = 1
	}
	steps := float64(n - 1)

	count := cfg.BaseEnemies + (n-1)*cfg.IncreasePerWave
	if count > cfg.MaxEnemies {
		count = cfg.MaxEnemies
	}

	interval := cfg.BaseSpawnIntervalMs - steps*cfg.SpawnIntervalDecreaseMs
	if interval < cfg.MinSpawnIntervalMs {
		interval = cfg.MinSpawnIntervalMs
	}

	return Tier{
		Wave:            n,
		IsBoss:          cfg.BossFrequency > 0 && n%cfg.BossFrequency == 0,
		HealthMult:      math.Pow(1+cfg.HealthScaling, steps),
		DamageMult:      math.Pow(1+cfg.DamageScaling, steps),
		SpeedMult:       math.Pow(1+cfg.SpeedScaling, steps),
		EnemyCount:      count,
		SpawnIntervalMs: interval,
		Distribution:    distributionFor(cfg.Distribution, n),
	}
}

// distributionFor interpolates the variant weights between the two
// breakpoints bracketing wave n, then renormalizes so rounding drift cannot
// leave the weights summing away from 100. At or past the last breakpoint
// the last row applies as-is.
func distributionFor(points []config.DistributionPoint, n int) map[component.Behavior]float64 {
	var lo, hi config.DistributionPoint
	switch {
	case n <= points[0].Wave:
		lo, hi = points[0], points[0]
	case n >= points[len(points)-1].Wave:
		last := points[len(points)-1]
		lo, hi = last, last
	default:
		for i := 1; i < len(points); i++ {
			if n < points[i].Wave {
				lo, hi = points[i-1], points[i]
				break
			}
			if n == points[i].Wave {
				lo, hi = points[i], points[i]
				break
			}
		}
	}

	t := 0.0
	if hi.Wave > lo.Wave {
		t = float64(n-lo.Wave) / float64(hi.Wave-lo.Wave)
	}
	lerp := func(a, b float64) float64 { return a + (b-a)*t }

	d := map[component.Behavior]float64{
		component.BehaviorBasic:   lerp(lo.Basic, hi.Basic),
		component.BehaviorRanged:  lerp(lo.Ranged, hi.Ranged),
		component.BehaviorCharger: lerp(lo.Charger, hi.Charger),
	}
	total := 0.0
	for _, w := range d {
		total += w
	}
	if total > 0 {
		for b, w := range d {
			d[b] = w / total * 100
		}
	}
	return d
}
