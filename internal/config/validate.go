package config

import (
	"fmt"
	"math"
)

const weightSumTolerance = 1e-6

// Validate checks every tunable the simulation depends on and returns a
// descriptive error for the first violation found.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display: window size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena: map size %.0fx%.0f must be positive", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.SpawnMargin < 0 {
		return fmt.Errorf("arena: spawn_margin %.1f must not be negative", c.Arena.SpawnMargin)
	}
	if 2*c.Arena.SpawnMargin >= c.Arena.Width || 2*c.Arena.SpawnMargin >= c.Arena.Height {
		return fmt.Errorf("arena: spawn_margin %.1f leaves no spawnable area inside %.0fx%.0f map",
			c.Arena.SpawnMargin, c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.SafeRadius < 0 {
		return fmt.Errorf("arena: safe_radius %.1f must not be negative", c.Arena.SafeRadius)
	}

	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player: max_health %.1f must be positive", c.Player.MaxHealth)
	}
	if c.Player.MoveSpeed <= 0 {
		return fmt.Errorf("player: move_speed %.1f must be positive", c.Player.MoveSpeed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player: size %.1fx%.1f must be positive", c.Player.Width, c.Player.Height)
	}
	if c.Player.InvincibilityMs < 0 {
		return fmt.Errorf("player: invincibility_ms %.1f must not be negative", c.Player.InvincibilityMs)
	}
	if c.Player.ShotCooldownMs <= 0 {
		return fmt.Errorf("player: shot_cooldown_ms %.1f must be positive", c.Player.ShotCooldownMs)
	}
	if c.Player.ShootingRange <= 0 {
		return fmt.Errorf("player: shooting_range %.1f must be positive", c.Player.ShootingRange)
	}
	if err := chance("player.crit_chance", c.Player.CritChance); err != nil {
		return err
	}
	if c.Player.CritMultiplier < 1 {
		return fmt.Errorf("player: crit_multiplier %.2f must be at least 1", c.Player.CritMultiplier)
	}

	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile: speed %.1f must be positive", c.Projectile.Speed)
	}
	if c.Projectile.Damage <= 0 {
		return fmt.Errorf("projectile: damage %.1f must be positive", c.Projectile.Damage)
	}
	if c.Projectile.MaxRange <= 0 {
		return fmt.Errorf("projectile: max_range %.1f must be positive", c.Projectile.MaxRange)
	}

	if err := c.validateWaves(); err != nil {
		return err
	}

	if c.Combat.EnemyTouchCooldownMs < 0 {
		return fmt.Errorf("combat: enemy_touch_cooldown_ms %.1f must not be negative", c.Combat.EnemyTouchCooldownMs)
	}

	if err := chance("souls.drop_chance", c.Souls.DropChance); err != nil {
		return err
	}
	if c.Souls.MinDrop < 0 {
		return fmt.Errorf("souls: min_drop %d must not be negative", c.Souls.MinDrop)
	}
	if c.Souls.MaxDrop < c.Souls.MinDrop {
		return fmt.Errorf("souls: max_drop %d must not be below min_drop %d", c.Souls.MaxDrop, c.Souls.MinDrop)
	}

	if err := chance("powerups.drop_chance", c.Powerups.DropChance); err != nil {
		return err
	}
	if c.Powerups.WeaponBoostFactor <= 0 || c.Powerups.WeaponBoostFactor > 1 {
		return fmt.Errorf("powerups: weapon_boost_factor %.2f must be in (0, 1]", c.Powerups.WeaponBoostFactor)
	}

	if c.Score.MaxMultiplier < 1 {
		return fmt.Errorf("score: max_multiplier %.2f must be at least 1", c.Score.MaxMultiplier)
	}
	if c.Score.MultiplierIntervalMs <= 0 {
		return fmt.Errorf("score: multiplier_interval_ms %.1f must be positive", c.Score.MultiplierIntervalMs)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging: format %q must be \"json\" or \"console\"", c.Logging.Format)
	}

	return nil
}

func (c *Config) validateWaves() error {
	w := c.Waves
	if w.BossFrequency < 1 {
		return fmt.Errorf("waves: boss_frequency %d must be at least 1", w.BossFrequency)
	}
	if w.BaseEnemies < 1 {
		return fmt.Errorf("waves: base_enemies %d must be at least 1", w.BaseEnemies)
	}
	if w.IncreasePerWave < 0 {
		return fmt.Errorf("waves: increase_per_wave %d must not be negative", w.IncreasePerWave)
	}
	if w.MaxEnemies < w.BaseEnemies {
		return fmt.Errorf("waves: max_enemies %d must not be below base_enemies %d", w.MaxEnemies, w.BaseEnemies)
	}
	if w.BaseSpawnIntervalMs <= 0 {
		return fmt.Errorf("waves: base_spawn_interval_ms %.1f must be positive", w.BaseSpawnIntervalMs)
	}
	if w.MinSpawnIntervalMs <= 0 {
		return fmt.Errorf("waves: min_spawn_interval_ms %.1f must be positive", w.MinSpawnIntervalMs)
	}
	if w.MinSpawnIntervalMs > w.BaseSpawnIntervalMs {
		return fmt.Errorf("waves: min_spawn_interval_ms %.1f must not exceed base_spawn_interval_ms %.1f",
			w.MinSpawnIntervalMs, w.BaseSpawnIntervalMs)
	}
	if w.SpawnIntervalDecreaseMs < 0 {
		return fmt.Errorf("waves: spawn_interval_decrease_ms %.1f must not be negative", w.SpawnIntervalDecreaseMs)
	}
	if w.HealthScaling < 0 || w.DamageScaling < 0 || w.SpeedScaling < 0 {
		return fmt.Errorf("waves: scaling rates (%.3f, %.3f, %.3f) must not be negative",
			w.HealthScaling, w.DamageScaling, w.SpeedScaling)
	}
	if w.BossHealthMultiplier < 1 || w.BossDamageMultiplier < 1 {
		return fmt.Errorf("waves: boss multipliers (%.2f, %.2f) must be at least 1",
			w.BossHealthMultiplier, w.BossDamageMultiplier)
	}
	if w.TransitionMs < 0 {
		return fmt.Errorf("waves: transition_ms %.1f must not be negative", w.TransitionMs)
	}

	if len(w.Distribution) == 0 {
		return fmt.Errorf("waves: distribution must define at least one breakpoint")
	}
	prevWave := 0
	for i, p := range w.Distribution {
		if p.Wave < 1 {
			return fmt.Errorf("waves: distribution[%d] wave %d must be at least 1", i, p.Wave)
		}
		if p.Wave <= prevWave {
			return fmt.Errorf("waves: distribution breakpoints must be strictly increasing (wave %d after wave %d)",
				p.Wave, prevWave)
		}
		prevWave = p.Wave
		if p.Basic < 0 || p.Ranged < 0 || p.Charger < 0 {
			return fmt.Errorf("waves: distribution at wave %d has a negative weight", p.Wave)
		}
		sum := p.Basic + p.Ranged + p.Charger
		if math.Abs(sum-100) > weightSumTolerance {
			return fmt.Errorf("waves: distribution at wave %d sums to %.2f, want 100", p.Wave, sum)
		}
	}
	return nil
}

func chance(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s: %.3f must be in [0, 1]", name, v)
	}
	return nil
}
