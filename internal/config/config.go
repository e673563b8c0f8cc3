package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full tunable surface of the game. Every numeric the
// simulation consumes lives here; malformed values are rejected by Validate
// before the first frame runs.
type Config struct {
	Display    DisplayConfig    `toml:"display"`
	Arena      ArenaConfig      `toml:"arena"`
	Player     PlayerConfig     `toml:"player"`
	Projectile ProjectileConfig `toml:"projectile"`
	Waves      WavesConfig      `toml:"waves"`
	Combat     CombatConfig     `toml:"combat"`
	Souls      SoulsConfig      `toml:"souls"`
	Powerups   PowerupsConfig   `toml:"powerups"`
	Score      ScoreConfig      `toml:"score"`
	Logging    LoggingConfig    `toml:"logging"`
}

type DisplayConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// ArenaConfig describes the playable map in world units. Spawn placement uses
// these dimensions, never the window size.
type ArenaConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	SpawnMargin float64 `toml:"spawn_margin"` // min distance from map edge for spawns
	SafeRadius  float64 `toml:"safe_radius"`  // min spawn distance from the player
}

type PlayerConfig struct {
	MaxHealth       float64 `toml:"max_health"`
	MoveSpeed       float64 `toml:"move_speed"` // world units per second
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	InvincibilityMs float64 `toml:"invincibility_ms"`
	ShotCooldownMs  float64 `toml:"shot_cooldown_ms"`
	ShootingRange   float64 `toml:"shooting_range"`
	CritChance      float64 `toml:"crit_chance"`     // 0.0-1.0, rolled per hit
	CritMultiplier  float64 `toml:"crit_multiplier"` // damage factor on crit
}

type ProjectileConfig struct {
	Speed    float64 `toml:"speed"`
	Damage   float64 `toml:"damage"`
	MaxRange float64 `toml:"max_range"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
}

// DistributionPoint is a named breakpoint wave with percentage weights per
// enemy type. Weights at each breakpoint must sum to 100; between breakpoints
// the scaler interpolates per type and renormalizes.
type DistributionPoint struct {
	Wave    int     `toml:"wave"`
	Basic   float64 `toml:"basic"`
	Ranged  float64 `toml:"ranged"`
	Charger float64 `toml:"charger"`
}

type WavesConfig struct {
	BossFrequency           int     `toml:"boss_frequency"`
	BaseEnemies             int     `toml:"base_enemies"`
	IncreasePerWave         int     `toml:"increase_per_wave"`
	MaxEnemies              int     `toml:"max_enemies"`
	BaseSpawnIntervalMs     float64 `toml:"base_spawn_interval_ms"`
	SpawnIntervalDecreaseMs float64 `toml:"spawn_interval_decrease_ms"`
	MinSpawnIntervalMs      float64 `toml:"min_spawn_interval_ms"`
	HealthScaling           float64 `toml:"health_scaling"` // per-wave compounding rate
	DamageScaling           float64 `toml:"damage_scaling"`
	SpeedScaling            float64 `toml:"speed_scaling"`
	BossHealthMultiplier    float64 `toml:"boss_health_multiplier"`
	BossDamageMultiplier    float64 `toml:"boss_damage_multiplier"`
	BossSizeFactor          float64 `toml:"boss_size_factor"`
	TransitionMs            float64 `toml:"transition_ms"` // wave announcement duration

	Distribution []DistributionPoint `toml:"distribution"`
}

type CombatConfig struct {
	// Per-enemy cooldown after touching the player; blocks that one enemy
	// from landing a second contact hit while others can still connect.
	EnemyTouchCooldownMs float64 `toml:"enemy_touch_cooldown_ms"`
}

type SoulsConfig struct {
	DropChance float64 `toml:"drop_chance"` // 0.0-1.0 per kill
	MinDrop    int     `toml:"min_drop"`
	MaxDrop    int     `toml:"max_drop"`
}

type PowerupsConfig struct {
	DropChance            float64 `toml:"drop_chance"`
	HealthRestore         float64 `toml:"health_restore"`
	ShieldDurationMs      float64 `toml:"shield_duration_ms"`
	WeaponBoostDurationMs float64 `toml:"weapon_boost_duration_ms"`
	WeaponBoostFactor     float64 `toml:"weapon_boost_factor"` // cooldown multiplier while boosted
}

type ScoreConfig struct {
	KillPoints           int     `toml:"kill_points"`
	PowerupPoints        int     `toml:"powerup_points"`
	PointsPerSecond      int     `toml:"points_per_second"`
	MultiplierIncrement  float64 `toml:"multiplier_increment"`
	MultiplierIntervalMs float64 `toml:"multiplier_interval_ms"`
	MaxMultiplier        float64 `toml:"max_multiplier"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads TOML from path over the built-in defaults and validates the
// result. Any malformed value is a fatal startup error — the simulation
// never runs with bad scaling parameters.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration, already valid.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  800,
			Height: 600,
			Title:  "Draugr's Descent",
		},
		Arena: ArenaConfig{
			Width:       1600,
			Height:      1200,
			SpawnMargin: 50,
			SafeRadius:  150,
		},
		Player: PlayerConfig{
			MaxHealth:       100,
			MoveSpeed:       300,
			Width:           50,
			Height:          50,
			InvincibilityMs: 1000,
			ShotCooldownMs:  500,
			ShootingRange:   250,
			CritChance:      0.05,
			CritMultiplier:  2.0,
		},
		Projectile: ProjectileConfig{
			Speed:    600,
			Damage:   10,
			MaxRange: 300,
			Width:    10,
			Height:   10,
		},
		Waves: WavesConfig{
			BossFrequency:           5,
			BaseEnemies:             10,
			IncreasePerWave:         3,
			MaxEnemies:              50,
			BaseSpawnIntervalMs:     1000,
			SpawnIntervalDecreaseMs: 50,
			MinSpawnIntervalMs:      200,
			HealthScaling:           0.10,
			DamageScaling:           0.05,
			SpeedScaling:            0.03,
			BossHealthMultiplier:    5.0,
			BossDamageMultiplier:    2.0,
			BossSizeFactor:          2.0,
			TransitionMs:            3000,
			Distribution: []DistributionPoint{
				{Wave: 1, Basic: 100, Ranged: 0, Charger: 0},
				{Wave: 5, Basic: 60, Ranged: 30, Charger: 10},
				{Wave: 10, Basic: 40, Ranged: 40, Charger: 20},
				{Wave: 20, Basic: 30, Ranged: 40, Charger: 30},
			},
		},
		Combat: CombatConfig{
			EnemyTouchCooldownMs: 1000,
		},
		Souls: SoulsConfig{
			DropChance: 0.8,
			MinDrop:    1,
			MaxDrop:    5,
		},
		Powerups: PowerupsConfig{
			DropChance:            0.25,
			HealthRestore:         20,
			ShieldDurationMs:      5000,
			WeaponBoostDurationMs: 5000,
			WeaponBoostFactor:     0.5,
		},
		Score: ScoreConfig{
			KillPoints:           100,
			PowerupPoints:        50,
			PointsPerSecond:      1,
			MultiplierIncrement:  0.25,
			MultiplierIntervalMs: 180_000,
			MaxMultiplier:        5.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
