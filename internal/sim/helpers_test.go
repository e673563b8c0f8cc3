package sim

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/data"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

const testEnemyYAML = `
enemies:
  - id: thrall
    behavior: basic
    health: 30
    damage: 10
    speed: 120
    width: 40
    height: 40
  - id: warden
    behavior: ranged
    health: 20
    damage: 8
    speed: 100
    width: 36
    height: 36
    preferred_range: 320
    fire_interval_ms: 1800
    projectile_speed: 350
    projectile_range: 420
  - id: hound
    behavior: charger
    health: 25
    damage: 14
    speed: 140
    width: 34
    height: 34
    trigger_range: 260
    windup_ms: 600
    dash_multiplier: 3.0
    dash_duration_ms: 400
    recover_ms: 700
    charge_cooldown_ms: 2500
`

const testPowerupYAML = `
powerups:
  - id: salve
    effect: health
    weight: 4
  - id: rune
    effect: shield
    weight: 3
  - id: sigil
    effect: weapon_boost
    weight: 3
`

func testTables(t *testing.T) *run.Tables {
	t.Helper()
	dir := t.TempDir()
	enemyPath := filepath.Join(dir, "enemy_list.yaml")
	powerupPath := filepath.Join(dir, "powerup_list.yaml")
	if err := os.WriteFile(enemyPath, []byte(testEnemyYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(powerupPath, []byte(testPowerupYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	enemies, err := data.LoadEnemyTable(enemyPath)
	if err != nil {
		t.Fatalf("load enemy table: %v", err)
	}
	powerups, err := data.LoadPowerupTable(powerupPath)
	if err != nil {
		t.Fatalf("load powerup table: %v", err)
	}
	return &run.Tables{Enemies: enemies, Powerups: powerups}
}

func newTestSession(t *testing.T, mutate func(*config.Config)) *run.Session {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	return run.NewSession(cfg, testTables(t), rng, zap.NewNop())
}

// addEnemyAt places a minimal basic enemy directly, bypassing the director,
// for targeting and collision tests.
func addEnemyAt(s *run.Session, x, y, health, damage float64) ecs.EntityID {
	id := s.World.Create(ecs.KindEnemy)
	s.Transforms.Set(id, &component.Transform{X: x, Y: y, W: 40, H: 40})
	s.Velocities.Set(id, &component.Velocity{})
	s.Healths.Set(id, &component.Health{Current: health, Max: health})
	s.Enemies.Set(id, &component.Enemy{
		TemplateID: "thrall",
		Behavior:   component.BehaviorBasic,
		Wave:       1,
		Damage:     damage,
		Speed:      120,
	})
	return id
}

func addProjectileAt(s *run.Session, owner ecs.Ref, x, y, damage, maxRange float64) ecs.EntityID {
	id := s.World.Create(ecs.KindProjectile)
	s.Transforms.Set(id, &component.Transform{X: x, Y: y, W: 10, H: 10})
	s.Velocities.Set(id, &component.Velocity{})
	s.Projectiles.Set(id, &component.Projectile{Owner: owner, Damage: damage, MaxRange: maxRange})
	return id
}
