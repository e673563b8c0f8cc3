package run

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/data"
)

const sessionEnemyYAML = `
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

const sessionPowerupYAML = `
powerups:
  - id: salve
    effect: health
    weight: 1
`

func newSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	enemyPath := filepath.Join(dir, "enemy_list.yaml")
	powerupPath := filepath.Join(dir, "powerup_list.yaml")
	if err := os.WriteFile(enemyPath, []byte(sessionEnemyYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(powerupPath, []byte(sessionPowerupYAML), 0o644); err != nil {
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
	return NewSession(config.Default(), &Tables{Enemies: enemies, Powerups: powerups},
		rand.New(rand.NewSource(7)), zap.NewNop())
}

func TestNewSessionSpawnsPlayerAtArenaCenter(t *testing.T) {
	s := newSession(t)
	p, tf, hp := s.Player()
	if p == nil {
		t.Fatalf("no player after NewSession")
	}
	if tf.X != s.Cfg.Arena.Width/2 || tf.Y != s.Cfg.Arena.Height/2 {
		t.Fatalf("player at (%.1f, %.1f), want arena center", tf.X, tf.Y)
	}
	if hp.Current != s.Cfg.Player.MaxHealth {
		t.Fatalf("player health = %.1f, want %.1f", hp.Current, s.Cfg.Player.MaxHealth)
	}
	if kind, _ := s.World.KindOf(s.PlayerID); kind != ecs.KindPlayer {
		t.Fatalf("player entity kind = %v", kind)
	}
}

func TestResetClearsRunStateAndKeepsIDCounter(t *testing.T) {
	s := newSession(t)
	s.Ledger.Credit(42)
	s.GameOver = true
	s.ElapsedMs = 12345
	oldPlayer := s.PlayerID

	s.Reset()

	if s.Ledger.Balance() != 0 {
		t.Fatalf("ledger = %d after reset, want 0", s.Ledger.Balance())
	}
	if s.GameOver || s.ElapsedMs != 0 {
		t.Fatalf("run state not cleared: over=%v elapsed=%.0f", s.GameOver, s.ElapsedMs)
	}
	if s.PlayerID <= oldPlayer {
		t.Fatalf("player id %d not fresh after reset (old %d)", s.PlayerID, oldPlayer)
	}
	if s.World.Alive(oldPlayer) {
		t.Fatalf("old player entity survived reset")
	}
	if s.Score.Points() != 0 {
		t.Fatalf("score carried across runs: %d", s.Score.Points())
	}
}

func TestUnspentSoulsDoNotSurviveRunStart(t *testing.T) {
	s := newSession(t)
	s.Ledger.Credit(42)

	s.Reset()

	if got := s.Ledger.Balance(); got != 0 {
		t.Fatalf("ledger balance after Reset = %d, want 0", got)
	}
	s.Ledger.Credit(5)
	s.Reset()
	if got := s.Ledger.Balance(); got != 0 {
		t.Fatalf("ledger balance after second Reset = %d, want 0", got)
	}
}

func TestUpgradesApplyOnNextSpawn(t *testing.T) {
	s := newSession(t)
	s.Ledger.Credit(1000)

	if !s.BuyVitality() || !s.BuyPower() || !s.BuySwiftness() {
		t.Fatalf("purchases failed with full ledger")
	}
	s.Reset()

	p, _, hp := s.Player()
	if hp.Max != s.Cfg.Player.MaxHealth+vitalityHealthPerLevel {
		t.Fatalf("max health = %.1f, want base plus one vitality level", hp.Max)
	}
	if p.MoveSpeed != s.Cfg.Player.MoveSpeed*(1+swiftnessSpeedPerLevel) {
		t.Fatalf("move speed = %.1f not upgraded", p.MoveSpeed)
	}
	if s.ProjectileDamage != s.Cfg.Projectile.Damage*(1+powerDamagePerLevel) {
		t.Fatalf("projectile damage = %.1f not upgraded", s.ProjectileDamage)
	}
}

func TestBuyFailsWithoutSouls(t *testing.T) {
	s := newSession(t)
	if s.BuyVitality() {
		t.Fatalf("purchase succeeded with empty ledger")
	}
	if s.Upgrades.Vitality != 0 {
		t.Fatalf("level changed on failed purchase")
	}
}
