package run

import (
	"testing"

	"github.com/raythurman2386/draugrs-descent/internal/config"
)

func testScoreConfig() config.ScoreConfig {
	return config.ScoreConfig{
		KillPoints:           100,
		PowerupPoints:        50,
		PointsPerSecond:      1,
		MultiplierIncrement:  0.5,
		MultiplierIntervalMs: 1000,
		MaxMultiplier:        2.0,
	}
}

func TestScoreKillUsesMultiplier(t *testing.T) {
	s := NewScore(testScoreConfig())
	s.AddKill()
	if s.Points() != 100 {
		t.Fatalf("points = %d, want 100 at x1", s.Points())
	}

	s.Tick(1000) // one interval: multiplier 1.5
	s.AddKill()
	if got := s.Points(); got != 251 {
		// 100 + 1s survival at x1..x1.5 boundary (1 point) + 150
		t.Fatalf("points = %d, want 251", got)
	}
	if s.Multiplier() != 1.5 {
		t.Fatalf("multiplier = %.2f, want 1.5", s.Multiplier())
	}
}

func TestScoreMultiplierCaps(t *testing.T) {
	s := NewScore(testScoreConfig())
	s.Tick(10_000)
	if s.Multiplier() != 2.0 {
		t.Fatalf("multiplier = %.2f, want cap 2.0", s.Multiplier())
	}
}

func TestScorePowerupPoints(t *testing.T) {
	s := NewScore(testScoreConfig())
	s.AddPowerup()
	if s.Points() != 50 {
		t.Fatalf("points = %d, want 50", s.Points())
	}
}
