package sim

import (
	"testing"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
)

func TestPowerupDropsSpawnAtKillSite(t *testing.T) {
	s := newTestSession(t, func(cfg *config.Config) {
		cfg.Powerups.DropChance = 1.0
	})
	NewPowerupDrops(s)

	event.Emit(s.Bus, EnemyKilled{X: 321, Y: 123})
	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()

	if s.Powerups.Len() != 1 {
		t.Fatalf("powerups = %d, want 1 with guaranteed drop", s.Powerups.Len())
	}
	s.Powerups.Each(func(id ecs.EntityID, _ *component.Powerup) {
		tf, ok := s.Transforms.Get(id)
		if !ok || tf.X != 321 || tf.Y != 123 {
			t.Fatalf("drop not at kill site: %+v", tf)
		}
	})
}

func TestPowerupDropsRespectChance(t *testing.T) {
	s := newTestSession(t, func(cfg *config.Config) {
		cfg.Powerups.DropChance = 0
	})
	NewPowerupDrops(s)

	for i := 0; i < 50; i++ {
		event.Emit(s.Bus, EnemyKilled{X: 100, Y: 100})
	}
	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()

	if s.Powerups.Len() != 0 {
		t.Fatalf("powerups dropped with zero chance: %d", s.Powerups.Len())
	}
}
