package sim

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
)

func smallWaves(cfg *config.Config) {
	cfg.Waves.BaseEnemies = 3
	cfg.Waves.IncreasePerWave = 2
	cfg.Waves.BaseSpawnIntervalMs = 100
	cfg.Waves.MinSpawnIntervalMs = 50
	cfg.Waves.TransitionMs = 200
	cfg.Waves.BossFrequency = 2
	cfg.Waves.Distribution = []config.DistributionPoint{
		{Wave: 1, Basic: 100},
	}
}

func TestDirectorSpawnsExactlyWaveCount(t *testing.T) {
	s := newTestSession(t, smallWaves)
	d := NewDirector(s, zap.NewNop())

	for i := 0; i < 20; i++ {
		d.Update(100 * time.Millisecond)
	}
	if got := s.Enemies.Len(); got != 3 {
		t.Fatalf("wave 1 spawned %d enemies, want 3", got)
	}
	s.Enemies.Each(func(_ ecs.EntityID, en *component.Enemy) {
		if en.Behavior != component.BehaviorBasic {
			t.Fatalf("enemy behavior = %v under an all-basic distribution", en.Behavior)
		}
	})
	if snap := d.Snapshot(); snap.State != StateCombat {
		t.Fatalf("state after full spawn = %v, want combat", snap.State)
	}
}

func TestDirectorNeverTransitionsWithEnemiesAlive(t *testing.T) {
	s := newTestSession(t, smallWaves)
	d := NewDirector(s, zap.NewNop())

	for i := 0; i < 5; i++ {
		d.Update(100 * time.Millisecond)
	}
	killOne := func() {
		event.Emit(s.Bus, EnemyKilled{})
		s.Bus.SwapBuffers()
		s.Bus.DispatchAll()
	}

	killOne()
	killOne()
	d.Update(16 * time.Millisecond)
	if snap := d.Snapshot(); snap.State != StateCombat || snap.Remaining != 1 {
		t.Fatalf("state = %v remaining = %d, want combat with 1 left", snap.State, snap.Remaining)
	}

	killOne()
	d.Update(16 * time.Millisecond)
	if snap := d.Snapshot(); snap.State != StateTransition {
		t.Fatalf("state after last kill = %v, want transition", snap.State)
	}
}

func TestDirectorStartsNextWaveAfterTransition(t *testing.T) {
	s := newTestSession(t, smallWaves)
	d := NewDirector(s, zap.NewNop())

	var started []WaveStarted
	event.Subscribe(s.Bus, func(ev WaveStarted) { started = append(started, ev) })

	for i := 0; i < 5; i++ {
		d.Update(100 * time.Millisecond)
	}
	for i := 0; i < 3; i++ {
		event.Emit(s.Bus, EnemyKilled{})
	}
	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()
	d.Update(16 * time.Millisecond) // enters transition
	d.Update(250 * time.Millisecond)

	snap := d.Snapshot()
	if snap.Wave != 2 || snap.State != StateSpawning {
		t.Fatalf("after transition: wave %d state %v, want wave 2 spawning", snap.Wave, snap.State)
	}

	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()
	if len(started) != 2 {
		t.Fatalf("WaveStarted events = %d, want 2", len(started))
	}
	if started[1].Wave != 2 || !started[1].IsBoss {
		t.Fatalf("second wave event = %+v, want boss wave 2", started[1])
	}
	if started[1].EnemyCount != 5 {
		t.Fatalf("wave 2 count = %d, want 5", started[1].EnemyCount)
	}
}

func TestDirectorBossSpawnsFirstOnBossWave(t *testing.T) {
	s := newTestSession(t, func(cfg *config.Config) {
		smallWaves(cfg)
		cfg.Waves.BossFrequency = 1 // every wave a boss wave
	})
	d := NewDirector(s, zap.NewNop())

	d.Update(100 * time.Millisecond)
	d.Update(100 * time.Millisecond)
	d.Update(100 * time.Millisecond)
	count, bossCount := 0, 0
	s.Enemies.Each(func(_ ecs.EntityID, en *component.Enemy) {
		count++
		if en.IsBoss {
			bossCount++
		}
	})
	if count != 3 {
		t.Fatalf("spawned %d, want 3", count)
	}
	if bossCount != 1 {
		t.Fatalf("boss count = %d, want exactly 1", bossCount)
	}
}

func TestDirectorAdvanceSkipsTransition(t *testing.T) {
	s := newTestSession(t, smallWaves)
	d := NewDirector(s, zap.NewNop())

	d.Update(100 * time.Millisecond)
	d.Advance() // not in transition: no-op
	if snap := d.Snapshot(); snap.Wave != 1 {
		t.Fatalf("Advance outside transition changed wave to %d", snap.Wave)
	}

	for i := 0; i < 5; i++ {
		d.Update(100 * time.Millisecond)
	}
	for i := 0; i < 3; i++ {
		event.Emit(s.Bus, EnemyKilled{})
	}
	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()
	d.Update(16 * time.Millisecond)

	d.Advance()
	if snap := d.Snapshot(); snap.Wave != 2 || snap.State != StateSpawning {
		t.Fatalf("Advance did not start wave 2: %+v", snap)
	}
	d.Advance() // idempotent once out of transition
	if snap := d.Snapshot(); snap.Wave != 2 {
		t.Fatalf("second Advance changed wave to %d", snap.Wave)
	}
}
