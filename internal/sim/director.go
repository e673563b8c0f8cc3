package sim

import (
	"time"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/core/event"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// DirectorState names the wave lifecycle stages.
type DirectorState uint8

const (
	StateSpawning DirectorState = iota
	StateCombat
	StateTransition
)

func (s DirectorState) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateCombat:
		return "combat"
	case StateTransition:
		return "transition"
	default:
		return "unknown"
	}
}

// Director drives the wave lifecycle: it resolves the tier for each wave,
// paces spawns through the spawner, counts kills, and announces transitions.
// A wave never clears while any of its enemies remain alive.
type Director struct {
	s   *run.Session
	log *zap.Logger

	started      bool
	wave         int
	state        DirectorState
	tier         Tier
	spawned      int
	remaining    int
	transitionMs float64

	spawner *spawner
}

// DirectorSnapshot is the read-only view the HUD renders from.
type DirectorSnapshot struct {
	Wave         int
	State        DirectorState
	Remaining    int
	IsBoss       bool
	TransitionMs float64
}

func NewDirector(s *run.Session, log *zap.Logger) *Director {
	d := &Director{s: s, log: log, spawner: newSpawner(s)}
	event.Subscribe(s.Bus, func(ev EnemyKilled) {
		if d.remaining > 0 {
			d.remaining--
		}
	})
	return d
}

func (d *Director) Phase() system.Phase { return system.PhaseDirector }

func (d *Director) Update(dt time.Duration) {
	if d.s.GameOver {
		return
	}
	if !d.started {
		d.started = true
		d.startWave(1)
	}
	dtMs := float64(dt) / float64(time.Millisecond)

	switch d.state {
	case StateSpawning:
		if d.spawner.Due(dtMs) {
			isBoss := d.tier.IsBoss && d.spawned == 0
			id := d.spawner.spawn(&d.tier, isBoss)
			d.spawned++
			d.remaining++
			event.Emit(d.s.Bus, EnemySpawned{ID: id, Wave: d.wave, IsBoss: isBoss})
		}
		if d.spawned >= d.tier.EnemyCount {
			d.state = StateCombat
		}
	case StateCombat:
		if d.remaining <= 0 {
			d.clearWave()
		}
	case StateTransition:
		d.transitionMs -= dtMs
		if d.transitionMs <= 0 {
			d.startWave(d.wave + 1)
		}
	}
}

func (d *Director) startWave(n int) {
	d.wave = n
	d.tier = ScaleWave(&d.s.Cfg.Waves, n)
	d.spawned = 0
	d.remaining = 0
	d.state = StateSpawning
	d.spawner.Arm(d.tier.SpawnIntervalMs)
	event.Emit(d.s.Bus, WaveStarted{Wave: n, IsBoss: d.tier.IsBoss, EnemyCount: d.tier.EnemyCount})
	d.log.Info("wave started",
		zap.Int("wave", n),
		zap.Bool("boss", d.tier.IsBoss),
		zap.Int("enemies", d.tier.EnemyCount),
		zap.Float64("spawn_interval_ms", d.tier.SpawnIntervalMs))
}

func (d *Director) clearWave() {
	d.state = StateTransition
	d.transitionMs = d.s.Cfg.Waves.TransitionMs
	event.Emit(d.s.Bus, WaveCleared{Wave: d.wave})
	d.log.Info("wave cleared", zap.Int("wave", d.wave))
}

// Advance skips the remaining transition delay. Outside a transition it does
// nothing, so calling it repeatedly is safe.
func (d *Director) Advance() {
	if d.state != StateTransition {
		return
	}
	d.startWave(d.wave + 1)
}

// Reset returns the director to its pre-run state; the next Update starts
// wave 1 again.
func (d *Director) Reset() {
	d.started = false
	d.wave = 0
	d.state = StateSpawning
	d.spawned = 0
	d.remaining = 0
	d.transitionMs = 0
}

// Snapshot returns the current lifecycle view for the HUD.
func (d *Director) Snapshot() DirectorSnapshot {
	return DirectorSnapshot{
		Wave:         d.wave,
		State:        d.state,
		Remaining:    d.remaining,
		IsBoss:       d.tier.IsBoss,
		TransitionMs: d.transitionMs,
	}
}
