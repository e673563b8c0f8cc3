package sim

import (
	"math"
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// PlayerControl applies movement intent and advances the player's timers.
// Diagonal input is normalized so it grants no speed advantage, and the
// position is clamped to the arena.
type PlayerControl struct {
	s *run.Session
}

func NewPlayerControl(s *run.Session) *PlayerControl {
	return &PlayerControl{s: s}
}

func (c *PlayerControl) Phase() system.Phase { return system.PhaseBehavior }

func (c *PlayerControl) Update(dt time.Duration) {
	s := c.s
	if s.GameOver {
		return
	}
	p, tf, _ := s.Player()
	if p == nil {
		return
	}
	dtMs := float64(dt) / float64(time.Millisecond)

	ix, iy := s.InputX, s.InputY
	if mag := math.Hypot(ix, iy); mag > 1 {
		ix /= mag
		iy /= mag
	}
	tf.X += ix * p.MoveSpeed * dt.Seconds()
	tf.Y += iy * p.MoveSpeed * dt.Seconds()

	arena := s.Cfg.Arena
	tf.X = clamp(tf.X, tf.W/2, arena.Width-tf.W/2)
	tf.Y = clamp(tf.Y, tf.H/2, arena.Height-tf.H/2)

	if p.InvincibleMs > 0 {
		p.InvincibleMs -= dtMs
		if p.InvincibleMs < 0 {
			p.InvincibleMs = 0
		}
	}
	if p.BoostMs > 0 {
		p.BoostMs -= dtMs
		if p.BoostMs <= 0 {
			p.BoostMs = 0
			p.ShotCooldownMs = p.BaseShotCooldownMs
		}
	}
	p.TickShotTimer(dtMs)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FireControl auto-fires at the nearest enemy in shooting range. The shot
// cooldown is only consumed when a projectile actually leaves: with no
// target in range the weapon stays ready.
type FireControl struct {
	s *run.Session
}

func NewFireControl(s *run.Session) *FireControl {
	return &FireControl{s: s}
}

func (c *FireControl) Phase() system.Phase { return system.PhaseCombat }

func (c *FireControl) Update(dt time.Duration) {
	s := c.s
	if s.GameOver {
		return
	}
	p, tf, _ := s.Player()
	if p == nil || !p.CanShoot() {
		return
	}
	target, ok := AcquireTarget(s, tf.X, tf.Y, p.ShootingRange)
	if !ok {
		return
	}
	targetTf, ok := s.Transforms.Get(target)
	if !ok {
		return
	}
	fireProjectile(s,
		ecs.Ref{ID: s.PlayerID, Kind: ecs.KindPlayer},
		tf.X, tf.Y, targetTf.X, targetTf.Y,
		s.Cfg.Projectile.Speed, s.ProjectileDamage, s.Cfg.Projectile.MaxRange,
		component.Renderable{R: 250, G: 240, B: 120, A: 255})
	p.SinceShotMs = 0
}
