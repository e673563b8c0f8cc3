package sim

import (
	"math"
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// rangedRetreatBand is the fraction of preferred range below which a ranged
// enemy backs away instead of holding position.
const rangedRetreatBand = 0.75

// EnemyBehavior steers every living enemy toward its variant goal and
// integrates movement. Each variant reads the player's position fresh every
// frame; a dead player freezes all of them.
type EnemyBehavior struct {
	s *run.Session
}

func NewEnemyBehavior(s *run.Session) *EnemyBehavior {
	return &EnemyBehavior{s: s}
}

func (b *EnemyBehavior) Phase() system.Phase { return system.PhaseBehavior }

func (b *EnemyBehavior) Update(dt time.Duration) {
	s := b.s
	if s.GameOver {
		return
	}
	_, playerTf, _ := s.Player()
	if playerTf == nil {
		return
	}
	dtMs := float64(dt) / float64(time.Millisecond)
	dtSec := dt.Seconds()

	ecs.Each3(s.Enemies, s.Transforms, s.Velocities, func(id ecs.EntityID, en *component.Enemy, tf *component.Transform, v *component.Velocity) {
		if s.World.Doomed(id) {
			return
		}
		en.TickCooldowns(dtMs)

		dx, dy := playerTf.X-tf.X, playerTf.Y-tf.Y
		dist := math.Hypot(dx, dy)
		var nx, ny float64
		if dist > 0 {
			nx, ny = dx/dist, dy/dist
		}

		switch en.Behavior {
		case component.BehaviorRanged:
			b.steerRanged(id, en, tf, v, nx, ny, dist, playerTf)
		case component.BehaviorCharger:
			b.steerCharger(en, v, nx, ny, dist, dtMs)
		default:
			v.VX, v.VY = nx*en.Speed, ny*en.Speed
		}

		tf.X += v.VX * dtSec
		tf.Y += v.VY * dtSec
		arena := s.Cfg.Arena
		tf.X = clamp(tf.X, tf.W/2, arena.Width-tf.W/2)
		tf.Y = clamp(tf.Y, tf.H/2, arena.Height-tf.H/2)
	})
}

// steerRanged kites: approach beyond preferred range, retreat when crowded,
// hold inside the band. It fires whenever its shot can actually reach.
func (b *EnemyBehavior) steerRanged(id ecs.EntityID, en *component.Enemy, tf *component.Transform, v *component.Velocity, nx, ny, dist float64, playerTf *component.Transform) {
	switch {
	case dist > en.PreferredRange:
		v.VX, v.VY = nx*en.Speed, ny*en.Speed
	case dist < en.PreferredRange*rangedRetreatBand:
		v.VX, v.VY = -nx*en.Speed, -ny*en.Speed
	default:
		v.VX, v.VY = 0, 0
	}

	if en.CooldownReady(component.AbilityFire) && dist <= en.ProjectileRange {
		fireProjectile(b.s,
			ecs.Ref{ID: id, Kind: ecs.KindEnemy},
			tf.X, tf.Y, playerTf.X, playerTf.Y,
			en.ProjectileSpeed, en.Damage, en.ProjectileRange,
			component.Renderable{R: 240, G: 90, B: 90, A: 255})
		en.SetCooldown(component.AbilityFire, en.FireIntervalMs)
	}
}

// steerCharger runs the windup, dash, recover state machine. Aim locks at
// windup start, so a dash telegraphs and can be sidestepped.
func (b *EnemyBehavior) steerCharger(en *component.Enemy, v *component.Velocity, nx, ny, dist, dtMs float64) {
	switch en.Charge {
	case component.ChargeIdle:
		if dist < en.TriggerRange && en.CooldownReady(component.AbilityCharge) {
			en.Charge = component.ChargeWindup
			en.ChargeTimerMs = en.WindupMs
			en.DashVX = nx * en.Speed * en.DashMultiplier
			en.DashVY = ny * en.Speed * en.DashMultiplier
			v.VX, v.VY = 0, 0
			return
		}
		v.VX, v.VY = nx*en.Speed, ny*en.Speed
	case component.ChargeWindup:
		v.VX, v.VY = 0, 0
		en.ChargeTimerMs -= dtMs
		if en.ChargeTimerMs <= 0 {
			en.Charge = component.ChargeDash
			en.ChargeTimerMs = en.DashDurationMs
		}
	case component.ChargeDash:
		v.VX, v.VY = en.DashVX, en.DashVY
		en.ChargeTimerMs -= dtMs
		if en.ChargeTimerMs <= 0 {
			en.Charge = component.ChargeRecover
			en.ChargeTimerMs = en.RecoverMs
		}
	case component.ChargeRecover:
		v.VX, v.VY = 0, 0
		en.ChargeTimerMs -= dtMs
		if en.ChargeTimerMs <= 0 {
			en.Charge = component.ChargeIdle
			en.SetCooldown(component.AbilityCharge, en.ChargeCooldownMs)
		}
	}
}
