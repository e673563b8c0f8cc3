package sim

import (
	"time"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

const killParticleCount = 12

// CollisionResolver runs all overlap rules once per frame, in a fixed order:
// enemy contact against the player, enemy projectiles against the player,
// player projectiles against enemies, then pickups. Player invincibility is
// sampled once at the start of the frame, so several enemies connecting on
// the same frame all land, and the post-hit window opens only afterwards.
type CollisionResolver struct {
	s   *run.Session
	log *zap.Logger
}

func NewCollisionResolver(s *run.Session, log *zap.Logger) *CollisionResolver {
	return &CollisionResolver{s: s, log: log}
}

func (c *CollisionResolver) Phase() system.Phase { return system.PhaseResolve }

func (c *CollisionResolver) Update(dt time.Duration) {
	s := c.s
	if s.GameOver {
		return
	}
	p, playerTf, playerHp := s.Player()
	if p == nil {
		return
	}

	wasInvincible := p.InvincibleMs > 0
	hit := false

	// Enemy contact damage, gated per enemy by its touch cooldown.
	ecs.Each2(s.Enemies, s.Transforms, func(id ecs.EntityID, en *component.Enemy, tf *component.Transform) {
		if wasInvincible || s.World.Doomed(id) {
			return
		}
		if hp, ok := s.Healths.Get(id); !ok || hp.Dead() {
			return
		}
		if !en.CooldownReady(component.AbilityTouch) || !tf.Overlaps(playerTf) {
			return
		}
		en.SetCooldown(component.AbilityTouch, s.Cfg.Combat.EnemyTouchCooldownMs)
		playerHp.Current -= en.Damage
		hit = true
		event.Emit(s.Bus, PlayerHit{Amount: en.Damage, Source: id})
	})

	// Enemy projectiles against the player. While invincible they pass
	// straight through.
	ecs.Each2(s.Projectiles, s.Transforms, func(id ecs.EntityID, pr *component.Projectile, tf *component.Transform) {
		if pr.Owner.Kind != ecs.KindEnemy || s.World.Doomed(id) {
			return
		}
		if wasInvincible || !tf.Overlaps(playerTf) {
			return
		}
		s.World.MarkForDestruction(id)
		playerHp.Current -= pr.Damage
		hit = true
		event.Emit(s.Bus, PlayerHit{Amount: pr.Damage, Source: pr.Owner.ID})
	})

	if hit {
		p.InvincibleMs = s.Cfg.Player.InvincibilityMs
		if playerHp.Dead() {
			c.endRun()
		}
	}

	// Player projectiles against enemies. Each projectile spends itself on
	// the first living enemy it overlaps; crit is rolled per hit.
	ecs.Each2(s.Projectiles, s.Transforms, func(id ecs.EntityID, pr *component.Projectile, tf *component.Transform) {
		if pr.Owner.Kind != ecs.KindPlayer || s.World.Doomed(id) {
			return
		}
		target, targetHp := c.firstOverlap(tf)
		if target.IsZero() {
			return
		}
		s.World.MarkForDestruction(id)

		dmg := pr.Damage
		crit := s.Rng.Float64() < p.CritChance
		if crit {
			dmg *= p.CritMultiplier
		}
		targetHp.Current -= dmg
		event.Emit(s.Bus, DamageApplied{Target: target, Amount: dmg, Crit: crit})
		if targetHp.Dead() {
			c.killEnemy(target)
		}
	})

	// Pickups.
	ecs.Each2(s.Powerups, s.Transforms, func(id ecs.EntityID, pw *component.Powerup, tf *component.Transform) {
		if s.World.Doomed(id) || !tf.Overlaps(playerTf) {
			return
		}
		s.World.MarkForDestruction(id)
		c.applyPowerup(pw, p, playerHp)
		s.Score.AddPowerup()
		event.Emit(s.Bus, PowerupCollected{Effect: pw.Effect})
	})
}

// firstOverlap returns a living, not yet doomed enemy overlapping the box.
// Ties go to the lowest entity ID so resolution order is deterministic.
func (c *CollisionResolver) firstOverlap(box *component.Transform) (ecs.EntityID, *component.Health) {
	s := c.s
	var (
		best   ecs.EntityID
		bestHp *component.Health
	)
	ecs.Each2(s.Enemies, s.Transforms, func(id ecs.EntityID, _ *component.Enemy, tf *component.Transform) {
		if s.World.Doomed(id) || !tf.Overlaps(box) {
			return
		}
		hp, ok := s.Healths.Get(id)
		if !ok || hp.Dead() {
			return
		}
		if best.IsZero() || id < best {
			best = id
			bestHp = hp
		}
	})
	return best, bestHp
}

// killEnemy retires one enemy exactly once: destruction, score, the soul
// roll and the kill event all hang off the health transition through zero.
func (c *CollisionResolver) killEnemy(id ecs.EntityID) {
	s := c.s
	s.World.MarkForDestruction(id)
	s.Score.AddKill()

	en, _ := s.Enemies.Get(id)
	tf, _ := s.Transforms.Get(id)
	look, _ := s.Renderables.Get(id)

	souls := s.Cfg.Souls
	if s.Rng.Float64() < souls.DropChance {
		amount := souls.MinDrop + s.Rng.Intn(souls.MaxDrop-souls.MinDrop+1)
		s.Ledger.Credit(amount)
		event.Emit(s.Bus, SoulsDropped{Amount: amount})
	}

	ev := EnemyKilled{ID: id}
	if en != nil {
		ev.IsBoss = en.IsBoss
	}
	if tf != nil {
		ev.X, ev.Y = tf.X, tf.Y
		req := ParticlesRequested{X: tf.X, Y: tf.Y, Count: killParticleCount, R: 230, G: 230, B: 230, A: 255}
		if look != nil {
			req.R, req.G, req.B, req.A = look.R, look.G, look.B, look.A
		}
		event.Emit(s.Bus, req)
	}
	event.Emit(s.Bus, ev)

	if en != nil {
		c.log.Debug("enemy killed",
			zap.Uint64("id", uint64(id)),
			zap.String("template", en.TemplateID),
			zap.Bool("boss", en.IsBoss))
	}
}

func (c *CollisionResolver) applyPowerup(pw *component.Powerup, p *component.Player, hp *component.Health) {
	cfg := c.s.Cfg.Powerups
	switch pw.Effect {
	case component.PowerupHealth:
		hp.Current += cfg.HealthRestore
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	case component.PowerupShield:
		if cfg.ShieldDurationMs > p.InvincibleMs {
			p.InvincibleMs = cfg.ShieldDurationMs
		}
	case component.PowerupWeaponBoost:
		p.BoostMs = cfg.WeaponBoostDurationMs
		p.ShotCooldownMs = p.BaseShotCooldownMs * cfg.WeaponBoostFactor
	}
}

func (c *CollisionResolver) endRun() {
	s := c.s
	s.GameOver = true
	event.Emit(s.Bus, PlayerDied{})
	c.log.Info("run over",
		zap.Int("score", s.Score.Points()),
		zap.Float64("survived_sec", s.ElapsedMs/1000),
		zap.Int("souls", s.Ledger.Balance()))
}
