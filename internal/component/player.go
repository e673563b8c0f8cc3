package component

// Player is the run-scoped player state attached to the player entity.
// Timers count down in ms and saturate at zero; the shot timer counts up and
// saturates at the cooldown, so multi-hour sessions cannot overflow either
// direction.
type Player struct {
	MoveSpeed      float64
	CritChance     float64
	CritMultiplier float64
	ShootingRange  float64

	InvincibleMs float64 // global post-hit window, any damage source

	BaseShotCooldownMs float64
	ShotCooldownMs     float64 // current (weapon boost halves it)
	SinceShotMs        float64 // time since last shot, clamped at cooldown
	BoostMs            float64 // remaining weapon boost
}

// CanShoot reports whether the shot cooldown has elapsed. The timer is only
// consumed when a shot actually fires.
func (p *Player) CanShoot() bool {
	return p.SinceShotMs >= p.ShotCooldownMs
}

// TickShotTimer advances the since-shot accumulator, saturating at the
// current cooldown value.
func (p *Player) TickShotTimer(dtMs float64) {
	p.SinceShotMs += dtMs
	if p.SinceShotMs > p.ShotCooldownMs {
		p.SinceShotMs = p.ShotCooldownMs
	}
}
