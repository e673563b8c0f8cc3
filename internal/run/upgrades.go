package run

// Upgrades are the permanent soul purchases made between runs. Levels never
// reset; they are applied to the player each time a run spawns, so a
// purchase takes effect from the next run on.
type Upgrades struct {
	Vitality  int // max health
	Power     int // projectile damage
	Swiftness int // move speed
}

const (
	vitalityHealthPerLevel = 20.0
	powerDamagePerLevel    = 0.10
	swiftnessSpeedPerLevel = 0.05

	upgradeBaseCost = 10
	upgradeCostStep = 5
)

// Cost returns the soul price of buying the next level after level.
func (u *Upgrades) Cost(level int) int {
	return upgradeBaseCost + upgradeCostStep*level
}

// BuyVitality spends souls on a max-health level. Returns false when the
// ledger cannot cover it.
func (s *Session) BuyVitality() bool {
	if !s.Ledger.TrySpend(s.Upgrades.Cost(s.Upgrades.Vitality)) {
		return false
	}
	s.Upgrades.Vitality++
	return true
}

func (s *Session) BuyPower() bool {
	if !s.Ledger.TrySpend(s.Upgrades.Cost(s.Upgrades.Power)) {
		return false
	}
	s.Upgrades.Power++
	return true
}

func (s *Session) BuySwiftness() bool {
	if !s.Ledger.TrySpend(s.Upgrades.Cost(s.Upgrades.Swiftness)) {
		return false
	}
	s.Upgrades.Swiftness++
	return true
}

// applyUpgrades folds the purchased levels into the freshly spawned player.
func (s *Session) applyUpgrades() {
	p, _, hp := s.Player()
	if p == nil {
		return
	}
	u := s.Upgrades
	hp.Max = s.Cfg.Player.MaxHealth + vitalityHealthPerLevel*float64(u.Vitality)
	hp.Current = hp.Max
	p.MoveSpeed = s.Cfg.Player.MoveSpeed * (1 + swiftnessSpeedPerLevel*float64(u.Swiftness))
	s.ProjectileDamage = s.Cfg.Projectile.Damage * (1 + powerDamagePerLevel*float64(u.Power))
}
