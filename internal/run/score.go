package run

import "github.com/raythurman2386/draugrs-descent/internal/config"

// Score accumulates run points through a survival-time multiplier ladder.
// The multiplier steps up at a fixed interval and applies to every point
// source, kills and pickups included.
type Score struct {
	cfg config.ScoreConfig

	points      float64
	multiplier  float64
	sinceBumpMs float64
}

func NewScore(cfg config.ScoreConfig) *Score {
	return &Score{cfg: cfg, multiplier: 1}
}

// Tick advances survival scoring: passive points accrue and the multiplier
// climbs one increment per interval until the cap.
func (s *Score) Tick(dtMs float64) {
	s.points += float64(s.cfg.PointsPerSecond) * (dtMs / 1000) * s.multiplier
	s.sinceBumpMs += dtMs
	for s.sinceBumpMs >= s.cfg.MultiplierIntervalMs && s.multiplier < s.cfg.MaxMultiplier {
		s.sinceBumpMs -= s.cfg.MultiplierIntervalMs
		s.multiplier += s.cfg.MultiplierIncrement
		if s.multiplier > s.cfg.MaxMultiplier {
			s.multiplier = s.cfg.MaxMultiplier
		}
	}
}

// AddKill credits a kill through the current multiplier.
func (s *Score) AddKill() {
	s.points += float64(s.cfg.KillPoints) * s.multiplier
}

// AddPowerup credits a pickup through the current multiplier.
func (s *Score) AddPowerup() {
	s.points += float64(s.cfg.PowerupPoints) * s.multiplier
}

func (s *Score) Points() int         { return int(s.points) }
func (s *Score) Multiplier() float64 { return s.multiplier }
