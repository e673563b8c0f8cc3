package component

// Particle is cosmetic only: it ages, it expires, nothing in gameplay ever
// reads it back.
type Particle struct {
	AgeMs  float64
	LifeMs float64
}

func (p *Particle) Expired() bool { return p.AgeMs >= p.LifeMs }
