package sim

import (
	"math"
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

const (
	particleLifeMs   = 450.0
	particleMinSpeed = 40.0
	particleMaxSpeed = 140.0
)

// Particles turns burst requests into short-lived cosmetic entities and ages
// them out. Nothing downstream depends on them; a dropped burst is invisible
// to gameplay.
type Particles struct {
	s *run.Session
}

func NewParticles(s *run.Session) *Particles {
	p := &Particles{s: s}
	event.Subscribe(s.Bus, func(ev ParticlesRequested) {
		p.burst(ev)
	})
	return p
}

func (p *Particles) Phase() system.Phase { return system.PhaseCleanup }

func (p *Particles) Update(dt time.Duration) {
	s := p.s
	dtMs := float64(dt) / float64(time.Millisecond)
	dtSec := dt.Seconds()
	ecs.Each3(s.Particles, s.Transforms, s.Velocities, func(id ecs.EntityID, pt *component.Particle, tf *component.Transform, v *component.Velocity) {
		pt.AgeMs += dtMs
		if pt.Expired() {
			s.World.MarkForDestruction(id)
			return
		}
		tf.X += v.VX * dtSec
		tf.Y += v.VY * dtSec
	})
}

func (p *Particles) burst(ev ParticlesRequested) {
	s := p.s
	for i := 0; i < ev.Count; i++ {
		angle := s.Rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + s.Rng.Float64()*(particleMaxSpeed-particleMinSpeed)

		id := s.World.Create(ecs.KindParticle)
		s.Transforms.Set(id, &component.Transform{X: ev.X, Y: ev.Y, W: 3, H: 3})
		s.Velocities.Set(id, &component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed})
		s.Particles.Set(id, &component.Particle{LifeMs: particleLifeMs})
		s.Renderables.Set(id, &component.Renderable{R: ev.R, G: ev.G, B: ev.B, A: ev.A})
	}
}
