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

// fireProjectile spawns a projectile at (x, y) heading toward (tx, ty).
// A degenerate aim vector falls back to straight up rather than a NaN
// velocity.
func fireProjectile(s *run.Session, owner ecs.Ref, x, y, tx, ty, speed, damage, maxRange float64, look component.Renderable) ecs.EntityID {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = 0, -1, 1
	}
	id := s.World.Create(ecs.KindProjectile)
	s.Transforms.Set(id, &component.Transform{
		X: x, Y: y,
		W: s.Cfg.Projectile.Width, H: s.Cfg.Projectile.Height,
	})
	s.Velocities.Set(id, &component.Velocity{VX: dx / dist * speed, VY: dy / dist * speed})
	s.Projectiles.Set(id, &component.Projectile{Owner: owner, Damage: damage, MaxRange: maxRange})
	s.Renderables.Set(id, &look)
	event.Emit(s.Bus, ProjectileFired{Owner: owner})
	return id
}

// ProjectileFlight integrates projectile movement and retires anything that
// exhausts its range or leaves the arena. Range is accumulated from actual
// travel, so a projectile with max range 300 can never deal damage 400 units
// out.
type ProjectileFlight struct {
	s *run.Session
}

func NewProjectileFlight(s *run.Session) *ProjectileFlight {
	return &ProjectileFlight{s: s}
}

func (f *ProjectileFlight) Phase() system.Phase { return system.PhaseCombat }

func (f *ProjectileFlight) Update(dt time.Duration) {
	s := f.s
	dtSec := dt.Seconds()
	arena := s.Cfg.Arena
	ecs.Each3(s.Projectiles, s.Transforms, s.Velocities, func(id ecs.EntityID, p *component.Projectile, tf *component.Transform, v *component.Velocity) {
		if s.World.Doomed(id) {
			return
		}
		stepX, stepY := v.VX*dtSec, v.VY*dtSec
		tf.X += stepX
		tf.Y += stepY
		p.DistanceTraveled += math.Hypot(stepX, stepY)

		if p.DistanceTraveled >= p.MaxRange ||
			tf.X < 0 || tf.X > arena.Width || tf.Y < 0 || tf.Y > arena.Height {
			s.World.MarkForDestruction(id)
		}
	})
}
