package sim

import (
	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// PowerupDrops listens for kills and rolls pickup drops where the enemy
// fell. It is a pure subscriber: wiring it once at boot is all it needs.
type PowerupDrops struct {
	s *run.Session
}

func NewPowerupDrops(s *run.Session) *PowerupDrops {
	d := &PowerupDrops{s: s}
	event.Subscribe(s.Bus, func(ev EnemyKilled) {
		d.onKill(ev)
	})
	return d
}

func (d *PowerupDrops) onKill(ev EnemyKilled) {
	s := d.s
	if s.GameOver || s.Rng.Float64() >= s.Cfg.Powerups.DropChance {
		return
	}
	tmpl := s.Tables.Powerups.Roll(s.Rng)

	id := s.World.Create(ecs.KindPowerup)
	s.Transforms.Set(id, &component.Transform{X: ev.X, Y: ev.Y, W: 16, H: 16})
	s.Powerups.Set(id, &component.Powerup{TemplateID: tmpl.ID, Effect: tmpl.EffectKind()})
	s.Renderables.Set(id, &component.Renderable{
		R: tmpl.Color[0], G: tmpl.Color[1], B: tmpl.Color[2], A: tmpl.Color[3],
	})
	event.Emit(s.Bus, PowerupSpawned{ID: id, TemplateID: tmpl.ID})
}
