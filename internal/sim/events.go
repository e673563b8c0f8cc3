package sim

import (
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// Events published on the session bus. Emitted during one frame, dispatched
// at the start of the next; handlers must tolerate the referenced entities
// being gone by then.

type WaveStarted struct {
	Wave       int
	IsBoss     bool
	EnemyCount int
}

type WaveCleared struct {
	Wave int
}

type EnemySpawned struct {
	ID     ecs.EntityID
	Wave   int
	IsBoss bool
}

type EnemyKilled struct {
	ID     ecs.EntityID
	X, Y   float64
	IsBoss bool
}

type DamageApplied struct {
	Target ecs.EntityID
	Amount float64
	Crit   bool
}

type ProjectileFired struct {
	Owner ecs.Ref
}

type PlayerHit struct {
	Amount float64
	Source ecs.EntityID
}

type PlayerDied struct{}

type SoulsDropped struct {
	Amount int
}

type PowerupSpawned struct {
	ID         ecs.EntityID
	TemplateID string
}

type PowerupCollected struct {
	Effect component.PowerupEffect
}

type ParticlesRequested struct {
	X, Y       float64
	Count      int
	R, G, B, A uint8
}

// Pump opens each frame: it flips the event buffers so last frame's emissions
// become visible, dispatches them, and advances the run clock and survival
// score. It must be the first system in the frame.
type Pump struct {
	s *run.Session
}

func NewPump(s *run.Session) *Pump { return &Pump{s: s} }

func (p *Pump) Phase() system.Phase { return system.PhaseEvents }

func (p *Pump) Update(dt time.Duration) {
	p.s.Bus.SwapBuffers()
	p.s.Bus.DispatchAll()
	if p.s.GameOver {
		return
	}
	dtMs := float64(dt) / float64(time.Millisecond)
	p.s.ElapsedMs += dtMs
	p.s.Score.Tick(dtMs)
}
