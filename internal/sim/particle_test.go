package sim

import (
	"testing"
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/core/event"
)

func TestParticleBurstSpawnsAndExpires(t *testing.T) {
	s := newTestSession(t, nil)
	p := NewParticles(s)

	event.Emit(s.Bus, ParticlesRequested{X: 100, Y: 100, Count: 8, R: 255, A: 255})
	s.Bus.SwapBuffers()
	s.Bus.DispatchAll()

	if s.Particles.Len() != 8 {
		t.Fatalf("particles = %d, want 8", s.Particles.Len())
	}

	// Age past the lifetime; everything gets queued and flushed away.
	p.Update(time.Duration(particleLifeMs+1) * time.Millisecond)
	s.World.FlushDestroyQueue()
	if s.Particles.Len() != 0 {
		t.Fatalf("particles = %d after lifetime, want 0", s.Particles.Len())
	}
}
