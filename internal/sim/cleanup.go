package sim

import (
	"time"

	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// Cleanup flushes the destroy queue at the very end of the frame. Every
// system before it sees a stable entity set; removals only take effect here.
type Cleanup struct {
	s *run.Session
}

func NewCleanup(s *run.Session) *Cleanup { return &Cleanup{s: s} }

func (c *Cleanup) Phase() system.Phase { return system.PhaseCleanup }

func (c *Cleanup) Update(time.Duration) {
	c.s.World.FlushDestroyQueue()
}
