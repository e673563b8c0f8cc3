package sim

import (
	"math"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/run"
)

// AcquireTarget returns the nearest living enemy within rangePx of (x, y).
// Nothing is cached between calls: a target is acquired fresh for every shot,
// so a dead or departed enemy can never be shot at. Distance ties resolve to
// the lowest entity ID, which keeps the outcome stable across map iteration
// order.
func AcquireTarget(s *run.Session, x, y, rangePx float64) (ecs.EntityID, bool) {
	var (
		best     ecs.EntityID
		bestDist = math.Inf(1)
	)
	ecs.Each2(s.Enemies, s.Transforms, func(id ecs.EntityID, _ *component.Enemy, tf *component.Transform) {
		if s.World.Doomed(id) {
			return
		}
		if hp, ok := s.Healths.Get(id); !ok || hp.Dead() {
			return
		}
		d := math.Hypot(tf.X-x, tf.Y-y)
		if d > rangePx {
			return
		}
		if d < bestDist || (d == bestDist && id < best) {
			best = id
			bestDist = d
		}
	})
	return best, !best.IsZero()
}
