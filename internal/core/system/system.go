package system

import "time"

// Phase defines execution ordering within a single frame. The order is a
// hard guarantee: spawns land before movement, movement before targeting,
// targeting before collision resolution, and the destroy sweep runs last, so
// a freshly spawned enemy is never hit by a projectile aimed before it
// existed and a removed enemy is never processed twice in one frame.
type Phase int

const (
	PhaseEvents   Phase = iota // 0: swap + dispatch last frame's events
	PhaseDirector              // 1: wave state machine, spawn scheduling
	PhaseBehavior              // 2: player/enemy movement, projectile flight
	PhaseCombat                // 3: targeting + fire control
	PhaseResolve               // 4: collision resolution, damage, drops
	PhaseCleanup               // 5: destroy queued entities, expire particles
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
