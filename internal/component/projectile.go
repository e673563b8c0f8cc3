package component

import "github.com/raythurman2386/draugrs-descent/internal/core/ecs"

// Projectile flies in a straight line until it hits, travels MaxRange world
// units, or leaves the map. Owner decides which collision pass it joins:
// player-owned projectiles hit enemies, enemy-owned ones hit the player.
type Projectile struct {
	Owner            ecs.Ref
	Damage           float64
	DistanceTraveled float64
	MaxRange         float64
}
