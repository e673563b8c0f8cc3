package ecs

// EntityID is a run-unique entity handle. IDs come from a monotonically
// increasing counter and are never reused within a run, so a lower ID always
// means an older entity (deterministic tie-breaking in targeting depends on
// this). 0 is never a valid ID.
type EntityID uint64

func (id EntityID) IsZero() bool { return id == 0 }

// Kind tags what an entity is. Stored per entity by the World so weak
// references can be resolved without probing every component store.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindProjectile
	KindParticle
	KindPowerup
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	case KindPowerup:
		return "powerup"
	default:
		return "none"
	}
}

// Ref is a weak back-reference: ID plus kind, never an ownership edge.
// Resolve it through the World; a stale Ref simply fails the Alive check.
type Ref struct {
	ID   EntityID
	Kind Kind
}

func (r Ref) IsZero() bool { return r.ID == 0 }
