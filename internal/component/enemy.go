package component

import "fmt"

// Behavior is the closed set of enemy variants. New variants are added here
// plus a template entry and a branch in the behavior system — no subclassing.
type Behavior uint8

const (
	BehaviorBasic Behavior = iota
	BehaviorRanged
	BehaviorCharger
)

func (b Behavior) String() string {
	switch b {
	case BehaviorBasic:
		return "basic"
	case BehaviorRanged:
		return "ranged"
	case BehaviorCharger:
		return "charger"
	default:
		return fmt.Sprintf("behavior(%d)", b)
	}
}

// ParseBehavior maps a template string to its variant tag.
func ParseBehavior(s string) (Behavior, error) {
	switch s {
	case "basic":
		return BehaviorBasic, nil
	case "ranged":
		return BehaviorRanged, nil
	case "charger":
		return BehaviorCharger, nil
	default:
		return 0, fmt.Errorf("unknown enemy behavior %q", s)
	}
}

// AbilityID keys an enemy's per-ability cooldown timers.
type AbilityID uint8

const (
	AbilityTouch  AbilityID = iota // contact damage against the player
	AbilityFire                    // ranged variant shots
	AbilityCharge                  // charger dash re-arm
)

// ChargePhase tracks the charger variant's dash state machine.
type ChargePhase uint8

const (
	ChargeIdle ChargePhase = iota
	ChargeWindup
	ChargeDash
	ChargeRecover
)

// Enemy is the mutable per-instance enemy state. The immutable template it
// was stamped from stays in the data table; attributes here are already
// pre-multiplied by the wave's difficulty tier.
type Enemy struct {
	TemplateID string
	Behavior   Behavior
	Wave       int // wave that issued this enemy
	IsBoss     bool

	Damage      float64
	Speed       float64
	ScalingMult float64 // compounded health multiplier applied at spawn

	// Remaining cooldown per ability in ms; ticked down each frame,
	// saturating at zero.
	Cooldowns map[AbilityID]float64

	// Ranged variant parameters (copied from the template).
	PreferredRange  float64
	FireIntervalMs  float64
	ProjectileSpeed float64
	ProjectileRange float64

	// Charger variant parameters and dash state.
	TriggerRange     float64
	WindupMs         float64
	DashDurationMs   float64
	RecoverMs        float64
	DashMultiplier   float64
	ChargeCooldownMs float64
	Charge           ChargePhase
	ChargeTimerMs    float64
	DashVX, DashVY   float64
}

// CooldownReady reports whether the ability is off cooldown.
func (e *Enemy) CooldownReady(id AbilityID) bool {
	return e.Cooldowns[id] <= 0
}

// SetCooldown arms an ability timer.
func (e *Enemy) SetCooldown(id AbilityID, ms float64) {
	if e.Cooldowns == nil {
		e.Cooldowns = make(map[AbilityID]float64, 3)
	}
	e.Cooldowns[id] = ms
}

// TickCooldowns advances all ability timers, clamping at zero so arbitrarily
// large deltas cannot wrap.
func (e *Enemy) TickCooldowns(dtMs float64) {
	for id, remaining := range e.Cooldowns {
		remaining -= dtMs
		if remaining < 0 {
			remaining = 0
		}
		e.Cooldowns[id] = remaining
	}
}
