package component

import "fmt"

// PowerupEffect is the closed set of pickup effects.
type PowerupEffect uint8

const (
	PowerupHealth PowerupEffect = iota
	PowerupShield
	PowerupWeaponBoost
)

func (e PowerupEffect) String() string {
	switch e {
	case PowerupHealth:
		return "health"
	case PowerupShield:
		return "shield"
	case PowerupWeaponBoost:
		return "weapon_boost"
	default:
		return fmt.Sprintf("effect(%d)", e)
	}
}

func ParsePowerupEffect(s string) (PowerupEffect, error) {
	switch s {
	case "health":
		return PowerupHealth, nil
	case "shield":
		return PowerupShield, nil
	case "weapon_boost":
		return PowerupWeaponBoost, nil
	default:
		return 0, fmt.Errorf("unknown powerup effect %q", s)
	}
}

// Powerup waits on the ground until the player walks over it.
type Powerup struct {
	TemplateID string
	Effect     PowerupEffect
}
