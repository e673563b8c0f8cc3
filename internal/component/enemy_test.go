package component

import "testing"

func TestCooldownsTickAndSaturate(t *testing.T) {
	e := &Enemy{}
	if !e.CooldownReady(AbilityTouch) {
		t.Fatalf("fresh enemy has armed cooldowns")
	}

	e.SetCooldown(AbilityTouch, 500)
	if e.CooldownReady(AbilityTouch) {
		t.Fatalf("cooldown ready immediately after arming")
	}

	e.TickCooldowns(300)
	if e.CooldownReady(AbilityTouch) {
		t.Fatalf("cooldown ready after 300 of 500 ms")
	}

	// A huge delta clamps at zero rather than wrapping.
	e.TickCooldowns(1e12)
	if !e.CooldownReady(AbilityTouch) {
		t.Fatalf("cooldown not ready after expiry")
	}
	if e.Cooldowns[AbilityTouch] != 0 {
		t.Fatalf("cooldown went negative: %f", e.Cooldowns[AbilityTouch])
	}
}

func TestParseBehavior(t *testing.T) {
	for _, s := range []string{"basic", "ranged", "charger"} {
		b, err := ParseBehavior(s)
		if err != nil {
			t.Fatalf("ParseBehavior(%q): %v", s, err)
		}
		if b.String() != s {
			t.Fatalf("round trip %q -> %q", s, b.String())
		}
	}
	if _, err := ParseBehavior("swarm"); err == nil {
		t.Fatalf("unknown behavior accepted")
	}
}
