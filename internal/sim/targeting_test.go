package sim

import (
	"testing"
	"time"
)

func TestAcquireTargetPicksNearest(t *testing.T) {
	s := newTestSession(t, nil)
	_, playerTf, _ := s.Player()

	far := addEnemyAt(s, playerTf.X+200, playerTf.Y, 30, 10)
	near := addEnemyAt(s, playerTf.X+100, playerTf.Y, 30, 10)

	got, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250)
	if !ok || got != near {
		t.Fatalf("target = %d ok=%v, want nearest %d (far=%d)", got, ok, near, far)
	}
}

func TestAcquireTargetTieBreaksToLowestID(t *testing.T) {
	s := newTestSession(t, nil)
	_, playerTf, _ := s.Player()

	first := addEnemyAt(s, playerTf.X+120, playerTf.Y, 30, 10)
	addEnemyAt(s, playerTf.X-120, playerTf.Y, 30, 10)

	got, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250)
	if !ok || got != first {
		t.Fatalf("tie broke to %d, want lowest id %d", got, first)
	}
}

func TestAcquireTargetIgnoresOutOfRangeAndDead(t *testing.T) {
	s := newTestSession(t, nil)
	_, playerTf, _ := s.Player()

	if _, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250); ok {
		t.Fatalf("acquired target in empty arena")
	}

	addEnemyAt(s, playerTf.X+400, playerTf.Y, 30, 10)
	if _, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250); ok {
		t.Fatalf("acquired target beyond range")
	}

	dead := addEnemyAt(s, playerTf.X+100, playerTf.Y, 30, 10)
	hp, _ := s.Healths.Get(dead)
	hp.Current = 0
	if _, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250); ok {
		t.Fatalf("acquired dead target")
	}

	doomed := addEnemyAt(s, playerTf.X+110, playerTf.Y, 30, 10)
	s.World.MarkForDestruction(doomed)
	if _, ok := AcquireTarget(s, playerTf.X, playerTf.Y, 250); ok {
		t.Fatalf("acquired doomed target")
	}
}

func TestFireControlHoldsCooldownWithoutTarget(t *testing.T) {
	s := newTestSession(t, nil)
	fire := NewFireControl(s)

	fire.Update(16 * time.Millisecond)
	if s.Projectiles.Len() != 0 {
		t.Fatalf("projectile fired with no target")
	}
	p, _, _ := s.Player()
	if !p.CanShoot() {
		t.Fatalf("cooldown consumed without a shot")
	}
}

func TestFireControlShootsAndConsumesCooldown(t *testing.T) {
	s := newTestSession(t, nil)
	fire := NewFireControl(s)
	_, playerTf, _ := s.Player()
	addEnemyAt(s, playerTf.X+100, playerTf.Y, 30, 10)

	fire.Update(16 * time.Millisecond)
	if s.Projectiles.Len() != 1 {
		t.Fatalf("projectiles = %d, want 1", s.Projectiles.Len())
	}
	p, _, _ := s.Player()
	if p.CanShoot() {
		t.Fatalf("cooldown not consumed after shot")
	}

	// Still cooling down: no second shot.
	fire.Update(16 * time.Millisecond)
	if s.Projectiles.Len() != 1 {
		t.Fatalf("fired during cooldown")
	}
}
