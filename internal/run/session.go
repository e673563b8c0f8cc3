package run

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
	"github.com/raythurman2386/draugrs-descent/internal/core/event"
	"github.com/raythurman2386/draugrs-descent/internal/data"
)

// Tables bundles the static data loaded at boot.
type Tables struct {
	Enemies  *data.EnemyTable
	Powerups *data.PowerupTable
}

// Session is the shared state every simulation system operates on: the
// world, its component stores, the event bus, the RNG and the run-scoped
// bookkeeping. One session lives for the whole process; Reset prepares it
// for the next run.
type Session struct {
	Cfg    *config.Config
	Tables *Tables
	Log    *zap.Logger

	World *ecs.World
	Bus   *event.Bus
	Rng   *rand.Rand

	Transforms  *ecs.Store[component.Transform]
	Velocities  *ecs.Store[component.Velocity]
	Healths     *ecs.Store[component.Health]
	Enemies     *ecs.Store[component.Enemy]
	Projectiles *ecs.Store[component.Projectile]
	Particles   *ecs.Store[component.Particle]
	Powerups    *ecs.Store[component.Powerup]
	Players     *ecs.Store[component.Player]
	Renderables *ecs.Store[component.Renderable]

	Ledger   *Ledger
	Score    *Score
	Upgrades *Upgrades

	// ProjectileDamage is the player's per-shot damage for this run, the
	// config base folded with purchased Power levels.
	ProjectileDamage float64

	PlayerID ecs.EntityID

	// InputX/InputY is the normalized movement intent for this frame,
	// written by the shell before the tick runs.
	InputX, InputY float64

	ElapsedMs float64
	GameOver  bool
}

// NewSession builds the world, registers every component store and spawns
// the player at the arena center.
func NewSession(cfg *config.Config, tables *Tables, rng *rand.Rand, log *zap.Logger) *Session {
	s := &Session{
		Cfg:    cfg,
		Tables: tables,
		Log:    log,
		World:  ecs.NewWorld(),
		Bus:    event.NewBus(),
		Rng:    rng,
		Ledger:   NewLedger(),
		Score:    NewScore(cfg.Score),
		Upgrades: &Upgrades{},

		Transforms:  ecs.NewStore[component.Transform](),
		Velocities:  ecs.NewStore[component.Velocity](),
		Healths:     ecs.NewStore[component.Health](),
		Enemies:     ecs.NewStore[component.Enemy](),
		Projectiles: ecs.NewStore[component.Projectile](),
		Particles:   ecs.NewStore[component.Particle](),
		Powerups:    ecs.NewStore[component.Powerup](),
		Players:     ecs.NewStore[component.Player](),
		Renderables: ecs.NewStore[component.Renderable](),
	}
	for _, store := range []ecs.Removable{
		s.Transforms, s.Velocities, s.Healths, s.Enemies, s.Projectiles,
		s.Particles, s.Powerups, s.Players, s.Renderables,
	} {
		s.World.Registry().Register(store)
	}
	s.spawnPlayer()
	return s
}

func (s *Session) spawnPlayer() {
	cfg := s.Cfg
	id := s.World.Create(ecs.KindPlayer)
	s.PlayerID = id
	s.Transforms.Set(id, &component.Transform{
		X: cfg.Arena.Width / 2,
		Y: cfg.Arena.Height / 2,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	})
	s.Healths.Set(id, &component.Health{Current: cfg.Player.MaxHealth, Max: cfg.Player.MaxHealth})
	s.Players.Set(id, &component.Player{
		MoveSpeed:          cfg.Player.MoveSpeed,
		CritChance:         cfg.Player.CritChance,
		CritMultiplier:     cfg.Player.CritMultiplier,
		ShootingRange:      cfg.Player.ShootingRange,
		BaseShotCooldownMs: cfg.Player.ShotCooldownMs,
		ShotCooldownMs:     cfg.Player.ShotCooldownMs,
		SinceShotMs:        cfg.Player.ShotCooldownMs,
	})
	s.Renderables.Set(id, &component.Renderable{R: 80, G: 200, B: 120, A: 255})
	s.applyUpgrades()
}

// Reset tears the run down and stands up a fresh one. Entity IDs keep
// counting up and purchased upgrade levels are kept; the ledger, score and
// the rest of the run state start over. Unspent souls are gone once the next
// run begins, so the upgrade screen is the place to spend them.
func (s *Session) Reset() {
	s.World.DestroyAll()
	s.Bus.Reset()
	s.Ledger = NewLedger()
	s.Score = NewScore(s.Cfg.Score)
	s.InputX, s.InputY = 0, 0
	s.ElapsedMs = 0
	s.GameOver = false
	s.spawnPlayer()
}

// Player returns the player's component state, or nils after the entity is
// gone.
func (s *Session) Player() (*component.Player, *component.Transform, *component.Health) {
	p, ok := s.Players.Get(s.PlayerID)
	if !ok {
		return nil, nil, nil
	}
	tf, _ := s.Transforms.Get(s.PlayerID)
	hp, _ := s.Healths.Get(s.PlayerID)
	return p, tf, hp
}
