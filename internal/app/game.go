package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/run"
	"github.com/raythurman2386/draugrs-descent/internal/sim"
	"github.com/raythurman2386/draugrs-descent/internal/ui"
)

// Scene is the shell's screen state. The simulation only runs in
// ScenePlaying; the other scenes render over a frozen or absent world.
type Scene uint8

const (
	SceneMenu Scene = iota
	ScenePlaying
	SceneGameOver
	SceneUpgrade
)

// maxFrameDelta caps the simulation step after a stall (window drag, GC
// pause) so physics and timers never see a multi-second jump.
const maxFrameDelta = 100 * time.Millisecond

// App is the ebiten shell around the simulation: it reads input, advances
// the system runner once per frame and renders the world plus HUD.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	session  *run.Session
	runner   *system.Runner
	director *sim.Director
	hud      *ui.HUD

	scene Scene
	last  time.Time
}

func New(cfg *config.Config, log *zap.Logger, session *run.Session, runner *system.Runner, director *sim.Director) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		session:  session,
		runner:   runner,
		director: director,
		hud:      ui.NewHUD(),
		scene:    SceneMenu,
		last:     time.Now(),
	}
}

func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.last)
	a.last = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	switch a.scene {
	case SceneMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.scene = ScenePlaying
		}
	case ScenePlaying:
		a.readInput()
		a.runner.Tick(dt)
		if a.session.GameOver {
			a.scene = SceneGameOver
		}
	case SceneGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			a.scene = SceneUpgrade
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.restart()
		}
	case SceneUpgrade:
		a.updateUpgrade()
	}
	return nil
}

func (a *App) updateUpgrade() {
	s := a.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.BuyVitality()
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.BuyPower()
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.BuySwiftness()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.scene = SceneGameOver
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		a.restart()
	}
}

func (a *App) restart() {
	a.session.Reset()
	a.director.Reset()
	a.scene = ScenePlaying
	a.log.Info("new run started",
		zap.Int("vitality", a.session.Upgrades.Vitality),
		zap.Int("power", a.session.Upgrades.Power),
		zap.Int("swiftness", a.session.Upgrades.Swiftness))
}

func (a *App) readInput() {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y += 1
	}
	a.session.InputX, a.session.InputY = x, y
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.cfg.Display.Width, a.cfg.Display.Height
	switch a.scene {
	case SceneMenu:
		a.hud.DrawMenu(screen, w, h)
	case ScenePlaying:
		a.drawWorld(screen)
		a.hud.DrawPlaying(screen, a.stats())
	case SceneGameOver:
		a.drawWorld(screen)
		a.hud.DrawGameOver(screen, w, h, a.stats())
	case SceneUpgrade:
		u := a.session.Upgrades
		a.hud.DrawUpgrade(screen, w, h, a.session.Ledger.Balance(), []ui.UpgradeRow{
			{Key: "1", Name: "Vitality", Level: u.Vitality, Cost: u.Cost(u.Vitality)},
			{Key: "2", Name: "Power", Level: u.Power, Cost: u.Cost(u.Power)},
			{Key: "3", Name: "Swiftness", Level: u.Swiftness, Cost: u.Cost(u.Swiftness)},
		})
	}
}

func (a *App) stats() ui.Stats {
	s := a.session
	snap := a.director.Snapshot()
	st := ui.Stats{
		Wave:         snap.Wave,
		Remaining:    snap.Remaining,
		IsBoss:       snap.IsBoss,
		InTransition: snap.State == sim.StateTransition,
		Score:        s.Score.Points(),
		Multiplier:   s.Score.Multiplier(),
		Souls:        s.Ledger.Balance(),
		ElapsedSec:   s.ElapsedMs / 1000,
	}
	if p, _, hp := s.Player(); p != nil {
		st.Health = hp.Current
		st.MaxHealth = hp.Max
		st.Shielded = p.InvincibleMs > 0
		st.Boosted = p.BoostMs > 0
	}
	return st
}

func (a *App) Layout(int, int) (int, int) {
	return a.cfg.Display.Width, a.cfg.Display.Height
}
