package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/raythurman2386/draugrs-descent/internal/app"
	"github.com/raythurman2386/draugrs-descent/internal/config"
	"github.com/raythurman2386/draugrs-descent/internal/core/system"
	"github.com/raythurman2386/draugrs-descent/internal/data"
	"github.com/raythurman2386/draugrs-descent/internal/run"
	"github.com/raythurman2386/draugrs-descent/internal/sim"
)

func main() {
	if err := runGame(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func runGame() error {
	// 1. Load config
	cfgPath := "config/draugrs.toml"
	if p := os.Getenv("DRAUGRS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load data tables
	enemyTable, err := data.LoadEnemyTable("data/yaml/enemy_list.yaml")
	if err != nil {
		return fmt.Errorf("load enemy table: %w", err)
	}
	powerupTable, err := data.LoadPowerupTable("data/yaml/powerup_list.yaml")
	if err != nil {
		return fmt.Errorf("load powerup table: %w", err)
	}
	log.Info("data tables loaded",
		zap.Int("enemy_templates", enemyTable.Count()),
		zap.Int("powerup_templates", powerupTable.Count()))

	// 4. Build the session and wire the frame systems
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := run.NewSession(cfg, &run.Tables{Enemies: enemyTable, Powerups: powerupTable}, rng, log)

	director := sim.NewDirector(session, log)
	sim.NewPowerupDrops(session)

	runner := system.NewRunner()
	runner.Register(sim.NewPump(session))
	runner.Register(director)
	runner.Register(sim.NewPlayerControl(session))
	runner.Register(sim.NewEnemyBehavior(session))
	runner.Register(sim.NewFireControl(session))
	runner.Register(sim.NewProjectileFlight(session))
	runner.Register(sim.NewCollisionResolver(session, log))
	runner.Register(sim.NewParticles(session))
	runner.Register(sim.NewCleanup(session))

	// 5. Hand off to the shell
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	log.Info("starting",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.Float64("arena_w", cfg.Arena.Width),
		zap.Float64("arena_h", cfg.Arena.Height))

	return ebiten.RunGame(app.New(cfg, log, session, runner, director))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
