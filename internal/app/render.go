package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/raythurman2386/draugrs-descent/internal/component"
	"github.com/raythurman2386/draugrs-descent/internal/core/ecs"
)

var backgroundColor = color.RGBA{18, 16, 24, 255}

// drawKindOrder fixes the paint layering, back to front.
var drawKindOrder = []ecs.Kind{
	ecs.KindPowerup,
	ecs.KindEnemy,
	ecs.KindPlayer,
	ecs.KindProjectile,
	ecs.KindParticle,
}

// drawWorld paints every renderable entity as a flat rect through a camera
// that follows the player and clamps at the arena edges.
func (a *App) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	camX, camY := a.camera()

	s := a.session
	for _, kind := range drawKindOrder {
		ecs.Each2(s.Renderables, s.Transforms, func(id ecs.EntityID, look *component.Renderable, tf *component.Transform) {
			if k, ok := s.World.KindOf(id); !ok || k != kind {
				return
			}
			vector.DrawFilledRect(screen,
				float32(tf.X-tf.W/2-camX), float32(tf.Y-tf.H/2-camY),
				float32(tf.W), float32(tf.H),
				color.RGBA{look.R, look.G, look.B, look.A}, false)
		})
	}
}

func (a *App) camera() (float64, float64) {
	arena := a.cfg.Arena
	screenW := float64(a.cfg.Display.Width)
	screenH := float64(a.cfg.Display.Height)

	cx, cy := arena.Width/2, arena.Height/2
	if _, tf, _ := a.session.Player(); tf != nil {
		cx, cy = tf.X, tf.Y
	}
	camX := clampF(cx-screenW/2, 0, maxF(arena.Width-screenW, 0))
	camY := clampF(cy-screenH/2, 0, maxF(arena.Height-screenH, 0))
	return camX, camY
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
