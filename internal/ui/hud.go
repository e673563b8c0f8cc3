package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Stats is the per-frame view the HUD renders. The app fills it from the
// session and director; the HUD never touches simulation state directly.
type Stats struct {
	Wave         int
	Remaining    int
	IsBoss       bool
	InTransition bool

	Health    float64
	MaxHealth float64
	Shielded  bool
	Boosted   bool

	Score      int
	Multiplier float64
	Souls      int
	ElapsedSec float64
}

const (
	hudMargin     = 12
	healthBarW    = 220
	healthBarH    = 14
	lineHeight    = 16
	overlayAlpha  = 180
	accentPadding = 2
)

var (
	hudTextColor   = color.RGBA{230, 230, 230, 255}
	hudDimColor    = color.RGBA{150, 150, 150, 255}
	healthBackOkay = color.RGBA{60, 20, 20, 255}
	healthFillOkay = color.RGBA{200, 60, 60, 255}
	shieldTint     = color.RGBA{90, 160, 240, 255}
	bossBanner     = color.RGBA{240, 120, 60, 255}
)

type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// DrawPlaying renders the in-run overlay: health, wave progress, score and
// souls.
func (h *HUD) DrawPlaying(screen *ebiten.Image, st Stats) {
	// Health bar.
	vector.DrawFilledRect(screen, hudMargin, hudMargin, healthBarW, healthBarH, healthBackOkay, false)
	if st.MaxHealth > 0 {
		frac := st.Health / st.MaxHealth
		if frac < 0 {
			frac = 0
		}
		fill := healthFillOkay
		if st.Shielded {
			fill = shieldTint
		}
		vector.DrawFilledRect(screen, hudMargin+accentPadding, hudMargin+accentPadding,
			float32(float64(healthBarW-2*accentPadding)*frac), healthBarH-2*accentPadding, fill, false)
	}
	text.Draw(screen, fmt.Sprintf("%.0f / %.0f", st.Health, st.MaxHealth),
		h.face, hudMargin+healthBarW+8, hudMargin+healthBarH-2, hudTextColor)

	y := hudMargin + healthBarH + lineHeight
	wave := fmt.Sprintf("Wave %d  -  %d left", st.Wave, st.Remaining)
	if st.InTransition {
		wave = fmt.Sprintf("Wave %d cleared", st.Wave)
	}
	text.Draw(screen, wave, h.face, hudMargin, y, hudTextColor)
	if st.IsBoss && !st.InTransition {
		text.Draw(screen, "BOSS WAVE", h.face, hudMargin, y+lineHeight, bossBanner)
		y += lineHeight
	}
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Score %d  (x%.1f)", st.Score, st.Multiplier), h.face, hudMargin, y, hudTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Souls %d", st.Souls), h.face, hudMargin, y, hudTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("%02d:%02d", int(st.ElapsedSec)/60, int(st.ElapsedSec)%60), h.face, hudMargin, y, hudDimColor)
	if st.Boosted {
		y += lineHeight
		text.Draw(screen, "WEAPON BOOST", h.face, hudMargin, y, bossBanner)
	}
}

// DrawMenu renders the title screen.
func (h *HUD) DrawMenu(screen *ebiten.Image, w, hgt int) {
	h.centered(screen, w, hgt/2-lineHeight, "DRAUGR'S DESCENT", hudTextColor)
	h.centered(screen, w, hgt/2+lineHeight, "Press Enter to descend", hudDimColor)
	h.centered(screen, w, hgt/2+2*lineHeight, "Move with WASD or arrows", hudDimColor)
}

// DrawGameOver renders the end-of-run overlay on top of the frozen world.
func (h *HUD) DrawGameOver(screen *ebiten.Image, w, hgt int, st Stats) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt),
		color.RGBA{0, 0, 0, overlayAlpha}, false)
	y := hgt/2 - 3*lineHeight
	h.centered(screen, w, y, "YOU DIED", bossBanner)
	y += 2 * lineHeight
	h.centered(screen, w, y, fmt.Sprintf("Reached wave %d", st.Wave), hudTextColor)
	y += lineHeight
	h.centered(screen, w, y, fmt.Sprintf("Score %d", st.Score), hudTextColor)
	y += lineHeight
	h.centered(screen, w, y, fmt.Sprintf("Souls banked %d", st.Souls), hudTextColor)
	y += 2 * lineHeight
	h.centered(screen, w, y, "Enter: next run    U: upgrades", hudDimColor)
}

// UpgradeRow is one purchasable line on the upgrade screen.
type UpgradeRow struct {
	Key   string
	Name  string
	Level int
	Cost  int
}

// DrawUpgrade renders the between-runs soul shop.
func (h *HUD) DrawUpgrade(screen *ebiten.Image, w, hgt int, souls int, rows []UpgradeRow) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hgt),
		color.RGBA{10, 10, 20, 255}, false)
	y := hgt/2 - (len(rows)+4)*lineHeight/2
	h.centered(screen, w, y, "SOUL FORGE", hudTextColor)
	y += lineHeight
	h.centered(screen, w, y, fmt.Sprintf("Souls %d", souls), hudDimColor)
	y += 2 * lineHeight
	for _, row := range rows {
		h.centered(screen, w, y,
			fmt.Sprintf("[%s] %s  lv %d  -  %d souls", row.Key, row.Name, row.Level, row.Cost),
			hudTextColor)
		y += lineHeight
	}
	y += lineHeight
	h.centered(screen, w, y, "Enter: next run    Esc: back", hudDimColor)
}

func (h *HUD) centered(screen *ebiten.Image, w, y int, s string, clr color.Color) {
	bounds := text.BoundString(h.face, s)
	text.Draw(screen, s, h.face, (w-bounds.Dx())/2, y, clr)
}
