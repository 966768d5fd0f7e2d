// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/system"
)

const (
	barWidth  = 220
	barHeight = 14
	barMargin = 16
	barGap    = 6
)

// HUD — панели ресурсов игрока и индикатор волны.
type HUD struct {
	game *app.Game
	face font.Face
}

func NewHUD(game *app.Game) *HUD {
	return &HUD{game: game, face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	pl := h.game.World.Player
	pr := h.game.Progress()

	y := float32(barMargin)
	h.drawBar(screen, y, float32(pl.Health/pl.MaxHealth), config.HealthBarColor)
	text.Draw(screen, fmt.Sprintf("HP %0.f/%0.f", pl.Health, pl.MaxHealth), h.face, barMargin+barWidth+8, int(y)+11, config.TextLightColor)

	y += barHeight + barGap
	h.drawBar(screen, y, float32(pl.Stamina/pl.MaxStamina), config.StaminaBarColor)

	y += barHeight + barGap
	h.drawBar(screen, y, float32(pr.XP)/float32(pr.XPRequired), config.XPBarColor)
	text.Draw(screen, fmt.Sprintf("LVL %d  %d/%d XP", pr.Level, pr.XP, pr.XPRequired), h.face, barMargin+barWidth+8, int(y)+11, config.TextLightColor)

	y += barHeight + barGap
	text.Draw(screen, fmt.Sprintf("Bombs: %d/%d", pl.Bombs, pl.MaxBombs), h.face, barMargin, int(y)+12, config.TextLightColor)

	h.drawWaveIndicator(screen)
}

func (h *HUD) drawBar(screen *ebiten.Image, y float32, frac float32, c color.RGBA) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, barMargin, y, barWidth, barHeight, config.BarBackColor, false)
	vector.DrawFilledRect(screen, barMargin, y, barWidth*frac, barHeight, c, false)
}

func (h *HUD) drawWaveIndicator(screen *ebiten.Image) {
	waves := h.game.Waves()
	var label string
	if waves.Phase() == system.WaveRest {
		if waves.Wave() == 0 {
			label = fmt.Sprintf("First wave in %0.1f", waves.RestRemaining())
		} else {
			label = fmt.Sprintf("Wave %d cleared, next in %0.1f", waves.Wave(), waves.RestRemaining())
		}
	} else {
		label = fmt.Sprintf("Wave %d: %d left to spawn, %d alive",
			waves.Wave(), waves.QuotaRemaining(), len(h.game.World.Enemies))
	}
	x := config.ScreenWidth/2 - len(label)*7/2
	text.Draw(screen, label, h.face, x, barMargin+12, config.TextLightColor)
}
