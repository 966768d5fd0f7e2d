// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

const (
	cardWidth  = 300
	cardHeight = 120
	cardGap    = 24
)

// UpgradePanel — экран выбора улучшения при новом уровне.
// Выбор цифрами 1..3 или кликом по карточке.
type UpgradePanel struct {
	choices []defs.UpgradeDefinition
	face    font.Face
}

func NewUpgradePanel(choices []defs.UpgradeDefinition) *UpgradePanel {
	return &UpgradePanel{choices: choices, face: basicfont.Face7x13}
}

// Pick возвращает выбранное улучшение, если игрок определился.
func (p *UpgradePanel) Pick() (defs.UpgradeDefinition, bool) {
	keys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for i, key := range keys {
		if i < len(p.choices) && inpututil.IsKeyJustPressed(key) {
			return p.choices[i], true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i := range p.choices {
			if p.cardRect(i).Min.X <= mx && mx < p.cardRect(i).Max.X &&
				p.cardRect(i).Min.Y <= my && my < p.cardRect(i).Max.Y {
				return p.choices[i], true
			}
		}
	}
	return defs.UpgradeDefinition{}, false
}

func (p *UpgradePanel) cardRect(i int) image.Rectangle {
	total := len(p.choices)*cardWidth + (len(p.choices)-1)*cardGap
	x0 := (config.ScreenWidth-total)/2 + i*(cardWidth+cardGap)
	y0 := (config.ScreenHeight - cardHeight) / 2
	return image.Rect(x0, y0, x0+cardWidth, y0+cardHeight)
}

func (p *UpgradePanel) Draw(screen *ebiten.Image) {
	title := "LEVEL UP! Choose an upgrade"
	text.Draw(screen, title, p.face, (config.ScreenWidth-len(title)*7)/2, config.ScreenHeight/2-cardHeight, config.TextLightColor)

	for i, choice := range p.choices {
		r := p.cardRect(i)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), cardWidth, cardHeight, config.PanelColor, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), cardWidth, cardHeight, 2, config.TextLightColor, false)

		text.Draw(screen, fmt.Sprintf("[%d] %s", i+1, choice.Name), p.face, r.Min.X+12, r.Min.Y+24, config.TextLightColor)
		text.Draw(screen, choice.Description, p.face, r.Min.X+12, r.Min.Y+48, config.TextLightColor)
	}
}
