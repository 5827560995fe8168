// internal/ui/button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-siege/internal/config"
)

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, W, H    float32
	Text          string
	Disabled      bool
	LastClickTime time.Time
	font          font.Face
}

func NewButton(x, y, w, h float32, label string, face font.Face) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Text: label, font: face}
}

// Contains reports whether the point is inside the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// TryClick registers a click if the point hits the button and the debounce
// window has passed.
func (b *Button) TryClick(x, y int) bool {
	if b.Disabled || !b.Contains(x, y) {
		return false
	}
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.Disabled {
		bg = color.RGBA{60, 60, 70, 180}
	} else if mx, my := ebiten.CursorPosition(); b.Contains(mx, my) {
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)

	bounds := text.BoundString(b.font, b.Text)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.font, tx, ty, config.TextLightColor)
}
