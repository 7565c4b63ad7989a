package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	pausePanelWidth  = 420
	pausePanelHeight = 190
)

// PausePanel is the settings panel shown while the game is paused.
type PausePanel struct {
	renderer *Renderer

	// Look sensitivity bounds for the slider.
	MinLookSpeed float64
	MaxLookSpeed float64
}

// NewPausePanel creates a pause panel whose slider spans [0.25, 4] times
// the default look speed.
func NewPausePanel(defaultLookSpeed float64) *PausePanel {
	return &PausePanel{
		renderer:     NewRenderer(),
		MinLookSpeed: defaultLookSpeed / 4,
		MaxLookSpeed: defaultLookSpeed * 4,
	}
}

// Draw renders the panel centered on screen, applying slider changes to
// lookSpeed. It returns true when the resume button was clicked.
func (p *PausePanel) Draw(screenWidth, screenHeight int32, lookSpeed *float64) (resume bool) {
	th := p.renderer.Theme
	x := (screenWidth - pausePanelWidth) / 2
	y := (screenHeight - pausePanelHeight) / 2

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.Color{A: 120})
	p.renderer.DrawPanel(x, y, pausePanelWidth, pausePanelHeight)

	cx := x + th.Padding
	cy := p.renderer.DrawSectionHeader(cx, y+th.Padding, "Paused")
	cy = p.renderer.DrawLabelValue(cx, cy, "Look speed", fmt.Sprintf("%.4f", *lookSpeed))

	width := float32(pausePanelWidth - 2*th.Padding)
	value := gui.SliderBar(
		rl.Rectangle{X: float32(cx), Y: float32(cy), Width: width, Height: 20},
		"slow", "fast",
		float32(*lookSpeed), float32(p.MinLookSpeed), float32(p.MaxLookSpeed),
	)
	*lookSpeed = float64(value)

	cy += 20 + th.Padding*2
	return gui.Button(rl.Rectangle{X: float32(cx), Y: float32(cy), Width: width, Height: 36}, "Resume (P)")
}
