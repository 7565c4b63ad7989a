package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/player"
)

const (
	statsFontSize   = 30
	victoryFontSize = 175
)

// HUDData holds all the data needed to render the heads-up display.
type HUDData struct {
	ScreenWidth  int32
	ScreenHeight int32

	VoidDepth  float64 // [0, 1]
	ShowStats  bool
	Position   r3.Vec
	Speed      float64 // horizontal
	Victorious bool
	InVoid     bool
}

// HUDDataFor reads the display state off the player.
func HUDDataFor(p *player.Player, screenWidth, screenHeight int32) HUDData {
	return HUDData{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		VoidDepth:    p.VoidDepth(),
		ShowStats:    p.ShowingStats,
		Position:     p.Position(),
		Speed:        p.HorizontalSpeed(),
		Victorious:   p.IsVictorious(),
		InVoid:       p.IsInVoid(),
	}
}

// HUD renders the first-person overlay.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD. Must be called after the 3D pass.
func (h *HUD) Draw(data HUDData) {
	h.drawVoidShroud(data)
	if data.ShowStats {
		h.drawStats(data)
	}
	if data.Victorious {
		h.drawVictory(data)
	}
}

// drawVoidShroud darkens the screen the deeper the player falls.
func (h *HUD) drawVoidShroud(data HUDData) {
	if data.VoidDepth <= 0 {
		return
	}
	rl.DrawRectangle(0, 0, data.ScreenWidth, data.ScreenHeight, ShroudColor(data.VoidDepth))
}

func (h *HUD) drawStats(data HUDData) {
	pos, vel := StatsText(data.Position, data.Speed)
	rl.DrawText(pos, 10, 10, statsFontSize, rl.White)
	rl.DrawText(vel, 10, 45, statsFontSize, rl.White)
}

func (h *HUD) drawVictory(data HUDData) {
	// Baseline 50px from the bottom of the screen.
	y := data.ScreenHeight - 50 - victoryFontSize*3/4
	rl.DrawText("VICTORY", 60, y, victoryFontSize, VictoryColor(data.InVoid))
}

// ShroudColor is black with alpha proportional to depth.
func ShroudColor(depth float64) rl.Color {
	depth = max(0, min(1, depth))
	return rl.Color{A: uint8(depth * 255)}
}

// VictoryColor is red once the player has fallen into the void, yellow otherwise.
func VictoryColor(inVoid bool) rl.Color {
	if inVoid {
		return rl.Red
	}
	return rl.Yellow
}

// StatsText formats the stats overlay lines.
func StatsText(pos r3.Vec, speed float64) (position, velocity string) {
	position = fmt.Sprintf("Position: %.2f / %.2f / %.2f", pos.X, pos.Y, pos.Z)
	velocity = fmt.Sprintf("Velocity: %.2f m/s", speed)
	return position, velocity
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
