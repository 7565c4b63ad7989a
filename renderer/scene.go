package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/camera"
	"github.com/pthm-cable/treedee/sim"
)

// Scene draws the whole 3D view from the player's eye.
type Scene struct {
	terrain *TerrainRenderer
	mobs    *MobRenderer
}

// NewScene creates the scene renderers over loaded textures.
func NewScene(tex *Textures) *Scene {
	return &Scene{
		terrain: NewTerrainRenderer(tex),
		mobs:    NewMobRenderer(tex),
	}
}

// Draw clears the frame and renders the world. Must be called inside BeginDrawing.
func (s *Scene) Draw(w *sim.World) {
	rl.ClearBackground(rl.DarkGray)

	rl.BeginMode3D(Camera3D(w.Player.Cam))
	s.terrain.Draw(w.Terrain)
	s.mobs.Draw(w)
	rl.EndMode3D()
}

// Unload releases GPU resources.
func (s *Scene) Unload() {
	s.terrain.Unload()
	s.mobs.Unload()
}

// Camera3D converts the player camera to a raylib perspective camera.
func Camera3D(c *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       float32(c.Fovy),
		Projection: rl.CameraPerspective,
	}
}
