package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/systems"
)

// TerrainRenderer draws the floor grid and the cat wall around it.
type TerrainRenderer struct {
	tex         *Textures
	wall        texturedCube
	initialized bool
}

// NewTerrainRenderer creates a new terrain renderer.
func NewTerrainRenderer(tex *Textures) *TerrainRenderer {
	return &TerrainRenderer{tex: tex}
}

// Init builds the wall model (must be called after raylib window is created).
func (r *TerrainRenderer) Init() {
	if r.initialized {
		return
	}
	r.wall = newTexturedCube(r.tex.Cat)
	r.initialized = true
}

// Draw renders the terrain. Must be called inside BeginMode3D.
func (r *TerrainRenderer) Draw(t *systems.Terrain) {
	if !r.initialized {
		r.Init()
	}

	for _, line := range t.Grid {
		c := t.GridColors[1]
		if line.Axis {
			c = t.GridColors[0]
		}
		rl.DrawLine3D(vec3(line.From), vec3(line.To), c)
	}

	// The wall is seen from inside.
	rl.DisableBackfaceCulling()
	r.wall.draw(t.WallPos, t.WallDim, t.WallColor)
	rl.EnableBackfaceCulling()
}

// Unload releases GPU resources.
func (r *TerrainRenderer) Unload() {
	if r.initialized {
		r.wall.unload()
		r.initialized = false
	}
}
