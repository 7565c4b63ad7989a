package renderer

import (
	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/sim"
)

// MobRenderer draws frogs and balls as textured cubes.
type MobRenderer struct {
	tex         *Textures
	frog        texturedCube
	ball        texturedCube
	initialized bool
}

// NewMobRenderer creates a new mob renderer.
func NewMobRenderer(tex *Textures) *MobRenderer {
	return &MobRenderer{tex: tex}
}

// Init builds the cube models (must be called after raylib window is created).
func (r *MobRenderer) Init() {
	if r.initialized {
		return
	}
	r.frog = newTexturedCube(r.tex.Frog)
	r.ball = newTexturedCube(r.tex.Ball)
	r.initialized = true
}

// Draw renders every frog and ball. Must be called inside BeginMode3D.
func (r *MobRenderer) Draw(w *sim.World) {
	if !r.initialized {
		r.Init()
	}

	w.EachFrog(func(body *components.Body, frog *components.Frog) {
		r.frog.draw(body.Center(), body.Dim, frog.Tint)
	})
	w.EachBall(func(body *components.Body, _ *components.Ball) {
		r.ball.draw(body.Center(), body.Dim, components.White)
	})
}

// Unload releases GPU resources.
func (r *MobRenderer) Unload() {
	if r.initialized {
		r.frog.unload()
		r.ball.unload()
		r.initialized = false
	}
}
