package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

// texturedCube is a unit cube model scaled per draw.
type texturedCube struct {
	model rl.Model
}

func newTexturedCube(tex rl.Texture2D) texturedCube {
	model := rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, tex)
	return texturedCube{model: model}
}

// draw renders the cube centered on center with the given dimensions.
func (c texturedCube) draw(center, dim r3.Vec, tint color.RGBA) {
	rl.DrawModelEx(c.model, vec3(center), rl.NewVector3(0, 1, 0), 0, vec3(dim), tint)
}

// unload frees the mesh. The texture is owned by Textures.
func (c texturedCube) unload() {
	rl.UnloadModel(c.model)
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
