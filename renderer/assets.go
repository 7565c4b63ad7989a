// Package renderer draws the world in 3D with raylib.
package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/config"
)

// AssetError reports an asset file that could not be loaded.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("loading asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// AssetPath resolves an asset name against the configured directory.
func AssetPath(cfg config.AssetsConfig, name string) string {
	return filepath.Join(cfg.Dir, name)
}

// CheckAsset fails with an *AssetError if path is not a readable file.
// raylib only logs a warning for missing files, so this runs first.
func CheckAsset(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &AssetError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &AssetError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	return nil
}

// Textures holds every texture the scene uses.
type Textures struct {
	Cat  rl.Texture2D // wall
	Frog rl.Texture2D
	Ball rl.Texture2D // generated, no file
}

// LoadTextures loads the textures from disk. Must be called after the window exists.
func LoadTextures(cfg config.AssetsConfig) (*Textures, error) {
	catPath := AssetPath(cfg, cfg.Cat)
	frogPath := AssetPath(cfg, cfg.Frog)
	for _, path := range []string{catPath, frogPath} {
		if err := CheckAsset(path); err != nil {
			return nil, err
		}
	}

	// A single red texel until balls get a proper shaded texture.
	img := rl.GenImageColor(1, 1, rl.Red)
	ball := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Textures{
		Cat:  rl.LoadTexture(catPath),
		Frog: rl.LoadTexture(frogPath),
		Ball: ball,
	}, nil
}

// Unload releases GPU resources.
func (t *Textures) Unload() {
	if t == nil {
		return
	}
	rl.UnloadTexture(t.Cat)
	rl.UnloadTexture(t.Frog)
	rl.UnloadTexture(t.Ball)
}
