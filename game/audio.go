package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/renderer"
	"github.com/pthm-cable/treedee/sim"
)

// Audio plays sound effects for world events.
type Audio struct {
	woosh rl.Sound // throw
	croak rl.Sound // strike
}

// LoadAudio loads the sound effects. The audio device must be open.
func LoadAudio(cfg config.AssetsConfig) (*Audio, error) {
	wooshPath := renderer.AssetPath(cfg, cfg.Woosh)
	croakPath := renderer.AssetPath(cfg, cfg.Croak)
	for _, path := range []string{wooshPath, croakPath} {
		if err := renderer.CheckAsset(path); err != nil {
			return nil, err
		}
	}

	return &Audio{
		woosh: rl.LoadSound(wooshPath),
		croak: rl.LoadSound(croakPath),
	}, nil
}

// OnEvent implements sim.Listener.
func (a *Audio) OnEvent(e sim.Event) {
	switch e.Type {
	case sim.EventThrow:
		rl.PlaySound(a.woosh)
	case sim.EventStrike:
		rl.PlaySound(a.croak)
	}
}

// Unload releases the sounds.
func (a *Audio) Unload() {
	if a == nil {
		return
	}
	rl.UnloadSound(a.woosh)
	rl.UnloadSound(a.croak)
}
