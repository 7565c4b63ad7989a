package systems

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/config"
)

// TerrainSubject is the view of the player the terrain reacts to.
type TerrainSubject interface {
	Position() r3.Vec
	IsSprinting() bool
	IsVictorious() bool
}

// Terrain holds the visual state of the floor grid and the surrounding wall.
// It is recomputed every frame from the player and a random stress signal.
type Terrain struct {
	WallColor  color.RGBA
	GridColors [2]color.RGBA // axis lines, other lines

	WallPos r3.Vec
	WallDim r3.Vec

	// Grid is the floor grid, one line per metre across the terrain.
	Grid []GridLine

	bounds       Bounds
	wallSize     float64
	shakeCoeff   float64
	stretchCoeff float64
	posLimit     float64
	dimMin       float64
	dimMax       float64
}

// NewTerrain creates the terrain in its resting state.
func NewTerrain(cfg *config.Config) *Terrain {
	size := cfg.Derived.WallSize
	return &Terrain{
		WallColor:    components.White,
		GridColors:   [2]color.RGBA{components.White, components.Gray},
		WallDim:      r3.Vec{X: size, Y: size, Z: size},
		Grid:         GridLines(int(cfg.World.Width), 1),
		bounds:       NewBounds(cfg),
		wallSize:     size,
		shakeCoeff:   cfg.Terrain.ShakeCoeff,
		stretchCoeff: cfg.Terrain.StretchCoeff,
		posLimit:     cfg.Terrain.PosLimit,
		dimMin:       size * cfg.Terrain.DimMinRatio,
		dimMax:       size * cfg.Terrain.DimMaxRatio,
	}
}

// Update reacts to the player for one frame. rng supplies the shake signs.
func (t *Terrain) Update(s TerrainSubject, dt float64, rng *rand.Rand) {
	t.updateGrid(s)
	t.updateWall(s, dt, rng)
}

// Stressed reports whether the wall is shaking for a player at pos.
func (t *Terrain) Stressed(s TerrainSubject) bool {
	return t.stress(s) > 0
}

// stress returns how far past the halfway mark the player stands, normalized
// by the halfway distance, or 0 when the wall should stay calm.
func (t *Terrain) stress(s TerrainSubject) float64 {
	pos := s.Position()
	if s.IsVictorious() || t.bounds.IsOutside(pos) {
		return 0
	}

	// Halfway to the edge of the terrain.
	halfway := t.bounds.HalfWidth / 2
	beyond := LateralDistance(pos) - halfway
	if beyond <= 0 {
		return 0
	}
	return beyond / halfway
}

func (t *Terrain) updateGrid(s TerrainSubject) {
	if s.IsSprinting() {
		t.GridColors[0] = components.Yellow
	} else {
		t.GridColors[0] = components.Black
	}
}

func (t *Terrain) updateWall(s TerrainSubject, dt float64, rng *rand.Rand) {
	// A victorious player can fly, so the wall stops mattering.
	if s.IsVictorious() {
		t.WallColor = components.White
		return
	}
	if t.bounds.IsOutside(s.Position()) {
		t.WallColor = components.Red
		return
	}

	t.WallColor = components.White

	if stress := t.stress(s); stress > 0 {
		speed := stress * dt
		t.shakeWall(speed, rng)
		t.stretchWall(speed, rng)
	}
}

func (t *Terrain) shakeWall(speed float64, rng *rand.Rand) {
	coords := [...]*float64{&t.WallPos.X, &t.WallPos.Y, &t.WallPos.Z}
	for _, c := range coords {
		offset := randSign(speed, rng) * t.shakeCoeff
		*c = clamp(*c+offset, -t.posLimit, t.posLimit)
	}
}

func (t *Terrain) stretchWall(speed float64, rng *rand.Rand) {
	coords := [...]*float64{&t.WallDim.X, &t.WallDim.Y, &t.WallDim.Z}
	for _, c := range coords {
		offset := randSign(speed, rng) * t.stretchCoeff
		*c = clamp(*c+offset, t.dimMin, t.dimMax)
	}
}

// randSign returns n or -n with equal probability.
func randSign(n float64, rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return n
	}
	return -n
}

// GridLine is one floor line. Axis lines pass through the origin.
type GridLine struct {
	From, To r3.Vec
	Axis     bool
}

// GridLines lays out a square grid of slices cells on the floor, centered on
// the origin. With a spacing of 1, coordinates match grid positions.
func GridLines(slices int, spacing float64) []GridLine {
	half := slices / 2
	extent := float64(half) * spacing

	lines := make([]GridLine, 0, 2*(2*half+1))
	for i := -half; i <= half; i++ {
		at := float64(i) * spacing
		lines = append(lines,
			GridLine{From: r3.Vec{X: at, Z: -extent}, To: r3.Vec{X: at, Z: extent}, Axis: i == 0},
			GridLine{From: r3.Vec{X: -extent, Z: at}, To: r3.Vec{X: extent, Z: at}, Axis: i == 0},
		)
	}
	return lines
}
