// Package board is a small 2D toy: a pawn walking a checkered grid that
// wraps around at the edges, with colours that swap on demand or at random.
package board

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Layout constants, in pixels.
const (
	TileCols   = 11
	TileRows   = 7
	TileSize   = float64(TileCols * 10)
	DelimWidth = TileSize / 20

	// Step is how far the pawn moves: one tile and one delimiter.
	Step = TileSize + DelimWidth

	// DefaultSwapChance is the per-frame chance the grid swaps its tile colours.
	DefaultSwapChance = 0.01
)

// Palette.
var (
	Gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	Orange    = color.RGBA{R: 255, G: 161, A: 255}
	DarkBrown = color.RGBA{R: 76, G: 63, B: 47, A: 255}
	SkyBlue   = color.RGBA{R: 102, G: 191, B: 255, A: 255}
	Red       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// Size is the full grid size, tiles plus delimiters between them.
func Size() r2.Vec {
	return r2.Vec{
		X: TileCols*TileSize + (TileCols-1)*DelimWidth,
		Y: TileRows*TileSize + (TileRows-1)*DelimWidth,
	}
}

// Direction is a pawn step direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

// Grid holds the tile colours.
type Grid struct {
	Background color.RGBA
	Tile       color.RGBA
	TileAlt    color.RGBA
}

// NewGrid creates a grid with the default palette.
func NewGrid() Grid {
	return Grid{Background: Gray, Tile: Orange, TileAlt: DarkBrown}
}

// TileColor alternates colours in a checker pattern.
func (g *Grid) TileColor(i, j int) color.RGBA {
	if (i%2 == 0) != (j%2 == 0) {
		return g.Tile
	}
	return g.TileAlt
}

// TileOrigin returns the top-left corner of tile (i, j).
func TileOrigin(i, j int) r2.Vec {
	return r2.Vec{
		X: float64(i)*Step - 1,
		Y: float64(j)*Step - 1,
	}
}

// Invert swaps the two tile colours.
func (g *Grid) Invert() {
	g.Tile, g.TileAlt = g.TileAlt, g.Tile
}

// Pawn is the player piece.
type Pawn struct {
	Pos    r2.Vec // centre
	Color  color.RGBA
	Border color.RGBA
}

// NewPawn places a pawn in the middle of the grid.
func NewPawn() Pawn {
	return Pawn{
		Pos:    r2.Scale(0.5, Size()),
		Color:  SkyBlue,
		Border: Red,
	}
}

// Radius of the pawn disc.
func (p *Pawn) Radius() float64 { return TileSize * 7 / 20 }

// BorderWidth of the pawn ring.
func (p *Pawn) BorderWidth() float64 { return p.Radius() / 10 }

// Invert swaps fill and border colours.
func (p *Pawn) Invert() {
	p.Color, p.Border = p.Border, p.Color
}

// Step moves the pawn one tile, wrapping to the far side past an edge.
func (p *Pawn) Step(dir Direction) {
	pos := p.Pos
	switch dir {
	case Up:
		pos.Y -= Step
	case Down:
		pos.Y += Step
	case Right:
		pos.X += Step
	case Left:
		pos.X -= Step
	}

	size := Size()
	pos.X = wrap(pos.X, size.X)
	pos.Y = wrap(pos.Y, size.Y)
	p.Pos = pos
}

// wrap lands v in the centre of the first or last tile once it leaves [0, extent].
func wrap(v, extent float64) float64 {
	switch {
	case v < 0:
		return extent - TileSize/2
	case v > extent:
		return TileSize / 2
	}
	return v
}

// Board is the whole toy state.
type Board struct {
	Grid Grid
	Pawn Pawn

	SwapChance float64
	rng        *rand.Rand
}

// New creates a board. seed drives the random grid swaps.
func New(seed int64) *Board {
	return &Board{
		Grid:       NewGrid(),
		Pawn:       NewPawn(),
		SwapChance: DefaultSwapChance,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Update applies one frame: an optional step, a held pawn inversion and
// the random grid swap.
func (b *Board) Update(step *Direction, invertPawn bool) {
	if step != nil {
		b.Pawn.Step(*step)
	}
	if invertPawn {
		b.Pawn.Invert()
	}
	if b.rng.Float64() < b.SwapChance {
		b.Grid.Invert()
	}
}
