// Command board runs the 2D grid toy: WASD moves the pawn, holding Space
// swaps its colours.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/treedee/board"
)

var keyDirections = map[int32]board.Direction{
	rl.KeyW: board.Up,
	rl.KeyS: board.Down,
	rl.KeyD: board.Right,
	rl.KeyA: board.Left,
}

func main() {
	seed := flag.Int64("seed", 0, "RNG seed for grid swaps (0 = time-based)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	size := board.Size()
	rl.InitWindow(int32(size.X), int32(size.Y), "future gastrointestinal")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	b := board.New(*seed)
	slog.Info("starting board", "seed", *seed, "width", size.X, "height", size.Y)

	for !rl.WindowShouldClose() {
		var step *board.Direction
		if dir, ok := keyDirections[rl.GetKeyPressed()]; ok {
			step = &dir
		}
		b.Update(step, rl.IsKeyDown(rl.KeySpace))

		rl.BeginDrawing()
		rl.ClearBackground(b.Grid.Background)
		drawGrid(&b.Grid)
		drawPawn(&b.Pawn)
		rl.EndDrawing()
	}
}

func drawGrid(g *board.Grid) {
	for i := range board.TileCols {
		for j := range board.TileRows {
			o := board.TileOrigin(i, j)
			rl.DrawRectangleV(
				rl.NewVector2(float32(o.X), float32(o.Y)),
				rl.NewVector2(float32(board.TileSize), float32(board.TileSize)),
				g.TileColor(i, j),
			)
		}
	}
}

func drawPawn(p *board.Pawn) {
	center := rl.NewVector2(float32(p.Pos.X), float32(p.Pos.Y))
	radius := float32(p.Radius())

	rl.DrawCircleV(center, radius, p.Color)
	rl.DrawRing(center, radius-float32(p.BorderWidth()), radius, 0, 360, 48, p.Border)
}
