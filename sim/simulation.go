package sim

import (
	"github.com/pthm-cable/treedee/camera"
	"github.com/pthm-cable/treedee/input"
	"github.com/pthm-cable/treedee/player"
	"github.com/pthm-cable/treedee/systems"
)

// Step applies one frame of input and then advances the world by dt.
func (w *World) Step(f input.Frame, dt float64) {
	w.HandleInput(f, dt)
	w.Update(dt)
}

// HandleInput applies the player's controls. Looking, zooming, toggles and
// throwing always work; locomotion only while the player can move.
func (w *World) HandleInput(f input.Frame, dt float64) {
	p := w.Player

	if f.HasMouseMoved() {
		p.Look(f.MouseDelta, dt)
	}
	if f.IsDown(input.ZoomIn) {
		p.Zoom(camera.ZoomIn, dt)
	}
	if f.IsDown(input.ZoomOut) {
		p.Zoom(camera.ZoomOut, dt)
	}
	if f.IsPressed(input.ToggleStats) {
		p.ShowingStats = !p.ShowingStats
	}
	p.Sprinting = f.IsDown(input.Sprint)

	if f.IsPressed(input.Throw) {
		w.ThrowBall()
	}

	if !p.CanMove() {
		return
	}

	if f.IsDown(input.MoveForward) {
		p.Accel(player.Front, dt)
	}
	if f.IsDown(input.MoveBack) {
		p.Accel(player.Back, dt)
	}
	if f.IsDown(input.StrafeRight) {
		p.Accel(player.Right, dt)
	}
	if f.IsDown(input.StrafeLeft) {
		p.Accel(player.Left, dt)
	}
	if f.IsPressed(input.Jump) {
		p.Jump()
	}
	if f.IsPressed(input.SuperLeap) {
		p.SuperLeap(dt)
	}
}

// Update advances every entity by dt in a fixed order: player, victory
// check, frogs, balls, terrain.
func (w *World) Update(dt float64) {
	w.Player.Update(dt)
	w.checkVictory()
	w.updateFrogs(dt)
	w.updateBalls(dt)
	w.Terrain.Update(w.Player, dt, w.rng)
	w.frame++
}

func (w *World) updateFrogs(dt float64) {
	for i, e := range w.frogs {
		body := w.bodyMap.Get(e)
		if systems.Intersects(w.Player, body) {
			w.Player.Kick(body)
			w.emit(Event{Type: EventKick, Frog: i})
		}
		w.kernel.Step(body, dt)
	}
}

func (w *World) updateBalls(dt float64) {
	transfer, retain := w.cfg.Balls.Transfer, w.cfg.Balls.Retain
	for _, e := range w.balls.All() {
		body, ball := w.ballMap.Get(e)
		for i, fe := range w.frogs {
			frog := w.bodyMap.Get(fe)
			if systems.Intersects(body, frog) {
				Strike(body, frog, transfer, retain)
				ball.Strikes++
				w.emit(Event{Type: EventStrike, Frog: i, Ball: ball.Serial})
			}
		}
		w.kernel.Step(body, dt)
	}
}

// checkVictory crowns the player once the frogs are herded. Victory is never
// revoked.
func (w *World) checkVictory() {
	if w.Player.IsVictorious() || !w.FrogsHerded() {
		return
	}
	w.Player.Win()
	w.emit(Event{Type: EventVictory, Frog: -1})
}

// FrogsHerded reports whether every pair of frogs touches and every frog has
// left the terrain.
func (w *World) FrogsHerded() bool {
	if len(w.frogs) == 0 {
		return false
	}
	for i, a := range w.frogs {
		ab := w.bodyMap.Get(a)
		if !w.kernel.IsOutsideBounds(ab) {
			return false
		}
		for _, b := range w.frogs[i+1:] {
			if !systems.Intersects(ab, w.bodyMap.Get(b)) {
				return false
			}
		}
	}
	return true
}
