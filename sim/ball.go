package sim

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/systems"
)

// Strike heavily slows the ball down and hands part of its velocity to target.
// transfer is the share added to target, retain the share the ball keeps.
func Strike(ball *components.Body, target systems.Movable, transfer, retain float64) {
	systems.Transfer(ball, target, transfer)
	ball.Vel = r3.Scale(retain, ball.Vel)
}
