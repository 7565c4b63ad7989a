// Package sim owns the world: the player, the frogs, the thrown balls and the
// terrain, advanced one frame at a time from a single goroutine.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/treedee/components"
	"github.com/pthm-cable/treedee/config"
	"github.com/pthm-cable/treedee/player"
	"github.com/pthm-cable/treedee/ringbuf"
	"github.com/pthm-cable/treedee/systems"
)

// World holds the complete simulation state.
type World struct {
	cfg    *config.Config
	world  *ecs.World
	rng    *rand.Rand
	kernel systems.Kernel

	Player  *player.Player
	Terrain *systems.Terrain

	// Frogs live for the whole process; balls are recycled through the ring.
	frogMap *ecs.Map2[components.Body, components.Frog]
	ballMap *ecs.Map2[components.Body, components.Ball]
	bodyMap *ecs.Map[components.Body]
	frogs   []ecs.Entity
	balls   *ringbuf.Ring[ecs.Entity]

	listeners []Listener

	frame    uint64
	nextBall uint64
}

// NewWorld creates the world at its starting state. seed drives the wall
// stress signal and nothing else.
func NewWorld(cfg *config.Config, seed int64) (*World, error) {
	world := ecs.NewWorld()
	kernel := systems.NewKernel(cfg)

	w := &World{
		cfg:     cfg,
		world:   world,
		rng:     rand.New(rand.NewSource(seed)),
		kernel:  kernel,
		Player:  player.New(cfg, kernel),
		Terrain: systems.NewTerrain(cfg),
		frogMap: ecs.NewMap2[components.Body, components.Frog](world),
		ballMap: ecs.NewMap2[components.Body, components.Ball](world),
		bodyMap: ecs.NewMap[components.Body](world),
		balls:   ringbuf.New[ecs.Entity](cfg.Balls.Capacity),
	}

	if err := w.spawnFrogs(); err != nil {
		return nil, err
	}
	return w, nil
}

// spawnFrogs creates one frog per configured spawn point.
func (w *World) spawnFrogs() error {
	for i, spawn := range w.cfg.Frogs.Spawns {
		tint, err := components.ParseColor(spawn.Color)
		if err != nil {
			return fmt.Errorf("frog %d: %w", i, err)
		}

		body := components.NewBody(r3.Vec{X: spawn.X, Y: spawn.Y, Z: spawn.Z}, w.cfg.Frogs.Size)
		frog := components.Frog{Index: i, Tint: tint}
		w.frogs = append(w.frogs, w.frogMap.NewEntity(&body, &frog))
	}
	return nil
}

// AddListener subscribes l to world events.
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

func (w *World) emit(e Event) {
	e.Frame = w.frame
	for _, l := range w.listeners {
		l.OnEvent(e)
	}
}

// ThrowBall spawns a ball from the player's eye. The oldest ball is dropped
// once the ring is full.
func (w *World) ThrowBall() {
	pos, vel := w.Player.Throw()
	serial := w.spawnBall(pos, vel)
	w.emit(Event{Type: EventThrow, Frog: -1, Ball: serial})
}

func (w *World) spawnBall(pos, vel r3.Vec) uint64 {
	w.nextBall++

	body := components.NewBody(pos, w.cfg.Balls.Size)
	body.Vel = vel
	ball := components.Ball{Serial: w.nextBall}

	entity := w.ballMap.NewEntity(&body, &ball)
	if evicted, ok := w.balls.Push(entity); ok {
		w.world.RemoveEntity(evicted)
	}
	return w.nextBall
}

// Kernel returns the mobility kernel shared by every entity.
func (w *World) Kernel() systems.Kernel { return w.kernel }

// Frame returns the number of completed updates.
func (w *World) Frame() uint64 { return w.frame }

// FrogCount returns the number of frogs.
func (w *World) FrogCount() int { return len(w.frogs) }

// BallCount returns the number of live balls.
func (w *World) BallCount() int { return w.balls.Len() }

// FrogBody returns the body of the i-th frog.
func (w *World) FrogBody(i int) *components.Body {
	return w.bodyMap.Get(w.frogs[i])
}

// EachFrog calls fn for every frog in spawn order. fn must not create or
// remove entities.
func (w *World) EachFrog(fn func(body *components.Body, frog *components.Frog)) {
	for _, e := range w.frogs {
		fn(w.frogMap.Get(e))
	}
}

// EachBall calls fn for every live ball, oldest first. fn must not create or
// remove entities.
func (w *World) EachBall(fn func(body *components.Body, ball *components.Ball)) {
	for _, e := range w.balls.All() {
		fn(w.ballMap.Get(e))
	}
}
