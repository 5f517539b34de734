// Package scene owns one running simulation: the ECS world, its systems,
// the physics engine and the gravity field the actors read.
package scene

import (
	"errors"
	"time"

	"github.com/milk9111/gravwalk/common"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/system"
	"github.com/milk9111/gravwalk/gravity"
	"github.com/milk9111/gravwalk/physics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownActor = errors.New("scene: unknown actor")
	ErrClosed       = errors.New("scene: closed")
)

// Scene implements actor.Context for the actors it spawns.
type Scene struct {
	name    string
	world   *ecs.World
	sched   *ecs.Scheduler
	engine  physics.Engine
	field   gravity.Field
	physics bool

	tick   uint64
	acc    time.Duration
	index  int
	actors map[string]ecs.Entity
	events []ecs.Event
	closed bool

	log zerolog.Logger
}

// New creates an empty scene stepping engine. A nil engine gets a fresh
// 3D space. Physics starts enabled with no gravity.
func New(name string, engine physics.Engine) *Scene {
	if engine == nil {
		engine = physics.NewSpace()
	}
	s := &Scene{
		name:    name,
		world:   ecs.NewWorld(),
		engine:  engine,
		physics: true,
		actors:  make(map[string]ecs.Entity),
		log:     log.With().Str("scene", name).Logger(),
	}
	s.sched = ecs.NewScheduler(
		system.NewControllerSystem(s.Tick),
		system.NewOrientationSystem(),
		system.NewMovementSystem(s.Tick),
		system.NewGravitySystem(),
		system.NewPhysicsSystem(engine, common.TimeStep),
		system.NewCameraSystem(),
	)
	return s
}

func (s *Scene) Name() string { return s.name }

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Engine() physics.Engine { return s.engine }

func (s *Scene) PhysicsEnabled() bool { return s.physics }

func (s *Scene) SetPhysicsEnabled(v bool) { s.physics = v }

func (s *Scene) Gravity() gravity.Field { return s.field }

// SetGravity replaces the field. Actors see it on their next update.
func (s *Scene) SetGravity(f gravity.Field) {
	s.field = f.Clone()
}

// Tick is the number of completed steps.
func (s *Scene) Tick() uint64 { return s.tick }

// Err is the fatal error that stopped the scene, if any.
func (s *Scene) Err() error { return s.world.Err() }

// Step runs one fixed tick. Once a system has aborted the world every
// further call returns the same error without simulating.
func (s *Scene) Step() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.world.Err(); err != nil {
		return err
	}
	err := s.sched.Update(s.world)
	s.tick++
	s.events = append(s.events, s.world.Events().Drain()...)
	if err != nil {
		s.log.Error().Err(err).Uint64("tick", s.tick).Msg("scene aborted")
	}
	return err
}

// Advance feeds wall time into the fixed-step accumulator and runs the
// due steps, at most common.LockstepMaxSteps per call. Time beyond the cap
// is dropped so a slow frame cannot snowball.
func (s *Scene) Advance(elapsed time.Duration) (int, error) {
	if elapsed > 0 {
		s.acc += elapsed
	}
	steps := 0
	for s.acc >= common.TickDuration {
		if steps == common.LockstepMaxSteps {
			s.log.Debug().Dur("dropped", s.acc).Msg("lockstep cap reached")
			s.acc = 0
			break
		}
		if err := s.Step(); err != nil {
			return steps, err
		}
		s.acc -= common.TickDuration
		steps++
	}
	return steps, nil
}

// Events returns the events emitted since the previous call, including
// spawns and despawns made between steps.
func (s *Scene) Events() []ecs.Event {
	out := append(s.events, s.world.Events().Drain()...)
	s.events = nil
	return out
}

// Close despawns every actor. The scene cannot step afterwards.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	var errs []error
	for _, e := range ecs.Entities(s.world) {
		if err := s.Despawn(e); err != nil && !errors.Is(err, ErrUnknownActor) {
			errs = append(errs, err)
		}
	}
	s.closed = true
	return errors.Join(errs...)
}
