package system

import (
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/physics"
)

// PhysicsSystem steps the physics engine once per tick.
type PhysicsSystem struct {
	engine physics.Engine
	dt     float64
}

func NewPhysicsSystem(engine physics.Engine, dt float64) *PhysicsSystem {
	return &PhysicsSystem{engine: engine, dt: dt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s.engine == nil {
		return
	}
	s.engine.Step(s.dt)
}
