package system

import (
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
)

// GravitySystem applies each gravity-aligned actor's impulse after its
// command has been processed, so a jump replaces the old velocity but not
// the pull of the same tick.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.GravityAlignedComponent.Kind(), func(_ ecs.Entity, a *component.Actor, _ *component.GravityAligned) {
		if a.Entity != nil {
			a.Entity.ApplyGravity()
		}
	})
}
