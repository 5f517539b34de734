package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
)

// OrientationSystem runs each actor's frame update. Gravity-aligned actors
// update inside a physics-write section; their impulse comes later from
// GravitySystem.
type OrientationSystem struct {
	positions map[string]mgl64.Vec3
}

func NewOrientationSystem() *OrientationSystem {
	return &OrientationSystem{positions: make(map[string]mgl64.Vec3)}
}

func (s *OrientationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	clear(s.positions)
	ecs.ForEach(w, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		if a.Entity != nil {
			s.positions[a.Entity.Name()] = a.Entity.Position()
		}
	})

	for _, e := range w.Query(component.ActorComponent.Kind()) {
		a, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		if a == nil || a.Entity == nil {
			continue
		}

		target := s.target(w, e, a)
		if !ecs.Has(w, e, component.GravityAlignedComponent.Kind()) {
			a.Entity.Update(target)
			continue
		}
		if err := a.Entity.UpdateBracketed(target); err != nil {
			w.Abort(fmt.Errorf("orientation: %s: %w", a.Entity.Name(), err))
			return
		}
	}
}

func (s *OrientationSystem) target(w *ecs.World, e ecs.Entity, a *component.Actor) mgl64.Vec3 {
	lt, ok := ecs.Get(w, e, component.LookTargetComponent.Kind())
	if !ok {
		return a.Entity.Target()
	}
	if lt.Follow != "" {
		if p, found := s.positions[lt.Follow]; found {
			lt.Point = p
		}
	}
	return lt.Point
}
