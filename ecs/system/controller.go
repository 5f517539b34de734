package system

import (
	"fmt"

	"github.com/milk9111/gravwalk/controller"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
)

// ControllerSystem polls every command source into the actor's
// PendingCommand.
type ControllerSystem struct {
	clock func() uint64
}

func NewControllerSystem(clock func() uint64) *ControllerSystem {
	return &ControllerSystem{clock: clock}
}

func (s *ControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	tick := s.clock()

	for _, e := range w.Query(component.ControllerComponent.Kind()) {
		ctrl, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
		if ctrl == nil || ctrl.Source == nil {
			continue
		}

		cmd, ok := ctrl.Source.Next(tick)
		if f, isFailer := ctrl.Source.(controller.Failer); isFailer && f.Err() != nil {
			w.Abort(fmt.Errorf("controller: entity %s: %w", e, f.Err()))
			return
		}

		pending, found := ecs.Get(w, e, component.PendingCommandComponent.Kind())
		if !found {
			pending = &component.PendingCommand{}
		}
		pending.Command = cmd
		pending.Present = ok
		if err := ecs.Add(w, e, component.PendingCommandComponent.Kind(), pending); err != nil {
			w.Abort(fmt.Errorf("controller: entity %s: %w", e, err))
			return
		}
	}
}
