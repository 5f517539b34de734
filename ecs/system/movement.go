package system

import (
	"fmt"

	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MovementSystem feeds pending commands to actors and reports what each
// command did as an action event. A failed move aborts the world.
type MovementSystem struct {
	clock func() uint64
	log   zerolog.Logger
}

func NewMovementSystem(clock func() uint64) *MovementSystem {
	return &MovementSystem{
		clock: clock,
		log:   log.With().Str("system", "movement").Logger(),
	}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.ActorComponent.Kind(), component.PendingCommandComponent.Kind()) {
		a, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		pending, _ := ecs.Get(w, e, component.PendingCommandComponent.Kind())
		if a == nil || a.Entity == nil || pending == nil || !pending.Present {
			continue
		}
		pending.Present = false

		act, err := a.Entity.Move(pending.Command)
		if err != nil {
			s.log.Error().Err(err).Str("actor", a.Entity.Name()).Msg("move failed")
			w.Abort(fmt.Errorf("movement: %s: %w", a.Entity.Name(), err))
			return
		}

		w.Events().Push(ecs.Event{
			Type: ecs.EventAction,
			Data: ecs.ActionEvent{
				Entity: e,
				Name:   a.Entity.Name(),
				Action: act.String(),
				Tick:   s.clock(),
			},
		})
	}
}
