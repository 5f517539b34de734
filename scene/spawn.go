package scene

import (
	"fmt"
	"strconv"

	"github.com/milk9111/gravwalk/actor"
	"github.com/milk9111/gravwalk/controller"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
	"github.com/milk9111/gravwalk/physics"
)

// ActorConfig describes an actor to spawn. Options.Name is ignored: names
// are Prefix followed by the scene's spawn counter.
type ActorConfig struct {
	Prefix  string
	Options actor.Options

	Mass    float64
	Radius  float64
	Damping float64
	// Ground gives the body a collider that reports ground contact.
	Ground bool

	GravityAligned bool
	Player         bool

	Source     controller.Source
	Camera     *component.CameraRig
	LookTarget *component.LookTarget
}

// DefaultActorConfig is a grounded, gravity-aligned actor with the default
// entity options.
func DefaultActorConfig(prefix string) ActorConfig {
	return ActorConfig{
		Prefix:         prefix,
		Options:        actor.DefaultOptions(),
		Mass:           60,
		Radius:         0.5,
		Damping:        1,
		Ground:         true,
		GravityAligned: true,
	}
}

// Spawn creates the actor, its body and its ECS entity.
func (s *Scene) Spawn(cfg ActorConfig) (*actor.Entity, ecs.Entity, error) {
	if s.closed {
		return nil, 0, ErrClosed
	}
	s.index++
	name := cfg.Prefix + strconv.Itoa(s.index)

	opts := cfg.Options
	opts.Name = name
	a, err := actor.New(s, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("scene: spawn %s: %w", name, err)
	}

	body, collider := s.engine.Spawn(physics.BodyConfig{
		Position: opts.Position,
		Mass:     cfg.Mass,
		Radius:   cfg.Radius,
		Damping:  cfg.Damping,
		Ground:   cfg.Ground,
	})
	a.SetBody(body)
	a.SetCollider(collider)

	e := s.world.CreateEntity()
	if err := s.attach(e, a, cfg); err != nil {
		s.world.DestroyEntity(e)
		_ = s.engine.Despawn(body)
		return nil, 0, fmt.Errorf("scene: spawn %s: %w", name, err)
	}

	s.actors[name] = e
	s.world.Events().Push(ecs.Event{
		Type: ecs.EventSpawn,
		Data: ecs.LifecycleEvent{Entity: e, Name: name, Tick: s.tick},
	})
	s.log.Debug().Str("actor", name).Stringer("entity", e).Msg("spawned")
	return a, e, nil
}

func (s *Scene) attach(e ecs.Entity, a *actor.Entity, cfg ActorConfig) error {
	w := s.world
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Entity: a, Prefix: cfg.Prefix}); err != nil {
		return err
	}
	if cfg.GravityAligned {
		if err := ecs.Add(w, e, component.GravityAlignedComponent.Kind(), &component.GravityAligned{}); err != nil {
			return err
		}
	}
	if cfg.Player {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return err
		}
	}
	if cfg.Source != nil {
		if err := ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{Source: cfg.Source}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.PendingCommandComponent.Kind(), &component.PendingCommand{}); err != nil {
			return err
		}
	}
	if cfg.LookTarget != nil {
		lt := *cfg.LookTarget
		if err := ecs.Add(w, e, component.LookTargetComponent.Kind(), &lt); err != nil {
			return err
		}
	}
	if cfg.Camera != nil {
		rig := *cfg.Camera
		if err := ecs.Add(w, e, component.CameraRigComponent.Kind(), &rig); err != nil {
			return err
		}
		a.SetCamera(&rig)
	}
	return nil
}

// Actor looks an actor up by name.
func (s *Scene) Actor(name string) (*actor.Entity, ecs.Entity, bool) {
	e, ok := s.actors[name]
	if !ok {
		return nil, 0, false
	}
	a, ok := ecs.Get(s.world, e, component.ActorComponent.Kind())
	if !ok || a.Entity == nil {
		return nil, 0, false
	}
	return a.Entity, e, true
}

// Actors returns every live actor in entity order.
func (s *Scene) Actors() []*actor.Entity {
	var out []*actor.Entity
	ecs.ForEach(s.world, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		if a.Entity != nil {
			out = append(out, a.Entity)
		}
	})
	return out
}

// Player returns the first actor tagged as the player.
func (s *Scene) Player() (*actor.Entity, bool) {
	e, _, ok := ecs.First(s.world, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	a, ok := ecs.Get(s.world, e, component.ActorComponent.Kind())
	if !ok || a.Entity == nil {
		return nil, false
	}
	return a.Entity, true
}

// Despawn removes the actor's body from the engine and destroys its entity.
func (s *Scene) Despawn(e ecs.Entity) error {
	a, ok := ecs.Get(s.world, e, component.ActorComponent.Kind())
	if !ok || a.Entity == nil {
		return fmt.Errorf("%w: %s", ErrUnknownActor, e)
	}
	name := a.Entity.Name()
	var err error
	if body := a.Entity.Body(); body != nil {
		err = s.engine.Despawn(body)
	}
	s.world.DestroyEntity(e)
	delete(s.actors, name)
	s.world.Events().Push(ecs.Event{
		Type: ecs.EventDespawn,
		Data: ecs.LifecycleEvent{Entity: e, Name: name, Tick: s.tick},
	})
	if err != nil {
		return fmt.Errorf("scene: despawn %s: %w", name, err)
	}
	return nil
}
