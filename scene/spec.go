package scene

import (
	"fmt"

	"github.com/milk9111/gravwalk/actor"
	"github.com/milk9111/gravwalk/controller"
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
	"github.com/milk9111/gravwalk/gravity"
	"github.com/milk9111/gravwalk/motion"
	"github.com/milk9111/gravwalk/physics"
	"github.com/milk9111/gravwalk/prefabs"
)

// FromSpec builds the engine, statics and actors a scene file describes.
func FromSpec(spec prefabs.SceneSpec) (*Scene, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", spec.Name, err)
	}

	s := New(spec.Name, engineFromSpec(spec))
	s.SetPhysicsEnabled(spec.PhysicsEnabled())
	s.SetGravity(gravity.NewField(spec.Gravity.Magnitude, spec.Gravity.Attractors...))

	for _, as := range spec.Actors {
		cfg, err := ActorConfigFromSpec(as)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("scene: spawn %s: %w", as.Prefix, err)
		}
		if _, _, err := s.Spawn(cfg); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

func engineFromSpec(spec prefabs.SceneSpec) physics.Engine {
	if spec.Engine == prefabs.EnginePlanar {
		ps := physics.NewPlanarSpace(spec.Lane)
		for _, st := range spec.Statics {
			switch st.Kind {
			case prefabs.StaticSegment:
				ps.AddSegment(st.A.Vec2(), st.B.Vec2(), st.Radius)
			case prefabs.StaticDisc:
				ps.AddDisc(st.Center.Vec2(), st.Radius)
			}
		}
		return ps
	}

	sp := physics.NewSpace()
	if spec.Sleep.Speed > 0 {
		sp.SleepSpeed = spec.Sleep.Speed
	}
	if spec.Sleep.Time > 0 {
		sp.SleepTime = spec.Sleep.Time
	}
	for _, st := range spec.Statics {
		switch st.Kind {
		case prefabs.StaticSphere:
			sp.AddSphere(st.Center, st.Radius)
		case prefabs.StaticPlane:
			sp.AddPlane(st.Normal, st.Offset)
		}
	}
	return sp
}

// ActorConfigFromSpec turns an actor file into a spawn config, loading the
// controller script it names.
func ActorConfigFromSpec(as prefabs.ActorSpec) (ActorConfig, error) {
	cfg := ActorConfig{
		Prefix: as.Prefix,
		Options: actor.Options{
			Position:       as.Position,
			Up:             as.Up,
			Target:         as.Target,
			Speed:          as.Speed,
			JumpSpeed:      as.JumpSpeed,
			JumpCount:      as.JumpCount,
			SkipProjection: as.SkipProjection,
		},
		Mass:           as.Mass,
		Radius:         as.Radius,
		Damping:        as.Damping,
		Ground:         as.Ground,
		GravityAligned: as.GravityAligned,
		Player:         as.Player,
	}

	if cam, ok, err := prefabs.ActorComponent[prefabs.CameraComponentSpec](as, prefabs.ComponentCamera); err != nil {
		return cfg, err
	} else if ok {
		cfg.Camera = &component.CameraRig{Distance: cam.Distance, Height: cam.Height, Lag: cam.Lag}
	}

	if lt, ok, err := prefabs.ActorComponent[prefabs.LookTargetComponentSpec](as, prefabs.ComponentLookTarget); err != nil {
		return cfg, err
	} else if ok {
		cfg.LookTarget = &component.LookTarget{Point: lt.Point, Follow: lt.Follow}
	}

	ctrl, ok, err := prefabs.ActorComponent[prefabs.ControllerComponentSpec](as, prefabs.ComponentController)
	if err != nil {
		return cfg, err
	}
	if ok {
		src, err := sourceFromSpec(ctrl)
		if err != nil {
			return cfg, err
		}
		cfg.Source = src
	}
	return cfg, nil
}

func sourceFromSpec(spec prefabs.ControllerComponentSpec) (controller.Source, error) {
	switch {
	case spec.Script != "":
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", spec.Script, err)
		}
		return controller.NewScript(spec.Script, src)
	case len(spec.Commands) > 0:
		cmds := make([]motion.Command, 0, len(spec.Commands))
		for _, c := range spec.Commands {
			cmds = append(cmds, c.Command())
		}
		return controller.NewQueue(cmds...), nil
	case spec.Repeat != nil:
		return controller.Repeat{Command: spec.Repeat.Command()}, nil
	default:
		return controller.Idle{}, nil
	}
}

// Retune applies the tuning of a reloaded scene file to the live actors:
// gravity, the physics flag, and per prefix the speeds and jump count.
// Positions and bodies are left alone.
func (s *Scene) Retune(spec prefabs.SceneSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("scene: retune %s: %w", s.name, err)
	}
	s.SetPhysicsEnabled(spec.PhysicsEnabled())
	s.SetGravity(gravity.NewField(spec.Gravity.Magnitude, spec.Gravity.Attractors...))

	byPrefix := make(map[string]prefabs.ActorSpec, len(spec.Actors))
	for _, as := range spec.Actors {
		if _, seen := byPrefix[as.Prefix]; !seen {
			byPrefix[as.Prefix] = as
		}
	}

	ecs.ForEach(s.world, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		if a.Entity == nil {
			return
		}
		as, ok := byPrefix[a.Prefix]
		if !ok {
			return
		}
		a.Entity.Speed = as.Speed
		a.Entity.JumpSpeed = as.JumpSpeed
		a.Entity.SetJumpCount(as.JumpCount)
	})
	s.log.Info().Int("prefixes", len(byPrefix)).Msg("retuned")
	return nil
}

// ReloadScript swaps the program of every script controller named name.
// It returns how many controllers were reloaded.
func (s *Scene) ReloadScript(name string, src []byte) (int, error) {
	n := 0
	var firstErr error
	ecs.ForEach(s.world, component.ControllerComponent.Kind(), func(_ ecs.Entity, c *component.Controller) {
		script, ok := c.Source.(*controller.Script)
		if !ok || script.Name() != name {
			return
		}
		if err := script.Reload(src); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		n++
	})
	return n, firstErr
}
