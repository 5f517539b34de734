package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/motion"
	"gopkg.in/yaml.v3"
)

// Optional actor components, keyed in ActorSpec.Components.
const (
	ComponentCamera     = "camera"
	ComponentLookTarget = "look_target"
	ComponentController = "controller"
)

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// ActorComponent decodes the named optional component of a. ok is false
// when the actor does not declare it.
func ActorComponent[T any](a ActorSpec, name string) (spec T, ok bool, err error) {
	raw, found := a.Components[name]
	if !found {
		return spec, false, nil
	}
	spec, err = DecodeComponentSpec[T](raw)
	if err != nil {
		return spec, true, fmt.Errorf("prefabs: actor %s component %s: %w", a.Prefix, name, err)
	}
	return spec, true, nil
}

type CameraComponentSpec struct {
	Distance float64 `yaml:"distance"`
	Height   float64 `yaml:"height"`
	Lag      float64 `yaml:"lag"`
}

type LookTargetComponentSpec struct {
	Point  mgl64.Vec3 `yaml:"point"`
	Follow string     `yaml:"follow"`
}

// ControllerComponentSpec picks a command source: a tengo script, a fixed
// list of commands, a single repeated command, or nothing.
type ControllerComponentSpec struct {
	Script   string        `yaml:"script"`
	Commands []CommandSpec `yaml:"commands"`
	Repeat   *CommandSpec  `yaml:"repeat"`
}

type CommandSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	Test bool    `yaml:"test"`
}

func (c CommandSpec) Command() motion.Command {
	cmd := motion.NewCommand(c.X, c.Y, c.Z)
	cmd.Test = c.Test
	return cmd
}
