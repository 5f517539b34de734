package prefabs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	EngineSpace  = "space"
	EnginePlanar = "planar"
)

const (
	StaticSphere  = "sphere"
	StaticPlane   = "plane"
	StaticSegment = "segment"
	StaticDisc    = "disc"
)

var (
	ErrInvalidSpec = errors.New("prefabs: invalid spec")
	ErrPrefabCycle = errors.New("prefabs: prefab cycle")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec describes a whole simulation: engine, gravity, static geometry
// and actors.
type SceneSpec struct {
	Name    string       `yaml:"name"`
	Engine  string       `yaml:"engine"`
	Physics *bool        `yaml:"physics"`
	Gravity GravitySpec  `yaml:"gravity"`
	Lane    float64      `yaml:"lane"`
	Sleep   SleepSpec    `yaml:"sleep"`
	Statics []StaticSpec `yaml:"statics"`
	Actors  []ActorSpec  `yaml:"actors"`
}

// LoadSceneSpec loads and validates a scene file.
func LoadSceneSpec(filename string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return SceneSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return spec, nil
}

// PhysicsEnabled defaults to true when the file leaves it out.
func (s SceneSpec) PhysicsEnabled() bool {
	return s.Physics == nil || *s.Physics
}

func (s SceneSpec) Validate() error {
	switch s.Engine {
	case "", EngineSpace, EnginePlanar:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidSpec, s.Engine)
	}
	if s.Gravity.Magnitude < 0 {
		return fmt.Errorf("%w: negative gravity magnitude", ErrInvalidSpec)
	}
	for i, st := range s.Statics {
		if err := st.Validate(s.Engine); err != nil {
			return fmt.Errorf("static %d: %w", i, err)
		}
	}
	for i, a := range s.Actors {
		if strings.TrimSpace(a.Prefix) == "" {
			return fmt.Errorf("%w: actor %d has no prefix", ErrInvalidSpec, i)
		}
		if a.Radius <= 0 {
			return fmt.Errorf("%w: actor %s radius must be positive", ErrInvalidSpec, a.Prefix)
		}
	}
	return nil
}

type GravitySpec struct {
	Magnitude  float64      `yaml:"magnitude"`
	Attractors []mgl64.Vec3 `yaml:"attractors"`
}

// SleepSpec tunes auto-sleep of the 3D engine. Zero values keep the
// engine defaults.
type SleepSpec struct {
	Speed float64 `yaml:"speed"`
	Time  float64 `yaml:"time"`
}

type StaticSpec struct {
	Kind   string     `yaml:"kind"`
	Center mgl64.Vec3 `yaml:"center"`
	Radius float64    `yaml:"radius"`
	Normal mgl64.Vec3 `yaml:"normal"`
	Offset float64    `yaml:"offset"`
	A      mgl64.Vec3 `yaml:"a"`
	B      mgl64.Vec3 `yaml:"b"`
}

func (s StaticSpec) Validate(engine string) error {
	planar := engine == EnginePlanar
	switch s.Kind {
	case StaticSphere, StaticPlane:
		if planar {
			return fmt.Errorf("%w: %s is not available on the planar engine", ErrInvalidSpec, s.Kind)
		}
	case StaticSegment, StaticDisc:
		if !planar {
			return fmt.Errorf("%w: %s needs the planar engine", ErrInvalidSpec, s.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown static kind %q", ErrInvalidSpec, s.Kind)
	}
	if (s.Kind == StaticSphere || s.Kind == StaticDisc) && s.Radius <= 0 {
		return fmt.Errorf("%w: %s radius must be positive", ErrInvalidSpec, s.Kind)
	}
	if s.Kind == StaticPlane && s.Normal.Len() == 0 {
		return fmt.Errorf("%w: plane normal is zero", ErrInvalidSpec)
	}
	return nil
}

// ActorSpec describes one actor. When Prefab is set the named actor file
// is loaded first and the fields present here override it.
type ActorSpec struct {
	Prefab         string         `yaml:"prefab"`
	Prefix         string         `yaml:"prefix"`
	Position       mgl64.Vec3     `yaml:"position"`
	Up             mgl64.Vec3     `yaml:"up"`
	Target         mgl64.Vec3     `yaml:"target"`
	Speed          float64        `yaml:"speed"`
	JumpSpeed      float64        `yaml:"jump_speed"`
	JumpCount      int            `yaml:"jump_count"`
	Mass           float64        `yaml:"mass"`
	Radius         float64        `yaml:"radius"`
	Damping        float64        `yaml:"damping"`
	Ground         bool           `yaml:"ground"`
	GravityAligned bool           `yaml:"gravity_aligned"`
	Player         bool           `yaml:"player"`
	SkipProjection bool           `yaml:"skip_projection"`
	Components     map[string]any `yaml:"components"`
}

// DefaultActorSpec is the base every decoded actor starts from.
func DefaultActorSpec() ActorSpec {
	return ActorSpec{
		Prefix:         "actor",
		Up:             mgl64.Vec3{0, 1, 0},
		Target:         mgl64.Vec3{0, 0, 1},
		Speed:          5,
		JumpSpeed:      8,
		JumpCount:      1,
		Mass:           60,
		Radius:         0.5,
		Damping:        1,
		Ground:         true,
		GravityAligned: true,
	}
}

type actorSpecFields ActorSpec

func (a *ActorSpec) UnmarshalYAML(value *yaml.Node) error {
	spec, err := resolveActor(value, nil)
	if err != nil {
		return err
	}
	*a = spec
	return nil
}

// resolveActor decodes node over its prefab chain. chain holds the prefab
// files already being resolved.
func resolveActor(node *yaml.Node, chain []string) (ActorSpec, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return ActorSpec{}, fmt.Errorf("actor must be a mapping")
	}

	var ref struct {
		Prefab string `yaml:"prefab"`
	}
	if err := node.Decode(&ref); err != nil {
		return ActorSpec{}, err
	}

	base := DefaultActorSpec()
	if ref.Prefab != "" {
		name := cleanPrefabPath(ref.Prefab)
		if slices.Contains(chain, name) {
			return ActorSpec{}, fmt.Errorf("%w: %s", ErrPrefabCycle, strings.Join(append(chain, name), " -> "))
		}
		data, err := Load(name)
		if err != nil {
			return ActorSpec{}, fmt.Errorf("prefabs: load %s: %w", ref.Prefab, err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ActorSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", ref.Prefab, err)
		}
		base, err = resolveActor(&doc, append(chain, name))
		if err != nil {
			return ActorSpec{}, err
		}
	}

	if err := node.Decode((*actorSpecFields)(&base)); err != nil {
		return ActorSpec{}, err
	}
	return base, nil
}

// LoadActorSpec loads a standalone actor file.
func LoadActorSpec(filename string) (ActorSpec, error) {
	return LoadSpec[ActorSpec](filename)
}
