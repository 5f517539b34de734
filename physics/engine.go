package physics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/actor"
)

var (
	ErrForeignBody = errors.New("physics: body does not belong to this engine")
)

// supportCos is the minimum cosine between a contact normal and the body's
// up axis for the contact to count as ground.
const supportCos = 0.5

// BodyConfig describes a dynamic body to spawn.
type BodyConfig struct {
	Position mgl64.Vec3
	Mass     float64
	Radius   float64
	Damping  float64
	// Ground attaches a JumpCollider; otherwise the body gets a BoxCollider.
	Ground bool
}

// Engine is a steppable physics backend the scene spawns bodies into.
type Engine interface {
	Spawn(cfg BodyConfig) (actor.Body, actor.Collider)
	Despawn(body actor.Body) error
	Step(dt float64)
	Bodies() int
}

func colliderFor(cfg BodyConfig) (actor.Collider, *JumpCollider) {
	if cfg.Ground {
		jc := NewJumpCollider()
		return jc, jc
	}
	d := cfg.Radius * 2
	return &BoxCollider{Width: d, Height: d, Depth: d}, nil
}

// upAxis is the world direction of the body's local +Y.
func upAxis(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 1, 0})
}
