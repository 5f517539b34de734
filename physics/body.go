package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody is a dynamic sphere integrated by Space. It satisfies the
// actor.Body interface.
type RigidBody struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat

	Mass   float64
	Radius float64
	// Damping is the fraction of velocity kept per second, 1 keeps it all.
	Damping float64

	sleeping bool
	idleTime float64

	// Collider senses ground contact when set.
	Collider *JumpCollider
}

// NewRigidBody creates an awake body. Non-positive mass is treated as 1.
func NewRigidBody(mass, radius float64) *RigidBody {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody{
		rotation: mgl64.QuatIdent(),
		Mass:     mass,
		Radius:   radius,
		Damping:  1,
	}
}

// Sleep freezes integration. Velocity is kept so a write section does not
// erase momentum; contacts still cancel velocity into surfaces.
func (b *RigidBody) Sleep() {
	b.sleeping = true
}

func (b *RigidBody) WakeUp() {
	b.sleeping = false
	b.idleTime = 0
}

func (b *RigidBody) IsSleeping() bool { return b.sleeping }

// ApplyImpulse wakes the body and changes its velocity by impulse/mass. The
// body is a point mass, so the application point only matters to
// rotational bodies and is ignored.
func (b *RigidBody) ApplyImpulse(impulse, at mgl64.Vec3) {
	b.WakeUp()
	b.velocity = b.velocity.Add(impulse.Mul(1 / b.Mass))
}

// SetLinearVelocity replaces the velocity without waking the body.
func (b *RigidBody) SetLinearVelocity(v mgl64.Vec3) {
	b.velocity = v
}

func (b *RigidBody) LinearVelocity() mgl64.Vec3 { return b.velocity }

func (b *RigidBody) Position() mgl64.Vec3 { return b.position }

func (b *RigidBody) SetPosition(p mgl64.Vec3) { b.position = p }

func (b *RigidBody) Rotation() mgl64.Quat { return b.rotation }

func (b *RigidBody) SetRotation(q mgl64.Quat) { b.rotation = q }
