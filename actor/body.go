package actor

import "github.com/go-gl/mathgl/mgl64"

// Body is the physics engine's handle on an entity. The entity writes
// velocity, rotation and impulses; the engine writes integrated position and
// velocity.
type Body interface {
	Sleep()
	WakeUp()
	ApplyImpulse(impulse, at mgl64.Vec3)
	SetLinearVelocity(v mgl64.Vec3)
	LinearVelocity() mgl64.Vec3
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	SetRotation(q mgl64.Quat)
}

// Collider is any collision volume attached to an entity.
type Collider interface {
	// ProvidesGroundContact reports whether the collider also implements
	// GroundContact.
	ProvidesGroundContact() bool
}

// GroundContact is the capability of colliders that know whether they rest
// on a supporting surface.
type GroundContact interface {
	OnObject() bool
	SetOnObject(onObject bool)
}

// Camera receives the entity's up axis every tick when attached.
type Camera interface {
	SetUpVector(up mgl64.Vec3)
}

func groundContact(c Collider) (GroundContact, bool) {
	if c == nil || !c.ProvidesGroundContact() {
		return nil, false
	}
	gc, ok := c.(GroundContact)
	return gc, ok
}
