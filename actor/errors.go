package actor

import "errors"

var (
	// ErrPhysicsDisabled is returned by Move when the scene has physics
	// turned off. Movement needs a physics body; callers treat it as fatal.
	ErrPhysicsDisabled = errors.New("actor: physics are not enabled")
	ErrNoBody          = errors.New("actor: entity has no physics body")
	ErrNilContext      = errors.New("actor: context is nil")
)
