package actor

import "github.com/milk9111/gravwalk/gravity"

// Context is the simulation an entity lives in.
type Context interface {
	PhysicsEnabled() bool
	Gravity() gravity.Field
}

// StaticContext is a fixed Context, handy for tools and tests.
type StaticContext struct {
	Physics bool
	Field   gravity.Field
}

func (c StaticContext) PhysicsEnabled() bool   { return c.Physics }
func (c StaticContext) Gravity() gravity.Field { return c.Field }
