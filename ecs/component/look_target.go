package component

import "github.com/go-gl/mathgl/mgl64"

// LookTarget is the world point an actor faces. Actors without one keep
// their last target.
type LookTarget struct {
	Point mgl64.Vec3
	// Follow names another actor whose position replaces Point each tick.
	Follow string
}

var LookTargetComponent = NewComponent[LookTarget]()
