package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/common"
)

// CameraRig is a chase camera. The actor writes Up every tick; the camera
// system places the rig Distance behind and Height above the actor.
type CameraRig struct {
	Distance float64
	Height   float64
	// Lag is the fraction of the previous position kept each tick. Zero
	// snaps to the chase point.
	Lag float64

	Up       mgl64.Vec3
	Position mgl64.Vec3
	LookAt   mgl64.Vec3

	placed bool
}

func (c *CameraRig) SetUpVector(up mgl64.Vec3) {
	c.Up = up
}

// Follow moves the rig toward the chase point. The first call snaps.
func (c *CameraRig) Follow(want mgl64.Vec3) {
	if !c.placed || c.Lag <= 0 {
		c.Position = want
		c.placed = true
		return
	}
	c.Position = common.LerpVec3(want, c.Position, min(c.Lag, 1))
}

var CameraRigComponent = NewComponent[CameraRig]()
