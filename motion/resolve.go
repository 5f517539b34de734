package motion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/common"
	"github.com/milk9111/gravwalk/orient"
)

// Velocity holds the two independent contributions of a command. The
// caller picks which one to apply from the jump and grounded state.
type Velocity struct {
	Planar   mgl64.Vec3
	Vertical mgl64.Vec3
}

// Resolve maps cmd onto the frame b. Planar is -(u*x + w*z) normalized and
// scaled by speed; positive input moves against the basis axes. Vertical is
// v*y*jumpSpeed.
func Resolve(cmd Command, b orient.Basis, speed, jumpSpeed float64) Velocity {
	return Velocity{
		Planar:   PlanarVelocity(cmd.Displacement, b, speed),
		Vertical: VerticalVelocity(cmd.Displacement, b, jumpSpeed),
	}
}

// PlanarVelocity is the UW-plane component of Resolve.
func PlanarVelocity(d mgl64.Vec3, b orient.Basis, speed float64) mgl64.Vec3 {
	left := b.U.Mul(d[0])
	back := b.W.Mul(d[2])
	dir, ok := common.Normalize(left.Add(back).Mul(-1))
	if !ok {
		return mgl64.Vec3{}
	}
	return dir.Mul(speed)
}

// VerticalVelocity is the V component of Resolve.
func VerticalVelocity(d mgl64.Vec3, b orient.Basis, jumpSpeed float64) mgl64.Vec3 {
	return b.V.Mul(d[1]).Mul(jumpSpeed)
}

// SplitVertical separates vel into its component along up and the rest.
func SplitVertical(vel, up mgl64.Vec3) (vertical, horizontal mgl64.Vec3) {
	vertical = up.Mul(vel.Dot(up))
	return vertical, vel.Sub(vertical)
}
