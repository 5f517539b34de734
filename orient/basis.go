// Package orient derives an entity's local frame from gravity and a look
// target.
package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/common"
)

// minProjected is the shortest look direction, after removing its up
// component, that still defines a heading.
const minProjected = 1e-6

// Basis is an entity-local frame: U is right, V is up and W is backward.
// It is recomputed each tick and never mutated in place.
type Basis struct {
	U mgl64.Vec3
	V mgl64.Vec3
	W mgl64.Vec3
}

// Input is everything Compute needs for one frame.
type Input struct {
	Position mgl64.Vec3
	// Up is the static up vector used when gravity does not apply.
	Up     mgl64.Vec3
	Target mgl64.Vec3
	// Gravity is the vector acting on the entity this tick.
	Gravity        mgl64.Vec3
	PhysicsEnabled bool
	// Previous is the last completed frame, the zero Basis on the first tick.
	Previous Basis
	// SkipProjection keeps the raw look direction instead of projecting it
	// onto the plane orthogonal to V.
	SkipProjection bool
}

// Compute derives the frame described by in.
func Compute(in Input) Basis {
	v := UpVector(in.Up, in.Gravity, in.PhysicsEnabled)
	w := BackwardVector(in.Position, in.Target, v, !in.SkipProjection, in.Previous.W)
	return Basis{
		U: RightVector(w, v),
		V: v,
		W: w,
	}
}

// UpVector returns normalize(staticUp) when physics is off or gravity is
// zero, and normalize(-gravity) otherwise.
func UpVector(staticUp, gravity mgl64.Vec3, physicsEnabled bool) mgl64.Vec3 {
	if !physicsEnabled || common.IsZero(gravity) {
		if up, ok := common.Normalize(staticUp); ok {
			return up
		}
		return mgl64.Vec3{0, 1, 0}
	}
	if up, ok := common.Normalize(gravity.Mul(-1)); ok {
		return up
	}
	if up, ok := common.Normalize(staticUp); ok {
		return up
	}
	return mgl64.Vec3{0, 1, 0}
}

// BackwardVector points from position toward target. With project set the
// component along v is removed so the result stays orthogonal to v. When
// the direction is undefined the previous backward vector is reused, and
// failing that a fixed perpendicular of v.
func BackwardVector(position, target, v mgl64.Vec3, project bool, previous mgl64.Vec3) mgl64.Vec3 {
	if w, ok := backward(target.Sub(position), v, project); ok {
		return w
	}
	if w, ok := backward(previous, v, true); ok {
		return w
	}
	return AnOrthogonal(v)
}

func backward(d, v mgl64.Vec3, project bool) (mgl64.Vec3, bool) {
	w, ok := common.Normalize(d)
	if !ok {
		return mgl64.Vec3{}, false
	}
	if !project {
		// an unprojected direction still must not be parallel to up
		if v.Cross(w).Len() < minProjected {
			return mgl64.Vec3{}, false
		}
		return w, true
	}
	cosTheta := w.Dot(v)
	projected := w.Sub(v.Mul(cosTheta))
	if projected.Len() < minProjected {
		return mgl64.Vec3{}, false
	}
	return common.Normalize(projected)
}

// RightVector returns cross(w, v). The operand order fixes the handedness
// of lateral input.
func RightVector(w, v mgl64.Vec3) mgl64.Vec3 {
	return w.Cross(v)
}

// AnOrthogonal returns a unit vector orthogonal to forward, preferring the
// horizontal candidate (forward.z, 0, -forward.x).
func AnOrthogonal(forward mgl64.Vec3) mgl64.Vec3 {
	if out, ok := common.Normalize(mgl64.Vec3{forward[2], 0, -forward[0]}); ok {
		return out
	}
	if out, ok := common.Normalize(forward.Cross(mgl64.Vec3{1, 0, 0})); ok {
		return out
	}
	return mgl64.Vec3{0, 0, 1}
}

// Rotation is the right-handed look rotation facing -W with V up: local +Y
// maps to V and local +Z maps to W.
func (b Basis) Rotation() mgl64.Quat {
	m := mgl64.Mat3FromCols(b.V.Cross(b.W), b.V, b.W)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// Orthonormal reports whether the three axes are unit length and pairwise
// orthogonal within eps.
func (b Basis) Orthonormal(eps float64) bool {
	for _, axis := range []mgl64.Vec3{b.U, b.V, b.W} {
		if math.Abs(axis.Len()-1) > eps {
			return false
		}
	}
	return math.Abs(b.U.Dot(b.V)) <= eps &&
		math.Abs(b.U.Dot(b.W)) <= eps &&
		math.Abs(b.V.Dot(b.W)) <= eps
}

// Valid reports whether no axis is zero or carries NaN.
func (b Basis) Valid() bool {
	for _, axis := range []mgl64.Vec3{b.U, b.V, b.W} {
		if !common.Finite(axis) || common.NearZero(axis) {
			return false
		}
	}
	return true
}
