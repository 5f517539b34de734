// Package gravity resolves the gravity vector acting on a point from a set of
// attractors.
package gravity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/common"
)

// Field is a scene's gravity description. Only the first attractor pulls;
// the rest are carried for configuration round trips.
type Field struct {
	Attractors []mgl64.Vec3
	Magnitude  float64
}

// NewField creates a field pulling toward attractors with the given
// magnitude.
func NewField(magnitude float64, attractors ...mgl64.Vec3) Field {
	return Field{
		Attractors: append([]mgl64.Vec3(nil), attractors...),
		Magnitude:  magnitude,
	}
}

// At returns the gravity acting on position.
func (f Field) At(position mgl64.Vec3) mgl64.Vec3 {
	return Resolve(position, f.Attractors, f.Magnitude)
}

// Zero reports whether the field can never produce a non-zero vector.
func (f Field) Zero() bool {
	return len(f.Attractors) == 0 || f.Magnitude == 0
}

// Clone returns a copy that shares no memory with f.
func (f Field) Clone() Field {
	return NewField(f.Magnitude, f.Attractors...)
}

// Resolve returns normalize(attractors[0]-position)*magnitude. It returns the
// zero vector when there are no attractors or position sits on the first
// attractor.
func Resolve(position mgl64.Vec3, attractors []mgl64.Vec3, magnitude float64) mgl64.Vec3 {
	if len(attractors) == 0 {
		return mgl64.Vec3{}
	}
	dir, ok := common.Normalize(attractors[0].Sub(position))
	if !ok {
		return mgl64.Vec3{}
	}
	return dir.Mul(magnitude)
}
