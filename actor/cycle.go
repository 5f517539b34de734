package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/common"
	"github.com/milk9111/gravwalk/orient"
)

// Update advances the entity's frame one tick without touching input:
// position is read back from the body (after the first completed update),
// gravity and the frame are recomputed and the result is aligned onto the
// camera and body.
func (e *Entity) Update(target mgl64.Vec3) {
	e.syncPosition()
	e.resolveGravity()
	e.target = target
	e.basis = orient.Compute(orient.Input{
		Position:       e.position,
		Up:             e.up,
		Target:         e.target,
		Gravity:        e.gravity,
		PhysicsEnabled: e.ctx.PhysicsEnabled(),
		Previous:       e.basis,
		SkipProjection: !e.project,
	})
	e.align()
	e.updatedOnce = true
}

// UpdateWithGravity runs UpdateBracketed and then applies gravity as an
// impulse.
func (e *Entity) UpdateWithGravity(target mgl64.Vec3) error {
	if err := e.UpdateBracketed(target); err != nil {
		return err
	}
	e.ApplyGravity()
	return nil
}

// UpdateBracketed runs Update inside a physics-write section. A tick that
// also processes input calls Move next and ApplyGravity last.
func (e *Entity) UpdateBracketed(target mgl64.Vec3) error {
	return WriteSection(e.body, func() error {
		e.Update(target)
		return nil
	})
}

func (e *Entity) syncPosition() {
	if e.updatedOnce && e.body != nil {
		e.position = e.body.Position()
	}
}

func (e *Entity) resolveGravity() {
	e.gravity = e.ctx.Gravity().At(e.position)
	if !e.gravityLogged {
		e.gravityLogged = true
		e.log.Debug().
			Floats64("gravity", e.gravity[:]).
			Floats64("position", e.position[:]).
			Msg("initial gravity")
	}
}

func (e *Entity) align() {
	if e.camera != nil {
		e.camera.SetUpVector(e.basis.V)
	}
	if e.body != nil {
		e.body.SetRotation(e.basis.Rotation())
	}
}

// ApplyGravity pushes the body along the gravity resolved on the last
// update. Zero gravity is skipped so the body is not woken for nothing.
func (e *Entity) ApplyGravity() {
	if e.body == nil || common.IsZero(e.gravity) {
		return
	}
	e.body.ApplyImpulse(e.gravity, e.position)
}
