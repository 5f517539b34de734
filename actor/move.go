package actor

import (
	"github.com/milk9111/gravwalk/motion"
)

// Action is what a processed command did to the body.
type Action int

const (
	ActionIdle Action = iota
	ActionJump
	ActionWalk
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionWalk:
		return "walk"
	default:
		return "idle"
	}
}

// Move applies one input command against the current frame. It fails with
// ErrPhysicsDisabled, before touching any state, when the scene has physics
// off.
//
// Grounded entities (or any entity in zero-gravity test mode) get their
// jumps refilled. A jump replaces the body's velocity with the vertical
// component. Lateral input keeps the body's velocity along up and replaces
// the rest with the planar velocity. No input parks the body: it sleeps when
// grounded and keeps only its velocity along up.
func (e *Entity) Move(cmd motion.Command) (Action, error) {
	if !e.ctx.PhysicsEnabled() {
		return ActionIdle, ErrPhysicsDisabled
	}
	if e.body == nil {
		return ActionIdle, ErrNoBody
	}

	vel := motion.Resolve(cmd, e.basis, e.Speed, e.JumpSpeed)
	zeroG := e.ctx.Gravity().Magnitude == 0
	grounded := e.Grounded() || (cmd.Test && zeroG)

	if grounded {
		e.jumps.Refill()
	}

	if cmd.Vertical() && e.jumps.TryConsume() {
		e.body.WakeUp()
		e.body.SetLinearVelocity(vel.Vertical)
		e.setGrounded(false)
		e.log.Debug().Int("jumps_left", e.jumps.Left).Msg("jump")
		return ActionJump, nil
	}

	if cmd.Lateral() {
		e.body.WakeUp()
		vertical, _ := motion.SplitVertical(e.body.LinearVelocity(), e.basis.V)
		e.body.SetLinearVelocity(vel.Planar.Add(vertical))
		return ActionWalk, nil
	}

	if grounded {
		e.body.Sleep()
	} else if cmd.Test && !zeroG {
		e.body.WakeUp()
	}
	vertical, _ := motion.SplitVertical(e.body.LinearVelocity(), e.basis.V)
	e.body.SetLinearVelocity(vertical)
	return ActionIdle, nil
}
