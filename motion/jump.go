package motion

// JumpState counts the jumps an entity may still take before landing.
type JumpState struct {
	Count int
	Left  int
}

// NewJumpState starts with a full set of jumps.
func NewJumpState(count int) JumpState {
	if count < 0 {
		count = 0
	}
	return JumpState{Count: count, Left: count}
}

// Refill restores every jump, on landing or in zero-gravity test mode.
func (j *JumpState) Refill() {
	if j == nil {
		return
	}
	j.Left = j.Count
}

// CanJump reports whether a jump is available.
func (j *JumpState) CanJump() bool {
	return j != nil && j.Left > 0
}

// TryConsume spends one jump. It returns false and leaves the state
// untouched when none are left.
func (j *JumpState) TryConsume() bool {
	if !j.CanJump() {
		return false
	}
	j.Left--
	return true
}
