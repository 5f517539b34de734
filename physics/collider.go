package physics

// BoxCollider is a plain collision volume with no ground sensing.
type BoxCollider struct {
	Width  float64
	Height float64
	Depth  float64
}

func (c *BoxCollider) ProvidesGroundContact() bool { return false }

// JumpCollider senses whether its body rests on a supporting surface. The
// engine sets OnObject on contact; the entity clears it when it jumps.
type JumpCollider struct {
	onObject bool
	// contacts counts supporting contacts seen during the last step.
	contacts int
}

func NewJumpCollider() *JumpCollider {
	return &JumpCollider{}
}

func (c *JumpCollider) ProvidesGroundContact() bool { return true }

func (c *JumpCollider) OnObject() bool {
	return c != nil && c.onObject
}

func (c *JumpCollider) SetOnObject(onObject bool) {
	if c == nil {
		return
	}
	c.onObject = onObject
}

// Contacts returns how many supporting contacts the last step reported.
func (c *JumpCollider) Contacts() int {
	if c == nil {
		return 0
	}
	return c.contacts
}

func (c *JumpCollider) beginStep() {
	if c == nil {
		return
	}
	c.contacts = 0
}

func (c *JumpCollider) touch() {
	if c == nil {
		return
	}
	c.contacts++
	c.onObject = true
}
