// Package motion turns per-tick input into velocity contributions and keeps
// jump accounting.
package motion

import "github.com/go-gl/mathgl/mgl64"

// Command is one tick of movement input. Displacement.X is lateral strafe,
// Y is vertical (jump) and Z is forward/back. Test marks the zero-gravity
// convenience mode in which the entity counts as grounded.
type Command struct {
	Displacement mgl64.Vec3
	Test         bool
}

// NewCommand builds a command from its three axes.
func NewCommand(x, y, z float64) Command {
	return Command{Displacement: mgl64.Vec3{x, y, z}}
}

// Lateral reports whether the command carries strafe or forward intent.
func (c Command) Lateral() bool {
	return c.Displacement[0] != 0 || c.Displacement[2] != 0
}

// Vertical reports whether the command asks for a jump.
func (c Command) Vertical() bool {
	return c.Displacement[1] != 0
}
