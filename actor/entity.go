// Package actor implements the per-tick update and move cycle of a
// gravity-aligned movable entity.
package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/motion"
	"github.com/milk9111/gravwalk/orient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options describe an entity at spawn.
type Options struct {
	Name     string
	Position mgl64.Vec3
	// Up is the static up vector used while gravity is zero.
	Up mgl64.Vec3
	// Target is the initial look target (negTarget).
	Target    mgl64.Vec3
	Speed     float64
	JumpSpeed float64
	JumpCount int
	// SkipProjection disables projecting the look direction onto the plane
	// orthogonal to up.
	SkipProjection bool
}

// DefaultOptions places an entity at the origin, up +Y, looking at +Z.
func DefaultOptions() Options {
	return Options{
		Up:        mgl64.Vec3{0, 1, 0},
		Target:    mgl64.Vec3{0, 0, 1},
		Speed:     5,
		JumpSpeed: 8,
		JumpCount: 1,
	}
}

// Entity is a movable actor whose up axis follows the scene's gravity.
type Entity struct {
	name string
	ctx  Context

	position mgl64.Vec3
	up       mgl64.Vec3
	target   mgl64.Vec3
	gravity  mgl64.Vec3
	basis    orient.Basis
	project  bool

	Speed     float64
	JumpSpeed float64
	jumps     motion.JumpState

	body     Body
	collider Collider
	camera   Camera

	updatedOnce   bool
	gravityLogged bool
	log           zerolog.Logger
}

// New creates an entity in ctx. The basis is not valid until the first
// Update.
func New(ctx Context, opts Options) (*Entity, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	e := &Entity{
		name:      opts.Name,
		ctx:       ctx,
		position:  opts.Position,
		up:        opts.Up,
		target:    opts.Target,
		project:   !opts.SkipProjection,
		Speed:     opts.Speed,
		JumpSpeed: opts.JumpSpeed,
		jumps:     motion.NewJumpState(opts.JumpCount),
		log:       log.With().Str("entity", opts.Name).Logger(),
	}
	return e, nil
}

func (e *Entity) Name() string { return e.name }

// Position is the last position read from the body, or the spawn position
// before the first completed update.
func (e *Entity) Position() mgl64.Vec3 { return e.position }

func (e *Entity) Up() mgl64.Vec3 { return e.up }

// Target is the current look target.
func (e *Entity) Target() mgl64.Vec3 { return e.target }

// Gravity is the gravity vector resolved on the last update.
func (e *Entity) Gravity() mgl64.Vec3 { return e.gravity }

// Basis is the frame computed on the last update.
func (e *Entity) Basis() orient.Basis { return e.basis }

// Jumps returns a copy of the jump accounting.
func (e *Entity) Jumps() motion.JumpState { return e.jumps }

// SetJumpCount changes the maximum jumps; remaining jumps are clamped.
func (e *Entity) SetJumpCount(n int) {
	if n < 0 {
		n = 0
	}
	e.jumps.Count = n
	if e.jumps.Left > n {
		e.jumps.Left = n
	}
}

func (e *Entity) Body() Body { return e.body }

// SetBody attaches the physics body. The body is moved to the entity's
// position.
func (e *Entity) SetBody(b Body) {
	e.body = b
	if b != nil {
		b.SetPosition(e.position)
	}
}

func (e *Entity) Collider() Collider { return e.collider }

func (e *Entity) SetCollider(c Collider) { e.collider = c }

func (e *Entity) Camera() Camera { return e.camera }

// SetCamera attaches a camera that follows the entity's up axis.
func (e *Entity) SetCamera(c Camera) {
	e.camera = c
	if c != nil && e.updatedOnce {
		c.SetUpVector(e.basis.V)
	}
}

// Grounded reports whether the collider currently rests on something.
func (e *Entity) Grounded() bool {
	gc, ok := groundContact(e.collider)
	return ok && gc.OnObject()
}

func (e *Entity) setGrounded(v bool) {
	if gc, ok := groundContact(e.collider); ok {
		gc.SetOnObject(v)
	}
}

// UpdatedOnce reports whether at least one update completed.
func (e *Entity) UpdatedOnce() bool { return e.updatedOnce }
