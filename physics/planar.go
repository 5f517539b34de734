package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravwalk/actor"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeActor
)

// PlanarSpace is a side-view lane: bodies move in the XY plane and keep a
// fixed Z depth. Gravity comes from entity impulses, so the Chipmunk space
// gravity stays zero.
type PlanarSpace struct {
	space *cp.Space
	depth float64

	shapeToBody map[*cp.Shape]*PlanarBody
	bodies      []*PlanarBody

	log zerolog.Logger
}

func NewPlanarSpace(depth float64) *PlanarSpace {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	ps := &PlanarSpace{
		space:       space,
		depth:       depth,
		shapeToBody: make(map[*cp.Shape]*PlanarBody),
		log:         log.With().Str("engine", "planar").Logger(),
	}
	ps.setupHandlers()
	return ps
}

// Space returns the underlying Chipmunk space.
func (ps *PlanarSpace) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// AddSegment adds static ground between a and b.
func (ps *PlanarSpace) AddSegment(a, b mgl64.Vec2, radius float64) {
	shape := cp.NewSegment(ps.space.StaticBody, toCP(a), toCP(b), radius)
	ps.addStatic(shape)
}

// AddDisc adds a static circle, the planar counterpart of a planet.
func (ps *PlanarSpace) AddDisc(center mgl64.Vec2, radius float64) {
	shape := cp.NewCircle(ps.space.StaticBody, radius, toCP(center))
	ps.addStatic(shape)
}

func (ps *PlanarSpace) addStatic(shape *cp.Shape) {
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	ps.space.AddShape(shape)
}

func (ps *PlanarSpace) Spawn(cfg BodyConfig) (actor.Body, actor.Collider) {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(cp.Vector{X: cfg.Position.X(), Y: cfg.Position.Y()})
	shape := cp.NewCircle(cpBody, cfg.Radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeActor)

	ps.space.AddBody(cpBody)
	ps.space.AddShape(shape)

	collider, jc := colliderFor(cfg)
	b := &PlanarBody{
		body:     cpBody,
		shape:    shape,
		depth:    ps.depth,
		rotation: mgl64.QuatIdent(),
		collider: jc,
	}
	if cfg.Damping > 0 && cfg.Damping < 1 {
		damping := cfg.Damping
		b.integrate = func(body *cp.Body, gravity cp.Vector, _ float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity, math.Pow(damping, dt), dt)
		}
	}
	b.thaw()
	ps.shapeToBody[shape] = b
	ps.bodies = append(ps.bodies, b)
	return b, collider
}

func (ps *PlanarSpace) Despawn(body actor.Body) error {
	b, ok := body.(*PlanarBody)
	if !ok || ps.shapeToBody[b.shape] != b {
		return ErrForeignBody
	}
	ps.space.RemoveShape(b.shape)
	ps.space.RemoveBody(b.body)
	delete(ps.shapeToBody, b.shape)
	for i, other := range ps.bodies {
		if other == b {
			ps.bodies = append(ps.bodies[:i], ps.bodies[i+1:]...)
			break
		}
	}
	return nil
}

func (ps *PlanarSpace) Bodies() int { return len(ps.bodies) }

// Step advances the Chipmunk simulation.
func (ps *PlanarSpace) Step(dt float64) {
	if ps == nil || ps.space == nil || dt <= 0 {
		return
	}
	for _, b := range ps.bodies {
		b.collider.beginStep()
	}
	ps.space.Step(dt)
	for _, b := range ps.bodies {
		if !b.frozen && b.collider.Contacts() == 0 {
			b.collider.SetOnObject(false)
		}
	}
}

func (ps *PlanarSpace) setupHandlers() {
	groundHandler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PlanarSpace)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		b, okA := world.shapeToBody[shapeA]
		n := arb.Normal()
		if !okA {
			b, ok = world.shapeToBody[shapeB]
			if !ok {
				return true
			}
			n = n.Neg()
		}
		// n points from the body into the surface.
		up := upAxis(b.rotation)
		if n.Neg().Dot(cp.Vector{X: up.X(), Y: up.Y()}) >= supportCos {
			b.collider.touch()
		}
		return true
	}
}

// PlanarBody is a Chipmunk circle exposed as a 3D body. Z components of
// incoming vectors are dropped.
type PlanarBody struct {
	body  *cp.Body
	shape *cp.Shape
	depth float64

	rotation  mgl64.Quat
	frozen    bool
	integrate cp.BodyVelocityFunc
	collider  *JumpCollider
}

// Body returns the underlying Chipmunk body.
func (b *PlanarBody) Body() *cp.Body { return b.body }

func (b *PlanarBody) Sleep() {
	b.frozen = true
	b.body.SetVelocityUpdateFunc(func(*cp.Body, cp.Vector, float64, float64) {})
	b.body.SetPositionUpdateFunc(func(*cp.Body, float64) {})
}

func (b *PlanarBody) WakeUp() {
	if b.frozen {
		b.thaw()
	}
	b.body.Activate()
}

func (b *PlanarBody) thaw() {
	b.frozen = false
	if b.integrate != nil {
		b.body.SetVelocityUpdateFunc(b.integrate)
	} else {
		b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
	}
	b.body.SetPositionUpdateFunc(cp.BodyUpdatePosition)
}

func (b *PlanarBody) IsSleeping() bool { return b.frozen }

func (b *PlanarBody) ApplyImpulse(impulse, at mgl64.Vec3) {
	b.WakeUp()
	b.body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X(), Y: impulse.Y()}, cp.Vector{X: at.X(), Y: at.Y()})
}

func (b *PlanarBody) SetLinearVelocity(v mgl64.Vec3) {
	b.body.SetVelocity(v.X(), v.Y())
}

func (b *PlanarBody) LinearVelocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, v.Y, 0}
}

func (b *PlanarBody) Position() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, p.Y, b.depth}
}

func (b *PlanarBody) SetPosition(p mgl64.Vec3) {
	b.body.SetPosition(cp.Vector{X: p.X(), Y: p.Y()})
}

func (b *PlanarBody) Rotation() mgl64.Quat { return b.rotation }

func (b *PlanarBody) SetRotation(q mgl64.Quat) { b.rotation = q }

func toCP(v mgl64.Vec2) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}
