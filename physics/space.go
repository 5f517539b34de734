package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/actor"
	"github.com/milk9111/gravwalk/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contactSlop lets a body resting exactly on a surface keep its contact.
const contactSlop = 1e-4

// Sphere is a static ball, typically a planet.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Plane is the static half-space below Normal·p = Offset.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// Space integrates RigidBody spheres against static spheres and planes.
type Space struct {
	bodies  []*RigidBody
	spheres []Sphere
	planes  []Plane

	// SleepSpeed and SleepTime control auto-sleep. A zero SleepSpeed
	// disables it.
	SleepSpeed float64
	SleepTime  float64

	log zerolog.Logger
}

func NewSpace() *Space {
	return &Space{
		SleepSpeed: 0.1,
		SleepTime:  1,
		log:        log.With().Str("engine", "space").Logger(),
	}
}

func (s *Space) AddSphere(center mgl64.Vec3, radius float64) {
	s.spheres = append(s.spheres, Sphere{Center: center, Radius: radius})
}

// AddPlane adds a static plane. The normal is normalized; a zero normal is
// ignored.
func (s *Space) AddPlane(normal mgl64.Vec3, offset float64) {
	n, ok := common.Normalize(normal)
	if !ok {
		return
	}
	s.planes = append(s.planes, Plane{Normal: n, Offset: offset})
}

func (s *Space) Add(b *RigidBody) {
	if b == nil {
		return
	}
	s.bodies = append(s.bodies, b)
}

// Remove drops b from the space. It reports whether b was present.
func (s *Space) Remove(b *RigidBody) bool {
	for i, other := range s.bodies {
		if other == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Space) Spawn(cfg BodyConfig) (actor.Body, actor.Collider) {
	b := NewRigidBody(cfg.Mass, cfg.Radius)
	b.SetPosition(cfg.Position)
	if cfg.Damping > 0 {
		b.Damping = cfg.Damping
	}
	collider, jc := colliderFor(cfg)
	b.Collider = jc
	s.Add(b)
	return b, collider
}

func (s *Space) Despawn(body actor.Body) error {
	b, ok := body.(*RigidBody)
	if !ok || !s.Remove(b) {
		return ErrForeignBody
	}
	return nil
}

func (s *Space) Bodies() int { return len(s.bodies) }

// Step advances every awake body by dt. Sleeping bodies do not move but
// still resolve contacts.
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range s.bodies {
		b.Collider.beginStep()
		if !b.sleeping {
			if b.Damping < 1 {
				b.velocity = b.velocity.Mul(math.Pow(math.Max(b.Damping, 0), dt))
			}
			b.position = b.position.Add(b.velocity.Mul(dt))
		}

		up := upAxis(b.rotation)
		for _, sp := range s.spheres {
			s.collideSphere(b, sp, up)
		}
		for _, pl := range s.planes {
			s.collidePlane(b, pl, up)
		}

		if b.sleeping {
			continue
		}
		if b.Collider.Contacts() == 0 {
			b.Collider.SetOnObject(false)
		}
		s.updateSleep(b, dt)
	}
}

func (s *Space) collideSphere(b *RigidBody, sp Sphere, up mgl64.Vec3) {
	d := b.position.Sub(sp.Center)
	dist := d.Len()
	pen := sp.Radius + b.Radius - dist
	if pen <= -contactSlop {
		return
	}
	n := up
	if dist > common.Epsilon {
		n = d.Mul(1 / dist)
	}
	s.resolve(b, n, pen, up)
}

func (s *Space) collidePlane(b *RigidBody, pl Plane, up mgl64.Vec3) {
	pen := b.Radius - (pl.Normal.Dot(b.position) - pl.Offset)
	if pen <= -contactSlop {
		return
	}
	s.resolve(b, pl.Normal, pen, up)
}

// resolve pushes b out along n and removes the velocity heading into the
// surface.
func (s *Space) resolve(b *RigidBody, n mgl64.Vec3, pen float64, up mgl64.Vec3) {
	if pen > 0 {
		b.position = b.position.Add(n.Mul(pen))
	}
	if vn := b.velocity.Dot(n); vn < 0 {
		b.velocity = b.velocity.Sub(n.Mul(vn))
	}
	if n.Dot(up) >= supportCos {
		b.Collider.touch()
	}
}

func (s *Space) updateSleep(b *RigidBody, dt float64) {
	if s.SleepSpeed <= 0 {
		return
	}
	if b.velocity.Len() >= s.SleepSpeed {
		b.idleTime = 0
		return
	}
	b.idleTime += dt
	if b.idleTime >= s.SleepTime {
		b.Sleep()
		s.log.Debug().Float64("idle", b.idleTime).Msg("body fell asleep")
	}
}
