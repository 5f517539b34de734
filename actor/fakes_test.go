package actor

import "github.com/go-gl/mathgl/mgl64"

type fakeBody struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	rotation mgl64.Quat
	sleeping bool

	calls    []string
	impulses []mgl64.Vec3
}

func newFakeBody() *fakeBody {
	return &fakeBody{rotation: mgl64.QuatIdent()}
}

func (b *fakeBody) Sleep() {
	b.sleeping = true
	b.calls = append(b.calls, "sleep")
}

func (b *fakeBody) WakeUp() {
	b.sleeping = false
	b.calls = append(b.calls, "wake")
}

func (b *fakeBody) ApplyImpulse(impulse, at mgl64.Vec3) {
	b.impulses = append(b.impulses, impulse)
	b.velocity = b.velocity.Add(impulse)
	b.calls = append(b.calls, "impulse")
}

func (b *fakeBody) SetLinearVelocity(v mgl64.Vec3) {
	b.velocity = v
	b.calls = append(b.calls, "set_velocity")
}

func (b *fakeBody) LinearVelocity() mgl64.Vec3 { return b.velocity }

func (b *fakeBody) Position() mgl64.Vec3 { return b.position }

func (b *fakeBody) SetPosition(p mgl64.Vec3) { b.position = p }

func (b *fakeBody) SetRotation(q mgl64.Quat) {
	b.rotation = q
	b.calls = append(b.calls, "rotate")
}

func (b *fakeBody) reset() { b.calls = nil }

type fakeGround struct {
	onObject bool
}

func (g *fakeGround) ProvidesGroundContact() bool { return true }
func (g *fakeGround) OnObject() bool              { return g.onObject }
func (g *fakeGround) SetOnObject(v bool)          { g.onObject = v }

type fakeBox struct{}

func (fakeBox) ProvidesGroundContact() bool { return false }

type fakeCamera struct {
	up    mgl64.Vec3
	count int
}

func (c *fakeCamera) SetUpVector(up mgl64.Vec3) {
	c.up = up
	c.count++
}
