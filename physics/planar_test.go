package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanarBodyProjectsOntoLane(t *testing.T) {
	ps := NewPlanarSpace(3)
	body, _ := ps.Spawn(BodyConfig{Position: mgl64.Vec3{1, 2, 7}, Mass: 2, Radius: 0.5})

	assertVec(t, mgl64.Vec3{1, 2, 3}, body.Position())

	body.SetLinearVelocity(mgl64.Vec3{1, 2, 9})
	assertVec(t, mgl64.Vec3{1, 2, 0}, body.LinearVelocity())

	body.SetPosition(mgl64.Vec3{4, 5, 6})
	assertVec(t, mgl64.Vec3{4, 5, 3}, body.Position())
}

func TestPlanarBodyImpulse(t *testing.T) {
	ps := NewPlanarSpace(0)
	body, _ := ps.Spawn(BodyConfig{Mass: 2, Radius: 0.5})
	pb := body.(*PlanarBody)
	pb.Sleep()

	pb.ApplyImpulse(mgl64.Vec3{4, -2, 9}, pb.Position())
	assert.False(t, pb.IsSleeping())
	assertVec(t, mgl64.Vec3{2, -1, 0}, pb.LinearVelocity())
}

func TestPlanarBodySleepFreezes(t *testing.T) {
	ps := NewPlanarSpace(0)
	body, _ := ps.Spawn(BodyConfig{Position: mgl64.Vec3{0, 5, 0}, Mass: 1, Radius: 0.5})
	pb := body.(*PlanarBody)

	pb.Sleep()
	pb.SetLinearVelocity(mgl64.Vec3{10, 0, 0})
	require.True(t, pb.IsSleeping())

	ps.Step(0.1)
	assertVec(t, mgl64.Vec3{0, 5, 0}, pb.Position())

	pb.WakeUp()
	ps.Step(0.1)
	assert.InDelta(t, 1.0, pb.Position().X(), 1e-9)
}

func TestPlanarGroundContact(t *testing.T) {
	ps := NewPlanarSpace(0)
	ps.AddSegment(mgl64.Vec2{-10, 0}, mgl64.Vec2{10, 0}, 0)
	body, collider := ps.Spawn(BodyConfig{Position: mgl64.Vec3{0, 0.45, 0}, Mass: 1, Radius: 0.5, Ground: true})
	jc := collider.(*JumpCollider)
	body.SetLinearVelocity(mgl64.Vec3{0, -1, 0})

	ps.Step(1.0 / 60)
	assert.True(t, jc.OnObject())
	assert.Positive(t, jc.Contacts())

	body.SetPosition(mgl64.Vec3{0, 5, 0})
	body.SetLinearVelocity(mgl64.Vec3{0, 1, 0})
	ps.Step(1.0 / 60)
	assert.False(t, jc.OnObject())
}

func TestPlanarCeilingIsNotGround(t *testing.T) {
	ps := NewPlanarSpace(0)
	ps.AddSegment(mgl64.Vec2{-10, 1}, mgl64.Vec2{10, 1}, 0)
	_, collider := ps.Spawn(BodyConfig{Position: mgl64.Vec3{0, 0.55, 0}, Mass: 1, Radius: 0.5, Ground: true})

	ps.Step(1.0 / 60)
	assert.False(t, collider.(*JumpCollider).OnObject())
}

func TestPlanarDiscGround(t *testing.T) {
	ps := NewPlanarSpace(0)
	ps.AddDisc(mgl64.Vec2{0, 0}, 10)
	_, collider := ps.Spawn(BodyConfig{Position: mgl64.Vec3{0, 10.45, 0}, Mass: 1, Radius: 0.5, Ground: true})

	ps.Step(1.0 / 60)
	assert.True(t, collider.(*JumpCollider).OnObject())
}

func TestPlanarDespawn(t *testing.T) {
	ps := NewPlanarSpace(0)
	body, _ := ps.Spawn(BodyConfig{Radius: 0.5})
	require.Equal(t, 1, ps.Bodies())

	require.NoError(t, ps.Despawn(body))
	assert.Zero(t, ps.Bodies())
	assert.ErrorIs(t, ps.Despawn(body), ErrForeignBody)
	assert.ErrorIs(t, ps.Despawn(NewRigidBody(1, 1)), ErrForeignBody)
}
