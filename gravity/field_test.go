package gravity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		position   mgl64.Vec3
		attractors []mgl64.Vec3
		magnitude  float64
		want       mgl64.Vec3
	}{
		{"no_attractors", mgl64.Vec3{1, 2, 3}, nil, 9.8, mgl64.Vec3{}},
		{"above_origin", mgl64.Vec3{0, 10, 0}, []mgl64.Vec3{{0, 0, 0}}, 9.8, mgl64.Vec3{0, -9.8, 0}},
		{"beside_attractor", mgl64.Vec3{5, 0, 0}, []mgl64.Vec3{{0, 0, 0}}, 2, mgl64.Vec3{-2, 0, 0}},
		{"first_attractor_wins", mgl64.Vec3{0, 0, 4}, []mgl64.Vec3{{0, 0, 0}, {0, 0, 100}}, 1, mgl64.Vec3{0, 0, -1}},
		{"on_attractor", mgl64.Vec3{3, 3, 3}, []mgl64.Vec3{{3, 3, 3}}, 9.8, mgl64.Vec3{}},
		{"zero_magnitude", mgl64.Vec3{0, 10, 0}, []mgl64.Vec3{{0, 0, 0}}, 0, mgl64.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(c.position, c.attractors, c.magnitude)
			assert.InDeltaSlice(t, c.want[:], got[:], 1e-12)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	f := NewField(9.8, mgl64.Vec3{1.25, -3.5, 7})
	pos := mgl64.Vec3{-4.1, 12.7, 0.3}

	first := f.At(pos)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, f.At(pos))
	}
}

func TestFieldZeroAndClone(t *testing.T) {
	require.True(t, Field{}.Zero())
	require.True(t, NewField(0, mgl64.Vec3{}).Zero())

	f := NewField(9.8, mgl64.Vec3{0, 0, 0})
	require.False(t, f.Zero())

	c := f.Clone()
	c.Attractors[0] = mgl64.Vec3{1, 1, 1}
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, f.Attractors[0])
}
