package motion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravwalk/orient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame for a zero-gravity entity at the origin looking at -Z.
var flat = orient.Basis{
	U: mgl64.Vec3{1, 0, 0},
	V: mgl64.Vec3{0, 1, 0},
	W: mgl64.Vec3{0, 0, -1},
}

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-9, "want %v got %v", want, got)
}

func TestResolvePlanar(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want mgl64.Vec3
	}{
		{"strafe_positive", NewCommand(1, 0, 0), mgl64.Vec3{-5, 0, 0}},
		{"strafe_negative", NewCommand(-1, 0, 0), mgl64.Vec3{5, 0, 0}},
		{"forward_positive", NewCommand(0, 0, 1), mgl64.Vec3{0, 0, 5}},
		{"forward_negative", NewCommand(0, 0, -1), mgl64.Vec3{0, 0, -5}},
		{"diagonal_is_normalized", NewCommand(3, 0, 3), mgl64.Vec3{-5 / 1.4142135623730951, 0, 5 / 1.4142135623730951}},
		{"no_lateral_input", NewCommand(0, 1, 0), mgl64.Vec3{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(c.cmd, flat, 5, 8)
			assertVec(t, c.want, got.Planar)
		})
	}
}

func TestResolveVertical(t *testing.T) {
	got := Resolve(NewCommand(0, 1, 0), flat, 5, 8)
	assertVec(t, mgl64.Vec3{0, 8, 0}, got.Vertical)

	tilted := orient.Basis{U: mgl64.Vec3{0, 0, 1}, V: mgl64.Vec3{-1, 0, 0}, W: mgl64.Vec3{0, 1, 0}}
	got = Resolve(NewCommand(2, 0.5, 0), tilted, 5, 8)
	assertVec(t, mgl64.Vec3{-4, 0, 0}, got.Vertical)
	assertVec(t, mgl64.Vec3{0, 0, -5}, got.Planar)
}

func TestCommandIntent(t *testing.T) {
	assert.True(t, NewCommand(1, 0, 0).Lateral())
	assert.True(t, NewCommand(0, 0, -1).Lateral())
	assert.False(t, NewCommand(0, 1, 0).Lateral())
	assert.True(t, NewCommand(0, 1, 0).Vertical())
}

func TestJumpAccounting(t *testing.T) {
	for _, count := range []int{0, 1, 2, 5} {
		j := NewJumpState(count)
		for n := 1; n <= count+2; n++ {
			ok := j.TryConsume()
			require.Equal(t, n <= count, ok, "count=%d jump=%d", count, n)
			want := count - n
			if want < 0 {
				want = 0
			}
			require.Equal(t, want, j.Left)
		}
		j.Refill()
		require.Equal(t, count, j.Left)
	}
}

func TestNegativeJumpCountClamps(t *testing.T) {
	j := NewJumpState(-3)
	assert.Equal(t, 0, j.Left)
	assert.False(t, j.TryConsume())
}

func TestSplitVertical(t *testing.T) {
	v, h := SplitVertical(mgl64.Vec3{3, -4, 5}, mgl64.Vec3{0, 1, 0})
	assertVec(t, mgl64.Vec3{0, -4, 0}, v)
	assertVec(t, mgl64.Vec3{3, 0, 5}, h)
}
