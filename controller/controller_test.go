package controller

import (
	"testing"

	"github.com/milk9111/gravwalk/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdle(t *testing.T) {
	_, ok := Idle{}.Next(7)
	assert.False(t, ok)
}

func TestQueue(t *testing.T) {
	q := NewQueue(motion.NewCommand(1, 0, 0), motion.NewCommand(0, 1, 0))
	q.Push(motion.Command{Test: true})
	require.Equal(t, 3, q.Len())

	want := []motion.Command{motion.NewCommand(1, 0, 0), motion.NewCommand(0, 1, 0), {Test: true}}
	for i, w := range want {
		got, ok := q.Next(uint64(i))
		require.True(t, ok)
		assert.Equal(t, w, got)
	}
	_, ok := q.Next(3)
	assert.False(t, ok)
}

func TestRepeat(t *testing.T) {
	r := Repeat{Command: motion.NewCommand(0, 0, 1)}
	for tick := uint64(0); tick < 3; tick++ {
		cmd, ok := r.Next(tick)
		require.True(t, ok)
		assert.Equal(t, motion.NewCommand(0, 0, 1), cmd)
	}
}

const hopScript = `
z = 1
if tick % 30 == 0 {
	y = 1
}
if tick >= 90 {
	active = false
}
`

func TestScriptCommands(t *testing.T) {
	s, err := NewScript("hop", []byte(hopScript))
	require.NoError(t, err)

	cases := []struct {
		tick   uint64
		want   motion.Command
		active bool
	}{
		{0, motion.NewCommand(0, 1, 1), true},
		{1, motion.NewCommand(0, 0, 1), true},
		{30, motion.NewCommand(0, 1, 1), true},
		{90, motion.Command{}, false},
	}
	for _, c := range cases {
		cmd, ok := s.Next(c.tick)
		assert.Equal(t, c.active, ok, "tick %d", c.tick)
		assert.Equal(t, c.want, cmd, "tick %d", c.tick)
	}
	assert.NoError(t, s.Err())
}

func TestScriptStatePersists(t *testing.T) {
	s, err := NewScript("count", []byte(`
n := state.n
if n == undefined { n = 0 }
state.n = n + 1
x = state.n
test = true
`))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		cmd, ok := s.Next(uint64(i))
		require.True(t, ok)
		assert.Equal(t, float64(i), cmd.Displacement.X())
		assert.True(t, cmd.Test)
	}
}

func TestScriptCompileError(t *testing.T) {
	_, err := NewScript("broken", []byte(`x = (`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "controller: compile broken")
}

func TestScriptRuntimeErrorLatches(t *testing.T) {
	s, err := NewScript("boom", []byte(`
if tick == 2 {
	x = 1 / 0
}
z = 1
`))
	require.NoError(t, err)

	_, ok := s.Next(1)
	require.True(t, ok)

	_, ok = s.Next(2)
	require.False(t, ok)
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "tick 2")

	_, ok = s.Next(3)
	assert.False(t, ok, "failed script stays idle")

	require.NoError(t, s.Reload([]byte(`z = -1`)))
	cmd, ok := s.Next(4)
	require.True(t, ok)
	assert.Equal(t, motion.NewCommand(0, 0, -1), cmd)
}

func TestScriptDivisionByZeroLatches(t *testing.T) {
	s, err := NewScript("divide", []byte("d := 0\nx = 1 / d"))
	require.NoError(t, err)

	var ok bool
	require.NotPanics(t, func() { _, ok = s.Next(0) })
	assert.False(t, ok)
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "controller: run divide at tick 0")
}

func TestScriptReloadKeepsOldProgramOnError(t *testing.T) {
	s, err := NewScript("walk", []byte(`x = 1`))
	require.NoError(t, err)

	require.Error(t, s.Reload([]byte(`x = `)))
	cmd, ok := s.Next(0)
	require.True(t, ok)
	assert.Equal(t, motion.NewCommand(1, 0, 0), cmd)
}
