// Package controller produces per-tick motion commands for actors.
package controller

import (
	"github.com/milk9111/gravwalk/motion"
)

// Source yields the command for a tick. ok is false when there is no
// command this tick.
type Source interface {
	Next(tick uint64) (cmd motion.Command, ok bool)
}

// Failer is implemented by sources that can break at runtime.
type Failer interface {
	Err() error
}

// Idle never produces a command.
type Idle struct{}

func (Idle) Next(uint64) (motion.Command, bool) { return motion.Command{}, false }

// Queue replays commands in order, one per tick, then goes idle.
type Queue struct {
	cmds []motion.Command
}

func NewQueue(cmds ...motion.Command) *Queue {
	return &Queue{cmds: append([]motion.Command(nil), cmds...)}
}

func (q *Queue) Push(cmds ...motion.Command) {
	q.cmds = append(q.cmds, cmds...)
}

func (q *Queue) Len() int { return len(q.cmds) }

func (q *Queue) Next(uint64) (motion.Command, bool) {
	if len(q.cmds) == 0 {
		return motion.Command{}, false
	}
	cmd := q.cmds[0]
	q.cmds = q.cmds[1:]
	return cmd, true
}

// Repeat issues the same command every tick.
type Repeat struct {
	Command motion.Command
}

func (r Repeat) Next(uint64) (motion.Command, bool) { return r.Command, true }
