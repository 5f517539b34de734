package common

import "time"

const (
	// FPS is the fixed simulation rate.
	FPS = 60
	// TimeStep is the fixed simulation step in seconds.
	TimeStep = 1.0 / FPS
	// LockstepMaxSteps caps how many fixed steps one Advance call may run
	// before dropping the remaining accumulated time.
	LockstepMaxSteps = 4
)

// TickDuration is TimeStep as a time.Duration.
const TickDuration = time.Second / FPS
