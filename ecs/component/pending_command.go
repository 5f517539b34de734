package component

import "github.com/milk9111/gravwalk/motion"

// PendingCommand holds the command polled this tick, if any.
type PendingCommand struct {
	Command motion.Command
	Present bool
}

var PendingCommandComponent = NewComponent[PendingCommand]()
