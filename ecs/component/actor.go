package component

import "github.com/milk9111/gravwalk/actor"

// Actor binds an ECS entity to its gravity-aligned actor. Prefix is the
// name prefix it was spawned with, used to match reloaded tuning.
type Actor struct {
	Entity *actor.Entity
	Prefix string
}

var ActorComponent = NewComponent[Actor]()
