package component

import "github.com/milk9111/gravwalk/controller"

type Controller struct {
	Source controller.Source
}

var ControllerComponent = NewComponent[Controller]()
