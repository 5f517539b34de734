package system

import (
	"github.com/milk9111/gravwalk/ecs"
	"github.com/milk9111/gravwalk/ecs/component"
)

// CameraSystem keeps chase cameras behind their actors. Behind is along the
// actor's backward axis and above is along its up axis. A rig with Lag
// eases toward that point instead of snapping.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.CameraRigComponent.Kind(), func(_ ecs.Entity, a *component.Actor, rig *component.CameraRig) {
		if a.Entity == nil || !a.Entity.UpdatedOnce() {
			return
		}
		b := a.Entity.Basis()
		pos := a.Entity.Position()
		rig.LookAt = pos
		rig.Follow(pos.Add(b.W.Mul(rig.Distance)).Add(b.V.Mul(rig.Height)))
	})
}
