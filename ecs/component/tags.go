package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// GravityAligned actors run the gravity-applying update each tick instead
// of the plain frame update.
type GravityAligned struct{}

var GravityAlignedComponent = NewComponent[GravityAligned]()
