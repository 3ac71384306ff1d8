package component

// Camera views the world from its entity's Transform, which holds the
// world-space top-left corner of the view.
type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64
	Snapped    bool
}

var CameraComponent = NewComponent[Camera]()
