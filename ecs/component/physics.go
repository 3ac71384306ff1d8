package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime handles and collider configuration.
// A positive Radius makes a circle; otherwise Width and Height make a box.
//
// Kinematic is the requested body mode. The physics system switches the
// Chipmunk body type to match it every tick; while kinematic the body
// follows the entity's Transform.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	Kinematic  bool
	Sensor     bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
