package component

import "github.com/jakecoffman/cp"

// SpringJoint is a damped spring between this entity's body and the body of
// Connected. The physics system keeps Constraint in the space only while
// Enabled and the owning body is dynamic.
type SpringJoint struct {
	Connected  EntityRef
	RestLength float64
	Stiffness  float64
	Damping    float64
	Enabled    bool

	Constraint *cp.Constraint
}

var SpringJointComponent = NewComponent[SpringJoint]()
