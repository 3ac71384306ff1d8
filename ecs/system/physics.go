package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/logger"
	"go.uber.org/zap"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBall
)

type PhysicsSystem struct {
	space *cp.Space
	dt    float64
	log   *zap.Logger

	entities map[ecs.Entity]*bodyInfo
	springs  map[ecs.Entity]*springInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
	mass   float64
	moment float64
}

type springInfo struct {
	constraint *cp.Constraint
	active     bool
	a, b       ecs.Entity
}

func NewPhysicsSystem(log *zap.Logger) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return &PhysicsSystem{
		space:    space,
		dt:       1.0 / common.TPS,
		log:      logger.OrNop(log).Named("physics"),
		entities: make(map[ecs.Entity]*bodyInfo),
		springs:  make(map[ecs.Entity]*springInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.syncBodyModes(w)
	ps.syncSprings(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			if len(info.shapes) > 0 {
				bodyComp.Shape = info.shapes[0]
			}
			return
		}

		info := ps.createBodyInfo(transform, bodyComp, ecs.Has(w, e, component.BallTagComponent.Kind()))
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, isBall bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}
	center := cp.Vector{X: transform.X, Y: transform.Y}

	info := &bodyInfo{static: bodyComp.Static}

	var body *cp.Body
	switch {
	case bodyComp.Static:
		body = ps.space.StaticBody
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, width, height)
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		}
		info.mass = mass
		info.moment = moment

		if bodyComp.Kinematic {
			body = cp.NewKinematicBody()
		} else {
			body = cp.NewBody(mass, moment)
		}
		body.SetPosition(center)
		body.SetAngle(transform.Rotation)
		ps.space.AddBody(body)
	}
	info.body = body

	var shape *cp.Shape
	switch {
	case bodyComp.Static && radius > 0:
		shape = cp.NewCircle(body, radius, center)
	case bodyComp.Static:
		bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
		shape = cp.NewBox2(body, bb, 0)
	case radius > 0:
		shape = cp.NewCircle(body, radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeSolid)
	if isBall {
		shape.SetCollisionType(collisionTypeBall)
	}
	ps.space.AddShape(shape)
	info.shapes = []*cp.Shape{shape}

	return info
}

// syncBodyModes applies PhysicsBody.Kinematic to the Chipmunk body type and
// moves kinematic bodies to their transforms.
func (ps *PhysicsSystem) syncBodyModes(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static {
			return
		}
		body := info.body

		want := cp.BODY_DYNAMIC
		if bodyComp.Kinematic {
			want = cp.BODY_KINEMATIC
		}
		if body.GetType() != want {
			body.SetType(want)
			if want == cp.BODY_DYNAMIC {
				// Chipmunk re-derives mass from shapes, which carry none.
				body.SetMass(info.mass)
				body.SetMoment(info.moment)
				body.Activate()
			}
			body.SetVelocityVector(cp.Vector{})
			body.SetAngularVelocity(0)
			ps.log.Debug("body mode", zap.Stringer("entity", e), zap.Bool("kinematic", bodyComp.Kinematic))
		}

		if want == cp.BODY_KINEMATIC {
			body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			body.SetAngle(transform.Rotation)
		}
	})
}

// syncSprings keeps each spring constraint in the space exactly while it is
// enabled, both bodies exist and the owning body is dynamic. Chipmunk cannot
// solve a spring between two bodies of infinite mass, and a kinematic body
// ignores it anyway.
func (ps *PhysicsSystem) syncSprings(w *ecs.World) {
	ecs.ForEach(w, component.SpringJointComponent.Kind(), func(e ecs.Entity, joint *component.SpringJoint) {
		info := ps.springs[e]
		connected := ecs.FromRef(joint.Connected)
		own := ps.entities[e]
		other := ps.entities[connected]

		if !joint.Enabled {
			if info != nil {
				ps.removeSpring(e, info)
			}
			joint.Constraint = nil
			return
		}
		if own == nil || other == nil || !ecs.IsAlive(w, connected) {
			if info != nil && info.active {
				ps.space.RemoveConstraint(info.constraint)
				info.active = false
			}
			return
		}

		if info == nil || info.b != connected {
			if info != nil {
				ps.removeSpring(e, info)
			}
			c := cp.NewDampedSpring(own.body, other.body, cp.Vector{}, cp.Vector{}, joint.RestLength, joint.Stiffness, joint.Damping)
			info = &springInfo{constraint: c, a: e, b: connected}
			ps.springs[e] = info
			joint.Constraint = c
		}

		want := own.body.GetType() == cp.BODY_DYNAMIC
		switch {
		case want && !info.active:
			ps.space.AddConstraint(info.constraint)
			info.active = true
		case !want && info.active:
			ps.space.RemoveConstraint(info.constraint)
			info.active = false
		}
	})
}

func (ps *PhysicsSystem) removeSpring(e ecs.Entity, info *springInfo) {
	if info.active {
		ps.space.RemoveConstraint(info.constraint)
	}
	delete(ps.springs, e)
	ps.log.Debug("spring removed", zap.Stringer("entity", e))
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetElasticity(0.6)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil || info.static || info.body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	})
}

// cleanupEntities releases constraints, shapes and bodies of entities that
// died or lost their body, constraints first.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.springs {
		if ecs.IsAlive(w, e) && ps.keep(w, info.b) && ps.keep(w, e) {
			continue
		}
		ps.removeSpring(e, info)
	}

	for e, info := range ps.entities {
		if ps.keep(w, e) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) keep(w *ecs.World, e ecs.Entity) bool {
	if !ecs.IsAlive(w, e) {
		return false
	}
	return ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())
}
