package system

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/ecs/entity"
	"github.com/milk9111/slingshot/logger"
	"go.uber.org/zap"
)

const (
	invokeDetach = "detach"
	invokeSpawn  = "spawn"
)

// LauncherSystem runs every BallLauncher: it spawns a ball on a spring at the
// pivot, drags it kinematically while the pointer is down, hands it back to
// the solver on release, then detaches the spring and respawns after the
// configured delays.
type LauncherSystem struct {
	log *zap.Logger
}

func NewLauncherSystem(log *zap.Logger) *LauncherSystem {
	return &LauncherSystem{log: logger.OrNop(log).Named("launcher")}
}

func (s *LauncherSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BallLauncherComponent.Kind(), func(e ecs.Entity, l *component.BallLauncher) {
		if !l.Started {
			l.Started = true
			s.spawnBall(w, e, l)
		}

		for _, method := range TakeInvoked(w, e) {
			switch method {
			case invokeDetach:
				s.detachBall(w, e, l)
			case invokeSpawn:
				s.spawnBall(w, e, l)
			default:
				s.log.Warn("unknown invoke", zap.String("method", method), zap.Stringer("launcher", e))
			}
		}

		s.track(w, e, l)
	})
}

// track is the per-tick poll. With no held ball it changes nothing.
func (s *LauncherSystem) track(w *ecs.World, e ecs.Entity, l *component.BallLauncher) {
	ball := ecs.FromRef(l.Body)
	body, ok := ecs.Get(w, ball, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}

	pointer, ok := ecs.Get(w, e, component.PointerComponent.Kind())
	if !ok || !pointer.Pressed {
		if l.Dragging {
			s.launchBall(w, e, l, body)
		}
		l.Dragging = false
		return
	}

	if !l.Dragging {
		s.log.Debug("drag start", zap.Stringer("ball", ball))
	}
	l.Dragging = true
	body.Kinematic = true

	wx, wy := ScreenToWorld(w, pointer.ScreenX, pointer.ScreenY)
	transform, ok := ecs.Get(w, ball, component.TransformComponent.Kind())
	if !ok {
		transform = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	transform.X = wx
	transform.Y = wy
	_ = ecs.Add(w, ball, component.TransformComponent.Kind(), transform)
}

func (s *LauncherSystem) launchBall(w *ecs.World, e ecs.Entity, l *component.BallLauncher, body *component.PhysicsBody) {
	body.Kinematic = false
	ball := ecs.FromRef(l.Body)
	l.Body = 0
	l.Shots++

	s.log.Debug("launch", zap.Stringer("ball", ball), zap.Int("shots", l.Shots))
	if err := ScheduleInvoke(w, e, invokeDetach, l.DetachDelay); err != nil {
		s.log.Error("schedule detach", zap.Error(err))
	}
}

func (s *LauncherSystem) detachBall(w *ecs.World, e ecs.Entity, l *component.BallLauncher) {
	ball := ecs.FromRef(l.Spring)
	if joint, ok := ecs.Get(w, ball, component.SpringJointComponent.Kind()); ok {
		joint.Enabled = false
	} else {
		s.log.Warn("detach: ball has no spring joint", zap.Stringer("ball", ball))
	}
	l.Spring = 0

	if frames := common.SecondsToFrames(l.BallLifetime); frames > 0 && ecs.IsAlive(w, ball) {
		_ = ecs.Add(w, ball, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
	}

	s.log.Debug("detach", zap.Stringer("ball", ball))
	if err := ScheduleInvoke(w, e, invokeSpawn, l.RespawnDelay); err != nil {
		s.log.Error("schedule spawn", zap.Error(err))
	}
}

func (s *LauncherSystem) spawnBall(w *ecs.World, e ecs.Entity, l *component.BallLauncher) {
	if !l.Body.IsZero() || !l.Spring.IsZero() {
		s.log.Warn("spawn skipped: a ball is still attached", zap.Stringer("launcher", e))
		return
	}

	pivot := ecs.FromRef(l.Pivot)
	if !ecs.IsAlive(w, pivot) {
		found, ok := entity.FindByName(w, l.PivotName)
		if !ok {
			s.log.Warn("spawn: pivot not found", zap.String("pivot", l.PivotName))
			return
		}
		pivot = found
		l.Pivot = pivot.Ref()
	}
	pivotTransform, ok := ecs.Get(w, pivot, component.TransformComponent.Kind())
	if !ok {
		s.log.Warn("spawn: pivot has no transform", zap.Stringer("pivot", pivot))
		return
	}

	ball, err := entity.NewBallAt(w, l.BallPrefab, pivotTransform.X, pivotTransform.Y)
	if err != nil {
		s.log.Error("spawn ball", zap.String("prefab", l.BallPrefab), zap.Error(err))
		return
	}

	joint, jok := ecs.Get(w, ball, component.SpringJointComponent.Kind())
	if !jok || !ecs.Has(w, ball, component.PhysicsBodyComponent.Kind()) {
		s.log.Error("spawn: ball prefab needs physics_body and spring_joint", zap.String("prefab", l.BallPrefab))
		ecs.DestroyEntity(w, ball)
		return
	}
	joint.Connected = pivot.Ref()
	joint.Enabled = true

	l.Body = ball.Ref()
	l.Spring = ball.Ref()
	l.Dragging = false

	s.log.Debug("spawn", zap.Stringer("ball", ball), zap.Float64("x", pivotTransform.X), zap.Float64("y", pivotTransform.Y))
}
