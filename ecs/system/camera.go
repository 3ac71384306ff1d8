package system

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/ecs/entity"
)

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera so its named target sits in the middle of the
// view. The first frame snaps.
func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok || cam.TargetName == "" {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	target, ok := entity.FindByName(w, cam.TargetName)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := cameraZoom(cam)
	goalX := targetTransform.X - common.BaseWidth/zoom/2
	goalY := targetTransform.Y - common.BaseHeight/zoom/2

	if !cam.Snapped {
		camTransform.X = goalX
		camTransform.Y = goalY
		cam.Snapped = true
		return
	}
	camTransform.X = common.Lerp(camTransform.X, goalX, cam.Smoothness)
	camTransform.Y = common.Lerp(camTransform.Y, goalY, cam.Smoothness)
}

// ScreenToWorld projects layout-space screen coordinates into the world
// through the first camera. Without a camera it is the identity.
func ScreenToWorld(w *ecs.World, sx, sy float64) (float64, float64) {
	camX, camY, zoom := cameraView(w)
	return camX + sx/zoom, camY + sy/zoom
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(w *ecs.World, wx, wy float64) (float64, float64) {
	camX, camY, zoom := cameraView(w)
	return (wx - camX) * zoom, (wy - camY) * zoom
}

func cameraView(w *ecs.World) (x, y, zoom float64) {
	zoom = 1
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		zoom = cameraZoom(cam)
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	return x, y, zoom
}

func cameraZoom(cam *component.Camera) float64 {
	if cam == nil || cam.Zoom <= 0 {
		return 1
	}
	return cam.Zoom
}
