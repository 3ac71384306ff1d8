package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"name":          addName,
	"ball_tag":      addBallTag,
	"pivot_tag":     addPivotTag,
	"camera_tag":    addCameraTag,
	"block_tag":     addBlockTag,
	"transform":     addTransform,
	"physics_body":  addPhysicsBody,
	"spring_joint":  addSpringJoint,
	"shape":         addShape,
	"line_render":   addLineRender,
	"render_layer":  addRenderLayer,
	"camera":        addCamera,
	"pointer":       addPointer,
	"invoke":        addInvoke,
	"ball_launcher": addBallLauncher,
	"ttl":           addTTL,
}

// Components that read others at build time come after what they read.
var componentBuildOrder = []string{
	"name",
	"ball_tag",
	"pivot_tag",
	"camera_tag",
	"block_tag",
	"transform",
	"physics_body",
	"spring_joint",
	"shape",
	"line_render",
	"render_layer",
	"camera",
	"pointer",
	"invoke",
	"ball_launcher",
	"ttl",
}

// BuildEntity instantiates a prefab. On error nothing is left in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform places e, creating a Transform when the prefab had none.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addName(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.NameComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode name spec: %w", err)
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

func addBallTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.BallTagComponent.Kind(), &component.BallTag{})
}

func addPivotTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PivotTagComponent.Kind(), &component.PivotTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addBlockTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.BlockTagComponent.Kind(), &component.BlockTag{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Static && spec.Kinematic {
		return fmt.Errorf("physics body cannot be both static and kinematic")
	}
	if spec.DefaultWidth <= 0 {
		spec.DefaultWidth = 32
	}
	if spec.DefaultHeight <= 0 {
		spec.DefaultHeight = 32
	}

	width := spec.Width
	height := spec.Height
	if spec.Radius <= 0 {
		if width <= 0 {
			width = spec.DefaultWidth
		}
		if height <= 0 {
			height = spec.DefaultHeight
		}
	}
	if !spec.Static && spec.Mass <= 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      width,
		Height:     height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
		Kinematic:  spec.Kinematic,
		Sensor:     spec.Sensor,
	})
}

func addSpringJoint(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpringJointComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spring joint spec: %w", err)
	}
	if spec.Stiffness <= 0 {
		return fmt.Errorf("spring joint stiffness must be positive, got %v", spec.Stiffness)
	}
	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}
	return ecs.Add(w, e, component.SpringJointComponent.Kind(), &component.SpringJoint{
		RestLength: spec.RestLength,
		Stiffness:  spec.Stiffness,
		Damping:    spec.Damping,
		Enabled:    enabled,
	})
}

func addShape(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ShapeComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode shape spec: %w", err)
	}
	fill := spec.Fill.Color
	if fill == nil {
		fill = color.White
	}
	return ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Fill:    fill,
		Outline: spec.Outline.Color,
	})
}

func addLineRender(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LineRenderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode line render spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	c := spec.Color.Color
	if c == nil {
		c = color.RGBA{R: 255, A: 255}
	}
	return ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
		Width:     spec.Width,
		Color:     c,
		AntiAlias: spec.AntiAlias,
	})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness <= 0 || spec.Smoothness > 1 {
		spec.Smoothness = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

func addPointer(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{})
}

func addInvoke(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InvokeComponent.Kind(), &component.Invoke{})
}

func addBallLauncher(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BallLauncherComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ball launcher spec: %w", err)
	}
	l := &component.BallLauncher{}
	if err := ApplyLauncherSpec(l, spec); err != nil {
		return err
	}
	if !ecs.Has(w, e, component.InvokeComponent.Kind()) {
		if err := ecs.Add(w, e, component.InvokeComponent.Kind(), &component.Invoke{}); err != nil {
			return err
		}
	}
	if !ecs.Has(w, e, component.PointerComponent.Kind()) {
		if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.BallLauncherComponent.Kind(), l)
}

// ApplyLauncherSpec copies tuning from spec into l, leaving runtime state
// alone. It is also used to hot-reload a running launcher.
func ApplyLauncherSpec(l *component.BallLauncher, spec prefabs.BallLauncherComponentSpec) error {
	if l == nil {
		return fmt.Errorf("ball launcher is nil")
	}
	if spec.BallPrefab == "" {
		return fmt.Errorf("ball launcher needs ball_prefab")
	}
	if spec.PivotName == "" {
		return fmt.Errorf("ball launcher needs pivot_name")
	}
	if spec.RespawnDelay < 0 || spec.BallLifetime < 0 {
		return fmt.Errorf("ball launcher delays must not be negative")
	}
	detach := component.DefaultDetachDelay
	if spec.DetachDelay != nil {
		if *spec.DetachDelay < 0 {
			return fmt.Errorf("ball launcher delays must not be negative")
		}
		detach = *spec.DetachDelay
	}
	l.BallPrefab = spec.BallPrefab
	l.PivotName = spec.PivotName
	l.RespawnDelay = spec.RespawnDelay
	l.DetachDelay = detach
	l.BallLifetime = spec.BallLifetime
	return nil
}

func addTTL(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	frames := common.SecondsToFrames(spec.Seconds)
	if frames <= 0 {
		return fmt.Errorf("ttl must be positive, got %v seconds", spec.Seconds)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
}
