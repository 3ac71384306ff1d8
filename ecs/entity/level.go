package entity

import (
	"fmt"

	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/levels"
)

const defaultLauncherPrefab = "launcher.yaml"

// LevelEntities are the singletons a loaded level creates.
type LevelEntities struct {
	Bounds   ecs.Entity
	Pivot    ecs.Entity
	Camera   ecs.Entity
	Launcher ecs.Entity
}

// LoadLevelToWorld builds the bounds, pivot, camera, placed prefabs and the
// launcher of lvl.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (LevelEntities, error) {
	var out LevelEntities
	if w == nil || lvl == nil {
		return out, fmt.Errorf("level: world and level are required")
	}

	out.Bounds = ecs.CreateEntity(w)
	if err := ecs.Add(w, out.Bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return out, fmt.Errorf("level: add bounds: %w", err)
	}

	pivot, err := BuildEntity(w, "pivot.yaml")
	if err != nil {
		return out, fmt.Errorf("level: pivot: %w", err)
	}
	if err := SetEntityTransform(w, pivot, lvl.Pivot.X, lvl.Pivot.Y, 0); err != nil {
		return out, fmt.Errorf("level: place pivot: %w", err)
	}
	out.Pivot = pivot

	camera, err := NewCamera(w)
	if err != nil {
		return out, fmt.Errorf("level: %w", err)
	}
	out.Camera = camera

	for i, placed := range lvl.Entities {
		e, err := BuildEntity(w, placed.Prefab)
		if err != nil {
			return out, fmt.Errorf("level: entity %d: %w", i, err)
		}
		if err := SetEntityTransform(w, e, placed.X, placed.Y, 0); err != nil {
			return out, fmt.Errorf("level: place entity %d: %w", i, err)
		}
	}

	launcherPrefab := lvl.Launcher
	if launcherPrefab == "" {
		launcherPrefab = defaultLauncherPrefab
	}
	launcher, err := BuildEntity(w, launcherPrefab)
	if err != nil {
		return out, fmt.Errorf("level: launcher: %w", err)
	}
	out.Launcher = launcher

	return out, nil
}
