package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/milk9111/slingshot/levels"
	"github.com/milk9111/slingshot/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDiskPrefabs(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func TestBuildEntityBall(t *testing.T) {
	w := ecs.NewWorld()
	ball, err := NewBallAt(w, "ball.yaml", 12, 34)
	require.NoError(t, err)

	assert.True(t, ecs.Has(w, ball, component.BallTagComponent.Kind()))

	transform, ok := ecs.Get(w, ball, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 12.0, transform.X)
	assert.Equal(t, 34.0, transform.Y)

	body, ok := ecs.Get(w, ball, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.Positive(t, body.Radius)
	assert.False(t, body.Kinematic)

	joint, ok := ecs.Get(w, ball, component.SpringJointComponent.Kind())
	require.True(t, ok)
	assert.True(t, joint.Enabled)
	assert.True(t, joint.Connected.IsZero())

	shape, ok := ecs.Get(w, ball, component.ShapeComponent.Kind())
	require.True(t, ok)
	assert.NotNil(t, shape.Fill)
}

func TestBuildEntityLauncher(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "launcher.yaml")
	require.NoError(t, err)

	l, ok := ecs.Get(w, e, component.BallLauncherComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "ball.yaml", l.BallPrefab)
	assert.Equal(t, "pivot", l.PivotName)
	assert.Equal(t, 0.5, l.DetachDelay)
	assert.Equal(t, component.LauncherIdle, l.Phase())
	assert.True(t, ecs.Has(w, e, component.PointerComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.InvokeComponent.Kind()))
}

func TestBuildEntityErrors(t *testing.T) {
	tests := []struct {
		name   string
		prefab string
	}{
		{name: "unknown_component", prefab: "name: bad\ncomponents:\n  sprite: {}\n  name:\n    value: bad\n"},
		{name: "no_components", prefab: "name: empty\n"},
		{name: "bad_launcher", prefab: "name: l\ncomponents:\n  name:\n    value: l\n  ball_launcher:\n    pivot_name: pivot\n"},
		{name: "negative_ttl", prefab: "name: t\ncomponents:\n  transform: {}\n  ttl:\n    seconds: -1\n"},
		{name: "bad_color", prefab: "name: c\ncomponents:\n  shape:\n    fill: nope\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useDiskPrefabs(t, map[string]string{"broken.yaml": tc.prefab})
			w := ecs.NewWorld()

			_, err := BuildEntity(w, "broken.yaml")
			assert.Error(t, err)
			assert.Empty(t, ecs.Entities(w), "failed build must not leave entities")
		})
	}
}

func TestApplyLauncherSpecDefaults(t *testing.T) {
	l := &component.BallLauncher{Shots: 3}
	err := ApplyLauncherSpec(l, prefabs.BallLauncherComponentSpec{BallPrefab: "ball.yaml", PivotName: "pivot", RespawnDelay: 2})
	require.NoError(t, err)
	assert.Equal(t, component.DefaultDetachDelay, l.DetachDelay)
	assert.Equal(t, 2.0, l.RespawnDelay)
	assert.Equal(t, 3, l.Shots, "runtime state is kept")

	negative := -1.0
	err = ApplyLauncherSpec(l, prefabs.BallLauncherComponentSpec{BallPrefab: "ball.yaml", PivotName: "pivot", DetachDelay: &negative})
	assert.Error(t, err)
}

func TestFindByName(t *testing.T) {
	w := ecs.NewWorld()
	pivot, err := BuildEntity(w, "pivot.yaml")
	require.NoError(t, err)

	got, ok := FindByName(w, "pivot")
	require.True(t, ok)
	assert.Equal(t, pivot, got)

	_, ok = FindByName(w, "nobody")
	assert.False(t, ok)
}

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	require.NoError(t, err)

	w := ecs.NewWorld()
	ents, err := LoadLevelToWorld(w, lvl)
	require.NoError(t, err)

	bounds, ok := ecs.Get(w, ents.Bounds, component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, lvl.Width, bounds.Width)

	pivotTransform, ok := ecs.Get(w, ents.Pivot, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, lvl.Pivot.X, pivotTransform.X)
	assert.Equal(t, lvl.Pivot.Y, pivotTransform.Y)

	assert.True(t, ecs.Has(w, ents.Camera, component.CameraComponent.Kind()))
	assert.True(t, ecs.Has(w, ents.Launcher, component.BallLauncherComponent.Kind()))
	assert.Len(t, w.Query(component.BlockTagComponent.Kind()), len(lvl.Entities))
}

func TestLoadLevelToWorldNil(t *testing.T) {
	_, err := LoadLevelToWorld(ecs.NewWorld(), nil)
	assert.Error(t, err)
}
