package system

import (
	"testing"

	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLSystemDestroysExpired(t *testing.T) {
	w := ecs.NewWorld()
	short := ecs.CreateEntity(w)
	long := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, short, component.TTLComponent.Kind(), &component.TTL{Frames: 1}))
	require.NoError(t, ecs.Add(w, long, component.TTLComponent.Kind(), &component.TTL{Frames: 3}))

	sys := NewTTLSystem()
	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, short))
	assert.True(t, ecs.IsAlive(w, long))

	sys.Update(w)
	sys.Update(w)
	assert.False(t, ecs.IsAlive(w, long))
}
