package system

import (
	"testing"

	"github.com/milk9111/slingshot/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeSystem(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		dueAfter int
	}{
		{name: "zero_fires_next_tick", seconds: 0, dueAfter: 1},
		{name: "one_frame", seconds: 1.0 / 60, dueAfter: 1},
		{name: "half_second", seconds: 0.5, dueAfter: 30},
		{name: "rounds_to_frames", seconds: 0.251, dueAfter: 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			require.NoError(t, ScheduleInvoke(w, e, "ping", tc.seconds))

			sys := NewInvokeSystem()
			for i := 1; i < tc.dueAfter; i++ {
				sys.Update(w)
				require.Empty(t, TakeInvoked(w, e), "fired at tick %d", i)
			}
			sys.Update(w)
			assert.Equal(t, []string{"ping"}, TakeInvoked(w, e))

			sys.Update(w)
			assert.Empty(t, TakeInvoked(w, e), "must fire once")
		})
	}
}

func TestInvokeSystemKeepsOrder(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ScheduleInvoke(w, e, "first", 0))
	require.NoError(t, ScheduleInvoke(w, e, "second", 0))
	require.NoError(t, ScheduleInvoke(w, e, "later", 1))

	sys := NewInvokeSystem()
	sys.Update(w)
	assert.Equal(t, []string{"first", "second"}, TakeInvoked(w, e))
}

func TestScheduleInvokeDeadEntity(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	ecs.DestroyEntity(w, e)

	assert.Error(t, ScheduleInvoke(w, e, "ping", 1))
}
