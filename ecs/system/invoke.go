package system

import (
	"github.com/milk9111/slingshot/common"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// InvokeSystem counts down delayed calls and hands the due ones to their
// owner as an Invoked component, in scheduling order.
type InvokeSystem struct{}

func NewInvokeSystem() *InvokeSystem {
	return &InvokeSystem{}
}

func (s *InvokeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvokeComponent.Kind(), func(e ecs.Entity, inv *component.Invoke) {
		if len(inv.Pending) == 0 {
			return
		}

		var due []string
		kept := inv.Pending[:0]
		for _, call := range inv.Pending {
			call.Frames--
			if call.Frames <= 0 {
				due = append(due, call.Method)
				continue
			}
			kept = append(kept, call)
		}
		inv.Pending = kept
		if len(due) == 0 {
			return
		}

		fired, ok := ecs.Get(w, e, component.InvokedComponent.Kind())
		if !ok {
			fired = &component.Invoked{}
		}
		fired.Methods = append(fired.Methods, due...)
		_ = ecs.Add(w, e, component.InvokedComponent.Kind(), fired)
	})
}

// ScheduleInvoke queues method on e to come due after seconds. A zero delay
// comes due on the next tick.
func ScheduleInvoke(w *ecs.World, e ecs.Entity, method string, seconds float64) error {
	inv, ok := ecs.Get(w, e, component.InvokeComponent.Kind())
	if !ok {
		inv = &component.Invoke{}
	}
	inv.Pending = append(inv.Pending, component.Invocation{
		Method: method,
		Frames: common.SecondsToFrames(seconds),
	})
	return ecs.Add(w, e, component.InvokeComponent.Kind(), inv)
}

// TakeInvoked removes and returns the methods that came due on e.
func TakeInvoked(w *ecs.World, e ecs.Entity) []string {
	fired, ok := ecs.Get(w, e, component.InvokedComponent.Kind())
	if !ok {
		return nil
	}
	ecs.Remove(w, e, component.InvokedComponent.Kind())
	return fired.Methods
}
