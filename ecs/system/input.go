package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// PointerSource reports the primary pointer once per tick.
type PointerSource interface {
	Poll() component.Pointer
}

// EbitenPointer follows the first touch until it lifts and falls back to the
// left mouse button when no touch is down.
type EbitenPointer struct {
	touches []ebiten.TouchID
	primary ebiten.TouchID
	holding bool
}

func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

func (p *EbitenPointer) Poll() component.Pointer {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])

	if p.holding && !containsTouch(p.touches, p.primary) {
		p.holding = false
	}
	if !p.holding && len(p.touches) > 0 {
		p.primary = p.touches[0]
		p.holding = true
	}
	if p.holding {
		x, y := ebiten.TouchPosition(p.primary)
		return component.Pointer{Pressed: true, ScreenX: float64(x), ScreenY: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return component.Pointer{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ScreenX: float64(x),
		ScreenY: float64(y),
	}
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}

type InputSystem struct {
	source PointerSource
}

func NewInputSystem(source PointerSource) *InputSystem {
	if source == nil {
		source = NewEbitenPointer()
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := i.source.Poll()
	ecs.ForEach(w, component.PointerComponent.Kind(), func(e ecs.Entity, p *component.Pointer) {
		*p = state
	})
}
