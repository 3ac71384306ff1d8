package component

// Pointer is the per-tick state of the primary touch (or mouse) in screen
// coordinates.
type Pointer struct {
	Pressed bool
	ScreenX float64
	ScreenY float64
}

var PointerComponent = NewComponent[Pointer]()
