package component

// Invocation is a method name due after Frames more ticks.
type Invocation struct {
	Method string
	Frames int
}

// Invoke holds delayed calls scheduled on an entity.
type Invoke struct {
	Pending []Invocation
}

var InvokeComponent = NewComponent[Invoke]()

// Invoked carries the methods that came due this tick. The owning system
// handles them and removes the component.
type Invoked struct {
	Methods []string
}

var InvokedComponent = NewComponent[Invoked]()
