package component

import "image/color"

// Shape draws an entity's physics collider as a filled circle or box.
type Shape struct {
	Fill    color.Color
	Outline color.Color
}

var ShapeComponent = NewComponent[Shape]()

// RenderLayer orders drawing; lower indices draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
