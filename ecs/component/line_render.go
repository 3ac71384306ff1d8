package component

import "image/color"

// LineRender draws a line from the entity to the body its SpringJoint is
// connected to, while the joint is enabled.
type LineRender struct {
	Width     float32
	Color     color.Color
	AntiAlias bool
}

var LineRenderComponent = NewComponent[LineRender]()
