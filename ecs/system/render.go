package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
	"golang.org/x/image/colornames"
)

var defaultFill color.Color = colornames.Lightsteelblue

type RenderSystem struct {
	pixel *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &RenderSystem{pixel: pixel}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	_, _, zoom := cameraView(w)

	r.drawSprings(w, screen, zoom)

	entities := w.Query(component.TransformComponent.Kind(), component.ShapeComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := renderLayer(w, entities[i])
		lj := renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.ShapeComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}

		fill := s.Fill
		if fill == nil {
			fill = defaultFill
		}
		sx, sy := WorldToScreen(w, t.X, t.Y)

		if body.Radius > 0 {
			radius := float32(body.Radius * zoom)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, fill, true)
			if s.Outline != nil {
				vector.StrokeCircle(screen, float32(sx), float32(sy), radius, 2, s.Outline, true)
				// Spoke so rotation is visible.
				ex := sx + math.Cos(t.Rotation)*body.Radius*zoom
				ey := sy + math.Sin(t.Rotation)*body.Radius*zoom
				vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), 2, s.Outline, true)
			}
			continue
		}

		r.drawBox(screen, sx, sy, body.Width*zoom, body.Height*zoom, t.Rotation, fill, s.Outline)
	}
}

func (r *RenderSystem) drawBox(screen *ebiten.Image, cx, cy, width, height, rotation float64, fill, outline color.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(fill)
	screen.DrawImage(r.pixel, op)

	if outline == nil {
		return
	}
	cos, sin := math.Cos(rotation), math.Sin(rotation)
	corners := [4][2]float64{
		{-width / 2, -height / 2},
		{width / 2, -height / 2},
		{width / 2, height / 2},
		{-width / 2, height / 2},
	}
	var pts [4][2]float32
	for i, c := range corners {
		pts[i][0] = float32(cx + c[0]*cos - c[1]*sin)
		pts[i][1] = float32(cy + c[0]*sin + c[1]*cos)
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 2, outline, true)
	}
}

// drawSprings draws a line from each entity with an enabled spring to the
// entity it is connected to.
func (r *RenderSystem) drawSprings(w *ecs.World, screen *ebiten.Image, zoom float64) {
	ecs.ForEach2(w, component.LineRenderComponent.Kind(), component.SpringJointComponent.Kind(), func(e ecs.Entity, line *component.LineRender, joint *component.SpringJoint) {
		if !joint.Enabled {
			return
		}
		from, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		to, ok := ecs.Get(w, ecs.FromRef(joint.Connected), component.TransformComponent.Kind())
		if !ok {
			return
		}

		clr := line.Color
		if clr == nil {
			clr = color.White
		}
		width := line.Width
		if width <= 0 {
			width = 1
		}

		x0, y0 := WorldToScreen(w, from.X, from.Y)
		x1, y1 := WorldToScreen(w, to.X, to.Y)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width*float32(zoom), clr, line.AntiAlias)
	})
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
