package entity

import (
	"github.com/milk9111/slingshot/ecs"
	"github.com/milk9111/slingshot/ecs/component"
)

// FindByName returns the first live entity whose Name matches. The names
// "pivot" and "camera" also match the tagged entity when nothing is named so.
func FindByName(w *ecs.World, name string) (ecs.Entity, bool) {
	if w == nil || name == "" {
		return 0, false
	}
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	if found.Valid() {
		return found, true
	}
	switch name {
	case "pivot":
		return w.First(component.PivotTagComponent.Kind())
	case "camera":
		return w.First(component.CameraTagComponent.Kind())
	}
	return 0, false
}
