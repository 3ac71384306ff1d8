package ecs

import "github.com/milk9111/slingshot/ecs/component"

// World owns entity slots and one sparse set per component kind.
type World struct {
	gens   []generation
	free   []entityID
	alive  int
	stores map[component.ComponentID]*sparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates an entity, reusing freed slots with a bumped
// generation.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		id = entityID(len(w.gens))
	}
	w.alive++
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false when e is not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.remove(id)
	}
	w.gens[id-1]++
	w.free = append(w.free, id)
	w.alive--
	return true
}

// IsAlive reports whether e refers to a live entity of w.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) > len(w.gens) {
		return false
	}
	return w.gens[id-1] == e.generation()
}

// Entities lists every live entity.
func Entities(w *World) []Entity {
	if w == nil || w.alive == 0 {
		return nil
	}
	freed := make(map[entityID]struct{}, len(w.free))
	for _, id := range w.free {
		freed[id] = struct{}{}
	}
	out := make([]Entity, 0, w.alive)
	for i, gen := range w.gens {
		id := entityID(i + 1)
		if _, ok := freed[id]; ok {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}

// kindID is satisfied by every component.ComponentKind[T].
type kindID interface {
	ID() component.ComponentID
}

// Query returns live entities that have all of the given component kinds.
func (w *World) Query(kinds ...kindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		store := w.stores[k.ID()]
		if store.len() == 0 {
			return nil
		}
		stores = append(stores, store)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
	for _, id := range smallest.ids() {
		matched := true
		for _, s := range stores {
			if !s.has(id) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, makeEntity(id, w.gens[id-1]))
		}
	}
	return out
}

// First returns the first live entity that has the component kind.
func (w *World) First(kind kindID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store := w.stores[kind.ID()]
	if store.len() == 0 {
		return 0, false
	}
	id := store.dense[0]
	return makeEntity(id, w.gens[id-1]), true
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
