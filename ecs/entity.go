package ecs

import (
	"strconv"

	"github.com/milk9111/slingshot/ecs/component"
)

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e could refer to an entity. It does not check
// liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}

// Ref converts e for storage inside a component.
func (e Entity) Ref() component.EntityRef {
	return component.EntityRef(e)
}

// FromRef converts a stored reference back into an Entity.
func FromRef(r component.EntityRef) Entity {
	return Entity(r)
}
