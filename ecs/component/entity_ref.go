package component

// EntityRef points at another entity. It holds the packed ecs.Entity value;
// convert with ecs.FromRef and Entity.Ref. Zero means no entity.
type EntityRef uint64

func (r EntityRef) IsZero() bool {
	return r == 0
}
