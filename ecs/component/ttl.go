package component

// TTL is a simple frame-based time-to-live component. The entity is destroyed
// once Frames ticks have passed.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
