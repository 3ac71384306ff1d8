package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate. Physics steps 1/TPS seconds per tick.
	TPS = 60

	// Gravity is in pixels per second squared, screen-down positive.
	Gravity = 980.0
)
