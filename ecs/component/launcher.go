package component

// BallLauncher spawns balls on a spring at a pivot and lets the pointer drag
// and release them.
//
// Body is set only while the held ball may be dragged; Spring only while
// that ball's spring is attached to the pivot.
type BallLauncher struct {
	BallPrefab   string
	PivotName    string
	RespawnDelay float64 // seconds from detach to next spawn
	DetachDelay  float64 // seconds from release to spring detach
	BallLifetime float64 // seconds a detached ball lives; 0 keeps it

	Body     EntityRef
	Spring   EntityRef
	Pivot    EntityRef
	Dragging bool
	Started  bool
	Shots    int
}

var BallLauncherComponent = NewComponent[BallLauncher]()

// DefaultDetachDelay is used when a launcher prefab leaves detach_delay unset.
const DefaultDetachDelay = 0.5

// LauncherPhase is the externally visible launcher state.
type LauncherPhase string

const (
	LauncherIdle     LauncherPhase = "idle"
	LauncherAttached LauncherPhase = "attached"
	LauncherDragging LauncherPhase = "dragging"
	LauncherReleased LauncherPhase = "released"
)

// Phase derives the launcher state from its handles.
func (l *BallLauncher) Phase() LauncherPhase {
	switch {
	case l == nil:
		return LauncherIdle
	case !l.Body.IsZero() && l.Dragging:
		return LauncherDragging
	case !l.Body.IsZero():
		return LauncherAttached
	case !l.Spring.IsZero():
		return LauncherReleased
	default:
		return LauncherIdle
	}
}
