package component

// Health — hit points of an enemy. Max is fixed at spawn
// (base health times the wave multiplier) and never changes.
type Health struct {
	Current int
	Max     int
}
