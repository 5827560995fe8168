// component/movement.go
package component

// Position — current location in pixels.
type Position struct {
	X, Y float64
}

// Velocity — movement speed in pixels per second.
type Velocity struct {
	Speed float64
}

// PathFollower tracks an enemy's progress along the match path.
// WaypointIndex is the waypoint currently being walked toward; once it
// advances past the last waypoint the enemy has escaped.
type PathFollower struct {
	WaypointIndex int
}
