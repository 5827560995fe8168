// Package path models the fixed polyline route enemies walk from the
// spawn point to the base. The route is supplied externally and never
// changes during a match; there is no pathfinding here.
package path

import "math"

// Point is a position on the battlefield in pixels.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Path is an ordered sequence of waypoints. Enemies spawn at the first
// waypoint and escape once they have walked past the last one.
type Path struct {
	waypoints []Point
}

// New builds a path from at least two waypoints. The waypoint slice is
// copied so the caller cannot mutate the route afterwards.
func New(waypoints ...Point) *Path {
	if len(waypoints) < 2 {
		panic("path: need at least two waypoints")
	}
	wps := make([]Point, len(waypoints))
	copy(wps, waypoints)
	return &Path{waypoints: wps}
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// Start returns the spawn point (first waypoint).
func (p *Path) Start() Point {
	return p.waypoints[0]
}

// End returns the base position (last waypoint).
func (p *Path) End() Point {
	return p.waypoints[len(p.waypoints)-1]
}

// Waypoint returns the waypoint at index i.
func (p *Path) Waypoint(i int) Point {
	return p.waypoints[i]
}

// TotalLength returns the summed segment length of the whole route.
func (p *Path) TotalLength() float64 {
	total := 0.0
	for i := 1; i < len(p.waypoints); i++ {
		total += Dist(p.waypoints[i-1], p.waypoints[i])
	}
	return total
}
