package component

// AreaEffect is a time-boxed visual record of an area attack having
// happened. All combat for area towers resolves at fire time; this
// component only drives the fading ring on screen.
type AreaEffect struct {
	Radius   float64
	Age      float64
	Duration float64
}
