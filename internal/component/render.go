// component/render.go
package component

import "image/color"

// Renderable — drawing hints for an entity.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
