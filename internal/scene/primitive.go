// Package scene describes what a frame contains: views, boxes and lines.
// It holds no GPU state; a renderer consumes these values each frame.
package scene

import (
	"github.com/Faultbox/cubefold/internal/engine/lighting"
	"github.com/Faultbox/cubefold/pkg/math"
)

// View is one camera's region of the render target.
type View struct {
	// Viewport as fractions of the target, origin at the bottom-left.
	X, Y, W, H float32

	Clear      Color
	Projection math.Mat4
	View       math.Mat4

	// Light shades solid boxes; nil draws flat colors.
	Light *lighting.Light
}

// FullView returns a view covering the whole target.
func FullView(clear Color, projection, view math.Mat4) View {
	return View{X: 0, Y: 0, W: 1, H: 1, Clear: clear, Projection: projection, View: view}
}

// Aspect returns the view's width/height ratio on a target of the given size.
func (v View) Aspect(width, height int) float32 {
	h := v.H * float32(height)
	if h <= 0 {
		return 1
	}
	return v.W * float32(width) / h
}

// Box is an axis-aligned box of the given size placed by Model.
type Box struct {
	Model     math.Mat4
	Size      math.Vec3
	Color     Color
	Wireframe bool

	// Texture is an image path; empty draws a flat color.
	Texture   string
	TexRepeat [2]float32
	TexOffset [2]float32
}

// Line is a single world-space segment.
type Line struct {
	From, To math.Vec3
	Color    Color
}
