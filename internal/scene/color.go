package scene

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Basic colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
)

// Hex creates an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255.0,
		G: float32((rgb>>8)&0xff) / 255.0,
		B: float32(rgb&0xff) / 255.0,
		A: 1.0,
	}
}

// RGB creates an opaque color from float components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}
