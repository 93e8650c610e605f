package editor

// ColorPreset is a named material color.
type ColorPreset struct {
	Name string
	Hex  string
}

// ColorPresets in display order.
var ColorPresets = []ColorPreset{
	{"Default Blue", "#0077ff"},
	{"Red", "#ff0000"},
	{"Green", "#00ff00"},
	{"Yellow", "#ffff00"},
	{"Purple", "#800080"},
	{"White", "#ffffff"},
	{"Black", "#000000"},
}

// TexturePreset is a named texture file. File is relative to the texture
// directory; an empty File means no texture.
type TexturePreset struct {
	Name string
	File string
}

// TexturePresets in display order.
var TexturePresets = []TexturePreset{
	{"None", ""},
	{"Wood Crate", "crate.gif"},
	{"Brick Wall", "brick_diffuse.jpg"},
	{"Checkerboard", "checker.png"},
}

// DefaultColorPreset is selected on startup.
const DefaultColorPreset = "Default Blue"

// NoTexturePreset clears the texture.
const NoTexturePreset = "None"

func findColorPreset(name string) (ColorPreset, bool) {
	for _, p := range ColorPresets {
		if p.Name == name {
			return p, true
		}
	}
	return ColorPreset{}, false
}

func findTexturePreset(name string) (TexturePreset, bool) {
	for _, p := range TexturePresets {
		if p.Name == name {
			return p, true
		}
	}
	return TexturePreset{}, false
}
