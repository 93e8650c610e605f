// Package editor holds the box/material editor model: dimensions, color and
// texture presets, and the JSON state export.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

var (
	// ErrUnknownPreset reports a preset name that is not in the table.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidDimension reports a box dimension outside the editable range.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidColor reports a malformed #rrggbb string.
	ErrInvalidColor = errors.New("invalid color")
)

// ShapeBox is the only shape the editor draws.
const ShapeBox = "Box"

// Editable ranges, shared with the GUI sliders.
const (
	MinDimension = 0.1
	MaxDimension = 10.0
	MinRepeat    = 0.1
	MaxRepeat    = 10.0
)

// minRenderSize keeps a degenerate box visible.
const minRenderSize = 0.01

// Dimensions are the box extents along X (length), Y (width) and Z (depth).
type Dimensions struct {
	Length float32 `json:"length"`
	Width  float32 `json:"width"`
	Depth  float32 `json:"depth"`
}

// Material describes the box surface.
type Material struct {
	SelectedColorPreset   string  `json:"selectedColorPreset"`
	Color                 string  `json:"color"`
	Roughness             float32 `json:"roughness"`
	Metalness             float32 `json:"metalness"`
	SelectedTexturePreset string  `json:"selectedTexturePreset"`
	TextureURL            string  `json:"textureURL"`
	TextureRepeatX        float32 `json:"textureRepeatX"`
	TextureRepeatY        float32 `json:"textureRepeatY"`
	TextureOffsetX        float32 `json:"textureOffsetX"`
	TextureOffsetY        float32 `json:"textureOffsetY"`
}

// State is the complete editor model.
type State struct {
	Shape      string     `json:"shape"`
	Dimensions Dimensions `json:"dimensions"`
	Material   Material   `json:"material"`

	textureDir string
}

// New returns the startup state. Texture presets resolve under textureDir.
func New(textureDir string) *State {
	preset, _ := findColorPreset(DefaultColorPreset)
	return &State{
		Shape:      ShapeBox,
		Dimensions: Dimensions{Length: 1, Width: 1, Depth: 1},
		Material: Material{
			SelectedColorPreset:   preset.Name,
			Color:                 preset.Hex,
			Roughness:             0.5,
			Metalness:             0.3,
			SelectedTexturePreset: NoTexturePreset,
			TextureRepeatX:        1,
			TextureRepeatY:        1,
		},
		textureDir: textureDir,
	}
}

// SetDimensions replaces all three extents.
func (s *State) SetDimensions(length, width, depth float32) error {
	for _, v := range []float32{length, width, depth} {
		if v < MinDimension || v > MaxDimension {
			return fmt.Errorf("%w: %v not in [%v, %v]", ErrInvalidDimension, v, MinDimension, MaxDimension)
		}
	}
	s.Dimensions = Dimensions{Length: length, Width: width, Depth: depth}
	return nil
}

// SelectColorPreset applies a named color.
func (s *State) SelectColorPreset(name string) error {
	p, ok := findColorPreset(name)
	if !ok {
		return fmt.Errorf("%w: color %q", ErrUnknownPreset, name)
	}
	s.Material.SelectedColorPreset = p.Name
	s.Material.Color = p.Hex
	return nil
}

// SetColor applies a custom #rrggbb color. The preset name is kept, as a
// custom color is an override on top of it.
func (s *State) SetColor(hex string) error {
	if _, err := ParseHexColor(hex); err != nil {
		return err
	}
	s.Material.Color = strings.ToLower(hex)
	return nil
}

// SelectTexturePreset applies a named texture, or clears it for "None".
func (s *State) SelectTexturePreset(name string) error {
	p, ok := findTexturePreset(name)
	if !ok {
		return fmt.Errorf("%w: texture %q", ErrUnknownPreset, name)
	}
	s.Material.SelectedTexturePreset = p.Name
	s.Material.TextureURL = ""
	if p.File != "" {
		s.Material.TextureURL = filepath.Join(s.textureDir, p.File)
	}
	return nil
}

// SetTexturePath applies a custom texture file.
func (s *State) SetTexturePath(path string) {
	s.Material.TextureURL = strings.TrimSpace(path)
}

// RemoveTexture clears the texture and keeps the color.
func (s *State) RemoveTexture() {
	s.Material.TextureURL = ""
	s.Material.SelectedTexturePreset = NoTexturePreset
}

// Box returns the box to draw for the current state.
func (s *State) Box(model math.Mat4) scene.Box {
	size := math.Vec3{
		X: max(s.Dimensions.Length, minRenderSize),
		Y: max(s.Dimensions.Width, minRenderSize),
		Z: max(s.Dimensions.Depth, minRenderSize),
	}

	color, err := ParseHexColor(s.Material.Color)
	if err != nil {
		color = scene.ColorWhite
	}

	b := scene.Box{
		Model: model,
		Size:  size,
		Color: color,
	}
	if s.Material.TextureURL != "" {
		// Textures are shown unmodulated.
		b.Color = scene.ColorWhite
		b.Texture = s.Material.TextureURL
		b.TexRepeat = [2]float32{s.Material.TextureRepeatX, s.Material.TextureRepeatY}
		b.TexOffset = [2]float32{s.Material.TextureOffsetX, s.Material.TextureOffsetY}
	}
	return b
}

// ParseHexColor parses "#rrggbb" (the leading # is optional).
func ParseHexColor(hex string) (scene.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return scene.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return scene.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return scene.Hex(uint32(v)), nil
}

// FormatHexColor renders c as "#rrggbb".
func FormatHexColor(c scene.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(f float32) uint8 {
	f = min(max(f, 0), 1)
	return uint8(f*255 + 0.5)
}
