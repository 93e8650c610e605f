package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

func TestNew(t *testing.T) {
	s := New("textures")

	if s.Shape != ShapeBox {
		t.Errorf("Shape = %q, want %q", s.Shape, ShapeBox)
	}
	if s.Dimensions != (Dimensions{1, 1, 1}) {
		t.Errorf("Dimensions = %+v, want unit", s.Dimensions)
	}
	m := s.Material
	if m.SelectedColorPreset != "Default Blue" || m.Color != "#0077ff" {
		t.Errorf("color = %q/%q", m.SelectedColorPreset, m.Color)
	}
	if m.Roughness != 0.5 || m.Metalness != 0.3 {
		t.Errorf("roughness/metalness = %v/%v", m.Roughness, m.Metalness)
	}
	if m.SelectedTexturePreset != "None" || m.TextureURL != "" {
		t.Errorf("texture = %q/%q", m.SelectedTexturePreset, m.TextureURL)
	}
	if m.TextureRepeatX != 1 || m.TextureRepeatY != 1 || m.TextureOffsetX != 0 || m.TextureOffsetY != 0 {
		t.Errorf("texture transform = %+v", m)
	}
}

func TestSelectColorPreset(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"Purple", "#800080", false},
		{"Black", "#000000", false},
		{"Orange", "", true},
		{"purple", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("textures")
			err := s.SelectColorPreset(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPreset) {
					t.Fatalf("err = %v, want ErrUnknownPreset", err)
				}
				if s.Material.Color != "#0077ff" {
					t.Errorf("failed select changed color to %q", s.Material.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Material.Color != tt.want || s.Material.SelectedColorPreset != tt.name {
				t.Errorf("got %q/%q", s.Material.SelectedColorPreset, s.Material.Color)
			}
		})
	}
}

func TestSelectTexturePreset(t *testing.T) {
	s := New("assets")

	if err := s.SelectTexturePreset("Brick Wall"); err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("assets", "brick_diffuse.jpg"); s.Material.TextureURL != want {
		t.Errorf("TextureURL = %q, want %q", s.Material.TextureURL, want)
	}

	if err := s.SelectTexturePreset("None"); err != nil {
		t.Fatal(err)
	}
	if s.Material.TextureURL != "" {
		t.Errorf("TextureURL = %q after None", s.Material.TextureURL)
	}

	if err := s.SelectTexturePreset("Marble"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestRemoveTexture(t *testing.T) {
	s := New("textures")
	s.SetTexturePath("  my/tex.png ")
	if s.Material.TextureURL != "my/tex.png" {
		t.Errorf("TextureURL = %q", s.Material.TextureURL)
	}
	s.RemoveTexture()
	if s.Material.TextureURL != "" || s.Material.SelectedTexturePreset != NoTexturePreset {
		t.Errorf("texture not removed: %+v", s.Material)
	}
}

func TestSetDimensions(t *testing.T) {
	tests := []struct {
		name    string
		l, w, d float32
		wantErr bool
	}{
		{"valid", 2, 3, 4, false},
		{"bounds", MinDimension, MaxDimension, 1, false},
		{"too small", 0.05, 1, 1, true},
		{"too large", 1, 1, 11, true},
		{"negative", 1, -1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("textures")
			err := s.SetDimensions(tt.l, tt.w, tt.d)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimension) {
					t.Fatalf("err = %v, want ErrInvalidDimension", err)
				}
				if s.Dimensions != (Dimensions{1, 1, 1}) {
					t.Errorf("failed set changed dimensions to %+v", s.Dimensions)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Dimensions != (Dimensions{tt.l, tt.w, tt.d}) {
				t.Errorf("Dimensions = %+v", s.Dimensions)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    scene.Color
		wantErr bool
	}{
		{"#ff0000", scene.ColorRed, false},
		{"00ff00", scene.ColorGreen, false},
		{" #FFFFFF ", scene.ColorWhite, false},
		{"#fff", scene.Color{}, true},
		{"#gg0000", scene.Color{}, true},
		{"", scene.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHexColor(%q) err = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestFormatHexColorRoundTrip(t *testing.T) {
	for _, p := range ColorPresets {
		c, err := ParseHexColor(p.Hex)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatHexColor(c); got != p.Hex {
			t.Errorf("FormatHexColor(%s) = %s", p.Hex, got)
		}
	}
}

func TestSetColor(t *testing.T) {
	s := New("textures")
	if err := s.SetColor("#ABCDEF"); err != nil {
		t.Fatal(err)
	}
	if s.Material.Color != "#abcdef" {
		t.Errorf("Color = %q", s.Material.Color)
	}
	if err := s.SetColor("blue"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}

func TestBox(t *testing.T) {
	s := New("textures")
	if err := s.SetDimensions(2, 3, 4); err != nil {
		t.Fatal(err)
	}

	b := s.Box(math.Identity())
	if b.Size != (math.Vec3{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Size = %v", b.Size)
	}
	if b.Color != scene.Hex(0x0077ff) || b.Texture != "" {
		t.Errorf("untextured box = %+v", b)
	}

	if err := s.SelectTexturePreset("Checkerboard"); err != nil {
		t.Fatal(err)
	}
	s.Material.TextureRepeatX = 2
	b = s.Box(math.Identity())
	if b.Color != scene.ColorWhite || b.Texture == "" || b.TexRepeat != [2]float32{2, 1} {
		t.Errorf("textured box = %+v", b)
	}
}

func TestExportKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := New("textures").Export(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "\n  \"dimensions\": {\n    \"length\": 1,") {
		t.Errorf("export not indented by two spaces:\n%s", buf.String())
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc["shape"] != "Box" {
		t.Errorf("shape = %v", doc["shape"])
	}
	material, ok := doc["material"].(map[string]any)
	if !ok {
		t.Fatalf("material = %T", doc["material"])
	}
	for _, key := range []string{
		"selectedColorPreset", "color", "roughness", "metalness",
		"selectedTexturePreset", "textureURL",
		"textureRepeatX", "textureRepeatY", "textureOffsetX", "textureOffsetY",
	} {
		if _, ok := material[key]; !ok {
			t.Errorf("material missing key %q", key)
		}
	}
	if len(material) != 10 {
		t.Errorf("material has %d keys, want 10", len(material))
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultExportName)

	s := New("textures")
	if err := s.SelectColorPreset("Yellow"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDimensions(1.5, 2, 0.5); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path, "textures")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Dimensions != s.Dimensions || loaded.Material != s.Material {
		t.Errorf("loaded %+v, want %+v", loaded, s)
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "{"},
		{"sphere", `{"shape":"Sphere","dimensions":{"length":1,"width":1,"depth":1}}`},
		{"zero depth", `{"shape":"Box","dimensions":{"length":1,"width":1,"depth":0}}`},
		{"bad color", `{"shape":"Box","material":{"color":"red"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Import(strings.NewReader(tt.doc), "textures"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveFileBadPath(t *testing.T) {
	err := New("textures").SaveFile(filepath.Join(t.TempDir(), "missing", "x.json"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
