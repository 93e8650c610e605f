package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.UTC)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"", "foldnet_2024-03-09_14-05-06.789.png"},
		{"shots", filepath.Join("shots", "foldnet_2024-03-09_14-05-06.789.png")},
	}
	for _, tt := range tests {
		c := New(tt.dir, "foldnet")
		c.now = fixedClock
		if got := c.Filename(); got != tt.want {
			t.Errorf("Filename() = %q, want %q", got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	c := New(dir, "cube")
	c.now = fixedClock

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	path, err := c.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := decoded.At(1, 1).RGBA()
	if r != 0xffff {
		t.Errorf("pixel (1,1) red = %#x, want 0xffff", r)
	}
}
