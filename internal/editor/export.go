package editor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultExportName is the conventional export file name.
const DefaultExportName = "box_editor_config.json"

// Export writes the state as indented JSON.
func (s *State) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding editor state: %w", err)
	}
	return nil
}

// SaveFile writes the exported state to path.
func (s *State) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Import reads a state previously written by Export. Texture presets of the
// result resolve under textureDir.
func Import(r io.Reader, textureDir string) (*State, error) {
	s := New(textureDir)
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding editor state: %w", err)
	}
	if s.Shape != ShapeBox {
		return nil, fmt.Errorf("unsupported shape %q", s.Shape)
	}
	d := s.Dimensions
	if err := s.SetDimensions(d.Length, d.Width, d.Depth); err != nil {
		return nil, err
	}
	if _, err := ParseHexColor(s.Material.Color); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile reads a state file written by SaveFile.
func LoadFile(path, textureDir string) (*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Import(f, textureDir)
}
