package ui

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/cubefold/internal/control"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  imgui.Key
		want control.Action
	}{
		{imgui.KeySpace, control.TogglePause},
		{imgui.KeyF, control.Fold},
		{imgui.KeyU, control.Unfold},
		{imgui.KeyR, control.Reset},
		{imgui.KeyF12, control.Screenshot},
		{imgui.KeyTab, control.NextDemo},
		{imgui.KeyEscape, control.Quit},
		{imgui.KeyA, control.None},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

// The GUI and the raw viewer agree on the letter keys.
func TestBindingsMatchRunes(t *testing.T) {
	letters := map[imgui.Key]rune{
		imgui.KeySpace: ' ',
		imgui.KeyF:     'f',
		imgui.KeyU:     'u',
		imgui.KeyR:     'r',
	}
	for key, r := range letters {
		if got, want := ActionFor(key), control.ForRune(r); got != want {
			t.Errorf("key %v: got %v, rune %q gives %v", key, got, r, want)
		}
	}
}
