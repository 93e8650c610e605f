package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubefold/internal/control"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want control.Action
	}{
		{sdl.K_ESCAPE, control.Quit},
		{sdl.K_q, control.Quit},
		{sdl.K_SPACE, control.TogglePause},
		{sdl.K_f, control.Fold},
		{sdl.K_u, control.Unfold},
		{sdl.K_r, control.Reset},
		{sdl.K_F12, control.Screenshot},
		{sdl.K_TAB, control.NextDemo},
		{sdl.K_a, control.None},
		{sdl.K_LEFT, control.None},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
