// Package input translates SDL2 events into control actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cubefold/internal/control"
)

// Input polls SDL events once per frame.
type Input struct {
	actions []control.Action
	resized bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		actions: make([]control.Action, 0, 8),
	}
}

// Update polls SDL events and collects the frame's actions.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.actions = i.actions[:0]
	i.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.actions = append(i.actions, control.Quit)

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if a := ActionFor(e.Keysym.Sym); a != control.None {
				i.actions = append(i.actions, a)
			}
		}
	}

	for _, a := range i.actions {
		if a == control.Quit {
			return true
		}
	}
	return false
}

// Actions returns the actions collected by the last Update.
func (i *Input) Actions() []control.Action {
	return i.actions
}

// Resized reports whether the window size changed during the last Update.
func (i *Input) Resized() bool {
	return i.resized
}

// ActionFor maps a key to its action.
func ActionFor(key sdl.Keycode) control.Action {
	switch key {
	case sdl.K_ESCAPE:
		return control.Quit
	case sdl.K_F12:
		return control.Screenshot
	case sdl.K_TAB:
		return control.NextDemo
	}
	// Printable keycodes are their lowercase character.
	if key >= sdl.K_SPACE && key <= sdl.K_z {
		return control.ForRune(rune(key))
	}
	return control.None
}
