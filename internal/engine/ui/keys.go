package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/cubefold/internal/control"
)

// keyBindings lists the keys polled each frame.
var keyBindings = []struct {
	key    imgui.Key
	action control.Action
}{
	{imgui.KeySpace, control.TogglePause},
	{imgui.KeyF, control.Fold},
	{imgui.KeyU, control.Unfold},
	{imgui.KeyR, control.Reset},
	{imgui.KeyF12, control.Screenshot},
	{imgui.KeyTab, control.NextDemo},
	{imgui.KeyEscape, control.Quit},
}

// ActionFor maps an ImGui key to its action.
func ActionFor(key imgui.Key) control.Action {
	for _, b := range keyBindings {
		if b.key == key {
			return b.action
		}
	}
	return control.None
}

// PressedActions returns the actions whose keys were pressed this frame.
// Nothing is reported while a text field has focus.
func PressedActions() []control.Action {
	if imgui.CurrentIO().WantTextInput() {
		return nil
	}
	var actions []control.Action
	for _, b := range keyBindings {
		if imgui.IsKeyChordPressed(imgui.KeyChord(b.key)) {
			actions = append(actions, b.action)
		}
	}
	return actions
}
