package main

import (
	"fmt"
	gomath "math"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/control"
	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/editor"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
	"github.com/Faultbox/cubefold/internal/scene"
)

var (
	colorHeading = imgui.NewVec4(1, 0.8, 0.3, 1)
	colorActive  = imgui.NewVec4(0.9, 0.4, 0.3, 1)
	colorIdle    = imgui.NewVec4(0.4, 0.8, 0.4, 1)
)

var sliderLabels = [3]string{"X", "Y", "Z"}

// renderControlsPanel lists the demos and shows the active demo's controls.
func (app *App) renderControlsPanel() {
	imgui.TextColored(colorHeading, "Demos")
	current := app.demos.Current()
	for _, name := range app.demos.Names() {
		selected := current != nil && current.Name() == name
		if imgui.SelectableBoolV(name, selected, 0, imgui.NewVec2(0, 0)) {
			app.switchDemo(name)
		}
	}
	imgui.Separator()
	imgui.Spacing()

	if current == nil {
		return
	}
	switch current.Name() {
	case config.DemoFoldNet:
		app.renderFoldPanel()
	case config.DemoEditor:
		app.renderEditorPanel()
	case config.DemoSliders:
		app.renderSlidersPanel()
	case config.DemoSpin:
		imgui.TextDisabled("A cube spinning about its X and Y axes.")
	case config.DemoSplit:
		imgui.TextDisabled("Two viewports, each with its own camera.")
	}

	if app.audio != nil {
		imgui.Spacing()
		imgui.Separator()
		app.renderAudioPanel()
	}
}

func (app *App) renderFoldPanel() {
	a := app.foldNet.Animator()
	status := a.Status()

	imgui.TextColored(colorHeading, "Fold")
	label := "Pause"
	if status.Paused {
		label = "Play"
	}
	if imgui.ButtonV(label, imgui.NewVec2(-1, 0)) {
		control.Apply(control.TogglePause, app.foldNet)
	}
	if imgui.ButtonV("Unfold", imgui.NewVec2(100, 0)) {
		control.Apply(control.Unfold, app.foldNet)
	}
	imgui.SameLine()
	if imgui.ButtonV("Fold", imgui.NewVec2(100, 0)) {
		control.Apply(control.Fold, app.foldNet)
	}
	imgui.SameLine()
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		control.Apply(control.Reset, app.foldNet)
	}

	imgui.Spacing()
	imgui.Text(fmt.Sprintf("Direction: %s", status.Direction))
	imgui.Text(fmt.Sprintf("Stage:     %s", status.Stage))
	if status.ActiveFace > 0 {
		imgui.Text(fmt.Sprintf("Face:      %d", status.ActiveFace))
	} else {
		imgui.Text("Face:      -")
	}
	imgui.ProgressBarV(float32(status.Completion), imgui.NewVec2(-1, 0), fmt.Sprintf("%.0f%%", status.Completion*100))

	imgui.Spacing()
	imgui.TextColored(colorHeading, "Hinges")
	angles := a.CurrentAngles()
	faces := a.Faces()
	for i := 1; i < fold.FaceCount; i++ {
		color := colorIdle
		if i == status.ActiveFace && status.Stage != fold.StageComplete {
			color = colorActive
		}
		imgui.TextColored(color, fmt.Sprintf("Face %d (%s): %6.1f°", i, faces[i].Axis, angles[i]*180/gomath.Pi))
	}

	if app.hoverFace >= 0 {
		imgui.Text(fmt.Sprintf("Under cursor: face %d", app.hoverFace))
	} else {
		imgui.TextDisabled("Under cursor: -")
	}

	spin := app.foldNet.Spin()
	imgui.TextDisabled(fmt.Sprintf("Spin: %.2f %.2f %.2f", spin.X, spin.Y, spin.Z))

	imgui.Spacing()
	for _, h := range control.Help {
		imgui.TextDisabled(fmt.Sprintf("%-6s %s", h.Key, h.Action))
	}
}

func (app *App) renderEditorPanel() {
	state := app.editor.State()

	imgui.TextColored(colorHeading, "Dimensions")
	dims := state.Dimensions
	changed := imgui.SliderFloatV("Length", &dims.Length, editor.MinDimension, editor.MaxDimension, "%.2f", imgui.SliderFlagsNone)
	changed = imgui.SliderFloatV("Width", &dims.Width, editor.MinDimension, editor.MaxDimension, "%.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderFloatV("Depth", &dims.Depth, editor.MinDimension, editor.MaxDimension, "%.2f", imgui.SliderFlagsNone) || changed
	if changed {
		if err := state.SetDimensions(dims.Length, dims.Width, dims.Depth); err != nil {
			logger.Debug("dimension rejected", zap.Error(err))
		}
	}

	imgui.Spacing()
	imgui.TextColored(colorHeading, "Color")
	if imgui.BeginCombo("Preset", state.Material.SelectedColorPreset) {
		for _, p := range editor.ColorPresets {
			if imgui.SelectableBoolV(p.Name, p.Name == state.Material.SelectedColorPreset, 0, imgui.NewVec2(0, 0)) {
				if err := state.SelectColorPreset(p.Name); err != nil {
					logger.Warn("color preset", zap.Error(err))
				}
			}
		}
		imgui.EndCombo()
	}
	if c, err := editor.ParseHexColor(state.Material.Color); err == nil {
		rgb := [3]float32{c.R, c.G, c.B}
		if imgui.ColorEdit3("Custom", &rgb) {
			if err := state.SetColor(editor.FormatHexColor(scene.RGB(rgb[0], rgb[1], rgb[2]))); err != nil {
				logger.Warn("custom color", zap.Error(err))
			}
		}
	}
	imgui.SliderFloatV("Roughness", &state.Material.Roughness, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Metalness", &state.Material.Metalness, 0, 1, "%.2f", imgui.SliderFlagsNone)

	imgui.Spacing()
	imgui.TextColored(colorHeading, "Texture")
	if imgui.BeginCombo("Texture", state.Material.SelectedTexturePreset) {
		for _, p := range editor.TexturePresets {
			if imgui.SelectableBoolV(p.Name, p.Name == state.Material.SelectedTexturePreset, 0, imgui.NewVec2(0, 0)) {
				if err := state.SelectTexturePreset(p.Name); err != nil {
					logger.Warn("texture preset", zap.Error(err))
				}
			}
		}
		imgui.EndCombo()
	}

	imgui.SetNextItemWidth(-70)
	imgui.InputTextWithHint("##texpath", "Custom texture path...", &app.texturePathInput, 0, nil)
	imgui.SameLine()
	if imgui.Button("Apply") && app.texturePathInput != "" {
		state.SetTexturePath(app.texturePathInput)
	}
	if imgui.Button("Browse...") {
		app.openTextureDialog()
	}
	imgui.SameLine()
	if imgui.Button("Remove texture") {
		state.RemoveTexture()
	}

	hasTexture := state.Material.TextureURL != ""
	imgui.BeginDisabledV(!hasTexture)
	imgui.SliderFloatV("Repeat X", &state.Material.TextureRepeatX, editor.MinRepeat, editor.MaxRepeat, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Repeat Y", &state.Material.TextureRepeatY, editor.MinRepeat, editor.MaxRepeat, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Offset X", &state.Material.TextureOffsetX, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Offset Y", &state.Material.TextureOffsetY, 0, 1, "%.2f", imgui.SliderFlagsNone)
	imgui.EndDisabled()
	if hasTexture {
		imgui.TextDisabled(state.Material.TextureURL)
	}

	imgui.Spacing()
	imgui.Separator()
	if imgui.ButtonV("Export", imgui.NewVec2(100, 0)) {
		app.exportEditor("")
	}
	imgui.SameLine()
	if imgui.ButtonV("Export As...", imgui.NewVec2(-1, 0)) {
		app.openExportDialog()
	}
	if imgui.ButtonV("Load...", imgui.NewVec2(-1, 0)) {
		app.openLoadDialog()
	}
	imgui.TextDisabled("Drag to orbit, scroll to zoom")
}

func (app *App) renderSlidersPanel() {
	imgui.TextColored(colorHeading, "Rotation")
	for axis := demo.SliderX; axis <= demo.SliderZ; axis++ {
		pct := app.sliders.Percent(axis)
		if imgui.SliderFloatV(sliderLabels[axis], &pct, 0, 100, "%.0f%%", imgui.SliderFlagsNone) {
			app.sliders.SetPercent(axis, pct)
		}
	}

	rot := app.sliders.Rotation()
	for axis := demo.SliderX; axis <= demo.SliderZ; axis++ {
		imgui.Text(fmt.Sprintf("%s: %5.1f° -> %5.1f°",
			sliderLabels[axis], float64(rot[axis])*180/gomath.Pi, app.sliders.TargetDegrees(axis)))
	}

	imgui.Checkbox("Wireframe", &app.sliders.Wireframe)
	imgui.TextDisabled("Drag to orbit")
}

func (app *App) renderAudioPanel() {
	imgui.TextColored(colorHeading, "Audio")
	muted := app.audio.Muted()
	if imgui.Checkbox("Mute", &muted) {
		app.audio.SetMuted(muted)
	}
	vol := float32(app.audio.Volume())
	if imgui.SliderFloatV("Volume", &vol, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		app.audio.SetVolume(float64(vol))
	}
}
