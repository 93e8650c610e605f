package main

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/logger"
)

// Dialogs block, so they run in a goroutine and queue their result; SDL
// state is only touched from the main thread in processPendingDialogs.

func (app *App) openExportDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("JSON", "json").
			Title("Export Box").
			Save()
		if !dialogOK(err) {
			return
		}
		app.dialogMu.Lock()
		app.pendingExportPath = filename
		app.dialogMu.Unlock()
	}()
}

func (app *App) openLoadDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("JSON", "json").
			Filter("All Files", "*").
			Title("Load Box").
			Load()
		if !dialogOK(err) {
			return
		}
		app.dialogMu.Lock()
		app.pendingLoadPath = filename
		app.dialogMu.Unlock()
	}()
}

func (app *App) openTextureDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "gif", "bmp").
			Title("Choose Texture").
			SetStartDir(app.cfg.Editor.TextureDir).
			Load()
		if !dialogOK(err) {
			return
		}
		app.dialogMu.Lock()
		app.pendingTexture = filename
		app.dialogMu.Unlock()
	}()
}

func dialogOK(err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, dialog.ErrCancelled) {
		logger.Warn("file dialog failed", zap.Error(err))
	}
	return false
}

// processPendingDialogs applies dialog results on the main thread.
func (app *App) processPendingDialogs() {
	app.dialogMu.Lock()
	exportPath, loadPath, texture := app.pendingExportPath, app.pendingLoadPath, app.pendingTexture
	app.pendingExportPath, app.pendingLoadPath, app.pendingTexture = "", "", ""
	app.dialogMu.Unlock()

	if exportPath != "" {
		app.exportEditor(exportPath)
	}
	if loadPath != "" {
		if err := app.editor.Load(loadPath); err != nil {
			logger.Warn("load failed", zap.String("path", loadPath), zap.Error(err))
			app.showMessage("Load failed: " + err.Error())
		} else {
			app.showMessage("Loaded: " + loadPath)
			app.switchDemo(app.editor.Name())
		}
	}
	if texture != "" {
		app.texturePathInput = texture
		app.editor.State().SetTexturePath(texture)
	}
}

// exportEditor writes the editor state; an empty path uses the configured
// default.
func (app *App) exportEditor(path string) {
	if path == "" {
		path = app.editor.ExportPath()
	}
	if err := app.editor.Export(path); err != nil {
		logger.Warn("export failed", zap.String("path", path), zap.Error(err))
		app.showMessage("Export failed: " + err.Error())
		return
	}
	logger.Info("editor state exported", zap.String("path", path))
	app.showMessage("Exported: " + path)
}
