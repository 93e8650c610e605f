// Package ui provides ImGui-based user interface components.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/engine/camera"
	"github.com/Faultbox/cubefold/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	width   int32
	height  int32
}

// NewBackend creates the window, the ImGui context and the GL bindings.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{
		width:  width,
		height: height,
	}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, int(width), int(height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	logger.Info("imgui backend ready", zap.String("title", title), zap.Int32("width", width), zap.Int32("height", height))

	return b, nil
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// RequestClose ends Run after the current frame.
func (b *Backend) RequestClose() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// WorkArea returns the main viewport work area.
func WorkArea() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// Viewport draws an offscreen color texture filling the available region
// and reports the region's size in pixels so the caller can resize the
// target for the next frame.
func Viewport(texture uint32) (width, height int32) {
	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		return 1, 1
	}

	// GL textures are bottom-up.
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*texRef,
		avail,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	scale := imgui.CurrentIO().DisplayFramebufferScale()
	return int32(avail.X * scale.X), int32(avail.Y * scale.Y)
}

var lastMousePos imgui.Vec2

// OrbitControls applies drag and wheel input over the last drawn item to
// cam. Pass zoom false to ignore the wheel.
func OrbitControls(cam *camera.OrbitCamera, zoom bool) {
	if !imgui.IsItemHovered() {
		return
	}

	mousePos := imgui.MousePos()
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		cam.HandleDrag(mousePos.X-lastMousePos.X, mousePos.Y-lastMousePos.Y)
	}
	lastMousePos = mousePos

	if !zoom {
		return
	}
	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		cam.HandleZoom(wheel)
	}
}

// HoverPosition returns the mouse position over the last drawn item in
// framebuffer pixels, origin top-left.
func HoverPosition() (x, y float32, ok bool) {
	if !imgui.IsItemHovered() {
		return 0, 0, false
	}
	mouse := imgui.MousePos()
	origin := imgui.ItemRectMin()
	scale := imgui.CurrentIO().DisplayFramebufferScale()
	return (mouse.X - origin.X) * scale.X, (mouse.Y - origin.Y) * scale.Y, true
}
