// Package renderer draws scene primitives with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/engine/mesh"
	"github.com/Faultbox/cubefold/internal/engine/shader"
	"github.com/Faultbox/cubefold/internal/engine/texture"
	"github.com/Faultbox/cubefold/internal/logger"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// buffer is one VAO/VBO pair.
type buffer struct {
	vao, vbo uint32
	count    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	program  *shader.Program
	textures *texture.Cache

	box   buffer
	edges buffer
	line  buffer

	// Current render target size and view transform.
	width, height int32
	viewProj      math.Mat4
	lit           bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.Compile("primitive", vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{
		program:  program,
		textures: texture.NewCache(),
		viewProj: math.Identity(),
	}

	r.box = newBuffer(mesh.Box(), mesh.BoxStride, gl.STATIC_DRAW, true)
	r.edges = newBuffer(mesh.UnitEdges(), mesh.LineStride, gl.STATIC_DRAW, false)
	r.line = newBuffer(mesh.Line(math.Vec3{}, math.Vec3{}), mesh.LineStride, gl.DYNAMIC_DRAW, false)

	logger.Debug("primitive buffers created",
		zap.Uint32("box_vao", r.box.vao),
		zap.Uint32("edges_vao", r.edges.vao),
		zap.Uint32("line_vao", r.line.vao),
	)
	return r, nil
}

// newBuffer uploads interleaved vertices. Position is always at location 0;
// surface adds a normal at location 1 and a UV at location 2.
func newBuffer(vertices []float32, stride int, usage uint32, surface bool) buffer {
	b := buffer{count: int32(len(vertices) / stride)}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), usage)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(stride*4), nil)
	gl.EnableVertexAttribArray(0)
	if surface {
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, int32(stride*4), unsafe.Pointer(uintptr(3*4)))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, int32(stride*4), unsafe.Pointer(uintptr(6*4)))
		gl.EnableVertexAttribArray(2)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

func (b *buffer) destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.box.destroy()
	r.edges.destroy()
	r.line.destroy()
	r.textures.Destroy()
	r.program.Delete()
}

// Begin starts a frame on a target of the given pixel size.
func (r *Renderer) Begin(width, height int) {
	r.width = int32(max(width, 1))
	r.height = int32(max(height, 1))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.SCISSOR_TEST)
	r.program.Use()
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Disable(gl.SCISSOR_TEST)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// viewportRect converts a view's fractional rectangle to pixels.
func viewportRect(v scene.View, width, height int32) (x, y, w, h int32) {
	x = int32(v.X * float32(width))
	y = int32(v.Y * float32(height))
	w = int32(v.W * float32(width))
	h = int32(v.H * float32(height))
	return x, y, w, h
}

// BeginView restricts drawing to v's viewport, clears it and selects its camera.
func (r *Renderer) BeginView(v scene.View) {
	x, y, w, h := viewportRect(v, r.width, r.height)
	gl.Viewport(x, y, w, h)
	gl.Scissor(x, y, w, h)
	gl.ClearColor(v.Clear.R, v.Clear.G, v.Clear.B, v.Clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.viewProj = v.Projection.Mul(v.View)

	r.lit = v.Light != nil
	if r.lit {
		r.program.SetFloat("uAmbient", v.Light.Ambient)
		r.program.SetFloat("uDiffuse", v.Light.Diffuse)
		r.program.SetVec3("uLightDir", v.Light.Direction)
	}
}

// DrawBox draws a solid or wireframe box.
func (r *Renderer) DrawBox(b scene.Box) {
	model := b.Model.Mul(math.Scale(b.Size.X, b.Size.Y, b.Size.Z))
	r.program.SetMat4("uMVP", r.viewProj.Mul(model))
	r.program.SetMat4("uModel", model)
	r.program.SetVec4("uColor", b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	r.program.SetBool("uLit", r.lit && !b.Wireframe)

	textured := false
	if b.Texture != "" && !b.Wireframe {
		if id, err := r.textures.Get(b.Texture); err == nil {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, id)
			r.program.SetInt("uTexture", 0)
			r.program.SetVec2("uTexRepeat", b.TexRepeat)
			r.program.SetVec2("uTexOffset", b.TexOffset)
			textured = true
		}
	}
	r.program.SetBool("uTextured", textured)

	if b.Wireframe {
		gl.BindVertexArray(r.edges.vao)
		gl.DrawArrays(gl.LINES, 0, r.edges.count)
		return
	}
	gl.BindVertexArray(r.box.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.box.count)
}

// DrawLine draws a single world-space segment.
func (r *Renderer) DrawLine(l scene.Line) {
	verts := mesh.Line(l.From, l.To)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.line.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.program.SetMat4("uMVP", r.viewProj)
	r.program.SetVec4("uColor", l.Color.R, l.Color.G, l.Color.B, l.Color.A)
	r.program.SetBool("uTextured", false)
	r.program.SetBool("uLit", false)

	gl.BindVertexArray(r.line.vao)
	gl.DrawArrays(gl.LINES, 0, r.line.count)
}
