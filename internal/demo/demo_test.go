package demo

import (
	"errors"
	gomath "math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubefold/internal/config"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/scene"
	"github.com/Faultbox/cubefold/pkg/math"
)

// recordingSink captures draw calls for inspection.
type recordingSink struct {
	views []scene.View
	boxes []scene.Box
	lines []scene.Line
}

func (s *recordingSink) BeginView(v scene.View) { s.views = append(s.views, v) }
func (s *recordingSink) DrawBox(b scene.Box)    { s.boxes = append(s.boxes, b) }
func (s *recordingSink) DrawLine(l scene.Line)  { s.lines = append(s.lines, l) }

// fakeDemo records lifecycle calls.
type fakeDemo struct {
	name    string
	calls   []string
	failOn  string
	updates int
}

func (d *fakeDemo) Name() string { return d.name }

func (d *fakeDemo) record(call string) error {
	d.calls = append(d.calls, call)
	if call == d.failOn {
		return errors.New(call + " failed")
	}
	return nil
}

func (d *fakeDemo) Enter() error { return d.record("enter") }
func (d *fakeDemo) Exit() error  { return d.record("exit") }
func (d *fakeDemo) Update(dt float64) error {
	d.updates++
	return d.record("update")
}
func (d *fakeDemo) Render(s Sink, width, height int) { s.DrawLine(scene.Line{}) }

func TestManagerTransitions(t *testing.T) {
	a := &fakeDemo{name: "a"}
	b := &fakeDemo{name: "b"}
	m := NewManager()
	m.Register(a)
	m.Register(b)
	assert.Equal(t, []string{"a", "b"}, m.Names())

	require.NoError(t, m.Switch("a"))
	assert.Nil(t, m.Current(), "change applies on the next update")

	require.NoError(t, m.Update(0.016))
	assert.Equal(t, a, m.Current())
	assert.Equal(t, []string{"enter", "update"}, a.calls)

	require.NoError(t, m.Switch("b"))
	require.NoError(t, m.Update(0.016))
	assert.Equal(t, b, m.Current())
	assert.Equal(t, []string{"enter", "update", "exit"}, a.calls)
	assert.Equal(t, []string{"enter", "update"}, b.calls)

	// Switching to the active demo does not re-enter it.
	require.NoError(t, m.Switch("b"))
	require.NoError(t, m.Update(0.016))
	assert.Equal(t, []string{"enter", "update", "update"}, b.calls)

	var sink recordingSink
	m.Render(&sink, 100, 100)
	assert.Len(t, sink.lines, 1)
}

func TestManagerUnknownDemo(t *testing.T) {
	m := NewManager()
	assert.Error(t, m.Switch("nope"))
	require.NoError(t, m.Update(0.016))

	var sink recordingSink
	m.Render(&sink, 100, 100)
	assert.Empty(t, sink.lines)
}

func TestManagerPropagatesEnterError(t *testing.T) {
	m := NewManager()
	m.Change(&fakeDemo{name: "bad", failOn: "enter"})
	err := m.Update(0.016)
	assert.ErrorContains(t, err, "entering bad")
}

func TestSpin(t *testing.T) {
	d := NewSpin()
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Update(0.016))
	}
	assert.InDelta(t, 0.1, d.Rotation(), 1e-5)

	var sink recordingSink
	d.Render(&sink, 800, 600)
	require.Len(t, sink.views, 1)
	require.Len(t, sink.boxes, 1)
	assert.Equal(t, scene.ColorGreen, sink.boxes[0].Color)
	assert.Equal(t, math.RotateZ(d.Rotation()), sink.boxes[0].Model)
}

func TestSplitViews(t *testing.T) {
	d := NewSplit()
	require.NoError(t, d.Update(0.016))

	var sink recordingSink
	d.Render(&sink, 800, 600)
	require.Len(t, sink.views, 2)
	require.Len(t, sink.boxes, 2)

	left, right := sink.views[0], sink.views[1]
	assert.Equal(t, scene.ColorWhite, left.Clear)
	assert.Equal(t, scene.ColorBlack, right.Clear)
	assert.Equal(t, float32(0), left.X)
	assert.Equal(t, float32(0.5), right.X)
	assert.Equal(t, left.W, right.W)
	assert.Equal(t, sink.boxes[0].Model, sink.boxes[1].Model)
}

func TestFoldNetRunsAnimator(t *testing.T) {
	cfg := config.Default().Animation
	cfg.AutoPlay = true

	var events []fold.Event
	d, err := NewFoldNet(cfg, fold.WithObserver(func(e fold.Event) { events = append(events, e) }))
	require.NoError(t, err)
	require.NoError(t, d.Enter())

	for d.Animator().Status().Stage != fold.StageComplete {
		require.NoError(t, d.Update(0.016))
	}
	assert.NotEmpty(t, events)
	assert.InDelta(t, cfg.SpinRate, d.Spin().X, 1e-6, "spin starts on the completing frame")

	require.NoError(t, d.Update(0.016))
	assert.InDelta(t, 2*cfg.SpinRate, d.Spin().X, 1e-6)

	var sink recordingSink
	d.Render(&sink, 800, 600)
	require.Len(t, sink.boxes, fold.FaceCount)
	assert.Nil(t, sink.views[0].Light, "fold net panels are flat shaded")
	for i, b := range sink.boxes {
		assert.Equal(t, scene.PanelColors[i], b.Color)
		assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 0.1}, b.Size)
	}

	d.SetTarget(fold.Folded)
	assert.Zero(t, d.Spin().X)
	assert.True(t, d.Animator().Status().Paused)
}

func TestFoldNetFaceAt(t *testing.T) {
	d, err := NewFoldNet(config.Default().Animation)
	require.NoError(t, err)

	face, ok := d.FaceAt(400, 300, 800, 600)
	require.True(t, ok, "centre of the view is covered by the closed net")
	assert.Equal(t, 0, face, "coincident panels resolve to the lowest index")

	_, ok = d.FaceAt(0, 0, 800, 600)
	assert.False(t, ok)
}

func TestFoldNetPausedByDefault(t *testing.T) {
	d, err := NewFoldNet(config.Default().Animation)
	require.NoError(t, err)
	require.NoError(t, d.Enter())
	require.NoError(t, d.Update(0.016))
	assert.Equal(t, fold.Angles{}, d.Animator().CurrentAngles())
}

func TestFoldNetInvalidStep(t *testing.T) {
	cfg := config.Default().Animation
	cfg.Step = gomath.NaN()
	cfg.AutoPlay = true

	d, err := NewFoldNet(cfg)
	require.NoError(t, err)
	require.NoError(t, d.Enter())
	assert.ErrorIs(t, d.Update(0.016), fold.ErrInvalidInput)
}

func TestFoldNetRestart(t *testing.T) {
	cfg := config.Default().Animation
	cfg.SpinAlways = true
	cfg.AutoPlay = true
	d, err := NewFoldNet(cfg)
	require.NoError(t, err)
	require.NoError(t, d.Enter())
	for i := 0; i < 50; i++ {
		require.NoError(t, d.Update(0.016))
	}
	assert.NotZero(t, d.Spin().X)

	d.Restart()
	assert.Zero(t, d.Spin().X)
	assert.Equal(t, fold.Angles{}, d.Animator().CurrentAngles())
}

func TestSlidersMapping(t *testing.T) {
	d := NewSliders(config.SlidersConfig{TweenSeconds: 0})

	tests := []struct {
		pct     float32
		wantDeg float64
	}{
		{0, 0},
		{50, 45},
		{100, 90},
		{150, 90},
		{-10, 0},
	}
	for _, tt := range tests {
		d.SetPercent(SliderY, tt.pct)
		assert.InDelta(t, tt.wantDeg, d.TargetDegrees(SliderY), 1e-4, "pct %v", tt.pct)
		assert.InDelta(t, tt.wantDeg*gomath.Pi/180, d.Rotation()[SliderY], 1e-5, "zero duration snaps")
	}
}

func TestSlidersTweenConverges(t *testing.T) {
	d := NewSliders(config.SlidersConfig{TweenSeconds: 0.25})
	d.SetPercent(SliderX, 100)

	require.NoError(t, d.Update(0.1))
	mid := d.Rotation()[SliderX]
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(gomath.Pi/2))

	for i := 0; i < 10; i++ {
		require.NoError(t, d.Update(0.1))
	}
	assert.InDelta(t, gomath.Pi/2, d.Rotation()[SliderX], 1e-5)
	assert.Zero(t, d.Rotation()[SliderZ])
}

func TestSlidersRender(t *testing.T) {
	d := NewSliders(config.SlidersConfig{})
	d.SetPercent(SliderZ, 100)

	var sink recordingSink
	d.Render(&sink, 800, 600)
	require.Len(t, sink.boxes, 4)
	require.Len(t, sink.lines, 1)

	wantX := []float32{-34, -17, 0, 17}
	wantY := []float32{0, 5, 0, -10}
	for i, b := range sink.boxes {
		centre := b.Model.TransformVec3(math.Vec3{})
		assert.InDelta(t, wantX[i], centre.X, 1e-4)
		assert.InDelta(t, wantY[i], centre.Y, 1e-4)
		assert.True(t, b.Wireframe)
		assert.Equal(t, math.Vec3{X: 15, Y: 10, Z: 1}, b.Size)
	}
	assert.Equal(t, sink.boxes[0].Model[0], sink.boxes[3].Model[0], "boxes share rotation")
}

func TestEditorExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	d := NewEditor(config.EditorConfig{ExportPath: path, TextureDir: "textures"})

	require.NoError(t, d.State().SelectColorPreset("Red"))
	require.NoError(t, d.Export(""))

	other := NewEditor(config.EditorConfig{ExportPath: path, TextureDir: "textures"})
	require.NoError(t, other.Load(path))
	assert.Equal(t, "#ff0000", other.State().Material.Color)

	var sink recordingSink
	other.Render(&sink, 800, 600)
	require.Len(t, sink.boxes, 1)
	assert.Equal(t, scene.ColorRed, sink.boxes[0].Color)
	assert.Equal(t, scene.Hex(0xdedede), sink.views[0].Clear)
	require.NotNil(t, sink.views[0].Light, "editor box is lit")
	assert.Equal(t, float32(0.6), sink.views[0].Light.Ambient)
}
