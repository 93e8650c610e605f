// Package term is a terminal control surface for the fold animation. It
// shows the status and per-face hinge angles and accepts the same keys as
// the graphical hosts.
package term

import (
	"fmt"
	gomath "math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/control"
	"github.com/Faultbox/cubefold/internal/demo"
	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
)

// FrameInterval paces ticks at roughly 60 per second.
const FrameInterval = 16 * time.Millisecond

const barWidth = 30

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBar    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal drives a fold net and draws it as text.
type Terminal struct {
	screen tcell.Screen
	net    *demo.FoldNet
}

// New wraps an initialized screen.
func New(screen tcell.Screen, net *demo.FoldNet) *Terminal {
	return &Terminal{screen: screen, net: net}
}

// HandleEvent applies a terminal event and reports whether to keep running.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := actionFor(ev)
		if a == control.Quit {
			return false
		}
		if control.Apply(a, t.net) {
			logger.Debug("control", zap.Stringer("action", a))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func actionFor(ev *tcell.EventKey) control.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.Quit
	case tcell.KeyRune:
		return control.ForRune(ev.Rune())
	}
	return control.None
}

// Tick advances the animation by one frame.
func (t *Terminal) Tick() error {
	return t.net.Update(FrameInterval.Seconds())
}

// Draw renders the status panel.
func (t *Terminal) Draw() {
	t.screen.Clear()

	t.drawString(1, 0, "cubefold", styleTitle)
	status := t.net.Animator().Status()
	t.drawString(1, 2, control.FormatStatus(status), styleStatus)

	angles := t.net.Animator().CurrentAngles()
	faces := t.net.Animator().Faces()
	for i := 1; i < fold.FaceCount; i++ {
		style := styleBar
		if i == status.ActiveFace && status.Stage != fold.StageComplete {
			style = styleActive
		}
		line := fmt.Sprintf("face %d %-2s %6.1f° %s", i, faces[i].Axis, degrees(angles[i]), bar(angles[i]))
		t.drawString(1, 3+i, line, style)
	}

	y := 4 + fold.FaceCount
	for _, h := range control.Help {
		t.drawString(1, y, fmt.Sprintf("%-6s %s", h.Key, h.Action), styleHelp)
		y++
	}

	t.screen.Show()
}

// Run pumps events and ticks until the user quits.
func (t *Terminal) Run() error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	t.Draw()
	for {
		select {
		case ev := <-eventChan:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := t.Tick(); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			t.Draw()
		}
	}
}

func (t *Terminal) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / gomath.Pi
}

// bar draws an angle against the half-turn maximum.
func bar(rad float64) string {
	n := int(gomath.Round(gomath.Abs(rad) / gomath.Pi * barWidth))
	n = min(n, barWidth)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", barWidth-n) + "]"
}
