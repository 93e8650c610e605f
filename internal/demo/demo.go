// Package demo implements the switchable 3D demos. Demos hold pure scene
// logic and draw through a Sink, so they run unchanged under any renderer.
package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/logger"
	"github.com/Faultbox/cubefold/internal/scene"
)

// Sink receives a frame's draw calls.
type Sink interface {
	// BeginView sets the viewport, clears it and selects its camera.
	BeginView(v scene.View)
	DrawBox(b scene.Box)
	DrawLine(l scene.Line)
}

// Demo is one selectable scene.
type Demo interface {
	// Name is the identifier used by config and menus.
	Name() string

	// Enter is called when the demo becomes active.
	Enter() error

	// Exit is called when leaving the demo.
	Exit() error

	// Update is called once per frame.
	Update(dt float64) error

	// Render draws the demo into a target of the given pixel size.
	Render(s Sink, width, height int)
}

// Manager manages demo transitions.
type Manager struct {
	demos   map[string]Demo
	order   []string
	current Demo
	next    Demo
}

// NewManager creates a demo manager.
func NewManager() *Manager {
	return &Manager{demos: make(map[string]Demo)}
}

// Register adds d under its name, replacing any demo of the same name.
func (m *Manager) Register(d Demo) {
	if _, ok := m.demos[d.Name()]; !ok {
		m.order = append(m.order, d.Name())
	}
	m.demos[d.Name()] = d
}

// Names returns registered demo names in registration order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

// Get returns the demo registered under name.
func (m *Manager) Get(name string) (Demo, bool) {
	d, ok := m.demos[name]
	return d, ok
}

// Current returns the active demo.
func (m *Manager) Current() Demo {
	return m.current
}

// Change schedules a demo change for the next Update.
func (m *Manager) Change(next Demo) {
	m.next = next
}

// Switch schedules a change to the demo registered under name.
func (m *Manager) Switch(name string) error {
	d, ok := m.demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q", name)
	}
	if d != m.current {
		m.next = d
	}
	return nil
}

// Update processes demo changes and updates the current demo.
func (m *Manager) Update(dt float64) error {
	// Handle transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return fmt.Errorf("exiting %s: %w", m.current.Name(), err)
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return fmt.Errorf("entering %s: %w", m.current.Name(), err)
		}
		logger.Info("demo changed", zap.String("demo", m.current.Name()))
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current demo.
func (m *Manager) Render(s Sink, width, height int) {
	if m.current != nil {
		m.current.Render(s, width, height)
	}
}
