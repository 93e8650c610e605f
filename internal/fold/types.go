// Package fold sequences the hinge rotations that fold a six-panel cube net
// into a cube and unfold it again.
//
// The Animator is driven by the host's frame loop through Tick and controlled
// through SetTarget, TogglePause and Reset. It owns plain angle data only; the
// renderer reads CurrentAngles each frame and applies them to whatever scene
// objects it owns.
package fold

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/cubefold/pkg/math"
)

// FaceCount is the number of panels in the net.
const FaceCount = 6

// LastFace is the panel attached through two sequential hinges; it sweeps a
// straight angle instead of a quarter turn.
const LastFace = FaceCount - 1

// QuarterTurn is the unit of fold motion.
const QuarterTurn = gomath.Pi / 2

// progressEpsilon absorbs float accumulation so that ceil(QuarterTurn/step)
// ticks always complete a quarter turn.
const progressEpsilon = 1e-9

var (
	// ErrConfig reports a malformed face configuration table.
	ErrConfig = errors.New("invalid face configuration")

	// ErrInvalidInput reports a tick step that is NaN, infinite or negative.
	ErrInvalidInput = errors.New("invalid input")
)

// Axis is the local axis a hinge rotates about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the supported hinge axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY
}

// FaceConfig describes one panel of the net.
type FaceConfig struct {
	RestPosition math.Vec3 // Pivot position when fully unfolded
	PivotOffset  math.Vec3 // Hinge to panel centre
	Axis         Axis
}

// Angles holds the current hinge angle of every face, indexed by face.
type Angles [FaceCount]float64

// Direction is the target the sequence is driving toward.
type Direction int

const (
	Unfolding Direction = iota
	Folding
)

func (d Direction) String() string {
	switch d {
	case Unfolding:
		return "unfolding"
	case Folding:
		return "folding"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Target is the pose requested by the control surface.
type Target int

const (
	Unfolded Target = iota
	Folded
)

func (t Target) String() string {
	switch t {
	case Unfolded:
		return "unfolded"
	case Folded:
		return "folded"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// direction returns the direction that drives toward t.
func (t Target) direction() Direction {
	if t == Folded {
		return Folding
	}
	return Unfolding
}

// Stage is a named phase of the sequence with its own per-tick rule.
type Stage int

const (
	StagePrimarySequence Stage = iota
	StageLastFaceExtraTurn
	StageFoldLastFaceStep1
	StageFoldLastFaceStep2
	StageFoldRemaining
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StagePrimarySequence:
		return "primary-sequence"
	case StageLastFaceExtraTurn:
		return "last-face-extra-turn"
	case StageFoldLastFaceStep1:
		return "fold-last-face-step1"
	case StageFoldLastFaceStep2:
		return "fold-last-face-step2"
	case StageFoldRemaining:
		return "fold-remaining"
	case StageComplete:
		return "complete"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Status is the read-only view shown by control surfaces.
type Status struct {
	Direction  Direction
	Stage      Stage
	ActiveFace int
	Paused     bool
	Progress   float64 // Rotation accumulated in the current sub-step
	Completion float64 // Fraction of the direction's total sweep, 0..1
}

// EventKind classifies animator notifications.
type EventKind int

const (
	EventReset EventKind = iota
	EventFaceDone
	EventStageChanged
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventFaceDone:
		return "face-done"
	case EventStageChanged:
		return "stage-changed"
	case EventComplete:
		return "complete"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered synchronously to the observer from within Tick, Reset
// and SetTarget.
type Event struct {
	Kind      EventKind
	Direction Direction
	Stage     Stage // Stage after the event
	Face      int   // Face whose sub-step finished, for EventFaceDone
}
