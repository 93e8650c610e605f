package fold

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/logger"
)

// state is the single mutable animation state owned by an Animator.
type state struct {
	direction  Direction
	stage      Stage
	activeFace int
	progress   float64
	paused     bool
	angles     Angles
}

// Option configures an Animator.
type Option func(*Animator)

// WithObserver registers fn to receive transition events. fn runs on the
// caller's goroutine and must not call back into the Animator.
func WithObserver(fn func(Event)) Option {
	return func(a *Animator) {
		a.observer = fn
	}
}

// WithLogger replaces the default "fold" component logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) {
		a.log = l
	}
}

// Animator drives the fold/unfold sequence of a cube net.
// It is not safe for concurrent use; the frame loop and the control surface
// must share one goroutine.
type Animator struct {
	faces    [FaceCount]FaceConfig
	state    state
	observer func(Event)
	log      *zap.Logger
}

// New creates an Animator for the given face table. It starts unfolding,
// paused, at face 1 with every hinge closed.
func New(faces []FaceConfig, opts ...Option) (*Animator, error) {
	if len(faces) != FaceCount {
		return nil, fmt.Errorf("%w: got %d faces, want %d", ErrConfig, len(faces), FaceCount)
	}
	for i, f := range faces {
		if !f.Axis.Valid() {
			return nil, fmt.Errorf("%w: face %d has unsupported axis %v", ErrConfig, i, f.Axis)
		}
	}

	a := &Animator{log: logger.Named("fold")}
	copy(a.faces[:], faces)
	for _, opt := range opts {
		opt(a)
	}

	a.state.direction = Unfolding
	a.resetState()
	return a, nil
}

// Faces returns the static net topology.
func (a *Animator) Faces() [FaceCount]FaceConfig {
	return a.faces
}

// Target returns the pose the animator is currently driving toward.
func (a *Animator) Target() Target {
	if a.state.direction == Folding {
		return Folded
	}
	return Unfolded
}

// SetTarget switches the sequence direction. A changed target resets the
// state for the new direction and leaves the animator paused; an unchanged
// target is a no-op.
func (a *Animator) SetTarget(t Target) {
	dir := t.direction()
	if dir == a.state.direction {
		return
	}
	a.log.Debug("target changed",
		zap.Stringer("target", t),
		zap.Stringer("from", a.state.direction),
	)
	a.state.direction = dir
	a.Reset()
}

// Reset snaps every hinge to the start pose of the current direction and
// pauses the animation.
func (a *Animator) Reset() {
	a.resetState()
	a.log.Debug("reset",
		zap.Stringer("direction", a.state.direction),
		zap.Stringer("stage", a.state.stage),
	)
	a.emit(EventReset, 0)
}

func (a *Animator) resetState() {
	s := &a.state
	s.progress = 0
	s.paused = true

	switch s.direction {
	case Unfolding:
		s.angles = Angles{}
		s.stage = StagePrimarySequence
		s.activeFace = 1
	case Folding:
		s.angles = deployedPose()
		s.stage = StageFoldLastFaceStep1
		s.activeFace = LastFace
	default:
		panic(fmt.Sprintf("fold: unknown direction %v", s.direction))
	}
}

// deployedPose is the end pose of unfolding and the start pose of folding.
func deployedPose() Angles {
	var p Angles
	for i := 1; i < LastFace; i++ {
		p[i] = QuarterTurn
	}
	p[LastFace] = gomath.Pi
	return p
}

// TogglePause flips the paused flag.
func (a *Animator) TogglePause() {
	a.state.paused = !a.state.paused
}

// Play resumes the animation.
func (a *Animator) Play() {
	a.state.paused = false
}

// Pause halts the animation without touching angles or stage.
func (a *Animator) Pause() {
	a.state.paused = true
}

// Tick advances the sequence by one fixed increment. It is a no-op while
// paused and rejects NaN, infinite or negative steps without touching state.
func (a *Animator) Tick(step float64) error {
	if gomath.IsNaN(step) || gomath.IsInf(step, 0) || step < 0 {
		return fmt.Errorf("%w: tick step %v", ErrInvalidInput, step)
	}
	if a.state.paused {
		return nil
	}

	switch a.state.direction {
	case Unfolding:
		a.tickUnfolding(step)
	case Folding:
		a.tickFolding(step)
	default:
		panic(fmt.Sprintf("fold: unknown direction %v", a.state.direction))
	}
	return nil
}

// advance accumulates step into the current sub-step and reports whether a
// quarter turn has been reached.
func (s *state) advance(step float64) bool {
	s.progress += step
	return s.progress >= QuarterTurn-progressEpsilon
}

func (a *Animator) tickUnfolding(step float64) {
	s := &a.state

	switch s.stage {
	case StagePrimarySequence:
		face := s.activeFace
		if !s.advance(step) {
			s.angles[face] += step
			return
		}
		s.angles[face] = QuarterTurn
		s.progress = 0
		s.activeFace++
		a.emit(EventFaceDone, face)

		// Face 5 hangs off face 4 and needs a second quarter turn.
		if s.activeFace == FaceCount {
			s.activeFace = LastFace
			a.setStage(StageLastFaceExtraTurn)
		}

	case StageLastFaceExtraTurn:
		if !s.advance(step) {
			s.angles[LastFace] += step
			return
		}
		s.angles[LastFace] = gomath.Pi
		s.progress = 0
		a.emit(EventFaceDone, LastFace)
		a.setStage(StageComplete)
		a.emit(EventComplete, 0)

	case StageComplete:

	default:
		panic(fmt.Sprintf("fold: stage %v unreachable while %v", s.stage, s.direction))
	}
}

func (a *Animator) tickFolding(step float64) {
	s := &a.state

	switch s.stage {
	case StageFoldLastFaceStep1:
		if !s.advance(step) {
			s.angles[LastFace] -= step
			return
		}
		s.angles[LastFace] = QuarterTurn
		s.progress = 0
		a.setStage(StageFoldLastFaceStep2)

	case StageFoldLastFaceStep2:
		if !s.advance(step) {
			s.angles[LastFace] -= step
			return
		}
		s.angles[LastFace] = 0
		s.progress = 0
		a.emit(EventFaceDone, LastFace)
		s.activeFace = LastFace - 1
		a.setStage(StageFoldRemaining)

	case StageFoldRemaining:
		face := s.activeFace
		if !s.advance(step) {
			s.angles[face] -= step
			return
		}
		s.angles[face] = 0
		s.progress = 0
		s.activeFace--
		a.emit(EventFaceDone, face)
		if s.activeFace < 1 {
			a.setStage(StageComplete)
			a.emit(EventComplete, 0)
		}

	case StageComplete:

	default:
		panic(fmt.Sprintf("fold: stage %v unreachable while %v", s.stage, s.direction))
	}
}

func (a *Animator) setStage(next Stage) {
	prev := a.state.stage
	a.state.stage = next
	a.log.Debug("stage changed",
		zap.Stringer("direction", a.state.direction),
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
	)
	a.emit(EventStageChanged, 0)
}

func (a *Animator) emit(kind EventKind, face int) {
	if a.observer == nil {
		return
	}
	a.observer(Event{
		Kind:      kind,
		Direction: a.state.direction,
		Stage:     a.state.stage,
		Face:      face,
	})
}

// CurrentAngles returns a snapshot of every hinge angle.
func (a *Animator) CurrentAngles() Angles {
	return a.state.angles
}

// Status returns the control surface view of the animation.
func (a *Animator) Status() Status {
	s := a.state
	return Status{
		Direction:  s.direction,
		Stage:      s.stage,
		ActiveFace: s.activeFace,
		Paused:     s.paused,
		Progress:   s.progress,
		Completion: a.completion(),
	}
}

// totalSweep is the summed hinge travel between the two poses.
var totalSweep = func() float64 {
	var sum float64
	for _, v := range deployedPose() {
		sum += v
	}
	return sum
}()

func (a *Animator) completion() float64 {
	if a.state.stage == StageComplete {
		return 1
	}

	var swept float64
	for _, v := range a.state.angles {
		swept += v
	}
	frac := swept / totalSweep
	if a.state.direction == Folding {
		frac = 1 - frac
	}
	return gomath.Min(gomath.Max(frac, 0), 1)
}
