package audio

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cubefold/internal/fold"
	"github.com/Faultbox/cubefold/internal/logger"
)

// CueFor maps an animator event to its cue.
func CueFor(e fold.Event) Cue {
	switch e.Kind {
	case fold.EventFaceDone:
		return CueFaceDone
	case fold.EventStageChanged:
		if e.Stage == fold.StageComplete {
			// EventComplete follows immediately and carries the sound.
			return -1
		}
		return CueStageChanged
	case fold.EventComplete:
		return CueComplete
	case fold.EventReset:
		return CueReset
	default:
		return -1
	}
}

// FoldObserver returns an animator observer that plays the matching cue.
func (m *Manager) FoldObserver() func(fold.Event) {
	return func(e fold.Event) {
		c := CueFor(e)
		if _, ok := cueTones[c]; !ok {
			return
		}
		if err := m.Play(c); err != nil {
			logger.Debug("cue dropped", zap.Stringer("cue", c), zap.Error(err))
		}
	}
}
