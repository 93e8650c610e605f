// Package audio plays short synthesized tone cues.
package audio

import (
	"errors"
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeds.
var ErrNotInitialized = errors.New("audio not initialized")

// Cue identifies a sound.
type Cue int

const (
	CueFaceDone Cue = iota
	CueStageChanged
	CueComplete
	CueReset
)

func (c Cue) String() string {
	switch c {
	case CueFaceDone:
		return "face-done"
	case CueStageChanged:
		return "stage-changed"
	case CueComplete:
		return "complete"
	case CueReset:
		return "reset"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// tone is a sine burst.
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueFaceDone:     {freq: 660, duration: 60 * time.Millisecond},
	CueStageChanged: {freq: 440, duration: 90 * time.Millisecond},
	CueComplete:     {freq: 880, duration: 200 * time.Millisecond},
	CueReset:        {freq: 330, duration: 80 * time.Millisecond},
}

// Manager mixes cues into the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0
	muted       bool

	mixer *beep.Mixer
}

// New creates a new audio manager with the given volume.
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	// The mixer plays silence when empty, so it stays on the speaker.
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetMuted silences cues without closing the speaker.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether cues are silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Play queues a cue on the mixer. Muted or zero-volume cues are dropped.
func (m *Manager) Play(c Cue) error {
	m.mu.RLock()
	initialized, muted, vol := m.initialized, m.muted, m.volume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if muted || vol <= 0 {
		return nil
	}

	s, err := m.cueStreamer(c, vol)
	if err != nil {
		return err
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// cueStreamer synthesizes the finite streamer for c at vol.
func (m *Manager) cueStreamer(c Cue, vol float64) (beep.Streamer, error) {
	t, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", c)
	}

	sine, err := generators.SineTone(m.sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %v Hz: %w", t.freq, err)
	}

	return &effects.Volume{
		Streamer: beep.Take(m.sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   gain(vol),
		Silent:   vol <= 0,
	}, nil
}

// gain converts a 0-1 volume to the base-2 exponent used by effects.Volume.
func gain(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0, vol=0.5 -> -1 (half amplitude)
	return gomath.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
