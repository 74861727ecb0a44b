// Package sound plays short synthesized UI effects through the speaker.
// Every preset is generated, no sample assets; when no audio device is
// available the manager degrades to silent no-ops.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the mixer and speaker lifecycle for preset playback
type Manager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	sr          beep.SampleRate
	initialized bool
}

// NewManager creates a manager with the given config
// Playback stays inert until Initialize succeeds
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		sr:    beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize sets up the audio system; safe to call twice
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sr, m.sr.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything; playback calls afterward are no-ops
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Clear()
	m.initialized = false
}

// SetEnabled toggles playback without tearing down the speaker
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.cfg.Enabled = enabled
	m.mu.Unlock()
}

// Enabled reports whether playback is on
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Enabled
}

// Play queues one preset effect
// Silently does nothing when uninitialized, disabled, or muted to zero
func (m *Manager) Play(p Preset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.cfg.Enabled {
		return
	}
	vol := m.cfg.volumeFor(p)
	if vol <= 0 {
		return
	}

	streamer := beep.Take(m.sr.N(p.length()), p.generator(m.sr))
	m.mixer.Add(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(vol),
	})
}

// Click plays the key/button tick
func (m *Manager) Click() { m.Play(PresetClick) }

// Error plays the rejection buzz
func (m *Manager) Error() { m.Play(PresetError) }

// Success plays the confirmation chime
func (m *Manager) Success() { m.Play(PresetSuccess) }

// Whoosh plays the transition sweep
func (m *Manager) Whoosh() { m.Play(PresetWhoosh) }

// Bell plays the attention chime
func (m *Manager) Bell() { m.Play(PresetBell) }
