//go:build ebiten

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Music owns the speaker and a single paused music stream. It is driven
// from one goroutine; the speaker lock only guards against its own mixing
// goroutine.
type Music struct {
	track   *Track
	ctrl    *beep.Ctrl
	started bool
}

// Open decodes the track at path and prepares it at the given linear gain.
func Open(path string, gain float64) (*Music, error) {
	track, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return &Music{
		track: track,
		ctrl:  &beep.Ctrl{Streamer: WithVolume(track.Stream, gain), Paused: true},
	}, nil
}

// Start initializes the speaker and queues the track paused.
func (m *Music) Start() error {
	if m == nil || m.started {
		return nil
	}
	sr := m.track.Format.SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.ctrl)
	m.started = true
	return nil
}

// Play resumes the track. It never blocks on playback.
func (m *Music) Play() {
	m.setPaused(false)
}

// Stop pauses the track.
func (m *Music) Stop() {
	m.setPaused(true)
}

func (m *Music) setPaused(p bool) {
	if m == nil || !m.started {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = p
	speaker.Unlock()
}

// Close stops playback and releases the track.
func (m *Music) Close() error {
	if m == nil {
		return nil
	}
	if m.started {
		speaker.Clear()
		m.started = false
	}
	return m.track.Close()
}
