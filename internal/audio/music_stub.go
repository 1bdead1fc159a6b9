//go:build !ebiten

package audio

// Music is a silent placeholder used when the ebiten build tag is absent.
type Music struct {
	track *Track
}

// Open decodes the track so missing or broken files still fail at startup.
func Open(path string, gain float64) (*Music, error) {
	track, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return &Music{track: track}, nil
}

// Start is a no-op in headless builds.
func (m *Music) Start() error { return nil }

// Play is a no-op in headless builds.
func (m *Music) Play() {}

// Stop is a no-op in headless builds.
func (m *Music) Stop() {}

// Close releases the track.
func (m *Music) Close() error {
	if m == nil {
		return nil
	}
	return m.track.Close()
}
