// Package audio decodes and plays the background music track.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Track is a decoded, seekable music stream.
type Track struct {
	Stream beep.StreamSeekCloser
	Format beep.Format
}

// Decode opens path and decodes it by extension (.wav or .mp3).
func Decode(path string) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" && ext != ".mp3" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music %s: %w", path, err)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	if ext == ".wav" {
		s, format, err = wav.Decode(f)
	} else {
		s, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}
	return &Track{Stream: s, Format: format}, nil
}

// Close releases the underlying file.
func (t *Track) Close() error {
	if t == nil || t.Stream == nil {
		return nil
	}
	return t.Stream.Close()
}

// WithVolume scales s by a linear gain. Zero or negative gain silences it.
func WithVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(gain)
	return v
}
