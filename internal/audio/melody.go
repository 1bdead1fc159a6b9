package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// MelodyRate is the sample rate of generated placeholder music.
const MelodyRate beep.SampleRate = 44100

// WriteMelody encodes a sequence of sine notes, each lasting noteLen, as a
// 16-bit stereo WAV file at path.
func WriteMelody(path string, notes []float64, noteLen time.Duration) error {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, hz := range notes {
		tone, err := generators.SineTone(MelodyRate, hz)
		if err != nil {
			return fmt.Errorf("note %.1f Hz: %w", hz, err)
		}
		parts = append(parts, beep.Take(MelodyRate.N(noteLen), tone))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	format := beep.Format{SampleRate: MelodyRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, WithVolume(beep.Seq(parts...), 0.25), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
