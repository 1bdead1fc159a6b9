package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func writeWAV(t *testing.T, path string, samples int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(samples), format); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.wav")
	writeWAV(t, path, 441)

	track, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer track.Close()

	if track.Format.SampleRate != 22050 {
		t.Fatalf("sample rate %d, want 22050", track.Format.SampleRate)
	}
	if n := track.Stream.Len(); n != 441 {
		t.Fatalf("length %d, want 441", n)
	}
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "theme.ogg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestDecodeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("RIFF garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestWithVolumeHalvesAmplitude(t *testing.T) {
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	buf := make([][2]float64, 4)
	WithVolume(ones, 0.5).Stream(buf)
	for i, s := range buf {
		if s[0] != 0.5 || s[1] != 0.5 {
			t.Fatalf("sample %d = %v, want 0.5", i, s)
		}
	}

	WithVolume(ones, 0).Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("silenced sample = %v", buf[0])
	}
}

func TestWriteMelodyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.wav")
	if err := WriteMelody(path, []float64{220, 330, 440}, 10*time.Millisecond); err != nil {
		t.Fatalf("WriteMelody: %v", err)
	}
	track, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	defer track.Close()
	if n := track.Stream.Len(); n != 3*441 {
		t.Fatalf("length %d, want %d", n, 3*441)
	}
}

func TestWriteMelodyRejectsInaudibleNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "music.wav")
	if err := WriteMelody(path, []float64{30000}, time.Millisecond); err == nil {
		t.Fatal("expected error for a note above the Nyquist limit")
	}
}
