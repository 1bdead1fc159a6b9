package app

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"
	"strings"
	"testing"
	"time"

	"escape-maze/internal/assets"
	"escape-maze/internal/core"
	"escape-maze/internal/render"
)

const splashColor = 0x3050A0

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) sleep(d time.Duration)   { c.advance(d) }

type countingMusic struct{ plays int }

func (m *countingMusic) Play() { m.plays++ }

func testBundle() *assets.Bundle {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x30, G: 0x50, B: 0xA0, A: 0xFF})
		}
	}
	return &assets.Bundle{Splash: render.NewTexture(img), Walls: render.WallSet{}}
}

// newTestSession builds a session on rows with a fake clock and a captured log.
func newTestSession(t *testing.T, rows ...string) (*Session, *fakeClock, *countingMusic, *bytes.Buffer) {
	t.Helper()
	g, err := core.GridFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Width, cfg.Height = 200, 100
	music := &countingMusic{}
	s := NewSession(cfg, core.NewScene(g), testBundle(), music)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s.SetClock(clock.now)
	var logs bytes.Buffer
	s.SetLogger(log.New(&logs, "", 0))
	return s, clock, music, &logs
}

var farGoal = []string{
	"+-----+",
	"|     |",
	"|     |",
	"|    g|",
	"+-----+",
}

var nearGoal = []string{
	"+-----+",
	"|     |",
	"| g   |",
	"+-----+",
}

func TestSplashDrawsUntilConfirm(t *testing.T) {
	s, _, music, _ := newTestSession(t, farGoal...)
	for i := 0; i < 3; i++ {
		if !s.Tick(core.Input{}) {
			t.Fatal("splash tick should draw")
		}
	}
	if s.State() != Splash {
		t.Fatalf("state = %v, want splash", s.State())
	}
	if got := s.Surface().At(2, 2); got != splashColor {
		t.Fatalf("splash pixel = %06X, want %06X", got, splashColor)
	}
	if music.plays != 0 {
		t.Fatal("music started before play")
	}
}

func TestSplashClearsToFloorColor(t *testing.T) {
	s, _, _, _ := newTestSession(t, farGoal...)
	s.Tick(core.Input{})
	if got, want := s.Surface().At(100, 50), render.DefaultPalette().Floor; got != want {
		t.Fatalf("background pixel = %06X, want %06X", got, want)
	}
}

func TestConfirmIsEdgeTriggered(t *testing.T) {
	s, _, music, _ := newTestSession(t, farGoal...)
	held := core.Input{Confirm: true}
	for i := 0; i < 5; i++ {
		s.Tick(held)
	}
	if s.State() != Playing {
		t.Fatalf("state = %v, want playing", s.State())
	}
	if music.plays != 1 {
		t.Fatalf("music played %d times, want 1", music.plays)
	}
}

func TestPlayingRendersView(t *testing.T) {
	s, _, _, _ := newTestSession(t, farGoal...)
	s.Tick(core.Input{Confirm: true})
	if !s.Tick(core.Input{}) {
		t.Fatal("playing tick should draw")
	}
	zbuf := s.ZBuffer()
	if len(zbuf) != 200 {
		t.Fatalf("zbuffer has %d columns, want 200", len(zbuf))
	}
	for i, d := range zbuf {
		if math.IsInf(d, 0) || d <= 0 {
			t.Fatalf("column %d distance %v", i, d)
		}
	}
}

func TestVictoryBeforeDraw(t *testing.T) {
	s, _, _, logs := newTestSession(t, nearGoal...)
	s.Tick(core.Input{Confirm: true})
	before := s.Surface().At(2, 2)
	if s.Tick(core.Input{}) {
		t.Fatal("winning tick should not draw")
	}
	if s.State() != Victory {
		t.Fatalf("state = %v, want victory", s.State())
	}
	if s.Surface().At(2, 2) != before {
		t.Fatal("surface changed on the winning tick")
	}
	if !strings.Contains(logs.String(), "Clear!") {
		t.Fatalf("log %q lacks clear message", logs.String())
	}
	if s.Tick(core.Input{Confirm: true}) || s.State() != Victory {
		t.Fatal("victory should be terminal")
	}
}

func TestTimeout(t *testing.T) {
	s, clock, _, logs := newTestSession(t, farGoal...)
	s.Tick(core.Input{Confirm: true})

	clock.advance(119 * time.Second)
	if !s.Tick(core.Input{}) {
		t.Fatal("tick before the limit should draw")
	}
	if got := s.Remaining(); got != time.Second {
		t.Fatalf("Remaining() = %v, want 1s", got)
	}

	clock.advance(time.Second)
	if s.Tick(core.Input{}) {
		t.Fatal("timed out tick should not draw")
	}
	if s.State() != Timeout {
		t.Fatalf("state = %v, want timeout", s.State())
	}
	if s.Remaining() != 0 {
		t.Fatalf("Remaining() = %v after timeout", s.Remaining())
	}
	if !strings.Contains(logs.String(), "Time out!") {
		t.Fatalf("log %q lacks time out message", logs.String())
	}
}

func TestQuitFromAnyState(t *testing.T) {
	s, _, _, _ := newTestSession(t, farGoal...)
	if s.Tick(core.Input{Quit: true}) {
		t.Fatal("quit tick should not draw")
	}
	if s.State() != Quit {
		t.Fatalf("state = %v, want quit", s.State())
	}

	s, _, _, _ = newTestSession(t, farGoal...)
	s.Tick(core.Input{Confirm: true})
	s.Tick(core.Input{Quit: true, Forward: true})
	if s.State() != Quit {
		t.Fatalf("state = %v, want quit", s.State())
	}
}

func TestToggleMapOnRisingEdge(t *testing.T) {
	s, _, _, _ := newTestSession(t, farGoal...)
	s.Tick(core.Input{Confirm: true})

	s.Tick(core.Input{ToggleMap: true})
	if !s.Status().TopDown {
		t.Fatal("map view not enabled")
	}
	s.Tick(core.Input{ToggleMap: true})
	if !s.Status().TopDown {
		t.Fatal("held key toggled the view again")
	}
	s.Tick(core.Input{})
	s.Tick(core.Input{ToggleMap: true})
	if s.Status().TopDown {
		t.Fatal("second press did not disable map view")
	}
}

func TestPlayerMovesWhilePlaying(t *testing.T) {
	s, _, _, _ := newTestSession(t, farGoal...)
	s.Tick(core.Input{Forward: true})
	if s.Player().Pos != core.NewPlayer().Pos {
		t.Fatal("player moved on the splash screen")
	}
	s.Tick(core.Input{Confirm: true})
	s.Tick(core.Input{Forward: true})
	if s.Player().Pos == core.NewPlayer().Pos {
		t.Fatal("player did not move")
	}
}

func TestFPSCountsTicksPerSecond(t *testing.T) {
	s, clock, _, logs := newTestSession(t, farGoal...)
	for i := 0; i <= 10; i++ {
		s.Tick(core.Input{})
		clock.advance(100 * time.Millisecond)
	}
	if s.FPS() != 10 {
		t.Fatalf("FPS() = %d, want 10", s.FPS())
	}
	if !strings.Contains(logs.String(), "FPS: 10") {
		t.Fatalf("log %q lacks FPS line", logs.String())
	}
}

func TestStateStrings(t *testing.T) {
	for st, want := range map[State]string{
		Splash: "splash", Playing: "playing", Victory: "victory", Timeout: "timeout", Quit: "quit",
	} {
		if st.String() != want {
			t.Fatalf("%d.String() = %q, want %q", st, st.String(), want)
		}
	}
	if Splash.Terminal() || Playing.Terminal() || !Victory.Terminal() || !Quit.Terminal() {
		t.Fatal("wrong terminal states")
	}
}
