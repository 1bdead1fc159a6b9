package app

import (
	"log"
	"os"
	"time"

	"escape-maze/internal/assets"
	"escape-maze/internal/core"
	"escape-maze/internal/render"
	"escape-maze/internal/ui"
)

// State is a phase of the game.
type State int

const (
	Splash State = iota
	Playing
	Victory
	Timeout
	Quit
)

// Terminal reports whether the state ends the game.
func (s State) Terminal() bool { return s >= Victory }

func (s State) String() string {
	switch s {
	case Splash:
		return "splash"
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Timeout:
		return "timeout"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Music is the part of the audio player the session drives.
type Music interface {
	Play()
}

type silence struct{}

func (silence) Play() {}

// Session owns one game: the player, the maze, the frame surface and the
// state machine that moves between them. It is not safe for concurrent use.
type Session struct {
	cfg      *Config
	scene    *core.Scene
	player   core.Player
	surface  *render.Surface
	composer *render.Composer
	splash   *render.Texture
	music    Music
	logger   *log.Logger
	now      func() time.Time

	state   State
	topDown bool
	prev    core.Input
	started time.Time
	clock   time.Time

	frames  int
	fps     int
	fpsMark time.Time
}

// NewSession prepares a game on scene using the loaded assets. A nil music
// player is replaced by silence.
func NewSession(cfg *Config, scene *core.Scene, b *assets.Bundle, music Music) *Session {
	if music == nil {
		music = silence{}
	}
	composer := render.NewComposer(b.Walls)
	surface := render.NewSurface(cfg.Width, cfg.Height)
	surface.SetBackgroundColor(composer.Palette.Floor)
	return &Session{
		cfg:      cfg,
		scene:    scene,
		player:   core.NewPlayer(),
		surface:  surface,
		composer: composer,
		splash:   b.Splash,
		music:    music,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
		now:      time.Now,
	}
}

// SetClock replaces the time source, for tests and tools.
func (s *Session) SetClock(now func() time.Time) { s.now = now }

// SetLogger redirects status lines.
func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

// Tick advances the game by one frame of input and reports whether a new
// frame was drawn to the surface.
func (s *Session) Tick(in core.Input) bool {
	if s.state.Terminal() {
		return false
	}
	confirm := in.Confirm && !s.prev.Confirm
	toggle := in.ToggleMap && !s.prev.ToggleMap
	s.prev = in

	now := s.now()
	s.clock = now
	s.countFrame(now)

	if in.Quit {
		s.state = Quit
		return false
	}

	switch s.state {
	case Splash:
		if confirm {
			s.state = Playing
			s.started = now
			s.music.Play()
		}
		s.surface.Clear()
		s.surface.DrawTexture(0, 0, s.splash)
		return true

	case Playing:
		if toggle {
			s.topDown = !s.topDown
		}
		s.player.Apply(in, s.scene.Grid)

		if now.Sub(s.started) >= s.cfg.TimeLimit {
			s.state = Timeout
			s.logger.Printf("Time out! You did not escape within %s.", s.cfg.TimeLimit)
			return false
		}
		if s.scene.Reached(s.player) {
			s.state = Victory
			s.logger.Printf("Clear! Escaped in %s.", now.Sub(s.started).Round(time.Millisecond))
			return false
		}

		s.surface.Clear()
		if s.topDown {
			s.composer.RenderTopDown(s.surface, s.player, s.scene)
		} else {
			s.composer.Render(s.surface, s.player, s.scene)
		}
		return true
	}
	return false
}

func (s *Session) countFrame(now time.Time) {
	if s.fpsMark.IsZero() {
		s.fpsMark = now
	}
	if now.Sub(s.fpsMark) >= time.Second {
		s.fps = s.frames
		s.frames = 0
		s.fpsMark = now
		s.logger.Printf("FPS: %d", s.fps)
	}
	s.frames++
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Surface returns the frame buffer the session draws into.
func (s *Session) Surface() *render.Surface { return s.surface }

// Player returns the current player pose.
func (s *Session) Player() core.Player { return s.player }

// ZBuffer returns the per-column wall distances of the last rendered view.
func (s *Session) ZBuffer() []float64 { return s.composer.ZBuffer() }

// FPS returns the tick rate measured over the last full second.
func (s *Session) FPS() int { return s.fps }

// Remaining returns the time left before the game times out.
func (s *Session) Remaining() time.Duration {
	if s.state == Splash {
		return s.cfg.TimeLimit
	}
	left := s.cfg.TimeLimit - s.clock.Sub(s.started)
	if left < 0 {
		return 0
	}
	return left
}

// Status summarizes the session for the HUD.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Remaining: s.Remaining(),
		FPS:       s.fps,
		TopDown:   s.topDown,
	}
}
