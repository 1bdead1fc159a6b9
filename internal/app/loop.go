package app

import (
	"fmt"
	"strconv"
	"strings"

	"escape-maze/internal/core"
	"escape-maze/internal/render"
)

// InputSource is sampled once per tick.
type InputSource interface {
	Poll() core.Input
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(s *render.Surface) error
	Closed() bool
}

// Loop drives a Session at a fixed rate without a window.
type Loop struct {
	Session  *Session
	Input    InputSource
	Output   Presenter
	Pacer    *core.Pacer
	MaxTicks int
}

// Run polls, ticks, presents and paces until the presenter closes, the
// session ends or MaxTicks (when positive) ticks have run.
func (l *Loop) Run() error {
	l.Pacer.Start()
	for n := 0; l.MaxTicks <= 0 || n < l.MaxTicks; n++ {
		if l.Output.Closed() || l.Session.State().Terminal() {
			return nil
		}
		if l.Session.Tick(l.Input.Poll()) {
			if err := l.Output.Present(l.Session.Surface()); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
		}
		l.Pacer.Wait()
	}
	return nil
}

// Script replays a fixed sequence of inputs and then reports no input.
type Script struct {
	Steps []core.Input
	next  int
}

// Poll returns the next scripted input.
func (s *Script) Poll() core.Input {
	if s.next >= len(s.Steps) {
		return core.Input{}
	}
	in := s.Steps[s.next]
	s.next++
	return in
}

// Done reports whether every step has been replayed.
func (s *Script) Done() bool { return s.next >= len(s.Steps) }

var scriptActions = map[string]func(*core.Input){
	"idle":    func(*core.Input) {},
	"confirm": func(in *core.Input) { in.Confirm = true },
	"forward": func(in *core.Input) { in.Forward = true },
	"back":    func(in *core.Input) { in.Back = true },
	"left":    func(in *core.Input) { in.TurnLeft = true },
	"right":   func(in *core.Input) { in.TurnRight = true },
	"map":     func(in *core.Input) { in.ToggleMap = true },
	"quit":    func(in *core.Input) { in.Quit = true },
}

// ParseScript reads a comma separated list of actions such as
// "confirm,idle,forward*10,left*3". Actions joined with '+' are held
// together in one tick, e.g. "forward+left*4".
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Split(src, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		count := 1
		if name, rep, ok := strings.Cut(tok, "*"); ok {
			n, err := strconv.Atoi(rep)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %q: bad repeat count", tok)
			}
			tok, count = name, n
		}
		var in core.Input
		for _, name := range strings.Split(tok, "+") {
			act, ok := scriptActions[name]
			if !ok {
				return nil, fmt.Errorf("script step %q: unknown action %q", tok, name)
			}
			act(&in)
		}
		for i := 0; i < count; i++ {
			s.Steps = append(s.Steps, in)
		}
	}
	return s, nil
}
