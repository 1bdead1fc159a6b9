package core

import "time"

// Pacer holds a loop to a target frame rate by sleeping away whatever is
// left of each frame interval. An overrun tick is not made up later.
type Pacer struct {
	step  time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer targeting the given frames per second.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the target rate. Non-positive values fall back to 15.
func (p *Pacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 15
	}
	p.step = time.Second / time.Duration(fps)
}

// Step returns the target frame interval.
func (p *Pacer) Step() time.Duration { return p.step }

// SetClock replaces the time source and sleeper, for tests and tools.
func (p *Pacer) SetClock(now func() time.Time, sleep func(time.Duration)) {
	p.now = now
	p.sleep = sleep
}

// Start marks the beginning of the first frame.
func (p *Pacer) Start() { p.last = p.now() }

// Wait blocks until one frame interval has passed since the previous Wait
// (or Start) returned and reports how long it slept. Without Start the first
// call only records the time.
func (p *Pacer) Wait() time.Duration {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	var slept time.Duration
	if elapsed := now.Sub(p.last); elapsed < p.step {
		slept = p.step - elapsed
		p.sleep(slept)
	}
	p.last = p.now()
	return slept
}
