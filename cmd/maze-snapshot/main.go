package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"escape-maze/internal/app"
	"escape-maze/internal/assets"
	"escape-maze/internal/core"
	"escape-maze/internal/render"
)

// lastFrame keeps a copy of the most recent presented frame.
type lastFrame struct {
	buf    []uint32
	w, h   int
	frames int
}

func (f *lastFrame) Present(s *render.Surface) error {
	f.w, f.h = s.Width, s.Height
	f.buf = append(f.buf[:0], s.Buffer...)
	f.frames++
	return nil
}

func (f *lastFrame) Closed() bool { return false }

func (f *lastFrame) save(path string) error {
	s := render.NewSurface(f.w, f.h)
	copy(s.Buffer, f.buf)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, s.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	script := flag.String("script", "confirm,forward*8,right*2,forward*6", "scripted input, e.g. confirm,forward*10,left*3")
	out := flag.String("out", "snapshot.png", "PNG file for the final frame")
	realtime := flag.Bool("realtime", false, "pace ticks at the configured FPS instead of running flat out")
	flag.Parse()

	grid, err := core.LoadGrid(cfg.Maze)
	if err != nil {
		log.Fatalf("load maze: %v", err)
	}
	bundle, err := assets.Load(assets.DefaultManifest(cfg.Assets))
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}
	input, err := app.ParseScript(*script)
	if err != nil {
		log.Fatalf("parse script: %v", err)
	}

	session := app.NewSession(cfg, core.NewScene(grid), bundle, nil)
	pacer := core.NewPacer(cfg.FPS)
	if !*realtime {
		// Simulated time keeps the time limit meaningful without sleeping.
		clock := time.Now()
		now := func() time.Time { return clock }
		pacer.SetClock(now, func(d time.Duration) { clock = clock.Add(d) })
		session.SetClock(now)
	}

	frame := &lastFrame{}
	loop := &app.Loop{
		Session:  session,
		Input:    input,
		Output:   frame,
		Pacer:    pacer,
		MaxTicks: len(input.Steps) + 1,
	}
	start := time.Now()
	if err := loop.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	if frame.frames == 0 {
		log.Fatal("no frame was drawn")
	}
	if err := frame.save(*out); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}

	p := session.Player()
	fmt.Printf("%d frames in %s, state %s, player (%.1f, %.1f) heading %.3f rad\n",
		frame.frames, time.Since(start).Round(time.Millisecond), session.State(), p.Pos.X, p.Pos.Y, p.Angle)
	fmt.Printf("wrote %s\n", *out)
}
