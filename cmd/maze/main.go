//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"escape-maze/internal/app"
	"escape-maze/internal/assets"
	"escape-maze/internal/audio"
	"escape-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := core.LoadGrid(cfg.Maze)
	if err != nil {
		log.Fatalf("load maze: %v", err)
	}
	scene := core.NewScene(grid)
	if !scene.HasGoal {
		log.Printf("maze %s has no goal cell; the game can only time out", cfg.Maze)
	}

	bundle, err := assets.Load(assets.DefaultManifest(cfg.Assets))
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}

	var music app.Music
	if cfg.Music != "" {
		m, err := audio.Open(cfg.Music, cfg.Volume)
		if err != nil {
			log.Fatalf("load music: %v", err)
		}
		defer m.Close()
		if err := m.Start(); err != nil {
			log.Fatalf("start audio: %v", err)
		}
		music = m
	}

	session := app.NewSession(cfg, scene, bundle, music)
	game := app.New(session, cfg.HUD)

	ebiten.SetWindowTitle("Escape Maze")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("game over: %s", session.State())
}
