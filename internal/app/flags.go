package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Maze      string
	Assets    string
	Music     string
	Volume    float64
	Width     int
	Height    int
	FPS       int
	TimeLimit time.Duration
	HUD       bool
}

// NewConfig returns a Config populated with the standard game settings.
func NewConfig() *Config {
	return &Config{
		Maze:      "maze.txt",
		Assets:    "assets",
		Music:     "assets/music.wav",
		Volume:    0.5,
		Width:     1300,
		Height:    900,
		FPS:       15,
		TimeLimit: 120 * time.Second,
		HUD:       true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Maze, "maze", c.Maze, "maze grid file")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory holding textures and the splash image")
	fs.StringVar(&c.Music, "music", c.Music, "background music (wav or mp3); empty disables audio")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "music gain, 0 mutes")
	fs.IntVar(&c.Width, "width", c.Width, "screen width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "screen height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.DurationVar(&c.TimeLimit, "time-limit", c.TimeLimit, "time allowed to reach the goal")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status overlay")
}
