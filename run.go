package sway

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	TPS     int    `yaml:"tps"`      // ticks per second; 0 keeps ebiten's default (60)
	ShowFPS bool   `yaml:"show_fps"` // draws FPS/TPS and the animation count in the corner
	Debug   bool   `yaml:"debug"`    // enables Scene.SetDebugMode
}

// DefaultRunConfig is used for fields left zero.
var DefaultRunConfig = RunConfig{
	Title:  "sway",
	Width:  640,
	Height: 480,
}

// LoadRunConfig parses a YAML run configuration. Missing fields take their
// DefaultRunConfig values.
func LoadRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("parse run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS < 0 {
		return RunConfig{}, fmt.Errorf("parse run config: invalid tps %d", cfg.TPS)
	}
	return cfg, nil
}

// withDefaults fills zero fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultRunConfig.Title
	}
	if c.Width <= 0 {
		c.Width = DefaultRunConfig.Width
	}
	if c.Height <= 0 {
		c.Height = DefaultRunConfig.Height
	}
	return c
}

// Run opens a window and runs scene until the window is closed or the
// scene's update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.ClearColor.toRGBA())
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nAnimations: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.animations.Len()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

var _ color.Color = colorRGBA{}
