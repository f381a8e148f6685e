package sway

import (
	"strings"
	"testing"
)

func TestLoadRunConfig(t *testing.T) {
	cfg, err := LoadRunConfig([]byte(`
title: Level Complete
width: 800
height: 600
tps: 30
show_fps: true
debug: true
`))
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	want := RunConfig{Title: "Level Complete", Width: 800, Height: 600, TPS: 30, ShowFPS: true, Debug: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := LoadRunConfig([]byte("show_fps: true\n"))
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.Title != DefaultRunConfig.Title || cfg.Width != DefaultRunConfig.Width || cfg.Height != DefaultRunConfig.Height {
		t.Errorf("cfg = %+v, missing fields should take defaults", cfg)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS should be true")
	}
}

func TestLoadRunConfigEmpty(t *testing.T) {
	cfg, err := LoadRunConfig(nil)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg != DefaultRunConfig {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "width: [1, 2", "parse run config"},
		{"wrong type", "width: wide", "parse run config"},
		{"zero width", "width: 0", "invalid size"},
		{"negative height", "height: -1", "invalid size"},
		{"negative tps", "tps: -5", "invalid tps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRunConfigWithDefaults(t *testing.T) {
	cfg := RunConfig{ShowFPS: true}.withDefaults()
	if cfg.Title != "sway" || cfg.Width != 640 || cfg.Height != 480 || !cfg.ShowFPS {
		t.Errorf("withDefaults = %+v", cfg)
	}
}

func TestGameLayout(t *testing.T) {
	g := &game{scene: NewScene(nil), cfg: RunConfig{Width: 320, Height: 200}}
	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d, want 320x200", w, h)
	}
}
