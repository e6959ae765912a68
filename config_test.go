package canvasutils

import (
	"strings"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	if cfg.Title != "canvas-utils" || cfg.Width != 640 || cfg.Height != 480 || cfg.TPS != 60 {
		t.Errorf("DefaultRunConfig() = %+v", cfg)
	}
	if cfg.Resizable || cfg.ShowFPS || cfg.Debug {
		t.Error("flags should default to false")
	}
}

func TestLoadRunConfig(t *testing.T) {
	data := []byte(`
title: Bouncing
width: 800
show_fps: true
debug: true
`)
	cfg, err := LoadRunConfig(data)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.Title != "Bouncing" {
		t.Errorf("Title = %q, want Bouncing", cfg.Title)
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Width)
	}
	if cfg.Height != 480 {
		t.Errorf("Height = %d, want default 480", cfg.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want default 60", cfg.TPS)
	}
	if !cfg.ShowFPS || !cfg.Debug || cfg.Resizable {
		t.Errorf("flags = %+v", cfg)
	}
}

func TestLoadRunConfigEmpty(t *testing.T) {
	cfg, err := LoadRunConfig(nil)
	if err != nil {
		t.Fatalf("LoadRunConfig(nil): %v", err)
	}
	if cfg != DefaultRunConfig() {
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
		{"negative size", "width: -1", "negative window size"},
		{"negative tps", "tps: -5", "negative tps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "canvasutils: ") {
				t.Errorf("error = %q, want canvasutils prefix", err)
			}
		})
	}
}

func TestRunConfigWithDefaults(t *testing.T) {
	cfg := RunConfig{Width: 320, Resizable: true}.withDefaults()
	want := RunConfig{Title: "canvas-utils", Width: 320, Height: 480, TPS: 60, Resizable: true}
	if cfg != want {
		t.Errorf("withDefaults() = %+v, want %+v", cfg, want)
	}
}

func TestRunNilScene(t *testing.T) {
	if err := Run(nil, RunConfig{}); err == nil {
		t.Error("Run(nil) should return an error")
	}
}

func TestRunInvalidConfig(t *testing.T) {
	err := Run(NewScene(), RunConfig{Height: -1})
	if err == nil || !strings.Contains(err.Error(), "negative window size") {
		t.Errorf("Run with negative height = %v", err)
	}
}
