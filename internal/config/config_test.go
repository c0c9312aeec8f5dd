package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gargoyle.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultGargoyleYAML)
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if cfg != DefaultGargoyleConfig() {
		t.Errorf("embedded defaults differ from DefaultGargoyleConfig:\n%+v\n%+v", cfg, DefaultGargoyleConfig())
	}
}

func TestDefaultParams(t *testing.T) {
	if got := DefaultGargoyleConfig().ToParams(); got != gargoyle.DefaultParams() {
		t.Errorf("ToParams() = %+v, want %+v", got, gargoyle.DefaultParams())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
physics:
  gravity: 0.5
coins:
  daily_cap: 3
assets:
  coin: gold.webp
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.Impulse != gargoyle.DefaultImpulse {
		t.Errorf("impulse = %v, want default %v", cfg.Physics.Impulse, gargoyle.DefaultImpulse)
	}
	if cfg.Coins.DailyCap != 3 {
		t.Errorf("daily cap = %d, want 3", cfg.Coins.DailyCap)
	}
	if cfg.Assets.Coin != "gold.webp" || cfg.Assets.Actor != "gargoyle.png" {
		t.Errorf("assets = %+v", cfg.Assets)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeConfig(t, "physics: [not, a, map]")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("err = %v, want parse error", err)
	}

	invalid := writeConfig(t, "obstacles:\n  spawn_every: 0\ncoins:\n  chance: 2\n")
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "spawn_every") || !strings.Contains(err.Error(), "coins.chance") {
		t.Errorf("err = %v, want both problems reported", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultGargoyleConfig() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", FileName), []byte("physics:\n  speed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.Speed != 4 {
		t.Errorf("speed = %v, want 4 from ./configs", cfg.Physics.Speed)
	}
}

func TestViewport(t *testing.T) {
	cfg := DefaultGargoyleConfig()
	tests := []struct {
		cols, rows int
		wantW      float64
		wantH      float64
	}{
		{80, 24, 480, 384},
		{40, 30, 240, 480},
		{200, 50, 480, 800},
	}
	for _, tt := range tests {
		w, h := cfg.Viewport(tt.cols, tt.rows)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Viewport(%d, %d) = %vx%v, want %vx%v", tt.cols, tt.rows, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestAssetRoot(t *testing.T) {
	cfg := DefaultGargoyleConfig()
	if got := cfg.AssetRoot(); got != "assets" {
		t.Errorf("AssetRoot() without a source = %q, want assets", got)
	}
	cfg.Source = "/etc/gargoyle/gargoyle.yaml"
	if got := cfg.AssetRoot(); got != filepath.Join("/etc/gargoyle", "assets") {
		t.Errorf("AssetRoot relative to config = %q", got)
	}
	cfg.Assets.Dir = "/srv/sprites"
	if got := cfg.AssetRoot(); got != "/srv/sprites" {
		t.Errorf("absolute dir = %q", got)
	}
}

func TestAssetRootFollowsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, FileName), []byte("assets:\n  dir: sprites\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != filepath.Join(cfgDir, FileName) {
		t.Errorf("Source = %q, want the user config", cfg.Source)
	}
	if got := cfg.AssetRoot(); got != filepath.Join(cfgDir, "sprites") {
		t.Errorf("AssetRoot() = %q, want %q", got, filepath.Join(cfgDir, "sprites"))
	}
}
