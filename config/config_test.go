package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen %dx%d, want positive dimensions", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Physics.Gravity <= 0 {
		t.Errorf("gravity = %v, want positive", cfg.Physics.Gravity)
	}
	if cfg.Physics.Bounce >= 0 || cfg.Physics.Bounce <= -1 {
		t.Errorf("bounce = %v, want in (-1, 0)", cfg.Physics.Bounce)
	}
	if cfg.Window.MinScale >= cfg.Window.MaxScale {
		t.Errorf("scale range [%v, %v] inverted", cfg.Window.MinScale, cfg.Window.MaxScale)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	// floor = screen height - taskbar offset - window height + margin
	want := float32(cfg.Screen.Height-cfg.Screen.TaskbarOffset-cfg.Window.Height) +
		float32(cfg.Physics.FloorMargin)
	if cfg.Derived.FloorY != want {
		t.Errorf("floor y = %v, want %v", cfg.Derived.FloorY, want)
	}

	if cfg.Derived.EdgeMinX != float32(-cfg.Physics.EdgeMargin) {
		t.Errorf("edge min x = %v, want %v", cfg.Derived.EdgeMinX, -cfg.Physics.EdgeMargin)
	}
	if cfg.Derived.EdgeMinX >= cfg.Derived.EdgeMaxX {
		t.Errorf("edge range [%v, %v] inverted", cfg.Derived.EdgeMinX, cfg.Derived.EdgeMaxX)
	}
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	user := []byte("physics:\n  gravity: 1.25\n")
	if err := os.WriteFile(path, user, 0644); err != nil {
		t.Fatalf("writing user config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}
	if cfg.Physics.Gravity != 1.25 {
		t.Errorf("gravity = %v, want user override 1.25", cfg.Physics.Gravity)
	}
	// Untouched fields keep their defaults
	if cfg.Physics.FrictionX != 0.95 {
		t.Errorf("friction_x = %v, want default 0.95", cfg.Physics.FrictionX)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Physics.Bounce = -0.42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written yaml: %v", err)
	}
	if back.Physics.Bounce != -0.42 {
		t.Errorf("bounce = %v after round trip, want -0.42", back.Physics.Bounce)
	}
}
