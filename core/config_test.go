package core_test

import (
	"os"
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/lukosev/flipbook/core"
)

// envy snapshots the environment, so every mutation is followed by a
// reload
func clearEnv() {
	os.Unsetenv("FLIPBOOK_WIDTH")
	os.Unsetenv("FLIPBOOK_HEIGHT")
	os.Unsetenv("FLIPBOOK_FRAMES")
	os.Unsetenv("FLIPBOOK_FPS")
	envy.Reload()
}

func setEnv(key, value string) {
	os.Setenv(key, value)
	envy.Reload()
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv()

	cfg, err := core.FromEnv()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Renderer.ScreenWidth != 1024 || cfg.Renderer.ScreenHeight != 768 {
		t.Errorf("unexpected default dimensions %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Renderer.FrameCount != 10 {
		t.Errorf("unexpected default frame count %d", cfg.Renderer.FrameCount)
	}
	if cfg.Time.FramesPerSecond != 0 {
		t.Errorf("viewer should be unthrottled by default, got %d fps", cfg.Time.FramesPerSecond)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv()
	defer clearEnv()

	setEnv("FLIPBOOK_WIDTH", "640")
	setEnv("FLIPBOOK_HEIGHT", "480")
	setEnv("FLIPBOOK_FRAMES", "16")
	setEnv("FLIPBOOK_FPS", "60")

	cfg, err := core.FromEnv()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Renderer.ScreenWidth != 640 || cfg.Renderer.ScreenHeight != 480 {
		t.Errorf("override not applied: %dx%d", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
	}
	if cfg.Renderer.FrameCount != 16 {
		t.Errorf("override not applied: %d frames", cfg.Renderer.FrameCount)
	}
	if cfg.Time.FramesPerSecond != 60 {
		t.Errorf("override not applied: %d fps", cfg.Time.FramesPerSecond)
	}
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	clearEnv()
	defer clearEnv()

	setEnv("FLIPBOOK_WIDTH", "huge")
	if _, err := core.FromEnv(); err == nil {
		t.Error("non-numeric width should be rejected")
	}

	setEnv("FLIPBOOK_WIDTH", "-1024")
	if _, err := core.FromEnv(); err == nil {
		t.Error("negative width should be rejected")
	}

	clearEnv()
	setEnv("FLIPBOOK_FRAMES", "0")
	if _, err := core.FromEnv(); err == nil {
		t.Error("zero frame count should be rejected")
	}
}
