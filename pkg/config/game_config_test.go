package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const gameConfigPath = "../../data/game.yaml"

func loadTestGameConfig(t *testing.T) *GameConfig {
	t.Helper()
	cfg, err := LoadGameConfig(gameConfigPath)
	if err != nil {
		t.Fatalf("failed to load %s: %v", gameConfigPath, err)
	}
	return cfg
}

// TestLoadGameConfig_Defaults 验证仓库自带配置中的关键常量
func TestLoadGameConfig_Defaults(t *testing.T) {
	cfg := loadTestGameConfig(t)

	if cfg.TicksPerSecond != 60 {
		t.Errorf("ticksPerSecond = %d, want 60", cfg.TicksPerSecond)
	}
	if cfg.Avatar.Step != 0.22 || cfg.Avatar.Bound != 195 {
		t.Errorf("avatar step/bound = %.2f/%.0f, want 0.22/195", cfg.Avatar.Step, cfg.Avatar.Bound)
	}
	if cfg.Avatar.Spawn[2] != -15 {
		t.Errorf("avatar spawn z = %.1f, want -15", cfg.Avatar.Spawn[2])
	}
	if cfg.Flowers.CountX != 96 || cfg.Flowers.CountZ != 96 {
		t.Errorf("flower grid = %dx%d, want 96x96", cfg.Flowers.CountX, cfg.Flowers.CountZ)
	}
	if cfg.Flowers.FinalFlower[2] != 135 {
		t.Errorf("final flower z = %.1f, want 135", cfg.Flowers.FinalFlower[2])
	}
	if cfg.Bloom.Step != 0.0045 || cfg.Bloom.EndAt != 1.2 {
		t.Errorf("bloom step/endAt = %.4f/%.1f", cfg.Bloom.Step, cfg.Bloom.EndAt)
	}
	if cfg.Basketball.HoopCenter[2] != -8.05 {
		t.Errorf("hoop z = %.2f, want -8.05", cfg.Basketball.HoopCenter[2])
	}
	if cfg.Basketball.WinScore != 5 {
		t.Errorf("winScore = %d, want 5", cfg.Basketball.WinScore)
	}
	if len(cfg.Quiz.Questions) != 10 {
		t.Errorf("quiz questions = %d, want 10", len(cfg.Quiz.Questions))
	}
	if len(cfg.Companion.Lines) != 3 {
		t.Errorf("companion lines = %d, want 3", len(cfg.Companion.Lines))
	}
	if cfg.MillisPerTick() < 16.6 || cfg.MillisPerTick() > 16.7 {
		t.Errorf("MillisPerTick() = %.3f, want ~16.67", cfg.MillisPerTick())
	}

	sky := cfg.Bloom.SkyTo.Color()
	r, g, b := sky.RGB255()
	if r != 0xe0 || g != 0xea || b != 0xfc {
		t.Errorf("skyTo = #%02x%02x%02x, want #e0eafc", r, g, b)
	}
}

// TestGameConfig_Validate 每个用例在有效配置基础上破坏一个字段
func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*GameConfig)
		errContains string
	}{
		{
			name:        "zero ticks per second",
			mutate:      func(c *GameConfig) { c.TicksPerSecond = 0 },
			errContains: "ticksPerSecond",
		},
		{
			name:        "negative avatar step",
			mutate:      func(c *GameConfig) { c.Avatar.Step = -1 },
			errContains: "avatar step",
		},
		{
			name:        "camera smoothing above one",
			mutate:      func(c *GameConfig) { c.Camera.Smoothing = 1.5 },
			errContains: "camera smoothing",
		},
		{
			name:        "far plane before near plane",
			mutate:      func(c *GameConfig) { c.Camera.Far = 0.01 },
			errContains: "clip planes",
		},
		{
			name:        "no dialogue lines",
			mutate:      func(c *GameConfig) { c.Companion.Lines = nil },
			errContains: "dialogue",
		},
		{
			name:        "zero spacing",
			mutate:      func(c *GameConfig) { c.Flowers.Spacing = 0 },
			errContains: "spacing",
		},
		{
			name:        "invalid sky color",
			mutate:      func(c *GameConfig) { c.Bloom.SkyTo = "blue" },
			errContains: "skyTo",
		},
		{
			name:        "bloom ends before colors finish",
			mutate:      func(c *GameConfig) { c.Bloom.EndAt = 0.5 },
			errContains: "endAt",
		},
		{
			name:        "drag not below one",
			mutate:      func(c *GameConfig) { c.Basketball.Drag = 1 },
			errContains: "drag",
		},
		{
			name:        "inverted goal box",
			mutate:      func(c *GameConfig) { c.Basketball.Goal.MinY = 3 },
			errContains: "goal box",
		},
		{
			name: "correct answer out of range",
			mutate: func(c *GameConfig) {
				qs := append([]QuizQuestion(nil), c.Quiz.Questions...)
				qs[0].Correct = 3
				c.Quiz.Questions = qs
			},
			errContains: "question 1",
		},
		{
			name:        "empty close text",
			mutate:      func(c *GameConfig) { c.Messages.Close = "" },
			errContains: "close",
		},
		{
			name:        "empty interact binding",
			mutate:      func(c *GameConfig) { c.Keys.Interact = nil },
			errContains: "interact",
		},
	}

	base := loadTestGameConfig(t)
	if err := base.Validate(); err != nil {
		t.Fatalf("bundled config must be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *base
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadGameConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("avatar: [unclosed"), 0o644); err != nil {
			t.Fatalf("failed to write temp file: %v", err)
		}
		_, err := LoadGameConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("empty document fails validation", func(t *testing.T) {
		_, err := ParseGameConfig([]byte("{}"))
		if err == nil || !strings.Contains(err.Error(), "invalid game config") {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
