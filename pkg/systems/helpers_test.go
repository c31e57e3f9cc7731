package systems

import (
	"testing"

	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/input"
)

// loadTestConfig 加载仓库自带的游戏配置
func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("failed to load game config: %v", err)
	}
	return cfg
}

// newTestInput 创建输入状态并按下指定按键
func newTestInput(cfg *config.GameConfig, keys ...string) *input.State {
	in := input.NewState(input.NewBindings(cfg.Keys))
	for _, k := range keys {
		in.SetKey(k, true)
	}
	return in
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
