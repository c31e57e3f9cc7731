package components

import "github.com/lucasb-eyer/go-colorful"

// BloomPhase 世界上色动画阶段（单向，不可重复触发）
type BloomPhase int

const (
	// BloomDormant 未触发
	BloomDormant BloomPhase = iota

	// BloomActive 正在播放，每个 tick 推进 T
	BloomActive

	// BloomDone 播放结束，终态
	BloomDone
)

// String 返回 BloomPhase 的字符串表示
func (p BloomPhase) String() string {
	switch p {
	case BloomDormant:
		return "Dormant"
	case BloomActive:
		return "Active"
	case BloomDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// WorldColorComponent 天空与地面颜色，以及驱动花朵绽放的动画进度
type WorldColorComponent struct {
	Phase BloomPhase

	// T 动画进度，从 0 开始每个 tick 增加固定步长，超过结束阈值后停止
	T float64

	Sky    colorful.Color
	Ground colorful.Color
}

// Active 动画是否正在播放
func (w *WorldColorComponent) Active() bool {
	return w.Phase == BloomActive
}
