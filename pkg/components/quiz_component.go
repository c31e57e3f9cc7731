package components

import "github.com/decker502/flowerfield/pkg/config"

// QuizPhase 问答阶段
type QuizPhase int

const (
	// QuizHidden 未开始（纸条还没捡起）
	QuizHidden QuizPhase = iota

	// QuizAsking 正在显示第 Index 题
	QuizAsking

	// QuizComplete 全部答完，显示得分和开始投篮按钮
	QuizComplete

	// QuizClosed 已关闭，投篮小游戏开始
	QuizClosed
)

// String 返回 QuizPhase 的字符串表示
func (p QuizPhase) String() string {
	switch p {
	case QuizHidden:
		return "Hidden"
	case QuizAsking:
		return "Asking"
	case QuizComplete:
		return "Complete"
	case QuizClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// QuizComponent 问答状态
type QuizComponent struct {
	Phase QuizPhase
	Index int
	Score int

	// Questions 题库（只读）
	Questions []config.QuizQuestion
}
