package components

import "github.com/go-gl/mathgl/mgl64"

// DialogueState 精灵对话状态
type DialogueState int

const (
	// DialogueIdle 未在对话（对话气泡隐藏）
	DialogueIdle DialogueState = iota

	// DialogueTalking 正在显示第 LineIndex 句
	DialogueTalking
)

// String 返回 DialogueState 的字符串表示
func (s DialogueState) String() string {
	switch s {
	case DialogueIdle:
		return "Idle"
	case DialogueTalking:
		return "Talking"
	default:
		return "Unknown"
	}
}

// CompanionComponent 精灵同伴（纯数据）
//
// 精灵悬浮在角色附近，保持一定距离跟随。
// 角色第一次靠近时开始对话，按交互键逐句推进，说完后不再触发。
type CompanionComponent struct {
	Position mgl64.Vec3

	// Yaw 绕 Y 轴朝向（弧度），始终面向角色
	Yaw float64

	Dialogue  DialogueState
	LineIndex int

	// Armed 为 true 时靠近才会触发对话，对话说完后置为 false
	Armed bool

	// Lines 对话内容（只读）
	Lines []string
}
