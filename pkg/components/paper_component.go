package components

import "github.com/go-gl/mathgl/mgl64"

// PaperComponent 地上的纸条，捡起后开始问答
type PaperComponent struct {
	Position mgl64.Vec3

	// PickedUp 已被捡起（从场景中移除）
	PickedUp bool

	// PromptVisible "Press K to read" 提示是否显示
	PromptVisible bool
}
