package entities

import (
	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// NewAvatar 在出生点创建玩家角色
func NewAvatar(cfg config.AvatarConfig) *components.AvatarComponent {
	return &components.AvatarComponent{Position: cfg.Spawn}
}

// NewCamera 创建初始镜头（注视角色头顶）
func NewCamera(cam config.CameraConfig, avatar config.AvatarConfig) *components.CameraComponent {
	lookAt := avatar.Spawn
	lookAt[1] += cam.TargetHeight
	return &components.CameraComponent{
		Position: cam.Initial,
		LookAt:   lookAt,
	}
}

// NewCompanion 创建精灵同伴，初始可触发对话
func NewCompanion(cfg config.CompanionConfig) *components.CompanionComponent {
	return &components.CompanionComponent{
		Position: cfg.Spawn,
		Dialogue: components.DialogueIdle,
		Armed:    true,
		Lines:    cfg.Lines,
	}
}

// NewPaper 创建地上的纸条
func NewPaper(cfg config.PaperConfig) *components.PaperComponent {
	return &components.PaperComponent{Position: cfg.Position}
}

// NewFinalFlower 创建玻璃罩中的魔法花
func NewFinalFlower(cfg config.FlowerFieldConfig) *components.FinalFlowerComponent {
	return &components.FinalFlowerComponent{
		Position: cfg.FinalFlower,
		Visible:  true,
	}
}

// NewWorldColor 创建未上色的世界（暗色天空、浅灰地面）
func NewWorldColor(cfg config.BloomConfig) *components.WorldColorComponent {
	return &components.WorldColorComponent{
		Phase:  components.BloomDormant,
		Sky:    cfg.SkyFrom.Color(),
		Ground: cfg.GroundInitial.Color(),
	}
}

// NewQuiz 创建问答（初始隐藏）
func NewQuiz(cfg config.QuizConfig) *components.QuizComponent {
	return &components.QuizComponent{
		Phase:     components.QuizHidden,
		Questions: cfg.Questions,
	}
}
