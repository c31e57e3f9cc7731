package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// PaperSystem 地上纸条的提示和拾取
type PaperSystem struct {
	cfg config.PaperConfig
}

// NewPaperSystem 创建纸条系统
func NewPaperSystem(cfg config.PaperConfig) *PaperSystem {
	return &PaperSystem{cfg: cfg}
}

// near 角色与纸条的三维距离是否在拾取范围内
func (s *PaperSystem) near(paper *components.PaperComponent, avatar *components.AvatarComponent) bool {
	return avatar.Position.Sub(paper.Position).Len() < s.cfg.PickupRadius
}

// UpdatePrompt 更新 "Press K to read" 提示的可见性
//
// 条件：纸条还在地上、角色在拾取范围内、纸条位于镜头前方。
func (s *PaperSystem) UpdatePrompt(paper *components.PaperComponent, avatar *components.AvatarComponent, cam *components.CameraComponent) bool {
	visible := !paper.PickedUp && s.near(paper, avatar) && s.inFront(paper.Position, cam)
	paper.PromptVisible = visible
	return visible
}

func (s *PaperSystem) inFront(p mgl64.Vec3, cam *components.CameraComponent) bool {
	forward := cam.LookAt.Sub(cam.Position)
	return p.Sub(cam.Position).Dot(forward) > 0
}

// PromptAnchor 提示在世界中的锚点（纸条上方）
func (s *PaperSystem) PromptAnchor(paper *components.PaperComponent) mgl64.Vec3 {
	return paper.Position.Add(mgl64.Vec3{0, s.cfg.PromptHeight, 0})
}

// TryPickup 捡起纸条
func (s *PaperSystem) TryPickup(paper *components.PaperComponent, avatar *components.AvatarComponent) bool {
	if paper.PickedUp || !s.near(paper, avatar) {
		return false
	}
	paper.PickedUp = true
	paper.PromptVisible = false
	log.Printf("[PaperSystem] Paper picked up")
	return true
}
