package systems

import (
	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// CameraSystem 第三人称镜头跟随
//
// 镜头注视点在角色头顶上方，期望位置在注视点后上方固定偏移处。
// 每个 tick 镜头向期望位置移动剩余距离的固定比例（指数平滑）。
// 过场动画期间由 CutsceneSystem 接管，本系统不被调用。
type CameraSystem struct {
	cfg config.CameraConfig
}

// NewCameraSystem 创建镜头跟随系统
func NewCameraSystem(cfg config.CameraConfig) *CameraSystem {
	return &CameraSystem{cfg: cfg}
}

// Follow 让镜头向角色身后的期望位置靠近一步，并注视角色
func (s *CameraSystem) Follow(cam *components.CameraComponent, avatar *components.AvatarComponent) {
	target := avatar.Position
	target[1] += s.cfg.TargetHeight

	desired := target.Add(s.cfg.Offset)
	cam.Position = cam.Position.Add(desired.Sub(cam.Position).Mul(s.cfg.Smoothing))
	cam.LookAt = target
}
