package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/input"
)

// AvatarSystem 处理角色移动和四肢摆动
//
// 移动规则:
//   - 每个方向只要有任一绑定键按住就移动一个步长
//   - 左右、前后同时按住时互相抵消；斜向移动不做归一化
//   - 移动后 X 和 Z 被夹在活动范围内
//
// 镜头位于角色身后（-Z 方向）朝 +Z 看，所以屏幕左侧是世界 +X。
type AvatarSystem struct {
	cfg config.AvatarConfig
}

// NewAvatarSystem 创建角色系统
func NewAvatarSystem(cfg config.AvatarConfig) *AvatarSystem {
	return &AvatarSystem{cfg: cfg}
}

// Move 根据当前按键状态移动角色一个 tick
func (s *AvatarSystem) Move(avatar *components.AvatarComponent, in *input.State) {
	step := s.cfg.Step
	pos := avatar.Position

	if in.Held(input.ActionMoveLeft) {
		pos[0] += step
	}
	if in.Held(input.ActionMoveRight) {
		pos[0] -= step
	}
	if in.Held(input.ActionMoveForward) {
		pos[2] += step
	}
	if in.Held(input.ActionMoveBack) {
		pos[2] -= step
	}

	avatar.Position = s.clamp(pos)
}

// Teleport 把角色放到指定位置（仍然受活动范围限制）
func (s *AvatarSystem) Teleport(avatar *components.AvatarComponent, pos mgl64.Vec3) {
	avatar.Position = s.clamp(pos)
}

func (s *AvatarSystem) clamp(pos mgl64.Vec3) mgl64.Vec3 {
	b := s.cfg.Bound
	pos[0] = mgl64.Clamp(pos[0], -b, b)
	pos[2] = mgl64.Clamp(pos[2], -b, b)
	return pos
}

// UpdatePose 根据已运行时间计算四肢姿势
// 过场动画期间也会调用，此时按键仍然决定是否摆动
func (s *AvatarSystem) UpdatePose(avatar *components.AvatarComponent, in *input.State, elapsedMs float64) {
	avatar.Moving = in.AnyMovement()
	if !avatar.Moving {
		avatar.Pose = components.LimbPose{}
		return
	}

	swing := math.Sin(elapsedMs * s.cfg.LimbPhaseRate)
	avatar.Pose = components.LimbPose{
		ArmL: swing * s.cfg.ArmSwing,
		ArmR: -swing * s.cfg.ArmSwing,
		LegL: -swing * s.cfg.LegSwing,
		LegR: swing * s.cfg.LegSwing,
	}
}
