package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// CompanionSystem 精灵同伴的跟随和对话状态机
//
// 对话状态转换:
//
//	Idle(armed) --角色进入触发范围--> Talking(0)
//	Talking(i)  --交互键--> Talking(i+1) 或 Idle(disarmed)（说完最后一句）
//
// 说完后不再重新触发，避免角色站在原地时对话无限循环。
type CompanionSystem struct {
	cfg config.CompanionConfig
}

// DialogueStep 对话推进的结果
type DialogueStep struct {
	// Line 需要显示的台词（Ended 为 true 时为空）
	Line string

	// Ended 对话已结束，应隐藏对话气泡
	Ended bool
}

// NewCompanionSystem 创建精灵系统
func NewCompanionSystem(cfg config.CompanionConfig) *CompanionSystem {
	return &CompanionSystem{cfg: cfg}
}

// Follow 精灵在水平面上跟随角色，保持期望距离，并上下漂浮
//
// 只有距离超过期望距离时才移动和转向；漂浮高度每个 tick 都更新。
func (s *CompanionSystem) Follow(c *components.CompanionComponent, avatar *components.AvatarComponent, elapsedMs float64) {
	dx := avatar.Position.X() - c.Position.X()
	dz := avatar.Position.Z() - c.Position.Z()

	if math.Hypot(dx, dz) > s.cfg.DesiredDistance {
		angle := math.Atan2(dz, dx)
		targetX := avatar.Position.X() - math.Cos(angle)*s.cfg.DesiredDistance
		targetZ := avatar.Position.Z() - math.Sin(angle)*s.cfg.DesiredDistance

		c.Position[0] += (targetX - c.Position.X()) * s.cfg.FollowRate
		c.Position[2] += (targetZ - c.Position.Z()) * s.cfg.FollowRate
		c.Yaw = angle - math.Pi/2
	}

	c.Position[1] = s.cfg.FloatBase + math.Sin(elapsedMs*s.cfg.FloatRate)*s.cfg.FloatAmplitude
}

// TryStartDialogue 角色进入触发范围时开始对话
//
// 返回:
//   - string: 第一句台词
//   - bool: 是否开始了对话
func (s *CompanionSystem) TryStartDialogue(c *components.CompanionComponent, avatar *components.AvatarComponent) (string, bool) {
	if c.Dialogue != components.DialogueIdle || !c.Armed || len(c.Lines) == 0 {
		return "", false
	}

	dx := math.Abs(avatar.Position.X() - c.Position.X())
	dz := math.Abs(avatar.Position.Z() - c.Position.Z())
	if dx >= s.cfg.TriggerRadius || dz >= s.cfg.TriggerRadius {
		return "", false
	}

	c.Dialogue = components.DialogueTalking
	c.LineIndex = 0
	log.Printf("[CompanionSystem] Dialogue started (%d lines)", len(c.Lines))
	return c.Lines[0], true
}

// Advance 推进到下一句台词
// 不在对话中时返回 false，调用方应把按键交给其它处理器
func (s *CompanionSystem) Advance(c *components.CompanionComponent) (DialogueStep, bool) {
	if c.Dialogue != components.DialogueTalking {
		return DialogueStep{}, false
	}

	c.LineIndex++
	if c.LineIndex >= len(c.Lines) {
		c.Dialogue = components.DialogueIdle
		c.LineIndex = 0
		c.Armed = false
		log.Printf("[CompanionSystem] Dialogue finished")
		return DialogueStep{Ended: true}, true
	}

	return DialogueStep{Line: c.Lines[c.LineIndex]}, true
}

// Talking 是否正在对话
func (s *CompanionSystem) Talking(c *components.CompanionComponent) bool {
	return c.Dialogue == components.DialogueTalking
}

// PopupAnchor 对话气泡在世界中的锚点（精灵头顶）
func (s *CompanionSystem) PopupAnchor(c *components.CompanionComponent) mgl64.Vec3 {
	return c.Position.Add(mgl64.Vec3{0, s.cfg.PopupHeight, 0})
}
