package components

import "github.com/go-gl/mathgl/mgl64"

// LimbPose 四肢绕 X 轴的摆动角度（弧度）
// 每个 tick 根据已运行时间重新计算，不作为持久状态
type LimbPose struct {
	ArmL float64
	ArmR float64
	LegL float64
	LegR float64
}

// AvatarComponent 玩家角色
type AvatarComponent struct {
	// Position 角色脚底的世界坐标，X 和 Z 始终在活动范围内
	Position mgl64.Vec3

	// Moving 本 tick 是否按住了任一移动键（决定走路/站立姿势）
	Moving bool

	// Pose 当前四肢姿势
	Pose LimbPose
}
