package components

import "github.com/go-gl/mathgl/mgl64"

// CameraComponent 第三人称镜头状态
//
// 平时由 CameraSystem 平滑跟随角色，过场动画期间由 CutsceneSystem 接管。
// 渲染层只读取 Position 和 LookAt 构建视图矩阵。
type CameraComponent struct {
	// Position 镜头世界坐标
	Position mgl64.Vec3

	// LookAt 镜头注视点（世界坐标）
	LookAt mgl64.Vec3
}
