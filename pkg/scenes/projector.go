package scenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// PerspectiveProjector 透视投影，实现 game.Projector
//
// 世界坐标系为右手系，Y 轴向上。屏幕坐标原点在左上角。
type PerspectiveProjector struct {
	width  float64
	height float64
	proj   mgl64.Mat4

	// focal 屏幕空间的焦距（像素），用于把世界尺寸换算为屏幕半径
	focal float64
}

// NewPerspectiveProjector 按镜头配置和屏幕尺寸创建投影
func NewPerspectiveProjector(cfg config.CameraConfig, width, height int) *PerspectiveProjector {
	fovy := mgl64.DegToRad(cfg.FOV)
	aspect := float64(width) / float64(height)
	return &PerspectiveProjector{
		width:  float64(width),
		height: float64(height),
		proj:   mgl64.Perspective(fovy, aspect, cfg.Near, cfg.Far),
		focal:  float64(height) / 2 / math.Tan(fovy/2),
	}
}

// ViewProjection 返回镜头的视图投影矩阵
func (p *PerspectiveProjector) ViewProjection(cam *components.CameraComponent) mgl64.Mat4 {
	view := mgl64.LookAtV(cam.Position, cam.LookAt, mgl64.Vec3{0, 1, 0})
	return p.proj.Mul4(view)
}

// Project 把世界坐标投影到屏幕坐标
// 点在镜头背后或超出视锥时 ok 为 false
func (p *PerspectiveProjector) Project(world mgl64.Vec3, cam *components.CameraComponent) (float64, float64, bool) {
	return p.ProjectWith(p.ViewProjection(cam), world)
}

// ProjectWith 使用预先计算的视图投影矩阵投影（批量绘制时避免重复计算）
func (p *PerspectiveProjector) ProjectWith(vp mgl64.Mat4, world mgl64.Vec3) (float64, float64, bool) {
	x, y, w := p.projectRaw(vp, world)
	if w <= 0 {
		return 0, 0, false
	}
	if x < 0 || x > p.width || y < 0 || y > p.height {
		return x, y, false
	}
	return x, y, true
}

// projectRaw 返回屏幕坐标和裁剪空间 w（即视线方向深度），不做范围检查
func (p *PerspectiveProjector) projectRaw(vp mgl64.Mat4, world mgl64.Vec3) (float64, float64, float64) {
	clip := vp.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, w
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return (ndcX + 1) / 2 * p.width, (1 - ndcY) / 2 * p.height, w
}

// ScreenRadius 深度为 depth 处的世界尺寸 size 对应的屏幕像素
func (p *PerspectiveProjector) ScreenRadius(size, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return size * p.focal / depth
}
