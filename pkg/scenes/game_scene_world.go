package scenes

import (
	"image/color"
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/game"
)

// 模型尺寸（世界单位）
const (
	petalSize   = 0.14
	centerSize  = 0.09
	stemWidth   = 0.03
	limbLength  = 0.75
	limbWidth   = 0.12
	hipHeight   = 0.9
	neckHeight  = 1.6
	headRadius  = 0.25
	coneHeight  = 1.0
	coneRadius  = 0.45
	genieRadius = 0.3
	hoopRadius  = 0.23
	hoopSides   = 14
	glassHalf   = 0.6
	glassHeight = 1.4
	paperHalfX  = 0.3
	paperHalfZ  = 0.22
)

var (
	stemColor       = color.RGBA{60, 140, 60, 255}
	flowerCenter    = color.RGBA{250, 210, 60, 255}
	finalPetalColor = color.RGBA{230, 60, 160, 255}
	glassColor      = color.RGBA{180, 220, 255, 70}
	glassEdgeColor  = color.RGBA{220, 240, 255, 160}
	paperColor      = color.RGBA{250, 248, 235, 255}
	bodyColor       = color.RGBA{60, 90, 160, 255}
	limbColor       = color.RGBA{40, 40, 60, 255}
	skinColor       = color.RGBA{240, 200, 170, 255}
	genieConeColor  = color.RGBA{70, 120, 230, 255}
	genieHeadColor  = color.RGBA{110, 170, 255, 255}
	boardColor      = color.RGBA{245, 245, 245, 255}
	hoopColor       = color.RGBA{230, 90, 20, 255}
	ballColor       = color.RGBA{220, 110, 30, 255}
)

// drawItem 一个待绘制的图元，按深度从远到近排序后绘制
type drawItem struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

// WorldRenderer 绘制 3D 场景
//
// 没有深度缓冲：所有图元投影到屏幕后按视线深度排序，从远到近依次绘制。
type WorldRenderer struct {
	cfg       *config.GameConfig
	projector *PerspectiveProjector

	whiteImage *ebiten.Image
	palette    []color.Color
	flowers    *flowerCache

	items []drawItem
	vp    mgl64.Mat4

	// 填充多边形用的顶点缓存
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewWorldRenderer 创建场景渲染器
func NewWorldRenderer(cfg *config.GameConfig, projector *PerspectiveProjector) *WorldRenderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &WorldRenderer{
		cfg:        cfg,
		projector:  projector,
		whiteImage: white,
		flowers:    newFlowerCache(cfg.Flowers.StemHeight),
	}
}

// flowerColor 每朵花的花瓣颜色，由实例编号决定
func (r *WorldRenderer) flowerColor(i int) color.Color {
	if len(r.palette) <= i {
		for j := len(r.palette); j <= i; j++ {
			hue := math.Mod(float64(j)*47, 360)
			r.palette = append(r.palette, colorful.Hsv(hue, 0.55, 0.98))
		}
	}
	return r.palette[i]
}

// Draw 绘制整个场景
func (r *WorldRenderer) Draw(screen *ebiten.Image, gs *game.GameState) {
	r.vp = r.projector.ViewProjection(gs.Camera)
	r.items = r.items[:0]

	r.drawBackground(screen, gs)

	r.collectFlowers(gs)
	r.collectFinalFlower(gs)
	r.collectPaper(gs)
	r.collectAvatar(gs)
	r.collectCompanion(gs)
	r.collectBasketball(gs)

	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].depth > r.items[j].depth
	})
	for _, it := range r.items {
		it.draw(screen)
	}
}

// drawBackground 填充天空，并在地平线以下按距离分段绘制地面
func (r *WorldRenderer) drawBackground(screen *ebiten.Image, gs *game.GameState) {
	screen.Fill(gs.World.Sky)

	cam := gs.Camera
	forward := cam.LookAt.Sub(cam.Position)
	forward[1] = 0
	if forward.Len() < 1e-6 {
		forward = mgl64.Vec3{0, 0, 1}
	}
	forward = forward.Normalize()

	w := r.projector.width
	h := r.projector.height
	ground := gs.World.Ground
	sky := gs.World.Sky

	// 由远到近画，每段的颜色向天空色雾化
	samples := config.GroundHorizonSamples
	for s := 0; s < samples; s++ {
		frac := 1 - float64(s)/float64(samples)
		dist := r.cfg.Camera.Far * 0.5 * frac * frac
		p := cam.Position.Add(forward.Mul(dist))
		p[1] = 0
		_, y, depth := r.projector.projectRaw(r.vp, p)
		if depth <= 0 {
			continue
		}
		y = clampF(y, 0, h)
		band := ground.BlendRgb(sky, 0.35*frac*frac).Clamped()
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), float32(h-y), band, false)
	}
}

// add 记录一个图元
func (r *WorldRenderer) add(depth float64, draw func(screen *ebiten.Image)) {
	r.items = append(r.items, drawItem{depth: depth, draw: draw})
}

// project 投影一个点，返回屏幕坐标和深度；点在镜头背后时 ok 为 false
func (r *WorldRenderer) project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	x, y, depth = r.projector.projectRaw(r.vp, p)
	return x, y, depth, depth > r.cfg.Camera.Near
}

// onScreen 点是否在屏幕附近（留出 margin 像素）
func (r *WorldRenderer) onScreen(x, y, margin float64) bool {
	return x >= -margin && x <= r.projector.width+margin && y >= -margin && y <= r.projector.height+margin
}

func (r *WorldRenderer) collectFlowers(gs *game.GameState) {
	if r.flowers.refresh(gs.Flowers) {
		log.Printf("[WorldRenderer] Flower cache rebuilt: %d visible (revision %d)", len(r.flowers.flowers), gs.Flowers.Revision)
	}

	camPos := gs.Camera.Position
	maxDist2 := config.FlowerDrawDistance * config.FlowerDrawDistance

	for fi := range r.flowers.flowers {
		f := &r.flowers.flowers[fi]
		dx, dz := f.center.X()-camPos.X(), f.center.Z()-camPos.Z()
		if dx*dx+dz*dz > maxDist2 {
			continue
		}

		hx, hy, depth, ok := r.project(f.center)
		if !ok || !r.onScreen(hx, hy, 40) {
			continue
		}
		bx, by, _, bok := r.project(f.stemBottom)
		tx, ty, _, tok := r.project(f.stemTop)

		petals := make([][2]float64, 0, len(f.petals))
		for _, p := range f.petals {
			if px, py, _, pok := r.project(p); pok {
				petals = append(petals, [2]float64{px, py})
			}
		}

		petalR := float32(r.projector.ScreenRadius(petalSize*f.petalScale, depth))
		centerR := float32(r.projector.ScreenRadius(centerSize*f.centerScale, depth))
		stemW := float32(math.Max(1, r.projector.ScreenRadius(stemWidth*f.stemScale, depth)))
		petalColor := r.flowerColor(f.index)

		r.add(depth, func(screen *ebiten.Image) {
			if bok && tok {
				vector.StrokeLine(screen, float32(bx), float32(by), float32(tx), float32(ty), stemW, stemColor, false)
			}
			for _, p := range petals {
				vector.DrawFilledCircle(screen, float32(p[0]), float32(p[1]), petalR, petalColor, false)
			}
			vector.DrawFilledCircle(screen, float32(hx), float32(hy), centerR, flowerCenter, false)
		})
	}
}

func (r *WorldRenderer) collectFinalFlower(gs *game.GameState) {
	final := gs.FinalFlower
	if !final.Visible {
		return
	}
	base := mgl64.Vec3{final.Position.X(), 0, final.Position.Z()}
	hx, hy, depth, ok := r.project(final.Position)
	if !ok {
		return
	}
	gx, gy, _, _ := r.project(base)
	petalR := float32(r.projector.ScreenRadius(petalSize*1.6, depth))
	centerR := float32(r.projector.ScreenRadius(centerSize*1.6, depth))
	stemW := float32(math.Max(1, r.projector.ScreenRadius(stemWidth*1.5, depth)))
	spread := r.projector.ScreenRadius(0.2, depth)

	r.add(depth, func(screen *ebiten.Image) {
		vector.StrokeLine(screen, float32(gx), float32(gy), float32(hx), float32(hy), stemW, stemColor, false)
		for p := 0; p < 6; p++ {
			a := float64(p) * math.Pi / 3
			vector.DrawFilledCircle(screen, float32(hx+math.Cos(a)*spread), float32(hy+math.Sin(a)*spread), petalR, finalPetalColor, false)
		}
		vector.DrawFilledCircle(screen, float32(hx), float32(hy), centerR, flowerCenter, false)
	})

	// 玻璃罩：前表面，深度略小于花
	front := []mgl64.Vec3{
		base.Add(mgl64.Vec3{-glassHalf, 0, -glassHalf}),
		base.Add(mgl64.Vec3{glassHalf, 0, -glassHalf}),
		base.Add(mgl64.Vec3{glassHalf, glassHeight, -glassHalf}),
		base.Add(mgl64.Vec3{-glassHalf, glassHeight, -glassHalf}),
	}
	if pts, ok := r.projectAll(front); ok {
		r.add(depth-0.01, func(screen *ebiten.Image) {
			r.fillPolygon(screen, pts, glassColor)
			r.strokePolygon(screen, pts, 1, glassEdgeColor)
		})
	}
}

func (r *WorldRenderer) collectPaper(gs *game.GameState) {
	paper := gs.Paper
	if paper.PickedUp {
		return
	}
	c := paper.Position
	corners := []mgl64.Vec3{
		c.Add(mgl64.Vec3{-paperHalfX, 0, -paperHalfZ}),
		c.Add(mgl64.Vec3{paperHalfX, 0, -paperHalfZ}),
		c.Add(mgl64.Vec3{paperHalfX, 0, paperHalfZ}),
		c.Add(mgl64.Vec3{-paperHalfX, 0, paperHalfZ}),
	}
	pts, ok := r.projectAll(corners)
	if !ok {
		return
	}
	_, _, depth, _ := r.project(c)
	r.add(depth, func(screen *ebiten.Image) {
		r.fillPolygon(screen, pts, paperColor)
	})
}

// limbEnd 绕 X 轴摆动 angle 后的肢体末端
func limbEnd(origin mgl64.Vec3, angle, length float64) mgl64.Vec3 {
	return origin.Add(mgl64.Vec3{0, -math.Cos(angle) * length, math.Sin(angle) * length})
}

func (r *WorldRenderer) collectAvatar(gs *game.GameState) {
	a := gs.Avatar
	pos := a.Position
	hip := pos.Add(mgl64.Vec3{0, hipHeight, 0})
	neck := pos.Add(mgl64.Vec3{0, neckHeight, 0})
	headC := neck.Add(mgl64.Vec3{0, headRadius + 0.05, 0})

	segments := [][2]mgl64.Vec3{
		{hip.Add(mgl64.Vec3{0.15, 0, 0}), limbEnd(hip.Add(mgl64.Vec3{0.15, 0, 0}), a.Pose.LegL, hipHeight)},
		{hip.Add(mgl64.Vec3{-0.15, 0, 0}), limbEnd(hip.Add(mgl64.Vec3{-0.15, 0, 0}), a.Pose.LegR, hipHeight)},
		{neck.Add(mgl64.Vec3{0.3, 0, 0}), limbEnd(neck.Add(mgl64.Vec3{0.3, 0, 0}), a.Pose.ArmL, limbLength)},
		{neck.Add(mgl64.Vec3{-0.3, 0, 0}), limbEnd(neck.Add(mgl64.Vec3{-0.3, 0, 0}), a.Pose.ArmR, limbLength)},
	}

	_, _, depth, ok := r.project(pos.Add(mgl64.Vec3{0, 1, 0}))
	if !ok {
		return
	}
	type line struct{ x0, y0, x1, y1 float32 }
	var limbs []line
	for _, s := range segments {
		x0, y0, _, ok0 := r.project(s[0])
		x1, y1, _, ok1 := r.project(s[1])
		if ok0 && ok1 {
			limbs = append(limbs, line{float32(x0), float32(y0), float32(x1), float32(y1)})
		}
	}
	hx, hy, _, _ := r.project(hip)
	nx, ny, _, _ := r.project(neck)
	cx, cy, _, _ := r.project(headC)
	limbW := float32(math.Max(1, r.projector.ScreenRadius(limbWidth, depth)))
	bodyW := float32(math.Max(2, r.projector.ScreenRadius(0.45, depth)))
	headR := float32(r.projector.ScreenRadius(headRadius, depth))

	r.add(depth, func(screen *ebiten.Image) {
		for _, l := range limbs {
			vector.StrokeLine(screen, l.x0, l.y0, l.x1, l.y1, limbW, limbColor, false)
		}
		vector.StrokeLine(screen, float32(hx), float32(hy), float32(nx), float32(ny), bodyW, bodyColor, false)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), headR, skinColor, false)
	})
}

func (r *WorldRenderer) collectCompanion(gs *game.GameState) {
	c := gs.Companion
	base := c.Position
	apex := base.Add(mgl64.Vec3{0, coneHeight, 0})

	// 圆锥底面两侧的点随朝向旋转
	side := mgl64.Vec3{math.Cos(c.Yaw) * coneRadius, 0, -math.Sin(c.Yaw) * coneRadius}
	cone := []mgl64.Vec3{base.Add(side), apex, base.Sub(side)}
	pts, ok := r.projectAll(cone)
	if !ok {
		return
	}
	head := apex.Add(mgl64.Vec3{0, genieRadius * 0.8, 0})
	sx, sy, depth, ok := r.project(head)
	if !ok {
		return
	}
	headR := float32(r.projector.ScreenRadius(genieRadius, depth))

	r.add(depth, func(screen *ebiten.Image) {
		r.fillPolygon(screen, pts, genieConeColor)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), headR, genieHeadColor, true)
	})
}

func (r *WorldRenderer) collectBasketball(gs *game.GameState) {
	bb := gs.Basketball
	bc := r.cfg.Basketball

	if bb.HoopPresent {
		board := bc.Backboard
		corners := []mgl64.Vec3{
			board.Add(mgl64.Vec3{-0.6, -0.4, 0}),
			board.Add(mgl64.Vec3{0.6, -0.4, 0}),
			board.Add(mgl64.Vec3{0.6, 0.4, 0}),
			board.Add(mgl64.Vec3{-0.6, 0.4, 0}),
		}
		if pts, ok := r.projectAll(corners); ok {
			_, _, depth, _ := r.project(board)
			r.add(depth, func(screen *ebiten.Image) {
				r.fillPolygon(screen, pts, boardColor)
				r.strokePolygon(screen, pts, 2, hoopColor)
			})
		}

		ring := make([]mgl64.Vec3, hoopSides)
		for i := range ring {
			a := float64(i) * 2 * math.Pi / hoopSides
			ring[i] = bc.HoopCenter.Add(mgl64.Vec3{math.Cos(a) * hoopRadius, 0, math.Sin(a) * hoopRadius})
		}
		if pts, ok := r.projectAll(ring); ok {
			_, _, depth, _ := r.project(bc.HoopCenter)
			r.add(depth, func(screen *ebiten.Image) {
				r.strokePolygon(screen, pts, 3, hoopColor)
			})
		}
	}

	ball, ok := bb.Ball()
	if !ok {
		return
	}
	x, y, depth, ok := r.project(ball.Position)
	if !ok {
		return
	}
	radius := float32(math.Max(2, r.projector.ScreenRadius(bc.BallRadius, depth)))
	r.add(depth, func(screen *ebiten.Image) {
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, ballColor, true)
	})
}

// projectAll 投影多边形的所有顶点，任一顶点在镜头背后则放弃
func (r *WorldRenderer) projectAll(points []mgl64.Vec3) ([][2]float32, bool) {
	out := make([][2]float32, len(points))
	for i, p := range points {
		x, y, _, ok := r.project(p)
		if !ok {
			return nil, false
		}
		out[i] = [2]float32{float32(x), float32(y)}
	}
	return out, true
}

// fillPolygon 以扇形三角化后用纯色填充凸多边形
func (r *WorldRenderer) fillPolygon(screen *ebiten.Image, pts [][2]float32, c color.Color) {
	if len(pts) < 3 {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, p := range pts {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   p[0],
			DstY:   p[1],
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}
	// color.Color.RGBA 返回预乘 alpha 的分量
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	screen.DrawTriangles(r.vertices, r.indices, r.whiteImage, op)
}

// strokePolygon 描边闭合多边形
func (r *WorldRenderer) strokePolygon(screen *ebiten.Image, pts [][2]float32, width float32, c color.Color) {
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(screen, pts[i][0], pts[i][1], pts[j][0], pts[j][1], width, c, true)
	}
}
