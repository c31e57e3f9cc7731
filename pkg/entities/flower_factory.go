package entities

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// NewFlowerField 按抖动网格种下整片花田
//
// 放置规则:
//   - 外层循环 X 列，内层循环 Z 行，实例编号按放置顺序递增
//   - 每个格子先取两次随机数（X、Z 抖动），再判断是否落在玻璃罩保留区
//   - 保留区内的格子不种花，但随机数已经消耗，保证后续格子的抖动不受保留区影响
//
// 参数:
//   - cfg: 花田配置
//   - seed: 抖动随机种子（同一种子得到完全相同的花田）
//
// 返回:
//   - *components.FlowerFieldComponent: 所有实例处于隐藏状态的花田
func NewFlowerField(cfg config.FlowerFieldConfig, seed uint64) *components.FlowerFieldComponent {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	capacity := cfg.CountX * cfg.CountZ
	field := &components.FlowerFieldComponent{
		Positions: make([]mgl64.Vec3, 0, capacity),
	}

	for ix := 0; ix < cfg.CountX; ix++ {
		for iz := 0; iz < cfg.CountZ; iz++ {
			x := cfg.Origin + float64(ix)*cfg.Spacing + (rng.Float64()-0.5)*cfg.Jitter
			z := cfg.Origin + float64(iz)*cfg.Spacing + (rng.Float64()-0.5)*cfg.Jitter
			if z > cfg.Exclusion.MinZ && math.Abs(x) < cfg.Exclusion.HalfWidthX {
				continue
			}
			field.Positions = append(field.Positions, mgl64.Vec3{x, 0, z})
		}
	}

	n := len(field.Positions)
	field.States = make([]components.BloomState, n)
	field.Scales = make([]float64, n)
	field.Stems = make([]mgl64.Mat4, n)
	field.Centers = make([]mgl64.Mat4, n)
	field.Petals = make([][]mgl64.Mat4, n)
	for i := range field.Petals {
		field.Petals[i] = make([]mgl64.Mat4, cfg.PetalCount)
	}

	// 初始状态：茎贴地，整朵花缩到几乎不可见
	for i := 0; i < n; i++ {
		WriteFlowerTransforms(field, i, cfg, cfg.HiddenScale, 0)
	}

	log.Printf("[FlowerFactory] Planted %d flowers (%dx%d grid, seed=%d)", n, cfg.CountX, cfg.CountZ, seed)
	return field
}

// WriteFlowerTransforms 改写实例 i 的茎、花瓣、花心变换矩阵
//
// 参数:
//   - field: 花田
//   - i: 实例编号
//   - cfg: 花田配置（花瓣数量、半径、花头高度）
//   - scale: 统一缩放比例
//   - stemY: 茎的高度（初始贴地为 0，绽放时抬到 StemHeight）
func WriteFlowerTransforms(field *components.FlowerFieldComponent, i int, cfg config.FlowerFieldConfig, scale, stemY float64) {
	pos := field.Positions[i]
	x, z := pos.X(), pos.Z()
	uniform := mgl64.Scale3D(scale, scale, scale)

	field.Stems[i] = mgl64.Translate3D(x, stemY, z).Mul4(uniform)

	for p := range field.Petals[i] {
		angle := float64(p) / float64(cfg.PetalCount) * 2 * math.Pi
		px := x + math.Sin(angle)*cfg.PetalRadius
		pz := z + math.Cos(angle)*cfg.PetalRadius
		field.Petals[i][p] = mgl64.Translate3D(px, cfg.HeadHeight, pz).
			Mul4(mgl64.HomogRotate3DY(angle)).
			Mul4(mgl64.Scale3D(scale, 0.5*scale, 0.7*scale))
	}

	field.Centers[i] = mgl64.Translate3D(x, cfg.HeadHeight, z).Mul4(uniform)
	field.Scales[i] = scale
	field.Revision++
}
