package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/entities"
)

// BloomSystem 世界上色与花朵绽放动画
//
// 动画只播放一次：Dormant --摘花--> Active --t 超过结束阈值--> Done。
//
// 每个实例的缩放只由 (i, t) 决定：
//
//	appear(i, t) = max(0, t - revealDelay) - stagger(i)
//	stagger(i)   = (i mod stride)*columnStagger + floor(i / stride)*rowStagger
//	scale(i, t)  = clamp(appear*growthRate, minScale, 1)，仅当 appear > revealThreshold
//
// t 单调递增，所以每个实例的缩放也单调不减；缩放到 1 后实例进入 Bloomed，不再改写。
type BloomSystem struct {
	bloom   config.BloomConfig
	flowers config.FlowerFieldConfig
}

// NewBloomSystem 创建绽放系统
func NewBloomSystem(bloom config.BloomConfig, flowers config.FlowerFieldConfig) *BloomSystem {
	return &BloomSystem{bloom: bloom, flowers: flowers}
}

// InRange 角色是否站在魔法花旁边（X、Z 两轴分别判断）
func (s *BloomSystem) InRange(avatar *components.AvatarComponent, final *components.FinalFlowerComponent) bool {
	dx := math.Abs(avatar.Position.X() - final.Position.X())
	dz := math.Abs(avatar.Position.Z() - final.Position.Z())
	return dx < s.flowers.InteractRadius && dz < s.flowers.InteractRadius
}

// TryTrigger 摘下魔法花，开始上色动画
//
// 只在 Dormant 阶段、角色在魔法花旁边时生效；
// 触发后隐藏玻璃罩和魔法花，动画从 t=0 开始。
func (s *BloomSystem) TryTrigger(world *components.WorldColorComponent, final *components.FinalFlowerComponent, avatar *components.AvatarComponent) bool {
	if world.Phase != components.BloomDormant {
		return false
	}
	if !s.InRange(avatar, final) {
		return false
	}

	world.Phase = components.BloomActive
	world.T = 0
	final.Visible = false
	log.Printf("[BloomSystem] Magical flower picked, bloom started")
	return true
}

// Update 推进一个 tick 的上色动画
//
// 返回:
//   - bool: 本 tick 动画结束（Active -> Done）
func (s *BloomSystem) Update(world *components.WorldColorComponent, field *components.FlowerFieldComponent) bool {
	if world.Phase != components.BloomActive {
		return false
	}

	world.T += s.bloom.Step
	t := world.T

	mix := math.Min(t, 1)
	world.Sky = s.bloom.SkyFrom.Color().BlendRgb(s.bloom.SkyTo.Color(), mix)
	world.Ground = s.bloom.GroundFrom.Color().BlendRgb(s.bloom.GroundTo.Color(), mix)

	for i := 0; i < field.Count(); i++ {
		if field.States[i] == components.BloomBloomed {
			continue
		}
		scale, ok := s.ScaleAt(i, t)
		if !ok {
			continue
		}
		entities.WriteFlowerTransforms(field, i, s.flowers, scale, s.flowers.StemHeight)
		if scale >= 1 {
			field.States[i] = components.BloomBloomed
		} else {
			field.States[i] = components.BloomBlooming
		}
	}

	if t > s.bloom.EndAt {
		world.Phase = components.BloomDone
		log.Printf("[BloomSystem] Bloom finished at t=%.3f", t)
		return true
	}
	return false
}

// Stagger 实例 i 的错峰延迟
func (s *BloomSystem) Stagger(i int) float64 {
	stride := s.bloom.StaggerStride
	return float64(i%stride)*s.bloom.ColumnStagger + float64(i/stride)*s.bloom.RowStagger
}

// ScaleAt 计算实例 i 在进度 t 时的缩放
// 第二个返回值为 false 表示实例尚未出现，应保持隐藏
func (s *BloomSystem) ScaleAt(i int, t float64) (float64, bool) {
	appear := math.Max(0, t-s.bloom.RevealDelay) - s.Stagger(i)
	if appear <= s.bloom.RevealThreshold {
		return 0, false
	}
	return mgl64.Clamp(appear*s.bloom.GrowthRate, s.bloom.MinScale, 1), true
}
