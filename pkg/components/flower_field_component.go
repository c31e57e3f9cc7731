package components

import "github.com/go-gl/mathgl/mgl64"

// BloomState 单朵花的绽放状态
type BloomState int

const (
	// BloomHidden 尚未出现（缩放为隐藏比例）
	BloomHidden BloomState = iota

	// BloomBlooming 正在长大（0 < scale < 1）
	BloomBlooming

	// BloomBloomed 完全绽放，终态，不再更新
	BloomBloomed
)

// String 返回 BloomState 的字符串表示
func (s BloomState) String() string {
	switch s {
	case BloomHidden:
		return "Hidden"
	case BloomBlooming:
		return "Blooming"
	case BloomBloomed:
		return "Bloomed"
	default:
		return "Unknown"
	}
}

// FlowerFieldComponent 花田实例数据
//
// 所有切片长度相同（实例数 N），下标 i 即实例编号。
// 实例编号决定绽放的错峰延迟，因此放置顺序必须是确定的。
//
// 注意事项:
//   - Positions 是花的地面坐标（Y=0），放置后不变
//   - Stems/Centers 每个实例一个变换矩阵，Petals 每个实例 PetalCount 个
//   - Revision 每次有实例矩阵被改写时递增，场景渲染器的花朵几何缓存以它为键
type FlowerFieldComponent struct {
	Positions []mgl64.Vec3
	States    []BloomState

	Stems   []mgl64.Mat4
	Petals  [][]mgl64.Mat4
	Centers []mgl64.Mat4

	// Scales 每个实例当前的缩放比例（渲染层用来跳过隐藏的花）
	Scales []float64

	Revision uint64
}

// Count 实例数
func (f *FlowerFieldComponent) Count() int {
	return len(f.Positions)
}

// FinalFlowerComponent 玻璃罩中的魔法花
type FinalFlowerComponent struct {
	Position mgl64.Vec3

	// Visible 玻璃罩与魔法花是否可见，摘花后隐藏
	Visible bool
}
