package scenes

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
)

// flowerMinScale 缩放不超过该值的花视为隐藏，不绘制
const flowerMinScale = 0.01

// flowerGeometry 一朵花在世界空间中的绘制几何，全部取自实例变换矩阵
type flowerGeometry struct {
	index int

	stemBottom mgl64.Vec3
	stemTop    mgl64.Vec3
	stemScale  float64

	center      mgl64.Vec3
	centerScale float64

	petals     []mgl64.Vec3
	petalScale float64
}

// flowerCache 可见花朵几何的缓存
//
// 以 FlowerFieldComponent.Revision 为键：绽放动画没有改写任何矩阵时直接复用，
// 绽放结束后每帧不再需要重新解析九千多组矩阵。
type flowerCache struct {
	valid    bool
	revision uint64

	// stemHalf 茎模型的半高（单位缩放时）
	stemHalf float64

	flowers []flowerGeometry
}

func newFlowerCache(stemHalf float64) *flowerCache {
	return &flowerCache{stemHalf: stemHalf}
}

// refresh 花田矩阵有改动时重建缓存，返回是否重建
func (c *flowerCache) refresh(field *components.FlowerFieldComponent) bool {
	if c.valid && c.revision == field.Revision {
		return false
	}

	c.flowers = c.flowers[:0]
	for i := 0; i < field.Count(); i++ {
		if field.Scales[i] <= flowerMinScale {
			continue
		}
		c.flowers = append(c.flowers, c.geometryAt(field, i))
	}
	c.valid = true
	c.revision = field.Revision
	return true
}

// geometryAt 从第 i 个实例的茎、花心、花瓣矩阵解析出绘制几何
// 平移取矩阵第 4 列，缩放取第 1 列的长度（花瓣带旋转）
func (c *flowerCache) geometryAt(field *components.FlowerFieldComponent, i int) flowerGeometry {
	stem := field.Stems[i]
	stemPos := stem.Col(3).Vec3()
	stemScale := stem.Col(0).Vec3().Len()
	half := mgl64.Vec3{0, c.stemHalf * stemScale, 0}

	center := field.Centers[i]

	g := flowerGeometry{
		index:       i,
		stemBottom:  stemPos.Sub(half),
		stemTop:     stemPos.Add(half),
		stemScale:   stemScale,
		center:      center.Col(3).Vec3(),
		centerScale: center.Col(0).Vec3().Len(),
		petals:      make([]mgl64.Vec3, len(field.Petals[i])),
	}
	for p, m := range field.Petals[i] {
		g.petals[p] = m.Col(3).Vec3()
		g.petalScale = m.Col(0).Vec3().Len()
	}
	return g
}
