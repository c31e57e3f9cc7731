package scenes

import (
	"math"
	"testing"

	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/entities"
)

func testFlowerConfig() config.FlowerFieldConfig {
	return config.FlowerFieldConfig{
		CountX:      3,
		CountZ:      2,
		Spacing:     1,
		Origin:      -1,
		Seed:        7,
		Exclusion:   config.ExclusionZone{MinZ: 100, HalfWidthX: 1},
		PetalCount:  5,
		PetalRadius: 0.1,
		StemHeight:  0.25,
		HeadHeight:  0.5,
		HiddenScale: 0.001,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestFlowerCache_RebuildOnRevision 测试缓存只在矩阵改动后重建
func TestFlowerCache_RebuildOnRevision(t *testing.T) {
	cfg := testFlowerConfig()
	field := entities.NewFlowerField(cfg, cfg.Seed)
	cache := newFlowerCache(cfg.StemHeight)

	if !cache.refresh(field) {
		t.Fatal("first refresh must build the cache")
	}
	if len(cache.flowers) != 0 {
		t.Errorf("hidden flowers cached: got %d, want 0", len(cache.flowers))
	}
	if cache.refresh(field) {
		t.Error("refresh without matrix changes must reuse the cache")
	}

	entities.WriteFlowerTransforms(field, 2, cfg, 1, cfg.StemHeight)
	if !cache.refresh(field) {
		t.Fatal("refresh after a matrix write must rebuild")
	}
	if len(cache.flowers) != 1 || cache.flowers[0].index != 2 {
		t.Fatalf("cached flowers = %+v, want only instance 2", cache.flowers)
	}
}

// TestFlowerCache_GeometryFromTransforms 测试几何取自茎、花心、花瓣矩阵
func TestFlowerCache_GeometryFromTransforms(t *testing.T) {
	cfg := testFlowerConfig()
	field := entities.NewFlowerField(cfg, cfg.Seed)
	cache := newFlowerCache(cfg.StemHeight)

	tests := []struct {
		name       string
		scale      float64
		stemY      float64
		wantBottom float64
		wantTop    float64
	}{
		{name: "bloomed", scale: 1, stemY: cfg.StemHeight, wantBottom: 0, wantTop: 0.5},
		{name: "stem on ground", scale: 1, stemY: 0, wantBottom: -0.25, wantTop: 0.25},
		{name: "half grown", scale: 0.5, stemY: cfg.StemHeight, wantBottom: 0.125, wantTop: 0.375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities.WriteFlowerTransforms(field, 0, cfg, tt.scale, tt.stemY)
			cache.refresh(field)

			if len(cache.flowers) != 1 {
				t.Fatalf("got %d cached flowers, want 1", len(cache.flowers))
			}
			g := cache.flowers[0]
			pos := field.Positions[0]

			if !near(g.stemBottom.Y(), tt.wantBottom) || !near(g.stemTop.Y(), tt.wantTop) {
				t.Errorf("stem y = [%v, %v], want [%v, %v]", g.stemBottom.Y(), g.stemTop.Y(), tt.wantBottom, tt.wantTop)
			}
			if !near(g.stemBottom.X(), pos.X()) || !near(g.stemTop.Z(), pos.Z()) {
				t.Errorf("stem not at flower position %v", pos)
			}
			if !near(g.stemScale, tt.scale) || !near(g.centerScale, tt.scale) || !near(g.petalScale, tt.scale) {
				t.Errorf("scales = (%v, %v, %v), want %v", g.stemScale, g.centerScale, g.petalScale, tt.scale)
			}
			if !near(g.center.Y(), cfg.HeadHeight) || !near(g.center.X(), pos.X()) {
				t.Errorf("center = %v, want above %v at %v", g.center, pos, cfg.HeadHeight)
			}
			if len(g.petals) != cfg.PetalCount {
				t.Fatalf("got %d petals, want %d", len(g.petals), cfg.PetalCount)
			}
			// 第一片花瓣角度为 0，位于花心 +Z 方向
			if !near(g.petals[0].Z(), pos.Z()+cfg.PetalRadius) || !near(g.petals[0].Y(), cfg.HeadHeight) {
				t.Errorf("petal 0 = %v", g.petals[0])
			}
		})
	}
}
