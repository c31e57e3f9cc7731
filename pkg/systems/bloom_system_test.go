package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/entities"
)

type bloomFixture struct {
	cfg    *config.GameConfig
	sys    *BloomSystem
	world  *components.WorldColorComponent
	field  *components.FlowerFieldComponent
	final  *components.FinalFlowerComponent
	avatar *components.AvatarComponent
}

func newBloomFixture(t *testing.T) *bloomFixture {
	t.Helper()
	cfg := loadTestConfig(t)
	return &bloomFixture{
		cfg:    cfg,
		sys:    NewBloomSystem(cfg.Bloom, cfg.Flowers),
		world:  entities.NewWorldColor(cfg.Bloom),
		field:  entities.NewFlowerField(cfg.Flowers, cfg.Flowers.Seed),
		final:  entities.NewFinalFlower(cfg.Flowers),
		avatar: &components.AvatarComponent{Position: mgl64.Vec3{0, 0, 133}},
	}
}

func (f *bloomFixture) trigger(t *testing.T) {
	t.Helper()
	if !f.sys.TryTrigger(f.world, f.final, f.avatar) {
		t.Fatal("expected bloom to trigger next to the final flower")
	}
}

// TestBloomSystem_TryTrigger 测试摘花条件
func TestBloomSystem_TryTrigger(t *testing.T) {
	f := newBloomFixture(t)

	f.avatar.Position = mgl64.Vec3{0, 0, 130}
	if f.sys.TryTrigger(f.world, f.final, f.avatar) {
		t.Fatal("must not trigger 5 units away from the flower")
	}
	if f.world.Phase != components.BloomDormant || !f.final.Visible {
		t.Fatal("failed trigger changed state")
	}

	f.avatar.Position = mgl64.Vec3{3.4, 0, 131.6}
	f.trigger(t)
	if f.world.Phase != components.BloomActive || f.final.Visible {
		t.Errorf("after trigger: phase=%v finalVisible=%v", f.world.Phase, f.final.Visible)
	}

	// 一次性：再次摘花无效
	if f.sys.TryTrigger(f.world, f.final, f.avatar) {
		t.Error("bloom triggered twice")
	}
}

// TestBloomSystem_Scenario 测试 45 tick 时实例 0 仍隐藏，230 tick 时已完全绽放
func TestBloomSystem_Scenario(t *testing.T) {
	f := newBloomFixture(t)
	f.trigger(t)

	for i := 0; i < 45; i++ {
		f.sys.Update(f.world, f.field)
	}
	if f.field.States[0] != components.BloomHidden {
		t.Errorf("tick 45: instance 0 state = %v, want Hidden", f.field.States[0])
	}
	if f.field.Scales[0] != f.cfg.Flowers.HiddenScale {
		t.Errorf("tick 45: instance 0 scale = %f, want hidden", f.field.Scales[0])
	}

	for i := 45; i < 230; i++ {
		f.sys.Update(f.world, f.field)
	}
	if f.field.States[0] != components.BloomBloomed {
		t.Errorf("tick 230: instance 0 state = %v, want Bloomed", f.field.States[0])
	}
	if f.field.Scales[0] != 1 {
		t.Errorf("tick 230: instance 0 scale = %f, want 1", f.field.Scales[0])
	}

	// 天空已经完全变亮
	r, g, b := f.world.Sky.RGB255()
	if r != 0xe0 || g != 0xea || b != 0xfc {
		t.Errorf("sky at t>1 = #%02x%02x%02x, want #e0eafc", r, g, b)
	}
}

// TestBloomSystem_Monotonic 测试每个实例的缩放单调不减，Bloomed 之后不再改写
func TestBloomSystem_Monotonic(t *testing.T) {
	f := newBloomFixture(t)
	f.trigger(t)

	probes := []int{0, 1, 99, 100, 250, f.field.Count() / 2}
	prev := make([]float64, len(probes))
	for k, i := range probes {
		prev[k] = f.field.Scales[i]
	}

	for tick := 0; tick < 300; tick++ {
		bloomed := make([]mgl64.Mat4, len(probes))
		for k, i := range probes {
			if f.field.States[i] == components.BloomBloomed {
				bloomed[k] = f.field.Stems[i]
			}
		}

		f.sys.Update(f.world, f.field)

		for k, i := range probes {
			if f.field.Scales[i] < prev[k] {
				t.Fatalf("tick %d: instance %d scale decreased %f -> %f", tick, i, prev[k], f.field.Scales[i])
			}
			prev[k] = f.field.Scales[i]
			if bloomed[k] != (mgl64.Mat4{}) && f.field.Stems[i] != bloomed[k] {
				t.Fatalf("tick %d: bloomed instance %d was rewritten", tick, i)
			}
		}
	}
}

// TestBloomSystem_ScaleAt 测试缩放只由 (i, t) 决定
func TestBloomSystem_ScaleAt(t *testing.T) {
	f := newBloomFixture(t)

	tests := []struct {
		name   string
		i      int
		t      float64
		want   float64
		wantOK bool
	}{
		{"延迟期内不出现", 0, 0.2, 0, false},
		{"刚过出现阈值", 0, 0.25, 0.1, true},
		{"完全绽放", 0, 1.0, 1, true},
		{"列错峰", 5, 0.25, 0.08, true},
		{"行错峰", 100, 0.25, 0.08, true},
		{"行列错峰叠加仍未出现", 101, 0.215, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.sys.ScaleAt(tt.i, tt.t)
			if ok != tt.wantOK {
				t.Fatalf("ScaleAt(%d, %.3f) ok = %v, want %v", tt.i, tt.t, ok, tt.wantOK)
			}
			if ok && !approxTol(got, tt.want, 1e-9) {
				t.Errorf("ScaleAt(%d, %.3f) = %f, want %f", tt.i, tt.t, got, tt.want)
			}
			again, _ := f.sys.ScaleAt(tt.i, tt.t)
			if again != got {
				t.Error("ScaleAt is not deterministic")
			}
		})
	}
}

// TestBloomSystem_Terminates 测试动画在 t 超过结束阈值时进入 Done 并停止
func TestBloomSystem_Terminates(t *testing.T) {
	f := newBloomFixture(t)
	f.trigger(t)

	ticks := 0
	for f.world.Phase == components.BloomActive {
		finished := f.sys.Update(f.world, f.field)
		ticks++
		if finished != (f.world.Phase == components.BloomDone) {
			t.Fatalf("tick %d: finished=%v but phase=%v", ticks, finished, f.world.Phase)
		}
		if ticks > 1000 {
			t.Fatal("bloom never finished")
		}
	}

	if f.world.T <= f.cfg.Bloom.EndAt {
		t.Errorf("finished at t=%f, want > %f", f.world.T, f.cfg.Bloom.EndAt)
	}
	if f.world.T-f.cfg.Bloom.Step > f.cfg.Bloom.EndAt {
		t.Errorf("finished late at t=%f", f.world.T)
	}

	before := f.world.T
	rev := f.field.Revision
	if f.sys.Update(f.world, f.field) {
		t.Error("Update reported finished twice")
	}
	if f.world.T != before || f.field.Revision != rev {
		t.Error("Done animation kept updating")
	}
}

func approxTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}
