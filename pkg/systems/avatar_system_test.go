package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
)

// TestAvatarSystem_Move 测试各方向按键的位移
func TestAvatarSystem_Move(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewAvatarSystem(cfg.Avatar)
	step := cfg.Avatar.Step

	tests := []struct {
		name   string
		keys   []string
		wantDX float64
		wantDZ float64
	}{
		{"无按键不移动", nil, 0, 0},
		{"左方向键 X 增加", []string{"ArrowLeft"}, step, 0},
		{"A 与左方向键等价", []string{"A"}, step, 0},
		{"右 X 减少", []string{"D"}, -step, 0},
		{"前 Z 增加", []string{"W"}, 0, step},
		{"后 Z 减少", []string{"ArrowDown"}, 0, -step},
		{"左右同时按住互相抵消", []string{"A", "D"}, 0, 0},
		{"同一方向两个键只算一次", []string{"A", "ArrowLeft"}, step, 0},
		{"斜向不归一化", []string{"W", "A"}, step, step},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avatar := &components.AvatarComponent{Position: mgl64.Vec3{0, 0, -15}}
			sys.Move(avatar, newTestInput(cfg, tt.keys...))

			if !approx(avatar.Position.X(), tt.wantDX) {
				t.Errorf("x = %f, want %f", avatar.Position.X(), tt.wantDX)
			}
			if !approx(avatar.Position.Z(), -15+tt.wantDZ) {
				t.Errorf("z = %f, want %f", avatar.Position.Z(), -15+tt.wantDZ)
			}
			if avatar.Position.Y() != 0 {
				t.Errorf("y changed to %f", avatar.Position.Y())
			}
		})
	}
}

// TestAvatarSystem_Bounds 测试任意输入序列下角色都不会离开活动范围
func TestAvatarSystem_Bounds(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewAvatarSystem(cfg.Avatar)
	bound := cfg.Avatar.Bound

	sequences := [][]string{
		{"A", "W"},
		{"D", "S"},
		{"ArrowLeft", "ArrowDown"},
		{"ArrowRight", "ArrowUp"},
	}

	for _, keys := range sequences {
		avatar := &components.AvatarComponent{Position: cfg.Avatar.Spawn}
		in := newTestInput(cfg, keys...)
		for i := 0; i < 2000; i++ {
			sys.Move(avatar, in)
			if math.Abs(avatar.Position.X()) > bound || math.Abs(avatar.Position.Z()) > bound {
				t.Fatalf("keys %v tick %d: position %v out of bounds", keys, i, avatar.Position)
			}
		}
		if math.Abs(avatar.Position.X()) != bound || math.Abs(avatar.Position.Z()) != bound {
			t.Errorf("keys %v: expected to reach the corner, got %v", keys, avatar.Position)
		}
	}
}

func TestAvatarSystem_Teleport(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewAvatarSystem(cfg.Avatar)
	avatar := &components.AvatarComponent{}

	sys.Teleport(avatar, mgl64.Vec3{500, 0, -500})
	if avatar.Position.X() != cfg.Avatar.Bound || avatar.Position.Z() != -cfg.Avatar.Bound {
		t.Errorf("teleport was not clamped: %v", avatar.Position)
	}
}

// TestAvatarSystem_UpdatePose 测试走路时四肢摆动，站立时归零
func TestAvatarSystem_UpdatePose(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewAvatarSystem(cfg.Avatar)
	avatar := &components.AvatarComponent{}

	// phase = 500 * 0.003 = 1.5
	elapsed := 500.0
	swing := math.Sin(elapsed * cfg.Avatar.LimbPhaseRate)

	sys.UpdatePose(avatar, newTestInput(cfg, "W"), elapsed)
	if !avatar.Moving {
		t.Fatal("expected Moving while W is held")
	}
	want := components.LimbPose{
		ArmL: swing * cfg.Avatar.ArmSwing,
		ArmR: -swing * cfg.Avatar.ArmSwing,
		LegL: -swing * cfg.Avatar.LegSwing,
		LegR: swing * cfg.Avatar.LegSwing,
	}
	if avatar.Pose != want {
		t.Errorf("pose = %+v, want %+v", avatar.Pose, want)
	}

	sys.UpdatePose(avatar, newTestInput(cfg), elapsed)
	if avatar.Moving || avatar.Pose != (components.LimbPose{}) {
		t.Errorf("expected rest pose when idle, got moving=%v pose=%+v", avatar.Moving, avatar.Pose)
	}
}
