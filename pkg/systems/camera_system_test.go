package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
)

// TestCameraSystem_Follow 测试镜头每帧移动剩余距离的固定比例
func TestCameraSystem_Follow(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewCameraSystem(cfg.Camera)

	avatar := &components.AvatarComponent{Position: mgl64.Vec3{0, 0, -15}}
	cam := &components.CameraComponent{Position: cfg.Camera.Initial}

	sys.Follow(cam, avatar)

	// target = (0,1.5,-15), desired = (0,4,-20)
	// pos = (0,4,12) + ((0,4,-20) - (0,4,12)) * 0.15 = (0,4,7.2)
	want := mgl64.Vec3{0, 4, 7.2}
	if !cam.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("camera position = %v, want %v", cam.Position, want)
	}
	if cam.LookAt != (mgl64.Vec3{0, 1.5, -15}) {
		t.Errorf("camera look-at = %v, want (0,1.5,-15)", cam.LookAt)
	}
}

// TestCameraSystem_Converges 测试角色静止时镜头收敛到期望位置
func TestCameraSystem_Converges(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewCameraSystem(cfg.Camera)

	avatar := &components.AvatarComponent{Position: mgl64.Vec3{10, 0, 30}}
	cam := &components.CameraComponent{Position: cfg.Camera.Initial}

	for i := 0; i < 300; i++ {
		sys.Follow(cam, avatar)
	}

	want := mgl64.Vec3{10, 4, 25}
	if !cam.Position.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("camera did not converge: %v, want %v", cam.Position, want)
	}
}
