package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
)

// TestCutsceneSystem_Intro 测试开场镜头轨迹和自动结束
func TestCutsceneSystem_Intro(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewCutsceneSystem(cfg.Cutscene, cfg.Messages)
	cs := &components.CutsceneComponent{}
	cam := &components.CameraComponent{Position: cfg.Camera.Initial}

	sys.StartIntro(cs, cam)
	if !cs.Active() || cs.Kind != components.CutsceneIntro || cam.Position != cfg.Cutscene.IntroStart {
		t.Fatalf("after StartIntro: kind=%v cam=%v", cs.Kind, cam.Position)
	}

	frame := sys.Update(cs, cam)
	if frame.Ended || frame.Message != cfg.Messages.Intro {
		t.Errorf("frame 1 = %+v", frame)
	}
	// timer=1: (0, 10-0.08, -15+0.2)
	if !cam.Position.ApproxEqualThreshold(mgl64.Vec3{0, 9.92, -14.8}, 1e-9) {
		t.Errorf("frame 1 camera = %v", cam.Position)
	}
	if cam.LookAt != cfg.Cutscene.IntroLookAt {
		t.Errorf("look-at = %v, want %v", cam.LookAt, cfg.Cutscene.IntroLookAt)
	}

	updates := 1
	for !frame.Ended {
		frame = sys.Update(cs, cam)
		updates++
		if updates > 200 {
			t.Fatal("intro never ended")
		}
	}

	// timer 超过 introFrames 的那一帧结束
	if updates != cfg.Cutscene.IntroFrames+1 {
		t.Errorf("intro ended after %d updates, want %d", updates, cfg.Cutscene.IntroFrames+1)
	}
	if frame.Message != cfg.Messages.Controls {
		t.Errorf("end message = %q, want controls message", frame.Message)
	}
	if cs.Active() {
		t.Error("cutscene still active after intro")
	}
}

// TestCutsceneSystem_Win 测试胜利镜头的平滑移动、字幕切换和不自动结束
func TestCutsceneSystem_Win(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewCutsceneSystem(cfg.Cutscene, cfg.Messages)
	cs := &components.CutsceneComponent{}
	cam := &components.CameraComponent{Position: mgl64.Vec3{0, 5, 4}}

	sys.StartWin(cs)

	frame := sys.Update(cs, cam)
	// z = 4 + (24-4)*0.05 = 5
	if !cam.Position.ApproxEqualThreshold(mgl64.Vec3{0, 5, 5}, 1e-9) {
		t.Errorf("frame 1 camera = %v, want (0,5,5)", cam.Position)
	}
	if frame.Message != cfg.Messages.WinIntro {
		t.Errorf("frame 1 message = %q", frame.Message)
	}

	for i := 2; i <= cfg.Cutscene.WinCaptionFrame; i++ {
		frame = sys.Update(cs, cam)
	}
	if frame.Message != cfg.Messages.WinIntro {
		t.Errorf("frame %d message = %q, want win intro", cfg.Cutscene.WinCaptionFrame, frame.Message)
	}

	frame = sys.Update(cs, cam)
	if frame.Message != cfg.Messages.WinFinal {
		t.Errorf("frame %d message = %q, want win final", cfg.Cutscene.WinCaptionFrame+1, frame.Message)
	}

	for i := 0; i < 500; i++ {
		if sys.Update(cs, cam).Ended {
			t.Fatal("win cutscene must not end by itself")
		}
	}
	if cs.Kind != components.CutsceneWin {
		t.Errorf("kind = %v, want Win", cs.Kind)
	}
	if !cam.Position.ApproxEqualThreshold(cfg.Cutscene.WinTarget, 1e-6) {
		t.Errorf("camera did not settle at win target: %v", cam.Position)
	}
}

func TestCutsceneSystem_UpdateNone(t *testing.T) {
	cfg := loadTestConfig(t)
	sys := NewCutsceneSystem(cfg.Cutscene, cfg.Messages)
	cs := &components.CutsceneComponent{}
	cam := &components.CameraComponent{Position: mgl64.Vec3{1, 2, 3}}

	if frame := sys.Update(cs, cam); frame != (CutsceneFrame{}) {
		t.Errorf("Update with no cutscene = %+v", frame)
	}
	if cam.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Error("camera moved without a cutscene")
	}
}
