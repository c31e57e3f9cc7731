package systems

import (
	"log"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// CutsceneSystem 过场动画序列
//
// Intro: 镜头从高处匀速下降并前移，播放固定帧数后自动结束。
// Win:   镜头平滑飞向花田上空，不会自动结束（只能由重新开始打断）。
//
// 过场期间由本系统独占镜头，Simulation 不会调用角色移动和镜头跟随。
type CutsceneSystem struct {
	cfg  config.CutsceneConfig
	msgs config.MessageConfig
}

// CutsceneFrame 一帧过场动画的结果
type CutsceneFrame struct {
	// Message 本帧应显示的提示信息
	Message string

	// Ended 过场动画在本帧结束
	Ended bool
}

// NewCutsceneSystem 创建过场动画系统
func NewCutsceneSystem(cfg config.CutsceneConfig, msgs config.MessageConfig) *CutsceneSystem {
	return &CutsceneSystem{cfg: cfg, msgs: msgs}
}

// StartIntro 从第 0 帧开始播放开场动画，镜头立即移到起点
func (s *CutsceneSystem) StartIntro(cs *components.CutsceneComponent, cam *components.CameraComponent) {
	cs.Kind = components.CutsceneIntro
	cs.Timer = 0
	cam.Position = s.cfg.IntroStart
	cam.LookAt = s.cfg.IntroLookAt
	log.Printf("[CutsceneSystem] Intro started")
}

// StartWin 开始播放胜利动画，镜头从当前位置出发
func (s *CutsceneSystem) StartWin(cs *components.CutsceneComponent) {
	cs.Kind = components.CutsceneWin
	cs.Timer = 0
	log.Printf("[CutsceneSystem] Win cutscene started")
}

// Update 推进一帧
func (s *CutsceneSystem) Update(cs *components.CutsceneComponent, cam *components.CameraComponent) CutsceneFrame {
	switch cs.Kind {
	case components.CutsceneIntro:
		cs.Timer++
		cam.Position = s.cfg.IntroStart.Add(s.cfg.IntroVelocity.Mul(float64(cs.Timer)))
		cam.LookAt = s.cfg.IntroLookAt

		if cs.Timer > s.cfg.IntroFrames {
			cs.Kind = components.CutsceneNone
			cs.Timer = 0
			log.Printf("[CutsceneSystem] Intro finished")
			return CutsceneFrame{Message: s.msgs.Controls, Ended: true}
		}
		return CutsceneFrame{Message: s.msgs.Intro}

	case components.CutsceneWin:
		cs.Timer++
		cam.Position = cam.Position.Add(s.cfg.WinTarget.Sub(cam.Position).Mul(s.cfg.WinSmoothing))
		cam.LookAt = s.cfg.WinLookAt

		if cs.Timer > s.cfg.WinCaptionFrame {
			return CutsceneFrame{Message: s.msgs.WinFinal}
		}
		return CutsceneFrame{Message: s.msgs.WinIntro}
	}

	return CutsceneFrame{}
}
