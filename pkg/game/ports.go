package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
)

// UIElement 界面元素名称
// 同时用作 input.Choice 事件的 Element 字段
type UIElement string

const (
	ElementMessage      UIElement = "message"
	ElementPaperPrompt  UIElement = "paper-prompt"
	ElementGeniePopup   UIElement = "genie-popup"
	ElementQuiz         UIElement = "quiz"
	ElementScore        UIElement = "score"
	ElementPickupButton UIElement = "pickup-button"
	ElementWin          UIElement = "win"
	ElementNotice       UIElement = "notice"
)

// UISurface 界面层
//
// Simulation 只通过这个接口修改界面，不关心界面如何绘制。
// 所有方法都必须是幂等的：重复 Show 一个已显示的元素没有副作用。
type UISurface interface {
	Show(el UIElement)
	Hide(el UIElement)
	SetText(el UIElement, text string)

	// SetChoices 设置元素下方的可点击选项，点击第 i 个选项产生 Choice(el, i) 事件
	SetChoices(el UIElement, choices []string)

	// Place 把元素锚定到屏幕坐标（对话气泡、纸条提示）
	Place(el UIElement, x, y float64)
}

// Projector 把世界坐标投影到屏幕坐标
type Projector interface {
	// Project 返回屏幕坐标；点在镜头背后或视锥外时 ok 为 false
	Project(world mgl64.Vec3, cam *components.CameraComponent) (x, y float64, ok bool)
}

// Cue 音效提示
type Cue int

const (
	// CueCompanionLine 精灵说出一句台词时的机器人音效
	CueCompanionLine Cue = iota
)

// String 返回 Cue 的字符串表示
func (c Cue) String() string {
	switch c {
	case CueCompanionLine:
		return "CompanionLine"
	default:
		return "Unknown"
	}
}

// CuePlayer 播放音效提示
type CuePlayer interface {
	PlayCue(c Cue)
}
