package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/game"
	"github.com/decker502/flowerfield/pkg/utils"
)

var (
	panelColor      = color.RGBA{0, 0, 0, 230}
	bubbleColor     = color.RGBA{255, 255, 255, 235}
	choiceColor     = color.RGBA{70, 110, 200, 255}
	buttonColor     = color.RGBA{230, 120, 30, 255}
	messageBgColor  = color.RGBA{0, 0, 0, 140}
	lightTextColor  = color.White
	darkTextColor   = color.RGBA{30, 30, 30, 255}
	noticeHintColor = color.RGBA{180, 180, 180, 255}
)

// rect 屏幕矩形
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// uiElement 单个界面元素的状态
type uiElement struct {
	visible bool
	text    string
	choices []string
	anchorX float64
	anchorY float64
	placed  bool
}

// UIOverlay 屏幕空间界面，实现 game.UISurface
//
// 只保存 Simulation 写入的状态，绘制和点击判定共用同一套布局计算。
type UIOverlay struct {
	width, height float64

	face      *text.GoTextFace
	titleFace *text.GoTextFace

	elements map[game.UIElement]*uiElement
}

// NewUIOverlay 创建界面层
//
// 返回:
//   - error: 字体加载失败时返回错误
func NewUIOverlay(width, height int) (*UIOverlay, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load UI font: %w", err)
	}

	return &UIOverlay{
		width:     float64(width),
		height:    float64(height),
		face:      &text.GoTextFace{Source: source, Size: config.UIFontSize},
		titleFace: &text.GoTextFace{Source: source, Size: config.UITitleFontSize},
		elements:  make(map[game.UIElement]*uiElement),
	}, nil
}

func (u *UIOverlay) element(el game.UIElement) *uiElement {
	e, ok := u.elements[el]
	if !ok {
		e = &uiElement{}
		u.elements[el] = e
	}
	return e
}

// Show 显示元素
func (u *UIOverlay) Show(el game.UIElement) { u.element(el).visible = true }

// Hide 隐藏元素
func (u *UIOverlay) Hide(el game.UIElement) { u.element(el).visible = false }

// SetText 设置元素文本（可包含换行）
func (u *UIOverlay) SetText(el game.UIElement, s string) { u.element(el).text = s }

// SetChoices 设置元素的可点击选项
func (u *UIOverlay) SetChoices(el game.UIElement, choices []string) {
	u.element(el).choices = append([]string(nil), choices...)
}

// Place 把元素锚定到屏幕坐标
func (u *UIOverlay) Place(el game.UIElement, x, y float64) {
	e := u.element(el)
	e.anchorX, e.anchorY, e.placed = x, y, true
}

// Visible 元素是否可见
func (u *UIOverlay) Visible(el game.UIElement) bool {
	e, ok := u.elements[el]
	return ok && e.visible
}

// HitTest 判断屏幕坐标命中的界面元素
//
// 按从上到下的绘制层级判断：通知框 > 问答/胜利面板的选项 > 捡球按钮。
// 通知框显示时整个屏幕都属于通知框。面板上选项以外的区域不算命中，由 BlocksClick 吞掉。
//
// 返回:
//   - game.UIElement: 命中的元素
//   - int: 命中的选项下标（没有选项的元素为 0）
//   - bool: 是否命中了可交互元素
func (u *UIOverlay) HitTest(x, y float64) (game.UIElement, int, bool) {
	if u.Visible(game.ElementNotice) {
		return game.ElementNotice, 0, true
	}

	for _, el := range []game.UIElement{game.ElementQuiz, game.ElementWin} {
		if !u.Visible(el) {
			continue
		}
		panel, choices := u.panelLayout(el)
		for i, r := range choices {
			if r.contains(x, y) {
				return el, i, true
			}
		}
		if panel.contains(x, y) {
			return "", 0, false
		}
	}

	if u.Visible(game.ElementPickupButton) && u.pickupButtonRect().contains(x, y) {
		return game.ElementPickupButton, 0, true
	}

	return "", 0, false
}

// BlocksClick 点击是否落在不可交互的面板上（不应传给世界）
func (u *UIOverlay) BlocksClick(x, y float64) bool {
	for _, el := range []game.UIElement{game.ElementQuiz, game.ElementWin} {
		if !u.Visible(el) {
			continue
		}
		panel, _ := u.panelLayout(el)
		if panel.contains(x, y) {
			return true
		}
	}
	return false
}

func (u *UIOverlay) pickupButtonRect() rect {
	return rect{
		x: u.width - config.PickupButtonWidth - config.PickupButtonMargin,
		y: u.height - config.PickupButtonHeight - config.PickupButtonMargin,
		w: config.PickupButtonWidth,
		h: config.PickupButtonHeight,
	}
}

// panelLayout 计算居中面板及其选项按钮的矩形
func (u *UIOverlay) panelLayout(el game.UIElement) (rect, []rect) {
	e := u.element(el)
	inner := config.PanelWidth - 2*config.UIPadding
	lines := utils.WrapText(e.text, u.face, inner)
	lineH := config.UIFontSize * config.UILineSpacing

	h := 2*config.UIPadding + float64(len(lines))*lineH
	if len(e.choices) > 0 {
		h += config.ChoiceGap + float64(len(e.choices))*(config.ChoiceHeight+config.ChoiceGap)
	}

	panel := rect{
		x: (u.width - config.PanelWidth) / 2,
		y: (u.height - h) / 2,
		w: config.PanelWidth,
		h: h,
	}

	choices := make([]rect, len(e.choices))
	y := panel.y + config.UIPadding + float64(len(lines))*lineH + config.ChoiceGap
	for i := range e.choices {
		choices[i] = rect{x: panel.x + config.UIPadding, y: y, w: inner, h: config.ChoiceHeight}
		y += config.ChoiceHeight + config.ChoiceGap
	}
	return panel, choices
}

// Draw 绘制所有可见元素
func (u *UIOverlay) Draw(screen *ebiten.Image) {
	u.drawMessage(screen)
	u.drawBubble(screen, game.ElementPaperPrompt)
	u.drawBubble(screen, game.ElementGeniePopup)
	u.drawScore(screen)
	u.drawPickupButton(screen)
	u.drawPanel(screen, game.ElementQuiz)
	u.drawPanel(screen, game.ElementWin)
	u.drawNotice(screen)
}

func (u *UIOverlay) drawMessage(screen *ebiten.Image) {
	e := u.element(game.ElementMessage)
	if !e.visible || e.text == "" {
		return
	}
	w, h := text.Measure(e.text, u.face, 0)
	x := (u.width - w) / 2
	y := config.MessageY - h/2
	fillRect(screen, rect{x - 10, y - 6, w + 20, h + 12}, messageBgColor)
	u.drawText(screen, e.text, u.face, x, y, lightTextColor)
}

// drawBubble 绘制锚定在世界坐标上方的气泡
func (u *UIOverlay) drawBubble(screen *ebiten.Image, el game.UIElement) {
	e := u.element(el)
	if !e.visible || !e.placed || e.text == "" {
		return
	}

	lines := utils.WrapText(e.text, u.face, config.PopupMaxWidth)
	lineH := config.UIFontSize * config.UILineSpacing
	w := utils.MaxLineWidth(lines, u.face)
	box := rect{
		w: w + 2*config.UIPadding,
		h: float64(len(lines))*lineH + 2*config.UIPadding,
	}
	box.x = clampF(e.anchorX-box.w/2, 0, u.width-box.w)
	box.y = clampF(e.anchorY-box.h, 0, u.height-box.h)

	fillRect(screen, box, bubbleColor)
	for i, l := range lines {
		u.drawText(screen, l, u.face, box.x+config.UIPadding, box.y+config.UIPadding+float64(i)*lineH, darkTextColor)
	}
}

func (u *UIOverlay) drawScore(screen *ebiten.Image) {
	e := u.element(game.ElementScore)
	if !e.visible {
		return
	}
	w, h := text.Measure(e.text, u.titleFace, 0)
	fillRect(screen, rect{config.ScoreX - 8, config.ScoreY - 4, w + 16, h + 8}, messageBgColor)
	u.drawText(screen, e.text, u.titleFace, config.ScoreX, config.ScoreY, lightTextColor)
}

func (u *UIOverlay) drawPickupButton(screen *ebiten.Image) {
	e := u.element(game.ElementPickupButton)
	if !e.visible {
		return
	}
	r := u.pickupButtonRect()
	fillRect(screen, r, buttonColor)
	u.drawCentered(screen, e.text, u.face, r, lightTextColor)
}

func (u *UIOverlay) drawPanel(screen *ebiten.Image, el game.UIElement) {
	e := u.element(el)
	if !e.visible {
		return
	}
	panel, choices := u.panelLayout(el)
	fillRect(screen, panel, panelColor)

	lineH := config.UIFontSize * config.UILineSpacing
	lines := utils.WrapText(e.text, u.face, config.PanelWidth-2*config.UIPadding)
	for i, l := range lines {
		u.drawText(screen, l, u.face, panel.x+config.UIPadding, panel.y+config.UIPadding+float64(i)*lineH, lightTextColor)
	}
	for i, r := range choices {
		fillRect(screen, r, choiceColor)
		label := e.choices[i]
		if el == game.ElementQuiz && len(choices) > 1 {
			label = fmt.Sprintf("%d. %s", i+1, label)
		}
		u.drawCentered(screen, label, u.face, r, lightTextColor)
	}
}

func (u *UIOverlay) drawNotice(screen *ebiten.Image) {
	e := u.element(game.ElementNotice)
	if !e.visible {
		return
	}
	// 遮罩整个屏幕
	fillRect(screen, rect{0, 0, u.width, u.height}, color.RGBA{0, 0, 0, 120})
	panel, _ := u.panelLayout(game.ElementNotice)
	panel.h += config.UIFontSize * config.UILineSpacing
	fillRect(screen, panel, panelColor)

	lines := utils.WrapText(e.text, u.face, config.PanelWidth-2*config.UIPadding)
	lineH := config.UIFontSize * config.UILineSpacing
	for i, l := range lines {
		u.drawText(screen, l, u.face, panel.x+config.UIPadding, panel.y+config.UIPadding+float64(i)*lineH, lightTextColor)
	}
	u.drawText(screen, "Click to continue", u.face, panel.x+config.UIPadding,
		panel.y+config.UIPadding+float64(len(lines))*lineH, noticeHintColor)
}

func (u *UIOverlay) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (u *UIOverlay) drawCentered(screen *ebiten.Image, s string, face text.Face, r rect, c color.Color) {
	w, h := text.Measure(s, face, 0)
	u.drawText(screen, s, face, r.x+(r.w-w)/2, r.y+(r.h-h)/2, c)
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, false)
}

func clampF(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
