package input

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys 配置中的按键名称 -> ebiten 按键
var ebitenKeys = map[string]ebiten.Key{
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"A":          ebiten.KeyA,
	"D":          ebiten.KeyD,
	"E":          ebiten.KeyE,
	"J":          ebiten.KeyJ,
	"K":          ebiten.KeyK,
	"L":          ebiten.KeyL,
	"Q":          ebiten.KeyQ,
	"R":          ebiten.KeyR,
	"S":          ebiten.KeyS,
	"W":          ebiten.KeyW,
	"Space":      ebiten.KeySpace,
	"Enter":      ebiten.KeyEnter,
	"1":          ebiten.KeyDigit1,
	"2":          ebiten.KeyDigit2,
	"3":          ebiten.KeyDigit3,
}

// EbitenSource 轮询 ebiten 键盘状态，把按下/抬起转换为事件
type EbitenSource struct {
	keys map[string]ebiten.Key
	down map[string]bool
}

// NewEbitenSource 为所有绑定过的按键创建输入源
// 未知的按键名称会被忽略并记录警告
func NewEbitenSource(bindings *Bindings) *EbitenSource {
	src := &EbitenSource{
		keys: make(map[string]ebiten.Key),
		down: make(map[string]bool),
	}
	for _, name := range bindings.BoundKeys() {
		key, ok := ebitenKeys[name]
		if !ok {
			log.Printf("[EbitenSource] Warning: unknown key name %q in bindings, ignored", name)
			continue
		}
		src.keys[name] = key
	}
	return src
}

// Poll 把本帧的按键变化压入队列
// 窗口失焦时为所有按住的键补发 KeyUp，避免角色一直走
func (s *EbitenSource) Poll(q *Queue) {
	if !ebiten.IsFocused() {
		for name := range s.down {
			q.Push(KeyUp(name))
		}
		clear(s.down)
		return
	}

	for name, key := range s.keys {
		if inpututil.IsKeyJustPressed(key) {
			s.down[name] = true
			q.Push(KeyDown(name))
		}
		if inpututil.IsKeyJustReleased(key) {
			delete(s.down, name)
			q.Push(KeyUp(name))
		}
	}
}

// JustClicked 检查本帧是否刚刚发生鼠标左键点击或触摸
// 返回是否点击以及点击位置
func JustClicked() (bool, float64, float64) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, float64(x), float64(y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, float64(x), float64(y)
	}

	return false, 0, 0
}
