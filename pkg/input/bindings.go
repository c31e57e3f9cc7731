// Package input 提供与渲染后端无关的输入状态和事件队列
//
// 输入源（ebiten 键盘/鼠标）把按键按下/抬起、点击事件压入 Queue，
// 模拟循环每个 tick 开始时一次性取出并应用到 State。
// 模拟逻辑只读取 State 的当前按下状态，不关心事件历史。
package input

import "github.com/decker502/flowerfield/pkg/config"

// Action 逻辑动作（一个动作可以绑定多个按键）
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionInteract
	ActionPickUp
	ActionRestart
	ActionShoot
	ActionAnswer1
	ActionAnswer2
	ActionAnswer3
)

// String 返回 Action 的字符串表示
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveForward:
		return "MoveForward"
	case ActionMoveBack:
		return "MoveBack"
	case ActionInteract:
		return "Interact"
	case ActionPickUp:
		return "PickUp"
	case ActionRestart:
		return "Restart"
	case ActionShoot:
		return "Shoot"
	case ActionAnswer1:
		return "Answer1"
	case ActionAnswer2:
		return "Answer2"
	case ActionAnswer3:
		return "Answer3"
	default:
		return "Unknown"
	}
}

// AnswerIndex 返回答题动作对应的选项下标
func (a Action) AnswerIndex() (int, bool) {
	switch a {
	case ActionAnswer1:
		return 0, true
	case ActionAnswer2:
		return 1, true
	case ActionAnswer3:
		return 2, true
	}
	return 0, false
}

// Bindings 按键名称与动作之间的双向映射
type Bindings struct {
	byKey    map[string][]Action
	byAction map[Action][]string
}

// NewBindings 从配置构建按键绑定
func NewBindings(cfg config.KeyBindings) *Bindings {
	b := &Bindings{
		byKey:    make(map[string][]Action),
		byAction: make(map[Action][]string),
	}

	b.bind(ActionMoveLeft, cfg.MoveLeft)
	b.bind(ActionMoveRight, cfg.MoveRight)
	b.bind(ActionMoveForward, cfg.MoveForward)
	b.bind(ActionMoveBack, cfg.MoveBack)
	b.bind(ActionInteract, cfg.Interact)
	b.bind(ActionPickUp, cfg.PickUp)
	b.bind(ActionRestart, cfg.Restart)
	b.bind(ActionShoot, cfg.Shoot)

	answers := []Action{ActionAnswer1, ActionAnswer2, ActionAnswer3}
	for i, key := range cfg.Answers {
		if i >= len(answers) {
			break
		}
		b.bind(answers[i], []string{key})
	}

	return b
}

func (b *Bindings) bind(action Action, keys []string) {
	for _, key := range keys {
		b.byKey[key] = append(b.byKey[key], action)
		b.byAction[action] = append(b.byAction[action], key)
	}
}

// Actions 返回按键绑定的所有动作
func (b *Bindings) Actions(key string) []Action {
	return b.byKey[key]
}

// Keys 返回动作绑定的所有按键
func (b *Bindings) Keys(action Action) []string {
	return b.byAction[action]
}

// BoundKeys 返回所有被绑定过的按键名称（供输入源轮询）
func (b *Bindings) BoundKeys() []string {
	keys := make([]string, 0, len(b.byKey))
	for key := range b.byKey {
		keys = append(keys, key)
	}
	return keys
}

// Has 检查按键是否绑定了指定动作
func (b *Bindings) Has(key string, action Action) bool {
	for _, a := range b.byKey[key] {
		if a == action {
			return true
		}
	}
	return false
}
