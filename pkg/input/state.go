package input

// State 当前帧的按键按下状态
// 由 tick 开始时排空事件队列更新，其它系统只读
type State struct {
	bindings *Bindings
	pressed  map[string]bool
}

// NewState 创建输入状态
func NewState(bindings *Bindings) *State {
	return &State{
		bindings: bindings,
		pressed:  make(map[string]bool),
	}
}

// Bindings 返回按键绑定
func (s *State) Bindings() *Bindings {
	return s.bindings
}

// SetKey 记录按键按下/抬起
func (s *State) SetKey(key string, down bool) {
	if down {
		s.pressed[key] = true
		return
	}
	delete(s.pressed, key)
}

// IsKeyDown 检查单个按键是否按下
func (s *State) IsKeyDown(key string) bool {
	return s.pressed[key]
}

// Held 检查动作是否处于按住状态（任一绑定按键按下即可）
func (s *State) Held(action Action) bool {
	for _, key := range s.bindings.Keys(action) {
		if s.pressed[key] {
			return true
		}
	}
	return false
}

// AnyMovement 是否有任何移动动作被按住（用于切换走路/站立动画）
func (s *State) AnyMovement() bool {
	return s.Held(ActionMoveLeft) || s.Held(ActionMoveRight) ||
		s.Held(ActionMoveForward) || s.Held(ActionMoveBack)
}
