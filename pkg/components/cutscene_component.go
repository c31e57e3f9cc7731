package components

// CutsceneKind 过场动画类型
type CutsceneKind int

const (
	// CutsceneNone 没有过场动画，正常操作
	CutsceneNone CutsceneKind = iota

	// CutsceneIntro 开场镜头下降，播放固定帧数后自动结束
	CutsceneIntro

	// CutsceneWin 胜利镜头，不会自动结束
	CutsceneWin
)

// String 返回 CutsceneKind 的字符串表示
func (k CutsceneKind) String() string {
	switch k {
	case CutsceneNone:
		return "None"
	case CutsceneIntro:
		return "Intro"
	case CutsceneWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// CutsceneComponent 过场动画状态
// 过场期间角色输入和镜头跟随都被挂起
type CutsceneComponent struct {
	Kind CutsceneKind

	// Timer 已播放的帧数
	Timer int
}

// Active 是否有过场动画在播放
func (c *CutsceneComponent) Active() bool {
	return c.Kind != CutsceneNone
}
