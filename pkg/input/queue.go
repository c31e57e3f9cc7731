package input

// EventKind 输入事件类型
type EventKind int

const (
	// EventKeyDown 按键按下
	EventKeyDown EventKind = iota
	// EventKeyUp 按键抬起
	EventKeyUp
	// EventClick 点击了世界（未命中任何界面元素），X/Y 为屏幕坐标
	EventClick
	// EventChoice 点击了界面元素上的某个选项（题目答案、按钮）
	EventChoice
)

// String 返回 EventKind 的字符串表示
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventClick:
		return "Click"
	case EventChoice:
		return "Choice"
	default:
		return "Unknown"
	}
}

// Event 单个输入事件
type Event struct {
	Kind EventKind

	// Key 按键名称（KeyDown/KeyUp）
	Key string

	// X, Y 屏幕坐标（Click）
	X, Y float64

	// Element 界面元素名称，Index 选项下标（Choice）
	Element string
	Index   int
}

// KeyDown 构造按键按下事件
func KeyDown(key string) Event { return Event{Kind: EventKeyDown, Key: key} }

// KeyUp 构造按键抬起事件
func KeyUp(key string) Event { return Event{Kind: EventKeyUp, Key: key} }

// Click 构造世界点击事件
func Click(x, y float64) Event { return Event{Kind: EventClick, X: x, Y: y} }

// Choice 构造界面选项事件
func Choice(element string, index int) Event {
	return Event{Kind: EventChoice, Element: element, Index: index}
}

// Queue 输入事件队列
//
// 单线程使用：输入源在 tick 之间 Push，模拟循环在 tick 开始时 Drain。
// 事件到达时间与状态修改时间由此解耦，输入延迟最多一个 tick。
type Queue struct {
	events []Event
}

// NewQueue 创建事件队列
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push 追加事件
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len 当前待处理事件数
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain 按 FIFO 顺序取出所有事件并清空队列
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
