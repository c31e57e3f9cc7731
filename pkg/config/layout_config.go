package config

// 布局配置常量
// 本文件定义了窗口尺寸和界面元素的屏幕布局参数
// 所有坐标使用屏幕坐标系（窗口左上角为原点）

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1024

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Flower Field Adventure"
)

// 文本配置
const (
	// UIFontSize 界面正文字号
	UIFontSize = 18.0

	// UITitleFontSize 面板标题字号
	UITitleFontSize = 24.0

	// UILineSpacing 行间距倍数
	UILineSpacing = 1.3

	// UIPadding 面板内边距
	UIPadding = 14.0
)

// 界面元素布局
const (
	// MessageY 顶部提示信息的中心 Y 坐标
	MessageY = 28.0

	// ScoreX, ScoreY 投篮得分横幅的左上角
	ScoreX = 16.0
	ScoreY = 56.0

	// PickupButtonWidth, PickupButtonHeight "Pick Up Ball" 按钮尺寸（右下角）
	PickupButtonWidth  = 150.0
	PickupButtonHeight = 40.0
	PickupButtonMargin = 20.0

	// PopupMaxWidth 对话气泡最大宽度（超过自动换行）
	PopupMaxWidth = 360.0

	// PanelWidth 问答/胜利/提示面板宽度（居中显示）
	PanelWidth = 520.0

	// ChoiceHeight 选项按钮高度，ChoiceGap 选项按钮间距
	ChoiceHeight = 36.0
	ChoiceGap    = 10.0

	// BallClickRadius 点击篮球的判定半径（屏幕像素）
	BallClickRadius = 28.0
)

// 3D 场景绘制参数
const (
	// FlowerDrawDistance 只绘制与镜头距离在此范围内的花（世界单位）
	FlowerDrawDistance = 60.0

	// GroundHorizonSamples 绘制地面时沿视线方向的采样数
	GroundHorizonSamples = 8
)
