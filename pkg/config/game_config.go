package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全局配置
//
// 包含模拟循环中所有可调参数：角色移动、镜头跟随、精灵跟随与对话、
// 花田布局与绽放动画、篮球物理、过场动画、问答题库、按键绑定和界面文本。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Avatar     AvatarConfig      `yaml:"avatar"`
	Camera     CameraConfig      `yaml:"camera"`
	Companion  CompanionConfig   `yaml:"companion"`
	Flowers    FlowerFieldConfig `yaml:"flowers"`
	Bloom      BloomConfig       `yaml:"bloom"`
	Basketball BasketballConfig  `yaml:"basketball"`
	Cutscene   CutsceneConfig    `yaml:"cutscene"`
	Paper      PaperConfig       `yaml:"paper"`
	Quiz       QuizConfig        `yaml:"quiz"`
	Keys       KeyBindings       `yaml:"keys"`
	Messages   MessageConfig     `yaml:"messages"`

	// TicksPerSecond 固定 tick 频率，用于把 tick 数换算成毫秒（浮动、摆臂动画）
	TicksPerSecond int `yaml:"ticksPerSecond"`
}

// AvatarConfig 玩家角色配置
type AvatarConfig struct {
	// Spawn 出生点（重新开始时也回到这里）
	Spawn mgl64.Vec3 `yaml:"spawn"`

	// Step 每帧每个方向的位移（无对角线归一化）
	Step float64 `yaml:"step"`

	// Bound 活动范围半径，X 和 Z 都被限制在 [-Bound, Bound]
	Bound float64 `yaml:"bound"`

	// LimbPhaseRate 摆臂相位 = 毫秒 * LimbPhaseRate
	LimbPhaseRate float64 `yaml:"limbPhaseRate"`
	ArmSwing      float64 `yaml:"armSwing"`
	LegSwing      float64 `yaml:"legSwing"`
}

// CameraConfig 第三人称跟随镜头配置
type CameraConfig struct {
	Initial      mgl64.Vec3 `yaml:"initial"`
	TargetHeight float64    `yaml:"targetHeight"`
	Offset       mgl64.Vec3 `yaml:"offset"`
	Smoothing    float64    `yaml:"smoothing"`

	// 透视投影参数（角度制 FOV）
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// CompanionConfig 精灵同伴配置
type CompanionConfig struct {
	Spawn           mgl64.Vec3 `yaml:"spawn"`
	DesiredDistance float64    `yaml:"desiredDistance"`
	FollowRate      float64    `yaml:"followRate"`
	FloatBase       float64    `yaml:"floatBase"`
	FloatAmplitude  float64    `yaml:"floatAmplitude"`
	FloatRate       float64    `yaml:"floatRate"`

	// TriggerRadius 对话触发范围（X、Z 两轴分别判断）
	TriggerRadius float64 `yaml:"triggerRadius"`

	// PopupHeight 对话气泡锚点相对精灵位置的高度
	PopupHeight float64 `yaml:"popupHeight"`

	// Lines 对话内容，按顺序显示
	Lines []string `yaml:"lines"`
}

// ExclusionZone 花田中不种花的区域（玻璃罩周围）
type ExclusionZone struct {
	MinZ       float64 `yaml:"minZ"`
	HalfWidthX float64 `yaml:"halfWidthX"`
}

// FlowerFieldConfig 花田布局配置
type FlowerFieldConfig struct {
	CountX    int           `yaml:"countX"`
	CountZ    int           `yaml:"countZ"`
	Spacing   float64       `yaml:"spacing"`
	Origin    float64       `yaml:"origin"`
	Jitter    float64       `yaml:"jitter"`
	Seed      uint64        `yaml:"seed"`
	Exclusion ExclusionZone `yaml:"exclusion"`

	PetalCount  int     `yaml:"petalCount"`
	PetalRadius float64 `yaml:"petalRadius"`
	StemHeight  float64 `yaml:"stemHeight"`
	HeadHeight  float64 `yaml:"headHeight"`
	HiddenScale float64 `yaml:"hiddenScale"`

	// FinalFlower 玻璃罩中的魔法花
	FinalFlower    mgl64.Vec3 `yaml:"finalFlower"`
	InteractRadius float64    `yaml:"interactRadius"`
}

// BloomConfig 世界上色与花朵绽放动画配置
type BloomConfig struct {
	Step            float64 `yaml:"step"`
	RevealDelay     float64 `yaml:"revealDelay"`
	StaggerStride   int     `yaml:"staggerStride"`
	ColumnStagger   float64 `yaml:"columnStagger"`
	RowStagger      float64 `yaml:"rowStagger"`
	RevealThreshold float64 `yaml:"revealThreshold"`
	GrowthRate      float64 `yaml:"growthRate"`
	MinScale        float64 `yaml:"minScale"`
	EndAt           float64 `yaml:"endAt"`

	SkyFrom       HexColor `yaml:"skyFrom"`
	SkyTo         HexColor `yaml:"skyTo"`
	GroundInitial HexColor `yaml:"groundInitial"`
	GroundFrom    HexColor `yaml:"groundFrom"`
	GroundTo      HexColor `yaml:"groundTo"`
}

// GoalBox 进球判定盒（以篮筐中心为原点的半宽）
type GoalBox struct {
	MinY  float64 `yaml:"minY"`
	MaxY  float64 `yaml:"maxY"`
	HalfX float64 `yaml:"halfX"`
	HalfZ float64 `yaml:"halfZ"`
}

// OutOfBounds 出界判定
type OutOfBounds struct {
	MinY  float64 `yaml:"minY"`
	HalfX float64 `yaml:"halfX"`
	HalfZ float64 `yaml:"halfZ"`
}

// BasketballConfig 投篮小游戏物理配置
type BasketballConfig struct {
	Gravity       float64 `yaml:"gravity"`
	Drag          float64 `yaml:"drag"`
	FloorY        float64 `yaml:"floorY"`
	Bounce        float64 `yaml:"bounce"`
	FloorFriction float64 `yaml:"floorFriction"`
	BallRadius    float64 `yaml:"ballRadius"`

	LaunchPoint mgl64.Vec3 `yaml:"launchPoint"`
	HoopCenter  mgl64.Vec3 `yaml:"hoopCenter"`
	Backboard   mgl64.Vec3 `yaml:"backboard"`

	Goal        GoalBox     `yaml:"goal"`
	OutOfBounds OutOfBounds `yaml:"outOfBounds"`

	WinScore     int     `yaml:"winScore"`
	PickupRadius float64 `yaml:"pickupRadius"`

	// ShotTicks 辅助瞄准的飞行帧数，球在该帧恰好到达篮筐中心
	ShotTicks int `yaml:"shotTicks"`
}

// CutsceneConfig 过场动画配置
type CutsceneConfig struct {
	IntroFrames   int        `yaml:"introFrames"`
	IntroStart    mgl64.Vec3 `yaml:"introStart"`
	IntroVelocity mgl64.Vec3 `yaml:"introVelocity"`
	IntroLookAt   mgl64.Vec3 `yaml:"introLookAt"`

	WinTarget       mgl64.Vec3 `yaml:"winTarget"`
	WinLookAt       mgl64.Vec3 `yaml:"winLookAt"`
	WinSmoothing    float64    `yaml:"winSmoothing"`
	WinCaptionFrame int        `yaml:"winCaptionFrame"`
}

// PaperConfig 地上纸条配置
type PaperConfig struct {
	Position     mgl64.Vec3 `yaml:"position"`
	PickupRadius float64    `yaml:"pickupRadius"`
	PromptHeight float64    `yaml:"promptHeight"`
}

// QuizQuestion 单道题目
type QuizQuestion struct {
	Question string   `yaml:"question"`
	Answers  []string `yaml:"answers"`
	Correct  int      `yaml:"correct"`
}

// QuizConfig 问答题库
type QuizConfig struct {
	Questions []QuizQuestion `yaml:"questions"`
}

// KeyBindings 按键绑定，值为按键名称列表（如 "ArrowLeft", "A"）
type KeyBindings struct {
	MoveLeft    []string `yaml:"moveLeft"`
	MoveRight   []string `yaml:"moveRight"`
	MoveForward []string `yaml:"moveForward"`
	MoveBack    []string `yaml:"moveBack"`
	Interact    []string `yaml:"interact"`
	PickUp      []string `yaml:"pickUp"`
	Restart     []string `yaml:"restart"`
	Shoot       []string `yaml:"shoot"`
	Answers     []string `yaml:"answers"`
}

// MessageConfig 界面文本
type MessageConfig struct {
	Intro          string `yaml:"intro"`
	Controls       string `yaml:"controls"`
	Restart        string `yaml:"restart"`
	BloomStart     string `yaml:"bloomStart"`
	BloomEnd       string `yaml:"bloomEnd"`
	WinIntro       string `yaml:"winIntro"`
	WinFinal       string `yaml:"winFinal"`
	PaperPrompt    string `yaml:"paperPrompt"`
	TooFar         string `yaml:"tooFar"`
	QuizTitle      string `yaml:"quizTitle"`
	QuizComplete   string `yaml:"quizComplete"`
	QuizResult     string `yaml:"quizResult"`
	StartChallenge string `yaml:"startChallenge"`
	PickupButton   string `yaml:"pickupButton"`
	Score          string `yaml:"score"`
	BasketballWin  string `yaml:"basketballWin"`
	Close          string `yaml:"close"`
}

// HexColor 十六进制颜色字符串（如 "#e0eafc"）
type HexColor string

// Color 解析为 colorful.Color，解析失败返回黑色
// 配置加载时已经过 Validate 校验，正常情况下不会失败
func (h HexColor) Color() colorful.Color {
	c, err := colorful.Hex(string(h))
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 数据解析游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}

// MillisPerTick 每个 tick 对应的毫秒数
func (c *GameConfig) MillisPerTick() float64 {
	return 1000.0 / float64(c.TicksPerSecond)
}

// Validate 验证配置有效性
//
// 只检查会让模拟进入非法状态的配置：
//   - 数值范围（步长、边界、比例系数）
//   - 颜色格式
//   - 题库与对话内容非空，正确答案下标不越界
//   - 每个动作至少绑定一个按键
func (c *GameConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}

	if c.Avatar.Step <= 0 {
		return fmt.Errorf("avatar step must be positive, got %.3f", c.Avatar.Step)
	}
	if c.Avatar.Bound <= 0 {
		return fmt.Errorf("avatar bound must be positive, got %.1f", c.Avatar.Bound)
	}

	if err := checkRate("camera smoothing", c.Camera.Smoothing); err != nil {
		return err
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov out of range: %.1f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes invalid: near=%.3f far=%.3f", c.Camera.Near, c.Camera.Far)
	}

	if err := checkRate("companion followRate", c.Companion.FollowRate); err != nil {
		return err
	}
	if c.Companion.DesiredDistance <= 0 {
		return fmt.Errorf("companion desiredDistance must be positive, got %.2f", c.Companion.DesiredDistance)
	}
	if len(c.Companion.Lines) == 0 {
		return fmt.Errorf("companion has no dialogue lines")
	}

	if err := c.Flowers.validate(); err != nil {
		return err
	}
	if err := c.Bloom.validate(); err != nil {
		return err
	}
	if err := c.Basketball.validate(); err != nil {
		return err
	}

	if c.Cutscene.IntroFrames <= 0 {
		return fmt.Errorf("cutscene introFrames must be positive, got %d", c.Cutscene.IntroFrames)
	}
	if err := checkRate("cutscene winSmoothing", c.Cutscene.WinSmoothing); err != nil {
		return err
	}

	if len(c.Quiz.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, q := range c.Quiz.Questions {
		if len(q.Answers) == 0 {
			return fmt.Errorf("quiz question %d has no answers", i+1)
		}
		if q.Correct < 0 || q.Correct >= len(q.Answers) {
			return fmt.Errorf("quiz question %d: correct index %d out of range [0,%d)", i+1, q.Correct, len(q.Answers))
		}
	}

	if c.Messages.Close == "" {
		return fmt.Errorf("messages close text is empty, the win panel could not be dismissed")
	}

	return c.Keys.validate()
}

func (f *FlowerFieldConfig) validate() error {
	if f.CountX <= 0 || f.CountZ <= 0 {
		return fmt.Errorf("flower grid must be non-empty, got %dx%d", f.CountX, f.CountZ)
	}
	if f.Spacing <= 0 {
		return fmt.Errorf("flower spacing must be positive, got %.2f", f.Spacing)
	}
	if f.PetalCount <= 0 {
		return fmt.Errorf("flower petalCount must be positive, got %d", f.PetalCount)
	}
	if f.HiddenScale <= 0 {
		return fmt.Errorf("flower hiddenScale must be positive, got %.4f", f.HiddenScale)
	}
	if f.InteractRadius <= 0 {
		return fmt.Errorf("final flower interactRadius must be positive, got %.2f", f.InteractRadius)
	}
	return nil
}

func (b *BloomConfig) validate() error {
	if b.Step <= 0 {
		return fmt.Errorf("bloom step must be positive, got %.5f", b.Step)
	}
	if b.StaggerStride <= 0 {
		return fmt.Errorf("bloom staggerStride must be positive, got %d", b.StaggerStride)
	}
	if b.MinScale <= 0 || b.MinScale > 1 {
		return fmt.Errorf("bloom minScale out of range (0,1]: %.4f", b.MinScale)
	}
	if b.EndAt < 1 {
		return fmt.Errorf("bloom endAt must be >= 1 so colors finish, got %.2f", b.EndAt)
	}
	colors := map[string]HexColor{
		"skyFrom":       b.SkyFrom,
		"skyTo":         b.SkyTo,
		"groundInitial": b.GroundInitial,
		"groundFrom":    b.GroundFrom,
		"groundTo":      b.GroundTo,
	}
	for name, h := range colors {
		if _, err := colorful.Hex(string(h)); err != nil {
			return fmt.Errorf("bloom %s: invalid color %q: %w", name, h, err)
		}
	}
	return nil
}

func (b *BasketballConfig) validate() error {
	if b.Gravity <= 0 {
		return fmt.Errorf("basketball gravity must be positive, got %.4f", b.Gravity)
	}
	if b.Drag <= 0 || b.Drag >= 1 {
		return fmt.Errorf("basketball drag out of range (0,1): %.3f", b.Drag)
	}
	if b.Goal.MinY >= b.Goal.MaxY {
		return fmt.Errorf("basketball goal box invalid: minY(%.2f) >= maxY(%.2f)", b.Goal.MinY, b.Goal.MaxY)
	}
	if b.WinScore <= 0 {
		return fmt.Errorf("basketball winScore must be positive, got %d", b.WinScore)
	}
	if b.ShotTicks <= 0 {
		return fmt.Errorf("basketball shotTicks must be positive, got %d", b.ShotTicks)
	}
	return nil
}

func (k *KeyBindings) validate() error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"moveLeft", k.MoveLeft},
		{"moveRight", k.MoveRight},
		{"moveForward", k.MoveForward},
		{"moveBack", k.MoveBack},
		{"interact", k.Interact},
		{"pickUp", k.PickUp},
		{"restart", k.Restart},
		{"shoot", k.Shoot},
	}
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("key binding %s is empty", b.name)
		}
	}
	return nil
}

func checkRate(name string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s out of range (0,1]: %.4f", name, v)
	}
	return nil
}
