package game

import (
	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/entities"
)

// GameState 整个模拟的状态
//
// 由 Simulation 独占修改；渲染层在 Draw 中只读访问。
// 每个系统只接收它需要的组件，不持有 GameState。
type GameState struct {
	// Tick 已推进的 tick 数（通知框弹出期间不推进）
	Tick uint64

	Avatar      *components.AvatarComponent
	Camera      *components.CameraComponent
	Companion   *components.CompanionComponent
	Flowers     *components.FlowerFieldComponent
	FinalFlower *components.FinalFlowerComponent
	World       *components.WorldColorComponent
	Basketball  *components.BasketballComponent
	Cutscene    *components.CutsceneComponent
	Quiz        *components.QuizComponent
	Paper       *components.PaperComponent

	// Message 顶部提示信息
	Message string

	// NoticeOpen 阻塞式通知框是否显示（显示期间模拟暂停）
	NoticeOpen bool
}

// NewGameState 按配置创建初始状态
//
// 参数:
//   - cfg: 游戏配置
//   - seed: 花田抖动随机种子
func NewGameState(cfg *config.GameConfig, seed uint64) *GameState {
	return &GameState{
		Avatar:      entities.NewAvatar(cfg.Avatar),
		Camera:      entities.NewCamera(cfg.Camera, cfg.Avatar),
		Companion:   entities.NewCompanion(cfg.Companion),
		Flowers:     entities.NewFlowerField(cfg.Flowers, seed),
		FinalFlower: entities.NewFinalFlower(cfg.Flowers),
		World:       entities.NewWorldColor(cfg.Bloom),
		Basketball:  &components.BasketballComponent{},
		Cutscene:    &components.CutsceneComponent{},
		Quiz:        entities.NewQuiz(cfg.Quiz),
		Paper:       entities.NewPaper(cfg.Paper),
	}
}

// ElapsedMs 已运行的毫秒数（由 tick 数换算，与真实时间无关）
func (gs *GameState) ElapsedMs(cfg *config.GameConfig) float64 {
	return float64(gs.Tick) * cfg.MillisPerTick()
}
