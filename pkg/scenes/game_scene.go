package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/game"
	"github.com/decker502/flowerfield/pkg/input"
)

// GameScene 花田主场景
//
// 连接 ebiten 与模拟循环：
//   - Update: 轮询键盘和点击并压入事件队列，然后推进一个 tick
//   - Draw: 只读地绘制 3D 场景和界面层
type GameScene struct {
	cfg *config.GameConfig

	sim    *game.Simulation
	queue  *input.Queue
	source *input.EbitenSource

	ui        *UIOverlay
	projector *PerspectiveProjector
	world     *WorldRenderer
}

// GameSceneOptions 场景创建参数
type GameSceneOptions struct {
	// Seed 花田抖动随机种子（为 0 时使用配置中的种子）
	Seed uint64

	// SkipIntro 跳过开场动画
	SkipIntro bool

	// Cues 音效播放器，可为 nil（静音）
	Cues game.CuePlayer
}

// NewGameScene 创建花田场景并启动模拟
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - opts: 种子、开场动画与音效选项
//
// 返回:
//   - error: 界面字体加载失败时返回错误
func NewGameScene(cfg *config.GameConfig, opts GameSceneOptions) (*GameScene, error) {
	ui, err := NewUIOverlay(config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create UI overlay: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Flowers.Seed
	}

	cues := opts.Cues
	if cues == nil {
		cues = silentCues{}
	}

	projector := NewPerspectiveProjector(cfg.Camera, config.GameWindowWidth, config.GameWindowHeight)
	queue := input.NewQueue()
	state := game.NewGameState(cfg, seed)
	sim := game.NewSimulation(cfg, state, queue, ui, projector, cues)

	scene := &GameScene{
		cfg:       cfg,
		sim:       sim,
		queue:     queue,
		source:    input.NewEbitenSource(input.NewBindings(cfg.Keys)),
		ui:        ui,
		projector: projector,
		world:     NewWorldRenderer(cfg, projector),
	}

	sim.Start(opts.SkipIntro)
	log.Printf("[GameScene] Created with %d flowers (seed=%d)", state.Flowers.Count(), seed)
	return scene, nil
}

// Update 采集输入并推进一个 tick
// 模拟按固定 tick 推进，deltaTime 不参与计算
func (s *GameScene) Update(deltaTime float64) {
	s.source.Poll(s.queue)

	if clicked, x, y := input.JustClicked(); clicked {
		s.routeClick(x, y)
	}

	s.sim.Tick()
}

// routeClick 把点击分发为界面选项或世界点击
func (s *GameScene) routeClick(x, y float64) {
	if el, index, ok := s.ui.HitTest(x, y); ok {
		s.queue.Push(input.Choice(string(el), index))
		return
	}
	if s.ui.BlocksClick(x, y) {
		return
	}
	s.queue.Push(input.Click(x, y))
}

// Draw 绘制场景和界面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.world.Draw(screen, s.sim.State())
	s.ui.Draw(screen)
}

// silentCues 不播放任何音效
type silentCues struct{}

func (silentCues) PlayCue(game.Cue) {}
