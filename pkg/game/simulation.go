package game

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
	"github.com/decker502/flowerfield/pkg/input"
	"github.com/decker502/flowerfield/pkg/systems"
)

// Simulation 固定步长的模拟循环
//
// 每个 tick 的顺序（确定性，不能调换）:
//  1. 排空输入事件队列：更新按键状态，分发离散动作
//  2. 四肢动画（始终执行）
//  3. 过场动画进行中：只执行过场动画
//     否则：对话触发 -> 角色移动 -> 镜头跟随 -> 绽放动画 -> 精灵跟随与气泡定位
//  4. 纸条提示
//  5. 篮球物理
//
// 阻塞式通知框显示期间只处理事件（按键状态照常更新），其余步骤全部跳过。
type Simulation struct {
	cfg   *config.GameConfig
	state *GameState
	input *input.State
	queue *input.Queue

	ui        UISurface
	projector Projector
	cues      CuePlayer

	avatarSystem     *systems.AvatarSystem
	cameraSystem     *systems.CameraSystem
	companionSystem  *systems.CompanionSystem
	bloomSystem      *systems.BloomSystem
	basketballSystem *systems.BasketballSystem
	cutsceneSystem   *systems.CutsceneSystem
	quizSystem       *systems.QuizSystem
	paperSystem      *systems.PaperSystem

	promptShown bool
}

// NewSimulation 创建模拟循环
//
// 参数:
//   - cfg: 游戏配置
//   - state: 初始状态（通常来自 NewGameState）
//   - queue: 输入事件队列，输入源在 tick 之间写入
//   - ui, projector, cues: 界面、投影和音效端口
func NewSimulation(cfg *config.GameConfig, state *GameState, queue *input.Queue, ui UISurface, projector Projector, cues CuePlayer) *Simulation {
	return &Simulation{
		cfg:       cfg,
		state:     state,
		input:     input.NewState(input.NewBindings(cfg.Keys)),
		queue:     queue,
		ui:        ui,
		projector: projector,
		cues:      cues,

		avatarSystem:     systems.NewAvatarSystem(cfg.Avatar),
		cameraSystem:     systems.NewCameraSystem(cfg.Camera),
		companionSystem:  systems.NewCompanionSystem(cfg.Companion),
		bloomSystem:      systems.NewBloomSystem(cfg.Bloom, cfg.Flowers),
		basketballSystem: systems.NewBasketballSystem(cfg.Basketball),
		cutsceneSystem:   systems.NewCutsceneSystem(cfg.Cutscene, cfg.Messages),
		quizSystem:       systems.NewQuizSystem(),
		paperSystem:      systems.NewPaperSystem(cfg.Paper),
	}
}

// State 返回模拟状态（渲染层只读）
func (s *Simulation) State() *GameState {
	return s.state
}

// Input 返回当前按键状态
func (s *Simulation) Input() *input.State {
	return s.input
}

// Start 初始化界面文本并开始开场动画
// skipIntro 为 true 时直接进入可操作状态
func (s *Simulation) Start(skipIntro bool) {
	msgs := s.cfg.Messages
	s.ui.SetText(ElementPaperPrompt, msgs.PaperPrompt)
	s.ui.SetText(ElementPickupButton, msgs.PickupButton)
	s.ui.Show(ElementMessage)

	if skipIntro {
		s.setMessage(msgs.Controls)
		s.cameraSystem.Follow(s.state.Camera, s.state.Avatar)
		log.Printf("[Simulation] Started without intro")
		return
	}

	s.setMessage(msgs.Intro)
	s.cutsceneSystem.StartIntro(s.state.Cutscene, s.state.Camera)
	log.Printf("[Simulation] Started")
}

// Tick 推进一个固定 tick
func (s *Simulation) Tick() {
	for _, ev := range s.queue.Drain() {
		s.handleEvent(ev)
	}

	if s.state.NoticeOpen {
		return
	}

	s.state.Tick++
	elapsed := s.state.ElapsedMs(s.cfg)

	s.avatarSystem.UpdatePose(s.state.Avatar, s.input, elapsed)

	if s.state.Cutscene.Active() {
		frame := s.cutsceneSystem.Update(s.state.Cutscene, s.state.Camera)
		if frame.Message != "" {
			s.setMessage(frame.Message)
		}
	} else {
		s.updateExploration(elapsed)
	}

	s.updatePaperPrompt()
	s.updateBasketball()
}

// updateExploration 非过场期间的自由探索
func (s *Simulation) updateExploration(elapsed float64) {
	gs := s.state

	if line, ok := s.companionSystem.TryStartDialogue(gs.Companion, gs.Avatar); ok {
		s.ui.SetText(ElementGeniePopup, line)
		s.ui.Show(ElementGeniePopup)
		s.cues.PlayCue(CueCompanionLine)
	}

	s.avatarSystem.Move(gs.Avatar, s.input)
	s.cameraSystem.Follow(gs.Camera, gs.Avatar)

	if gs.World.Active() {
		if s.bloomSystem.Update(gs.World, gs.Flowers) {
			s.setMessage(s.cfg.Messages.BloomEnd)
		}
	}

	s.companionSystem.Follow(gs.Companion, gs.Avatar, elapsed)
	if s.companionSystem.Talking(gs.Companion) {
		anchor := s.companionSystem.PopupAnchor(gs.Companion)
		if x, y, ok := s.projector.Project(anchor, gs.Camera); ok {
			s.ui.Place(ElementGeniePopup, x, y)
		}
	}
}

func (s *Simulation) updatePaperPrompt() {
	gs := s.state
	visible := s.paperSystem.UpdatePrompt(gs.Paper, gs.Avatar, gs.Camera)

	if visible {
		anchor := s.paperSystem.PromptAnchor(gs.Paper)
		if x, y, ok := s.projector.Project(anchor, gs.Camera); ok {
			s.ui.Place(ElementPaperPrompt, x, y)
		}
	}

	if visible != s.promptShown {
		if visible {
			s.ui.Show(ElementPaperPrompt)
		} else {
			s.ui.Hide(ElementPaperPrompt)
		}
		s.promptShown = visible
	}
}

func (s *Simulation) updateBasketball() {
	gs := s.state
	res := s.basketballSystem.Step(gs.Basketball)

	if res.Scored {
		s.refreshScore()
	}
	if res.Won {
		s.ui.Hide(ElementScore)
		s.ui.Hide(ElementPickupButton)
		s.ui.SetText(ElementWin, s.cfg.Messages.BasketballWin)
		s.ui.SetChoices(ElementWin, []string{s.cfg.Messages.Close})
		s.ui.Show(ElementWin)
		s.cutsceneSystem.StartWin(gs.Cutscene)
	}
}

func (s *Simulation) refreshScore() {
	text := fmt.Sprintf(s.cfg.Messages.Score, s.state.Basketball.Score, s.cfg.Basketball.WinScore)
	s.ui.SetText(ElementScore, text)
}

// handleEvent 应用单个输入事件
func (s *Simulation) handleEvent(ev input.Event) {
	switch ev.Kind {
	case input.EventKeyDown:
		s.input.SetKey(ev.Key, true)
		if s.state.NoticeOpen {
			return
		}
		for _, action := range s.input.Bindings().Actions(ev.Key) {
			if s.handleAction(action) {
				break
			}
		}

	case input.EventKeyUp:
		s.input.SetKey(ev.Key, false)

	case input.EventChoice:
		s.handleChoice(UIElement(ev.Element), ev.Index)

	case input.EventClick:
		if !s.state.NoticeOpen {
			s.handleWorldClick(ev.X, ev.Y)
		}
	}
}

// handleAction 分发离散动作，返回 true 表示按键已被消耗
func (s *Simulation) handleAction(action input.Action) bool {
	gs := s.state

	if idx, ok := action.AnswerIndex(); ok {
		return s.answerQuiz(idx)
	}

	switch action {
	case input.ActionInteract:
		// 对话中交互键只用于推进对话
		if step, ok := s.companionSystem.Advance(gs.Companion); ok {
			if step.Ended {
				s.ui.Hide(ElementGeniePopup)
			} else {
				s.ui.SetText(ElementGeniePopup, step.Line)
				s.cues.PlayCue(CueCompanionLine)
			}
			return true
		}
		if gs.Cutscene.Active() {
			return false
		}
		if s.bloomSystem.TryTrigger(gs.World, gs.FinalFlower, gs.Avatar) {
			s.setMessage(s.cfg.Messages.BloomStart)
			return true
		}

	case input.ActionPickUp:
		if s.paperSystem.TryPickup(gs.Paper, gs.Avatar) {
			s.promptShown = false
			s.ui.Hide(ElementPaperPrompt)
			s.quizSystem.Open(gs.Quiz)
			s.showQuiz()
			return true
		}

	case input.ActionShoot:
		if gs.Quiz.Phase == components.QuizComplete {
			s.startChallenge()
			return true
		}
		return s.basketballSystem.Shoot(gs.Basketball)

	case input.ActionRestart:
		return s.restart()
	}

	return false
}

// handleChoice 处理界面选项点击
func (s *Simulation) handleChoice(el UIElement, index int) {
	if el == ElementNotice {
		s.dismissNotice()
		return
	}
	if s.state.NoticeOpen {
		return
	}

	switch el {
	case ElementQuiz:
		if s.state.Quiz.Phase == components.QuizComplete {
			s.startChallenge()
			return
		}
		s.answerQuiz(index)

	case ElementWin:
		s.ui.Hide(ElementWin)
		log.Printf("[Simulation] Win panel closed")

	case ElementPickupButton:
		switch s.basketballSystem.TryPickup(s.state.Basketball, s.state.Avatar) {
		case systems.PickupTooFar:
			s.notify(s.cfg.Messages.TooFar)
		case systems.PickupDone:
			log.Printf("[Simulation] Ball picked up")
		}
	}
}

// handleWorldClick 点击屏幕上的篮球把它放回发射点
func (s *Simulation) handleWorldClick(x, y float64) {
	ball, ok := s.state.Basketball.Ball()
	if !ok {
		return
	}
	bx, by, visible := s.projector.Project(ball.Position, s.state.Camera)
	if !visible {
		return
	}
	if math.Hypot(x-bx, y-by) <= config.BallClickRadius {
		s.basketballSystem.ResetBall(s.state.Basketball)
	}
}

func (s *Simulation) answerQuiz(index int) bool {
	if _, ok := s.quizSystem.Answer(s.state.Quiz, index); !ok {
		return false
	}
	s.showQuiz()
	return true
}

// showQuiz 按问答阶段刷新问答面板
func (s *Simulation) showQuiz() {
	q := s.state.Quiz
	msgs := s.cfg.Messages

	switch q.Phase {
	case components.QuizAsking:
		question, _ := s.quizSystem.Current(q)
		title := fmt.Sprintf(msgs.QuizTitle, q.Index+1, len(q.Questions))
		s.ui.SetText(ElementQuiz, title+"\n"+question.Question)
		s.ui.SetChoices(ElementQuiz, question.Answers)
		s.ui.Show(ElementQuiz)

	case components.QuizComplete:
		result := fmt.Sprintf(msgs.QuizResult, q.Score, len(q.Questions))
		s.ui.SetText(ElementQuiz, msgs.QuizComplete+"\n"+result)
		s.ui.SetChoices(ElementQuiz, []string{msgs.StartChallenge})
		s.ui.Show(ElementQuiz)

	default:
		s.ui.Hide(ElementQuiz)
	}
}

// startChallenge 关闭问答并开始投篮挑战
func (s *Simulation) startChallenge() {
	if !s.quizSystem.Close(s.state.Quiz) {
		return
	}
	s.showQuiz()

	if s.basketballSystem.Start(s.state.Basketball) {
		s.refreshScore()
		s.ui.Show(ElementScore)
		s.ui.Show(ElementPickupButton)
	}
}

// restart 角色回到出生点并从头播放开场动画
// 任何时候都可以触发，包括开场动画和胜利动画期间
func (s *Simulation) restart() bool {
	gs := s.state
	s.avatarSystem.Teleport(gs.Avatar, s.cfg.Avatar.Spawn)
	s.cutsceneSystem.StartIntro(gs.Cutscene, gs.Camera)
	s.setMessage(s.cfg.Messages.Restart)
	log.Printf("[Simulation] Restarted")
	return true
}

func (s *Simulation) notify(text string) {
	s.ui.SetText(ElementNotice, text)
	s.ui.Show(ElementNotice)
	s.state.NoticeOpen = true
}

func (s *Simulation) dismissNotice() {
	if !s.state.NoticeOpen {
		return
	}
	s.ui.Hide(ElementNotice)
	s.state.NoticeOpen = false
}

// setMessage 只在文本变化时更新界面
func (s *Simulation) setMessage(text string) {
	if text == s.state.Message {
		return
	}
	s.state.Message = text
	s.ui.SetText(ElementMessage, text)
}
