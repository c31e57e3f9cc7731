package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/flowerfield/pkg/components"
	"github.com/decker502/flowerfield/pkg/config"
)

// BasketballSystem 投篮小游戏的球体物理和计分
//
// 每个 tick 的积分顺序（顺序影响轨迹，不能调换）:
//  1. 重力：vy -= gravity
//  2. 位移：pos += vel
//  3. 阻力：vel *= drag
//  4. 地面反弹
//  5. 进球判定（必须是下落的球）
//  6. 出界判定
//
// 所有操作在非 Playing 阶段或没有球时都是空操作。
type BasketballSystem struct {
	cfg config.BasketballConfig
}

// StepResult 一个物理 tick 的结果
type StepResult struct {
	// Scored 本 tick 进球
	Scored bool

	// Won 本 tick 达到目标分数
	Won bool

	// Reset 球出界被放回发射点
	Reset bool
}

// PickupResult 捡球的结果
type PickupResult int

const (
	// PickupIgnored 没有可以捡的球
	PickupIgnored PickupResult = iota

	// PickupDone 球已放回发射点
	PickupDone

	// PickupTooFar 距离太远，应提示玩家
	PickupTooFar
)

// NewBasketballSystem 创建投篮系统
func NewBasketballSystem(cfg config.BasketballConfig) *BasketballSystem {
	return &BasketballSystem{cfg: cfg}
}

// Start 开始小游戏：放置篮筐和一个静止在发射点的球
// 只能从 Inactive 开始一次
func (s *BasketballSystem) Start(bb *components.BasketballComponent) bool {
	if bb.Phase != components.BasketballInactive {
		return false
	}

	bb.Phase = components.BasketballPlaying
	bb.Score = 0
	bb.HoopPresent = true
	bb.SpawnBall(s.cfg.LaunchPoint)
	log.Printf("[BasketballSystem] Challenge started, need %d baskets", s.cfg.WinScore)
	return true
}

// Step 推进一个物理 tick
func (s *BasketballSystem) Step(bb *components.BasketballComponent) StepResult {
	if bb.Phase != components.BasketballPlaying {
		return StepResult{}
	}
	ball, ok := bb.Ball()
	if !ok {
		return StepResult{}
	}

	ball.Velocity[1] -= s.cfg.Gravity
	ball.Position = ball.Position.Add(ball.Velocity)
	ball.Velocity = ball.Velocity.Mul(s.cfg.Drag)

	if ball.Position.Y() < s.cfg.FloorY {
		ball.Position[1] = s.cfg.FloorY
		ball.Velocity[1] *= s.cfg.Bounce
		ball.Velocity[0] *= s.cfg.FloorFriction
		ball.Velocity[2] *= s.cfg.FloorFriction
	}

	if s.inGoal(ball) {
		bb.Score++
		log.Printf("[BasketballSystem] Basket! Score %d/%d", bb.Score, s.cfg.WinScore)

		if bb.Score >= s.cfg.WinScore {
			bb.Phase = components.BasketballWon
			bb.HoopPresent = false
			bb.RemoveBall()
			log.Printf("[BasketballSystem] Challenge won")
			return StepResult{Scored: true, Won: true}
		}

		s.place(ball)
		return StepResult{Scored: true}
	}

	if s.outOfBounds(ball) {
		s.place(ball)
		return StepResult{Reset: true}
	}

	return StepResult{}
}

func (s *BasketballSystem) inGoal(ball *components.Ball) bool {
	g := s.cfg.Goal
	hoop := s.cfg.HoopCenter
	p := ball.Position
	return p.Y() > g.MinY && p.Y() < g.MaxY &&
		math.Abs(p.X()-hoop.X()) < g.HalfX &&
		math.Abs(p.Z()-hoop.Z()) < g.HalfZ &&
		ball.Velocity.Y() < 0
}

func (s *BasketballSystem) outOfBounds(ball *components.Ball) bool {
	o := s.cfg.OutOfBounds
	p := ball.Position
	return p.Y() < o.MinY || math.Abs(p.X()) > o.HalfX || math.Abs(p.Z()) > o.HalfZ
}

// place 把球放回发射点并清零速度
func (s *BasketballSystem) place(ball *components.Ball) {
	ball.Position = s.cfg.LaunchPoint
	ball.Velocity = mgl64.Vec3{}
}

// ResetBall 把球放回发射点（点击球时调用）
func (s *BasketballSystem) ResetBall(bb *components.BasketballComponent) bool {
	if bb.Phase != components.BasketballPlaying {
		return false
	}
	ball, ok := bb.Ball()
	if !ok {
		return false
	}
	s.place(ball)
	return true
}

// TryPickup 角色在捡球范围内时把球放回发射点
func (s *BasketballSystem) TryPickup(bb *components.BasketballComponent, avatar *components.AvatarComponent) PickupResult {
	if bb.Phase != components.BasketballPlaying {
		return PickupIgnored
	}
	ball, ok := bb.Ball()
	if !ok {
		return PickupIgnored
	}

	if avatar.Position.Sub(ball.Position).Len() > s.cfg.PickupRadius {
		return PickupTooFar
	}
	s.place(ball)
	return PickupDone
}

// Shoot 从球的当前位置投出一个吊射球
//
// 初速度取离散积分器的闭式解，使球恰好在 ShotTicks 个 tick 后到达篮筐中心。
// 记 d=drag、g=gravity、n=ShotTicks、S=(1-d^n)/(1-d)：
//
//	vx = dx / S
//	vz = dz / S
//	vy = (dy + g/(1-d) * (n - d*S)) / S
//
// 飞行中的球也可以重新投出，轨迹从当前位置重新计算。
func (s *BasketballSystem) Shoot(bb *components.BasketballComponent) bool {
	if bb.Phase != components.BasketballPlaying {
		return false
	}
	ball, ok := bb.Ball()
	if !ok {
		return false
	}
	ball.Velocity = s.LobVelocity(ball.Position, s.cfg.HoopCenter)
	log.Printf("[BasketballSystem] Shot from (%.2f, %.2f, %.2f)", ball.Position.X(), ball.Position.Y(), ball.Position.Z())
	return true
}

// LobVelocity 计算从 from 出发、ShotTicks 个 tick 后到达 to 的初速度
func (s *BasketballSystem) LobVelocity(from, to mgl64.Vec3) mgl64.Vec3 {
	d := s.cfg.Drag
	g := s.cfg.Gravity
	n := float64(s.cfg.ShotTicks)
	sum := (1 - math.Pow(d, n)) / (1 - d)

	delta := to.Sub(from)
	return mgl64.Vec3{
		delta.X() / sum,
		(delta.Y() + g/(1-d)*(n-d*sum)) / sum,
		delta.Z() / sum,
	}
}
