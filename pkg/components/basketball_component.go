package components

import "github.com/go-gl/mathgl/mgl64"

// BasketballPhase 投篮小游戏阶段
type BasketballPhase int

const (
	// BasketballInactive 小游戏未开始（没有篮筐也没有球）
	BasketballInactive BasketballPhase = iota

	// BasketballPlaying 进行中
	BasketballPlaying

	// BasketballWon 达到目标分数，终态（篮筐、篮板和球都已移除）
	BasketballWon
)

// String 返回 BasketballPhase 的字符串表示
func (p BasketballPhase) String() string {
	switch p {
	case BasketballInactive:
		return "Inactive"
	case BasketballPlaying:
		return "Playing"
	case BasketballWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Ball 篮球
type Ball struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// BasketballComponent 投篮小游戏状态
//
// 球是可选实体：只有 Playing 阶段才存在。
// 调用方通过 Ball() 判断是否存在，不存在时所有物理操作都是空操作。
type BasketballComponent struct {
	Phase BasketballPhase
	Score int

	// HoopPresent 篮筐和篮板是否在场景中
	HoopPresent bool

	ball *Ball
}

// Ball 返回当前的球，没有球时第二个返回值为 false
func (b *BasketballComponent) Ball() (*Ball, bool) {
	return b.ball, b.ball != nil
}

// SpawnBall 在指定位置放置一个静止的球（已有球时替换）
func (b *BasketballComponent) SpawnBall(pos mgl64.Vec3) *Ball {
	b.ball = &Ball{Position: pos}
	return b.ball
}

// RemoveBall 移除球
func (b *BasketballComponent) RemoveBall() {
	b.ball = nil
}
