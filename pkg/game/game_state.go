package game

import (
	"log"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/physics"
)

// RunState 一局游戏的运行状态
type RunState int

const (
	RunPlaying  RunState = iota // 游戏进行中（初始状态）
	RunGameOver                 // 撞到管道或地面后
)

func (s RunState) String() string {
	switch s {
	case RunPlaying:
		return "playing"
	case RunGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameWorld 保存一局游戏的全部可变状态
//
// 不是全局单例：由调用方（场景或终端前端）创建并持有，
// 以指针形式传给每个系统。
type GameWorld struct {
	EntityManager *ecs.EntityManager
	Physics       *physics.World
	Config        *config.GameConfig
	Scoreboard    *Scoreboard

	state RunState
	// speed 滚动实体的速度倍率，游戏结束时为 0（冻结），进行中为 1
	speed float64
}

// NewGameWorld 根据配置创建空的游戏世界（尚未创建任何实体）
func NewGameWorld(cfg *config.GameConfig) *GameWorld {
	em := ecs.NewEntityManager()
	return &GameWorld{
		EntityManager: em,
		Physics:       physics.NewWorld(em, cfg.Viewport.Width, cfg.Viewport.Height, cfg.Gravity),
		Config:        cfg,
		Scoreboard:    NewScoreboard(),
		state:         RunPlaying,
		speed:         1,
	}
}

// State 返回当前运行状态
func (w *GameWorld) State() RunState {
	return w.state
}

// IsPlaying 是否处于进行中
func (w *GameWorld) IsPlaying() bool {
	return w.state == RunPlaying
}

// IsGameOver 是否已结束
func (w *GameWorld) IsGameOver() bool {
	return w.state == RunGameOver
}

// Speed 返回滚动速度倍率
func (w *GameWorld) Speed() float64 {
	return w.speed
}

// SceneDelta 把帧时间换算成场景时钟（冻结时为 0）
func (w *GameWorld) SceneDelta(deltaTime float64) float64 {
	return deltaTime * w.speed
}

// EndRun Playing -> GameOver：冻结滚动并显示结束提示
//
// 已经结束时调用是空操作，返回 false。
func (w *GameWorld) EndRun() bool {
	if w.state == RunGameOver {
		return false
	}
	w.state = RunGameOver
	w.speed = 0
	w.Scoreboard.ShowGameOver()
	log.Printf("[GameWorld] Game over, final score %d", w.Scoreboard.Score())
	return true
}

// BeginRun GameOver -> Playing：分数归零、隐藏提示、恢复滚动
//
// 实体的清理与重建由 Gameplay.Restart 负责；进行中调用是空操作，返回 false。
func (w *GameWorld) BeginRun() bool {
	if w.state == RunPlaying {
		return false
	}
	w.state = RunPlaying
	w.speed = 1
	w.Scoreboard.Reset()
	w.Scoreboard.HideGameOver()
	log.Printf("[GameWorld] New run started")
	return true
}
