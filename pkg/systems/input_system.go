package systems

import (
	"log"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/game"
)

// Restarter 从 GameOver 开始新一局
type Restarter interface {
	Restart() bool
}

// InputSystem 处理“点击”：进行中让小鸟向上振翅，结束后重新开始
//
// 点击的来源（鼠标、触摸、空格、终端按键）由前端识别，这里只关心语义。
type InputSystem struct {
	world     *game.GameWorld
	restarter Restarter
}

// NewInputSystem 创建输入系统
func NewInputSystem(world *game.GameWorld, restarter Restarter) *InputSystem {
	return &InputSystem{
		world:     world,
		restarter: restarter,
	}
}

// OnTap 处理一次点击
//
// 进行中：先把小鸟速度清零再施加向上冲量，每次振翅后的速度都相同，与下落速度无关。
// 游戏结束：重新开始。
func (s *InputSystem) OnTap() {
	if s.world.IsGameOver() {
		if s.restarter != nil {
			s.restarter.Restart()
		}
		return
	}

	em := s.world.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PhysicsBodyComponent](em) {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
		body.SetVelocity(0, 0)
		body.ApplyImpulse(0, -s.world.Config.FlapImpulse)
		log.Printf("[InputSystem] flap: vy=%.1f", body.VY)
	}
}
