package systems

import (
	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

// FlapAnimationSystem 驱动小鸟翅膀的两帧循环
type FlapAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlapAnimationSystem 创建翅膀动画系统
func NewFlapAnimationSystem(em *ecs.EntityManager) *FlapAnimationSystem {
	return &FlapAnimationSystem{entityManager: em}
}

// Update deltaTime 为场景时钟，游戏结束后动画随场景一起冻结
func (s *FlapAnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlapAnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.FlapAnimationComponent](s.entityManager, id)
		if anim.FrameTime <= 0 || anim.FrameCount <= 1 {
			continue
		}
		anim.Elapsed += deltaTime
		for anim.Elapsed >= anim.FrameTime {
			anim.Elapsed -= anim.FrameTime
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		}
	}
}
