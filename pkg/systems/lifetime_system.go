package systems

import (
	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 管道和缝隙在滚出屏幕后到期，由这里统一标记删除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 累加寿命并标记过期实体
// deltaTime 为场景时钟，游戏结束后为 0，因此冻结期间不会有实体过期
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		// 实际删除发生在帧末 RemoveMarkedEntities
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
