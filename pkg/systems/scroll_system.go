package systems

import (
	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

// ScrollSystem 把所有带 ScrollComponent 的实体向左平移
type ScrollSystem struct {
	entityManager *ecs.EntityManager
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager) *ScrollSystem {
	return &ScrollSystem{entityManager: em}
}

// Update deltaTime 为场景时钟（游戏结束后为 0）
func (s *ScrollSystem) Update(deltaTime float64) {
	if deltaTime == 0 {
		return
	}
	ids := ecs.GetEntitiesWith2[*components.ScrollComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X -= scroll.Speed * deltaTime
	}
}

// BackgroundSystem 背景瓦片循环：每移动一个瓦片宽度就跳回原位
//
// 必须在 ScrollSystem 之后运行。
type BackgroundSystem struct {
	entityManager *ecs.EntityManager
}

// NewBackgroundSystem 创建背景循环系统
func NewBackgroundSystem(em *ecs.EntityManager) *BackgroundSystem {
	return &BackgroundSystem{entityManager: em}
}

// Update deltaTime 为场景时钟
func (s *BackgroundSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.BackgroundTileComponent, *components.ScrollComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		tile, _ := ecs.GetComponent[*components.BackgroundTileComponent](s.entityManager, id)
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if tile.TileWidth <= 0 {
			continue
		}

		tile.Travelled += scroll.Speed * deltaTime
		for tile.Travelled >= tile.TileWidth {
			tile.Travelled -= tile.TileWidth
			pos.X += tile.TileWidth
		}
	}
}
