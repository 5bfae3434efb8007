package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
)

var (
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	skyColors   = []color.RGBA{
		{R: 112, G: 197, B: 206, A: 255},
		{R: 120, G: 204, B: 212, A: 255},
	}
)

// NewGroundEntity 创建贴着屏幕底部的静态地面
// 地面不滚动、不会被移除
func NewGroundEntity(em *ecs.EntityManager, bodies BodyRegistry, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil || bodies == nil || cfg == nil {
		return 0, fmt.Errorf("entity manager, body registry and config are required")
	}
	thickness := cfg.Ground.Thickness

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Viewport.Width / 2,
		Y: cfg.Viewport.Height - thickness/2,
	})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Width:    cfg.Viewport.Width,
		Height:   thickness,
		Category: components.CategorySolid,
	})
	em.AddComponent(id, &components.GroundComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		Width: cfg.Viewport.Width, Height: thickness, Color: groundColor, Glyph: '▀', ZIndex: 2,
	})

	if !bodies.AddBody(id) {
		return id, fmt.Errorf("failed to register ground body")
	}
	return id, nil
}

// NewBackgroundTiles 创建首尾相接的背景瓦片（纯视觉，无刚体）
func NewBackgroundTiles(em *ecs.EntityManager, cfg *config.GameConfig) []ecs.EntityID {
	tw := cfg.Background.TileWidth
	ids := make([]ecs.EntityID, 0, cfg.Background.Tiles)
	for i := 0; i < cfg.Background.Tiles; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{
			X: tw/2 + tw*float64(i),
			Y: cfg.Viewport.Height / 2,
		})
		em.AddComponent(id, &components.ScrollComponent{Speed: cfg.ScrollSpeed})
		em.AddComponent(id, &components.BackgroundTileComponent{Index: i, TileWidth: tw})
		em.AddComponent(id, &components.SpriteComponent{
			Width: tw, Height: cfg.Viewport.Height, Color: skyColors[i%len(skyColors)], Glyph: ' ',
		})
		ids = append(ids, id)
	}
	return ids
}
