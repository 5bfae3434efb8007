package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
)

var playerColor = color.RGBA{R: 250, G: 200, B: 40, A: 255}

// NewPlayerEntity 在屏幕中央创建小鸟
// 小鸟 X 固定，只受重力和点击冲量影响；与 Solid 碰撞、可穿过 Gap，两者都会产生接触事件
func NewPlayerEntity(em *ecs.EntityManager, bodies BodyRegistry, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil || bodies == nil || cfg == nil {
		return 0, fmt.Errorf("entity manager, body registry and config are required")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Viewport.Width / 2,
		Y: cfg.Viewport.Height / 2,
	})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		Category:        components.CategoryPlayer,
		CollisionMask:   components.PlayerCollisionMask,
		ContactTestMask: components.PlayerContactTestMask,
		Dynamic:         true,
		Mass:            cfg.Player.Mass,
	})
	em.AddComponent(id, &components.PlayerComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		Width: cfg.Player.Width, Height: cfg.Player.Height, Color: playerColor, Glyph: '@', ZIndex: 3,
	})
	em.AddComponent(id, &components.FlapAnimationComponent{
		FrameCount: 2,
		FrameTime:  cfg.FlapFrameTime,
	})

	if !bodies.AddBody(id) {
		return id, fmt.Errorf("failed to register player body")
	}
	return id, nil
}
