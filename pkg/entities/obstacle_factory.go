package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
)

// BodyRegistry 物理世界中注册刚体的接口（由 *physics.World 实现）
type BodyRegistry interface {
	AddBody(id ecs.EntityID) bool
}

var (
	pipeColor = color.RGBA{R: 83, G: 190, B: 46, A: 255}
	gapColor  = color.RGBA{A: 0}
)

// PairLayout 一对管道加缝隙的几何布局（屏幕坐标，Y 向下）
type PairLayout struct {
	X float64 // 三者共同的中心 X

	GapY      float64 // 缝隙中心
	GapHeight float64

	UpperY     float64 // 上管中心
	UpperEdgeY float64 // 上管管口（下端）
	LowerY     float64 // 下管中心
	LowerEdgeY float64 // 下管管口（上端）
}

// ComputePairLayout 计算一对管道的位置
//
// 以屏幕竖直中线为中性位置，上下管口相距 GapHeight；jitter 整体平移三者，
// jitter 为正表示向上（与屏幕 Y 轴方向相反），相对几何保持不变。
func ComputePairLayout(cfg *config.GameConfig, jitter int) PairLayout {
	gap := cfg.GapHeight()
	gapY := cfg.Viewport.Height/2 - float64(jitter)
	return PairLayout{
		X:          cfg.Viewport.Width,
		GapY:       gapY,
		GapHeight:  gap,
		UpperY:     gapY - gap/2 - cfg.Pipe.Height/2,
		UpperEdgeY: gapY - gap/2,
		LowerY:     gapY + gap/2 + cfg.Pipe.Height/2,
		LowerEdgeY: gapY + gap/2,
	}
}

// ObstacleTriple 一次生成的三个实体
type ObstacleTriple struct {
	PairID int
	Upper  ecs.EntityID
	Lower  ecs.EntityID
	Gap    ecs.EntityID
	Layout PairLayout
}

// Entities 三个实体ID
func (t ObstacleTriple) Entities() []ecs.EntityID {
	return []ecs.EntityID{t.Upper, t.Lower, t.Gap}
}

// NewObstacleTriple 在屏幕右边缘创建一对管道和计分缝隙
//
// 三者以相同速度向左滚动，寿命为 TraversalTime（移动两倍屏宽所需时间），
// 到期由 LifetimeSystem 统一销毁。
//
// 参数:
//   - em: 实体管理器
//   - bodies: 物理世界
//   - cfg: 游戏配置
//   - pairID: 序号，仅用于日志与调试
//   - jitter: 竖直随机偏移，取值区间 [-JitterRange, +JitterRange)
func NewObstacleTriple(em *ecs.EntityManager, bodies BodyRegistry, cfg *config.GameConfig, pairID, jitter int) (ObstacleTriple, error) {
	if em == nil || bodies == nil || cfg == nil {
		return ObstacleTriple{}, fmt.Errorf("entity manager, body registry and config are required")
	}
	q := cfg.JitterRange()
	if jitter < -q || jitter >= q {
		return ObstacleTriple{}, fmt.Errorf("jitter %d out of range [%d, %d)", jitter, -q, q)
	}

	layout := ComputePairLayout(cfg, jitter)
	triple := ObstacleTriple{PairID: pairID, Layout: layout}

	triple.Upper = newPipe(em, cfg, pairID, components.ObstacleUpper, layout.UpperY, layout.UpperEdgeY)
	triple.Lower = newPipe(em, cfg, pairID, components.ObstacleLower, layout.LowerY, layout.LowerEdgeY)

	triple.Gap = em.CreateEntity()
	em.AddComponent(triple.Gap, &components.PositionComponent{X: layout.X, Y: layout.GapY})
	em.AddComponent(triple.Gap, &components.PhysicsBodyComponent{
		Width:    cfg.Pipe.Width,
		Height:   layout.GapHeight,
		Category: components.CategoryGap,
	})
	em.AddComponent(triple.Gap, &components.GapSensorComponent{PairID: pairID, Height: layout.GapHeight})
	em.AddComponent(triple.Gap, &components.SpriteComponent{
		Width: cfg.Pipe.Width, Height: layout.GapHeight, Color: gapColor, Hidden: true,
	})
	addTraversal(em, cfg, triple.Gap)

	for _, id := range triple.Entities() {
		if !bodies.AddBody(id) {
			return triple, fmt.Errorf("failed to register body for entity %d", id)
		}
	}

	log.Printf("[ObstacleFactory] pair #%d jitter=%d gapY=%.1f", pairID, jitter, layout.GapY)
	return triple, nil
}

func newPipe(em *ecs.EntityManager, cfg *config.GameConfig, pairID int, part components.ObstaclePart, y, edgeY float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: cfg.Viewport.Width, Y: y})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Width:    cfg.Pipe.Width,
		Height:   cfg.Pipe.Height,
		Category: components.CategorySolid,
	})
	em.AddComponent(id, &components.ObstacleComponent{PairID: pairID, Part: part, EdgeY: edgeY})
	em.AddComponent(id, &components.SpriteComponent{
		Width: cfg.Pipe.Width, Height: cfg.Pipe.Height, Color: pipeColor, Glyph: '█', ZIndex: 1,
	})
	addTraversal(em, cfg, id)
	return id
}

// addTraversal 滚动 + 定时销毁
func addTraversal(em *ecs.EntityManager, cfg *config.GameConfig, id ecs.EntityID) {
	em.AddComponent(id, &components.ScrollComponent{Speed: cfg.ScrollSpeed})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: cfg.TraversalTime()})
}
