package systems

import (
	"fmt"
	"log"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/entities"
	"github.com/decker502/flappy/pkg/game"
)

// Gameplay 把各系统按固定顺序串起来，供 ebiten 场景和终端前端共用
//
// 每帧顺序：
//  1. 处理本帧积累的点击
//  2. 物理步进（重力、接触事件、穿透修正）
//  3. 接触分类（可能结束本局或得分）
//  4. 滚动、背景循环、寿命、生成、翅膀动画
//  5. 删除被标记的实体并从物理世界移除
type Gameplay struct {
	world *game.GameWorld

	spawner    *ObstacleSpawnSystem
	contacts   *ContactSystem
	scroll     *ScrollSystem
	background *BackgroundSystem
	lifetime   *LifetimeSystem
	input      *InputSystem
	flap       *FlapAnimationSystem

	player ecs.EntityID
	ground ecs.EntityID

	pendingTaps int
}

// NewGameplay 创建一局游戏：背景、地面、小鸟
// 第一对管道在第一次 Step 时生成
func NewGameplay(world *game.GameWorld, rng RandSource) (*Gameplay, error) {
	if world == nil || rng == nil {
		return nil, fmt.Errorf("world and rng are required")
	}
	em := world.EntityManager

	g := &Gameplay{
		world:      world,
		spawner:    NewObstacleSpawnSystem(world, rng),
		contacts:   NewContactSystem(world),
		scroll:     NewScrollSystem(em),
		background: NewBackgroundSystem(em),
		lifetime:   NewLifetimeSystem(em),
		flap:       NewFlapAnimationSystem(em),
	}
	g.input = NewInputSystem(world, g)

	ground, err := entities.NewGroundEntity(em, world.Physics, world.Config)
	if err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}
	g.ground = ground

	if err := g.populate(); err != nil {
		return nil, err
	}
	return g, nil
}

// populate 创建每局都要重建的实体
func (g *Gameplay) populate() error {
	entities.NewBackgroundTiles(g.world.EntityManager, g.world.Config)
	player, err := entities.NewPlayerEntity(g.world.EntityManager, g.world.Physics, g.world.Config)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	g.player = player
	return nil
}

// World 返回游戏世界
func (g *Gameplay) World() *game.GameWorld {
	return g.world
}

// Player 当前小鸟实体
func (g *Gameplay) Player() ecs.EntityID {
	return g.player
}

// Ground 地面实体（整个进程内不变）
func (g *Gameplay) Ground() ecs.EntityID {
	return g.ground
}

// Spawner 障碍生成系统
func (g *Gameplay) Spawner() *ObstacleSpawnSystem {
	return g.spawner
}

// Input 输入系统
func (g *Gameplay) Input() *InputSystem {
	return g.input
}

// Tap 记录一次点击，在下一次 Step 开始时处理
func (g *Gameplay) Tap() {
	g.pendingTaps++
}

// Step 推进一帧
func (g *Gameplay) Step(deltaTime float64) {
	for ; g.pendingTaps > 0; g.pendingTaps-- {
		g.input.OnTap()
	}

	g.world.Physics.Step(deltaTime)
	g.contacts.Update()

	sceneDelta := g.world.SceneDelta(deltaTime)
	g.scroll.Update(sceneDelta)
	g.background.Update(sceneDelta)
	g.lifetime.Update(sceneDelta)
	g.spawner.Update(deltaTime)
	g.flap.Update(sceneDelta)

	g.removeMarked()
}

func (g *Gameplay) removeMarked() {
	removed := g.world.EntityManager.RemoveMarkedEntities()
	g.world.Physics.RemoveBodies(removed)
}

// Restart GameOver -> Playing
//
// 移除全部管道、缝隙、背景和小鸟，清空接触记录，重建背景和小鸟，
// 重置生成节奏后恢复滚动。地面保留。进行中调用为空操作，返回 false。
func (g *Gameplay) Restart() bool {
	if !g.world.IsGameOver() {
		return false
	}
	em := g.world.EntityManager

	var doomed []ecs.EntityID
	doomed = append(doomed, ecs.GetEntitiesWith1[*components.ObstacleComponent](em)...)
	doomed = append(doomed, ecs.GetEntitiesWith1[*components.GapSensorComponent](em)...)
	doomed = append(doomed, ecs.GetEntitiesWith1[*components.BackgroundTileComponent](em)...)
	doomed = append(doomed, ecs.GetEntitiesWith1[*components.PlayerComponent](em)...)
	for _, id := range doomed {
		em.DestroyEntity(id)
	}
	g.removeMarked()
	g.world.Physics.ClearContacts()

	if err := g.populate(); err != nil {
		// 配置在启动时已校验，这里不应失败
		log.Printf("[Gameplay] restart failed: %v", err)
		return false
	}
	g.spawner.Reset()
	g.world.BeginRun()
	return true
}
