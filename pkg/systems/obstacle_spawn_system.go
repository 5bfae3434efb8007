package systems

import (
	"log"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/entities"
	"github.com/decker502/flappy/pkg/game"
)

// spawnEpsilon 浮点累加误差容限：时钟必须越过到期时间超过该值才算到期
const spawnEpsilon = 1e-6

// RandSource 竖直偏移的随机数来源（*rand.Rand 满足该接口，测试中可注入固定序列）
type RandSource interface {
	Intn(n int) int
}

// ObstacleSpawnSystem 按固定节奏在屏幕右侧生成管道对
//
// 每局开始的第一帧立即生成一对，之后每隔 SpawnInterval 秒（滚动半个屏宽的时间）
// 生成一对。间隔保证任意时刻屏幕上最多同时存在两对管道。
type ObstacleSpawnSystem struct {
	world *game.GameWorld
	rng   RandSource

	clock     float64 // 本局已累计的生成时钟
	nextSpawn float64 // 下一次生成的到期时间
	nextID    int
	spawned   int // 本局已生成对数
}

// NewObstacleSpawnSystem 创建障碍生成系统
func NewObstacleSpawnSystem(world *game.GameWorld, rng RandSource) *ObstacleSpawnSystem {
	log.Printf("[ObstacleSpawnSystem] Initialized with interval=%.2fs, lifetime=%.2fs",
		world.Config.SpawnInterval(), world.Config.TraversalTime())
	return &ObstacleSpawnSystem{
		world: world,
		rng:   rng,
	}
}

// Update 推进生成时钟，到期则生成
func (s *ObstacleSpawnSystem) Update(deltaTime float64) {
	if s.world.IsGameOver() && s.world.Config.PauseSpawningOnGameOver {
		return
	}

	s.clock += deltaTime
	interval := s.world.Config.SpawnInterval()
	var due []float64
	for s.clock > s.nextSpawn+spawnEpsilon {
		due = append(due, s.nextSpawn)
		s.nextSpawn += interval
	}
	if len(due) == 0 {
		return
	}

	// 一帧跨过多个间隔时逐对补生成；最新一对在屏幕右边缘，
	// 较早到期的按晚到的时间向左补足位移，间距与正常节奏一致
	newest := due[len(due)-1]
	for _, at := range due {
		triple, err := s.SpawnPair()
		if err != nil {
			log.Printf("[ObstacleSpawnSystem] spawn failed: %v", err)
			continue
		}
		if behind := newest - at; behind > 0 {
			s.advance(triple, behind)
			log.Printf("[ObstacleSpawnSystem] pair %d caught up %.2fs", triple.PairID, behind)
		}
	}
}

// advance 把刚生成的一组实体当作已经滚动了 behind 秒
func (s *ObstacleSpawnSystem) advance(triple entities.ObstacleTriple, behind float64) {
	elapsed := s.world.SceneDelta(behind)
	if elapsed <= 0 {
		return
	}
	em := s.world.EntityManager
	for _, id := range triple.Entities() {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			if scroll, ok := ecs.GetComponent[*components.ScrollComponent](em, id); ok {
				pos.X -= scroll.Speed * elapsed
			}
		}
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok {
			lifetime.CurrentLifetime += elapsed
		}
	}
}

// SpawnPair 立即生成一对管道及其缝隙传感器
//
// 竖直偏移 jitter = Intn(2q) - q，q = int(视口高度 / 4)。
func (s *ObstacleSpawnSystem) SpawnPair() (entities.ObstacleTriple, error) {
	cfg := s.world.Config
	jitter := 0
	if q := cfg.JitterRange(); q > 0 {
		jitter = s.rng.Intn(2*q) - q
	}

	s.nextID++
	triple, err := entities.NewObstacleTriple(s.world.EntityManager, s.world.Physics, cfg, s.nextID, jitter)
	if err != nil {
		return triple, err
	}
	s.spawned++
	return triple, nil
}

// Reset 新一局开始：时钟归零，下一帧立即生成
func (s *ObstacleSpawnSystem) Reset() {
	s.clock = 0
	s.nextSpawn = 0
	s.spawned = 0
}

// Spawned 本局已生成的管道对数
func (s *ObstacleSpawnSystem) Spawned() int {
	return s.spawned
}
