package systems

import (
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/physics"
)

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

func TestNewGameplayPopulatesWorld(t *testing.T) {
	g := newTestGameplay(t)
	em := g.World().EntityManager

	if n := countWith[*components.PlayerComponent](em); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
	if n := countWith[*components.GroundComponent](em); n != 1 {
		t.Errorf("grounds = %d, want 1", n)
	}
	if n := countWith[*components.BackgroundTileComponent](em); n != g.World().Config.Background.Tiles {
		t.Errorf("background tiles = %d", n)
	}
	if n := countWith[*components.ObstacleComponent](em); n != 0 {
		t.Errorf("obstacles before first step = %d, want 0", n)
	}

	g.Step(frame)
	if n := countWith[*components.ObstacleComponent](em); n != 2 {
		t.Errorf("obstacles after first step = %d, want 2", n)
	}
	if n := countWith[*components.GapSensorComponent](em); n != 1 {
		t.Errorf("gap sensors after first step = %d, want 1", n)
	}
}

func TestPlayerFallsOntoGroundAndRunEnds(t *testing.T) {
	g := newTestGameplay(t)
	world := g.World()

	for i := 0; i < 120 && world.IsPlaying(); i++ {
		g.Step(frame)
	}
	if !world.IsGameOver() {
		t.Fatal("player should have hit the ground within two seconds")
	}
	if world.Scoreboard.Score() != 0 || !world.Scoreboard.GameOverVisible() {
		t.Errorf("score=%d prompt=%v", world.Scoreboard.Score(), world.Scoreboard.GameOverVisible())
	}

	// 冻结：管道不再移动，也不再生成
	em := world.EntityManager
	pipes := ecs.GetEntitiesWith1[*components.ObstacleComponent](em)
	before := map[ecs.EntityID]float64{}
	for _, id := range pipes {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		before[id] = pos.X
	}
	spawned := g.Spawner().Spawned()

	for i := 0; i < 600; i++ {
		g.Step(frame)
	}
	for id, x := range before {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			t.Fatalf("pipe %d removed while frozen", id)
		}
		if pos.X != x {
			t.Errorf("pipe %d moved from %v to %v while frozen", id, x, pos.X)
		}
	}
	if g.Spawner().Spawned() != spawned {
		t.Errorf("spawned %d more pairs while frozen", g.Spawner().Spawned()-spawned)
	}
	if !world.IsGameOver() {
		t.Error("state changed while frozen")
	}
}

func TestPipesExpireAfterTraversal(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Gravity = 0
	g, err := NewGameplay(game.NewGameWorld(cfg), &scriptedRand{values: []int{100}})
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	world := g.World()
	em := world.EntityManager

	// 管道不参与碰撞，这里只验证节奏和寿命
	frames := int(cfg.TraversalTime()/frame) + 30
	for i := 0; i < frames; i++ {
		world.Physics.RemoveBodies(ecs.GetEntitiesWith1[*components.ObstacleComponent](em))
		g.Step(frame)
	}

	if !world.IsPlaying() {
		t.Fatalf("run ended unexpectedly, state %v", world.State())
	}
	// 最早的一对已超过寿命被移除
	for _, id := range ecs.GetEntitiesWith1[*components.ObstacleComponent](em) {
		life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if life.CurrentLifetime >= cfg.TraversalTime() {
			t.Errorf("expired pipe %d still alive", id)
		}
	}
	pairs := countWith[*components.GapSensorComponent](em)
	if pairs > 4 || pairs < 3 {
		t.Errorf("live pairs = %d, want 3 or 4", pairs)
	}
}

func TestRestartClearsWorld(t *testing.T) {
	g := newTestGameplay(t)
	world := g.World()
	em := world.EntityManager

	for i := 0; i < 30; i++ {
		g.Step(frame)
	}
	world.Scoreboard.Increment()
	world.EndRun()
	oldPlayer := g.Player()

	if !g.Restart() {
		t.Fatal("Restart from game over should succeed")
	}

	if world.State() != game.RunPlaying || world.Speed() == 0 {
		t.Errorf("state=%v speed=%v after restart", world.State(), world.Speed())
	}
	if world.Scoreboard.Score() != 0 || world.Scoreboard.GameOverVisible() {
		t.Errorf("score=%d prompt=%v after restart", world.Scoreboard.Score(), world.Scoreboard.GameOverVisible())
	}
	if n := countWith[*components.ObstacleComponent](em); n != 0 {
		t.Errorf("obstacles after restart = %d", n)
	}
	if n := countWith[*components.GapSensorComponent](em); n != 0 {
		t.Errorf("gap sensors after restart = %d", n)
	}
	if n := countWith[*components.PlayerComponent](em); n != 1 {
		t.Errorf("players after restart = %d, want 1", n)
	}
	if n := countWith[*components.BackgroundTileComponent](em); n != world.Config.Background.Tiles {
		t.Errorf("background tiles after restart = %d", n)
	}
	if em.Exists(oldPlayer) {
		t.Error("old player entity still exists")
	}
	if !em.Exists(g.Ground()) {
		t.Error("ground must survive restart")
	}
	if world.Physics.ActiveContacts() != 0 || world.Physics.Contacts().Len() != 0 {
		t.Error("contacts not cleared on restart")
	}
	// 玩家 + 地面
	if world.Physics.BodyCount() != 2 {
		t.Errorf("physics bodies = %d, want 2", world.Physics.BodyCount())
	}

	g.Step(frame)
	if g.Spawner().Spawned() != 1 {
		t.Errorf("expected immediate spawn after restart, got %d", g.Spawner().Spawned())
	}
}

func TestRestartWhilePlayingIsNoop(t *testing.T) {
	g := newTestGameplay(t)
	g.World().Scoreboard.Increment()
	player := g.Player()

	if g.Restart() {
		t.Error("Restart while playing should report false")
	}
	if g.World().Scoreboard.Score() != 1 || g.Player() != player {
		t.Error("Restart while playing changed the world")
	}
}

func TestTapAfterGameOverRestartsOnNextStep(t *testing.T) {
	g := newTestGameplay(t)
	g.World().EndRun()

	g.Tap()
	g.Step(frame)

	if !g.World().IsPlaying() {
		t.Errorf("state = %v after tap, want playing", g.World().State())
	}
}

func TestPassingGapScoresOnce(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Gravity = 0
	// Intn(2q) 返回 q，jitter 为 0，缝隙正对屏幕中线上的小鸟
	q := cfg.JitterRange()
	g, err := NewGameplay(game.NewGameWorld(cfg), &scriptedRand{values: []int{q}})
	if err != nil {
		t.Fatalf("NewGameplay: %v", err)
	}
	world := g.World()
	em := world.EntityManager

	g.Step(frame)
	gaps := ecs.GetEntitiesWith1[*components.GapSensorComponent](em)
	if len(gaps) != 1 {
		t.Fatalf("gap sensors after first step = %d, want 1", len(gaps))
	}
	gap := gaps[0]
	gapPos, _ := ecs.GetComponent[*components.PositionComponent](em, gap)
	gapBody, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, gap)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](em, g.Player())
	playerBody, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, g.Player())

	overlapped := 0
	for i := 0; i < 200; i++ {
		g.Step(frame)
		if !world.IsPlaying() {
			t.Fatalf("frame %d: run ended inside a centred gap", i)
		}
		inside := physics.Overlaps(playerPos.X, playerPos.Y, playerBody.Width, playerBody.Height,
			gapPos.X, gapPos.Y, gapBody.Width, gapBody.Height)
		if inside {
			overlapped++
			if s := world.Scoreboard.Score(); s != 0 {
				t.Fatalf("frame %d: score %d while still inside the gap", i, s)
			}
		}
		// 缝隙右缘落到小鸟左缘之后即完成通过
		if gapPos.X+gapBody.Width/2 < playerPos.X-playerBody.Width/2-cfg.ScrollSpeed*frame {
			break
		}
	}

	if overlapped == 0 {
		t.Fatal("player never entered the gap")
	}
	if s := world.Scoreboard.Score(); s != 1 {
		t.Errorf("score after one passage = %d, want 1", s)
	}
}
