// verify_gameplay 无窗口地运行若干帧玩法，打印分数与状态变化
//
// 用于快速验证配置改动后游戏是否仍可玩：
//
//	go run ./cmd/verify_gameplay -frames 3600 -seed 1 -autopilot
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", config.DefaultConfigPath, "游戏配置文件路径")
	frames     = flag.Int("frames", 3600, "模拟帧数（60 帧 = 1 秒）")
	seed       = flag.Int64("seed", 1, "随机种子")
	autopilot  = flag.Bool("autopilot", true, "自动振翅，尽量穿过缝隙")
	restart    = flag.Bool("restart", true, "结束后自动重新开始")
)

const frame = 1.0 / 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	world := game.NewGameWorld(cfg)
	gameplay, err := systems.NewGameplay(world, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Printf("❌ 初始化失败: %v\n", err)
		os.Exit(1)
	}

	runs, best := 1, 0
	state := world.State()
	for i := 0; i < *frames; i++ {
		if *autopilot && world.IsPlaying() && shouldFlap(world, gameplay.Player()) {
			gameplay.Tap()
		}
		if *restart && world.IsGameOver() {
			gameplay.Tap()
			runs++
		}
		gameplay.Step(frame)

		if world.Scoreboard.Score() > best {
			best = world.Scoreboard.Score()
		}
		if world.State() != state {
			state = world.State()
			fmt.Printf("[%6.2fs] %-9s score=%d\n", float64(i+1)*frame, state, world.Scoreboard.Score())
		}
	}

	fmt.Printf("✅ %d 帧完成: runs=%d best=%d current=%d state=%s entities=%d bodies=%d\n",
		*frames, runs, best, world.Scoreboard.Score(), world.State(),
		world.EntityManager.EntityCount(), world.Physics.BodyCount())
}

// shouldFlap 小鸟低于前方最近缝隙的中心且正在下落时振翅
func shouldFlap(world *game.GameWorld, player ecs.EntityID) bool {
	em := world.EntityManager
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, player)
	if !ok {
		return false
	}
	body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](em, player)
	if !ok || body.VY < 0 {
		return false
	}

	targetY := world.Config.Viewport.Height / 2
	nearest := -1.0
	for _, id := range ecs.GetEntitiesWith2[*components.GapSensorComponent, *components.PositionComponent](em) {
		gp, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		// 已经飞过的缝隙不再考虑
		if gp.X+world.Config.Pipe.Width/2 < pos.X-body.Width/2 {
			continue
		}
		if nearest < 0 || gp.X < nearest {
			nearest = gp.X
			targetY = gp.Y + world.Config.GapHeight()/4
		}
	}
	return pos.Y > targetY
}
