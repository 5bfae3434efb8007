package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/flappy/pkg/app"
	"github.com/decker502/flappy/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内嵌的 data/game.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	tty        = flag.Bool("tty", false, "在终端中运行")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	if *tty {
		runTerminal()
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}
	gameApp.ApplyWindowSettings()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

func runTerminal() {
	if !*verbose {
		log.SetFlags(0)
	}
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunTerminal(ctx, cfg, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "终端运行失败: %v\n", err)
		os.Exit(1)
	}
}
