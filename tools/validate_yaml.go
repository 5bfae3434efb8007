package main

import (
	"fmt"
	"os"

	"github.com/decker502/flappy/pkg/config"
)

// 检查 data/game.yaml 并打印派生参数
//
//	go run tools/validate_yaml.go [path]
func main() {
	path := config.DefaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", path)
	fmt.Printf("✅ 视口 %.0fx%.0f，滚动速度 %.0f px/s\n", cfg.Viewport.Width, cfg.Viewport.Height, cfg.ScrollSpeed)
	fmt.Printf("✅ 生成间隔 %.2fs，管道寿命 %.2fs\n", cfg.SpawnInterval(), cfg.TraversalTime())
	fmt.Printf("✅ 缝隙高度 %.0f，竖直偏移范围 [%d, %d)\n", cfg.GapHeight(), -cfg.JitterRange(), cfg.JitterRange())
}
