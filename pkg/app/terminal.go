package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

const (
	terminalTick  = 16 * time.Millisecond // ~60 FPS
	terminalFrame = 1.0 / 60
)

// RunTerminal 在终端中运行游戏，直到按下 Esc/Ctrl-C/q 或 ctx 结束
func RunTerminal(ctx context.Context, cfg *config.GameConfig, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	return runTerminal(ctx, screen, cfg, NewRand(seed))
}

// runTerminal 事件循环：输入在独立 goroutine 中读取，逻辑与绘制在 ticker 上执行
func runTerminal(ctx context.Context, screen tcell.Screen, cfg *config.GameConfig, rng systems.RandSource) error {
	// 日志会破坏终端画面
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	world := game.NewGameWorld(cfg)
	gameplay, err := systems.NewGameplay(world, rng)
	if err != nil {
		return err
	}
	renderer := systems.NewTerminalRenderSystem(world, screen)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(terminalTick)
	defer ticker.Stop()

	var mouseDown bool
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return nil
				case ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyUp:
					gameplay.Tap()
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					gameplay.Tap()
				}
			case *tcell.EventMouse:
				pressed := ev.Buttons()&tcell.Button1 != 0
				if pressed && !mouseDown {
					gameplay.Tap()
				}
				mouseDown = pressed
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			gameplay.Step(terminalFrame)
			renderer.Draw()
			screen.Show()
		}
	}
}
