// Package scenes 提供 ebiten 前端使用的场景
package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/systems"
	"github.com/decker502/flappy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var clearColor = color.RGBA{R: 112, G: 197, B: 206, A: 255}

// GameScene 唯一的游戏场景：没有菜单，启动即开始
type GameScene struct {
	gameplay *systems.Gameplay
	renderer *systems.RenderSystem

	// tapped 每帧查询一次是否有点击，默认读取 ebiten 输入
	tapped func() bool
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 游戏世界，由调用方持有
//   - rng: 管道竖直偏移的随机源
func NewGameScene(world *game.GameWorld, rng systems.RandSource) (*GameScene, error) {
	gameplay, err := systems.NewGameplay(world, rng)
	if err != nil {
		return nil, fmt.Errorf("create gameplay: %w", err)
	}
	return &GameScene{
		gameplay: gameplay,
		renderer: systems.NewRenderSystem(world),
		tapped:   utils.IsTapJustPressed,
	}, nil
}

// Gameplay 返回场景驱动的玩法
func (s *GameScene) Gameplay() *systems.Gameplay {
	return s.gameplay
}

// Update 读取点击并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if s.tapped != nil && s.tapped() {
		s.gameplay.Tap()
	}
	s.gameplay.Step(deltaTime)
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	s.renderer.Draw(screen)
}
