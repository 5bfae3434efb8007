package systems

import (
	"image/color"

	"github.com/decker502/flappy/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	wingColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	labelShadow    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	promptBarColor = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

// RenderSystem 用 ebiten 绘制全部精灵与文字
type RenderSystem struct {
	world *game.GameWorld
	face  text.Face
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(world *game.GameWorld) *RenderSystem {
	return &RenderSystem{
		world: world,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制一帧：精灵按 ZIndex 从低到高，然后分数与结束提示
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, inst := range collectSprites(s.world.EntityManager) {
		sp := inst.sprite
		x := float32(inst.x - sp.Width/2)
		y := float32(inst.y - sp.Height/2)
		vector.DrawFilledRect(screen, x, y, float32(sp.Width), float32(sp.Height), sp.Color, false)

		if inst.frame >= 0 {
			s.drawWing(screen, inst)
		}
	}
	s.drawLabels(screen)
}

// drawWing 第 0 帧翅膀在上，第 1 帧在下
func (s *RenderSystem) drawWing(screen *ebiten.Image, inst spriteInstance) {
	sp := inst.sprite
	w := float32(sp.Width * 0.4)
	h := float32(sp.Height * 0.25)
	x := float32(inst.x-sp.Width/2) + 2
	y := float32(inst.y) - h
	if inst.frame == 1 {
		y = float32(inst.y)
	}
	vector.DrawFilledRect(screen, x, y, w, h, wingColor, false)
}

func (s *RenderSystem) drawLabels(screen *ebiten.Image) {
	cfg := s.world.Config
	board := s.world.Scoreboard
	cx := cfg.Viewport.Width / 2

	s.drawText(screen, board.ScoreText(), cx, 12)

	if board.GameOverVisible() {
		cy := cfg.Viewport.Height / 2
		vector.DrawFilledRect(screen, 0, float32(cy-14), float32(cfg.Viewport.Width), 28, promptBarColor, false)
		s.drawText(screen, board.GameOverText(), cx, cy-7)
	}
}

// drawText 以 (cx, top) 为上边中点绘制带阴影的文字
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, cx, top float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx+1, top+1)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(labelShadow)
	text.Draw(screen, str, s.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx, top)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, str, s.face, op)
}
