package systems

import (
	"math"

	"github.com/decker502/flappy/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// 终端里小鸟太小时只占一个字符，用字符区分翅膀帧
var wingGlyphs = [...]rune{'^', 'v'}

// TerminalRenderSystem 把世界坐标缩放到终端字符网格上绘制
type TerminalRenderSystem struct {
	world  *game.GameWorld
	screen tcell.Screen
}

// NewTerminalRenderSystem 创建终端渲染系统
func NewTerminalRenderSystem(world *game.GameWorld, screen tcell.Screen) *TerminalRenderSystem {
	return &TerminalRenderSystem{world: world, screen: screen}
}

// Draw 清屏并绘制一帧（不调用 Show）
func (s *TerminalRenderSystem) Draw() {
	cols, rows := s.screen.Size()
	s.screen.Clear()
	if cols <= 0 || rows <= 0 {
		return
	}

	cfg := s.world.Config
	sx := float64(cols) / cfg.Viewport.Width
	sy := float64(rows) / cfg.Viewport.Height

	for _, inst := range collectSprites(s.world.EntityManager) {
		sp := inst.sprite
		x0, x1 := cellSpan(inst.x-sp.Width/2, inst.x+sp.Width/2, sx, cols)
		y0, y1 := cellSpan(inst.y-sp.Height/2, inst.y+sp.Height/2, sy, rows)
		if x0 > x1 || y0 > y1 {
			continue
		}

		style := tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(sp.Color.R), int32(sp.Color.G), int32(sp.Color.B))).
			Foreground(tcell.ColorBlack)
		glyph := sp.Glyph
		if glyph == 0 {
			glyph = ' '
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				g := glyph
				if inst.frame >= 0 {
					g = wingGlyphs[inst.frame%len(wingGlyphs)]
				}
				s.screen.SetContent(x, y, g, nil, style)
			}
		}
	}

	board := s.world.Scoreboard
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	s.drawCentered(board.ScoreText(), 0, cols, labelStyle)
	if board.GameOverVisible() {
		s.drawCentered(board.GameOverText(), rows/2, cols, labelStyle)
	}
}

// cellSpan 把 [lo, hi) 像素区间映射为闭区间的格子下标并裁剪到 [0, limit)
// 至少占一个格子，保证窄物体在低分辨率终端上也可见
func cellSpan(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	if b < a {
		b = a
	}
	if a < 0 {
		a = 0
	}
	if b >= limit {
		b = limit - 1
	}
	return a, b
}

func (s *TerminalRenderSystem) drawCentered(str string, row, cols int, style tcell.Style) {
	runes := []rune(str)
	x := (cols - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		if x+i >= cols {
			break
		}
		s.screen.SetContent(x+i, row, r, nil, style)
	}
}
