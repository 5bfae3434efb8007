package components

import "image/color"

// SpriteComponent 实体的视觉表现
//
// 资源加载不在本项目范围内，渲染系统直接绘制纯色矩形；
// Glyph 供终端前端使用。
type SpriteComponent struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Glyph  rune
	ZIndex int // 越大越靠前
	Hidden bool
}
