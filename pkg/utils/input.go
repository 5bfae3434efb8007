// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tapKeys 键盘上等同于点击屏幕的按键
var tapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyArrowUp}

// IsTapJustPressed 本帧是否发生了一次“点击”
// 触摸、鼠标左键、空格/回车/上方向键都算
func IsTapJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	for _, k := range tapKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// IsFullscreenToggleJustPressed F11 切换全屏
func IsFullscreenToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}

// WindowScaleStep 本帧的窗口缩放调整：=/+ 放大返回 1，- 缩小返回 -1，否则 0
func WindowScaleStep() int {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		return 1
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		return -1
	}
	return 0
}
