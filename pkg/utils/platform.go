package utils

import (
	"os"
	"runtime"
)

// mobileEmulateEnv 设为 1 时在桌面上按移动端处理（本地调试触屏行为）
const mobileEmulateEnv = "FLAPPY_MOBILE_EMULATE"

// IsMobile 是否运行在触屏设备上
// 移动端没有窗口，全屏与窗口缩放快捷键都不生效
func IsMobile() bool {
	switch runtime.GOOS {
	case "android", "ios":
		return true
	}
	return os.Getenv(mobileEmulateEnv) == "1"
}
