package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// androidDataRoot Android 应用私有数据目录
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前准备设置目录
//
// gdata 在 Android 上写入 /data/data/{包名}/settings，但不会创建该目录；
// 其他平台由 gdata 自行处理。
func EnsureStorageDir() error {
	if runtime.GOOS != "android" {
		return nil
	}
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("read process name: %w", err)
	}
	dir, err := SettingsDir(cmdline)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// SettingsDir 由 /proc/self/cmdline 的内容得到 Android 设置目录
// cmdline 以 NUL 分隔参数，应用进程的第一个参数就是包名
func SettingsDir(cmdline []byte) (string, error) {
	first, _, _ := bytes.Cut(cmdline, []byte{0})
	pkg := strings.TrimSpace(string(first))
	if pkg == "" || strings.ContainsAny(pkg, `/\`) || pkg == "." || pkg == ".." {
		return "", fmt.Errorf("unexpected process name %q", pkg)
	}
	return filepath.Join(androidDataRoot, pkg, "settings"), nil
}
