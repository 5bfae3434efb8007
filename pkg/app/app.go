// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用，
// 终端前端通过 RunTerminal() 驱动同一套玩法。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/embedded"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/scenes"
	"github.com/decker502/flappy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "flappy"

const windowTitle = "Flappy"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用内嵌的 data/game.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用内嵌配置前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	world := game.NewGameWorld(gameConfig)
	scene, err := scenes.NewGameScene(world, NewRand(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		settings:     game.NewSettingsManager(openStorage()),
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 读取游戏配置
//
// path 非空时从磁盘读取；否则读取内嵌的 data/game.yaml；
// 内嵌资源未初始化（例如移动端）时使用默认配置。
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 内嵌资源未初始化，使用默认配置")
		return config.DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取内嵌配置失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置无效: %w", err)
	}
	return cfg, nil
}

// NewRand 根据种子创建随机源，0 表示使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// ApplyWindowSettings 按保存的设置初始化窗口（移动端无需调用）
func (a *App) ApplyWindowSettings() {
	s := a.settings.GetSettings()
	w, h := a.Layout(0, 0)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(w*s.WindowScale, h*s.WindowScale)
	ebiten.SetFullscreen(s.Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			scale := a.settings.GetSettings().WindowScale
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w*scale, h*scale)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w*scale, h*scale)
			a.pendingWindowSizeReset = false
		}
	}

	if !utils.IsMobile() {
		if utils.IsFullscreenToggleJustPressed() {
			a.toggleFullscreen()
		}
		if step := utils.WindowScaleStep(); step != 0 && !ebiten.IsFullscreen() {
			a.stepWindowScale(step)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen F11 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}

	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// stepWindowScale -/= 调整窗口倍率并保存
func (a *App) stepWindowScale(step int) {
	scale, changed := a.settings.StepWindowScale(step)
	if !changed {
		return
	}
	w, h := a.Layout(0, 0)
	ebiten.SetWindowSize(w*scale, h*scale)
	log.Printf("[App] Window scale %dx", scale)

	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回配置中的视口尺寸，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.Viewport.Width), int(a.gameConfig.Viewport.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
