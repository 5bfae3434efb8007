package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 嵌入资源中默认配置的路径
const DefaultConfigPath = "data/game.yaml"

// ViewportConfig 逻辑屏幕尺寸（像素）
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 小鸟尺寸与质量
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// PipeConfig 单根管道尺寸
type PipeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundConfig 地面厚度
type GroundConfig struct {
	Thickness float64 `yaml:"thickness"`
}

// BackgroundConfig 循环背景
type BackgroundConfig struct {
	TileWidth float64 `yaml:"tileWidth"`
	Tiles     int     `yaml:"tiles"`
}

// GameConfig 整局游戏的可调参数
//
// 所有参数在一局内保持不变（没有难度递增）。
type GameConfig struct {
	Viewport    ViewportConfig   `yaml:"viewport"`
	ScrollSpeed float64          `yaml:"scrollSpeed"` // 像素/秒
	Gravity     float64          `yaml:"gravity"`     // 像素/秒²，向下为正
	FlapImpulse float64          `yaml:"flapImpulse"` // 向上冲量的大小
	Player      PlayerConfig     `yaml:"player"`
	Pipe        PipeConfig       `yaml:"pipe"`
	Ground      GroundConfig     `yaml:"ground"`
	Background  BackgroundConfig `yaml:"background"`

	FlapFrameTime float64 `yaml:"flapFrameTime"` // 翅膀动画每帧时长（秒）

	// PauseSpawningOnGameOver 游戏结束后是否停止生成新管道
	// 关闭后会持续生成被冻结在屏幕外的管道，直到重开
	PauseSpawningOnGameOver bool `yaml:"pauseSpawningOnGameOver"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Viewport:    ViewportConfig{Width: 320, Height: 480},
		ScrollSpeed: 100,
		Gravity:     900,
		FlapImpulse: 300,
		Player:      PlayerConfig{Width: 34, Height: 24, Mass: 1},
		Pipe:        PipeConfig{Width: 52, Height: 320},
		Ground:      GroundConfig{Thickness: 1},
		Background:  BackgroundConfig{TileWidth: 320, Tiles: 3},

		FlapFrameTime:           0.1,
		PauseSpawningOnGameOver: true,
	}
}

// ParseGameConfig 解析 YAML，未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 从磁盘文件加载配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 检查配置的有效性
func (c *GameConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"scrollSpeed", c.ScrollSpeed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.mass", c.Player.Mass},
		{"pipe.width", c.Pipe.Width},
		{"pipe.height", c.Pipe.Height},
		{"ground.thickness", c.Ground.Thickness},
		{"background.tileWidth", c.Background.TileWidth},
		{"flapFrameTime", c.FlapFrameTime},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be > 0, got %v", p.name, p.value)
		}
	}

	if c.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %v", c.Gravity)
	}
	if c.FlapImpulse < 0 {
		return fmt.Errorf("flapImpulse must be >= 0, got %v", c.FlapImpulse)
	}
	if c.Background.Tiles < 1 {
		return fmt.Errorf("background.tiles must be >= 1, got %d", c.Background.Tiles)
	}
	if c.JitterRange() < 1 {
		return fmt.Errorf("viewport.height %v too small for pipe jitter", c.Viewport.Height)
	}
	if c.GapHeight() >= c.Viewport.Height {
		return fmt.Errorf("gap height %v (4 x player.height) must be smaller than viewport.height %v",
			c.GapHeight(), c.Viewport.Height)
	}
	return nil
}

// SpawnInterval 两对管道之间的生成间隔（秒）= 半屏宽 / 滚动速度
func (c *GameConfig) SpawnInterval() float64 {
	return c.Viewport.Width / 2 / c.ScrollSpeed
}

// TraversalTime 管道从右边缘移动到完全离开左边缘的时间（秒）
// 移动距离为两倍屏宽
func (c *GameConfig) TraversalTime() float64 {
	return c.Viewport.Width * 2 / c.ScrollSpeed
}

// GapHeight 上下管口之间的缝隙高度 = 4 倍小鸟高度
func (c *GameConfig) GapHeight() float64 {
	return c.Player.Height * 4
}

// JitterRange 管道随机偏移的半幅（取整），偏移取值区间为 [-JitterRange, +JitterRange)
func (c *GameConfig) JitterRange() int {
	return int(c.Viewport.Height / 4)
}
