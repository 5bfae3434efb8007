package game

import "fmt"

// GameOverText 游戏结束时显示的提示
const GameOverText = "Game Over! Tap anywhere to play again!"

// Scoreboard 分数与状态提示
// 分数只增不减，只有 Reset 会归零
type Scoreboard struct {
	score           int
	gameOverVisible bool
}

// NewScoreboard 创建分数为 0 的计分板
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Increment 加一分
func (s *Scoreboard) Increment() {
	s.score++
}

// Reset 分数归零
func (s *Scoreboard) Reset() {
	s.score = 0
}

// Score 当前分数
func (s *Scoreboard) Score() int {
	return s.score
}

// ShowGameOver 显示结束提示
func (s *Scoreboard) ShowGameOver() {
	s.gameOverVisible = true
}

// HideGameOver 隐藏结束提示
func (s *Scoreboard) HideGameOver() {
	s.gameOverVisible = false
}

// GameOverVisible 结束提示是否可见
func (s *Scoreboard) GameOverVisible() bool {
	return s.gameOverVisible
}

// ScoreText 分数标签文字
func (s *Scoreboard) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.score)
}

// GameOverText 结束提示文字，不可见时为空串
func (s *Scoreboard) GameOverText() string {
	if !s.gameOverVisible {
		return ""
	}
	return GameOverText
}
