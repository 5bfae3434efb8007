package systems

import (
	"log"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/physics"
)

// ContactOutcome 一次接触事件对游戏的影响
type ContactOutcome int

const (
	OutcomeNone       ContactOutcome = iota // 无影响
	OutcomeTerminal                         // 撞到实体，结束本局
	OutcomeScorePoint                       // 穿过缝隙，得一分
)

func (o ContactOutcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTerminal:
		return "terminal"
	case OutcomeScorePoint:
		return "score"
	default:
		return "unknown"
	}
}

// ContactClassifier 把接触事件归类为结束、得分或忽略
//
//   - begin 且双方都不是 Gap：撞到管道或地面 -> Terminal
//   - end 且任一方是 Gap：离开缝隙 -> ScorePoint
//   - 其余情况，以及游戏结束后的一切事件 -> None
//
// 计分放在离开缝隙时而不是进入时，所以在缝隙里撞上管道不会得分。
type ContactClassifier struct {
	world *game.GameWorld
}

// NewContactClassifier 创建分类器
func NewContactClassifier(world *game.GameWorld) *ContactClassifier {
	return &ContactClassifier{world: world}
}

// Classify 对单个事件分类（不修改任何状态）
func (c *ContactClassifier) Classify(ev physics.ContactEvent) ContactOutcome {
	if c.world.IsGameOver() {
		return OutcomeNone
	}
	gap := ev.Involves(components.CategoryGap)
	switch {
	case ev.Kind == physics.ContactBegin && !gap:
		return OutcomeTerminal
	case ev.Kind == physics.ContactEnd && gap:
		return OutcomeScorePoint
	default:
		return OutcomeNone
	}
}

// ContactSystem 消费物理世界产生的接触事件并作用于游戏状态
type ContactSystem struct {
	world      *game.GameWorld
	classifier *ContactClassifier
}

// NewContactSystem 创建接触处理系统
func NewContactSystem(world *game.GameWorld) *ContactSystem {
	return &ContactSystem{
		world:      world,
		classifier: NewContactClassifier(world),
	}
}

// Classifier 返回内部使用的分类器
func (s *ContactSystem) Classifier() *ContactClassifier {
	return s.classifier
}

// Update 按发生顺序处理本帧全部事件
// 同一帧内 Terminal 之后的事件都会被归为 None
func (s *ContactSystem) Update() {
	for _, ev := range s.world.Physics.Contacts().Drain() {
		switch s.classifier.Classify(ev) {
		case OutcomeTerminal:
			log.Printf("[ContactSystem] terminal contact: %s", ev)
			s.world.EndRun()
		case OutcomeScorePoint:
			s.world.Scoreboard.Increment()
			log.Printf("[ContactSystem] passed gap, score=%d", s.world.Scoreboard.Score())
		}
	}
}
