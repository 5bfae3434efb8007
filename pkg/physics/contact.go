package physics

import (
	"fmt"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

// ContactKind 接触事件类型
type ContactKind int

const (
	ContactBegin ContactKind = iota // 两个碰撞盒开始重叠
	ContactEnd                      // 两个碰撞盒完全分离
)

func (k ContactKind) String() string {
	if k == ContactBegin {
		return "begin"
	}
	return "end"
}

// ContactEvent 一次接触状态变化，携带双方实体和分类
type ContactEvent struct {
	Kind      ContactKind
	A, B      ecs.EntityID
	CategoryA components.Category
	CategoryB components.Category
}

func (e ContactEvent) String() string {
	return fmt.Sprintf("%s(%s#%d, %s#%d)", e.Kind, e.CategoryA, e.A, e.CategoryB, e.B)
}

// Involves 判断事件任一方是否属于给定分类
func (e ContactEvent) Involves(c components.Category) bool {
	return e.CategoryA.Has(c) || e.CategoryB.Has(c)
}

// ContactQueue 物理步进产生的接触事件队列
// 物理世界只负责追加，分类器在同一帧内取走
type ContactQueue struct {
	events []ContactEvent
}

// NewContactQueue 创建空队列
func NewContactQueue() *ContactQueue {
	return &ContactQueue{events: make([]ContactEvent, 0, 8)}
}

// Push 追加事件
func (q *ContactQueue) Push(ev ContactEvent) {
	q.events = append(q.events, ev)
}

// Drain 取出并清空所有事件，保持产生顺序
func (q *ContactQueue) Drain() []ContactEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]ContactEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len 队列中待处理事件数
func (q *ContactQueue) Len() int {
	return len(q.events)
}

// Clear 丢弃所有待处理事件
func (q *ContactQueue) Clear() {
	q.events = q.events[:0]
}
