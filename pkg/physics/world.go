// Package physics 是游戏核心依赖的 2D 物理协作者
//
// 它按分类位掩码管理刚体：对动态刚体积分重力与速度，借助 resolv 的空间哈希
// 找出重叠的碰撞盒，把相邻两帧的重叠集合做差得到 begin/end 接触事件，
// 最后把动态刚体从其 CollisionMask 内的刚体中推出。
//
// 坐标系为屏幕坐标（Y 轴向下）。
package physics

import (
	"log"
	"math"
	"sort"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/solarlune/resolv"
)

// 每个分类对应一个 resolv 标签，接触测试按标签筛选候选形状
var (
	tagPlayer = resolv.NewTag("player")
	tagSolid  = resolv.NewTag("solid")
	tagGap    = resolv.NewTag("gap")
)

var categoryTags = []struct {
	category components.Category
	tag      resolv.Tags
}{
	{components.CategoryPlayer, tagPlayer},
	{components.CategorySolid, tagSolid},
	{components.CategoryGap, tagGap},
}

const cellSize = 32

type contactKey struct {
	a, b ecs.EntityID // a < b
}

func makeKey(a, b ecs.EntityID) contactKey {
	if a > b {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

// World 物理世界
type World struct {
	em      *ecs.EntityManager
	space   *resolv.Space
	queue   *ContactQueue
	gravity float64

	// 视口外也要能检测碰撞（小鸟可以飞出屏幕顶部），
	// 因此 resolv 空间比视口大一圈，世界坐标加上偏移后再写入形状。
	offsetX, offsetY float64

	shapes   map[ecs.EntityID]resolv.IShape
	owners   map[resolv.IShape]ecs.EntityID
	contacts map[contactKey]ContactEvent
}

// NewWorld 创建覆盖给定视口的物理世界
//
// 参数:
//   - em: 实体管理器，刚体数据来自 PositionComponent 与 PhysicsBodyComponent
//   - viewportWidth, viewportHeight: 视口尺寸（像素）
//   - gravity: 向下的重力加速度（像素/秒²）
func NewWorld(em *ecs.EntityManager, viewportWidth, viewportHeight, gravity float64) *World {
	spaceW := int(math.Ceil(viewportWidth * 3))
	spaceH := int(math.Ceil(viewportHeight * 3))
	return &World{
		em:       em,
		space:    resolv.NewSpace(spaceW, spaceH, cellSize, cellSize),
		queue:    NewContactQueue(),
		gravity:  gravity,
		offsetX:  viewportWidth,
		offsetY:  viewportHeight,
		shapes:   make(map[ecs.EntityID]resolv.IShape),
		owners:   make(map[resolv.IShape]ecs.EntityID),
		contacts: make(map[contactKey]ContactEvent),
	}
}

// Contacts 返回接触事件队列
func (w *World) Contacts() *ContactQueue {
	return w.queue
}

// Gravity 返回重力加速度
func (w *World) Gravity() float64 {
	return w.gravity
}

// BodyCount 已注册的刚体数量
func (w *World) BodyCount() int {
	return len(w.shapes)
}

// HasBody 实体是否已注册刚体
func (w *World) HasBody(id ecs.EntityID) bool {
	_, ok := w.shapes[id]
	return ok
}

// AddBody 为已拥有 PositionComponent 与 PhysicsBodyComponent 的实体注册碰撞形状
func (w *World) AddBody(id ecs.EntityID) bool {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		return false
	}
	body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
	if !ok {
		return false
	}
	if old, exists := w.shapes[id]; exists {
		w.space.Remove(old)
		delete(w.owners, old)
	}

	// 形状原点取盒子中心，与 PositionComponent 一致
	shape := resolv.NewRectangle(pos.X+w.offsetX, pos.Y+w.offsetY, body.Width, body.Height)
	for _, ct := range categoryTags {
		if body.Category.Has(ct.category) {
			shape.Tags().Set(ct.tag)
		}
	}
	w.space.Add(shape)
	w.shapes[id] = shape
	w.owners[shape] = id
	return true
}

// RemoveBody 移除刚体，与它相关的接触记录被直接丢弃（不产生 end 事件）
func (w *World) RemoveBody(id ecs.EntityID) {
	shape, ok := w.shapes[id]
	if !ok {
		return
	}
	w.space.Remove(shape)
	delete(w.shapes, id)
	delete(w.owners, shape)
	for key := range w.contacts {
		if key.a == id || key.b == id {
			delete(w.contacts, key)
		}
	}
}

// RemoveBodies 批量移除，通常传入 EntityManager.RemoveMarkedEntities 的返回值
func (w *World) RemoveBodies(ids []ecs.EntityID) {
	for _, id := range ids {
		w.RemoveBody(id)
	}
}

// ActiveContacts 当前处于重叠状态的接触对数量
func (w *World) ActiveContacts() int {
	return len(w.contacts)
}

// ClearContacts 一次性丢弃全部接触记录和尚未消费的事件
func (w *World) ClearContacts() {
	w.contacts = make(map[contactKey]ContactEvent)
	w.queue.Clear()
}

// Step 推进物理世界 dt 秒
func (w *World) Step(dt float64) {
	w.integrate(dt)
	w.syncShapes()
	current := w.detectContacts()
	w.emitContactChanges(current)
	w.resolvePenetrations()
}

// integrate 对动态刚体做半隐式欧拉积分
func (w *World) integrate(dt float64) {
	for id := range w.shapes {
		body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
		if !ok || !body.Dynamic {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if !ok {
			continue
		}
		body.VY += w.gravity * dt
		pos.X += body.VX * dt
		pos.Y += body.VY * dt
	}
}

// syncShapes 把组件位置写回 resolv 形状（滚动系统直接修改 PositionComponent）
func (w *World) syncShapes() {
	for id, shape := range w.shapes {
		pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if !ok {
			continue
		}
		shape.SetPosition(pos.X+w.offsetX, pos.Y+w.offsetY)
	}
}

// detectContacts 找出本帧所有重叠的接触对
// 只有 ContactTestMask 非零的刚体发起测试，对方分类必须落在掩码内。
// resolv 的空间哈希只负责挑出候选，是否重叠按两个 AABB 判断：
// 它的相交测试只看边是否相交，一个盒子完全落在另一个盒子里时会漏报。
func (w *World) detectContacts() map[contactKey]ContactEvent {
	current := make(map[contactKey]ContactEvent)
	for id, shape := range w.shapes {
		body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, id)
		if !ok || body.ContactTestMask == components.CategoryNone {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
		if !ok {
			continue
		}
		for _, ct := range categoryTags {
			if !body.ContactTestMask.Has(ct.category) {
				continue
			}
			shape.SelectTouchingCells(1).FilterShapes().ByTags(ct.tag).ForEach(func(candidate resolv.IShape) bool {
				otherID, known := w.owners[candidate]
				if !known || otherID == id {
					return true
				}
				key := makeKey(id, otherID)
				if _, seen := current[key]; seen {
					return true
				}
				other, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, otherID)
				if !ok {
					return true
				}
				otherPos, ok := ecs.GetComponent[*components.PositionComponent](w.em, otherID)
				if !ok || !Overlaps(pos.X, pos.Y, body.Width, body.Height, otherPos.X, otherPos.Y, other.Width, other.Height) {
					return true
				}
				current[key] = ContactEvent{
					A:         id,
					B:         otherID,
					CategoryA: body.Category,
					CategoryB: other.Category,
				}
				return true
			})
		}
	}
	return current
}

// emitContactChanges 与上一帧的接触集合做差，产生 begin/end 事件
func (w *World) emitContactChanges(current map[contactKey]ContactEvent) {
	for _, key := range sortedKeys(current) {
		if _, existed := w.contacts[key]; existed {
			continue
		}
		ev := current[key]
		ev.Kind = ContactBegin
		log.Printf("[Physics] contact %s", ev)
		w.queue.Push(ev)
	}
	for _, key := range sortedKeys(w.contacts) {
		if _, still := current[key]; still {
			continue
		}
		ev := w.contacts[key]
		ev.Kind = ContactEnd
		log.Printf("[Physics] contact %s", ev)
		w.queue.Push(ev)
	}
	w.contacts = current
}

// resolvePenetrations 把动态刚体从阻挡它的刚体中沿最小穿透轴推出
func (w *World) resolvePenetrations() {
	for _, key := range sortedKeys(w.contacts) {
		w.separate(key.a, key.b)
		w.separate(key.b, key.a)
	}
}

func (w *World) separate(moverID, blockerID ecs.EntityID) {
	mover, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, moverID)
	if !ok || !mover.Dynamic {
		return
	}
	blocker, ok := ecs.GetComponent[*components.PhysicsBodyComponent](w.em, blockerID)
	if !ok || !mover.CollisionMask.Has(blocker.Category) {
		return
	}
	mp, ok1 := ecs.GetComponent[*components.PositionComponent](w.em, moverID)
	bp, ok2 := ecs.GetComponent[*components.PositionComponent](w.em, blockerID)
	if !ok1 || !ok2 {
		return
	}

	dx, dy := Penetration(mp.X, mp.Y, mover.Width, mover.Height, bp.X, bp.Y, blocker.Width, blocker.Height)
	if dx == 0 && dy == 0 {
		return
	}
	if math.Abs(dy) <= math.Abs(dx) {
		mp.Y += dy
		if dy*mover.VY < 0 {
			mover.VY = 0
		}
	} else {
		mp.X += dx
		if dx*mover.VX < 0 {
			mover.VX = 0
		}
	}
	if shape, ok := w.shapes[moverID]; ok {
		shape.SetPosition(mp.X+w.offsetX, mp.Y+w.offsetY)
	}
}

// Penetration 计算把盒子 A 推出盒子 B 所需的最小位移（两个轴各自的分量）
// 两盒不重叠时返回 (0, 0)
func Penetration(ax, ay, aw, ah, bx, by, bw, bh float64) (float64, float64) {
	overlapX := (aw+bw)/2 - math.Abs(ax-bx)
	overlapY := (ah+bh)/2 - math.Abs(ay-by)
	if overlapX <= 0 || overlapY <= 0 {
		return 0, 0
	}
	dx := overlapX
	if ax < bx {
		dx = -overlapX
	}
	dy := overlapY
	if ay < by {
		dy = -overlapY
	}
	return dx, dy
}

// Overlaps 两个中心盒子是否有面积重叠（只共享边不算）
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	dx, dy := Penetration(ax, ay, aw, ah, bx, by, bw, bh)
	return dx != 0 || dy != 0
}

func sortedKeys(m map[contactKey]ContactEvent) []contactKey {
	keys := make([]contactKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	return keys
}
