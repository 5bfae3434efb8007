package components

// Category 碰撞分类位掩码
//
// 位值固定为 Player=1, Solid=2, Gap=4，物理世界按位与判断。
type Category uint32

const (
	CategoryNone   Category = 0
	CategoryPlayer Category = 1 << 0 // 1
	CategorySolid  Category = 1 << 1 // 2
	CategoryGap    Category = 1 << 2 // 4
)

const (
	// PlayerCollisionMask 玩家与谁发生物理碰撞（与自身位合并后的值为 3）
	// 只有 Solid 会阻挡玩家，Gap 可以穿过
	PlayerCollisionMask = CategoryPlayer | CategorySolid

	// PlayerContactTestMask 玩家与谁产生接触通知
	PlayerContactTestMask = CategorySolid | CategoryGap
)

// Has 判断掩码是否包含给定分类的任意一位
func (c Category) Has(other Category) bool {
	return c&other != 0
}

// String 便于日志输出
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryPlayer:
		return "player"
	case CategorySolid:
		return "solid"
	case CategoryGap:
		return "gap"
	default:
		return "mixed"
	}
}

// PhysicsBodyComponent 定义实体的刚体与碰撞盒
// 碰撞盒以 PositionComponent 为中心
type PhysicsBodyComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）

	Category        Category // 自身分类
	CollisionMask   Category // 与哪些分类发生物理阻挡
	ContactTestMask Category // 与哪些分类产生 begin/end 接触事件

	Dynamic bool    // 是否受重力与冲量影响
	Mass    float64 // 质量，<=0 视为 1

	VX float64 // 水平速度（像素/秒）
	VY float64 // 垂直速度（像素/秒），负值向上
}

// SetVelocity 直接设置速度
func (b *PhysicsBodyComponent) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// ApplyImpulse 施加瞬时冲量，速度变化量 = 冲量 / 质量
func (b *PhysicsBodyComponent) ApplyImpulse(ix, iy float64) {
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.VX += ix / m
	b.VY += iy / m
}
