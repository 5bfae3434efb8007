package components

// PlayerComponent 玩家（小鸟）标记组件
type PlayerComponent struct{}

// GroundComponent 地面标记组件，地面在重开时不会被移除
type GroundComponent struct{}
