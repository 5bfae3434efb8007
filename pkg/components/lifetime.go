package components

// LifetimeComponent 定时自动销毁
// 障碍物和缝隙在生成时按"穿越时间"设定寿命，到期后由 LifetimeSystem 标记删除。
// 寿命跟随场景时钟推进：游戏结束冻结画面时寿命也一起冻结。
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
