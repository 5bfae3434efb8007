package components

// ScrollComponent 标记随场景向左滚动的实体（背景、障碍物、缝隙）
// 实际位移 = Speed * 世界速度倍率 * dt
type ScrollComponent struct {
	Speed float64 // 像素/秒
}

// BackgroundTileComponent 循环滚动的背景瓦片
// 每移动一个瓦片宽度就跳回原位，多张瓦片首尾相接形成无缝滚动
type BackgroundTileComponent struct {
	Index     int
	TileWidth float64
	Travelled float64 // 本轮已移动距离
}
