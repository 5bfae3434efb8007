package components

// ObstaclePart 区分一对管道中的上下两根
type ObstaclePart int

const (
	ObstacleUpper ObstaclePart = iota // 从屏幕顶部垂下的管道
	ObstacleLower                     // 从底部升起的管道
)

func (p ObstaclePart) String() string {
	if p == ObstacleUpper {
		return "upper"
	}
	return "lower"
}

// ObstacleComponent 管道
type ObstacleComponent struct {
	PairID int
	Part   ObstaclePart
	// EdgeY 管口（朝向缝隙的一端）的 Y 坐标
	EdgeY float64
}

// GapSensorComponent 计分用的缝隙感应区，不参与物理阻挡
type GapSensorComponent struct {
	PairID int
	Height float64
}
