package components

// FlapAnimationComponent 小鸟翅膀上下两帧的循环动画
type FlapAnimationComponent struct {
	Frame      int     // 当前帧：0 翅膀向上，1 翅膀向下
	FrameCount int     // 总帧数
	FrameTime  float64 // 每帧持续时间（秒）
	Elapsed    float64
}
