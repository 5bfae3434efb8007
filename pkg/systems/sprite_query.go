package systems

import (
	"sort"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

// spriteInstance 一个待绘制的精灵
type spriteInstance struct {
	id     ecs.EntityID
	x, y   float64 // 中心
	sprite *components.SpriteComponent
	frame  int // 翅膀动画帧，无动画为 -1
}

// collectSprites 按 ZIndex（相同则按实体ID）排序，跳过隐藏的精灵
func collectSprites(em *ecs.EntityManager) []spriteInstance {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em)
	out := make([]spriteInstance, 0, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Hidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		inst := spriteInstance{id: id, x: pos.X, y: pos.Y, sprite: sprite, frame: -1}
		if anim, ok := ecs.GetComponent[*components.FlapAnimationComponent](em, id); ok {
			inst.frame = anim.Frame
		}
		out = append(out, inst)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].sprite.ZIndex != out[j].sprite.ZIndex {
			return out[i].sprite.ZIndex < out[j].sprite.ZIndex
		}
		return out[i].id < out[j].id
	})
	return out
}
