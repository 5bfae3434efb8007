package systems

import (
	"math"
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

func TestFlapAnimationAlternates(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.FlapAnimationComponent{FrameCount: 2, FrameTime: 0.1})
	sys := NewFlapAnimationSystem(em)
	anim, _ := ecs.GetComponent[*components.FlapAnimationComponent](em, id)

	sys.Update(0.05)
	if anim.Frame != 0 {
		t.Fatalf("frame = %d before first switch, want 0", anim.Frame)
	}
	sys.Update(0.1)
	if anim.Frame != 1 || math.Abs(anim.Elapsed-0.05) > 1e-9 {
		t.Fatalf("frame=%d elapsed=%v, want 1/0.05", anim.Frame, anim.Elapsed)
	}
	sys.Update(0.1)
	if anim.Frame != 0 {
		t.Errorf("frame = %d, want 0 after wrapping", anim.Frame)
	}

	sys.Update(0)
	if anim.Frame != 0 {
		t.Error("frozen animation must not advance")
	}
}
