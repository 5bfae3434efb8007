package systems

import (
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/ecs"
)

func TestLifetimeExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1.0})
	sys := NewLifetimeSystem(em)

	sys.Update(0.5)
	if removed := em.RemoveMarkedEntities(); len(removed) != 0 {
		t.Fatalf("entity expired too early: %v", removed)
	}

	sys.Update(0.5)
	removed := em.RemoveMarkedEntities()
	if len(removed) != 1 || removed[0] != id {
		t.Errorf("removed = %v, want [%d]", removed, id)
	}
}

func TestLifetimeFrozenWithZeroDelta(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1.0, CurrentLifetime: 0.9})
	sys := NewLifetimeSystem(em)

	for i := 0; i < 1000; i++ {
		sys.Update(0)
	}
	if removed := em.RemoveMarkedEntities(); len(removed) != 0 {
		t.Error("frozen entity must not expire")
	}
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0.9 {
		t.Errorf("lifetime advanced to %v while frozen", lifetime.CurrentLifetime)
	}
}
