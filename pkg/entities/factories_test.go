package entities

import (
	"math"
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/physics"
)

func newTestEnv() (*ecs.EntityManager, *physics.World, *config.GameConfig) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	return em, physics.NewWorld(em, cfg.Viewport.Width, cfg.Viewport.Height, cfg.Gravity), cfg
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePairLayoutGapIsCentred(t *testing.T) {
	cfg := config.DefaultGameConfig()
	q := cfg.JitterRange()

	for _, jitter := range []int{-q, -37, 0, 1, 58, q - 1} {
		l := ComputePairLayout(cfg, jitter)

		if !approx(l.GapHeight, 4*cfg.Player.Height) {
			t.Errorf("jitter=%d: gap height = %v, want %v", jitter, l.GapHeight, 4*cfg.Player.Height)
		}
		above := l.GapY - l.UpperEdgeY
		below := l.LowerEdgeY - l.GapY
		if !approx(above, below) || !approx(above, l.GapHeight/2) {
			t.Errorf("jitter=%d: gap not centred between pipe edges (%v vs %v)", jitter, above, below)
		}
		if !approx(l.UpperY+cfg.Pipe.Height/2, l.UpperEdgeY) {
			t.Errorf("jitter=%d: upper pipe edge mismatch", jitter)
		}
		if !approx(l.LowerY-cfg.Pipe.Height/2, l.LowerEdgeY) {
			t.Errorf("jitter=%d: lower pipe edge mismatch", jitter)
		}
		if !approx(l.X, cfg.Viewport.Width) {
			t.Errorf("jitter=%d: x = %v, want right edge", jitter, l.X)
		}
	}
}

func TestComputePairLayoutJitterShiftsUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	neutral := ComputePairLayout(cfg, 0)
	raised := ComputePairLayout(cfg, 20)

	if !approx(neutral.GapY, cfg.Viewport.Height/2) {
		t.Errorf("neutral gap y = %v, want %v", neutral.GapY, cfg.Viewport.Height/2)
	}
	if !approx(neutral.GapY-raised.GapY, 20) {
		t.Errorf("positive jitter should move the gap up by 20, moved %v", neutral.GapY-raised.GapY)
	}
	if !approx(neutral.UpperY-raised.UpperY, 20) || !approx(neutral.LowerY-raised.LowerY, 20) {
		t.Error("pipes should move together with the gap")
	}
}

func TestNewObstacleTriple(t *testing.T) {
	em, world, cfg := newTestEnv()

	triple, err := NewObstacleTriple(em, world, cfg, 7, 10)
	if err != nil {
		t.Fatalf("NewObstacleTriple: %v", err)
	}
	if world.BodyCount() != 3 {
		t.Fatalf("registered bodies = %d, want 3", world.BodyCount())
	}

	wantCategory := map[ecs.EntityID]components.Category{
		triple.Upper: components.CategorySolid,
		triple.Lower: components.CategorySolid,
		triple.Gap:   components.CategoryGap,
	}
	for id, cat := range wantCategory {
		body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
		if !ok {
			t.Fatalf("entity %d has no body", id)
		}
		if body.Category != cat {
			t.Errorf("entity %d category = %v, want %v", id, body.Category, cat)
		}
		if body.Dynamic {
			t.Errorf("entity %d should be static", id)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !approx(pos.X, cfg.Viewport.Width) {
			t.Errorf("entity %d x = %v, want %v", id, pos.X, cfg.Viewport.Width)
		}
		life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok || !approx(life.MaxLifetime, cfg.TraversalTime()) {
			t.Errorf("entity %d lifetime missing or wrong", id)
		}
		scroll, ok := ecs.GetComponent[*components.ScrollComponent](em, id)
		if !ok || !approx(scroll.Speed, cfg.ScrollSpeed) {
			t.Errorf("entity %d scroll missing or wrong", id)
		}
	}

	upper, _ := ecs.GetComponent[*components.ObstacleComponent](em, triple.Upper)
	lower, _ := ecs.GetComponent[*components.ObstacleComponent](em, triple.Lower)
	gapPos, _ := ecs.GetComponent[*components.PositionComponent](em, triple.Gap)
	if upper.Part != components.ObstacleUpper || lower.Part != components.ObstacleLower {
		t.Errorf("pipe parts = %v/%v", upper.Part, lower.Part)
	}
	if !approx(gapPos.Y-upper.EdgeY, lower.EdgeY-gapPos.Y) {
		t.Errorf("gap not equidistant from pipe edges: %v vs %v", gapPos.Y-upper.EdgeY, lower.EdgeY-gapPos.Y)
	}
	if upper.PairID != 7 || lower.PairID != 7 {
		t.Errorf("pair id not propagated")
	}
}

func TestNewObstacleTripleRejectsJitterOutOfRange(t *testing.T) {
	em, world, cfg := newTestEnv()
	q := cfg.JitterRange()

	if _, err := NewObstacleTriple(em, world, cfg, 1, q); err == nil {
		t.Error("jitter == q should be rejected")
	}
	if _, err := NewObstacleTriple(em, world, cfg, 1, -q-1); err == nil {
		t.Error("jitter < -q should be rejected")
	}
	if em.EntityCount() != 0 {
		t.Errorf("rejected spawn left %d entities behind", em.EntityCount())
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em, world, cfg := newTestEnv()

	id, err := NewPlayerEntity(em, world, cfg)
	if err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if !approx(pos.X, cfg.Viewport.Width/2) || !approx(pos.Y, cfg.Viewport.Height/2) {
		t.Errorf("player at (%v,%v), want viewport centre", pos.X, pos.Y)
	}
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
	if body.Category != 1 || body.CollisionMask != 3 || body.ContactTestMask != 6 {
		t.Errorf("player masks = %d/%d/%d, want 1/3/6", body.Category, body.CollisionMask, body.ContactTestMask)
	}
	if !body.Dynamic {
		t.Error("player must be dynamic")
	}
	if _, ok := ecs.GetComponent[*components.PlayerComponent](em, id); !ok {
		t.Error("missing PlayerComponent")
	}
	if !world.HasBody(id) {
		t.Error("player body not registered")
	}
}

func TestNewGroundEntity(t *testing.T) {
	em, world, cfg := newTestEnv()

	id, err := NewGroundEntity(em, world, cfg)
	if err != nil {
		t.Fatalf("NewGroundEntity: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)
	if !approx(pos.Y+body.Height/2, cfg.Viewport.Height) {
		t.Errorf("ground bottom = %v, want %v", pos.Y+body.Height/2, cfg.Viewport.Height)
	}
	if !approx(body.Width, cfg.Viewport.Width) || body.Category != components.CategorySolid {
		t.Errorf("ground body = %+v", body)
	}
	_, expires := ecs.GetComponent[*components.LifetimeComponent](em, id)
	_, scrolls := ecs.GetComponent[*components.ScrollComponent](em, id)
	if expires || scrolls {
		t.Error("ground must neither scroll nor expire")
	}
}

func TestNewBackgroundTiles(t *testing.T) {
	em, world, cfg := newTestEnv()

	ids := NewBackgroundTiles(em, cfg)
	if len(ids) != cfg.Background.Tiles {
		t.Fatalf("tiles = %d, want %d", len(ids), cfg.Background.Tiles)
	}
	tw := cfg.Background.TileWidth
	for i, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !approx(pos.X, tw/2+tw*float64(i)) {
			t.Errorf("tile %d x = %v", i, pos.X)
		}
	}
	if world.BodyCount() != 0 {
		t.Error("background tiles must not have bodies")
	}
}
