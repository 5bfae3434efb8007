package scenes

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/ecs"
	"github.com/decker502/flappy/pkg/game"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type zeroRand struct{}

func (zeroRand) Intn(n int) int { return n / 2 }

func newTestScene(t *testing.T) *GameScene {
	t.Helper()
	scene, err := NewGameScene(game.NewGameWorld(config.DefaultGameConfig()), zeroRand{})
	if err != nil {
		t.Fatalf("NewGameScene: %v", err)
	}
	return scene
}

func TestGameSceneImplementsScene(t *testing.T) {
	var _ Scene = newTestScene(t)
}

func TestGameSceneTapFlaps(t *testing.T) {
	scene := newTestScene(t)
	taps := 0
	scene.tapped = func() bool {
		taps++
		return taps == 1
	}

	scene.Update(1.0 / 60)

	em := scene.Gameplay().World().EntityManager
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, scene.Gameplay().Player())
	if body.VY >= 0 {
		t.Errorf("player should be moving up after a tap, vy=%v", body.VY)
	}

	for i := 0; i < 5; i++ {
		scene.Update(1.0 / 60)
	}
	if taps != 6 {
		t.Errorf("tap source polled %d times, want 6", taps)
	}
}

func TestGameSceneGameOverTapRestarts(t *testing.T) {
	scene := newTestScene(t)
	scene.tapped = func() bool { return false }
	world := scene.Gameplay().World()

	for i := 0; i < 240 && world.IsPlaying(); i++ {
		scene.Update(1.0 / 60)
	}
	if !world.IsGameOver() {
		t.Fatal("run should end when the player hits the ground")
	}

	scene.tapped = func() bool { return true }
	scene.Update(1.0 / 60)
	if !world.IsPlaying() {
		t.Error("tap after game over should start a new run")
	}
}
