package scenes

import (
	"github.com/decker502/flappy/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay inside this package.
type Scene = game.Scene
