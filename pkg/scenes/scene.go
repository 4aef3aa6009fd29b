package scenes

import (
	"github.com/flamesco/delta/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations in this package implement the game.Scene interface.
type Scene = game.Scene
