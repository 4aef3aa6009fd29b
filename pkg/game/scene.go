package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/flamesco/delta/pkg/utils"
)

// Scene represents one mode of interaction (launcher menu, title screen,
// gameplay chapter). Each scene owns its update and rendering logic and
// goes through a fixed lifecycle driven by the SceneManager:
//
//	Enter -> (HandleInput -> Update -> Draw)* -> Exit
//
// A scene instance is active at most once; re-entering a mode creates a
// fresh instance.
type Scene interface {
	// Name returns a stable identifier for the scene variant,
	// e.g. "title" or "chapter-2". Used for logging and tests.
	Name() string

	// Enter is called exactly once when the scene becomes active.
	// It initializes scene-local state (timers, positions).
	Enter()

	// HandleInput receives the per-frame input snapshot before Update.
	// It may set flags that Update consumes in the same frame.
	HandleInput(input *utils.InputState)

	// Update advances the scene logic. deltaTime is the time elapsed
	// since the last update in seconds. A scene may request at most one
	// transition per Update call via the SceneManager.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen. It must not mutate
	// gameplay state; render-only resources (cached offscreen images)
	// may be built lazily here, since Draw is the only lifecycle method
	// guaranteed to run with a live graphics context.
	Draw(screen *ebiten.Image)

	// Exit is called exactly once when the scene stops being active,
	// either through a transition or at shutdown. It commits scene-local
	// state into the save record; the returned error is the save-write
	// error, if any. Exit completes before the next scene's Enter runs.
	Exit() error
}
