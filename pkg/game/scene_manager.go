package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/flamesco/delta/pkg/utils"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定章节的场景，避免 game 与 scenes 包的循环依赖
type SceneFactory func(chapter int) Scene

// SceneManager manages the game's high-level state by controlling which
// scene is active. It ensures only one scene receives HandleInput, Update
// and Draw at any given time, and runs transitions in a strict
// Exit-before-Enter order.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory

	// 同一次 Update 内最多执行一次切换
	inUpdate bool
	switched bool

	quitRequested bool
	shutdownDone  bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置章节场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// CurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// SwitchTo replaces the active scene with the provided one.
//
// The outgoing scene's Exit runs to completion strictly before the
// incoming scene's Enter. An Exit error (failed save write) is logged and
// the transition proceeds best-effort: losing the frame of progress is
// better than leaving the player stuck mid-transition.
//
// When called from within a scene's Update, the switch takes effect
// immediately, so the current frame draws the incoming scene's first
// frame. At most one switch per Update call is honored; further requests
// in the same frame are ignored with a log line.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == nil {
		log.Printf("[SceneManager] Ignoring switch to nil scene")
		return
	}
	if sm.inUpdate && sm.switched {
		log.Printf("[SceneManager] Ignoring extra transition to %q (one per frame)", scene.Name())
		return
	}

	if sm.currentScene != nil {
		if err := sm.currentScene.Exit(); err != nil {
			log.Printf("[SceneManager] Scene %q exit failed: %v (continuing)", sm.currentScene.Name(), err)
		}
	}

	sm.currentScene = scene
	sm.currentScene.Enter()
	if sm.inUpdate {
		sm.switched = true
	}
	log.Printf("[SceneManager] Switched to scene %q", scene.Name())
}

// LoadChapter 加载指定章节的场景
// 章节编号不合法时工厂会回退到通用章节，切换永远不会失败
func (sm *SceneManager) LoadChapter(chapter int) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory not set, cannot load chapter %d", chapter)
		return
	}
	sm.SwitchTo(sm.sceneFactory(chapter))
}

// Quit 请求结束游戏循环
// 由场景（启动菜单的 Quit 项）或窗口关闭处理调用，下一次循环检查时生效
func (sm *SceneManager) Quit() {
	sm.quitRequested = true
}

// QuitRequested 返回是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update dispatches the per-frame input snapshot and then advances the
// active scene. deltaTime is the elapsed time in seconds. If no scene is
// active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64, input *utils.InputState) {
	if sm.currentScene == nil {
		return
	}
	sm.inUpdate = true
	sm.switched = false
	sm.currentScene.HandleInput(input)
	sm.currentScene.Update(deltaTime)
	sm.inUpdate = false
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Shutdown 在游戏循环结束时调用，确保当前场景的 Exit 被执行、
// 进度在进程退出前落盘
//
// 幂等：重复调用只会执行一次 Exit。
//
// 返回：
//   - error: 场景退出时的存档写入错误，调用方据此决定退出码
func (sm *SceneManager) Shutdown() error {
	if sm.shutdownDone || sm.currentScene == nil {
		return nil
	}
	sm.shutdownDone = true

	scene := sm.currentScene
	sm.currentScene = nil
	if err := scene.Exit(); err != nil {
		return err
	}
	log.Printf("[SceneManager] Shutdown complete, scene %q committed", scene.Name())
	return nil
}
