// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：main 只负责解析命令行、
// 设置窗口并调用 ebiten.RunGame。
package app

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/flamesco/delta/pkg/config"
	"github.com/flamesco/delta/pkg/embedded"
	"github.com/flamesco/delta/pkg/game"
	"github.com/flamesco/delta/pkg/scenes"
	"github.com/flamesco/delta/pkg/utils"
)

// chapterTablePath 嵌入的章节配置表路径
const chapterTablePath = "assets/config/chapters.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkipLauncher 跳过启动菜单，直接进入标题场景（--nosplash）
	SkipLauncher bool
	// SavePath 存档文件路径，为空使用默认路径
	SavePath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// 帧循环是单线程协作式的：每个 tick 采集一次输入快照、推进当前场景、
// 绘制一帧。帧率控制交给 Ebitengine 的固定 60 Hz tick（领先时休眠），
// deltaTime 为固定的 1/60 秒。
type App struct {
	sceneManager    *game.SceneManager
	saveManager     *game.SaveManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载章节配置表；失败时回退到运行时推导的通用章节
	var chapterTable *config.ChapterTable
	if data, err := embedded.ReadFile(chapterTablePath); err != nil {
		log.Printf("[App] Warning: chapter table unavailable: %v (using generic chapters)", err)
	} else if chapterTable, err = config.LoadChapterTable(data); err != nil {
		log.Printf("[App] Warning: chapter table invalid: %v (using generic chapters)", err)
		chapterTable = nil
	}

	// 加载存档（缺失/损坏时内部回退到默认值）
	saveManager := game.NewSaveManager(cfg.SavePath)
	saveManager.Load()
	log.Printf("[App] Save loaded: chapter %d", saveManager.Data().Chapter)

	// 初始化全局设置存储；gdata 打开失败走降级模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "delta_engine"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: settings init: %v", err)
	}
	if settingsManager.Fullscreen() {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器并绑定章节工厂
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.MakeChapterFactory(sceneManager, saveManager, chapterTable))

	// 启动场景：默认进启动菜单，--nosplash 直接进标题
	if cfg.SkipLauncher {
		sceneManager.SwitchTo(scenes.NewTitleScene(sceneManager, saveManager))
	} else {
		sceneManager.SwitchTo(scenes.NewLauncherScene(sceneManager, saveManager))
	}

	return &App{
		sceneManager:    sceneManager,
		saveManager:     saveManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭请求走统一的退出路径，保证当前场景先提交状态
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Quit()
	}

	// F11 切换全屏并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Failed to persist fullscreen setting: %v", err)
		}
	}

	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}

	input := utils.ReadInputState()
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime, input)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 在游戏循环结束后调用，提交当前场景的状态
//
// 返回：
//   - error: 最终存档写入失败时返回错误，main 据此以非零码退出
func (a *App) Shutdown() error {
	return a.sceneManager.Shutdown()
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}
