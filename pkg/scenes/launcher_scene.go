package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/flamesco/delta/pkg/config"
	"github.com/flamesco/delta/pkg/game"
	"github.com/flamesco/delta/pkg/utils"
)

// 启动菜单项索引
const (
	launcherEntryPlay = iota
	launcherEntryErase
	launcherEntryQuit
	launcherEntryCount
)

// 菜单布局常量
const (
	launcherEntryX      = 60
	launcherEntryY      = 160
	launcherEntryStep   = 32
	launcherEntryWidth  = 220
	launcherEntryHeight = 20
)

// LauncherScene 启动菜单场景
//
// 进入游戏循环前的菜单：Play（显示存档章节）、Erase Save、Quit。
// 支持键盘导航（上下 + 确认）和鼠标点击。
// Erase Save 需要连续两次激活才真正重置存档，代替原版启动器的确认弹窗。
//
// 菜单只读写 SaveManager 并驱动场景切换，核心引擎不会反向调用菜单。
type LauncherScene struct {
	sceneManager *game.SceneManager
	saveManager  *game.SaveManager

	selected     int
	confirmErase bool   // Erase Save 等待二次确认
	status       string // 菜单底部的状态提示

	// HandleInput 采集、Update 消费的本帧动作
	pendingActivate int // 待激活的菜单项，-1 表示无
	quitRequested   bool
}

// NewLauncherScene 创建启动菜单场景
func NewLauncherScene(sm *game.SceneManager, save *game.SaveManager) *LauncherScene {
	return &LauncherScene{
		sceneManager:    sm,
		saveManager:     save,
		pendingActivate: -1,
	}
}

// Name 返回场景标识
func (s *LauncherScene) Name() string {
	return "launcher"
}

// Enter 重置菜单状态
func (s *LauncherScene) Enter() {
	s.selected = launcherEntryPlay
	s.confirmErase = false
	s.status = ""
	s.pendingActivate = -1
	log.Printf("[LauncherScene] Entered (saved chapter: %d)", s.saveManager.Data().Chapter)
}

// HandleInput 处理菜单导航、确认与鼠标点击
func (s *LauncherScene) HandleInput(input *utils.InputState) {
	if input.MenuUp {
		s.moveSelection(-1)
	}
	if input.MenuDown {
		s.moveSelection(1)
	}
	if input.Confirm {
		s.pendingActivate = s.selected
	}
	if input.Escape {
		s.quitRequested = true
	}
	if input.Clicked {
		if entry, ok := s.entryAt(input.CursorX, input.CursorY); ok {
			if entry != s.selected {
				s.moveSelectionTo(entry)
			}
			s.pendingActivate = entry
		}
	}
}

// Update 执行本帧激活的菜单项
func (s *LauncherScene) Update(deltaTime float64) {
	if s.quitRequested {
		s.quitRequested = false
		s.sceneManager.Quit()
		return
	}

	entry := s.pendingActivate
	s.pendingActivate = -1
	if entry < 0 {
		return
	}

	switch entry {
	case launcherEntryPlay:
		s.sceneManager.SwitchTo(NewTitleScene(s.sceneManager, s.saveManager))
	case launcherEntryErase:
		s.eraseSave()
	case launcherEntryQuit:
		s.sceneManager.Quit()
	}
}

// eraseSave 两段式存档重置
func (s *LauncherScene) eraseSave() {
	if !s.confirmErase {
		s.confirmErase = true
		s.status = "Erase save? Activate again to confirm."
		return
	}
	s.confirmErase = false
	if err := s.saveManager.Reset(); err != nil {
		log.Printf("[LauncherScene] Erase save failed: %v", err)
		s.status = "Erase failed, see log."
		return
	}
	s.status = "Save data cleared."
}

// Draw 绘制菜单
func (s *LauncherScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 16, B: 28, A: 255})

	ebitenutil.DebugPrintAt(screen, "DELTA ENGINE LAUNCHER", launcherEntryX, 100)

	for i := 0; i < launcherEntryCount; i++ {
		x, y := s.entryPos(i)
		if i == s.selected {
			vector.StrokeRect(screen,
				float32(x-6), float32(y-2),
				launcherEntryWidth, launcherEntryHeight,
				1, color.RGBA{R: 120, G: 30, B: 200, A: 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, s.entryLabel(i), x, y)
	}

	if s.status != "" {
		ebitenutil.DebugPrintAt(screen, s.status, launcherEntryX, config.GameWindowHeight-40)
	}

	// 原版启动器的 "Open Save Dir" 在引擎内没有文件对话框可用，
	// 改为常驻显示存档文件位置
	ebitenutil.DebugPrintAt(screen, s.savePathLabel(), launcherEntryX, config.GameWindowHeight-20)
}

// savePathLabel 返回常驻页脚的存档位置提示
func (s *LauncherScene) savePathLabel() string {
	return fmt.Sprintf("Save file: %s", s.saveManager.Path())
}

// Exit 启动菜单没有需要落盘的状态
func (s *LauncherScene) Exit() error {
	return nil
}

// entryLabel 返回菜单项文本；Play 项显示存档章节
func (s *LauncherScene) entryLabel(entry int) string {
	switch entry {
	case launcherEntryPlay:
		return fmt.Sprintf("Play (Chapter %d)", s.saveManager.Data().Chapter)
	case launcherEntryErase:
		if s.confirmErase {
			return "Erase Save (confirm)"
		}
		return "Erase Save"
	case launcherEntryQuit:
		return "Quit"
	}
	return ""
}

// entryPos 返回菜单项文本的左上角坐标
func (s *LauncherScene) entryPos(entry int) (x, y int) {
	return launcherEntryX, launcherEntryY + entry*launcherEntryStep
}

// entryAt 命中测试：返回坐标所在的菜单项
func (s *LauncherScene) entryAt(cx, cy int) (int, bool) {
	for i := 0; i < launcherEntryCount; i++ {
		x, y := s.entryPos(i)
		if cx >= x-6 && cx < x-6+launcherEntryWidth &&
			cy >= y-2 && cy < y-2+launcherEntryHeight {
			return i, true
		}
	}
	return 0, false
}

// moveSelection 移动选中项（循环），切换选中会取消未完成的擦除确认
func (s *LauncherScene) moveSelection(delta int) {
	s.moveSelectionTo((s.selected + delta + launcherEntryCount) % launcherEntryCount)
}

func (s *LauncherScene) moveSelectionTo(entry int) {
	if entry == s.selected {
		return
	}
	s.selected = entry
	s.confirmErase = false
	s.status = ""
}
