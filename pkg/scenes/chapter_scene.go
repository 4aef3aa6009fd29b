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

// ChapterScene 章节场景
//
// 单一参数化类型承载所有章节：颜色、速度等差异来自 ChapterConfig，
// 需要特殊逻辑的章节通过 ChapterBehavior 钩子扩展，不使用子类层次。
//
// 玩家矩形在 Enter 时从存档恢复位置，在 Exit 时把章节编号和位置
// 写回存档并立即落盘。
type ChapterScene struct {
	sceneManager *game.SceneManager
	saveManager  *game.SaveManager
	cfg          config.ChapterConfig
	behavior     *ChapterBehavior // 可为 nil

	playerX float64
	playerY float64

	// HandleInput 采集、Update 消费的每帧输入状态
	moveX           float64
	moveY           float64
	escapeRequested bool
}

// NewChapterScene 创建章节场景
// 场景在构造时完成与管理器的绑定，Enter 之前即为完整状态
func NewChapterScene(sm *game.SceneManager, save *game.SaveManager, cfg config.ChapterConfig) *ChapterScene {
	return &ChapterScene{
		sceneManager: sm,
		saveManager:  save,
		cfg:          cfg,
		behavior:     behaviorFor(cfg.ID),
	}
}

// Name 返回场景标识，如 "chapter-2"
func (s *ChapterScene) Name() string {
	return fmt.Sprintf("chapter-%d", s.cfg.ID)
}

// Config 返回章节配置
func (s *ChapterScene) Config() config.ChapterConfig {
	return s.cfg
}

// PlayerPosition 返回玩家矩形左上角坐标
func (s *ChapterScene) PlayerPosition() (x, y float64) {
	return s.playerX, s.playerY
}

// SetPlayerPosition 移动玩家矩形（供 ChapterBehavior 钩子使用）
func (s *ChapterScene) SetPlayerPosition(x, y float64) {
	s.playerX = x
	s.playerY = y
}

// Enter 从存档恢复玩家位置
func (s *ChapterScene) Enter() {
	data := s.saveManager.Data()
	s.playerX = data.Player.X
	s.playerY = data.Player.Y
	log.Printf("[ChapterScene] Entered %s at (%.1f, %.1f)", s.Name(), s.playerX, s.playerY)

	if s.behavior != nil && s.behavior.OnEnter != nil {
		s.behavior.OnEnter(s)
	}
}

// HandleInput 把输入快照折算为移动轴和转场标志，由同一帧的 Update 消费
func (s *ChapterScene) HandleInput(input *utils.InputState) {
	s.moveX = input.AxisX()
	s.moveY = input.AxisY()
	if input.Escape {
		s.escapeRequested = true
	}
}

// Update 处理转场请求并推进玩家移动
func (s *ChapterScene) Update(deltaTime float64) {
	if s.escapeRequested {
		s.escapeRequested = false
		s.sceneManager.SwitchTo(NewTitleScene(s.sceneManager, s.saveManager))
		return
	}

	// 每轴位移 = 轴向(-1/0/+1) * 速度 * dt。
	// 对角线移动不做向量归一化，比单轴快 √2 倍——沿用原版的手感，
	// 是已知且可复现的特性而非待修复的缺陷。
	s.playerX += s.moveX * s.cfg.Speed * deltaTime
	s.playerY += s.moveY * s.cfg.Speed * deltaTime

	// 玩家矩形不出窗口
	s.playerX = clamp(s.playerX, 0, config.GameWindowWidth-config.PlayerWidth)
	s.playerY = clamp(s.playerY, 0, config.GameWindowHeight-config.PlayerHeight)

	if s.behavior != nil && s.behavior.OnUpdate != nil {
		s.behavior.OnUpdate(s, deltaTime)
	}
}

// Draw 绘制章节背景、玩家矩形和章节名称
func (s *ChapterScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: s.cfg.Color.R, G: s.cfg.Color.G, B: s.cfg.Color.B, A: 255})

	vector.DrawFilledRect(screen,
		float32(s.playerX), float32(s.playerY),
		float32(config.PlayerWidth), float32(config.PlayerHeight),
		color.White, false)

	ebitenutil.DebugPrintAt(screen, s.cfg.Name, 4, 4)
}

// Exit 把章节编号和玩家位置写回存档并落盘
// 返回的写入错误由调用方（SceneManager）上报
func (s *ChapterScene) Exit() error {
	s.saveManager.SetProgress(s.cfg.ID, s.playerX, s.playerY)
	if err := s.saveManager.Save(); err != nil {
		return fmt.Errorf("failed to commit %s progress: %w", s.Name(), err)
	}
	log.Printf("[ChapterScene] %s committed at (%.1f, %.1f)", s.Name(), s.playerX, s.playerY)
	return nil
}

// clamp 把 v 限制在 [min, max]
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
