package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/flamesco/delta/pkg/config"
	"github.com/flamesco/delta/pkg/game"
	"github.com/flamesco/delta/pkg/utils"
)

// 调试字体的字符尺寸（ebitenutil.DebugPrint）
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

// titleLogoText 标题画面的 Logo 文字
const titleLogoText = "DELTA ENGINE"

// TitleScene 标题场景
//
// 显示 Logo 并累计停留时间，超过 config.TitleAdvanceDelay 后自动切换到
// 存档记录的章节（"继续上次进度"）。计时完全由传入的 deltaTime 驱动，
// 无随机性，转场在一次生命周期内恰好触发一次。
// 按确认键可跳过等待直接进入章节。
type TitleScene struct {
	sceneManager *game.SceneManager
	saveManager  *game.SaveManager

	timer         float64 // 已停留时间（秒）
	advanced      bool    // 是否已触发转场
	skipRequested bool    // 本帧确认键跳过标志

	logoImage *ebiten.Image // 延迟构建的 Logo 离屏图（仅在 Draw 中创建）
}

// NewTitleScene 创建标题场景
func NewTitleScene(sm *game.SceneManager, save *game.SaveManager) *TitleScene {
	return &TitleScene{
		sceneManager: sm,
		saveManager:  save,
	}
}

// Name 返回场景标识
func (s *TitleScene) Name() string {
	return "title"
}

// Enter 重置停留计时
func (s *TitleScene) Enter() {
	s.timer = 0
	s.advanced = false
	log.Printf("[TitleScene] Entered (saved chapter: %d)", s.saveManager.Data().Chapter)
}

// HandleInput 记录跳过请求，由同一帧的 Update 消费
func (s *TitleScene) HandleInput(input *utils.InputState) {
	if input.Confirm {
		s.skipRequested = true
	}
}

// Update 累计停留时间并在超时（或跳过）后切换到存档章节
func (s *TitleScene) Update(deltaTime float64) {
	s.timer += deltaTime

	skip := s.skipRequested
	s.skipRequested = false

	if s.advanced {
		return
	}
	if s.timer > config.TitleAdvanceDelay || skip {
		s.advanced = true
		s.sceneManager.LoadChapter(s.saveManager.Data().Chapter)
	}
}

// Draw 绘制黑底紫色 Logo 和继续提示
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Logo 用调试字体绘制到离屏图再放大，避免引入字体资源
	if s.logoImage == nil {
		w := len(titleLogoText)*debugCharWidth + 2
		s.logoImage = ebiten.NewImage(w, debugLineHeight+2)
		ebitenutil.DebugPrint(s.logoImage, titleLogoText)
	}

	const logoScale = 4.0
	logoW := float64(s.logoImage.Bounds().Dx()) * logoScale
	logoH := float64(s.logoImage.Bounds().Dy()) * logoScale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(logoScale, logoScale)
	op.GeoM.Translate(
		(config.GameWindowWidth-logoW)/2,
		(config.GameWindowHeight-logoH)/2,
	)
	// 原版的紫色 (120, 30, 200)
	op.ColorScale.Scale(120.0/255.0, 30.0/255.0, 200.0/255.0, 1)
	screen.DrawImage(s.logoImage, op)

	// 继续提示闪烁
	if math.Mod(s.timer, 1.0) < 0.6 {
		hint := fmt.Sprintf("Continuing chapter %d...", s.saveManager.Data().Chapter)
		x := (config.GameWindowWidth - len(hint)*debugCharWidth) / 2
		ebitenutil.DebugPrintAt(screen, hint, x, config.GameWindowHeight-40)
	}
}

// Exit 标题场景没有需要落盘的状态
func (s *TitleScene) Exit() error {
	return nil
}
