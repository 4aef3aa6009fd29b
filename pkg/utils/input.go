// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入快照
//
// 场景不直接轮询全局键盘状态，而是每帧由主循环采集一次快照并
// 传入 HandleInput，使场景逻辑与输入子系统解耦、可离线测试。
type InputState struct {
	// 持续按住的方向键（WASD 或方向键）
	Left, Right, Up, Down bool

	// 本帧刚按下的边沿事件
	Escape  bool // Esc：章节返回标题 / 退出启动菜单
	Confirm bool // Enter 或空格：菜单确认、跳过标题等待

	// 菜单导航边沿事件（W/S 或上下方向键刚按下）
	MenuUp, MenuDown bool

	// 鼠标状态（用于启动菜单的按钮点击）
	CursorX, CursorY int
	Clicked          bool // 鼠标左键本帧刚按下
}

// ReadInputState 采集当前帧的输入快照
// 每个 tick 只应调用一次，由 App.Update 负责
func ReadInputState() *InputState {
	state := &InputState{
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Escape:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Confirm:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		MenuUp:   inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		MenuDown: inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Clicked:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	state.CursorX, state.CursorY = ebiten.CursorPosition()
	return state
}

// AxisX 返回水平移动轴：左 -1、右 +1、无/同时按下为 0
func (s *InputState) AxisX() float64 {
	axis := 0.0
	if s.Left {
		axis -= 1
	}
	if s.Right {
		axis += 1
	}
	return axis
}

// AxisY 返回垂直移动轴：上 -1、下 +1、无/同时按下为 0
// 坐标系 Y 轴向下，与屏幕坐标一致
func (s *InputState) AxisY() float64 {
	axis := 0.0
	if s.Up {
		axis -= 1
	}
	if s.Down {
		axis += 1
	}
	return axis
}
