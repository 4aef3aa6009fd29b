package game

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flamesco/delta/pkg/config"
)

// DefaultSavePath 默认存档路径（相对工作目录）
const DefaultSavePath = "delta_save.yaml"

// PlayerState 玩家位置
type PlayerState struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SaveData 存档数据结构
//
// 保存内容：
//   - 当前章节编号（>= 1）
//   - 玩家位置
//
// 存档以 YAML 格式写入固定路径，便于人工阅读和调试。
// 只在场景退出（Exit）边界被修改，修改后立即写盘。
type SaveData struct {
	Chapter int         `yaml:"chapter"` // 章节编号，如 2
	Player  PlayerState `yaml:"player"`  // 玩家位置
}

// DefaultSaveData 返回新存档的默认数据
func DefaultSaveData() *SaveData {
	return &SaveData{
		Chapter: config.DefaultChapter,
		Player: PlayerState{
			X: config.DefaultPlayerX,
			Y: config.DefaultPlayerY,
		},
	}
}

// SaveManager 存档管理器
//
// 职责：
//   - 加载和保存游戏进度
//   - 存档缺失或损坏时回退到默认数据
//
// 架构说明：
//   - 不是单例：实例由 App 创建后显式传入各场景，
//     使所有修改点可审计
//   - 读取永远成功（损坏数据记录日志并替换为默认值），
//     写入失败向调用方报告，静默丢失进度比报错更糟
type SaveManager struct {
	path string    // 存档文件路径
	data *SaveData // 当前存档数据
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - path: 存档文件路径，空字符串使用 DefaultSavePath
func NewSaveManager(path string) *SaveManager {
	if path == "" {
		path = DefaultSavePath
	}
	return &SaveManager{
		path: path,
		data: DefaultSaveData(),
	}
}

// Path 返回存档文件路径
func (sm *SaveManager) Path() string {
	return sm.path
}

// Data 返回当前存档数据
func (sm *SaveManager) Data() *SaveData {
	return sm.data
}

// Load 从文件加载存档并返回
//
// 永远不会失败：文件缺失、读取失败或内容损坏时记录日志并使用
// 默认数据 {chapter:1, player:(50,50)}。章节编号 < 1 会被归一化为 1。
func (sm *SaveManager) Load() *SaveData {
	raw, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[SaveManager] No save file at %s, starting fresh", sm.path)
		} else {
			log.Printf("[SaveManager] Failed to read save file %s: %v (using defaults)", sm.path, err)
		}
		sm.data = DefaultSaveData()
		return sm.data
	}

	var data SaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Printf("[SaveManager] Save file %s is corrupt: %v (using defaults)", sm.path, err)
		sm.data = DefaultSaveData()
		return sm.data
	}

	if data.Chapter < 1 {
		log.Printf("[SaveManager] Save has invalid chapter %d, falling back to %d", data.Chapter, config.DefaultChapter)
		data.Chapter = config.DefaultChapter
	}

	sm.data = &data
	return sm.data
}

// Save 将存档写入文件
//
// 整体覆盖写入：先写临时文件再重命名，失败的写入不会破坏旧存档。
//
// 返回：
//   - error: 写入失败时返回错误，由调用方决定如何上报
func (sm *SaveManager) Save() error {
	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	tmpPath := sm.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmpPath, sm.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// SetProgress 更新章节与玩家位置（仅内存，需调用 Save() 落盘）
// 只应在场景 Exit 边界调用
func (sm *SaveManager) SetProgress(chapter int, x, y float64) {
	sm.data.Chapter = chapter
	sm.data.Player.X = x
	sm.data.Player.Y = y
}

// Reset 将存档重置为默认数据并立即写盘
// 供启动菜单的 "Erase Save" 使用
func (sm *SaveManager) Reset() error {
	sm.data = DefaultSaveData()
	if err := sm.Save(); err != nil {
		return fmt.Errorf("failed to reset save: %w", err)
	}
	log.Printf("[SaveManager] Save data reset to defaults")
	return nil
}
