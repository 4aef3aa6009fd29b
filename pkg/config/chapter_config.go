package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChapterColor 章节背景色（RGB，0-255）
type ChapterColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// ChapterConfig 单个章节的配置数据
type ChapterConfig struct {
	ID    int          `yaml:"id"`    // 章节编号，从 1 开始
	Name  string       `yaml:"name"`  // 章节名称，如 "Chapter One"
	Color ChapterColor `yaml:"color"` // 章节背景色
	Speed float64      `yaml:"speed"` // 玩家移动速度（像素/秒），默认 DefaultChapterSpeed
}

// ChapterTable 章节配置表
// 表中未定义的章节编号由 GenericChapterConfig 推导，查询永远不会失败
type ChapterTable struct {
	Chapters []ChapterConfig `yaml:"chapters"`
}

// LoadChapterTable 从 YAML 数据解析章节配置表
//
// 参数：
//   - data: chapters.yaml 的文件内容
//
// 返回：
//   - *ChapterTable: 解析后的配置表
//   - error: 如果解析失败或包含非法章节编号返回错误
func LoadChapterTable(data []byte) (*ChapterTable, error) {
	var table ChapterTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse chapter table YAML: %w", err)
	}

	// 应用默认值并验证
	for i := range table.Chapters {
		ch := &table.Chapters[i]
		if ch.ID < 1 {
			return nil, fmt.Errorf("invalid chapter id %d (must be >= 1)", ch.ID)
		}
		if ch.Name == "" {
			ch.Name = fmt.Sprintf("Chapter %d", ch.ID)
		}
		if ch.Speed <= 0 {
			ch.Speed = DefaultChapterSpeed
		}
	}

	return &table, nil
}

// Get 查询指定章节的配置
// 未配置的编号回退到 GenericChapterConfig；nil 表同样回退。
// 查询永远成功，损坏的章节编号不会导致场景构建失败。
func (t *ChapterTable) Get(id int) ChapterConfig {
	if t != nil {
		for _, ch := range t.Chapters {
			if ch.ID == id {
				return ch
			}
		}
	}
	return GenericChapterConfig(id)
}

// GenericChapterConfig 推导通用章节配置
// 背景色沿用原版的占位公式 (50n, 20n, 60n)，超出 255 的分量截断
func GenericChapterConfig(id int) ChapterConfig {
	n := id
	if n < 1 {
		n = DefaultChapter
	}
	return ChapterConfig{
		ID:   id,
		Name: fmt.Sprintf("Chapter %d", id),
		Color: ChapterColor{
			R: clampColorByte(50 * n),
			G: clampColorByte(20 * n),
			B: clampColorByte(60 * n),
		},
		Speed: DefaultChapterSpeed,
	}
}

// clampColorByte 将颜色分量截断到 0-255
func clampColorByte(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
