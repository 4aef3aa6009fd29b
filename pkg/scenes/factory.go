package scenes

import (
	"github.com/flamesco/delta/pkg/config"
	"github.com/flamesco/delta/pkg/game"
)

// MakeChapterFactory 构造章节场景工厂函数
//
// 返回的工厂是确定性的：编号在配置表内（1-4）得到对应命名章节，
// 其余任何编号回退到通用章节配置，永远不会失败。
// 工厂在构造时就把 SceneManager 和 SaveManager 绑定进场景，
// 不存在半初始化的场景实例到达 Enter。
//
// 参数：
//   - sm: 场景管理器
//   - save: 存档管理器（显式传递，场景不访问全局状态）
//   - table: 章节配置表，可为 nil（全部走通用回退）
func MakeChapterFactory(sm *game.SceneManager, save *game.SaveManager, table *config.ChapterTable) game.SceneFactory {
	return func(chapter int) game.Scene {
		return NewChapterScene(sm, save, table.Get(chapter))
	}
}
