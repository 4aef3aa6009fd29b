package scenes

// ChapterBehavior 章节扩展钩子
//
// 章节目前在行为上完全一致，差异只在配置数据（颜色、速度）。
// 需要专属逻辑的章节在此注册钩子，而不是为每个章节建子类型。
// 两个钩子都可为 nil。
type ChapterBehavior struct {
	// OnEnter 在章节场景 Enter 的末尾调用
	OnEnter func(s *ChapterScene)
	// OnUpdate 在章节场景 Update 的末尾调用
	OnUpdate func(s *ChapterScene, deltaTime float64)
}

// chapterBehaviors 按章节编号注册的钩子表
// 默认为空：所有章节走通用逻辑
var chapterBehaviors = map[int]*ChapterBehavior{}

// RegisterChapterBehavior 为指定章节注册扩展钩子
// behavior 为 nil 时移除已注册的钩子
func RegisterChapterBehavior(chapter int, behavior *ChapterBehavior) {
	if behavior == nil {
		delete(chapterBehaviors, chapter)
		return
	}
	chapterBehaviors[chapter] = behavior
}

// behaviorFor 查询章节钩子，未注册返回 nil
func behaviorFor(chapter int) *ChapterBehavior {
	return chapterBehaviors[chapter]
}
