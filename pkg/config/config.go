package config

// 窗口与帧循环常量

const (
	// GameWindowWidth 游戏窗口逻辑宽度（像素）
	GameWindowWidth = 600

	// GameWindowHeight 游戏窗口逻辑高度（像素）
	GameWindowHeight = 400

	// GameWindowTitle 窗口标题
	GameWindowTitle = "DELTA ENGINE - Flames Co. Edition"

	// TitleAdvanceDelay 标题场景自动进入章节的等待时间（秒）
	TitleAdvanceDelay float64 = 2.0

	// DefaultChapter 新存档的初始章节
	DefaultChapter = 1

	// DefaultPlayerX 新存档的玩家初始 X 坐标
	DefaultPlayerX float64 = 50

	// DefaultPlayerY 新存档的玩家初始 Y 坐标
	DefaultPlayerY float64 = 50

	// PlayerWidth 玩家矩形宽度（像素）
	PlayerWidth float64 = 16

	// PlayerHeight 玩家矩形高度（像素）
	PlayerHeight float64 = 24

	// DefaultChapterSpeed 章节未配置移动速度时的默认值（像素/秒）
	DefaultChapterSpeed float64 = 120
)
