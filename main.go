package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/flamesco/delta/pkg/app"
	"github.com/flamesco/delta/pkg/config"
	"github.com/flamesco/delta/pkg/embedded"
)

func main() {
	nosplash := flag.Bool("nosplash", false, "skip the launcher menu and start at the title screen")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS)

	// 显示/输入初始化失败没有可行的恢复手段，直接带诊断退出
	game, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		SkipLauncher: *nosplash,
	})
	if err != nil {
		reportFatal(os.Stderr, "failed to initialize: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	// 关闭请求由 App.Update 处理，保证退出前场景状态先落盘
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		reportFatal(os.Stderr, "display failure: %v", err)
		os.Exit(1)
	}

	// 正常退出路径：提交当前场景，最终存档写入失败以非零码退出
	if err := game.Shutdown(); err != nil {
		reportFatal(os.Stderr, "failed to save progress on exit: %v", err)
		os.Exit(1)
	}
}

// reportFatal 输出致命诊断
//
// 非 -verbose 模式下包级 logger 被重定向到 io.Discard（见 app.NewApp），
// 致命错误必须绕过它直接写 stderr，否则进程会无声地以非零码退出。
func reportFatal(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "delta: "+format+"\n", args...)
}
