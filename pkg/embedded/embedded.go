// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets embed.FS) {
	assetsFS = assets
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// Open 打开嵌入的资源文件
// 路径必须以 "assets/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)
	if !strings.HasPrefix(path, "assets/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return assetsFS.Open(path)
}

// ReadFile 读取嵌入的资源文件内容
// 路径必须以 "assets/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)
	if !strings.HasPrefix(path, "assets/") {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return assetsFS.ReadFile(path)
}

// normalize 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
