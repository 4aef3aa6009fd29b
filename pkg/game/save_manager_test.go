package game

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// newTestSaveManager 在临时目录创建存档管理器
func newTestSaveManager(t *testing.T) *SaveManager {
	t.Helper()
	return NewSaveManager(filepath.Join(t.TempDir(), "delta_save.yaml"))
}

// TestLoadMissingFile 测试存档缺失时返回默认数据且不报错
func TestLoadMissingFile(t *testing.T) {
	sm := newTestSaveManager(t)

	data := sm.Load()

	if data.Chapter != 1 {
		t.Errorf("Chapter: got %d, want 1", data.Chapter)
	}
	if data.Player.X != 50 || data.Player.Y != 50 {
		t.Errorf("Player: got (%v, %v), want (50, 50)", data.Player.X, data.Player.Y)
	}
}

// TestLoadCorruptFile 测试存档内容损坏时回退到默认数据
func TestLoadCorruptFile(t *testing.T) {
	sm := newTestSaveManager(t)
	if err := os.WriteFile(sm.Path(), []byte("{{{{ not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	data := sm.Load()

	if data.Chapter != 1 {
		t.Errorf("Chapter: got %d, want 1", data.Chapter)
	}
	if data.Player.X != 50 || data.Player.Y != 50 {
		t.Errorf("Player: got (%v, %v), want (50, 50)", data.Player.X, data.Player.Y)
	}
}

// TestLoadNormalizesInvalidChapter 测试非法章节编号被归一化为 1
func TestLoadNormalizesInvalidChapter(t *testing.T) {
	sm := newTestSaveManager(t)
	raw := "chapter: 0\nplayer:\n  x: 12\n  y: 34\n"
	if err := os.WriteFile(sm.Path(), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	data := sm.Load()

	if data.Chapter != 1 {
		t.Errorf("Chapter: got %d, want 1", data.Chapter)
	}
	// 位置字段仍然沿用文件内容
	if data.Player.X != 12 || data.Player.Y != 34 {
		t.Errorf("Player: got (%v, %v), want (12, 34)", data.Player.X, data.Player.Y)
	}
}

// TestSaveLoadRoundTrip 测试写入后重新加载得到相同数据
func TestSaveLoadRoundTrip(t *testing.T) {
	sm := newTestSaveManager(t)
	sm.SetProgress(3, 12.5, 99)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded := NewSaveManager(sm.Path()).Load()

	if reloaded.Chapter != 3 {
		t.Errorf("Chapter: got %d, want 3", reloaded.Chapter)
	}
	if reloaded.Player.X != 12.5 || reloaded.Player.Y != 99 {
		t.Errorf("Player: got (%v, %v), want (12.5, 99)", reloaded.Player.X, reloaded.Player.Y)
	}
}

// TestWriteLoadIdempotent 测试 write(load()) 不改变磁盘内容
func TestWriteLoadIdempotent(t *testing.T) {
	sm := newTestSaveManager(t)
	sm.SetProgress(2, 50, 50)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	first, err := os.ReadFile(sm.Path())
	if err != nil {
		t.Fatal(err)
	}

	other := NewSaveManager(sm.Path())
	other.Load()
	if err := other.Save(); err != nil {
		t.Fatalf("Save() after Load() error = %v", err)
	}
	second, err := os.ReadFile(sm.Path())
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("disk content changed:\nbefore: %q\nafter:  %q", first, second)
	}
}

// TestReset 测试重置存档并立即落盘
func TestReset(t *testing.T) {
	sm := newTestSaveManager(t)
	sm.SetProgress(4, 200, 300)
	if err := sm.Save(); err != nil {
		t.Fatal(err)
	}

	if err := sm.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if sm.Data().Chapter != 1 {
		t.Errorf("Chapter after reset: got %d, want 1", sm.Data().Chapter)
	}
	// 落盘的也必须是默认数据
	reloaded := NewSaveManager(sm.Path()).Load()
	if reloaded.Chapter != 1 || reloaded.Player.X != 50 || reloaded.Player.Y != 50 {
		t.Errorf("persisted reset: got chapter %d player (%v, %v)",
			reloaded.Chapter, reloaded.Player.X, reloaded.Player.Y)
	}
}

// TestSaveFailureSurfaced 测试写入失败向调用方返回错误
func TestSaveFailureSurfaced(t *testing.T) {
	// 路径指向一个不存在的目录
	sm := NewSaveManager(filepath.Join(t.TempDir(), "missing", "dir", "save.yaml"))
	if err := sm.Save(); err == nil {
		t.Error("Save() into a missing directory should fail")
	}
}

// TestDefaultPath 测试空路径回退到默认存档路径
func TestDefaultPath(t *testing.T) {
	sm := NewSaveManager("")
	if sm.Path() != DefaultSavePath {
		t.Errorf("Path: got %q, want %q", sm.Path(), DefaultSavePath)
	}
}
