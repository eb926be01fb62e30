package badger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hhan593/SwarmDrop/internal/core/storage/engine"
)

// testEngine 创建测试用引擎
// 使用 t.TempDir() 创建临时目录，确保测试与生产一致
func testEngine(t *testing.T) *Engine {
	t.Helper()

	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "test.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	t.Cleanup(func() {
		if err := e.Close(); err != nil {
			t.Errorf("failed to close engine: %v", err)
		}
	})

	return e
}

func TestEngine_PutGet(t *testing.T) {
	e := testEngine(t)

	key := []byte("test-key")
	value := []byte("test-value")

	if err := e.Put(key, value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := e.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get returned %q, want %q", got, value)
	}
}

func TestEngine_GetNotFound(t *testing.T) {
	e := testEngine(t)

	_, err := e.Get([]byte("nonexistent"))
	if !engine.IsNotFound(err) {
		t.Errorf("Get returned error %v, want ErrNotFound", err)
	}
}

func TestEngine_DeleteAndHas(t *testing.T) {
	e := testEngine(t)

	key := []byte("delete-key")
	if err := e.Put(key, []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ok, err := e.Has(key)
	if err != nil || !ok {
		t.Fatalf("Has = %v, %v; want true, nil", ok, err)
	}

	if err := e.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	ok, err = e.Has(key)
	if err != nil || ok {
		t.Fatalf("Has after delete = %v, %v; want false, nil", ok, err)
	}

	// 删除不存在的键是幂等的
	if err := e.Delete(key); err != nil {
		t.Errorf("Delete of missing key returned %v", err)
	}
}

func TestEngine_EmptyKey(t *testing.T) {
	e := testEngine(t)

	if err := e.Put(nil, []byte("v")); err != engine.ErrEmptyKey {
		t.Errorf("Put(nil) = %v, want ErrEmptyKey", err)
	}
	if _, err := e.Get(nil); err != engine.ErrEmptyKey {
		t.Errorf("Get(nil) = %v, want ErrEmptyKey", err)
	}
}

func TestEngine_Closed(t *testing.T) {
	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "closed.db"))
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// 重复关闭是安全的
	if err := e.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}

	if _, err := e.Get([]byte("k")); !engine.IsClosed(err) {
		t.Errorf("Get after close = %v, want ErrClosed", err)
	}
}

func TestEngine_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	e, err := New(engine.DefaultConfig(path))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	if err := e.Put([]byte("k"), []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	e2, err := New(engine.DefaultConfig(path))
	if err != nil {
		t.Fatalf("failed to reopen engine: %v", err)
	}
	defer e2.Close()

	got, err := e2.Get([]byte("k"))
	if err != nil || string(got) != "v" {
		t.Errorf("Get after reopen = %q, %v; want v, nil", got, err)
	}
}
