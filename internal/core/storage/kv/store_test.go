package kv

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hhan593/SwarmDrop/internal/core/storage/engine"
	"github.com/hhan593/SwarmDrop/internal/core/storage/engine/badger"
)

// testEngine 创建测试用引擎
// 使用 t.TempDir() 创建临时目录，确保测试与生产一致
func testEngine(t *testing.T) engine.InternalEngine {
	t.Helper()

	cfg := engine.DefaultConfig(filepath.Join(t.TempDir(), "test.db"))
	eng, err := badger.New(cfg)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	t.Cleanup(func() {
		if err := eng.Close(); err != nil {
			t.Errorf("failed to close engine: %v", err)
		}
	})

	return eng
}

// ============= 基础操作测试 =============

func TestStore_PutGet(t *testing.T) {
	s := New(testEngine(t), []byte("test/"))

	key := []byte("key1")
	value := []byte("value1")

	if err := s.Put(key, value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get returned %q, want %q", got, value)
	}
}

func TestStore_PrefixIsolation(t *testing.T) {
	eng := testEngine(t)
	a := New(eng, []byte("a/"))
	b := New(eng, []byte("b/"))

	if err := a.PutString([]byte("k"), "from-a"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := b.Get([]byte("k")); !engine.IsNotFound(err) {
		t.Errorf("b.Get = %v, want ErrNotFound", err)
	}

	// 底层引擎可见带前缀的键
	raw, err := eng.Get([]byte("a/k"))
	if err != nil || string(raw) != "from-a" {
		t.Errorf("engine.Get(a/k) = %q, %v", raw, err)
	}
}

func TestStore_DeleteHas(t *testing.T) {
	s := New(testEngine(t), []byte("c/"))

	if err := s.PutString([]byte("k"), "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if ok, _ := s.Has([]byte("k")); !ok {
		t.Fatal("Has = false after Put")
	}
	if err := s.Delete([]byte("k")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ok, _ := s.Has([]byte("k")); ok {
		t.Fatal("Has = true after Delete")
	}
	if _, err := s.GetString([]byte("k")); !engine.IsNotFound(err) {
		t.Errorf("GetString after Delete = %v, want ErrNotFound", err)
	}
}

func TestStore_EmptyKey(t *testing.T) {
	s := New(testEngine(t), []byte("c/"))

	if err := s.Put(nil, []byte("v")); err != engine.ErrEmptyKey {
		t.Errorf("Put(nil) = %v, want ErrEmptyKey", err)
	}
	if _, err := s.Has(nil); err != engine.ErrEmptyKey {
		t.Errorf("Has(nil) = %v, want ErrEmptyKey", err)
	}
}

// ============= 并发测试 =============

func TestStore_Concurrent(t *testing.T) {
	s := New(testEngine(t), []byte("c/"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := []byte(fmt.Sprintf("k%d", i))
			if err := s.PutString(key, fmt.Sprintf("v%d", i)); err != nil {
				t.Errorf("Put failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		got, err := s.GetString([]byte(fmt.Sprintf("k%d", i)))
		if err != nil || got != fmt.Sprintf("v%d", i) {
			t.Errorf("GetString(k%d) = %q, %v", i, got, err)
		}
	}
}
