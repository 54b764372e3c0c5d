package cache

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetMemoizes(t *testing.T) {
	c := New(0)
	calls := 0
	load := func() ([]byte, error) {
		calls++
		return []byte("png"), nil
	}
	for i := 0; i < 3; i++ {
		data, err := c.Get("k", load)
		if err != nil || string(data) != "png" {
			t.Fatalf("got %q, %v", data, err)
		}
	}
	if calls != 1 {
		t.Fatalf("load called %d times, want 1", calls)
	}
}

func TestGetErrorNotCached(t *testing.T) {
	c := New(0)
	boom := errors.New("boom")
	if _, err := c.Get("k", func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed load was cached")
	}
	if data, _ := c.Get("k", func() ([]byte, error) { return []byte("ok"), nil }); string(data) != "ok" {
		t.Fatalf("got %q after retry", data)
	}
}

func TestGetBounded(t *testing.T) {
	c := New(4)
	for i := 0; i < 10; i++ {
		key := fmt.Sprint(i)
		if _, err := c.Get(key, func() ([]byte, error) { return []byte(key), nil }); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 4 {
		t.Fatalf("got %d entries, want 4", c.Len())
	}
}

func TestGetConcurrent(t *testing.T) {
	c := New(0)
	var loads atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprint(i % 4)
			data, err := c.Get(key, func() ([]byte, error) {
				loads.Add(1)
				return []byte(key), nil
			})
			if err != nil || string(data) != key {
				t.Errorf("key %s: got %q, %v", key, data, err)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 4 {
		t.Fatalf("got %d entries, want 4", c.Len())
	}
	if loads.Load() < 4 {
		t.Fatalf("got %d loads, want at least 4", loads.Load())
	}
}
