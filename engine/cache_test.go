package engine

import (
	"testing"
	"time"
)

func TestResultCache_GetPut(t *testing.T) {
	now := time.Now()
	c := newResultCache(time.Hour, func() time.Time { return now })

	if _, ok := c.Get("alice", 5); ok {
		t.Fatal("Get() on empty cache should miss")
	}

	c.Put("alice", 5, []string{"p1", "p2"})
	got, ok := c.Get("alice", 5)
	if !ok {
		t.Fatal("Get() should hit after Put")
	}
	if len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Errorf("Get() = %v, want [p1 p2]", got)
	}

	// 不同 n 是不同的缓存条目
	if _, ok := c.Get("alice", 10); ok {
		t.Error("Get() with a different n should miss")
	}
}

func TestResultCache_ReturnsCopy(t *testing.T) {
	now := time.Now()
	c := newResultCache(time.Hour, func() time.Time { return now })
	c.Put("alice", 2, []string{"p1", "p2"})

	got, _ := c.Get("alice", 2)
	got[0] = "mutated"

	again, _ := c.Get("alice", 2)
	if again[0] != "p1" {
		t.Errorf("cached entry mutated through returned slice: %v", again)
	}
}

func TestResultCache_LazyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newResultCache(time.Hour, func() time.Time { return now })
	c.Put("alice", 5, []string{"p1"})

	// 59 分钟后仍然命中
	now = now.Add(59 * time.Minute)
	if _, ok := c.Get("alice", 5); !ok {
		t.Error("entry expired before TTL")
	}

	// 恰好 1 小时：过期并被顺手删除
	now = now.Add(time.Minute)
	if _, ok := c.Get("alice", 5); ok {
		t.Error("entry should expire at exactly TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after lazy expiry, want 0", c.Len())
	}
}

func TestResultCache_InvalidateAllBudgets(t *testing.T) {
	now := time.Now()
	c := newResultCache(time.Hour, func() time.Time { return now })
	c.Put("alice", 1, []string{"p1"})
	c.Put("alice", 5, []string{"p1", "p2"})
	c.Put("bob", 5, []string{"p3"})

	c.Invalidate("alice")

	if _, ok := c.Get("alice", 1); ok {
		t.Error("alice n=1 survived invalidation")
	}
	if _, ok := c.Get("alice", 5); ok {
		t.Error("alice n=5 survived invalidation")
	}
	if _, ok := c.Get("bob", 5); !ok {
		t.Error("bob entry lost on alice invalidation")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestResultCache_DefaultTTL(t *testing.T) {
	c := newResultCache(0, nil)
	if c.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultCacheTTL)
	}
}
