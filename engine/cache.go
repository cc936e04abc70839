package engine

import "time"

// DefaultCacheTTL 是推荐结果缓存的默认有效期。
const DefaultCacheTTL = time.Hour

// cacheKey 是结构化缓存键：同一用户不同数量预算的请求分开缓存。
type cacheKey struct {
	userID string
	n      int
}

type cacheEntry struct {
	computedAt time.Time
	ids        []string
}

// resultCache 缓存 (user, n) -> 推荐结果。
//
// 失效规则：
//   - 惰性过期：只在读取时用 now-computedAt 与 TTL 比较，不做后台清扫
//   - 写失效：Invalidate(user) 清掉该用户"所有数量预算"的条目，
//     通过按用户的二级索引定位，而不是只删默认 key
type resultCache struct {
	ttl time.Duration
	now func() time.Time

	entries map[cacheKey]cacheEntry
	byUser  map[string]map[int]struct{} // userID -> 该用户已缓存的 n 集合
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &resultCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[cacheKey]cacheEntry),
		byUser:  make(map[string]map[int]struct{}),
	}
}

// Get 返回缓存的推荐结果（副本）。条目不存在或已过期返回 (nil, false)。
// 过期条目顺手删除。
func (c *resultCache) Get(userID string, n int) ([]string, bool) {
	key := cacheKey{userID: userID, n: n}
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.computedAt) >= c.ttl {
		c.remove(key)
		return nil, false
	}
	out := make([]string, len(e.ids))
	copy(out, e.ids)
	return out, true
}

// Put 写入一条结果，时间戳取当前时刻。
func (c *resultCache) Put(userID string, n int, ids []string) {
	key := cacheKey{userID: userID, n: n}
	stored := make([]string, len(ids))
	copy(stored, ids)
	c.entries[key] = cacheEntry{computedAt: c.now(), ids: stored}

	if c.byUser[userID] == nil {
		c.byUser[userID] = make(map[int]struct{})
	}
	c.byUser[userID][n] = struct{}{}
}

// Invalidate 删除该用户的全部缓存条目（所有 n）。
func (c *resultCache) Invalidate(userID string) {
	for n := range c.byUser[userID] {
		delete(c.entries, cacheKey{userID: userID, n: n})
	}
	delete(c.byUser, userID)
}

// Len 返回当前条目数（含未被惰性清理的过期条目）。
func (c *resultCache) Len() int {
	return len(c.entries)
}

func (c *resultCache) remove(key cacheKey) {
	delete(c.entries, key)
	if ns, ok := c.byUser[key.userID]; ok {
		delete(ns, key.n)
		if len(ns) == 0 {
			delete(c.byUser, key.userID)
		}
	}
}
