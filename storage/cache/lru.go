package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU 进程内缓存，容量和 TTL 由 PARTY_CACHE_SIZE / PARTY_CACHE_TTL 控制
type LRU struct {
	inner *expirable.LRU[string, map[string]string]
}

// NewLRU ttl<=0 表示不过期
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = 1024
	}
	if ttl < 0 {
		ttl = 0
	}
	return &LRU{inner: expirable.NewLRU[string, map[string]string](size, nil, ttl)}
}

func (c *LRU) Get(ctx context.Context, key string) (map[string]string, bool, error) {
	v, ok := c.inner.Get(key)
	if !ok {
		return nil, false, nil
	}
	return copyMap(v), true, nil
}

func (c *LRU) Put(ctx context.Context, key string, value map[string]string) error {
	c.inner.Add(key, copyMap(value))
	return nil
}

func (c *LRU) Len() int { return c.inner.Len() }

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
