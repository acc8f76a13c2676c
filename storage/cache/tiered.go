package cache

import (
	"context"
)

// Store 与 parties.Cache 同形，避免反向依赖
type Store interface {
	Get(ctx context.Context, key string) (map[string]string, bool, error)
	Put(ctx context.Context, key string, value map[string]string) error
}

// Tiered 前置进程内 LRU，后端为 Redis 或 Postgres
type Tiered struct {
	front *LRU
	back  Store
}

func NewTiered(front *LRU, back Store) *Tiered {
	return &Tiered{front: front, back: back}
}

func (t *Tiered) Get(ctx context.Context, key string) (map[string]string, bool, error) {
	if v, ok, _ := t.front.Get(ctx, key); ok {
		return v, true, nil
	}
	if t.back == nil {
		return nil, false, nil
	}
	v, ok, err := t.back.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = t.front.Put(ctx, key, v)
	return copyMap(v), true, nil
}

// Put 先写前端；后端失败时返回错误，前端已写入的值仍然有效
func (t *Tiered) Put(ctx context.Context, key string, value map[string]string) error {
	_ = t.front.Put(ctx, key, value)
	if t.back == nil {
		return nil
	}
	return t.back.Put(ctx, key, value)
}
