package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"szerzodes-gpt/errs"
)

const redisKeyPrefix = "parties:"

// Redis 多实例共享的当事人缓存，值为 JSON
type Redis struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedis 连接并 ping，失败时返回 ErrExternal
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.External("redis ping", err)
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (map[string]string, bool, error) {
	raw, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.External("redis get", err)
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false, errs.External("redis decode", err)
	}
	return out, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, value map[string]string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return errs.External("redis set", err)
	}
	return nil
}

func (r *Redis) Close() error { return r.rdb.Close() }
