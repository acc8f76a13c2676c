package parties

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/chat"
	"szerzodes-gpt/logic/parse"
	"szerzodes-gpt/logic/prompt"
	"szerzodes-gpt/vars"
)

// Fields 结构化当事人字段
var Fields = []string{
	"CLIENT_NAME",
	"CLIENT_ADDRESS",
	"CLIENT_REGNO",
	"CLIENT_TAXNO",
	"CLIENT_REP",
	"CONTRACTOR_NAME",
	"CONTRACTOR_ADDRESS",
	"CONTRACTOR_REGNO",
	"CONTRACTOR_TAXNO",
}

// Cache 内容寻址缓存，key 为输入文本的 SHA-256
type Cache interface {
	Get(ctx context.Context, key string) (map[string]string, bool, error)
	Put(ctx context.Context, key string, value map[string]string) error
}

// Key 缓存 key 的推导方式：精确原文（区分大小写和空白）的 SHA-256 十六进制
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

type Normalizer struct {
	gateway chat.Gateway
	cache   Cache
	model   string
	group   singleflight.Group
	log     *logger.Logger
}

func NewNormalizer(gateway chat.Gateway, cache Cache, model string, log *logger.Logger) *Normalizer {
	return &Normalizer{
		gateway: gateway,
		cache:   cache,
		model:   model,
		log:     log.With("component", "PartyNormalizer"),
	}
}

// Normalize 把自由文本的当事人描述拆成结构化字段。
// 同一进程内相同输入只会触发一次模型调用；模型返回非 JSON 时直接报错
func (n *Normalizer) Normalize(ctx context.Context, text string) (map[string]string, error) {
	if strings.TrimSpace(text) == "" {
		return map[string]string{}, nil
	}
	key := Key(text)

	if v, ok := n.lookup(ctx, key); ok {
		return v, nil
	}

	// 共享调用不随首个请求取消；每个调用方各自等待自己的 ctx
	flightCtx := context.WithoutCancel(ctx)
	ch := n.group.DoChan(key, func() (interface{}, error) {
		// 排队期间可能已被其他请求写入
		if v, ok := n.lookup(flightCtx, key); ok {
			return v, nil
		}
		v, err := n.call(flightCtx, text)
		if err != nil {
			return nil, err
		}
		if err := n.cache.Put(flightCtx, key, v); err != nil {
			n.log.Warn("[Cache] put failed", "key", key, "error", err)
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			n.log.Debug("[Cache] shared in-flight normalization", "key", key)
		}
		return clone(res.Val.(map[string]string)), nil
	}
}

func (n *Normalizer) lookup(ctx context.Context, key string) (map[string]string, bool) {
	v, ok, err := n.cache.Get(ctx, key)
	if err != nil {
		n.log.Warn("[Cache] get failed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return clone(v), true
}

func (n *Normalizer) call(ctx context.Context, text string) (map[string]string, error) {
	raw, err := n.gateway.Invoke(ctx, chat.Invocation{
		Model:        n.model,
		SystemPrompt: vars.SystemPromptParties,
		UserPrompt:   prompt.BuildPartiesPrompt(text, Fields),
		Temperature:  0,
		MaxTokens:    400,
	})
	if err != nil {
		return nil, err
	}
	var decoded map[string]any
	if err := parse.DecodeJSON(raw, &decoded); err != nil {
		return nil, err
	}
	// 只保留结构化字段，模型多返回的 key 丢弃
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		out[f] = stringify(decoded[f])
	}
	return out, nil
}

// 模型偶尔返回 null 或数字（如税号），统一转成字符串
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
