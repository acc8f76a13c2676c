package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"szerzodes-gpt/logic/chat"
	"szerzodes-gpt/storage/postgres"
)

// stubGateway 记录每次调用并返回固定文本
type stubGateway struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []chat.Invocation
}

func (g *stubGateway) Invoke(ctx context.Context, in chat.Invocation) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, in)
	return g.reply, g.err
}

func (g *stubGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type stubNormalizer struct {
	out   map[string]string
	err   error
	calls int
}

func (n *stubNormalizer) Normalize(ctx context.Context, text string) (map[string]string, error) {
	n.calls++
	if n.err != nil {
		return nil, n.err
	}
	out := make(map[string]string, len(n.out))
	for k, v := range n.out {
		out[k] = v
	}
	return out, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres.InitDB("sqlite", fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
