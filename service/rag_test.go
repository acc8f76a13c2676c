package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/storage/postgres"
)

// keywordEmbedder 按关键词出现与否生成二维向量
type keywordEmbedder struct{}

func (keywordEmbedder) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	out := make([][]float64, 0, len(texts))
	for _, t := range texts {
		t = strings.ToLower(t)
		v := []float64{0, 0}
		if strings.Contains(t, "megbíz") {
			v[0] = 1
		}
		if strings.Contains(t, "titok") {
			v[1] = 1
		}
		out = append(out, v)
	}
	return out, nil
}

func TestRAGSeedAndSearch(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "ptk.txt")
	require.NoError(t, os.WriteFile(seed, []byte(
		"# Ptk. 6:272. §\nMegbízási szerződés alapján a megbízott köteles a megbízó ügyét ellátni.\n---\n"+
			"# Üzleti titok\nAz üzleti titok védelméről szóló törvény.\n"), 0o644))

	svc := NewRAGService(postgres.NewRAGRepo(newTestDB(t)), keywordEmbedder{}, logger.Nop())
	ctx := context.Background()

	n, err := svc.Seed(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := svc.Search(ctx, "titoktartás", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Üzleti titok", got[0].Source)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
}

func TestRAGSearchValidation(t *testing.T) {
	svc := NewRAGService(postgres.NewRAGRepo(newTestDB(t)), keywordEmbedder{}, logger.Nop())
	_, err := svc.Search(context.Background(), " ", 3)
	assert.ErrorIs(t, err, errs.ErrValidation)

	got, err := svc.Search(context.Background(), "megbízás", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}
