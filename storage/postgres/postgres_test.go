package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"szerzodes-gpt/errs"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := InitDB("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestContractRepoCreateAndGet(t *testing.T) {
	repo := NewContractRepo(newTestDB(t))
	ctx := context.Background()

	c := &Contract{Title: "Megbízási szerződés", Content: "<p>Megbízó: Kiss János</p>", ContractType: "megbizasi"}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEmpty(t, c.DocID)

	got, err := repo.GetByDocID(ctx, c.DocID)
	require.NoError(t, err)
	assert.Equal(t, "Megbízási szerződés", got.Title)
	assert.Equal(t, c.DocID, got.View().DocID)
}

func TestContractRepoNotFound(t *testing.T) {
	repo := NewContractRepo(newTestDB(t))
	_, err := repo.GetByDocID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestContractRepoListAndSearch(t *testing.T) {
	repo := NewContractRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Contract{Title: "NDA Teszt Kft.", Content: "titoktartás", ContractType: "nda"}))
	require.NoError(t, repo.Create(ctx, &Contract{Title: "Megbízás", Content: "megbízási díj", ContractType: "megbizasi"}))

	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.SearchByKeyword(ctx, "TESZT", "", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "nda", found[0].ContractType)

	none, err := repo.SearchByKeyword(ctx, "TESZT", "megbizasi", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	ordered, err := repo.GetByDocIDs(ctx, []string{found[0].DocID, "missing"})
	require.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, found[0].DocID, ordered[0].DocID)
}

func TestRAGRepoReplaceAll(t *testing.T) {
	repo := NewRAGRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []StoredChunk{
		{Source: "Ptk. 6:272", Content: "Megbízási szerződés alapján a megbízott köteles...", Embedding: []float64{1, 0}},
		{Source: "Ptk. 6:238", Content: "Vállalkozási szerződés...", Embedding: []float64{0, 1}},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, []StoredChunk{
		{Source: "Ptk. 6:272", Content: "új", Embedding: []float64{0.5, 0.5}},
	}))

	chunks, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, []float64{0.5, 0.5}, chunks[0].Embedding)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPartyCacheRepo(t *testing.T) {
	repo := NewPartyCacheRepo(newTestDB(t))
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "k", map[string]string{"CLIENT_NAME": "Kiss János"}))
	require.NoError(t, repo.Put(ctx, "k", map[string]string{"CLIENT_NAME": "Nagy Éva"}))

	v, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Nagy Éva", v["CLIENT_NAME"])

	removed, err := repo.PruneOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, ok, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
