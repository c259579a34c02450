package review

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/feedback/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.sqlite")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return NewRepository(store.New(db))
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	now := time.Now().UTC()

	older := store.NewReview("John", "john@doe.com", 4, "Lorem ipsum sin dolor")
	older.CreatedAt = now.Add(-time.Hour)

	newer := store.NewReview("Jane", "jane@doe.com", 5, "Ipsum lorem dolor sin")
	newer.CreatedAt = now

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	require.NotEmpty(t, older.PublicID)
	require.NotEqual(t, older.PublicID, newer.PublicID)

	reviews, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, "Jane", reviews[0].Name)
	require.Equal(t, "John", reviews[1].Name)

	reviews, err = repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, "John", reviews[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	found, err := repo.GetByPublicID(ctx, newer.PublicID)
	require.NoError(t, err)
	require.Equal(t, "jane@doe.com", found.EmailAddress)
}

func TestDistribution(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, rating := range []int{4, 5, 4, 1} {
		require.NoError(t, repo.Create(ctx, store.NewReview("John", "john@doe.com", rating, "Lorem ipsum sin dolor")))
	}

	distribution, err := repo.Distribution(ctx)
	require.NoError(t, err)

	require.Equal(t, Distribution{
		{Rating: 1, Label: "Bad", Count: 1},
		{Rating: 2, Label: "Poor", Count: 0},
		{Rating: 3, Label: "Average", Count: 0},
		{Rating: 4, Label: "Good", Count: 2},
		{Rating: 5, Label: "Excellent", Count: 1},
	}, distribution)

	require.Equal(t, int64(4), distribution.Total())
}

func TestDistributionEmpty(t *testing.T) {
	repo := newTestRepository(t)

	distribution, err := repo.Distribution(context.Background())
	require.NoError(t, err)
	require.Len(t, distribution, 5)
	require.Zero(t, distribution.Total())
}
