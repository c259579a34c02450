package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bornholm/feedback/internal/slogx"
	"github.com/bornholm/feedback/internal/store"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.sqlite")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	repo := NewRepository(store.New(db), slogx.NewTestLogger(t))

	calls := 0
	seeder := New("sample", func(ctx context.Context, db *gorm.DB) error {
		calls++
		return db.Create(store.NewReview("John Doe", "john@doe.com", 4, "Lorem ipsum.")).Error
	})

	require.NoError(t, repo.Seed(ctx, false, seeder))
	require.NoError(t, repo.Seed(ctx, false, seeder))
	require.Equal(t, 1, calls)

	record, err := repo.Get(ctx, "sample")
	require.NoError(t, err)
	require.Equal(t, 1, record.Executions)

	require.NoError(t, repo.Seed(ctx, true, seeder))
	require.Equal(t, 2, calls)

	record, err = repo.Get(ctx, "sample")
	require.NoError(t, err)
	require.Equal(t, 2, record.Executions)
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.sqlite")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	repo := NewRepository(store.New(db), slogx.NewTestLogger(t))

	failing := New("failing", func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(store.NewReview("John Doe", "john@doe.com", 4, "Lorem ipsum.")).Error; err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})

	require.ErrorIs(t, repo.Seed(ctx, false, failing), gorm.ErrInvalidData)

	_, err = repo.Get(ctx, "failing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&store.Review{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}
