package setup

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"time"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/store"
	"github.com/bornholm/feedback/internal/store/repository/seed"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:embed sample_reviews.yml
var sampleReviews []byte

func SeedFromConfig(ctx context.Context, conf *config.Config) error {
	if !conf.Seed.Enabled {
		return nil
	}

	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	repo := seed.NewRepository(st, slog.Default())

	seeders := make([]*seed.Seeder, 0)

	if conf.Seed.SampleReviews {
		seeders = append(seeders, seed.New("sample-reviews", seedSampleReviews))
	}

	if err := repo.Seed(ctx, false, seeders...); err != nil {
		return errors.Wrap(err, "could not execute store seeding")
	}

	return nil
}

func seedSampleReviews(ctx context.Context, db *gorm.DB) error {
	records, err := store.ReadReviewRecords(bytes.NewReader(sampleReviews))
	if err != nil {
		return errors.WithStack(err)
	}

	now := time.Now()

	for i, r := range records {
		review := r.Review()
		// Samples are spread over the last days
		review.CreatedAt = now.Add(-time.Duration(len(records)-i) * 7 * time.Hour)

		if err := db.Create(review).Error; err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
