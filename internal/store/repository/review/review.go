package review

import (
	"context"

	"github.com/bornholm/feedback/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Create persists a new review
func (r *Repository) Create(ctx context.Context, review *store.Review) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(review).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

// GetByPublicID retrieves a review by its public identifier
func (r *Repository) GetByPublicID(ctx context.Context, publicID string) (*store.Review, error) {
	var review store.Review
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("public_id = ?", publicID).First(&review).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns reviews, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*store.Review, error) {
	var reviews []*store.Review
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Order("created_at DESC").Order("id DESC").Offset(offset)
		if limit > 0 {
			query = query.Limit(limit)
		}

		if err := query.Find(&reviews).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&store.Review{}).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
