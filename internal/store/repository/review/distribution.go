package review

import (
	"context"

	"github.com/bornholm/feedback/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RatingCount struct {
	Rating int
	Label  string
	Count  int64
}

// Distribution holds the number of reviews of every rating, lowest first
type Distribution []RatingCount

func (d Distribution) Total() int64 {
	var total int64
	for _, rc := range d {
		total += rc.Count
	}
	return total
}

// Distribution counts the reviews of each rating
func (r *Repository) Distribution(ctx context.Context) (Distribution, error) {
	type row struct {
		Rating int
		Count  int64
	}

	var rows []row
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&store.Review{}).
			Select("rating, COUNT(*) AS count").
			Group("rating").
			Scan(&rows).Error
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, r := range rows {
		counts[r.Rating] = r.Count
	}

	distribution := make(Distribution, 0, store.MaxRating)
	for rating := store.MinRating; rating <= store.MaxRating; rating++ {
		distribution = append(distribution, RatingCount{
			Rating: rating,
			Label:  store.RatingLabel(rating),
			Count:  counts[rating],
		})
	}

	return distribution, nil
}
