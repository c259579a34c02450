package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/feedback/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExecFunc func(ctx context.Context, db *gorm.DB) error

// Seeder is a named store initialization executed at most once
// unless forced
type Seeder struct {
	id   string
	exec ExecFunc
}

func New(id string, exec ExecFunc) *Seeder {
	return &Seeder{
		id:   id,
		exec: exec,
	}
}

type Repository struct {
	store  *store.Store
	logger *slog.Logger
}

func NewRepository(store *store.Store, logger *slog.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger.With("component", "seed-repository"),
	}
}

// Seed runs each seeder in its own transaction, skipping the ones already
// recorded unless force is set
func (r *Repository) Seed(ctx context.Context, force bool, seeders ...*Seeder) error {
	for _, s := range seeders {
		err := r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
			var count int64
			if err := db.Model(&store.Seed{}).Where("id = ?", s.id).Count(&count).Error; err != nil {
				return errors.WithStack(err)
			}

			if !force && count > 0 {
				r.logger.DebugContext(ctx, "seeder already executed", slog.String("seeder", s.id))
				return nil
			}

			if err := s.exec(ctx, db); err != nil {
				return errors.WithStack(err)
			}

			record := &store.Seed{
				ID:         s.id,
				ExecutedAt: time.Now(),
				Executions: 1,
			}

			err := db.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"executed_at": record.ExecutedAt,
					"executions":  gorm.Expr("executions + 1"),
				}),
			}).Create(record).Error
			if err != nil {
				return errors.WithStack(err)
			}

			r.logger.InfoContext(ctx, "seeder executed", slog.String("seeder", s.id))

			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "could not execute seeder '%s'", s.id)
		}
	}

	return nil
}

// Get returns the execution record of a seeder
func (r *Repository) Get(ctx context.Context, id string) (*store.Seed, error) {
	var seed store.Seed
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&seed, "id = ?", id).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &seed, nil
}
