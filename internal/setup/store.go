package setup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/store"
	"github.com/pkg/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	if err := ensureBaseDirectory(conf.Storage.Database.DSN); err != nil {
		return nil, errors.WithStack(err)
	}

	db, err := gorm.Open(sqlite.Open(conf.Storage.Database.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(conf.Logger.Level)),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Logger.Level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	pragmas := fmt.Sprintf("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=%d", conf.Storage.Database.BusyTimeout.Milliseconds())

	if err := db.Exec(pragmas).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return store.New(db), nil
})

// NewStoreFromConfig returns the store shared by every component
func NewStoreFromConfig(ctx context.Context, conf *config.Config) (*store.Store, error) {
	return getStoreFromConfig(ctx, conf)
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch level {
	case slog.LevelError:
		return logger.Error
	case slog.LevelWarn:
		return logger.Warn
	case slog.LevelInfo:
		// Gorm logs every statement at info level
		return logger.Warn
	default:
		return logger.Error
	}
}

func ensureBaseDirectory(filePath string) error {
	baseDir := filepath.Dir(filePath)
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return errors.Wrapf(err, "could not ensure directory '%s'", baseDir)
	}

	return nil
}
