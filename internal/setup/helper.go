package setup

import (
	"context"
	"sync"

	"github.com/bornholm/feedback/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes factory. The first call builds the service,
// later calls share its result, error included.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		mutex   sync.Mutex
		built   bool
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if !built {
			service, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
			built = true
		}

		return service, err
	}
}
