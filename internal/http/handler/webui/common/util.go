package common

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// ViewModelFillerFunc populates one part of a page view model
type ViewModelFillerFunc[T any] func(ctx context.Context, vmodel *T, r *http.Request) error

// FillViewModel applies fillers in order and stops at the first failure
func FillViewModel[T any](ctx context.Context, vmodel *T, r *http.Request, fillers ...ViewModelFillerFunc[T]) error {
	for idx, fill := range fillers {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		if err := fill(ctx, vmodel, r); err != nil {
			return errors.Wrapf(err, "could not fill view model (step %d)", idx)
		}
	}

	return nil
}
