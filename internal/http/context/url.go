package context

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

type contextKey string

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)

// BaseURL returns a copy of the public base URL of the application.
// It panics when the request did not go through the server middleware.
func BaseURL(ctx context.Context) *url.URL {
	return cloneURL(mustURL(ctx, keyBaseURL))
}

func SetBaseURL(ctx context.Context, rawBaseURL string) context.Context {
	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		panic(errors.Wrapf(err, "invalid base url '%s'", rawBaseURL))
	}

	return context.WithValue(ctx, keyBaseURL, baseURL)
}

// CurrentURL returns a copy of the URL of the request being served
func CurrentURL(ctx context.Context) *url.URL {
	return cloneURL(mustURL(ctx, keyCurrentURL))
}

func SetCurrentURL(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, cloneURL(u))
}

func mustURL(ctx context.Context, key contextKey) *url.URL {
	u, ok := ctx.Value(key).(*url.URL)
	if !ok || u == nil {
		panic(errors.Errorf("no %s in context", key))
	}

	return u
}

func cloneURL(u *url.URL) *url.URL {
	clone := *u
	if u.User != nil {
		user := *u.User
		clone.User = &user
	}

	return &clone
}
