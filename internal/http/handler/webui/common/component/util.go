package component

import (
	"context"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	httpCtx "github.com/bornholm/feedback/internal/http/context"
	httpURL "github.com/bornholm/feedback/internal/http/url"
)

var (
	WithPath   = httpURL.WithPath
	WithPathf  = httpURL.WithPathf
	WithValues = httpURL.WithValues
)

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	currentURL := httpCtx.CurrentURL(ctx)
	mutated := httpURL.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

// MatchPath reports whether the current request targets the path of rawURL
func MatchPath(ctx context.Context, rawURL string) bool {
	u, err := httpURL.Parse(rawURL)
	if err != nil {
		return false
	}

	currentURL := httpCtx.CurrentURL(ctx)

	return strings.TrimSuffix(currentURL.Path, "/") == strings.TrimSuffix(u.Path, "/")
}

// RelativeTime formats t relative to now, ie "3 hours ago"
func RelativeTime(t time.Time) string {
	return humanize.Time(t)
}
