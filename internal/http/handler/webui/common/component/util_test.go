package component

import (
	"context"
	"net/url"
	"testing"
	"time"

	httpCtx "github.com/bornholm/feedback/internal/http/context"
)

func newContext(t *testing.T, baseURL string, currentURL string) context.Context {
	t.Helper()

	current, err := url.Parse(currentURL)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	ctx := httpCtx.SetBaseURL(context.Background(), baseURL)
	ctx = httpCtx.SetCurrentURL(ctx, current)

	return ctx
}

func TestBaseURL(t *testing.T) {
	ctx := newContext(t, "https://example.com/app/", "/app/feedback")

	if got, want := string(BaseURL(ctx, WithPath("results"), WithValues("page", "2"))), "https://example.com/app/results?page=2"; got != want {
		t.Errorf("expected '%s', got '%s'", want, got)
	}
}

func TestMatchPath(t *testing.T) {
	ctx := newContext(t, "https://example.com/", "/results")

	if !MatchPath(ctx, "https://example.com/results") {
		t.Error("expected absolute URL to match current path")
	}

	if !MatchPath(ctx, "/results/") {
		t.Error("expected trailing slash to be ignored")
	}

	if MatchPath(ctx, "/feedback") {
		t.Error("expected other path not to match")
	}
}

func TestFillNavbarVModel(t *testing.T) {
	ctx := newContext(t, "/", "/feedback")

	navbar := FillNavbarVModel(ctx)

	if len(navbar.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(navbar.Links))
	}

	if !navbar.Links[0].Active || navbar.Links[1].Active {
		t.Errorf("expected only the feedback link to be active, got %+v", navbar.Links)
	}
}

func TestRelativeTime(t *testing.T) {
	if got := RelativeTime(time.Now().Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Errorf("unexpected relative time '%s'", got)
	}
}
