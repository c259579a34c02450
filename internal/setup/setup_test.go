package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/store/repository/review"
)

func TestCreateFromConfigOnce(t *testing.T) {
	calls := 0

	get := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (int, error) {
		calls++
		return calls, nil
	})

	conf := &config.Config{}

	for range 3 {
		value, err := get(context.Background(), conf)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if value != 1 {
			t.Errorf("expected cached value 1, got %d", value)
		}
	}

	if calls != 1 {
		t.Errorf("expected factory to be called once, got %d", calls)
	}
}

func TestCreateFromConfigOnceError(t *testing.T) {
	errFactory := errors.New("factory failed")

	get := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*struct{}, error) {
		return nil, errFactory
	})

	if _, err := get(context.Background(), &config.Config{}); !errors.Is(err, errFactory) {
		t.Errorf("expected factory error, got %v", err)
	}
}

// The store factory is process wide, every setup step is therefore
// exercised against the same configuration
func TestSetupFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Setenv("FEEDBACK_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "data", "feedback.sqlite"))
	t.Setenv("FEEDBACK_SEED_SAMPLE_REVIEWS", "true")

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := SeedFromConfig(ctx, conf); err != nil {
		t.Fatalf("%+v", err)
	}

	// Seeders run once
	if err := SeedFromConfig(ctx, conf); err != nil {
		t.Fatalf("%+v", err)
	}

	st, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	count, err := review.NewRepository(st).Count(ctx)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if count != 5 {
		t.Errorf("expected 5 sample reviews, got %d", count)
	}

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	handler := server.Handler()

	for _, path := range []string{"/feedback", "/results", "/assets/style.css", "/metrics/", "/health"} {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, path, nil))

		if res.Code != http.StatusOK {
			t.Errorf("GET %s: expected status %d, got %d", path, http.StatusOK, res.Code)
		}
	}
}
