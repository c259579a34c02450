package feedback

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/component"
	"github.com/bornholm/feedback/internal/store"
	"github.com/bornholm/feedback/internal/store/repository/review"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	mux      *http.ServeMux
	store    *store.Store
	reviews  *review.Repository
	sessions sessions.Store
	opts     *Options
	logger   *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, sessionStore sessions.Store, logger *slog.Logger, funcs ...OptionFunc) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		store:    store,
		reviews:  review.NewRepository(store),
		sessions: sessionStore,
		opts:     NewOptions(funcs...),
		logger:   logger.With("component", "feedback-handler"),
	}

	h.mux.HandleFunc("GET /{$}", h.redirectToFeedback)
	h.mux.HandleFunc("GET /feedback", h.getFeedbackPage)
	h.mux.HandleFunc("POST /feedback", h.postFeedbackPage)
	h.mux.HandleFunc("POST /feedback/fields/{name}/{event}", h.postFieldEvent)
	h.mux.HandleFunc("GET /results", h.getResultsPage)
	h.mux.HandleFunc("GET /health", h.getHealthCheck)

	return h
}

func (h *Handler) redirectToFeedback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, string(baseURL(r.Context(), "feedback")), http.StatusSeeOther)
}

func baseURL(ctx context.Context, paths ...string) templ.SafeURL {
	return component.BaseURL(ctx, component.WithPath(paths...))
}

var _ http.Handler = &Handler{}
