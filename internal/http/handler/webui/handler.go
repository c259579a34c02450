package webui

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/bornholm/feedback/internal/http/handler/webui/common"
	feedbackModule "github.com/bornholm/feedback/internal/http/handler/webui/feedback"
	"github.com/bornholm/feedback/internal/store"
)

// Handler groups the pages of the application and the assets they load
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store *store.Store, sessionStore sessions.Store, logger *slog.Logger, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	mux := http.NewServeMux()

	mux.Handle("/assets/", http.StripPrefix("/assets", common.NewHandler()))
	mux.Handle("/", feedbackModule.NewHandler(
		store, sessionStore, logger.With(slog.String("module", "feedback")),
		feedbackModule.WithPageSize(opts.ResultsPageSize),
		feedbackModule.WithSessionName(opts.SessionName),
	))

	return &Handler{mux: mux}
}

var _ http.Handler = &Handler{}
