package feedback

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/form"
	"github.com/bornholm/feedback/internal/slogx"
)

type fieldEventError struct {
	Error string `json:"error"`
}

// postFieldEvent applies a single field interaction to a form loaded with
// the posted values and returns the resulting field state
func (h *Handler) postFieldEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.PathValue("name")
	event := form.Event(r.PathValue("event"))

	if !FeedbackConfig.Has(name) {
		writeJSON(w, http.StatusNotFound, fieldEventError{Error: "unknown field"})
		return
	}

	feedbackForm := newFeedbackForm(h.logger)

	if err := feedbackForm.Handle(r); err != nil {
		writeJSON(w, http.StatusBadRequest, fieldEventError{Error: "invalid form data"})
		return
	}

	if err := feedbackForm.Dispatch(event, name, feedbackForm.Value(name)); err != nil {
		switch {
		case errors.Is(err, form.ErrUnknownEvent):
			writeJSON(w, http.StatusBadRequest, fieldEventError{Error: "unknown event"})
		case errors.Is(err, form.ErrUnknownField):
			writeJSON(w, http.StatusNotFound, fieldEventError{Error: "unknown field"})
		default:
			h.logger.ErrorContext(ctx, "could not dispatch field event", slogx.Error(errors.WithStack(err)))
			writeJSON(w, http.StatusInternalServerError, fieldEventError{Error: http.StatusText(http.StatusInternalServerError)})
		}
		return
	}

	state, err := feedbackForm.FieldState(name)
	if err != nil {
		h.logger.ErrorContext(ctx, "could not retrieve field state", slogx.Error(errors.WithStack(err)))
		writeJSON(w, http.StatusInternalServerError, fieldEventError{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	if event == form.EventBlur && state.Error != "" {
		fieldErrorsTotal.WithLabelValues(name).Inc()
	}

	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	// Headers are already sent, an encoding failure can only be dropped
	_ = json.NewEncoder(w).Encode(v)
}
