package feedback

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/slogx"
)

const flashSubmitted = "Thank you for your feedback!"

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := h.sessions.Get(r, h.opts.SessionName)
	if err != nil {
		// An undecodable cookie still yields a usable new session
		h.logger.WarnContext(r.Context(), "could not decode session", slogx.Error(err))
	}

	if session == nil {
		return errors.New("no session available")
	}

	session.AddFlash(message)

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// popFlash returns the pending flash message, if any, and removes it
// from the session
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	session, err := h.sessions.Get(r, h.opts.SessionName)
	if err != nil || session == nil {
		return ""
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}

	if err := session.Save(r, w); err != nil {
		h.logger.WarnContext(r.Context(), "could not save session", slogx.Error(err))
	}

	message, _ := flashes[0].(string)

	return message
}
