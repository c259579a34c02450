package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/bornholm/feedback/internal/http/handler/webui/common/component"
	"github.com/bornholm/feedback/internal/slogx"
)

// HandleError answers the request with the error page matching err.
// Internal details never reach the page: errors without a user message
// display the status text and server side failures are logged.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	message := http.StatusText(statusCode)

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) && userFacingErr.UserMessage() != "" {
		message = userFacingErr.UserMessage()
	}

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "could not handle request",
			slog.String("path", r.URL.Path),
			slogx.Error(errors.WithStack(err)),
		)
	}

	page := component.ErrorPage(component.ErrorPageVModel{Message: message})

	templ.Handler(page, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
