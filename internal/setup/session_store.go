package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/crypto"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keys, generated, err := crypto.SessionKeys(conf.HTTP.Session.Keys)
	if err != nil {
		return nil, errors.Wrap(err, "could not load session keys")
	}

	if generated {
		slog.WarnContext(ctx, "no session key configured, using a random one, flash messages will not survive restarts")
	}

	cookie := conf.HTTP.Session.Cookie

	sessionStore := sessions.NewCookieStore(keys...)
	sessionStore.MaxAge(int(cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = cookie.Path
	sessionStore.Options.HttpOnly = cookie.HTTPOnly
	sessionStore.Options.Secure = cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})
