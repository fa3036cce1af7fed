package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/rs/xid"

	"github.com/MrSnakeDoc/linkhub/internal/apperror"
	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/inflight"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// fragment is one template rendered into a response.
type fragment struct {
	name string
	data any
}

// render executes every fragment into a buffer first so a template error
// never leaves a half-written page.
func render(d deps.Deps, w http.ResponseWriter, frags ...fragment) {
	var buf bytes.Buffer
	for _, f := range frags {
		if err := d.Render(&buf, f.name, f.data); err != nil {
			d.Logger.Error("failed to render template",
				logger.String("template", f.name),
				logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := buf.WriteTo(w); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}

// localizer picks the viewer's language, falling back to the configured default.
func localizer(d deps.Deps, s domain.Session) i18n.Localizer {
	code := ""
	if s.User != nil {
		code = s.User.LanguageCode
	}
	return i18n.New(i18n.Match(code, d.DefaultLang))
}

var noopRelease = func() {}

// acquire takes the in-flight lock for one rendered form instance, identified
// by the token it was rendered with. It only fails with apperror.ErrInFlight;
// a missing token or a broken guard leaves the request unguarded.
func acquire(ctx context.Context, d deps.Deps, form domain.FormKind, token string) (func(), error) {
	if d.Guard == nil {
		return noopRelease, nil
	}
	if _, err := xid.FromString(token); err != nil {
		return noopRelease, nil
	}
	release, err := d.Guard.Acquire(ctx, inflight.Key(string(form), token))
	switch {
	case err == nil:
		return release, nil
	case errors.Is(err, apperror.ErrInFlight):
		return nil, err
	default:
		d.Logger.Warn("in-flight guard unavailable, proceeding unguarded",
			logger.String("form", string(form)),
			logger.Error(err))
		return noopRelease, nil
	}
}
