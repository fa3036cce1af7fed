package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/metrics"
	"github.com/MrSnakeDoc/linkhub/internal/telegram"
	"github.com/MrSnakeDoc/linkhub/internal/web"
)

// Page renders the full document for an anonymous viewer. The page script
// re-establishes the session through /session once the host is ready.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sessions.Clear(w, r); err != nil {
			d.Logger.Warn("failed to clear session", logger.Error(err))
		}

		s := domain.Session{}
		l := localizer(d, s)
		render(d, w, fragment{web.TmplPage, web.Page{
			L:      l,
			Bridge: telegram.Attr(telegram.StartupCommands()...),
			Hub:    buildHub(r.Context(), d, l, s, web.TabLinks),
		}})
	}
}

// Session stores the host init data and returns the hub for the identified viewer.
func Session(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.PostFormValue("init_data")
		if raw == "" {
			raw = r.Header.Get(telegram.HeaderInitData)
		}

		s := domain.Session{}
		if raw != "" {
			var err error
			s, err = d.Sessions.Establish(w, r, raw)
			switch {
			case err != nil:
				metrics.SessionsEstablishedTotal.WithLabelValues("rejected").Inc()
				d.Logger.Info("init data rejected", logger.Error(err))
			case s.Identified():
				metrics.SessionsEstablishedTotal.WithLabelValues("identified").Inc()
			default:
				metrics.SessionsEstablishedTotal.WithLabelValues("anonymous").Inc()
			}
		}

		l := localizer(d, s)
		render(d, w, fragment{web.TmplHub, buildHub(r.Context(), d, l, s, web.TabLinks)})
	}
}

// Tab re-mounts the hub on the requested tab.
func Tab(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab := chi.URLParam(r, "tab")
		if !web.ValidTab(tab) {
			http.NotFound(w, r)
			return
		}

		s := d.Sessions.Session(r)
		l := localizer(d, s)
		render(d, w, fragment{web.TmplHub, buildHub(r.Context(), d, l, s, tab)})
	}
}

func buildHub(ctx context.Context, d deps.Deps, l i18n.Localizer, s domain.Session, tab string) web.Hub {
	hub := web.NewHub(l, s, tab)
	if hub.Tab == web.TabSuggestions {
		hub.Suggestions = suggestionsTab(ctx, d, l, s)
	} else {
		hub.Links = &web.LinksTab{
			L:         l,
			Sections:  web.Sections(l, d.Links.VisibleLinks()),
			Subscribe: web.NewForm(l, domain.NewFormState(domain.FormSubscribe)),
		}
	}
	return hub
}

func suggestionsTab(ctx context.Context, d deps.Deps, l i18n.Localizer, s domain.Session) *web.SuggestionsTab {
	tab := &web.SuggestionsTab{
		L:    l,
		Form: web.NewForm(l, domain.NewFormState(domain.FormSuggestion)),
		Notify: web.Notify{
			L:        l,
			Unlocked: d.Policy.CanNotify(s, ""),
			Form:     web.NewForm(l, domain.NewFormState(domain.FormNotify)),
		},
	}
	if d.Policy.CanReviewSuggestions(s) {
		tab.Admin = adminList(ctx, d, l, s)
	}
	return tab
}

// adminList fetches suggestions once. Failures render an empty list.
func adminList(ctx context.Context, d deps.Deps, l i18n.Localizer, s domain.Session) *web.AdminList {
	items, err := d.API.ListSuggestions(ctx, s.InitData)
	if err != nil {
		d.Logger.Warn("failed to fetch suggestions",
			logger.String("user_id", s.UserIDString()),
			logger.Error(err))
		items = nil
	}
	return web.NewAdminList(l, d.Location, items)
}
