package handlers

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/MrSnakeDoc/linkhub/internal/apperror"
	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/hubapi"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/metrics"
	"github.com/MrSnakeDoc/linkhub/internal/web"
)

// Form outcomes recorded in metrics.
const (
	outcomeSuccess  = "success"
	outcomeError    = "error"
	outcomeInvalid  = "invalid"
	outcomeSkipped  = "skipped"
	outcomeInFlight = "in_flight"
)

// SuggestionForm returns a fresh suggestion form. The success fragment calls it after its reset delay.
func SuggestionForm(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := localizer(d, d.Sessions.Session(r))
		render(d, w, fragment{web.TmplSuggestionForm, web.NewForm(l, domain.NewFormState(domain.FormSuggestion))})
	}
}

// SuggestionSubmit forwards one suggestion with the viewer's init data.
// Without init data nothing is sent and the form comes back unchanged.
func SuggestionSubmit(d deps.Deps) http.HandlerFunc {
	const form = domain.FormSuggestion
	return func(w http.ResponseWriter, r *http.Request) {
		s := d.Sessions.Session(r)
		l := localizer(d, s)
		content := r.PostFormValue("content")
		state := domain.NewFormState(form).WithValue(content)

		reply := func(state domain.FormState, extra ...fragment) {
			render(d, w, append([]fragment{{web.TmplSuggestionForm, web.NewForm(l, state)}}, extra...)...)
		}

		if !s.HasInitData() {
			metrics.ObserveForm(string(form), outcomeSkipped)
			reply(state)
			return
		}
		if err := required("content", content); err != nil {
			rejected(d, form, err)
			reply(state)
			return
		}

		release, err := acquire(r.Context(), d, form, r.PostFormValue(web.FieldFormToken))
		if err != nil {
			// The rendered instance is still busy; hand back a fresh idle form.
			metrics.ObserveForm(string(form), outcomeInFlight)
			reply(state)
			return
		}
		defer release()

		if state, err = state.Begin(); err != nil {
			d.Logger.Debug("form not startable", logger.String("form", string(form)), logger.Error(err))
			reply(state)
			return
		}

		if err := d.API.CreateSuggestion(r.Context(), content, s.InitData); err != nil {
			metrics.ObserveForm(string(form), outcomeError)
			d.Logger.Warn("suggestion not delivered",
				logger.String("user_id", s.UserIDString()),
				logger.Error(err))
			reply(state.Fail(l.T(i18n.MsgSuggestError)))
			return
		}

		metrics.ObserveForm(string(form), outcomeSuccess)
		state = state.Succeed(l.T(i18n.MsgSuggestSuccess))

		if !d.Policy.CanReviewSuggestions(s) {
			reply(state)
			return
		}
		list := adminList(r.Context(), d, l, s)
		list.OOB = true
		reply(state, fragment{web.TmplAdminList, list})
	}
}

// AdminAccess re-renders the composer gate for a manually entered admin id.
func AdminAccess(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := d.Sessions.Session(r)
		l := localizer(d, s)
		entered := r.PostFormValue("admin_id")

		render(d, w, fragment{web.TmplNotify, web.Notify{
			L:         l,
			Unlocked:  d.Policy.CanNotify(s, entered),
			EnteredID: entered,
			Form:      web.NewForm(l, domain.NewFormState(domain.FormNotify)),
		}})
	}
}

// AdminNotify sends a Telegram notification through the backend.
func AdminNotify(d deps.Deps) http.HandlerFunc {
	const form = domain.FormNotify
	return func(w http.ResponseWriter, r *http.Request) {
		s := d.Sessions.Session(r)
		l := localizer(d, s)
		entered := r.PostFormValue("admin_id")
		message := r.PostFormValue("message")
		state := domain.NewFormState(form).WithValue(message)

		view := web.Notify{L: l, Unlocked: true, EnteredID: entered}
		reply := func(state domain.FormState) {
			view.Form = web.NewForm(l, state)
			render(d, w, fragment{web.TmplNotify, view})
		}

		if !d.Policy.CanNotify(s, entered) {
			rejected(d, form, apperror.Unauthorized("notification composer is locked"))
			view.Unlocked = false
			reply(domain.NewFormState(form))
			return
		}
		if err := required("message", message); err != nil {
			rejected(d, form, err)
			reply(state)
			return
		}

		release, err := acquire(r.Context(), d, form, r.PostFormValue(web.FieldFormToken))
		if err != nil {
			// The rendered instance is still busy; hand back a fresh idle form.
			metrics.ObserveForm(string(form), outcomeInFlight)
			reply(state)
			return
		}
		defer release()

		if state, err = state.Begin(); err != nil {
			d.Logger.Debug("form not startable", logger.String("form", string(form)), logger.Error(err))
			reply(state)
			return
		}

		adminID := d.Policy.NotifyAdminID(s, entered)
		if err := d.API.Notify(r.Context(), message, adminID); err != nil {
			metrics.ObserveForm(string(form), outcomeError)
			d.Logger.Warn("notification not delivered",
				logger.String("admin_id", adminID),
				logger.Error(err))
			reply(state.Fail(notifyFailure(l, err)))
			return
		}

		metrics.ObserveForm(string(form), outcomeSuccess)
		d.Logger.Info("notification sent", logger.String("admin_id", adminID))
		reply(state.Succeed(l.T(i18n.MsgNotifySuccess)))
	}
}

// notifyFailure surfaces the backend detail for rejections and a server error otherwise.
func notifyFailure(l i18n.Localizer, err error) string {
	if !errors.Is(err, apperror.ErrUpstream) {
		return l.T(i18n.MsgNotifyNetwork)
	}
	if detail := hubapi.DetailOf(err); detail != "" {
		return detail
	}
	return l.T(i18n.MsgNotifyDenied)
}

// Subscribe registers an email address with the backend.
func Subscribe(d deps.Deps) http.HandlerFunc {
	const form = domain.FormSubscribe
	return func(w http.ResponseWriter, r *http.Request) {
		s := d.Sessions.Session(r)
		l := localizer(d, s)
		email := r.PostFormValue("email")
		state := domain.NewFormState(form).WithValue(email)

		reply := func(state domain.FormState) {
			render(d, w, fragment{web.TmplSubscribe, web.NewForm(l, state)})
		}

		if err := required("email", email); err != nil {
			rejected(d, form, err)
			reply(state)
			return
		}
		if err := checkEmail(email); err != nil {
			rejected(d, form, err)
			reply(state.Fail(l.T(i18n.MsgSubscribeInvalid)))
			return
		}

		release, err := acquire(r.Context(), d, form, r.PostFormValue(web.FieldFormToken))
		if err != nil {
			// The rendered instance is still busy; hand back a fresh idle form.
			metrics.ObserveForm(string(form), outcomeInFlight)
			reply(state)
			return
		}
		defer release()

		if state, err = state.Begin(); err != nil {
			d.Logger.Debug("form not startable", logger.String("form", string(form)), logger.Error(err))
			reply(state)
			return
		}

		if err := d.API.Subscribe(r.Context(), email); err != nil {
			metrics.ObserveForm(string(form), outcomeError)
			d.Logger.Warn("subscription not delivered", logger.Error(err))
			reply(state.Fail(l.T(i18n.MsgSubscribeError)))
			return
		}

		metrics.ObserveForm(string(form), outcomeSuccess)
		reply(state.Succeed(l.T(i18n.MsgSubscribeSuccess)))
	}
}

// required rejects empty input before any upstream call. Whitespace is content.
func required(field, value string) error {
	if value == "" {
		return apperror.ValidationFailed(field, field+" is required")
	}
	return nil
}

// checkEmail accepts a bare address only, no display name.
func checkEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return apperror.ValidationFailed("email", "invalid email address")
	}
	return nil
}

// rejected records a submission stopped before the backend call.
func rejected(d deps.Deps, form domain.FormKind, err error) {
	metrics.ObserveForm(string(form), outcomeInvalid)
	d.Logger.Debug("form rejected",
		logger.String("form", string(form)),
		logger.String("field", apperror.Field(err)),
		logger.Error(err))
}
