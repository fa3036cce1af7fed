package telegram

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// HeaderInitData carries the blob on every request issued by the page bridge.
const HeaderInitData = "X-Telegram-Init-Data"

const initDataValue = "init_data"

// SessionProvider resolves the viewer of a request.
type SessionProvider interface {
	Session(r *http.Request) domain.Session
}

// SessionManager is a SessionProvider that can also persist and drop the session.
type SessionManager interface {
	SessionProvider
	Establish(w http.ResponseWriter, r *http.Request, initData string) (domain.Session, error)
	Clear(w http.ResponseWriter, r *http.Request) error
}

// ProviderOptions configures a CookieProvider.
type ProviderOptions struct {
	CookieName string
	BotToken   string        // empty disables signature verification
	MaxAge     time.Duration // max auth_date age when verifying
	Now        func() time.Time
}

// CookieProvider reads the blob from the bridge header first, then from a session cookie.
type CookieProvider struct {
	store  sessions.Store
	opts   ProviderOptions
	logger logger.Logger
}

// NewCookieProvider wires a provider on top of a gorilla sessions store.
func NewCookieProvider(store sessions.Store, opts ProviderOptions, log logger.Logger) *CookieProvider {
	if opts.CookieName == "" {
		opts.CookieName = "linkhub_session"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CookieProvider{store: store, opts: opts, logger: log}
}

// Session never fails: anything unreadable yields an anonymous session.
func (p *CookieProvider) Session(r *http.Request) domain.Session {
	raw := r.Header.Get(HeaderInitData)
	if raw == "" {
		sess, err := p.store.Get(r, p.opts.CookieName)
		if err != nil {
			p.logger.Debug("session cookie unreadable", logger.Error(err))
			return domain.Session{}
		}
		raw, _ = sess.Values[initDataValue].(string)
	}
	if raw == "" {
		return domain.Session{}
	}

	s, err := p.resolve(raw)
	if err != nil {
		p.logger.Debug("init data rejected", logger.Error(err))
	}
	return s
}

// Establish parses initData and stores it in a browser-session cookie.
// A blob that parses but fails verification is still stored: the backend decides.
func (p *CookieProvider) Establish(w http.ResponseWriter, r *http.Request, initData string) (domain.Session, error) {
	s, resolveErr := p.resolve(initData)
	if !s.HasInitData() {
		return s, resolveErr
	}

	// A tampered cookie only yields a fresh session here.
	sess, _ := p.store.Get(r, p.opts.CookieName)
	sess.Values[initDataValue] = initData
	if err := sess.Save(r, w); err != nil {
		return s, fmt.Errorf("save session: %w", err)
	}
	return s, resolveErr
}

// Clear expires the session cookie.
func (p *CookieProvider) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := p.store.Get(r, p.opts.CookieName)
	if sess.IsNew {
		return nil
	}
	sess.Options.MaxAge = -1
	delete(sess.Values, initDataValue)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// resolve parses raw and, when a bot token is configured, verifies it.
// A blob failing verification keeps InitData for forwarding but loses its user.
func (p *CookieProvider) resolve(raw string) (domain.Session, error) {
	s, err := Parse(raw)
	if err != nil {
		return domain.Session{}, err
	}
	if p.opts.BotToken == "" {
		return s, nil
	}
	if err := Verify(raw, p.opts.BotToken, p.opts.MaxAge, p.opts.Now()); err != nil {
		s.User = nil
		return s, fmt.Errorf("verify init data: %w", err)
	}
	return s, nil
}

// StaticProvider always returns the same session. Used by tests and local runs.
type StaticProvider struct {
	S domain.Session

	Established []string
	Cleared     int
}

func (p *StaticProvider) Session(*http.Request) domain.Session { return p.S }

func (p *StaticProvider) Establish(_ http.ResponseWriter, _ *http.Request, initData string) (domain.Session, error) {
	p.Established = append(p.Established, initData)
	return p.S, nil
}

func (p *StaticProvider) Clear(http.ResponseWriter, *http.Request) error {
	p.Cleared++
	return nil
}
