// Package telegram reads the viewer identity handed over by the Telegram host application.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

var (
	ErrEmptyInitData = errors.New("init data is empty")
	ErrMissingHash   = errors.New("init data has no hash")
	ErrBadSignature  = errors.New("init data signature mismatch")
	ErrExpired       = errors.New("init data is too old")
)

// webAppDataKey is the fixed HMAC key Telegram uses to derive the secret from the bot token.
const webAppDataKey = "WebAppData"

// Parse decodes an init-data blob without checking its signature.
// The raw blob is kept on the session so it can be forwarded verbatim.
func Parse(raw string) (domain.Session, error) {
	if raw == "" {
		return domain.Session{}, ErrEmptyInitData
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return domain.Session{}, fmt.Errorf("parse init data: %w", err)
	}

	s := domain.Session{
		InitData: raw,
		QueryID:  values.Get("query_id"),
	}

	if v := values.Get("auth_date"); v != "" {
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return domain.Session{}, fmt.Errorf("invalid auth_date %q: %w", v, err)
		}
		s.AuthDate = time.Unix(sec, 0).UTC()
	}

	if v := values.Get("user"); v != "" {
		var u domain.User
		if err := json.Unmarshal([]byte(v), &u); err != nil {
			return domain.Session{}, fmt.Errorf("decode init data user: %w", err)
		}
		if u.ID != 0 {
			s.User = &u
		}
	}

	return s, nil
}

// Verify checks the blob's HMAC-SHA256 signature against botToken.
// When maxAge is positive, auth_date must also be recent relative to now.
func Verify(raw, botToken string, maxAge time.Duration, now time.Time) error {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("parse init data: %w", err)
	}

	got := values.Get("hash")
	if got == "" {
		return ErrMissingHash
	}

	want := signature(values, botToken)
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(got))) {
		return ErrBadSignature
	}

	if maxAge > 0 {
		sec, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid auth_date: %w", err)
		}
		if now.Sub(time.Unix(sec, 0)) > maxAge {
			return ErrExpired
		}
	}

	return nil
}

// Sign returns values encoded with a valid hash for botToken.
func Sign(values url.Values, botToken string) string {
	signed := url.Values{}
	for k, v := range values {
		if k != "hash" {
			signed[k] = v
		}
	}
	signed.Set("hash", signature(signed, botToken))
	return signed.Encode()
}

func signature(values url.Values, botToken string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	secret := mac([]byte(webAppDataKey), []byte(botToken))
	return hex.EncodeToString(mac(secret, []byte(strings.Join(lines, "\n"))))
}

func mac(key, msg []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(msg)
	return h.Sum(nil)
}
