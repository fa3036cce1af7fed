package domain

import (
	"strconv"
	"time"
)

// User is the identity supplied by the host application.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// Session is what the host application tells us about the current viewer.
//
// It lives for one page load. A zero Session is an anonymous viewer.
type Session struct {
	// User is nil when the viewer is anonymous or failed verification.
	User *User

	// QueryID is the host's query identifier, when present.
	QueryID string

	// AuthDate is when the host signed the blob.
	AuthDate time.Time

	// InitData is the raw signed blob, forwarded verbatim to the backend.
	InitData string
}

// HasInitData reports whether the session carries a signed blob.
func (s Session) HasInitData() bool {
	return s.InitData != ""
}

// Identified reports whether a user is known.
func (s Session) Identified() bool {
	return s.User != nil
}

// UserID returns the numeric user id and whether one is known.
func (s Session) UserID() (int64, bool) {
	if s.User == nil {
		return 0, false
	}
	return s.User.ID, true
}

// UserIDString returns the user id in decimal, or "" when anonymous.
func (s Session) UserIDString() string {
	id, ok := s.UserID()
	if !ok {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// FirstName returns the display name, or "" when anonymous.
func (s Session) FirstName() string {
	if s.User == nil {
		return ""
	}
	return s.User.FirstName
}
