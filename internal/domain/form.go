package domain

import (
	"errors"
	"time"
)

// FormKind identifies one of the interactive forms.
type FormKind string

const (
	FormSuggestion FormKind = "suggestion"
	FormNotify     FormKind = "notify"
	FormSubscribe  FormKind = "subscribe"
)

// SuggestionResetDelay is how long the suggestion success indicator stays up.
const SuggestionResetDelay = 3 * time.Second

// StickySuccess reports whether success is terminal until the form is re-mounted.
func (k FormKind) StickySuccess() bool {
	return k == FormSubscribe
}

// ResetAfter returns the delay after which success returns to idle, or 0 for none.
func (k FormKind) ResetAfter() time.Duration {
	if k == FormSuggestion {
		return SuggestionResetDelay
	}
	return 0
}

// FormStatus is the lifecycle position of a form.
type FormStatus string

const (
	StatusIdle    FormStatus = "idle"
	StatusLoading FormStatus = "loading"
	StatusSuccess FormStatus = "success"
	StatusError   FormStatus = "error"
)

// ErrFormBusy is returned when a submission is attempted while the form cannot accept one.
var ErrFormBusy = errors.New("form is not accepting submissions")

// FormState is the explicit state of one form instance.
//
//	idle ──submit──▶ loading ──ok──▶ success
//	  ▲                 │
//	  └──input── error ◀┘ fail
//
// Transitions return a new value; FormState is never shared between requests.
type FormState struct {
	Kind    FormKind
	Status  FormStatus
	Value   string // current field content
	Message string // status text shown next to the form
}

// NewFormState returns an idle form of the given kind.
func NewFormState(kind FormKind) FormState {
	return FormState{Kind: kind, Status: StatusIdle}
}

// WithValue records user input. Any non-terminal state returns to idle.
func (f FormState) WithValue(v string) FormState {
	if f.Settled() {
		return f
	}
	f.Value = v
	f.Status = StatusIdle
	f.Message = ""
	return f
}

// Begin moves to loading. It fails while loading or after a sticky success.
func (f FormState) Begin() (FormState, error) {
	if f.Status == StatusLoading || f.Settled() {
		return f, ErrFormBusy
	}
	f.Status = StatusLoading
	f.Message = ""
	return f, nil
}

// Succeed clears the field and shows msg.
func (f FormState) Succeed(msg string) FormState {
	f.Status = StatusSuccess
	f.Value = ""
	f.Message = msg
	return f
}

// Fail keeps the field content and shows msg.
func (f FormState) Fail(msg string) FormState {
	f.Status = StatusError
	f.Message = msg
	return f
}

// Settled reports a sticky success that only a re-mount clears.
func (f FormState) Settled() bool {
	return f.Status == StatusSuccess && f.Kind.StickySuccess()
}

// Locked reports whether the submit control must be disabled.
func (f FormState) Locked() bool {
	return f.Status == StatusLoading || f.Settled()
}

// Is reports whether the form is in status s. Used by templates.
func (f FormState) Is(s string) bool {
	return string(f.Status) == s
}
