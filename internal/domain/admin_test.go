package domain

import "testing"

func sessionFor(id int64) Session {
	return Session{User: &User{ID: id, FirstName: "Test"}, InitData: "blob"}
}

func TestAdminPolicy_CanReviewSuggestions(t *testing.T) {
	policy := NewAdminPolicy([]int64{641407863, 42}, "641407863")

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{name: "anonymous", session: Session{}, want: false},
		{name: "listed admin", session: sessionFor(42), want: true},
		{name: "notify admin also listed", session: sessionFor(641407863), want: true},
		{name: "regular user", session: sessionFor(7), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanReviewSuggestions(tt.session); got != tt.want {
				t.Errorf("CanReviewSuggestions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdminPolicy_CanNotify(t *testing.T) {
	policy := NewAdminPolicy(nil, "641407863")

	tests := []struct {
		name    string
		session Session
		entered string
		want    bool
	}{
		{name: "session matches", session: sessionFor(641407863), want: true},
		{name: "entered matches", session: sessionFor(7), entered: "641407863", want: true},
		{name: "anonymous entered matches", session: Session{}, entered: "641407863", want: true},
		{name: "entered differs", session: sessionFor(7), entered: "123", want: false},
		{name: "entered with spaces", session: Session{}, entered: " 641407863", want: false},
		{name: "nothing", session: Session{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanNotify(tt.session, tt.entered); got != tt.want {
				t.Errorf("CanNotify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdminPolicy_CanNotifyDisabled(t *testing.T) {
	policy := NewAdminPolicy(nil, "")
	if policy.CanNotify(Session{}, "") {
		t.Error("empty notify admin id must never match")
	}
}

func TestAdminPolicy_NotifyAdminID(t *testing.T) {
	policy := NewAdminPolicy(nil, "641407863")

	tests := []struct {
		name    string
		session Session
		entered string
		want    string
	}{
		{name: "entered wins", session: sessionFor(641407863), entered: "999", want: "999"},
		{name: "session fallback", session: sessionFor(641407863), want: "641407863"},
		{name: "empty", session: Session{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.NotifyAdminID(tt.session, tt.entered); got != tt.want {
				t.Errorf("NotifyAdminID() = %q, want %q", got, tt.want)
			}
		})
	}
}
