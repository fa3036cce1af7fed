package telegram

import (
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:TEST-token"

func testValues(authDate time.Time) url.Values {
	v := url.Values{}
	v.Set("query_id", "AAH-test")
	v.Set("user", `{"id":641407863,"first_name":"Akimary","username":"akimaryyy","language_code":"ru"}`)
	v.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	return v
}

func TestParse(t *testing.T) {
	authDate := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := testValues(authDate).Encode()

	s, err := Parse(raw)
	require.NoError(t, err)

	require.NotNil(t, s.User)
	assert.Equal(t, int64(641407863), s.User.ID)
	assert.Equal(t, "Akimary", s.User.FirstName)
	assert.Equal(t, "akimaryyy", s.User.Username)
	assert.Equal(t, "AAH-test", s.QueryID)
	assert.True(t, s.AuthDate.Equal(authDate))
	assert.Equal(t, raw, s.InitData)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "bad auth date", raw: "auth_date=yesterday"},
		{name: "bad user json", raw: "user=%7Bnope"},
		{name: "bad escape", raw: "user=%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseWithoutUser(t *testing.T) {
	s, err := Parse("query_id=abc")
	require.NoError(t, err)
	assert.Nil(t, s.User)
	assert.True(t, s.HasInitData())
}

func TestVerify(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	signed := Sign(testValues(now.Add(-time.Hour)), testBotToken)

	tests := []struct {
		name    string
		raw     string
		token   string
		maxAge  time.Duration
		wantErr error
	}{
		{name: "valid", raw: signed, token: testBotToken, maxAge: 24 * time.Hour},
		{name: "valid without age check", raw: signed, token: testBotToken},
		{name: "wrong token", raw: signed, token: "other", wantErr: ErrBadSignature},
		{name: "expired", raw: signed, token: testBotToken, maxAge: time.Minute, wantErr: ErrExpired},
		{name: "no hash", raw: testValues(now).Encode(), token: testBotToken, wantErr: ErrMissingHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.raw, tt.token, tt.maxAge, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestVerifyTampered(t *testing.T) {
	now := time.Now()
	values, err := url.ParseQuery(Sign(testValues(now), testBotToken))
	require.NoError(t, err)

	values.Set("user", `{"id":1,"first_name":"Mallory"}`)
	assert.ErrorIs(t, Verify(values.Encode(), testBotToken, 0, now), ErrBadSignature)
}

func TestAttr(t *testing.T) {
	assert.Equal(t, "ready expand", Attr(StartupCommands()...))
	assert.Equal(t, "", Attr())
}
