package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr only", remoteAddr: "10.0.0.5:1234", want: "10.0.0.5"},
		{
			name:       "ignores headers without trust",
			remoteAddr: "10.0.0.5:1234",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:       "10.0.0.5",
		},
		{
			name:       "cloudflare header first",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"CF-Connecting-IP": "5.6.7.8", "X-Forwarded-For": "1.2.3.4"},
			trustProxy: true,
			want:       "5.6.7.8",
		},
		{
			name:       "left-most forwarded for",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": " 1.2.3.4 , 9.9.9.9"},
			trustProxy: true,
			want:       "1.2.3.4",
		},
		{
			name:       "real ip fallback",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "4.4.4.4"},
			trustProxy: true,
			want:       "4.4.4.4",
		},
		{name: "ipv6 remote", remoteAddr: "[::1]:8080", want: "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "garbage", ""})

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.10", true},
		{"::ffff:192.168.1.10", true},
		{"192.168.1.11", false},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if NewIPMatcher(nil).IsEmpty() != true {
		t.Error("empty list should produce an empty matcher")
	}
}
