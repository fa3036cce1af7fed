package i18n

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		code string
		want language.Tag
	}{
		{"ru", language.Russian},
		{"en", language.English},
		{"en-US", language.English},
		{"", language.Russian},
		{"??", language.Russian},
		{"ja", language.Russian},
	}
	for _, tt := range tests {
		if got := Match(tt.code, language.Russian); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCatalogComplete(t *testing.T) {
	ru := catalog[language.Russian]
	for tag, messages := range catalog {
		if len(messages) != len(ru) {
			t.Errorf("%v has %d messages, ru has %d", tag, len(messages), len(ru))
		}
		for key := range ru {
			if _, ok := messages[key]; !ok {
				t.Errorf("%v is missing %q", tag, key)
			}
		}
	}
}

func TestLocalizerT(t *testing.T) {
	ru := New(language.Russian)
	if got := ru.T(MsgTitleUser, "Аня"); got != "Akimary × Аня" {
		t.Errorf("T(title_user) = %q", got)
	}
	if got := ru.T(MsgAdminListEmpty); got != "Предложений пока нет" {
		t.Errorf("T(admin.list_empty) = %q", got)
	}
	if got := New(language.English).T(MsgTabLinks); got != "Links" {
		t.Errorf("en T(tab.links) = %q", got)
	}
	if ru.Lang() != "ru" {
		t.Errorf("Lang() = %q, want ru", ru.Lang())
	}
}

func TestFormatTime(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	ts := time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)

	if got := New(language.Russian).FormatTime(ts, moscow); got != "01.05.2024, 18:04:05" {
		t.Errorf("ru FormatTime() = %q", got)
	}
	if got := New(language.English).FormatTime(ts, moscow); got != "5/1/2024, 6:04:05 PM" {
		t.Errorf("en FormatTime() = %q", got)
	}
	if got := New(language.Russian).FormatTime(time.Time{}, moscow); got != "" {
		t.Errorf("zero FormatTime() = %q, want empty", got)
	}
}
