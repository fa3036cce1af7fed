// Package i18n localizes the hub UI.
package i18n

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the UI languages; the first is the default.
var Supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(Supported)

// Match picks the supported language closest to code, or fallback.
func Match(code string, fallback language.Tag) language.Tag {
	if code == "" {
		return fallback
	}
	tag, err := language.Parse(code)
	if err != nil {
		return fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// ParseDefault resolves a configured default language, falling back to Russian.
func ParseDefault(code string) language.Tag {
	return Match(code, language.Russian)
}

// Localizer renders messages for one language. Templates call .T.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) Localizer {
	return Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// T returns the message for key, formatted with args.
func (l Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Lang returns the BCP 47 base language, for the html lang attribute.
func (l Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// FormatTime renders t in loc using the language's date convention:
// ru "02.01.2006, 15:04:05", en "1/2/2006, 3:04:05 PM".
func (l Localizer) FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	if l.tag == language.English {
		return t.Format("1/2/2006, 3:04:05 PM")
	}
	return t.Format("02.01.2006, 15:04:05")
}
