package web

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/xid"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/links"
)

var ru = i18n.New(language.Russian)

func embeddedLinks(t *testing.T) []*domain.LinkItem {
	t.Helper()
	config, err := links.NewLoader("").Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	items, err := links.NewMapper().MapLinks(config)
	if err != nil {
		t.Fatalf("map catalog: %v", err)
	}
	return items
}

func render(t *testing.T, name string, data any) string {
	t.Helper()
	exec, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	var buf bytes.Buffer
	if err := exec(&buf, name, data); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return buf.String()
}

func anonymousPage(t *testing.T) Page {
	hub := NewHub(ru, domain.Session{}, TabLinks)
	hub.Links = &LinksTab{
		L:         ru,
		Sections:  Sections(ru, embeddedLinks(t)),
		Subscribe: NewForm(ru, domain.NewFormState(domain.FormSubscribe)),
	}
	return Page{L: ru, Bridge: "ready expand", Hub: hub}
}

func TestPage_AnonymousDirectory(t *testing.T) {
	out := render(t, TmplPage, anonymousPage(t))

	if got := strings.Count(out, `class="link-card `); got != 7 {
		t.Fatalf("rendered %d link cards, want 7", got)
	}

	// Sections appear in order main, media, other with 2/4/1 cards.
	main := strings.Index(out, `data-category="main"`)
	media := strings.Index(out, `data-category="media"`)
	other := strings.Index(out, `data-category="other"`)
	if main < 0 || media < main || other < media {
		t.Fatalf("section order wrong: main=%d media=%d other=%d", main, media, other)
	}
	counts := []int{
		strings.Count(out[main:media], `class="link-card `),
		strings.Count(out[media:other], `class="link-card `),
		strings.Count(out[other:], `class="link-card `),
	}
	if counts[0] != 2 || counts[1] != 4 || counts[2] != 1 {
		t.Errorf("section sizes = %v, want [2 4 1]", counts)
	}

	for _, want := range []string{
		`target="_blank"`,
		`rel="noopener noreferrer"`,
		"Akimary Hub",
		"Главное",
		"Стримы и видео",
		"Прочее",
		`data-bridge="ready expand"`,
		`lang="ru"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, `role="tablist"`) {
		t.Error("anonymous page must not render tabs")
	}
}

func TestHub_IdentifiedTitleAndTabs(t *testing.T) {
	s := domain.Session{User: &domain.User{ID: 7, FirstName: "Аня"}, InitData: "x"}
	hub := NewHub(ru, s, TabSuggestions)
	hub.Suggestions = &SuggestionsTab{
		L:      ru,
		Form:   NewForm(ru, domain.NewFormState(domain.FormSuggestion)),
		Notify: Notify{L: ru, Form: NewForm(ru, domain.NewFormState(domain.FormNotify))},
	}

	out := render(t, TmplHub, hub)
	for _, want := range []string{"Akimary × Аня", `role="tablist"`, `id="suggestion-box"`, `id="admin-id-input"`} {
		if !strings.Contains(out, want) {
			t.Errorf("hub missing %q", want)
		}
	}
	if strings.Contains(out, `id="admin-list"`) {
		t.Error("admin list rendered without reviewer rights")
	}
}

func TestNewHub_AnonymousForcedToLinks(t *testing.T) {
	if got := NewHub(ru, domain.Session{}, TabSuggestions).Tab; got != TabLinks {
		t.Errorf("Tab = %q, want %q", got, TabLinks)
	}
}

func TestSuggestionForm_SuccessSchedulesReset(t *testing.T) {
	state := domain.NewFormState(domain.FormSuggestion).Succeed(ru.T(i18n.MsgSuggestSuccess))
	out := render(t, TmplSuggestionForm, NewForm(ru, state))

	if !strings.Contains(out, `hx-trigger="load delay:3s"`) {
		t.Errorf("success fragment should schedule its reset:\n%s", out)
	}
	if !strings.Contains(out, "Отправлено!") {
		t.Error("success label missing")
	}

	idle := render(t, TmplSuggestionForm, NewForm(ru, domain.NewFormState(domain.FormSuggestion)))
	if strings.Contains(idle, "load delay") {
		t.Error("idle fragment must not schedule a reset")
	}
}

func TestSuggestionForm_ErrorKeepsInput(t *testing.T) {
	state := domain.NewFormState(domain.FormSuggestion).WithValue("more streams").Fail(ru.T(i18n.MsgSuggestError))
	out := render(t, TmplSuggestionForm, NewForm(ru, state))

	if !strings.Contains(out, ">more streams</textarea>") {
		t.Error("input not preserved on error")
	}
	if !strings.Contains(out, "Ошибка. Попробуй позже.") {
		t.Error("error message missing")
	}
}

func TestSubscribe_StickySuccessDisablesButton(t *testing.T) {
	state := domain.NewFormState(domain.FormSubscribe).Succeed(ru.T(i18n.MsgSubscribeSuccess))
	out := render(t, TmplSubscribe, NewForm(ru, state))

	if !strings.Contains(out, "Вы подписаны!") {
		t.Error("success label missing")
	}
	if !strings.Contains(out, `<button type="submit" disabled`) {
		t.Errorf("button should be disabled after subscribing:\n%s", out)
	}
}

func TestAdminList(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	items := []domain.Suggestion{
		{ID: 2, Username: "bob", Content: "second", CreatedAt: domain.Timestamp{Time: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)}},
		{ID: 1, Username: "alice", Content: "<b>first</b>", CreatedAt: domain.Timestamp{Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}},
	}
	out := render(t, TmplAdminList, NewAdminList(ru, moscow, items))

	if strings.Index(out, "@bob") > strings.Index(out, "@alice") {
		t.Error("server order not preserved")
	}
	if !strings.Contains(out, "02.05.2024, 13:00:00") {
		t.Error("timestamp not formatted in display zone")
	}
	if strings.Contains(out, "<b>first</b>") {
		t.Error("content must be escaped")
	}

	empty := render(t, TmplAdminList, NewAdminList(ru, moscow, nil))
	if !strings.Contains(empty, "Предложений пока нет") {
		t.Error("empty placeholder missing")
	}
}

func TestAdminList_OOB(t *testing.T) {
	list := NewAdminList(ru, time.UTC, nil)
	list.OOB = true
	if out := render(t, TmplAdminList, list); !strings.Contains(out, `hx-swap-oob="true"`) {
		t.Error("out-of-band attribute missing")
	}
}

func TestNotify_Gate(t *testing.T) {
	locked := render(t, TmplNotify, Notify{L: ru, EnteredID: "123", Form: NewForm(ru, domain.NewFormState(domain.FormNotify))})
	if strings.Contains(locked, `hx-post="/admin/notify"`) {
		t.Error("locked composer must only render the id field")
	}
	if !strings.Contains(locked, `value="123"`) {
		t.Error("entered id not preserved")
	}

	unlocked := render(t, TmplNotify, Notify{L: ru, Unlocked: true, Form: NewForm(ru, domain.NewFormState(domain.FormNotify))})
	if !strings.Contains(unlocked, `hx-post="/admin/notify"`) {
		t.Error("unlocked composer missing its form")
	}
	if !strings.Contains(unlocked, `<button id="notify-send" type="submit" disabled`) {
		t.Error("send button should be disabled while the message is empty")
	}
}

func TestAssets(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(Assets()))
	defer srv.Close()

	for _, name := range []string{"/hub.js", "/hub.css"} {
		resp, err := http.Get(srv.URL + name)
		if err != nil {
			t.Fatalf("GET %s: %v", name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d", name, resp.StatusCode)
		}
	}
}

func TestFormTokens(t *testing.T) {
	a := NewForm(ru, domain.NewFormState(domain.FormSubscribe))
	b := NewForm(ru, domain.NewFormState(domain.FormSubscribe))
	if a.Token == b.Token {
		t.Fatalf("two renders share token %q", a.Token)
	}
	if _, err := xid.FromString(a.Token); err != nil {
		t.Fatalf("token %q is not an xid: %v", a.Token, err)
	}

	tests := []struct {
		name string
		tmpl string
		data any
		want string
	}{
		{"suggestion", TmplSuggestionForm, a, a.Token},
		{"subscribe", TmplSubscribe, b, b.Token},
		{"notify", TmplNotify, Notify{L: ru, Unlocked: true, Form: a}, a.Token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tt.tmpl, tt.data)
			want := `name="` + FieldFormToken + `" value="` + tt.want + `"`
			if !strings.Contains(out, want) {
				t.Errorf("%s missing %s", tt.tmpl, want)
			}
		})
	}
}

func TestHubJSLeavesInFlightButtons(t *testing.T) {
	srv := httptest.NewServer(http.FileServer(Assets()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/hub.js")
	if err != nil {
		t.Fatalf("GET hub.js: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read hub.js: %v", err)
	}

	js := string(body)
	guard := strings.Index(js, `classList.contains("htmx-request")`)
	toggle := strings.Index(js, `btn.disabled = evt.target.value === ""`)
	if guard < 0 || toggle < 0 {
		t.Fatal("required-field listener must check for an in-flight request")
	}
	if guard > toggle {
		t.Error("in-flight check must run before the button is re-enabled")
	}
}
