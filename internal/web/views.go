package web

import (
	"time"

	"github.com/rs/xid"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/links"
	"github.com/MrSnakeDoc/linkhub/internal/telegram"
)

// Tabs of the hub.
const (
	TabLinks       = "links"
	TabSuggestions = "suggestions"
)

// ValidTab reports whether tab names a hub tab.
func ValidTab(tab string) bool {
	return tab == TabLinks || tab == TabSuggestions
}

var sectionHeadings = map[domain.Category]string{
	domain.CategoryMain:  i18n.MsgSectionMain,
	domain.CategoryMedia: i18n.MsgSectionMedia,
	domain.CategoryOther: i18n.MsgSectionOther,
}

// Page is the full document.
type Page struct {
	L      i18n.Localizer
	Bridge string // startup bridge commands
	Hub    Hub
}

// Hub is the swappable body: header, tab bar and the active tab.
type Hub struct {
	L           i18n.Localizer
	Title       string
	Identified  bool
	Tab         string
	Toggle      telegram.BridgeCommand
	Close       telegram.BridgeCommand
	Links       *LinksTab       // set when Tab == TabLinks
	Suggestions *SuggestionsTab // set when Tab == TabSuggestions
}

// NewHub builds the hub header for the viewer.
func NewHub(l i18n.Localizer, s domain.Session, tab string) Hub {
	title := l.T(i18n.MsgTitle)
	if name := s.FirstName(); name != "" {
		title = l.T(i18n.MsgTitleUser, name)
	}
	// Tabs only exist for identified viewers; everyone else stays on links.
	if !s.Identified() {
		tab = TabLinks
	}
	return Hub{
		L:          l,
		Title:      title,
		Identified: s.Identified(),
		Tab:        tab,
		Toggle:     telegram.BridgeToggleMainButton,
		Close:      telegram.BridgeClose,
	}
}

// LinksTab is the link directory plus the subscription form.
type LinksTab struct {
	L         i18n.Localizer
	Sections  []Section
	Subscribe Form
}

// Section is one titled group of link cards.
type Section struct {
	Category domain.Category
	Heading  string
	Links    []*domain.LinkItem
}

// Sections groups items into localized sections in category order.
func Sections(l i18n.Localizer, items []*domain.LinkItem) []Section {
	dir := links.Directory(items)
	out := make([]Section, 0, len(dir))
	for _, s := range dir {
		out = append(out, Section{
			Category: s.Category,
			Heading:  l.T(sectionHeadings[s.Category]),
			Links:    s.Links,
		})
	}
	return out
}

// SuggestionsTab is the suggestion form, the optional review list and the composer.
type SuggestionsTab struct {
	L      i18n.Localizer
	Form   Form
	Admin  *AdminList // nil unless the viewer reviews suggestions
	Notify Notify
}

// FieldFormToken is the hidden input naming one rendered form instance.
const FieldFormToken = "form_token"

// Form renders one FormState.
type Form struct {
	L     i18n.Localizer
	State domain.FormState
	Token string // fresh per render; keys the in-flight guard
}

// NewForm wraps a state for rendering.
func NewForm(l i18n.Localizer, state domain.FormState) Form {
	return Form{L: l, State: state, Token: xid.New().String()}
}

// ResetTrigger is the htmx trigger that returns a succeeded form to idle, or "".
func (f Form) ResetTrigger() string {
	d := f.State.Kind.ResetAfter()
	if d <= 0 || !f.State.Is(string(domain.StatusSuccess)) {
		return ""
	}
	return "load delay:" + d.String()
}

// AdminList is the suggestion review list.
type AdminList struct {
	L     i18n.Localizer
	Items []SuggestionRow
	OOB   bool // render as an htmx out-of-band swap
}

// SuggestionRow is one rendered suggestion.
type SuggestionRow struct {
	ID        int64
	Username  string
	CreatedAt string
	Content   string
}

// NewAdminList formats suggestions in server order.
func NewAdminList(l i18n.Localizer, loc *time.Location, items []domain.Suggestion) *AdminList {
	rows := make([]SuggestionRow, 0, len(items))
	for _, s := range items {
		rows = append(rows, SuggestionRow{
			ID:        s.ID,
			Username:  s.Username,
			CreatedAt: l.FormatTime(s.CreatedAt.Time, loc),
			Content:   s.Content,
		})
	}
	return &AdminList{L: l, Items: rows}
}

// Notify is the admin notification composer, or its identifier gate when locked.
type Notify struct {
	L         i18n.Localizer
	Unlocked  bool
	EnteredID string
	Form      Form
}
