package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	MsgTitle          = "hub.title"
	MsgTitleUser      = "hub.title_user"
	MsgSubtitle       = "hub.subtitle"
	MsgFooter         = "hub.footer"
	MsgClose          = "hub.close"
	MsgTabLinks       = "tab.links"
	MsgTabSuggestions = "tab.suggestions"

	MsgSectionMain  = "section.main"
	MsgSectionMedia = "section.media"
	MsgSectionOther = "section.other"

	MsgSuggestHeading     = "suggest.heading"
	MsgSuggestDescription = "suggest.description"
	MsgSuggestPlaceholder = "suggest.placeholder"
	MsgSuggestSubmit      = "suggest.submit"
	MsgSuggestLoading     = "suggest.loading"
	MsgSuggestSuccess     = "suggest.success"
	MsgSuggestError       = "suggest.error"

	MsgAdminListHeading = "admin.list_heading"
	MsgAdminListEmpty   = "admin.list_empty"

	MsgNotifyAccess        = "notify.access"
	MsgNotifyIDPlaceholder = "notify.id_placeholder"
	MsgNotifyHeading       = "notify.heading"
	MsgNotifyPlaceholder   = "notify.placeholder"
	MsgNotifySubmit        = "notify.submit"
	MsgNotifyLoading       = "notify.loading"
	MsgNotifySuccess       = "notify.success"
	MsgNotifyDenied        = "notify.denied"
	MsgNotifyNetwork       = "notify.network"

	MsgSubscribeHeading     = "subscribe.heading"
	MsgSubscribeDescription = "subscribe.description"
	MsgSubscribePlaceholder = "subscribe.placeholder"
	MsgSubscribeSubmit      = "subscribe.submit"
	MsgSubscribeLoading     = "subscribe.loading"
	MsgSubscribeSuccess     = "subscribe.success"
	MsgSubscribeError       = "subscribe.error"
	MsgSubscribeInvalid     = "subscribe.invalid"
)

var catalog = map[language.Tag]map[string]string{
	language.Russian: {
		MsgTitle:          "Akimary Hub",
		MsgTitleUser:      "Akimary × %s",
		MsgSubtitle:       "Стример, контентмейкер и твоя любимая мамуля",
		MsgFooter:         "Powered by Akimary & Telegram SDK",
		MsgClose:          "Закрыть",
		MsgTabLinks:       "Ссылки",
		MsgTabSuggestions: "Предложения",

		MsgSectionMain:  "Главное",
		MsgSectionMedia: "Стримы и видео",
		MsgSectionOther: "Прочее",

		MsgSuggestHeading:     "Предложения",
		MsgSuggestDescription: "Что добавить или изменить в хабе? Пиши сюда!",
		MsgSuggestPlaceholder: "Твое предложение...",
		MsgSuggestSubmit:      "Отправить",
		MsgSuggestLoading:     "Отправка...",
		MsgSuggestSuccess:     "Отправлено!",
		MsgSuggestError:       "Ошибка. Попробуй позже.",

		MsgAdminListHeading: "Все предложения (Админ)",
		MsgAdminListEmpty:   "Предложений пока нет",

		MsgNotifyAccess:        "Admin Access",
		MsgNotifyIDPlaceholder: "Введите Admin ID",
		MsgNotifyHeading:       "Управление уведомлениями",
		MsgNotifyPlaceholder:   "Текст уведомления в Telegram...",
		MsgNotifySubmit:        "Отправить в Telegram",
		MsgNotifyLoading:       "Отправка...",
		MsgNotifySuccess:       "Уведомление отправлено!",
		MsgNotifyDenied:        "Ошибка доступа",
		MsgNotifyNetwork:       "Ошибка сервера",

		MsgSubscribeHeading:     "Рассылка",
		MsgSubscribeDescription: "Подпишитесь, чтобы получать новости первым!",
		MsgSubscribePlaceholder: "Ваш e-mail",
		MsgSubscribeSubmit:      "Подписаться",
		MsgSubscribeLoading:     "Подписка...",
		MsgSubscribeSuccess:     "Вы подписаны!",
		MsgSubscribeError:       "Произошла ошибка. Попробуйте снова.",
		MsgSubscribeInvalid:     "Введите корректный e-mail",
	},
	language.English: {
		MsgTitle:          "Akimary Hub",
		MsgTitleUser:      "Akimary × %s",
		MsgSubtitle:       "Streamer, content creator and your favourite mum",
		MsgFooter:         "Powered by Akimary & Telegram SDK",
		MsgClose:          "Close",
		MsgTabLinks:       "Links",
		MsgTabSuggestions: "Suggestions",

		MsgSectionMain:  "Main",
		MsgSectionMedia: "Streams & videos",
		MsgSectionOther: "Other",

		MsgSuggestHeading:     "Suggestions",
		MsgSuggestDescription: "What should the hub add or change? Write here!",
		MsgSuggestPlaceholder: "Your suggestion...",
		MsgSuggestSubmit:      "Send",
		MsgSuggestLoading:     "Sending...",
		MsgSuggestSuccess:     "Sent!",
		MsgSuggestError:       "Error. Try again later.",

		MsgAdminListHeading: "All suggestions (Admin)",
		MsgAdminListEmpty:   "No suggestions yet",

		MsgNotifyAccess:        "Admin Access",
		MsgNotifyIDPlaceholder: "Enter Admin ID",
		MsgNotifyHeading:       "Notification control",
		MsgNotifyPlaceholder:   "Telegram notification text...",
		MsgNotifySubmit:        "Send to Telegram",
		MsgNotifyLoading:       "Sending...",
		MsgNotifySuccess:       "Notification sent!",
		MsgNotifyDenied:        "Access error",
		MsgNotifyNetwork:       "Server error",

		MsgSubscribeHeading:     "Newsletter",
		MsgSubscribeDescription: "Subscribe to get the news first!",
		MsgSubscribePlaceholder: "Your e-mail",
		MsgSubscribeSubmit:      "Subscribe",
		MsgSubscribeLoading:     "Subscribing...",
		MsgSubscribeSuccess:     "You are subscribed!",
		MsgSubscribeError:       "Something went wrong. Please try again.",
		MsgSubscribeInvalid:     "Enter a valid e-mail",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, msg := range messages {
			_ = message.SetString(tag, key, msg)
		}
	}
}
