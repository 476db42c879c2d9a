package domain

// Action identifies a broadcast the notification surface sends back to us.
// Actions are compared by value.
type Action string

const (
	ActionDeleteNotification Action = "im.status.ethereum.module.DELETE_NOTIFICATION"
	ActionTapNotification    Action = "im.status.ethereum.module.TAP_NOTIFICATION"
	ActionTapStop            Action = "im.status.ethereum.module.TAP_STOP"
)

const (
	ActionView        = "android.intent.action.VIEW"
	CategoryBrowsable = "android.intent.category.BROWSABLE"
)

const (
	ExtraChatID   = "im.status.ethereum.chatId"
	ExtraChatType = "im.status.ethereum.chatType"
)

type IntentFlags int

const (
	FlagActivityClearTop IntentFlags = 0x04000000
	FlagActivityNewTask  IntentFlags = 0x10000000

	FlagCancelCurrent IntentFlags = 0x10000000
)

// PendingIntent is a broadcast handed to the notification surface and fired
// back when the user taps or dismisses a notification.
type PendingIntent struct {
	Action      Action
	RequestCode int
	Extras      map[string]any
	Flags       IntentFlags
}

func NewChatPendingIntent(action Action, notificationID int, chat *Chat) *PendingIntent {
	return &PendingIntent{
		Action:      action,
		RequestCode: notificationID,
		Extras: map[string]any{
			ExtraChatID:   string(chat.ID()),
			ExtraChatType: int(chat.Kind()),
		},
		Flags: FlagCancelCurrent,
	}
}

// Intent is an activity launch request sent to the host.
type Intent struct {
	Action    string
	Category  string
	Component string
	Data      string
	Flags     IntentFlags
}

// NewOpenAppIntent opens the host at the chat deep link the same way a link
// from a browser does, so the app routes it instead of resuming.
func NewOpenAppIntent(component string, chatID ChatID, kind ChatKind) Intent {
	return Intent{
		Action:    ActionView,
		Category:  CategoryBrowsable,
		Component: component,
		Data:      DeepLink(chatID, kind),
		Flags:     FlagActivityNewTask | FlagActivityClearTop,
	}
}
