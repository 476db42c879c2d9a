package domain

const (
	ChannelID          = "status-chat-notifications"
	ChannelName        = "Status"
	GroupStatusMessage = "im.status.notifications.message"
	MessagingUser      = "Me"

	// ForegroundNotificationID is used by the keep-alive service.
	// Id 0 cannot be posted at all.
	ForegroundNotificationID = 1
	FirstChatNotificationID  = 2
)

type Priority int

const (
	PriorityDefault Priority = 0
	PriorityHigh    Priority = 1
)

type Category string

const (
	CategoryMessage Category = "msg"
	CategoryService Category = "service"
)

type Importance int

const (
	ImportanceDefault Importance = 3
	ImportanceHigh    Importance = 4
)

// Channel describes the notification channel chat notifications are posted on.
type Channel struct {
	ID          string
	Name        string
	Description string
	Importance  Importance
	SoundURI    string
	SoundUsage  string
	ShowBadge   bool
}

// StyledMessage is one line of a messaging style notification.
type StyledMessage struct {
	Text      string
	Timestamp int64
	Author    *Author
}

type MessagingStyle struct {
	User     string
	Messages []StyledMessage
}

// Notification is what ends up on the notification surface for one id.
type Notification struct {
	ChannelID     string
	Title         string
	Text          string
	// Summary is the line shown for the group once collapsed, name in bold.
	Summary       string
	// When is the epoch millis the notification is sorted and dated by.
	When          int64
	Priority      Priority
	Category      Category
	Style         *MessagingStyle
	Group         string
	GroupSummary  bool
	ContentIntent *PendingIntent
	DeleteIntent  *PendingIntent
	Number        int
	AutoCancel    bool
	Ongoing       bool
	Vibrate       []int64
}
