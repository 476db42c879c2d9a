package domain

import (
	"time"

	"github.com/google/uuid"
)

type JournalKind string

const (
	JournalNotify    JournalKind = "notify"
	JournalCancel    JournalKind = "cancel"
	JournalCancelAll JournalKind = "cancel_all"
)

// JournalEntry is one operation applied to the notification surface.
type JournalEntry struct {
	ID             uuid.UUID
	Kind           JournalKind
	NotificationID int
	ChatID         ChatID
	Title          string
	Messages       int
	At             time.Time
}
