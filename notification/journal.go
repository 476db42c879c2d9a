package notification

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// JournaledManager records every successful operation of the wrapped
// notification manager. A journal failure is logged and never surfaces.
type JournaledManager struct {
	next    contract.NotificationManager
	journal contract.IJournal
	log     *slog.Logger
	now     func() time.Time
}

func NewJournaledManager(log *slog.Logger, next contract.NotificationManager, journal contract.IJournal) *JournaledManager {
	return &JournaledManager{next: next, journal: journal, log: log, now: time.Now}
}

func (m *JournaledManager) CreateChannel(channel domain.Channel) error {
	return m.next.CreateChannel(channel)
}

func (m *JournaledManager) Notify(id int, notification domain.Notification) error {
	if err := m.next.Notify(id, notification); err != nil {
		return err
	}
	entry := domain.JournalEntry{
		ID:             uuid.New(),
		Kind:           domain.JournalNotify,
		NotificationID: id,
		Title:          notification.Title,
		Messages:       notification.Number,
		At:             m.now().UTC(),
	}
	if intent := notification.ContentIntent; intent != nil {
		if chatID, ok := intent.Extras[domain.ExtraChatID].(string); ok {
			entry.ChatID = domain.ChatID(chatID)
		}
	}
	m.record(entry)
	return nil
}

func (m *JournaledManager) Cancel(id int) error {
	if err := m.next.Cancel(id); err != nil {
		return err
	}
	m.record(domain.JournalEntry{
		ID:             uuid.New(),
		Kind:           domain.JournalCancel,
		NotificationID: id,
		At:             m.now().UTC(),
	})
	return nil
}

func (m *JournaledManager) CancelAll() error {
	if err := m.next.CancelAll(); err != nil {
		return err
	}
	m.record(domain.JournalEntry{
		ID:   uuid.New(),
		Kind: domain.JournalCancelAll,
		At:   m.now().UTC(),
	})
	return nil
}

func (m *JournaledManager) record(entry domain.JournalEntry) {
	if err := m.journal.Record(entry); err != nil {
		m.log.Warn("Failed to journal notification operation", "kind", entry.Kind, "error", err)
	}
}
