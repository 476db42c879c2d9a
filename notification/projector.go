// Package notification projects unread chats onto the notification surface.
package notification

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

// ChatSource lists the live chats in a stable order.
type ChatSource interface {
	Chats() []*domain.Chat
}

// Projector rewrites one messaging style notification per unread chat.
type Projector struct {
	log     *slog.Logger
	chats   ChatSource
	manager contract.NotificationManager
}

func NewProjector(log *slog.Logger, chats ChatSource, manager contract.NotificationManager) *Projector {
	return &Projector{log: log, chats: chats, manager: manager}
}

// Refresh posts every live chat, numbering notifications from 2 in chat order.
// Ids are positional: a chat can get another id once an earlier chat is gone.
// The first failing post stops the pass.
func (p *Projector) Refresh() error {
	notificationID := domain.FirstChatNotificationID
	for _, chat := range p.chats.Chats() {
		if err := p.ProjectOne(notificationID, chat); err != nil {
			return err
		}
		notificationID++
	}
	return nil
}

// ProjectOne posts the notification of a single chat under notificationID.
func (p *Projector) ProjectOne(notificationID int, chat *domain.Chat) error {
	if notificationID < domain.FirstChatNotificationID {
		return fmt.Errorf("%w: id %d is reserved", errors.ErrNotificationPostFailure, notificationID)
	}
	notification := Build(notificationID, chat)
	if err := p.manager.Notify(notificationID, notification); err != nil {
		return fmt.Errorf("%w: chat %s as %d: %v", errors.ErrNotificationPostFailure, chat.ID(), notificationID, err)
	}
	p.log.Debug("Chat notification posted",
		"id", notificationID, "chat", chat.ID(), "messages", notification.Number)
	return nil
}

// Build renders a chat into the notification shown for notificationID.
// Every chat notification is flagged as group summary, like the app always did.
func Build(notificationID int, chat *domain.Chat) domain.Notification {
	messages := chat.Messages()
	style := &domain.MessagingStyle{
		User: domain.MessagingUser,
		Messages: lo.Map(messages, func(m domain.Message, _ int) domain.StyledMessage {
			return domain.StyledMessage{
				Text:      m.Text(),
				Timestamp: m.Timestamp(),
				Author:    m.Author(),
			}
		}),
	}

	text := ""
	if last, ok := chat.LastMessage(); ok {
		text = last.Text()
	}

	return domain.Notification{
		ChannelID:     domain.ChannelID,
		Title:         chat.Name(),
		Text:          text,
		Summary:       chat.Summary(),
		When:          chat.Timestamp(),
		Priority:      domain.PriorityHigh,
		Category:      domain.CategoryMessage,
		Style:         style,
		Group:         domain.GroupStatusMessage,
		GroupSummary:  true,
		ContentIntent: domain.NewChatPendingIntent(domain.ActionTapNotification, notificationID, chat),
		DeleteIntent:  domain.NewChatPendingIntent(domain.ActionDeleteNotification, notificationID, chat),
		Number:        len(messages),
		AutoCancel:    true,
		Vibrate:       []int64{},
	}
}
