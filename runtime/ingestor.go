package runtime

import (
	"chat-notifier/authors"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"fmt"
)

// HandleNewMessage appends a new message signal to its chat and refreshes
// the notifications at most once.
//
// When the author cannot be resolved the chat is still created, empty,
// and nothing is refreshed.
func (c *Controller) HandleNewMessage(bundle event.Bundle) error {
	if c.stopped.Load() {
		return errors.ErrControllerStopped
	}

	msg, err := event.ParseNewMessage(bundle)
	if err != nil {
		c.log.Error("Dropping new message signal", "error", err)
		return err
	}

	c.upsertChat(msg)
	if err := c.upsertMessage(msg); err != nil {
		c.log.Error("Dropping message", "chat", msg.ChatID, "author", authors.Fingerprint(msg.From), "error", err)
		return err
	}

	if c.shouldRefresh.CompareAndSwap(true, false) {
		return c.projector.Refresh()
	}
	return nil
}

func (c *Controller) upsertChat(msg event.NewMessage) {
	if _, created := c.chats.Upsert(msg.ChatID, msg.ChatKind); created {
		c.log.Debug("Chat created", "chat", msg.ChatID, "kind", msg.ChatKind)
	}
}

func (c *Controller) upsertMessage(msg event.NewMessage) error {
	if _, ok := c.chats.Get(msg.ChatID); !ok {
		c.log.Debug(fmt.Sprintf("%v: %s", errors.ErrUnknownChatOnMessageUpsert, msg.ChatID))
		return nil
	}

	author, err := c.authors.Resolve(msg.From, msg.Identicon, msg.Alias)
	if err != nil {
		return err
	}
	if !c.chats.Append(msg.ChatID, domain.NewMessage(author, msg.Timestamp, msg.Text)) {
		return nil
	}
	c.shouldRefresh.Store(true)
	return nil
}
