package runtime

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"fmt"
)

// HandleInteraction reacts to a notification callback.
// A tap opens the chat in the app, a tap or a dismiss marks the chat as read,
// and the stop action shuts everything down then ends the process.
func (c *Controller) HandleInteraction(interaction event.Interaction) error {
	if c.stopped.Load() {
		return errors.ErrControllerStopped
	}
	c.log.Error("intent received", "action", interaction.Action)

	switch interaction.Action {
	case domain.ActionTapNotification:
		c.openApp(interaction.ChatID, interaction.ChatKind)
		return c.markRead(interaction.ChatID)
	case domain.ActionDeleteNotification:
		return c.markRead(interaction.ChatID)
	case domain.ActionTapStop:
		err := c.Stop()
		c.terminator.Terminate(0)
		return err
	default:
		return nil
	}
}

// openApp never fails the callback: the chat is marked as read anyway.
func (c *Controller) openApp(chatID domain.ChatID, kind domain.ChatKind) {
	target, err := c.launcher.LaunchTarget()
	if err != nil {
		c.log.Error("Cannot open app", "chat", chatID,
			"error", fmt.Errorf("%w: %v", errors.ErrIntentTargetUnresolvable, err))
		return
	}
	if err := c.launcher.StartActivity(domain.NewOpenAppIntent(target, chatID, kind)); err != nil {
		c.log.Error("Cannot open app", "chat", chatID, "error", err)
	}
}

// markRead drops the chat, and every notification once no chat is left.
func (c *Controller) markRead(chatID domain.ChatID) error {
	c.chats.Remove(chatID)
	if c.chats.Len() > 0 {
		return nil
	}
	if err := c.manager.CancelAll(); err != nil {
		c.log.Error("Failed to clear notifications", "error", err)
		return err
	}
	return nil
}
