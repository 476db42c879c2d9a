package event

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
)

// Interaction is a callback fired by the notification surface.
// ChatID and ChatKind are empty for ActionTapStop.
type Interaction struct {
	Action   domain.Action
	ChatID   domain.ChatID
	ChatKind domain.ChatKind
}

// InteractionFromIntent reads the extras carried by a chat pending intent.
func InteractionFromIntent(action domain.Action, extras map[string]any) (Interaction, error) {
	switch action {
	case domain.ActionTapStop:
		return Interaction{Action: action}, nil
	case domain.ActionTapNotification, domain.ActionDeleteNotification:
		b := Bundle(extras)
		chatID, err := b.String(domain.ExtraChatID)
		if err != nil {
			return Interaction{}, err
		}
		// A missing chat type falls back to zero, the deep link then has no prefix.
		kind, err := b.Int(domain.ExtraChatType)
		if err != nil {
			kind = 0
		}
		return Interaction{
			Action:   action,
			ChatID:   domain.ChatID(chatID),
			ChatKind: domain.ChatKind(kind),
		}, nil
	default:
		return Interaction{}, fmt.Errorf("%w: unknown action %q", errors.ErrInvalidPayload, action)
	}
}
