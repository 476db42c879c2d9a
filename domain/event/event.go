// Package event turns raw payloads coming from the messaging stack and from
// the notification surface into typed events.
package event

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	KeyChatID           = "chatId"
	KeyChatType         = "chatType"
	KeyFrom             = "from"
	KeyIdenticon        = "identicon"
	KeyAlias            = "alias"
	KeyWhisperTimestamp = "whisperTimestamp"
	KeyText             = "text"
)

var validate = validator.New()

// Bundle is the key/value payload of a new message signal.
type Bundle map[string]any

// NewMessage is a validated new message signal.
type NewMessage struct {
	ChatID    domain.ChatID `validate:"required"`
	ChatKind  domain.ChatKind
	From      string `validate:"required"`
	Identicon string `validate:"required"`
	Alias     string
	Timestamp int64
	Text      string
}

// ParseNewMessage reads every recognized key of the bundle.
// An absent or unparseable key fails with ErrMissingEventField.
func ParseNewMessage(b Bundle) (NewMessage, error) {
	chatID, err := b.String(KeyChatID)
	if err != nil {
		return NewMessage{}, err
	}
	chatType, err := b.Int(KeyChatType)
	if err != nil {
		return NewMessage{}, err
	}
	from, err := b.String(KeyFrom)
	if err != nil {
		return NewMessage{}, err
	}
	identicon, err := b.String(KeyIdenticon)
	if err != nil {
		return NewMessage{}, err
	}
	alias, err := b.String(KeyAlias)
	if err != nil {
		return NewMessage{}, err
	}
	timestamp, err := b.Int(KeyWhisperTimestamp)
	if err != nil {
		return NewMessage{}, err
	}
	text, err := b.String(KeyText)
	if err != nil {
		return NewMessage{}, err
	}

	msg := NewMessage{
		ChatID:    domain.ChatID(chatID),
		ChatKind:  domain.ChatKind(chatType),
		From:      from,
		Identicon: identicon,
		Alias:     alias,
		Timestamp: timestamp,
		Text:      text,
	}
	if err := validate.Struct(msg); err != nil {
		return NewMessage{}, fmt.Errorf("%w: %v", errors.ErrMissingEventField, err)
	}
	return msg, nil
}

func (b Bundle) String(key string) (string, error) {
	raw, ok := b[key]
	if !ok || raw == nil {
		return "", missing(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not a string", errors.ErrMissingEventField, key, raw)
	}
	return s, nil
}

// Int accepts native integers, JSON numbers and stringified integers,
// the messaging stack sends chatType as a string.
func (b Bundle) Int(key string) (int64, error) {
	raw, ok := b[key]
	if !ok || raw == nil {
		return 0, missing(key)
	}
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s is not an integer", errors.ErrMissingEventField, key)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", errors.ErrMissingEventField, key, err)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", errors.ErrMissingEventField, key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T, not an integer", errors.ErrMissingEventField, key, raw)
	}
}

func missing(key string) error {
	return fmt.Errorf("%w: %s", errors.ErrMissingEventField, key)
}
