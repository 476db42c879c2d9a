package domain

import (
	"fmt"
	"slices"
)

type ChatID string

// ChatKind mirrors the chat type numbers sent by the messaging stack.
type ChatKind int

const (
	OneToOne     ChatKind = 1
	PrivateGroup ChatKind = 3
)

const noName = "no-name"

// Chat is the unread log of one conversation.
// Messages are kept in arrival order and never removed one by one:
// the whole chat is dropped once the user has seen it.
type Chat struct {
	id       ChatID
	kind     ChatKind
	messages []Message
}

func NewChat(id ChatID, kind ChatKind) *Chat {
	return &Chat{
		id:       id,
		kind:     kind,
		messages: nil,
	}
}

func (c *Chat) ID() ChatID { return c.id }

func (c *Chat) Kind() ChatKind { return c.kind }

func (c *Chat) Append(message Message) {
	c.messages = append(c.messages, message)
}

// Messages returns a copy of the unread log.
func (c *Chat) Messages() []Message {
	return slices.Clone(c.messages)
}

func (c *Chat) Len() int { return len(c.messages) }

func (c *Chat) LastMessage() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Name is the author name of the latest message.
// In a chat we also post from another device this picks our own name.
func (c *Chat) Name() string {
	last, ok := c.LastMessage()
	if !ok || last.Author() == nil {
		return noName
	}
	return last.Author().Name
}

// Timestamp of the latest message, zero for an empty chat.
func (c *Chat) Timestamp() int64 {
	last, ok := c.LastMessage()
	if !ok {
		return 0
	}
	return last.Timestamp()
}

// Summary renders the inbox line of the latest message.
func (c *Chat) Summary() string {
	last, ok := c.LastMessage()
	if !ok {
		return ""
	}
	return fmt.Sprintf("<b>%s</b>: %s", c.Name(), last.Text())
}
