// Package domain contains core concepts of the notification aggregator.
// This file defines Message records.
// Messages are immutable once built.
package domain

// Message represents an immutable chat message as shown in a notification.
type Message struct {
	author    *Author
	timestamp int64 // milliseconds since epoch
	text      string
}

func NewMessage(author *Author, timestamp int64, text string) Message {
	return Message{author: author, timestamp: timestamp, text: text}
}

func (m Message) Author() *Author { return m.author }

func (m Message) Timestamp() int64 { return m.timestamp }

func (m Message) Text() string { return m.text }
