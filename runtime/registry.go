package runtime

import (
	"chat-notifier/domain"
	"sync"

	"github.com/samber/lo"
)

// Registry holds the live unread chats.
// Chats are listed in first-sighting order so that refreshes are stable
// as long as no chat is added or removed.
type Registry struct {
	mu    sync.RWMutex
	chats map[domain.ChatID]*domain.Chat
	order []domain.ChatID
}

func NewRegistry() *Registry {
	return &Registry{
		chats: make(map[domain.ChatID]*domain.Chat),
		order: nil,
	}
}

func (r *Registry) Get(id domain.ChatID) (*domain.Chat, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chat, ok := r.chats[id]
	return chat, ok
}

// Upsert returns the chat registered under id, creating it with kind when absent.
// The kind of an existing chat is never changed.
func (r *Registry) Upsert(id domain.ChatID, kind domain.ChatKind) (*domain.Chat, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chat, ok := r.chats[id]; ok {
		return chat, false
	}
	chat := domain.NewChat(id, kind)
	r.chats[id] = chat
	r.order = append(r.order, id)
	return chat, true
}

// Append adds message to the chat registered under id.
// It reports false when no such chat exists.
func (r *Registry) Append(id domain.ChatID, message domain.Message) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	chat, ok := r.chats[id]
	if !ok {
		return false
	}
	chat.Append(message)
	return true
}

// Remove drops the chat and its whole unread log.
func (r *Registry) Remove(id domain.ChatID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[id]; !ok {
		return false
	}
	delete(r.chats, id)
	r.order = lo.Without(r.order, id)
	return true
}

// Chats returns a snapshot of the live chats.
func (r *Registry) Chats() []*domain.Chat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(id domain.ChatID, _ int) *domain.Chat {
		return r.chats[id]
	})
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chats)
}

// Unread counts the messages over every live chat.
func (r *Registry) Unread() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.SumBy(lo.Values(r.chats), func(c *domain.Chat) int {
		return c.Len()
	})
}
