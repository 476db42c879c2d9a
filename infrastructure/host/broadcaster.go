package host

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type receiver struct {
	filter []domain.Action
	sink   chan<- event.Signal
}

// Broadcaster routes fired pending intents to the receivers whose filter
// lists the action. Actions are matched by value.
type Broadcaster struct {
	mu        sync.Mutex
	log       *slog.Logger
	receivers []receiver
}

func NewBroadcaster(log *slog.Logger) *Broadcaster {
	return &Broadcaster{log: log}
}

func (b *Broadcaster) RegisterReceiver(filter []domain.Action, sink chan<- event.Signal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.indexOf(sink) >= 0 {
		return fmt.Errorf("receiver already registered")
	}
	b.receivers = append(b.receivers, receiver{filter: slices.Clone(filter), sink: sink})
	return nil
}

func (b *Broadcaster) UnregisterReceiver(sink chan<- event.Signal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(sink)
	if i < 0 {
		return fmt.Errorf("receiver not registered")
	}
	b.receivers = slices.Delete(b.receivers, i, i+1)
	return nil
}

// Send delivers a pending intent without blocking.
// An intent nobody listens to is dropped silently.
func (b *Broadcaster) Send(intent domain.PendingIntent) error {
	interaction, err := event.InteractionFromIntent(intent.Action, intent.Extras)
	if err != nil {
		return err
	}

	signal := event.InteractionSignal(interaction)
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.receivers {
		if !lo.Contains(r.filter, interaction.Action) {
			continue
		}
		select {
		case r.sink <- signal:
		default:
			b.log.Warn("Receiver queue full, dropping callback", "action", interaction.Action)
		}
	}
	return nil
}

func (b *Broadcaster) Receivers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.receivers)
}

func (b *Broadcaster) indexOf(sink chan<- event.Signal) int {
	return slices.IndexFunc(b.receivers, func(r receiver) bool {
		return r.sink == sink
	})
}
