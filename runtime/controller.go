// Package runtime owns the unread chats and couples the notification surface
// with the background service that keeps messages flowing.
package runtime

import (
	"chat-notifier/authors"
	"chat-notifier/contract"
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"chat-notifier/notification"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// live guards the one controller a process may hold.
var live atomic.Bool

var receiverFilter = []domain.Action{
	domain.ActionDeleteNotification,
	domain.ActionTapNotification,
	domain.ActionTapStop,
}

// Controller aggregates new message signals per chat while the app is in
// background and reacts to taps and dismissals of the resulting notifications.
//
// Signals and callbacks share one inbox drained by Run, so state is only
// mutated from one goroutine and in arrival order. Handle* methods are the
// synchronous entry points Run relies on.
type Controller struct {
	log        *slog.Logger
	chats      *Registry
	authors    *authors.Registry
	projector  *notification.Projector
	manager    contract.NotificationManager
	service    contract.BackgroundService
	broadcasts contract.BroadcastHost
	launcher   contract.ActivityLauncher
	terminator contract.Terminator

	shouldRefresh atomic.Bool
	stopped       atomic.Bool
	stopOnce      sync.Once
	stopErr       error

	inbox chan event.Signal
	done  chan struct{}
}

// NewController creates the notification channel, starts the background
// service and registers for notification callbacks, in that order.
// Only one controller may be live per process.
func NewController(log *slog.Logger,
	manager contract.NotificationManager, service contract.BackgroundService,
	broadcasts contract.BroadcastHost, launcher contract.ActivityLauncher, terminator contract.Terminator,
	channel domain.Channel, avatarSize, bufferSize int) (*Controller, error) {
	if !live.CompareAndSwap(false, true) {
		return nil, errors.ErrControllerAlreadyRunning
	}

	c := &Controller{
		log:        log,
		chats:      NewRegistry(),
		authors:    authors.NewRegistry(log, avatarSize),
		manager:    manager,
		service:    service,
		broadcasts: broadcasts,
		launcher:   launcher,
		terminator: terminator,
		inbox:      make(chan event.Signal, bufferSize),
		done:       make(chan struct{}),
	}
	c.projector = notification.NewProjector(log, c.chats, manager)
	c.shouldRefresh.Store(false)

	if err := manager.CreateChannel(channel); err != nil {
		live.Store(false)
		return nil, fmt.Errorf("%w: %v", errors.ErrChannelCreation, err)
	}

	log.Info("Starting background service")
	if err := service.Start(); err != nil {
		live.Store(false)
		return nil, fmt.Errorf("background service failed to start: %w", err)
	}

	if err := broadcasts.RegisterReceiver(receiverFilter, c.inbox); err != nil {
		_ = service.Stop()
		live.Store(false)
		return nil, fmt.Errorf("notification receiver registration failed: %w", err)
	}
	log.Info("Notification receiver registered")
	return c, nil
}

// Post queues a new message signal. The signal is dropped when the inbox is full.
func (c *Controller) Post(bundle event.Bundle) error {
	if c.stopped.Load() {
		return errors.ErrControllerStopped
	}
	select {
	case c.inbox <- event.MessageSignal(bundle):
		return nil
	default:
		c.log.Warn("Event queue full, dropping new message signal")
		return errors.ErrQueueFull
	}
}

// Enqueue queues a new message signal, waiting for room in the inbox.
func (c *Controller) Enqueue(ctx context.Context, bundle event.Bundle) error {
	if c.stopped.Load() {
		return errors.ErrControllerStopped
	}
	select {
	case c.inbox <- event.MessageSignal(bundle):
		return nil
	case <-c.done:
		return errors.ErrControllerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run handles signals in arrival order until ctx is canceled or the
// controller stops. Signals already queued when ctx is canceled are still
// handled before Run returns.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-c.done:
			return nil
		case <-ctx.Done():
			c.log.Debug("Stopping controller loop", "pending", len(c.inbox))
			c.drain()
			return ctx.Err()
		case signal := <-c.inbox:
			c.dispatch(signal)
		}
	}
}

func (c *Controller) drain() {
	for {
		select {
		case <-c.done:
			return
		case signal := <-c.inbox:
			c.dispatch(signal)
		default:
			return
		}
	}
}

// dispatch drops the signal on error, errors are logged where they happen.
func (c *Controller) dispatch(signal event.Signal) {
	if signal.Interaction != nil {
		_ = c.HandleInteraction(*signal.Interaction)
		return
	}
	_ = c.HandleNewMessage(signal.Message)
}

// Stop clears every notification, since their callbacks can no longer be
// received, then stops the background service and the receiver.
// Later calls return the result of the first one.
func (c *Controller) Stop() error {
	c.stopOnce.Do(func() {
		c.log.Info("Stopping background service")
		c.stopped.Store(true)

		var errs []error
		if err := c.manager.CancelAll(); err != nil {
			errs = append(errs, fmt.Errorf("cancel notifications: %w", err))
		}
		if err := c.service.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop background service: %w", err))
		}
		if err := c.broadcasts.UnregisterReceiver(c.inbox); err != nil {
			errs = append(errs, fmt.Errorf("unregister receiver: %w", err))
		}
		c.stopErr = stderrors.Join(errs...)

		close(c.done)
		live.Store(false)
	})
	return c.stopErr
}

// Stopped is closed once Stop has run.
func (c *Controller) Stopped() <-chan struct{} {
	return c.done
}

// Stats is a point in time view used by diagnostics.
func (c *Controller) Stats() map[string]any {
	return map[string]any{
		"Chats":   c.chats.Len(),
		"Unread":  c.chats.Unread(),
		"Authors": c.authors.Len(),
		"Stopped": c.stopped.Load(),
	}
}
