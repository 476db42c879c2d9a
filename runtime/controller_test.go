package runtime

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"chat-notifier/errors"
	"chat-notifier/infrastructure/host"
	"chat-notifier/internal/testutil"
	"chat-notifier/mocks"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testChannel = domain.Channel{ID: domain.ChannelID, Name: domain.ChannelName, Importance: domain.ImportanceHigh}

type harness struct {
	controller *Controller
	surface    *host.Surface
	broadcasts *host.Broadcaster
	launcher   *host.Launcher
	service    *mocks.MockBackgroundService
	terminator *mocks.MockTerminator
}

// newHarness wires a controller onto the terminal host.
func newHarness(t *testing.T, launchTarget string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		broadcasts: host.NewBroadcaster(slog.Default()),
		launcher:   host.NewLauncher(io.Discard, launchTarget),
		service:    mocks.NewMockBackgroundService(ctrl),
		terminator: mocks.NewMockTerminator(ctrl),
	}
	h.surface = host.NewSurface(io.Discard, false, h.broadcasts)
	h.service.EXPECT().Start().Return(nil)
	h.service.EXPECT().Stop().Return(nil).AnyTimes()

	controller, err := NewController(slog.Default(), h.surface, h.service, h.broadcasts, h.launcher, h.terminator,
		testChannel, 16, 16)
	require.NoError(t, err)
	h.controller = controller
	t.Cleanup(func() { _ = controller.Stop() })
	return h
}

func message(t *testing.T, chatID, chatType, from, alias string, at int64, text string) event.Bundle {
	return testutil.NewMessageBundle(t, chatID, chatType, from, alias, at, text)
}

func chatOf(n domain.Notification) domain.ChatID {
	return domain.ChatID(n.ContentIntent.Extras[domain.ExtraChatID].(string))
}

func kindOf(n domain.Notification) domain.ChatKind {
	return domain.ChatKind(n.ContentIntent.Extras[domain.ExtraChatType].(int))
}

func TestController_S1_SingleMessage(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")

	// When one message arrives
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))

	// Then one notification is posted under id 2
	active := h.surface.Active()
	req.Len(active, 1)
	n, ok := active[2]
	req.True(ok)
	req.Equal("Ada", n.Title)
	req.Equal("hi", n.Text)
	req.Equal(1, n.Number)
	req.Len(n.Style.Messages, 1)
	req.Equal("hi", n.Style.Messages[0].Text)
	req.Equal(int64(1000), n.Style.Messages[0].Timestamp)
	req.Equal("Ada", n.Style.Messages[0].Author.Name)
	req.Equal(domain.ChatID("a"), chatOf(n))
	req.Equal("status-im://p/a", domain.DeepLink(chatOf(n), kindOf(n)))
}

func TestController_S2_TwoMessagesSameChat(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")

	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1100, "again")))

	active := h.surface.Active()
	req.Len(active, 1)
	n := active[2]
	req.Equal(2, n.Number)
	req.Equal("again", n.Text)
	req.Equal("hi", n.Style.Messages[0].Text)
	req.Equal("again", n.Style.Messages[1].Text)
	req.Equal(int64(1100), n.Style.Messages[1].Timestamp)
	// Author identity is shared across messages of the same key
	req.Same(n.Style.Messages[0].Author, n.Style.Messages[1].Author)
}

func TestController_S3_TwoChats(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")

	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.NoError(h.controller.HandleNewMessage(message(t, "b", "3", "k2", "Bob", 1200, "yo")))

	active := h.surface.Active()
	req.Len(active, 2)
	req.Equal(domain.ChatID("a"), chatOf(active[2]))
	req.Equal(domain.ChatID("b"), chatOf(active[3]))
	for _, n := range active {
		req.Equal(domain.GroupStatusMessage, n.Group)
		req.True(n.GroupSummary)
	}
}

func TestController_S4_S5_TapThenDismiss(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.NoError(h.controller.HandleNewMessage(message(t, "b", "3", "k2", "Bob", 1200, "yo")))

	// When tapping the notification of a
	req.NoError(h.controller.HandleInteraction(event.Interaction{
		Action: domain.ActionTapNotification, ChatID: "a", ChatKind: domain.OneToOne,
	}))

	// Then a is read, the app opened on a, and b is still shown
	_, ok := h.controller.chats.Get("a")
	req.False(ok)
	launched := h.launcher.Launched()
	req.Len(launched, 1)
	req.Equal("status-im://p/a", launched[0].Data)
	req.Equal(domain.FlagActivityNewTask|domain.FlagActivityClearTop, launched[0].Flags)
	req.Contains(h.surface.Active(), 3)
	req.Zero(h.surface.CancelAllCalls())

	// When dismissing the last one
	req.NoError(h.controller.HandleInteraction(event.Interaction{
		Action: domain.ActionDeleteNotification, ChatID: "b", ChatKind: domain.PrivateGroup,
	}))

	// Then the registry is empty and the tray cleared
	req.Zero(h.controller.chats.Len())
	req.Equal(1, h.surface.CancelAllCalls())
	req.Empty(h.surface.Active())
}

func TestController_S6_Stop(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	h.terminator.EXPECT().Terminate(0).Times(1)

	req.NoError(h.controller.HandleInteraction(event.Interaction{Action: domain.ActionTapStop}))

	req.Equal(1, h.surface.CancelAllCalls())
	req.Empty(h.surface.Active())
	req.Zero(h.broadcasts.Receivers())
	select {
	case <-h.controller.Stopped():
	default:
		req.Fail("controller should be stopped")
	}

	// Later signals are refused
	req.ErrorIs(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1100, "late")), errors.ErrControllerStopped)
	req.ErrorIs(h.controller.Post(message(t, "a", "1", "k1", "Ada", 1100, "late")), errors.ErrControllerStopped)
	req.NoError(h.controller.Stop())
}

func TestController_PositionalIDsAfterRead(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.NoError(h.controller.HandleNewMessage(message(t, "b", "1", "k2", "Bob", 1100, "yo")))
	req.NoError(h.controller.HandleInteraction(event.Interaction{Action: domain.ActionDeleteNotification, ChatID: "a"}))

	// When b gets another message
	req.NoError(h.controller.HandleNewMessage(message(t, "b", "1", "k2", "Bob", 1200, "again")))

	// Then b is now projected under the first chat id
	n := h.surface.Active()[2]
	req.Equal(domain.ChatID("b"), chatOf(n))
	req.Equal(2, n.Number)
}

func TestController_MalformedIdenticon_LeavesEmptyChat(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	bundle := message(t, "a", "1", "k1", "Ada", 1000, "hi")
	bundle[event.KeyIdenticon] = "data:image/png;base64,bm90IGFuIGltYWdl"

	err := h.controller.HandleNewMessage(bundle)

	// Then the message is lost but the chat exists, and nothing was posted
	req.ErrorIs(err, errors.ErrMalformedAuthorIcon)
	chat, ok := h.controller.chats.Get("a")
	req.True(ok)
	req.Zero(chat.Len())
	req.Empty(h.surface.Active())

	// And the next valid message of the same key resolves the author
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1100, "again")))
	req.Equal(1, h.surface.Active()[2].Number)
}

func TestController_MissingField_Dropped(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	bundle := message(t, "a", "1", "k1", "Ada", 1000, "hi")
	delete(bundle, event.KeyFrom)

	req.ErrorIs(h.controller.HandleNewMessage(bundle), errors.ErrMissingEventField)
	req.Zero(h.controller.chats.Len())
	req.Empty(h.surface.Active())
}

func TestController_UnresolvableLaunchTarget(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "")
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))

	// When tapping without a launchable app
	req.NoError(h.controller.HandleInteraction(event.Interaction{Action: domain.ActionTapNotification, ChatID: "a"}))

	// Then nothing was launched but the chat is still marked as read
	req.Empty(h.launcher.Launched())
	req.Zero(h.controller.chats.Len())
	req.Equal(1, h.surface.CancelAllCalls())
}

func TestController_InteractionForUnknownChat(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	req.NoError(h.controller.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")))

	req.NoError(h.controller.HandleInteraction(event.Interaction{Action: domain.ActionDeleteNotification, ChatID: "zzz"}))

	req.Equal(1, h.controller.chats.Len())
	req.Zero(h.surface.CancelAllCalls())
}

func TestController_SingleInstance(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	ctrl := gomock.NewController(t)

	// A second controller is refused before touching any collaborator
	_, err := NewController(slog.Default(), mocks.NewMockNotificationManager(ctrl), mocks.NewMockBackgroundService(ctrl),
		mocks.NewMockBroadcastHost(ctrl), mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl),
		testChannel, 16, 16)
	req.ErrorIs(err, errors.ErrControllerAlreadyRunning)

	// Once stopped the slot is released
	req.NoError(h.controller.Stop())
	next := newHarness(t, "im.status.ethereum.MainActivity")
	req.NotNil(next.controller)
}

func TestController_ChannelCreationFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)

	// Given a surface refusing the channel, the service is never started
	manager.EXPECT().CreateChannel(testChannel).Return(stderrors.New("denied"))

	_, err := NewController(slog.Default(), manager, service, mocks.NewMockBroadcastHost(ctrl),
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 16)
	req.ErrorIs(err, errors.ErrChannelCreation)

	// And the slot is free again
	h := newHarness(t, "im.status.ethereum.MainActivity")
	req.NotNil(h.controller)
}

func TestController_ReceiverRegistrationFailure_StopsService(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)
	broadcasts := mocks.NewMockBroadcastHost(ctrl)

	gomock.InOrder(
		manager.EXPECT().CreateChannel(testChannel).Return(nil),
		service.EXPECT().Start().Return(nil),
		broadcasts.EXPECT().RegisterReceiver(gomock.Len(3), gomock.Any()).Return(stderrors.New("busy")),
		service.EXPECT().Stop().Return(nil),
	)

	_, err := NewController(slog.Default(), manager, service, broadcasts,
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 16)
	req.ErrorContains(err, "busy")
}

func TestController_RefreshOnlyWhenDirty(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)
	broadcasts := mocks.NewMockBroadcastHost(ctrl)

	manager.EXPECT().CreateChannel(testChannel).Return(nil)
	service.EXPECT().Start().Return(nil)
	service.EXPECT().Stop().Return(nil)
	broadcasts.EXPECT().RegisterReceiver(gomock.Any(), gomock.Any()).Return(nil)
	broadcasts.EXPECT().UnregisterReceiver(gomock.Any()).Return(nil)
	manager.EXPECT().CancelAll().Return(nil)

	c, err := NewController(slog.Default(), manager, service, broadcasts,
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 16)
	req.NoError(err)
	defer func() { req.NoError(c.Stop()) }()

	// A failed author resolution posts nothing
	bad := message(t, "a", "1", "k1", "Ada", 1000, "hi")
	bad[event.KeyIdenticon] = "no comma"
	req.ErrorIs(c.HandleNewMessage(bad), errors.ErrMalformedAuthorIcon)
	req.False(c.shouldRefresh.Load())

	// A good message posts exactly one refresh pass of one chat
	manager.EXPECT().Notify(2, gomock.Any()).Return(nil).Times(1)
	req.NoError(c.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1100, "hi")))
	req.False(c.shouldRefresh.Load())
}

func TestController_PostFailure_Surfaces(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)
	broadcasts := mocks.NewMockBroadcastHost(ctrl)

	manager.EXPECT().CreateChannel(gomock.Any()).Return(nil)
	service.EXPECT().Start().Return(nil)
	service.EXPECT().Stop().Return(nil)
	broadcasts.EXPECT().RegisterReceiver(gomock.Any(), gomock.Any()).Return(nil)
	broadcasts.EXPECT().UnregisterReceiver(gomock.Any()).Return(nil)
	manager.EXPECT().CancelAll().Return(stderrors.New("tray gone"))

	c, err := NewController(slog.Default(), manager, service, broadcasts,
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 16)
	req.NoError(err)

	manager.EXPECT().Notify(2, gomock.Any()).Return(stderrors.New("tray gone"))
	req.ErrorIs(c.HandleNewMessage(message(t, "a", "1", "k1", "Ada", 1000, "hi")), errors.ErrNotificationPostFailure)

	// Stop reports the failed cleanup but still releases everything
	err = c.Stop()
	req.ErrorContains(err, "cancel notifications")
	req.False(live.Load())
}

func TestController_Run_DrainsPostsAndCallbacks(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- h.controller.Run(ctx) }()

	// When a message is posted
	req.NoError(h.controller.Post(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.Eventually(func() bool {
		_, ok := h.surface.Active()[2]
		return ok
	}, time.Second, 5*time.Millisecond)

	// And its notification is tapped on the tray
	req.NoError(h.surface.Tap(2))
	req.Eventually(func() bool {
		return len(h.launcher.Launched()) == 1 && h.surface.CancelAllCalls() == 1
	}, time.Second, 5*time.Millisecond)

	// When the stop action arrives the loop ends on its own
	h.terminator.EXPECT().Terminate(0)
	req.NoError(h.broadcasts.Send(domain.PendingIntent{Action: domain.ActionTapStop}))
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("controller loop should have ended")
	}
}

func TestController_Post_QueueFull(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)
	broadcasts := mocks.NewMockBroadcastHost(ctrl)
	manager.EXPECT().CreateChannel(gomock.Any()).Return(nil)
	manager.EXPECT().CancelAll().Return(nil)
	service.EXPECT().Start().Return(nil)
	service.EXPECT().Stop().Return(nil)
	broadcasts.EXPECT().RegisterReceiver(gomock.Any(), gomock.Any()).Return(nil)
	broadcasts.EXPECT().UnregisterReceiver(gomock.Any()).Return(nil)

	c, err := NewController(slog.Default(), manager, service, broadcasts,
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 1)
	req.NoError(err)
	defer func() { req.NoError(c.Stop()) }()

	// Nobody runs the loop, the second post overflows
	req.NoError(c.Post(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.ErrorIs(c.Post(message(t, "a", "1", "k1", "Ada", 1100, "hi")), errors.ErrQueueFull)
}

func TestController_Run_KeepsArrivalOrder(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	dismiss := domain.PendingIntent{
		Action: domain.ActionDeleteNotification,
		Extras: map[string]any{domain.ExtraChatID: "a", domain.ExtraChatType: int(domain.OneToOne)},
	}

	for i := range 20 {
		// Given a message then the dismissal of its chat, queued in that order
		req.NoError(h.controller.Post(message(t, "a", "1", "k1", "Ada", int64(1000+i), "hi")))
		req.NoError(h.broadcasts.Send(dismiss))

		// When the loop handles the queue
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req.ErrorIs(h.controller.Run(ctx), context.Canceled)

		// Then the dismissal wins, nothing is left on the tray
		req.Empty(h.surface.Active(), "iteration %d", i)
		req.Zero(h.controller.chats.Len())
		req.Equal(i+1, h.surface.CancelAllCalls())
	}
}

func TestController_Run_HandlesQueuedSignalsOnCancel(t *testing.T) {
	req := require.New(t)
	h := newHarness(t, "im.status.ethereum.MainActivity")
	ctx, cancel := context.WithCancel(context.Background())

	// Given two messages queued before the loop gets to them
	req.NoError(h.controller.Post(message(t, "a", "1", "k1", "Ada", 1000, "hi")))
	req.NoError(h.controller.Post(message(t, "b", "1", "k2", "Bob", 1100, "yo")))

	// When the context is canceled as the loop starts
	done := make(chan error, 1)
	go func() { done <- h.controller.Run(ctx) }()
	cancel()

	// Then both reach the tray before Run returns
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("controller loop should have ended")
	}
	active := h.surface.Active()
	req.Len(active, 2)
	req.Equal("Ada", active[2].Title)
	req.Equal("Bob", active[3].Title)
}

func TestController_Enqueue_WaitsForRoom(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockNotificationManager(ctrl)
	service := mocks.NewMockBackgroundService(ctrl)
	broadcasts := mocks.NewMockBroadcastHost(ctrl)
	manager.EXPECT().CreateChannel(gomock.Any()).Return(nil)
	manager.EXPECT().CancelAll().Return(nil)
	service.EXPECT().Start().Return(nil)
	service.EXPECT().Stop().Return(nil)
	broadcasts.EXPECT().RegisterReceiver(gomock.Any(), gomock.Any()).Return(nil)
	broadcasts.EXPECT().UnregisterReceiver(gomock.Any()).Return(nil)

	c, err := NewController(slog.Default(), manager, service, broadcasts,
		mocks.NewMockActivityLauncher(ctrl), mocks.NewMockTerminator(ctrl), testChannel, 16, 1)
	req.NoError(err)

	// Given a full inbox
	req.NoError(c.Enqueue(context.Background(), message(t, "a", "1", "k1", "Ada", 1000, "hi")))

	// When nobody drains it, Enqueue gives up with its context
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req.ErrorIs(c.Enqueue(ctx, message(t, "a", "1", "k1", "Ada", 1100, "hi")), context.DeadlineExceeded)

	// And a stopped controller refuses at once
	req.NoError(c.Stop())
	req.ErrorIs(c.Enqueue(context.Background(), message(t, "a", "1", "k1", "Ada", 1200, "hi")), errors.ErrControllerStopped)
}
