package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrMissingEventField          = fmt.Errorf("missing event field")
	ErrMalformedAuthorIcon        = fmt.Errorf("malformed author icon")
	ErrUnknownChatOnMessageUpsert = fmt.Errorf("unknown chat on message upsert")
	ErrIntentTargetUnresolvable   = fmt.Errorf("intent target unresolvable")
	ErrNotificationPostFailure    = fmt.Errorf("notification post failure")

	ErrChannelCreation          = fmt.Errorf("notification channel creation failed")
	ErrControllerStopped        = fmt.Errorf("controller stopped")
	ErrControllerAlreadyRunning = fmt.Errorf("a controller is already running in this process")
	ErrQueueFull                = fmt.Errorf("event queue full")
	ErrInvalidPayload           = fmt.Errorf("invalid payload")
)
