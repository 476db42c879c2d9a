//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-notifier/domain"
	"chat-notifier/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// NotificationManager is the platform notification surface.
type NotificationManager interface {
	CreateChannel(channel domain.Channel) error
	Notify(id int, notification domain.Notification) error
	// Cancel removes one notification, an ongoing one included.
	Cancel(id int) error
	// CancelAll removes every notification except the ongoing ones.
	CancelAll() error
}

// BackgroundService keeps the messaging stack alive while the app is in background.
type BackgroundService interface {
	Start() error
	Stop() error
}

// BroadcastHost delivers notification callbacks matching a filter to a sink.
type BroadcastHost interface {
	RegisterReceiver(filter []domain.Action, sink chan<- event.Signal) error
	UnregisterReceiver(sink chan<- event.Signal) error
}

// ActivityLauncher opens the host application.
type ActivityLauncher interface {
	LaunchTarget() (string, error)
	StartActivity(intent domain.Intent) error
}

// Terminator ends the process once everything has been stopped.
type Terminator interface {
	Terminate(code int)
}

// IJournal keeps a trace of what has been shown on the notification surface.
type IJournal interface {
	Record(entry domain.JournalEntry) error
	Latest(limit int) ([]domain.JournalEntry, error)
}
