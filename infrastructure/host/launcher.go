package host

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"io"
	"slices"
	"sync"
)

// Launcher prints activity launches instead of starting them.
type Launcher struct {
	mu       sync.Mutex
	out      io.Writer
	target   string
	launched []domain.Intent
}

// NewLauncher opens target on every launch. An empty target cannot be resolved.
func NewLauncher(out io.Writer, target string) *Launcher {
	return &Launcher{out: out, target: target}
}

func (l *Launcher) LaunchTarget() (string, error) {
	if l.target == "" {
		return "", fmt.Errorf("%w: no launch activity", errors.ErrIntentTargetUnresolvable)
	}
	return l.target, nil
}

func (l *Launcher) StartActivity(intent domain.Intent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launched = append(l.launched, intent)
	_, err := fmt.Fprintf(l.out, "=> %s %s (flags 0x%x)\n", intent.Component, intent.Data, int(intent.Flags))
	return err
}

func (l *Launcher) Launched() []domain.Intent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.launched)
}

// ExitFunc adapts a function to contract.Terminator.
type ExitFunc func(code int)

func (f ExitFunc) Terminate(code int) { f(code) }
