package workers

import (
	"chat-notifier/contract"
	"context"
	"log/slog"
	"sync"
)

// KeepAliveService runs supervised workers in background between Start and Stop.
// Starting a running service or stopping a stopped one is a no-op.
type KeepAliveService struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor *Supervisor
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewKeepAliveService(log *slog.Logger, supervisor *Supervisor, workers ...contract.Worker) *KeepAliveService {
	supervisor.Add(workers...)
	return &KeepAliveService{log: log, supervisor: supervisor}
}

func (s *KeepAliveService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	go func() {
		defer close(done)
		s.supervisor.Run(ctx)
	}()
	s.log.Debug("Keep-alive service started")
	return nil
}

// Stop blocks until every worker returned.
func (s *KeepAliveService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return nil
	}

	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
	s.log.Debug("Keep-alive service stopped")
	return nil
}

func (s *KeepAliveService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}
