package workers

import (
	"chat-notifier/contract"
	"chat-notifier/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// maxBackoffSteps caps the restart delay at restartInterval << maxBackoffSteps.
	maxBackoffSteps = 5
	// maxCrashes consecutive failures mean the tray is gone for good.
	maxCrashes = 8
	// stableRun resets the failure streak of a worker that ran at least this long.
	stableRun = time.Minute
)

// Supervisor keeps the background service workers alive while the service runs.
//
// A worker that panics or fails is restarted after a delay doubling with each
// consecutive failure, starting at restartInterval. A worker that ran long
// enough before failing starts a new streak. After maxCrashes failures in a
// row the worker is abandoned, the background service then runs without it.
// A worker returning nil is done.
type Supervisor struct {
	mu              sync.Mutex
	cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
	maxCrashes      int
	restarts        atomic.Int64
	abandoned       atomic.Int64
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log,
		restartInterval: restartInterval,
		maxCrashes:      maxCrashes,
	}
}

// Run starts every worker and blocks until all of them returned.
// Canceling the parent ctx or calling Stop cancels the workers.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	workers := append([]contract.Worker(nil), s.workers...)
	s.mu.Unlock()
	defer cancel()

	for _, worker := range workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs one worker in its own goroutine under the restart policy.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	name := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		streak := 0
		for ctx.Err() == nil {
			startedAt := time.Now()
			err := runGuarded(ctx, worker)
			switch {
			case err == nil:
				s.log.Info("Worker finished", "name", name)
				return
			case ctx.Err() != nil:
				s.log.Info("Worker stopped with the service", "name", name)
				return
			}

			if time.Since(startedAt) >= stableRun {
				streak = 0
			}
			streak++
			if streak >= s.maxCrashes {
				s.abandoned.Add(1)
				s.log.Error("Worker keeps failing, giving up", "name", name, "failures", streak, "error", err)
				return
			}

			delay := backoff(s.restartInterval, streak)
			s.restarts.Add(1)
			s.log.Warn("Worker failed, restarting", "name", name, "failures", streak, "delay", delay, "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}
	}()
}

// runGuarded turns a panic of the worker into ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// backoff is the delay before the restart following the streak-th failure.
func backoff(base time.Duration, streak int) time.Duration {
	step := min(max(streak-1, 0), maxBackoffSteps)
	return base << step
}

// Stop cancels every supervised worker. Run returns once they all exited.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Restarts counts the worker restarts since creation.
func (s *Supervisor) Restarts() int64 {
	return s.restarts.Load()
}

// Abandoned counts the workers given up after too many failures.
func (s *Supervisor) Abandoned() int64 {
	return s.abandoned.Load()
}
