package workers

import (
	"chat-notifier/contract"
	"chat-notifier/domain"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/process"
)

// KeepAliveWorker holds the foreground notification of the background
// service and reports the process health every interval. The notification
// is removed when the worker is canceled.
type KeepAliveWorker struct {
	log      *slog.Logger
	manager  contract.NotificationManager
	interval time.Duration
}

func NewKeepAliveWorker(log *slog.Logger, manager contract.NotificationManager, interval time.Duration) *KeepAliveWorker {
	return &KeepAliveWorker{log: log, manager: manager, interval: interval}
}

// ForegroundNotification stops the notifier when tapped.
func ForegroundNotification() domain.Notification {
	return domain.Notification{
		ChannelID: domain.ChannelID,
		Title:     domain.ChannelName,
		Text:      "Running in background to receive messages, tap to stop",
		Priority:  domain.PriorityDefault,
		Category:  domain.CategoryService,
		ContentIntent: &domain.PendingIntent{
			Action:      domain.ActionTapStop,
			RequestCode: domain.ForegroundNotificationID,
			Flags:       domain.FlagCancelCurrent,
		},
		Ongoing: true,
	}
}

// Run posts the foreground notification then ticks until ctx is canceled.
func (w *KeepAliveWorker) Run(ctx context.Context) error {
	w.log.Info("Starting keep-alive worker")
	if err := w.manager.Notify(domain.ForegroundNotificationID, ForegroundNotification()); err != nil {
		return fmt.Errorf("foreground notification: %w", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			if err := w.manager.Cancel(domain.ForegroundNotificationID); err != nil {
				w.log.Warn("Failed to remove foreground notification", "error", err)
			}
			return nil
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Debug("Keep-alive heartbeat",
				"pid", p.Pid, "status", status, "cpu", cpu, "rss", humanize.Bytes(rss))
		}
	}
}

// selfStats retrieves memory, CPU and OS status of the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
