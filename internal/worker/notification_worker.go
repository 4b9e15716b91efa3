package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/service"
)

// NotificationWorker periodically drains the notification queue and delivers
// each entry off the request path.
type NotificationWorker struct {
	notifications *service.NotificationService
	interval      time.Duration
	logger        *zap.Logger
	stop          chan struct{}
	done          chan struct{}
}

// NewNotificationWorker builds the worker.
func NewNotificationWorker(notifications *service.NotificationService, interval time.Duration, logger *zap.Logger) *NotificationWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &NotificationWorker{
		notifications: notifications,
		interval:      interval,
		logger:        logger,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start launches the drain loop.
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			w.flush(ctx)
			return
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *NotificationWorker) flush(ctx context.Context) {
	for _, n := range w.notifications.Drain() {
		if err := w.notifications.Deliver(ctx, n); err != nil {
			w.logger.Warn("notification delivery failed",
				zap.String("event_id", n.EventID), zap.Error(err))
		}
	}
}

// Stop flushes outstanding notifications and waits for the loop to exit.
func (w *NotificationWorker) Stop() {
	close(w.stop)
	<-w.done
}
