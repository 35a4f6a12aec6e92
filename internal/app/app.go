package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"zentra-notify/internal/domain/ports"
	"zentra-notify/internal/usecase"
)

// ErrDeliveryFailed is returned by a one-shot run whose notification was not delivered.
var ErrDeliveryFailed = errors.New("notification delivery failed")

const (
	bannerTitle = "Discord Embed Test"
	runTimeout  = time.Minute
)

// App runs the notification sender once, or repeatedly on a cron schedule.
type App struct {
	cron     *cron.Cron
	sender   *usecase.NotificationSender
	logger   ports.Logger
	reporter ports.Reporter
	schedule string
}

// New constructs an App instance. An empty schedule means a single run.
func New(sender *usecase.NotificationSender, logger ports.Logger, reporter ports.Reporter, schedule string) *App {
	return &App{
		cron:     cron.New(),
		sender:   sender,
		logger:   logger,
		reporter: reporter,
		schedule: schedule,
	}
}

// Run delivers the notification. Without a schedule it returns
// ErrDeliveryFailed when delivery fails; with one it sends immediately and
// then blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.runOnce(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "sending first notification immediately")
	a.runScheduled(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	a.reporter.Rule()
	a.reporter.Title(bannerTitle)
	a.reporter.Rule()
	result := a.sender.Send(ctx)
	a.reporter.Rule()

	if !result.Success {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, result.Detail)
	}
	return nil
}

func (a *App) runScheduled(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	// The sender logs failures itself; the schedule keeps going regardless.
	_ = a.sender.Send(ctx)
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		a.runScheduled(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}
