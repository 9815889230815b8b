package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RemindRiderPoolHandler is satisfied by commands.RemindRiderPoolCommandHandler.
type RemindRiderPoolHandler interface {
	Handle(ctx context.Context, cmd commands.RemindRiderPoolCommand) (int, error)
}

// RiderPoolReminderJob re-broadcasts orders that no rider has claimed for
// longer than waitingFor. It never changes an order's status.
type RiderPoolReminderJob struct {
	handler    RemindRiderPoolHandler
	schedule   string
	waitingFor time.Duration
	runTimeout time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRiderPoolReminderJob creates the job. schedule is a six-field cron
// expression (seconds first). Each run is bounded by runTimeout.
func NewRiderPoolReminderJob(
	handler RemindRiderPoolHandler,
	schedule string,
	waitingFor, runTimeout time.Duration,
	logger *slog.Logger,
) *RiderPoolReminderJob {
	return &RiderPoolReminderJob{
		handler:    handler,
		schedule:   schedule,
		waitingFor: waitingFor,
		runTimeout: runTimeout,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "rider_pool_reminder_job"),
	}
}

func (j *RiderPoolReminderJob) Name() string {
	return "rider pool reminder"
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *RiderPoolReminderJob) Start() error {
	cmd, err := commands.NewRemindRiderPoolCommand(j.waitingFor)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider pool reminder job started",
		"schedule", j.schedule,
		"waiting_for", j.waitingFor,
	)
	return nil
}

func (j *RiderPoolReminderJob) run(cmd commands.RemindRiderPoolCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), j.runTimeout)
	defer cancel()

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rider pool reminder job failed", "error", err)
		return
	}
	if sent > 0 {
		j.logger.InfoContext(ctx, "Reminded rider pool", "orders", sent)
	}
}

// Stop waits for a running reminder to finish.
func (j *RiderPoolReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider pool reminder job stopped")
}
