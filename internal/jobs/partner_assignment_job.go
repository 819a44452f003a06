package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodmate/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PartnerAssignmentJob manages the scheduled assignment of delivery partners
// to placed orders. Each run sweeps the unassigned backlog and matches every
// waiting order with an available partner.
type PartnerAssignmentJob struct {
	handler  commands.AssignPartnerCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPartnerAssignmentJob creates a job that runs the assignment sweep on the
// given cron schedule (with a seconds field, e.g. "* * * * * *").
func NewPartnerAssignmentJob(handler commands.AssignPartnerCommandHandler,
	schedule string, logger *slog.Logger) *PartnerAssignmentJob {
	return &PartnerAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "partner_assignment_job"),
	}
}

// Start begins the partner assignment job on its schedule.
func (j *PartnerAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignPartnerCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and a fully busy fleet are expected between
			// orders; only unexpected failures are worth logging.
			if !errors.Is(err, commands.ErrNoUnassignedOrdersFound) &&
				!errors.Is(err, commands.ErrNoAvailablePartnersFound) {
				j.logger.ErrorContext(ctx, "Partner assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Partner assignment job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the partner assignment job.
func (j *PartnerAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Partner assignment job stopped")
}
