package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled background work.
type Job interface {
	Name() string
	Run() error
}

// Scheduler runs jobs on cron schedules. Schedules include a seconds
// field, e.g. "0 0 0 * * *" for local midnight.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a stopped scheduler.
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
}

// AddJob registers a job under the given cron schedule.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			s.logger.Error("scheduled job failed",
				slog.String("job", job.Name()),
				slog.String("error", err.Error()),
			)
			return
		}
		s.logger.Debug("scheduled job completed", slog.String("job", job.Name()))
	})
	if err != nil {
		return err
	}

	s.logger.Info("job registered",
		slog.String("job", job.Name()),
		slog.String("schedule", schedule),
	)
	return nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
