// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

// retentionPeriod is how long notifications are kept before the daily sweep
// removes them.
const retentionPeriod = 30 * 24 * time.Hour

// Scheduler runs the periodic jobs: workshop reminders and notification
// retention.
type Scheduler struct {
	workshopRepo        repository.WorkshopRepositoryIface
	notificationService *service.NotificationService
	cron                *gocron.Scheduler
	now                 func() time.Time
}

func New(workshopRepo repository.WorkshopRepositoryIface, notificationService *service.NotificationService) *Scheduler {
	return &Scheduler{
		workshopRepo:        workshopRepo,
		notificationService: notificationService,
		cron:                gocron.NewScheduler(time.UTC),
		now:                 time.Now,
	}
}

// Start registers and launches the jobs. Job panics stay inside gocron;
// errors are logged per item and never abort a run.
func (s *Scheduler) Start() error {
	if _, err := s.cron.Every(1).Hour().Do(s.SendReminders); err != nil {
		return err
	}

	if _, err := s.cron.Every(1).Day().At("00:00").Do(s.SweepNotifications); err != nil {
		return err
	}

	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// SendReminders notifies every user enrolled in a workshop starting
// tomorrow. The window is [tomorrow 00:00, day after 00:00) so each hourly
// run re-covers the same day; duplicate sends within the day are accepted
// as the cost of the stateless job.
func (s *Scheduler) SendReminders() {
	ctx := context.Background()
	now := s.now().UTC()

	from := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	workshops, err := s.workshopRepo.FindStartingBetween(ctx, from, to)
	if err != nil {
		slog.Error("loading workshops for reminders", "error", err)
		return
	}

	sent := 0
	for _, workshop := range workshops {
		for _, enrollment := range workshop.Enrollments {
			if _, err := s.notificationService.NotifyWorkshopReminder(ctx, enrollment.UserID, workshop); err != nil {
				slog.Warn("sending workshop reminder", "error", err,
					"workshop_id", workshop.ID, "user_id", enrollment.UserID)
				continue
			}
			sent++
		}
	}

	slog.Info("reminder job finished", "workshops", len(workshops), "reminders_sent", sent)
}

// SweepNotifications removes notifications older than the retention period.
func (s *Scheduler) SweepNotifications() {
	ctx := context.Background()
	cutoff := s.now().UTC().Add(-retentionPeriod)

	deleted, err := s.notificationService.DeleteOldNotifications(ctx, cutoff)
	if err != nil {
		slog.Error("sweeping old notifications", "error", err)
		return
	}

	slog.Info("notification sweep finished", "deleted", deleted)
}
