package scheduler

import (
	"context"
	"log/slog"
	"time"

	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"

	"github.com/go-co-op/gocron"
)

const (
	birthdayJob   = "birthday-greetings"
	inactivityJob = "inactivity-reminders"

	jobTimeout = 10 * time.Minute
)

// Scheduler runs the daily customer mailings in the business timezone.
type Scheduler struct {
	cron      *gocron.Scheduler
	campaigns commands.CampaignCommands
	cfg       config.SchedulerConfig
}

// New registers both jobs. A nil locker lets every instance run them.
func New(cfg config.SchedulerConfig, loc *time.Location, campaigns commands.CampaignCommands, locker gocron.Locker) (*Scheduler, error) {
	cron := gocron.NewScheduler(loc)
	cron.SingletonModeAll()
	if locker != nil {
		cron.WithDistributedLocker(locker)
	}

	s := &Scheduler{
		cron:      cron,
		campaigns: campaigns,
		cfg:       cfg,
	}

	if _, err := cron.Every(1).Day().At(cfg.BirthdayAt).Name(birthdayJob).Do(s.runBirthday); err != nil {
		return nil, errs.Wrapf(err, "schedule %s at %q", birthdayJob, cfg.BirthdayAt)
	}
	if _, err := cron.Every(1).Day().At(cfg.InactivityAt).Name(inactivityJob).Do(s.runInactivity); err != nil {
		return nil, errs.Wrapf(err, "schedule %s at %q", inactivityJob, cfg.InactivityAt)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
	slog.Info("scheduler started",
		"birthday_at", s.cfg.BirthdayAt,
		"inactivity_at", s.cfg.InactivityAt,
		"timezone", s.cron.Location().String())
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) runBirthday() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.campaigns.SendBirthdayGreetings(ctx)
	logRun(birthdayJob, started, result, err)
}

func (s *Scheduler) runInactivity() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.campaigns.SendInactivityReminders(ctx, s.cfg.InactivityDays)
	logRun(inactivityJob, started, result, err)
}

func logRun(job string, started time.Time, result *commands.CampaignResult, err error) {
	elapsed := time.Since(started).Milliseconds()
	if err != nil {
		slog.Error("scheduled job failed",
			"job", job,
			"elapsed_ms", elapsed,
			"error", err.Error())
		return
	}
	slog.Info("scheduled job finished",
		"job", job,
		"elapsed_ms", elapsed,
		"candidates", result.Candidates,
		"sent", result.Sent)
}
